package api

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/TheMirberrys/height-lab-app/internal/form"
	"github.com/TheMirberrys/height-lab-app/internal/prediction"
	"github.com/TheMirberrys/height-lab-app/internal/validation"
	apperrors "github.com/TheMirberrys/height-lab-app/pkg/errors"
	"github.com/TheMirberrys/height-lab-app/pkg/format"
	"github.com/TheMirberrys/height-lab-app/pkg/units"
)

// =============================================================================
// PREDICT ENDPOINT
// =============================================================================

// PredictResponse is the results screen for one submission.
type PredictResponse struct {
	PredictionID       uuid.UUID        `json:"prediction_id"`
	Success            bool             `json:"success"`
	FinalHeight        float64          `json:"final_height"`
	FinalHeightDisplay string           `json:"final_height_display"`
	FinalHeightCm      string           `json:"final_height_cm"`
	ConfidenceScore    float64          `json:"confidence_score"`
	Methods            []MethodResponse `json:"methods"`
	ExcludedMethods    []string         `json:"excluded_methods,omitempty"`
	Disclaimer         string           `json:"disclaimer"`
}

// MethodResponse is one method card.
type MethodResponse struct {
	Method        string  `json:"method"`
	Height        float64 `json:"height"`
	HeightDisplay string  `json:"height_display"`
	Confidence    string  `json:"confidence"`
	Explanation   string  `json:"explanation"`
}

// ValidationResponse lists every field that failed.
type ValidationResponse struct {
	Success     bool                   `json:"success"`
	Error       string                 `json:"error"`
	Errors      []*apperrors.Error     `json:"errors"`
	FieldErrors validation.FieldErrors `json:"field_errors"`
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	var data form.Data
	if !s.decode(w, r, &data) {
		return
	}

	result, err := s.submitter.Submit(data)
	if err != nil {
		s.validationError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, buildPredictResponse(result.Report))
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var data form.Data
	if !s.decode(w, r, &data) {
		return
	}

	if err := form.Validate(data); err != nil {
		s.validationError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) validationError(w http.ResponseWriter, err error) {
	errs := apperrors.Flatten(err)
	if len(errs) == 0 {
		s.jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	status := http.StatusUnprocessableEntity
	if errors.Is(err, apperrors.ErrInsufficientData) {
		status = http.StatusConflict
	}
	s.jsonResponse(w, status, ValidationResponse{
		Success:     false,
		Error:       err.Error(),
		Errors:      errs,
		FieldErrors: validation.FlagsFromError(err),
	})
}

func buildPredictResponse(report *prediction.Report) PredictResponse {
	methods := make([]MethodResponse, len(report.Methods))
	for i, m := range report.Methods {
		methods[i] = MethodResponse{
			Method:        m.Method,
			Height:        m.Height,
			HeightDisplay: format.HeightFeetInches(m.Height),
			Confidence:    string(m.Confidence),
			Explanation:   m.Explanation,
		}
	}

	return PredictResponse{
		PredictionID:       uuid.New(),
		Success:            true,
		FinalHeight:        report.FinalHeight,
		FinalHeightDisplay: format.HeightFeetInches(report.FinalHeight),
		FinalHeightCm:      format.HeightCentimeters(report.FinalHeight),
		ConfidenceScore:    report.ConfidenceScore,
		Methods:            methods,
		ExcludedMethods:    report.ExcludedMethods,
		Disclaimer:         prediction.Disclaimer,
	}
}

// =============================================================================
// CONVERSION ENDPOINTS
// =============================================================================

// ConvertHeightRequest converts a raw field value between units.
type ConvertHeightRequest struct {
	Value string `json:"value"`
	From  string `json:"from"`
	To    string `json:"to"`
}

func (s *Server) handleConvertHeight(w http.ResponseWriter, r *http.Request) {
	var req ConvertHeightRequest
	if !s.decode(w, r, &req) {
		return
	}

	from, err := units.ParseHeightUnit(req.From)
	if err != nil {
		s.jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	to, err := units.ParseHeightUnit(req.To)
	if err != nil {
		s.jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{
		"value": units.FormatConverted(req.Value, from, to),
		"unit":  string(to),
	})
}

// ConvertAgeRequest converts an age to another representation.
type ConvertAgeRequest struct {
	Age units.Age `json:"age"`
	To  string    `json:"to"`
}

// ConvertAgeResponse carries the converted age and its value in years.
type ConvertAgeResponse struct {
	Age   units.Age `json:"age"`
	Years float64   `json:"years"`
}

func (s *Server) handleConvertAge(w http.ResponseWriter, r *http.Request) {
	var req ConvertAgeRequest
	if !s.decode(w, r, &req) {
		return
	}

	to, err := units.ParseAgeUnit(req.To)
	if err != nil {
		s.jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Age.Unit == "" {
		req.Age.Unit = units.AgeYearsMonths
	}
	if err := validation.AgeValid(req.Age); err != nil {
		s.jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	converted := req.Age.In(to)
	s.jsonResponse(w, http.StatusOK, ConvertAgeResponse{
		Age:   converted,
		Years: units.RoundTo(req.Age.InYears(), 2),
	})
}

// HeightUnitChangeRequest re-derives the height fields for a new unit.
type HeightUnitChangeRequest struct {
	OldUnit string            `json:"old_unit"`
	NewUnit string            `json:"new_unit"`
	Values  form.HeightValues `json:"values"`
}

func (s *Server) handleHeightUnitChange(w http.ResponseWriter, r *http.Request) {
	var req HeightUnitChangeRequest
	if !s.decode(w, r, &req) {
		return
	}

	oldUnit, err := units.ParseHeightUnit(req.OldUnit)
	if err != nil {
		s.jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	newUnit, err := units.ParseHeightUnit(req.NewUnit)
	if err != nil {
		s.jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, form.OnUnitChange(oldUnit, newUnit, req.Values))
}

func (s *Server) handleFormatHeight(w http.ResponseWriter, r *http.Request) {
	inches, ok := units.ParseNumber(r.URL.Query().Get("inches"))
	if !ok {
		s.jsonError(w, http.StatusBadRequest, "inches must be a number")
		return
	}

	feet, rem := units.TotalInchesToFeetInches(inches)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"feet":        feet,
		"inches":      rem,
		"feet_inches": format.HeightFeetInches(inches),
		"centimeters": format.HeightCentimeters(inches),
	})
}

// MethodsResponse lists the prediction methods with the accuracy note and disclaimer.
type MethodsResponse struct {
	Methods    []prediction.MethodInfo `json:"methods"`
	Accuracy   string                  `json:"accuracy"`
	Disclaimer string                  `json:"disclaimer"`
}

func (s *Server) handleMethods(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, MethodsResponse{
		Methods:    prediction.Catalog(),
		Accuracy:   prediction.TypicalAccuracy,
		Disclaimer: prediction.Disclaimer,
	})
}
