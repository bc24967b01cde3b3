package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/TheMirberrys/height-lab-app/internal/form"
	"github.com/TheMirberrys/height-lab-app/internal/prediction"
	apperrors "github.com/TheMirberrys/height-lab-app/pkg/errors"
	"github.com/TheMirberrys/height-lab-app/pkg/format"
	"github.com/TheMirberrys/height-lab-app/pkg/units"
)

// =============================================================================
// PREDICT COMMAND
// =============================================================================

func predictCommand() *cli.Command {
	return &cli.Command{
		Name:  "predict",
		Usage: "Predict adult height",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "height", Usage: "Child's current height", Required: true},
			&cli.StringFlag{Name: "age-years", Usage: "Child's age, whole years"},
			&cli.StringFlag{Name: "age-months", Usage: "Child's age, additional months (0-11)"},
			&cli.StringFlag{Name: "age-weeks", Usage: "Child's age in weeks (use instead of years/months)"},
			&cli.StringFlag{Name: "gender", Aliases: []string{"g"}, Usage: "male or female", Required: true},
			&cli.StringFlag{Name: "height-at-2", Usage: "Height at age 2 (optional, improves accuracy)"},
			&cli.StringFlag{Name: "mother", Usage: "Mother's height", Required: true},
			&cli.StringFlag{Name: "father", Usage: "Father's height", Required: true},
			&cli.StringFlag{
				Name:    "unit",
				Aliases: []string{"u"},
				Value:   string(units.Centimeters),
				Usage:   "Unit of every height flag (cm, inches)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "table",
				Usage:   "Output format (table, json, markdown)",
			},
		},
		Action: runPredict,
	}
}

func runPredict(c *cli.Context) error {
	unit, err := units.ParseHeightUnit(c.String("unit"))
	if err != nil {
		return cli.Exit(err.Error(), ExitValidation)
	}

	data := form.Data{
		ChildHeight:    c.String("height"),
		ChildAgeYears:  c.String("age-years"),
		ChildAgeMonths: c.String("age-months"),
		ChildAgeWeeks:  c.String("age-weeks"),
		ChildGender:    c.String("gender"),
		HeightAt2:      c.String("height-at-2"),
		MotherHeight:   c.String("mother"),
		FatherHeight:   c.String("father"),
		HeightUnit:     unit,
		AgeUnit:        units.AgeYearsMonths,
	}
	if data.ChildAgeWeeks != "" {
		data.AgeUnit = units.AgeWeeks
	}

	submitter := form.NewSubmitter(prediction.NewEngine(), log.Logger)
	result, err := submitter.Submit(data)
	if err != nil {
		for _, e := range apperrors.Flatten(err) {
			log.Error().Str("code", string(e.Code)).Str("field", e.Field).Msg(e.Message)
		}
		return cli.Exit(fmt.Sprintf("prediction failed: %v", err), ExitValidation)
	}

	switch c.String("format") {
	case "json":
		return outputJSON(c.App.Writer, result)
	case "markdown":
		return outputMarkdown(c.App.Writer, result)
	default:
		return outputTable(c.App.Writer, result)
	}
}

// =============================================================================
// OUTPUT FORMATTERS
// =============================================================================

type jsonOutput struct {
	FinalHeight        float64                   `json:"final_height_inches"`
	FinalHeightDisplay string                    `json:"final_height_display"`
	FinalHeightCm      string                    `json:"final_height_cm"`
	ConfidenceScore    float64                   `json:"confidence_score"`
	Methods            []prediction.MethodResult `json:"methods"`
	ExcludedMethods    []string                  `json:"excluded_methods,omitempty"`
	Disclaimer         string                    `json:"disclaimer"`
}

func outputJSON(w io.Writer, result *form.Result) error {
	report := result.Report
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonOutput{
		FinalHeight:        report.FinalHeight,
		FinalHeightDisplay: format.HeightFeetInches(report.FinalHeight),
		FinalHeightCm:      format.HeightCentimeters(report.FinalHeight),
		ConfidenceScore:    report.ConfidenceScore,
		Methods:            report.Methods,
		ExcludedMethods:    report.ExcludedMethods,
		Disclaimer:         prediction.Disclaimer,
	})
}

func outputTable(w io.Writer, result *form.Result) error {
	report := result.Report

	fmt.Fprintln(w)
	fmt.Fprintln(w, "╔══════════════════════════════════════════════════════════════╗")
	fmt.Fprintln(w, "║                 📏 ADULT HEIGHT PREDICTION                    ║")
	fmt.Fprintln(w, "╠══════════════════════════════════════════════════════════════╣")
	fmt.Fprintf(w, "║  Predicted Height:      %-38s ║\n", format.Height(report.FinalHeight, result.HeightUnit))
	fmt.Fprintf(w, "║  Feet / Inches:         %-38s ║\n", format.HeightFeetInches(report.FinalHeight))
	fmt.Fprintf(w, "║  Confidence:            %-38s ║\n", fmt.Sprintf("%.0f%%", report.ConfidenceScore*100))
	fmt.Fprintln(w, "╠══════════════════════════════════════════════════════════════╣")
	fmt.Fprintln(w, "║  CALCULATION METHODS                                          ║")
	fmt.Fprintln(w, "╠══════════════════════════════════════════════════════════════╣")

	for _, m := range report.Methods {
		fmt.Fprintf(w, "║  %-20s %-14s %-8s %-15s ║\n",
			m.Method, format.Height(m.Height, result.HeightUnit), m.Confidence, excludedMark(report, m.Method))
	}

	fmt.Fprintln(w, "╚══════════════════════════════════════════════════════════════╝")
	fmt.Fprintln(w)
	fmt.Fprintln(w, prediction.Disclaimer)
	return nil
}

func outputMarkdown(w io.Writer, result *form.Result) error {
	report := result.Report

	fmt.Fprintln(w, "## 📏 Adult Height Prediction")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Metric | Value |")
	fmt.Fprintln(w, "|--------|-------|")
	fmt.Fprintf(w, "| **Predicted Height** | %s (%s) |\n",
		format.HeightFeetInches(report.FinalHeight), format.HeightCentimeters(report.FinalHeight))
	fmt.Fprintf(w, "| **Confidence** | %.0f%% |\n", report.ConfidenceScore*100)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "### Calculation Methods")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Method | Height | Confidence | Explanation |")
	fmt.Fprintln(w, "|--------|--------|------------|-------------|")
	for _, m := range report.Methods {
		fmt.Fprintf(w, "| %s%s | %s | %s | %s |\n",
			m.Method, excludedMark(report, m.Method), format.HeightFeetInches(m.Height), m.Confidence, m.Explanation)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "> %s\n", prediction.Disclaimer)
	return nil
}

func excludedMark(report *prediction.Report, method string) string {
	for _, m := range report.ExcludedMethods {
		if m == method {
			return " (outlier)"
		}
	}
	return ""
}
