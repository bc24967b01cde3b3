package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/TheMirberrys/height-lab-app/pkg/errors"
	"github.com/TheMirberrys/height-lab-app/pkg/units"
)

func TestRequiredFieldsPresent_ReportsEveryMissingField(t *testing.T) {
	fields := []Field{
		{Name: "childHeight", Value: "120"},
		{Name: "childAgeYears", Value: ""},
		{Name: "childGender", Value: "male"},
		{Name: "motherHeight", Value: "   "},
		{Name: "fatherHeight", Value: "180"},
	}

	err := RequiredFieldsPresent(fields)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrMissingField))

	var list apperrors.List
	require.True(t, errors.As(err, &list))
	assert.Equal(t, []string{"childAgeYears", "motherHeight"}, list.Fields())
}

func TestRequiredFieldsPresent_AllPresent(t *testing.T) {
	assert.NoError(t, RequiredFieldsPresent([]Field{{Name: "a", Value: "1"}, {Name: "b", Value: "x"}}))
	assert.NoError(t, RequiredFieldsPresent(nil))
}

func TestNumericFieldsValid(t *testing.T) {
	err := NumericFieldsValid([]Field{
		{Name: "childHeight", Value: "120.5"},
		{Name: "motherHeight", Value: ""},
		{Name: "fatherHeight", Value: "tall"},
	})
	require.Error(t, err)

	errs := apperrors.Flatten(err)
	require.Len(t, errs, 2)
	assert.Equal(t, apperrors.CodeMissingField, errs[0].Code)
	assert.Equal(t, "motherHeight", errs[0].Field)
	assert.Equal(t, apperrors.CodeInvalidNumber, errs[1].Code)
	assert.Equal(t, "fatherHeight", errs[1].Field)

	assert.NoError(t, NumericFieldsValid([]Field{{Name: "x", Value: " 42 "}}))
}

func TestNonNegative(t *testing.T) {
	err := NonNegative([]Field{
		{Name: "childHeight", Value: "-3"},
		{Name: "motherHeight", Value: "abc"},
		{Name: "fatherHeight", Value: "0"},
	})
	require.Error(t, err)

	errs := apperrors.Flatten(err)
	require.Len(t, errs, 1)
	assert.Equal(t, "childHeight", errs[0].Field)
	assert.Equal(t, apperrors.CodeInvalidNumber, errs[0].Code)
}

func TestHeightInRange(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		unit  units.HeightUnit
		ok    bool
	}{
		{"below minimum", 19.9, units.Centimeters, false},
		{"minimum", 20, units.Centimeters, true},
		{"maximum", 250, units.Centimeters, true},
		{"above maximum", 250.1, units.Centimeters, false},
		{"typical child", 120, units.Centimeters, true},
		{"inches normalized", 48, units.Inches, true},
		{"inches too short", 7.5, units.Inches, false},
		{"inches too tall", 99, units.Inches, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := HeightInRange("childHeight", tt.value, tt.unit)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrOutOfRange))
		})
	}
}

func TestIntInRange(t *testing.T) {
	assert.NoError(t, IntInRange("childAgeMonths", 0, 0, 11, "months"))
	assert.NoError(t, IntInRange("childAgeMonths", 11, 0, 11, "months"))
	assert.True(t, errors.Is(IntInRange("childAgeMonths", 12, 0, 11, "months"), apperrors.ErrOutOfRange))
}

func TestWholeNumberInRange(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
		err   error
	}{
		{"zero", "0", 0, nil},
		{"upper bound", "21", 21, nil},
		{"trailing zero fraction", "8.0", 8, nil},
		{"fraction", "8.9", 0, apperrors.ErrInvalidNumber},
		{"not a number", "eight", 0, apperrors.ErrInvalidNumber},
		{"negative", "-1", 0, apperrors.ErrOutOfRange},
		{"past max", "22", 0, apperrors.ErrOutOfRange},
		{"beyond int range", "1e19", 0, apperrors.ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WholeNumberInRange("childAgeYears", tt.value, 0, MaxAgeYears, "years")
			if tt.err == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}
			assert.True(t, errors.Is(err, tt.err), "got %v", err)
		})
	}
}

func TestAgeValid(t *testing.T) {
	assert.NoError(t, AgeValid(units.YearsMonths(8, 11)))
	assert.NoError(t, AgeValid(units.Weeks(MaxAgeWeeks)))

	assert.True(t, errors.Is(AgeValid(units.Weeks(-1)), apperrors.ErrOutOfRange))
	assert.True(t, errors.Is(AgeValid(units.Age{Unit: "months", Months: 30}), apperrors.ErrInvalidUnit))

	err := AgeValid(units.YearsMonths(-2, 12))
	require.Error(t, err)
	flags := FlagsFromError(err)
	assert.True(t, flags.Has("years"))
	assert.True(t, flags.Has("months"))
}

func TestFieldErrors_NewIsWritable(t *testing.T) {
	flags := NewFieldErrors()
	flags.Set("heightUnit")
	assert.True(t, flags.Has("heightUnit"))

	var zero FieldErrors
	assert.False(t, zero.Has("heightUnit"))
	assert.False(t, zero.Any())
}

func TestFieldErrors(t *testing.T) {
	err := apperrors.List{
		apperrors.NewMissingFieldError("childHeight"),
		apperrors.NewMissingFieldError("fatherHeight"),
	}.Err()

	flags := FlagsFromError(err)
	assert.True(t, flags.Has("childHeight"))
	assert.True(t, flags.Has("fatherHeight"))
	assert.False(t, flags.Has("motherHeight"))
	assert.True(t, flags.Any())

	flags.Clear("childHeight")
	assert.False(t, flags.Has("childHeight"))
	assert.True(t, flags.Has("fatherHeight"))

	flags.Clear("fatherHeight")
	assert.False(t, flags.Any())

	flags.Set("motherHeight")
	assert.True(t, flags.Has("motherHeight"))

	assert.False(t, FlagsFromError(nil).Any())
}
