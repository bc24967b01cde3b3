package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_IsMatchesCode(t *testing.T) {
	err := NewMissingFieldError("motherHeight")

	assert.True(t, stderrors.Is(err, ErrMissingField))
	assert.False(t, stderrors.Is(err, ErrInvalidNumber))
	assert.True(t, err.Recoverable)
	assert.Equal(t, "MISSING_FIELD: mother height is required (field: motherHeight)", err.Error())
}

func TestError_WrappedStillMatches(t *testing.T) {
	err := fmt.Errorf("submit: %w", NewOutOfRangeError("childHeight", 20, 250, "cm"))
	assert.True(t, stderrors.Is(err, ErrOutOfRange))

	var e *Error
	require.True(t, stderrors.As(err, &e))
	assert.Equal(t, "childHeight", e.Field)
	assert.Contains(t, e.Message, "20-250 cm")
}

func TestList(t *testing.T) {
	var empty List
	assert.NoError(t, empty.Err())

	list := List{
		NewMissingFieldError("childHeight"),
		NewInvalidNumberError("fatherHeight", "abc"),
	}
	err := list.Err()
	require.Error(t, err)

	assert.True(t, stderrors.Is(err, ErrMissingField))
	assert.True(t, stderrors.Is(err, ErrInvalidNumber))
	assert.False(t, stderrors.Is(err, ErrInsufficientData))
	assert.Equal(t, []string{"childHeight", "fatherHeight"}, list.Fields())
	assert.Contains(t, err.Error(), "; ")
}

func TestFlatten(t *testing.T) {
	assert.Nil(t, Flatten(nil))
	assert.Nil(t, Flatten(stderrors.New("plain")))

	single := Flatten(NewInsufficientDataError("nothing"))
	require.Len(t, single, 1)
	assert.Equal(t, CodeInsufficientData, single[0].Code)

	list := List{NewMissingFieldError("a"), NewMissingFieldError("b")}
	assert.Len(t, Flatten(fmt.Errorf("wrapped: %w", list)), 2)
}

func TestHumanize(t *testing.T) {
	assert.Equal(t, "child height", humanize("childHeight"))
	assert.Equal(t, "height at2", humanize("heightAt2"))
	assert.Equal(t, "gender", humanize("gender"))
}

func TestNewInvalidUnitError(t *testing.T) {
	err := NewInvalidUnitError("heightUnit", "furlongs", "cm", "inches")

	assert.True(t, stderrors.Is(err, ErrInvalidUnit))
	assert.Equal(t, "heightUnit", err.Field)
	assert.Equal(t, `"furlongs" is not a supported height unit (cm, inches)`, err.Message)
}

func TestNewNotWholeNumberError(t *testing.T) {
	err := NewNotWholeNumberError("childAgeYears", "8.9")

	assert.True(t, stderrors.Is(err, ErrInvalidNumber))
	assert.Contains(t, err.Message, "8.9 is not a whole number")
}
