package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{
		{Field: "break.minimum_minutes", Message: "must be non-negative"},
		{Field: "payroll.salary_rounding", Message: "must be UP, DOWN or NEAREST"},
	}
	assert.Equal(t, "break.minimum_minutes: must be non-negative; payroll.salary_rounding: must be UP, DOWN or NEAREST", errs.Error())
	assert.Equal(t, map[string]string{
		"break.minimum_minutes":   "must be non-negative",
		"payroll.salary_rounding": "must be UP, DOWN or NEAREST",
	}, errs.ToMap())
}

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}

func TestIsValidClock(t *testing.T) {
	t.Parallel()

	minutes, ok := IsValidClock("22:30")
	assert.True(t, ok)
	assert.Equal(t, 1350, minutes)

	_, ok = IsValidClock("24:00")
	assert.False(t, ok)
	_, ok = IsValidClock("9am")
	assert.False(t, ok)
}

func TestIsValidDate(t *testing.T) {
	t.Parallel()

	_, ok := IsValidDate("2026-03-02")
	assert.True(t, ok)
	_, ok = IsValidDate("02/03/2026")
	assert.False(t, ok)
}

func TestFormatMinutes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "8h 05m", FormatMinutes(485))
	assert.Equal(t, "0h 00m", FormatMinutes(0))
	assert.Equal(t, "-1h 30m", FormatMinutes(-90))
}
