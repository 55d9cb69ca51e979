package policy

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLegalMinimums(t *testing.T) {
	t.Parallel()

	id := LegalMinimums("id-ID")
	assert.True(t, id.HolidayOvertime.Equal(decimal.NewFromInt(2)))

	jp := LegalMinimums("ja-JP")
	assert.True(t, jp.Regular.Equal(decimal.NewFromFloat(1.25)))

	// Unknown locales floor everything at 1.0.
	other := LegalMinimums("fr-FR")
	assert.True(t, other.Regular.Equal(decimal.NewFromInt(1)))
	assert.True(t, other.HolidayOvertime.Equal(decimal.NewFromInt(1)))
}

func TestBelowLegalMinimum(t *testing.T) {
	t.Parallel()

	p := OvertimePolicy{
		Locale: "ja-JP",
		Multipliers: OvertimeMultipliers{
			Regular:              decimal.NewFromFloat(1.2), // below the 1.25 floor
			NightWork:            decimal.NewFromFloat(1.25),
			NightOvertime:        decimal.NewFromFloat(1.5),
			HolidayOvertime:      decimal.NewFromFloat(1.35),
			HolidayNightOvertime: decimal.NewFromFloat(1.6),
			WeekendOvertime:      decimal.NewFromFloat(1.35),
		},
	}
	assert.Equal(t, []string{"regular"}, p.BelowLegalMinimum())
	assert.False(t, p.ValidateMultipliers())

	p.Multipliers.Regular = decimal.NewFromFloat(1.25)
	assert.Empty(t, p.BelowLegalMinimum())
	assert.True(t, p.ValidateMultipliers())
}

func TestEffectiveMultipliers(t *testing.T) {
	t.Parallel()

	p := OvertimePolicy{
		Locale:      "ja-JP",
		Multipliers: OvertimeMultipliers{Regular: decimal.NewFromInt(3)},
	}
	assert.True(t, p.EffectiveMultipliers().Regular.Equal(decimal.NewFromInt(3)))

	p.UseLegalMinimum = true
	assert.True(t, p.EffectiveMultipliers().Regular.Equal(decimal.NewFromFloat(1.25)))
}
