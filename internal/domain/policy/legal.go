package policy

import "github.com/shopspring/decimal"

// Legal minimum overtime multipliers by locale. A company may configure
// higher multipliers but never lower ones; UseLegalMinimum substitutes these
// values wholesale.
var legalMinimums = map[string]OvertimeMultipliers{
	// Indonesia: UU 13/2003 jo. PP 35/2021 (first overtime hour 1.5x,
	// holiday work 2x; night work itself carries no statutory premium but the
	// common company floor is kept at 1.0).
	"id-ID": {
		Regular:              decimal.NewFromFloat(1.5),
		NightWork:            decimal.NewFromInt(1),
		NightOvertime:        decimal.NewFromFloat(1.5),
		HolidayOvertime:      decimal.NewFromInt(2),
		HolidayNightOvertime: decimal.NewFromInt(2),
		WeekendOvertime:      decimal.NewFromInt(2),
	},
	// Japan: Labor Standards Act art. 37.
	"ja-JP": {
		Regular:              decimal.NewFromFloat(1.25),
		NightWork:            decimal.NewFromFloat(1.25),
		NightOvertime:        decimal.NewFromFloat(1.5),
		HolidayOvertime:      decimal.NewFromFloat(1.35),
		HolidayNightOvertime: decimal.NewFromFloat(1.6),
		WeekendOvertime:      decimal.NewFromFloat(1.35),
	},
}

// defaultLegalMinimum applies when the locale has no table: every multiplier
// floors at 1.0.
var defaultLegalMinimum = OvertimeMultipliers{
	Regular:              decimal.NewFromInt(1),
	NightWork:            decimal.NewFromInt(1),
	NightOvertime:        decimal.NewFromInt(1),
	HolidayOvertime:      decimal.NewFromInt(1),
	HolidayNightOvertime: decimal.NewFromInt(1),
	WeekendOvertime:      decimal.NewFromInt(1),
}

// LegalMinimums returns the legal minimum multiplier table for a locale.
func LegalMinimums(locale string) OvertimeMultipliers {
	if m, ok := legalMinimums[locale]; ok {
		return m
	}
	return defaultLegalMinimum
}

// BelowLegalMinimum lists the multiplier fields configured below the legal
// floor for the policy's locale. An empty result means the configuration is
// legally valid.
func (p OvertimePolicy) BelowLegalMinimum() []string {
	legal := LegalMinimums(p.Locale)
	var fields []string

	checks := []struct {
		name       string
		got, floor decimal.Decimal
	}{
		{"regular", p.Multipliers.Regular, legal.Regular},
		{"night_work", p.Multipliers.NightWork, legal.NightWork},
		{"night_overtime", p.Multipliers.NightOvertime, legal.NightOvertime},
		{"holiday_overtime", p.Multipliers.HolidayOvertime, legal.HolidayOvertime},
		{"holiday_night_overtime", p.Multipliers.HolidayNightOvertime, legal.HolidayNightOvertime},
		{"weekend_overtime", p.Multipliers.WeekendOvertime, legal.WeekendOvertime},
	}
	for _, c := range checks {
		if c.got.LessThan(c.floor) {
			fields = append(fields, c.name)
		}
	}
	return fields
}

// ValidateMultipliers reports whether every configured multiplier meets the
// legal minimum for the policy's locale.
func (p OvertimePolicy) ValidateMultipliers() bool {
	return len(p.BelowLegalMinimum()) == 0
}

// EffectiveMultipliers returns the multipliers a calculation must use: the
// legal table itself when UseLegalMinimum is set, the configured values
// otherwise.
func (p OvertimePolicy) EffectiveMultipliers() OvertimeMultipliers {
	if p.UseLegalMinimum {
		return LegalMinimums(p.Locale)
	}
	return p.Multipliers
}
