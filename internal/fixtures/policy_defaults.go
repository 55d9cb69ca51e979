package fixtures

import (
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/policy"
	"github.com/shopspring/decimal"
)

// ========== COMPANY POLICY DEFAULTS ==========
//
// Documented fallbacks for companies without explicit configuration. Every
// default applied during normalization is named in DefaultsApplied so the
// final payroll result can carry a warning instead of silently computing on
// assumptions.

// DefaultRounding rounds clock-in/out to the nearest 15 minutes and break
// punches to the nearest 5.
func DefaultRounding() policy.RoundingConfig {
	quarterHour := policy.RoundingPolicy{Enabled: true, IntervalMinutes: 15, Direction: policy.RoundNearest}
	fiveMinutes := policy.RoundingPolicy{Enabled: true, IntervalMinutes: 5, Direction: policy.RoundNearest}
	return policy.RoundingConfig{
		Enabled:    true,
		CheckIn:    quarterHour,
		CheckOut:   quarterHour,
		BreakStart: fiveMinutes,
		BreakEnd:   fiveMinutes,
	}
}

// DefaultBreak is an unpaid tracked lunch-style break: 60 minutes by default,
// at least 45 and at most 90, with a longer floor on night shifts.
func DefaultBreak() policy.BreakPolicy {
	return policy.BreakPolicy{
		Type:            policy.BreakTypeUnpaid,
		MinimumMinutes:  45,
		MaximumMinutes:  90,
		DefaultMinutes:  60,
		TrackingEnabled: true,
		MaxBreaksPerDay: 3,

		PeriodsPerAttendance: 1,
		Periods: []policy.BreakPeriod{
			{Name: "Lunch", Start: policy.ClockOf(12, 0), End: policy.ClockOf(13, 0), DurationMinutes: 60, Flexible: true, Order: 1},
		},

		NightWindow:         policy.ClockWindow{Start: policy.ClockOf(22, 0), End: policy.ClockOf(5, 0)},
		NightMinimumMinutes: 60,
		NightDefaultMinutes: 60,
	}
}

// DefaultOvertime is an eight-hour standard day with a 22:00-05:00 night
// window and the Indonesian statutory multipliers.
func DefaultOvertime() policy.OvertimePolicy {
	return policy.OvertimePolicy{
		Enabled:                      true,
		StandardWorkingMinutesPerDay: 480,
		NightWindow:                  policy.ClockWindow{Start: policy.ClockOf(22, 0), End: policy.ClockOf(5, 0)},
		Multipliers: policy.OvertimeMultipliers{
			Regular:              decimal.NewFromFloat(1.5),
			NightWork:            decimal.NewFromFloat(1.25),
			NightOvertime:        decimal.NewFromFloat(1.75),
			HolidayOvertime:      decimal.NewFromInt(2),
			HolidayNightOvertime: decimal.NewFromFloat(2.5),
			WeekendOvertime:      decimal.NewFromInt(2),
		},
		MaxOvertimeMinutesPerDay:   240,
		MaxOvertimeMinutesPerMonth: 3360,
		Locale:                     "id-ID",
	}
}

// DefaultDeduction enables no penalties but fixes the standard month at 22
// working days for any later absence pro-rating.
func DefaultDeduction() policy.DeductionConfig {
	return policy.DeductionConfig{
		StandardWorkingDaysPerMonth: 22,
	}
}

// DefaultPayroll rounds net salary to the nearest whole minor unit (IDR has
// no fractional minor unit).
func DefaultPayroll() policy.PayrollConfig {
	return policy.PayrollConfig{
		SalaryRounding:   policy.RoundNearest,
		CurrencyExponent: 0,
	}
}

// DefaultCompanyPolicy is the full fallback bundle for a company with no
// configuration at all.
func DefaultCompanyPolicy(companyID string) policy.CompanyPolicy {
	return policy.CompanyPolicy{
		CompanyID: companyID,
		Rounding:  DefaultRounding(),
		Break:     DefaultBreak(),
		Overtime:  DefaultOvertime(),
		Deduction: DefaultDeduction(),
		Payroll:   DefaultPayroll(),
		DefaultsApplied: []string{
			"rounding", "break", "overtime", "deduction", "payroll",
		},
	}
}

// Normalize fills any unconfigured section of a company policy with its
// documented default and records each substitution. Zero-value detection is
// per section: a section a company configured, even partially, is left alone
// and must pass validation on its own.
func Normalize(p policy.CompanyPolicy) policy.CompanyPolicy {
	if p.Rounding == (policy.RoundingConfig{}) {
		p.Rounding = DefaultRounding()
		p.DefaultsApplied = append(p.DefaultsApplied, "rounding")
	}
	if p.Break.Type == "" {
		p.Break = DefaultBreak()
		p.DefaultsApplied = append(p.DefaultsApplied, "break")
	}
	if !p.Overtime.Enabled && p.Overtime.StandardWorkingMinutesPerDay == 0 {
		p.Overtime = DefaultOvertime()
		p.DefaultsApplied = append(p.DefaultsApplied, "overtime")
	}
	if len(p.Deduction.Rules) == 0 && p.Deduction.StandardWorkingDaysPerMonth == 0 {
		p.Deduction = DefaultDeduction()
		p.DefaultsApplied = append(p.DefaultsApplied, "deduction")
	}
	if p.Payroll.SalaryRounding == "" {
		p.Payroll = DefaultPayroll()
		p.DefaultsApplied = append(p.DefaultsApplied, "payroll")
	}
	return p
}
