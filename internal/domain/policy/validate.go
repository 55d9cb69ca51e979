package policy

import (
	"fmt"

	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)
var hundred = decimal.NewFromInt(100)

// Validate checks the whole policy bundle. It is the single gate between
// externally-supplied configuration and the calculators: a CompanyPolicy that
// passed Validate is fully populated and the calculators never re-check it.
func (c CompanyPolicy) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validateRounding(c.Rounding)...)
	errs = append(errs, validateBreak(c.Break)...)
	errs = append(errs, validateOvertime(c.Overtime)...)
	errs = append(errs, validateAllowance(c.Allowance)...)
	errs = append(errs, validateDeduction(c.Deduction)...)
	errs = append(errs, validatePayroll(c.Payroll)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validDirection(d RoundingDirection) bool {
	return d == RoundUp || d == RoundDown || d == RoundNearest
}

func validInterval(interval int) bool {
	for _, v := range RoundingIntervals {
		if v == interval {
			return true
		}
	}
	return false
}

func validateRounding(cfg RoundingConfig) validator.ValidationErrors {
	var errs validator.ValidationErrors

	checkpoints := []struct {
		field  string
		policy RoundingPolicy
	}{
		{"rounding.check_in", cfg.CheckIn},
		{"rounding.check_out", cfg.CheckOut},
		{"rounding.break_start", cfg.BreakStart},
		{"rounding.break_end", cfg.BreakEnd},
	}
	for _, cp := range checkpoints {
		if !cp.policy.Enabled {
			continue
		}
		if !validInterval(cp.policy.IntervalMinutes) {
			errs = append(errs, validator.ValidationError{
				Field:   cp.field + ".interval_minutes",
				Message: "must be 5, 10, 15, 30 or 60",
			})
		}
		if !validDirection(cp.policy.Direction) {
			errs = append(errs, validator.ValidationError{
				Field:   cp.field + ".direction",
				Message: "must be UP, DOWN or NEAREST",
			})
		}
	}
	return errs
}

func validateBreak(p BreakPolicy) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if p.Type != BreakTypePaid && p.Type != BreakTypeUnpaid {
		errs = append(errs, validator.ValidationError{Field: "break.type", Message: "must be PAID or UNPAID"})
	}
	if p.MinimumMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "break.minimum_minutes", Message: "must be non-negative"})
	}
	if p.MinimumMinutes > p.MaximumMinutes {
		errs = append(errs, validator.ValidationError{Field: "break.minimum_minutes", Message: "must not exceed maximum_minutes"})
	}
	if p.DefaultMinutes < p.MinimumMinutes || p.DefaultMinutes > p.MaximumMinutes {
		errs = append(errs, validator.ValidationError{Field: "break.default_minutes", Message: "must lie within [minimum_minutes, maximum_minutes]"})
	}
	if p.MaxBreaksPerDay < 1 {
		errs = append(errs, validator.ValidationError{Field: "break.max_breaks_per_day", Message: "must be at least 1"})
	}
	if p.PeriodsPerAttendance < 1 {
		errs = append(errs, validator.ValidationError{Field: "break.periods_per_attendance", Message: "must be at least 1"})
	}
	if p.NightMinimumMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "break.night_minimum_minutes", Message: "must be non-negative"})
	}
	if p.NightDefaultMinutes < p.NightMinimumMinutes {
		errs = append(errs, validator.ValidationError{Field: "break.night_default_minutes", Message: "must not be below night_minimum_minutes"})
	}
	for i, period := range p.Periods {
		if validator.IsEmpty(period.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("break.periods[%d].name", i),
				Message: "is required",
			})
		}
		if period.DurationMinutes <= 0 {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("break.periods[%d].duration_minutes", i),
				Message: "must be positive",
			})
		}
	}
	return errs
}

func validateOvertime(p OvertimePolicy) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if !p.Enabled {
		return nil
	}
	if p.StandardWorkingMinutesPerDay <= 0 {
		errs = append(errs, validator.ValidationError{Field: "overtime.standard_working_minutes_per_day", Message: "must be positive"})
	}
	if p.MaxOvertimeMinutesPerDay < 0 {
		errs = append(errs, validator.ValidationError{Field: "overtime.max_overtime_minutes_per_day", Message: "must be non-negative"})
	}
	if p.MaxOvertimeMinutesPerMonth < 0 {
		errs = append(errs, validator.ValidationError{Field: "overtime.max_overtime_minutes_per_month", Message: "must be non-negative"})
	}

	multipliers := []struct {
		field string
		value decimal.Decimal
	}{
		{"regular", p.Multipliers.Regular},
		{"night_work", p.Multipliers.NightWork},
		{"night_overtime", p.Multipliers.NightOvertime},
		{"holiday_overtime", p.Multipliers.HolidayOvertime},
		{"holiday_night_overtime", p.Multipliers.HolidayNightOvertime},
		{"weekend_overtime", p.Multipliers.WeekendOvertime},
	}
	for _, m := range multipliers {
		if m.value.LessThan(one) {
			errs = append(errs, validator.ValidationError{
				Field:   "overtime.multipliers." + m.field,
				Message: "must be at least 1.0",
			})
		}
	}

	// Custom multipliers below the locale's legal floor are rejected here, at
	// configuration time, not during a calculation. UseLegalMinimum bypasses
	// the configured values entirely so the check does not apply.
	if !p.UseLegalMinimum {
		for _, field := range p.BelowLegalMinimum() {
			errs = append(errs, validator.ValidationError{
				Field:   "overtime.multipliers." + field,
				Message: "below legal minimum for locale " + localeOrDefault(p.Locale),
			})
		}
	}
	return errs
}

func localeOrDefault(locale string) string {
	if validator.IsEmpty(locale) {
		return "default"
	}
	return locale
}

func validateAllowance(cfg AllowanceConfig) validator.ValidationErrors {
	var errs validator.ValidationErrors

	for i, rule := range cfg.Rules {
		if validator.IsEmpty(rule.Code) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("allowance.rules[%d].code", i),
				Message: "is required",
			})
		}
		if rule.Type != AllowanceTypeFixed && rule.Type != AllowanceTypeConditional && rule.Type != AllowanceTypeOneTime {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("allowance.rules[%d].type", i),
				Message: "must be FIXED, CONDITIONAL or ONE_TIME",
			})
		}
		if rule.Amount.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("allowance.rules[%d].amount", i),
				Message: "must be non-negative",
			})
		}
	}
	return errs
}

func validateDeduction(cfg DeductionConfig) validator.ValidationErrors {
	var errs validator.ValidationErrors

	for i, rule := range cfg.Rules {
		if validator.IsEmpty(rule.Code) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("deduction.rules[%d].code", i),
				Message: "is required",
			})
		}
		switch rule.Type {
		case DeductionTypeFixed:
			if rule.Amount.IsNegative() {
				errs = append(errs, validator.ValidationError{
					Field:   fmt.Sprintf("deduction.rules[%d].amount", i),
					Message: "must be non-negative",
				})
			}
		case DeductionTypePercentage:
			if rule.Percentage.IsNegative() || rule.Percentage.GreaterThan(hundred) {
				errs = append(errs, validator.ValidationError{
					Field:   fmt.Sprintf("deduction.rules[%d].percentage", i),
					Message: "must be between 0 and 100",
				})
			}
		default:
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("deduction.rules[%d].type", i),
				Message: "must be FIXED or PERCENTAGE",
			})
		}
	}

	if cfg.EnableLatePenalty && cfg.LatePenaltyPerMinute.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "deduction.late_penalty_per_minute", Message: "must be non-negative"})
	}
	if cfg.EnableEarlyLeavePenalty && cfg.EarlyLeavePenaltyPerMinute.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "deduction.early_leave_penalty_per_minute", Message: "must be non-negative"})
	}
	if cfg.EnableAbsenceDeduction && cfg.StandardWorkingDaysPerMonth < 1 {
		errs = append(errs, validator.ValidationError{Field: "deduction.standard_working_days_per_month", Message: "must be at least 1 when absence deduction is enabled"})
	}
	return errs
}

func validatePayroll(cfg PayrollConfig) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if !validDirection(cfg.SalaryRounding) {
		errs = append(errs, validator.ValidationError{Field: "payroll.salary_rounding", Message: "must be UP, DOWN or NEAREST"})
	}
	if cfg.CurrencyExponent < 0 || cfg.CurrencyExponent > 4 {
		errs = append(errs, validator.ValidationError{Field: "payroll.currency_exponent", Message: "must be between 0 and 4"})
	}
	return errs
}
