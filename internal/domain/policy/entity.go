package policy

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RoundingDirection enum
type RoundingDirection string

const (
	RoundUp      RoundingDirection = "UP"
	RoundDown    RoundingDirection = "DOWN"
	RoundNearest RoundingDirection = "NEAREST"
)

// RoundingIntervals lists the timestamp rounding intervals a company may
// configure, in minutes.
var RoundingIntervals = []int{5, 10, 15, 30, 60}

// RoundingPolicy - rounding rule for a single checkpoint (clock-in, clock-out,
// break-start, break-end). Each checkpoint is independently toggleable.
type RoundingPolicy struct {
	Enabled         bool              `json:"enabled"`
	IntervalMinutes int               `json:"interval_minutes"`
	Direction       RoundingDirection `json:"direction"`
}

// RoundingConfig - the four checkpoint policies plus the master switch.
// When Enabled is false every raw timestamp passes through unchanged.
type RoundingConfig struct {
	Enabled    bool           `json:"enabled"`
	CheckIn    RoundingPolicy `json:"check_in"`
	CheckOut   RoundingPolicy `json:"check_out"`
	BreakStart RoundingPolicy `json:"break_start"`
	BreakEnd   RoundingPolicy `json:"break_end"`
}

// ClockTime - a wall-clock time of day stored as minutes from midnight.
type ClockTime int

// ClockOf builds a ClockTime from an hour and minute.
func ClockOf(hour, minute int) ClockTime {
	return ClockTime(hour*60 + minute)
}

func (c ClockTime) Hour() int   { return int(c) / 60 }
func (c ClockTime) Minute() int { return int(c) % 60 }

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// ClockWindow - a half-open wall-clock interval [Start, End). A window whose
// End is not after its Start wraps past midnight (e.g. 22:00-05:00).
type ClockWindow struct {
	Start ClockTime `json:"start"`
	End   ClockTime `json:"end"`
}

func (w ClockWindow) IsZero() bool {
	return w.Start == 0 && w.End == 0
}

func (w ClockWindow) Wraps() bool {
	return w.End <= w.Start && !w.IsZero()
}

// Minutes returns the window length.
func (w ClockWindow) Minutes() int {
	if w.IsZero() {
		return 0
	}
	if w.Wraps() {
		return minutesPerDay - int(w.Start) + int(w.End)
	}
	return int(w.End) - int(w.Start)
}

const minutesPerDay = 24 * 60

// OverlapMinutes returns the total overlap between the interval
// [from, to) - expressed in minutes relative to some local midnight, where
// to may exceed 24h for overnight shifts - and every day-anchored instance
// of this window touching that interval.
func (w ClockWindow) OverlapMinutes(from, to int) int {
	if w.IsZero() || to <= from {
		return 0
	}

	start := int(w.Start)
	end := int(w.End)
	if w.Wraps() {
		end += minutesPerDay
	}

	total := 0
	// Instances anchored to the previous, current and following days cover
	// any shift span up to 48 hours.
	for _, offset := range []int{-minutesPerDay, 0, minutesPerDay, 2 * minutesPerDay} {
		lo := max(from, start+offset)
		hi := min(to, end+offset)
		if hi > lo {
			total += hi - lo
		}
	}
	return total
}

// BreakType enum
type BreakType string

const (
	BreakTypePaid   BreakType = "PAID"
	BreakTypeUnpaid BreakType = "UNPAID"
)

// BreakPeriod - one named break slot inside a working day.
type BreakPeriod struct {
	Name            string    `json:"name"`
	Start           ClockTime `json:"start"`
	End             ClockTime `json:"end"`
	DurationMinutes int       `json:"duration_minutes"`
	Flexible        bool      `json:"flexible"`
	Order           int       `json:"order"`
}

// BreakPolicy - company break configuration. MinimumMinutes never exceeds
// MaximumMinutes and DefaultMinutes lies inside [Minimum, Maximum]; Validate
// enforces both before a policy reaches a calculator.
type BreakPolicy struct {
	Type            BreakType `json:"type"`
	MinimumMinutes  int       `json:"minimum_minutes"`
	MaximumMinutes  int       `json:"maximum_minutes"`
	DefaultMinutes  int       `json:"default_minutes"`
	TrackingEnabled bool      `json:"tracking_enabled"`
	FixedMode       bool      `json:"fixed_mode"`
	MaxBreaksPerDay int       `json:"max_breaks_per_day"`

	PeriodsPerAttendance int           `json:"periods_per_attendance"`
	Periods              []BreakPeriod `json:"periods,omitempty"`

	// Night-shift override: when the working interval overlaps NightWindow,
	// these replace the day minimum/default.
	NightWindow         ClockWindow `json:"night_window"`
	NightMinimumMinutes int         `json:"night_minimum_minutes"`
	NightDefaultMinutes int         `json:"night_default_minutes"`
}

// EffectiveMinimum returns the minimum break minutes for a day or night shift.
func (p BreakPolicy) EffectiveMinimum(nightShift bool) int {
	if nightShift {
		return p.NightMinimumMinutes
	}
	return p.MinimumMinutes
}

// EffectiveDefault returns the default break minutes for a day or night shift.
func (p BreakPolicy) EffectiveDefault(nightShift bool) int {
	if nightShift {
		return p.NightDefaultMinutes
	}
	return p.DefaultMinutes
}

// OvertimeMultipliers - per-category pay multipliers, each at least 1.0 and
// never below the legal minimum for the configured locale.
type OvertimeMultipliers struct {
	Regular              decimal.Decimal `json:"regular"`
	NightWork            decimal.Decimal `json:"night_work"`
	NightOvertime        decimal.Decimal `json:"night_overtime"`
	HolidayOvertime      decimal.Decimal `json:"holiday_overtime"`
	HolidayNightOvertime decimal.Decimal `json:"holiday_night_overtime"`
	WeekendOvertime      decimal.Decimal `json:"weekend_overtime"`
}

// OvertimePolicy - company overtime configuration.
type OvertimePolicy struct {
	Enabled                      bool                `json:"enabled"`
	StandardWorkingMinutesPerDay int                 `json:"standard_working_minutes_per_day"`
	NightWindow                  ClockWindow         `json:"night_window"`
	Multipliers                  OvertimeMultipliers `json:"multipliers"`
	MaxOvertimeMinutesPerDay     int                 `json:"max_overtime_minutes_per_day"`
	MaxOvertimeMinutesPerMonth   int                 `json:"max_overtime_minutes_per_month"`
	UseLegalMinimum              bool                `json:"use_legal_minimum"`
	Locale                       string              `json:"locale"`
}

// AllowanceType enum
type AllowanceType string

const (
	AllowanceTypeFixed       AllowanceType = "FIXED"
	AllowanceTypeConditional AllowanceType = "CONDITIONAL"
	AllowanceTypeOneTime     AllowanceType = "ONE_TIME"
)

// AllowanceCondition - eligibility conditions for CONDITIONAL rules. The zero
// value imposes no conditions.
type AllowanceCondition struct {
	MinWorkingDays  int  `json:"min_working_days"`
	MinWorkingHours int  `json:"min_working_hours"`
	NoAbsence       bool `json:"no_absence"`
	NoLateArrival   bool `json:"no_late_arrival"`
	NoEarlyLeave    bool `json:"no_early_leave"`
}

// AllowanceRule - one configured allowance. Amount is in the currency's
// minor units.
type AllowanceRule struct {
	Code      string             `json:"code"`
	Name      string             `json:"name"`
	Type      AllowanceType      `json:"type"`
	Amount    decimal.Decimal    `json:"amount"`
	Taxable   bool               `json:"taxable"`
	Condition AllowanceCondition `json:"condition"`
}

type AllowanceConfig struct {
	Rules []AllowanceRule `json:"rules"`
}

// DeductionType enum
type DeductionType string

const (
	DeductionTypeFixed      DeductionType = "FIXED"
	DeductionTypePercentage DeductionType = "PERCENTAGE"
)

// DeductionRule - one configured deduction. Exactly one of Amount (FIXED) or
// Percentage (PERCENTAGE, percent of base salary) is meaningful. Rules apply
// in ascending Order; ties keep declaration order.
type DeductionRule struct {
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Type       DeductionType   `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
	Order      int             `json:"order"`
}

type DeductionConfig struct {
	Rules []DeductionRule `json:"rules"`

	EnableLatePenalty    bool            `json:"enable_late_penalty"`
	LatePenaltyPerMinute decimal.Decimal `json:"late_penalty_per_minute"`

	EnableEarlyLeavePenalty    bool            `json:"enable_early_leave_penalty"`
	EarlyLeavePenaltyPerMinute decimal.Decimal `json:"early_leave_penalty_per_minute"`

	EnableAbsenceDeduction      bool `json:"enable_absence_deduction"`
	StandardWorkingDaysPerMonth int  `json:"standard_working_days_per_month"`
}

// PayrollConfig - final aggregation settings. CurrencyExponent is the number
// of decimal places of the currency's minor unit (0 for IDR, 2 for USD);
// SalaryRounding is applied exactly once, to the final net salary.
type PayrollConfig struct {
	SalaryRounding   RoundingDirection `json:"salary_rounding"`
	CurrencyExponent int32             `json:"currency_exponent"`
}

// CompanyPolicy - the full, resolved policy bundle one calculation runs
// against. DefaultsApplied names every section the provider had to fill with
// a documented default because the company had no explicit configuration.
type CompanyPolicy struct {
	CompanyID string          `json:"company_id"`
	Rounding  RoundingConfig  `json:"rounding"`
	Break     BreakPolicy     `json:"break"`
	Overtime  OvertimePolicy  `json:"overtime"`
	Allowance AllowanceConfig `json:"allowance"`
	Deduction DeductionConfig `json:"deduction"`
	Payroll   PayrollConfig   `json:"payroll"`

	DefaultsApplied []string `json:"defaults_applied,omitempty"`
}
