package payroll

import (
	"time"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/policy"
	"github.com/shopspring/decimal"
)

// SalaryType enum
type SalaryType string

const (
	SalaryTypeMonthly    SalaryType = "MONTHLY"
	SalaryTypeDaily      SalaryType = "DAILY"
	SalaryTypeHourly     SalaryType = "HOURLY"
	SalaryTypeShiftBased SalaryType = "SHIFT_BASED"
)

// EmployeeSalaryInfo - effective salary configuration for one employee, as
// resolved by the salary store. Amounts are in the currency's minor units.
// HourlyRate must be populated for every type; overtime is priced from it.
type EmployeeSalaryInfo struct {
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  string          `json:"employee_name"`
	Type          SalaryType      `json:"type"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	DailyRate     decimal.Decimal `json:"daily_rate"`
	HourlyRate    decimal.Decimal `json:"hourly_rate"`
	ShiftRate     decimal.Decimal `json:"shift_rate"`
}

// Period - one pay period (a calendar month).
type Period struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// Start returns the first day of the period at local midnight.
func (p Period) Start() time.Time {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.Local)
}

// End returns the last day of the period at local midnight.
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, -1)
}

func (p Period) String() string {
	return p.Start().Format("2006-01")
}

// OvertimeResult - classified overtime for a day or a whole period.
//
// The five overtime categories are mutually exclusive: their minutes sum to
// TotalOvertimeMinutes and their amounts to TotalOvertimeAmount. Night work
// inside the standard threshold is a premium, not overtime, and is carried
// separately in NightWorkMinutes/NightWorkAmount.
type OvertimeResult struct {
	RegularOvertimeMinutes      int `json:"regular_overtime_minutes"`
	NightOvertimeMinutes        int `json:"night_overtime_minutes"`
	HolidayOvertimeMinutes      int `json:"holiday_overtime_minutes"`
	HolidayNightOvertimeMinutes int `json:"holiday_night_overtime_minutes"`
	WeekendOvertimeMinutes      int `json:"weekend_overtime_minutes"`

	RegularOvertimeAmount      decimal.Decimal `json:"regular_overtime_amount"`
	NightOvertimeAmount        decimal.Decimal `json:"night_overtime_amount"`
	HolidayOvertimeAmount      decimal.Decimal `json:"holiday_overtime_amount"`
	HolidayNightOvertimeAmount decimal.Decimal `json:"holiday_night_overtime_amount"`
	WeekendOvertimeAmount      decimal.Decimal `json:"weekend_overtime_amount"`

	NightWorkMinutes int             `json:"night_work_minutes"`
	NightWorkAmount  decimal.Decimal `json:"night_work_amount"`

	TotalOvertimeMinutes int             `json:"total_overtime_minutes"`
	TotalOvertimeAmount  decimal.Decimal `json:"total_overtime_amount"`

	// OverCapMinutes flags minutes beyond the configured daily cap. Advisory
	// only: flagged minutes are still paid, an approval workflow acts on the
	// flag.
	OverCapMinutes int `json:"over_cap_minutes,omitempty"`
}

// AllowanceItem - one evaluated allowance rule. Excluded items stay in the
// list with Included=false and a populated IneligibleReason; they are never
// silently dropped.
type AllowanceItem struct {
	Code             string               `json:"code"`
	Name             string               `json:"name"`
	Type             policy.AllowanceType `json:"type"`
	Amount           decimal.Decimal      `json:"amount"`
	Taxable          bool                 `json:"taxable"`
	Included         bool                 `json:"included"`
	IneligibleReason string               `json:"ineligible_reason,omitempty"`
}

// AllowanceResult - itemized allowances plus totals partitioned by the
// taxable flag.
type AllowanceResult struct {
	Items                []AllowanceItem `json:"items"`
	TotalAllowances      decimal.Decimal `json:"total_allowances"`
	TaxableAllowances    decimal.Decimal `json:"taxable_allowances"`
	NonTaxableAllowances decimal.Decimal `json:"non_taxable_allowances"`
}

// DeductionItem - one applied deduction rule, in application order.
type DeductionItem struct {
	Code   string               `json:"code"`
	Name   string               `json:"name"`
	Type   policy.DeductionType `json:"type"`
	Order  int                  `json:"order"`
	Amount decimal.Decimal      `json:"amount"`
}

// DeductionResult - itemized rule deductions plus the three attendance
// penalty terms.
type DeductionResult struct {
	Items             []DeductionItem `json:"items"`
	RuleTotal         decimal.Decimal `json:"rule_total"`
	LatePenalty       decimal.Decimal `json:"late_penalty"`
	EarlyLeavePenalty decimal.Decimal `json:"early_leave_penalty"`
	AbsenceDeduction  decimal.Decimal `json:"absence_deduction"`
	TotalDeductions   decimal.Decimal `json:"total_deductions"`
}

// Warning codes attached to a PayrollResult.
const (
	WarningDailyOvertimeCap   = "OVERTIME_DAILY_CAP_EXCEEDED"
	WarningMonthlyOvertimeCap = "OVERTIME_MONTHLY_CAP_EXCEEDED"
	WarningDefaultsApplied    = "COMPUTED_WITH_DEFAULT_POLICY"
)

// Warning - a non-fatal condition for an approval workflow to act on.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DayBreakdown - per-day audit trail kept on the period result.
type DayBreakdown struct {
	Date            time.Time                     `json:"date"`
	RoundedCheckIn  time.Time                     `json:"rounded_check_in"`
	RoundedCheckOut time.Time                     `json:"rounded_check_out"`
	WorkingHours    attendance.WorkingHoursResult `json:"working_hours"`
	Overtime        OvertimeResult                `json:"overtime"`
}

// PayrollResult - the verified payroll breakdown for one employee in one pay
// period.
//
// Invariants: GrossSalary = BaseSalary + TotalOvertimePay + TotalAllowances
// and NetSalary = GrossSalary - TotalDeductions, within one minor unit of the
// final rounding. Sub-results keep full decimal precision for audit; the
// company rounding policy is applied exactly once, to the two headline
// figures.
type PayrollResult struct {
	EmployeeID string     `json:"employee_id"`
	Period     Period     `json:"period"`
	SalaryType SalaryType `json:"salary_type"`

	BaseSalary       decimal.Decimal `json:"base_salary"`
	TotalOvertimePay decimal.Decimal `json:"total_overtime_pay"`
	TotalAllowances  decimal.Decimal `json:"total_allowances"`
	TotalDeductions  decimal.Decimal `json:"total_deductions"`
	GrossSalary      decimal.Decimal `json:"gross_salary"`
	NetSalary        decimal.Decimal `json:"net_salary"`

	Summary    attendance.Summary `json:"summary"`
	Overtime   OvertimeResult     `json:"overtime"`
	Allowances AllowanceResult    `json:"allowances"`
	Deductions DeductionResult    `json:"deductions"`
	Days       []DayBreakdown     `json:"days,omitempty"`

	Warnings []Warning `json:"warnings,omitempty"`
}
