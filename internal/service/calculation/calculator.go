package calculation

import (
	"fmt"
	"strings"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/policy"
)

// Calculator runs the full attendance-to-payroll chain for one company
// policy. It holds no mutable state, so a single instance may serve
// concurrent calculations.
type Calculator struct {
	policy policy.CompanyPolicy
}

// NewCalculator validates the policy once, up front. Calculators never see an
// invalid or partially configured policy; every downstream stage can assume a
// normalized bundle.
func NewCalculator(p policy.CompanyPolicy) (*Calculator, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("company policy: %w", err)
	}
	return &Calculator{policy: p}, nil
}

func (c *Calculator) Policy() policy.CompanyPolicy { return c.policy }

// CalculateDay runs one worked day through rounding, break evaluation,
// working-hours splitting and overtime classification.
func (c *Calculator) CalculateDay(day attendance.Day, info payroll.EmployeeSalaryInfo) (payroll.DayBreakdown, error) {
	if !day.Worked() {
		return payroll.DayBreakdown{}, fmt.Errorf("%s: %w", day.Date.Format("2006-01-02"), attendance.ErrIncompleteDay)
	}

	rounded := ApplyRounding(day, c.policy.Rounding)
	checkIn, checkOut := *rounded.CheckIn, *rounded.CheckOut

	from, to, _, err := shiftSpan(checkIn, checkOut)
	if err != nil {
		return payroll.DayBreakdown{}, fmt.Errorf("%s: %w", day.Date.Format("2006-01-02"), err)
	}

	// The break policy's own night window decides which minimum applies,
	// independently of the overtime night window.
	nightShift := c.policy.Break.NightWindow.OverlapMinutes(from, to) > 0
	breaks, err := EvaluateBreaks(rounded.Breaks, c.policy.Break, nightShift)
	if err != nil {
		return payroll.DayBreakdown{}, fmt.Errorf("%s: %w", day.Date.Format("2006-01-02"), err)
	}

	hours, err := CalculateWorkingHours(checkIn, checkOut, breaks, c.policy.Break.Type, c.policy.Overtime.NightWindow)
	if err != nil {
		return payroll.DayBreakdown{}, fmt.Errorf("%s: %w", day.Date.Format("2006-01-02"), err)
	}

	return payroll.DayBreakdown{
		Date:            day.Date,
		RoundedCheckIn:  checkIn,
		RoundedCheckOut: checkOut,
		WorkingHours:    hours,
		Overtime:        ClassifyOvertime(hours, day.IsHoliday, day.IsWeekend, c.policy.Overtime, info.HourlyRate),
	}, nil
}

// CalculatePeriod computes one employee's payroll for a pay period from the
// period's attendance days. Days are processed in the order given; the
// attendance store returns them chronologically.
func (c *Calculator) CalculatePeriod(days []attendance.Day, info payroll.EmployeeSalaryInfo, period payroll.Period) (payroll.PayrollResult, error) {
	if period.Month < 1 || period.Month > 12 {
		return payroll.PayrollResult{}, fmt.Errorf("%w: %d-%d", payroll.ErrInvalidPeriod, period.Year, period.Month)
	}
	if c.policy.Overtime.Enabled && info.HourlyRate.IsZero() {
		return payroll.PayrollResult{}, fmt.Errorf("employee %s: %w", info.EmployeeID, payroll.ErrMissingHourlyRate)
	}

	summary := attendance.Summary{EmployeeID: info.EmployeeID}
	var periodOT payroll.OvertimeResult
	var breakdowns []payroll.DayBreakdown

	for _, day := range days {
		if !day.Worked() {
			if day.CheckIn == nil && day.CheckOut == nil {
				if !day.IsHoliday && !day.IsWeekend {
					summary.AbsenceDays++
				}
				continue
			}
			return payroll.PayrollResult{}, fmt.Errorf("%s: %w", day.Date.Format("2006-01-02"), attendance.ErrIncompleteDay)
		}

		bd, err := c.CalculateDay(day, info)
		if err != nil {
			return payroll.PayrollResult{}, err
		}

		summary.WorkingDays++
		summary.NumberOfShifts++
		summary.WorkingMinutes += bd.WorkingHours.NetWorkingMinutes
		c.recordPunctuality(&summary, day, bd)

		periodOT = addOvertime(periodOT, bd.Overtime)
		breakdowns = append(breakdowns, bd)
	}

	allowances := EvaluateAllowances(c.policy.Allowance, summary)

	base, err := BaseSalary(info, summary)
	if err != nil {
		return payroll.PayrollResult{}, err
	}
	deductions := EvaluateDeductions(c.policy.Deduction, summary, base, info.MonthlySalary)

	result, err := AggregatePayroll(info, period, summary, periodOT, allowances, deductions, c.policy.Payroll)
	if err != nil {
		return payroll.PayrollResult{}, err
	}
	result.Days = breakdowns
	result.Warnings = c.periodWarnings(periodOT)
	return result, nil
}

// recordPunctuality compares the rounded clock times against the day's
// schedule, if it has one. Overnight schedules push the scheduled clock-out
// to the next day before comparing.
func (c *Calculator) recordPunctuality(summary *attendance.Summary, day attendance.Day, bd payroll.DayBreakdown) {
	if day.Schedule == nil {
		return
	}

	actualIn := bd.RoundedCheckIn.Hour()*60 + bd.RoundedCheckIn.Minute()
	if late := actualIn - int(day.Schedule.ClockIn); late > 0 {
		summary.LateCount++
		summary.TotalLateMinutes += late
	}

	schedOut := int(day.Schedule.ClockOut)
	if day.Schedule.ClockOut <= day.Schedule.ClockIn {
		schedOut += 24 * 60
	}
	actualOut := actualIn + bd.WorkingHours.GrossWorkingMinutes
	if early := schedOut - actualOut; early > 0 {
		summary.EarlyLeaveCount++
		summary.TotalEarlyLeaveMinutes += early
	}
}

func (c *Calculator) periodWarnings(ot payroll.OvertimeResult) []payroll.Warning {
	var warnings []payroll.Warning
	if ot.OverCapMinutes > 0 {
		warnings = append(warnings, payroll.Warning{
			Code:    payroll.WarningDailyOvertimeCap,
			Message: fmt.Sprintf("%d overtime minutes exceed the daily cap of %d", ot.OverCapMinutes, c.policy.Overtime.MaxOvertimeMinutesPerDay),
		})
	}
	if monthlyCap := c.policy.Overtime.MaxOvertimeMinutesPerMonth; monthlyCap > 0 && ot.TotalOvertimeMinutes > monthlyCap {
		warnings = append(warnings, payroll.Warning{
			Code:    payroll.WarningMonthlyOvertimeCap,
			Message: fmt.Sprintf("%d overtime minutes exceed the monthly cap of %d", ot.TotalOvertimeMinutes, monthlyCap),
		})
	}
	if len(c.policy.DefaultsApplied) > 0 {
		warnings = append(warnings, payroll.Warning{
			Code:    payroll.WarningDefaultsApplied,
			Message: "computed with default policy for: " + strings.Join(c.policy.DefaultsApplied, ", "),
		})
	}
	return warnings
}
