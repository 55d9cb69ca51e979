package calculation

import (
	"fmt"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/policy"
	"github.com/shopspring/decimal"
)

// BaseSalary derives the period's base pay from the salary type and the
// attendance summary. Monthly salaries pay in full regardless of attendance;
// absence is handled by the deduction stage.
func BaseSalary(info payroll.EmployeeSalaryInfo, summary attendance.Summary) (decimal.Decimal, error) {
	switch info.Type {
	case payroll.SalaryTypeMonthly:
		return info.MonthlySalary, nil
	case payroll.SalaryTypeDaily:
		return info.DailyRate.Mul(decimal.NewFromInt(int64(summary.WorkingDays))), nil
	case payroll.SalaryTypeHourly:
		return info.HourlyRate.Mul(decimal.NewFromInt(int64(summary.WorkingMinutes))).Div(sixty), nil
	case payroll.SalaryTypeShiftBased:
		return info.ShiftRate.Mul(decimal.NewFromInt(int64(summary.NumberOfShifts))), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %q", payroll.ErrUnknownSalaryType, info.Type)
	}
}

// roundMoney applies the company salary rounding exactly once, at the
// currency's minor unit.
func roundMoney(d decimal.Decimal, direction policy.RoundingDirection, exponent int32) decimal.Decimal {
	switch direction {
	case policy.RoundUp:
		return d.RoundCeil(exponent)
	case policy.RoundDown:
		return d.RoundFloor(exponent)
	default:
		return d.Round(exponent)
	}
}

// AggregatePayroll assembles the final result for one employee and period.
// All sub-results stay at full precision; the salary rounding policy touches
// only the headline figures, so re-running the aggregation never drifts.
func AggregatePayroll(
	info payroll.EmployeeSalaryInfo,
	period payroll.Period,
	summary attendance.Summary,
	overtime payroll.OvertimeResult,
	allowances payroll.AllowanceResult,
	deductions payroll.DeductionResult,
	cfg policy.PayrollConfig,
) (payroll.PayrollResult, error) {
	base, err := BaseSalary(info, summary)
	if err != nil {
		return payroll.PayrollResult{}, err
	}

	overtimePay := overtime.TotalOvertimeAmount.Add(overtime.NightWorkAmount)
	gross := base.Add(overtimePay).Add(allowances.TotalAllowances)
	net := gross.Sub(deductions.TotalDeductions)

	return payroll.PayrollResult{
		EmployeeID: info.EmployeeID,
		Period:     period,
		SalaryType: info.Type,

		BaseSalary:       base,
		TotalOvertimePay: overtimePay,
		TotalAllowances:  allowances.TotalAllowances,
		TotalDeductions:  deductions.TotalDeductions,
		GrossSalary:      roundMoney(gross, cfg.SalaryRounding, cfg.CurrencyExponent),
		NetSalary:        roundMoney(net, cfg.SalaryRounding, cfg.CurrencyExponent),

		Summary:    summary,
		Overtime:   overtime,
		Allowances: allowances,
		Deductions: deductions,
	}, nil
}
