package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/policy"
)

func TestBaseSalary(t *testing.T) {
	t.Parallel()

	summary := attendance.Summary{WorkingDays: 20, WorkingMinutes: 9600, NumberOfShifts: 20}
	tests := []struct {
		name string
		info payroll.EmployeeSalaryInfo
		want string
	}{
		{
			name: "monthly pays in full",
			info: payroll.EmployeeSalaryInfo{Type: payroll.SalaryTypeMonthly, MonthlySalary: decimal.NewFromInt(10000000)},
			want: "10000000",
		},
		{
			name: "daily times working days",
			info: payroll.EmployeeSalaryInfo{Type: payroll.SalaryTypeDaily, DailyRate: decimal.NewFromInt(450000)},
			want: "9000000",
		},
		{
			name: "hourly times worked hours",
			info: payroll.EmployeeSalaryInfo{Type: payroll.SalaryTypeHourly, HourlyRate: decimal.NewFromInt(60000)},
			want: "9600000",
		},
		{
			name: "shift based times shifts",
			info: payroll.EmployeeSalaryInfo{Type: payroll.SalaryTypeShiftBased, ShiftRate: decimal.NewFromInt(400000)},
			want: "8000000",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := BaseSalary(tt.info, summary)
			require.NoError(t, err)
			assertDecimal(t, tt.want, got)
		})
	}
}

func TestBaseSalary_UnknownType(t *testing.T) {
	t.Parallel()

	_, err := BaseSalary(payroll.EmployeeSalaryInfo{Type: "WEEKLY"}, attendance.Summary{})
	assert.ErrorIs(t, err, payroll.ErrUnknownSalaryType)
}

func TestRoundMoney(t *testing.T) {
	t.Parallel()

	v := decimal.RequireFromString("1234.5678")
	tests := []struct {
		name      string
		direction policy.RoundingDirection
		exponent  int32
		want      string
	}{
		{"nearest two places", policy.RoundNearest, 2, "1234.57"},
		{"down two places", policy.RoundDown, 2, "1234.56"},
		{"up zero places", policy.RoundUp, 0, "1235"},
		{"down zero places", policy.RoundDown, 0, "1234"},
		{"nearest half rounds up", policy.RoundNearest, 0, "1235"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assertDecimal(t, tt.want, roundMoney(v, tt.direction, tt.exponent))
		})
	}
}

func TestAggregatePayroll(t *testing.T) {
	t.Parallel()

	info := payroll.EmployeeSalaryInfo{
		EmployeeID:    "emp-001",
		Type:          payroll.SalaryTypeMonthly,
		MonthlySalary: decimal.NewFromInt(10000000),
		HourlyRate:    decimal.NewFromInt(60000),
	}
	period := payroll.Period{Year: 2026, Month: 3}
	summary := attendance.Summary{EmployeeID: "emp-001", WorkingDays: 21}
	overtime := payroll.OvertimeResult{
		TotalOvertimeMinutes: 120,
		TotalOvertimeAmount:  decimal.NewFromInt(180000),
		NightWorkMinutes:     60,
		NightWorkAmount:      decimal.NewFromInt(75000),
	}
	allowances := payroll.AllowanceResult{TotalAllowances: decimal.NewFromInt(500000)}
	deductions := payroll.DeductionResult{TotalDeductions: decimal.NewFromInt(330500)}
	cfg := policy.PayrollConfig{SalaryRounding: policy.RoundNearest, CurrencyExponent: 0}

	got, err := AggregatePayroll(info, period, summary, overtime, allowances, deductions, cfg)
	require.NoError(t, err)

	// Night-work premium rides on top of the five overtime categories.
	assertDecimal(t, "255000", got.TotalOvertimePay)
	assertDecimal(t, "10755000", got.GrossSalary)
	assertDecimal(t, "10424500", got.NetSalary)
	assert.True(t, got.GrossSalary.Equal(got.BaseSalary.Add(got.TotalOvertimePay).Add(got.TotalAllowances)))
	assert.True(t, got.NetSalary.Equal(got.GrossSalary.Sub(got.TotalDeductions)))
	assert.Equal(t, payroll.SalaryTypeMonthly, got.SalaryType)
	assert.Equal(t, period, got.Period)
}

func TestAggregatePayroll_RoundsOnceAtTheEnd(t *testing.T) {
	t.Parallel()

	info := payroll.EmployeeSalaryInfo{
		EmployeeID: "emp-002",
		Type:       payroll.SalaryTypeHourly,
		HourlyRate: decimal.NewFromInt(100),
	}
	// 95 minutes worked: 95/60 x 100 = 158.333... kept at full precision in
	// BaseSalary, rounded down only in the headline figures.
	summary := attendance.Summary{WorkingMinutes: 95}
	cfg := policy.PayrollConfig{SalaryRounding: policy.RoundDown, CurrencyExponent: 0}

	got, err := AggregatePayroll(info, payroll.Period{Year: 2026, Month: 3}, summary,
		payroll.OvertimeResult{}, payroll.AllowanceResult{}, payroll.DeductionResult{}, cfg)
	require.NoError(t, err)

	assert.False(t, got.BaseSalary.Equal(decimal.NewFromInt(158)))
	assertDecimal(t, "158", got.GrossSalary)
	assertDecimal(t, "158", got.NetSalary)
}
