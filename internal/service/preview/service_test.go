package preview

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/policy"
	"github.com/cmlabs-hris/payroll-engine-go/internal/fixtures"
)

// ========== FAKES ==========

type fakePolicyRepo struct {
	mu       sync.Mutex
	policies map[string]policy.CompanyPolicy
	calls    int
}

func (f *fakePolicyRepo) GetCompanyPolicy(_ context.Context, companyID string) (policy.CompanyPolicy, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	p, ok := f.policies[companyID]
	if !ok {
		return policy.CompanyPolicy{}, policy.ErrPolicyNotFound
	}
	return p, nil
}

func (f *fakePolicyRepo) SaveCompanyPolicy(_ context.Context, p policy.CompanyPolicy) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.policies == nil {
		f.policies = make(map[string]policy.CompanyPolicy)
	}
	f.policies[p.CompanyID] = p
	return nil
}

type fakeAttendanceRepo struct {
	days map[string][]attendance.Day
}

func (f *fakeAttendanceRepo) ListDays(_ context.Context, _, employeeID string, _, _ time.Time) ([]attendance.Day, error) {
	return f.days[employeeID], nil
}

func (f *fakeAttendanceRepo) SaveDay(_ context.Context, _, _ string, _ attendance.Day) error {
	return nil
}

type fakeSalaryRepo struct {
	infos []payroll.EmployeeSalaryInfo
}

func (f *fakeSalaryRepo) GetSalaryInfo(_ context.Context, _, employeeID string) (payroll.EmployeeSalaryInfo, error) {
	for _, info := range f.infos {
		if info.EmployeeID == employeeID {
			return info, nil
		}
	}
	return payroll.EmployeeSalaryInfo{}, payroll.ErrSalaryInfoNotFound
}

func (f *fakeSalaryRepo) ListActive(_ context.Context, _ string) ([]payroll.EmployeeSalaryInfo, error) {
	return f.infos, nil
}

func (f *fakeSalaryRepo) SaveSalaryInfo(_ context.Context, _ string, _ payroll.EmployeeSalaryInfo) error {
	return nil
}

// ========== HELPERS ==========

func workedDay(dom, inHour, outHour int) attendance.Day {
	in := time.Date(2026, 3, dom, inHour, 0, 0, 0, time.Local)
	out := time.Date(2026, 3, dom, outHour, 0, 0, 0, time.Local)
	return attendance.Day{
		Date:     time.Date(2026, 3, dom, 0, 0, 0, 0, time.Local),
		CheckIn:  &in,
		CheckOut: &out,
		Breaks: []attendance.BreakRecord{
			{
				Start: time.Date(2026, 3, dom, 12, 0, 0, 0, time.Local),
				End:   time.Date(2026, 3, dom, 13, 0, 0, 0, time.Local),
			},
		},
	}
}

func monthlyEmployee(id, name string) payroll.EmployeeSalaryInfo {
	return payroll.EmployeeSalaryInfo{
		EmployeeID:    id,
		EmployeeName:  name,
		Type:          payroll.SalaryTypeMonthly,
		MonthlySalary: decimal.NewFromInt(10000000),
		HourlyRate:    decimal.NewFromInt(60000),
	}
}

func newTestService(policies *fakePolicyRepo, att *fakeAttendanceRepo, salaries *fakeSalaryRepo) *Service {
	return NewService(NewPolicyCache(policies), att, salaries, zap.NewNop(), 4)
}

// ========== TESTS ==========

func TestPolicyCache_LoadsOnce(t *testing.T) {
	t.Parallel()

	repo := &fakePolicyRepo{policies: map[string]policy.CompanyPolicy{
		"comp-001": fixtures.DefaultCompanyPolicy("comp-001"),
	}}
	cache := NewPolicyCache(repo)

	first, err := cache.Calculator(context.Background(), "comp-001")
	require.NoError(t, err)
	second, err := cache.Calculator(context.Background(), "comp-001")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, repo.calls)
}

func TestPolicyCache_FallsBackToDefaults(t *testing.T) {
	t.Parallel()

	cache := NewPolicyCache(&fakePolicyRepo{})
	calc, err := cache.Calculator(context.Background(), "comp-unknown")
	require.NoError(t, err)

	assert.Contains(t, calc.Policy().DefaultsApplied, "rounding")
	assert.Contains(t, calc.Policy().DefaultsApplied, "overtime")
}

func TestPreview_AllActiveEmployees(t *testing.T) {
	t.Parallel()

	salaries := &fakeSalaryRepo{infos: []payroll.EmployeeSalaryInfo{
		monthlyEmployee("emp-001", "Ayu"),
		monthlyEmployee("emp-002", "Budi"),
	}}
	att := &fakeAttendanceRepo{days: map[string][]attendance.Day{
		"emp-001": {workedDay(2, 9, 18), workedDay(3, 9, 18)},
		"emp-002": {workedDay(2, 9, 18)},
	}}
	svc := newTestService(&fakePolicyRepo{}, att, salaries)

	got, err := svc.Preview(context.Background(), &payroll.PreviewRequest{
		CompanyID: "comp-001", PeriodMonth: 3, PeriodYear: 2026,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, got.EmployeeCount)
	assert.Equal(t, 0, got.FailedCount)
	require.Len(t, got.Employees, 2)
	assert.Equal(t, "emp-001", got.Employees[0].EmployeeID)
	assert.Equal(t, "emp-002", got.Employees[1].EmployeeID)
	require.NotNil(t, got.Employees[0].Result)
	require.NotNil(t, got.Employees[1].Result)

	wantTotal := got.Employees[0].Result.NetSalary.Add(got.Employees[1].Result.NetSalary)
	assert.True(t, got.TotalNetSalary.Equal(wantTotal))
}

func TestPreview_BadEmployeeFailsOnlyItsRow(t *testing.T) {
	t.Parallel()

	salaries := &fakeSalaryRepo{infos: []payroll.EmployeeSalaryInfo{
		monthlyEmployee("emp-001", "Ayu"),
		monthlyEmployee("emp-002", "Budi"),
	}}
	// emp-002 has a check-in without a check-out.
	brokenIn := time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local)
	att := &fakeAttendanceRepo{days: map[string][]attendance.Day{
		"emp-001": {workedDay(2, 9, 18)},
		"emp-002": {{Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local), CheckIn: &brokenIn}},
	}}
	svc := newTestService(&fakePolicyRepo{}, att, salaries)

	got, err := svc.Preview(context.Background(), &payroll.PreviewRequest{
		CompanyID: "comp-001", PeriodMonth: 3, PeriodYear: 2026,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, got.EmployeeCount)
	assert.Equal(t, 1, got.FailedCount)
	assert.NotNil(t, got.Employees[0].Result)
	assert.Nil(t, got.Employees[1].Result)
	require.NotNil(t, got.Employees[1].Error)
	assert.Contains(t, *got.Employees[1].Error, "missing check-in or check-out")

	// Totals cover only the rows that computed.
	assert.True(t, got.TotalNetSalary.Equal(got.Employees[0].Result.NetSalary))
}

func TestPreview_ExplicitEmployeeList(t *testing.T) {
	t.Parallel()

	salaries := &fakeSalaryRepo{infos: []payroll.EmployeeSalaryInfo{
		monthlyEmployee("emp-001", "Ayu"),
		monthlyEmployee("emp-002", "Budi"),
		monthlyEmployee("emp-003", "Citra"),
	}}
	att := &fakeAttendanceRepo{days: map[string][]attendance.Day{}}
	svc := newTestService(&fakePolicyRepo{}, att, salaries)

	got, err := svc.Preview(context.Background(), &payroll.PreviewRequest{
		CompanyID: "comp-001", PeriodMonth: 3, PeriodYear: 2026,
		EmployeeIDs: []string{"emp-003", "emp-001"},
	})
	require.NoError(t, err)

	require.Len(t, got.Employees, 2)
	assert.Equal(t, "emp-001", got.Employees[0].EmployeeID)
	assert.Equal(t, "emp-003", got.Employees[1].EmployeeID)
}

func TestPreview_UnknownEmployee(t *testing.T) {
	t.Parallel()

	svc := newTestService(&fakePolicyRepo{}, &fakeAttendanceRepo{}, &fakeSalaryRepo{})
	_, err := svc.Preview(context.Background(), &payroll.PreviewRequest{
		CompanyID: "comp-001", PeriodMonth: 3, PeriodYear: 2026,
		EmployeeIDs: []string{"emp-404"},
	})
	assert.ErrorIs(t, err, payroll.ErrSalaryInfoNotFound)
}

func TestPreview_InvalidRequest(t *testing.T) {
	t.Parallel()

	svc := newTestService(&fakePolicyRepo{}, &fakeAttendanceRepo{}, &fakeSalaryRepo{})
	_, err := svc.Preview(context.Background(), &payroll.PreviewRequest{
		CompanyID: "", PeriodMonth: 13, PeriodYear: 2026,
	})
	assert.Error(t, err)
}
