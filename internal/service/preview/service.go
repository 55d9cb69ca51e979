package preview

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-engine-go/internal/service/calculation"
)

const defaultWorkers = 8

// Service computes company-wide payroll previews. The per-employee
// calculation is pure; the service owns the boundary lookups and the fan-out.
type Service struct {
	policies   *PolicyCache
	attendance attendance.AttendanceRepository
	salaries   payroll.SalaryRepository
	logger     *zap.Logger
	workers    int
}

func NewService(policies *PolicyCache, att attendance.AttendanceRepository, salaries payroll.SalaryRepository, logger *zap.Logger, workers int) *Service {
	if workers < 1 {
		workers = defaultWorkers
	}
	return &Service{
		policies:   policies,
		attendance: att,
		salaries:   salaries,
		logger:     logger,
		workers:    workers,
	}
}

// Preview calculates one pay period for every requested employee of a
// company. Employees are computed concurrently; one employee's bad data marks
// only that row as failed and never aborts the batch. Rows come back ordered
// by employee ID, so identical inputs always produce identical output.
func (s *Service) Preview(ctx context.Context, req *payroll.PreviewRequest) (*payroll.PayrollPreviewResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	period := req.Period()

	calc, err := s.policies.Calculator(ctx, req.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("load policy for company %s: %w", req.CompanyID, err)
	}

	roster, err := s.roster(ctx, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info("starting payroll preview",
		zap.String("company_id", req.CompanyID),
		zap.String("period", period.String()),
		zap.Int("employees", len(roster)),
	)

	rows := make([]payroll.EmployeePayrollPreview, len(roster))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, info := range roster {
		g.Go(func() error {
			rows[i] = s.previewOne(gctx, calc, req.CompanyID, info, period)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := &payroll.PayrollPreviewResponse{
		CompanyID:   req.CompanyID,
		PeriodMonth: req.PeriodMonth,
		PeriodYear:  req.PeriodYear,
		Employees:   rows,
	}
	for _, row := range rows {
		resp.EmployeeCount++
		if row.Result == nil {
			resp.FailedCount++
			continue
		}
		resp.TotalGrossSalary = resp.TotalGrossSalary.Add(row.Result.GrossSalary)
		resp.TotalNetSalary = resp.TotalNetSalary.Add(row.Result.NetSalary)
	}

	s.logger.Info("payroll preview complete",
		zap.String("company_id", req.CompanyID),
		zap.Int("employees", resp.EmployeeCount),
		zap.Int("failed", resp.FailedCount),
	)
	return resp, nil
}

// roster resolves the employees to compute: the explicit request list, or
// every active employee of the company. Always sorted by employee ID.
func (s *Service) roster(ctx context.Context, req *payroll.PreviewRequest) ([]payroll.EmployeeSalaryInfo, error) {
	if len(req.EmployeeIDs) == 0 {
		return s.salaries.ListActive(ctx, req.CompanyID)
	}

	roster := make([]payroll.EmployeeSalaryInfo, 0, len(req.EmployeeIDs))
	for _, id := range req.EmployeeIDs {
		info, err := s.salaries.GetSalaryInfo(ctx, req.CompanyID, id)
		if err != nil {
			return nil, fmt.Errorf("employee %s: %w", id, err)
		}
		roster = append(roster, info)
	}
	sort.Slice(roster, func(i, j int) bool { return roster[i].EmployeeID < roster[j].EmployeeID })
	return roster, nil
}

func (s *Service) previewOne(ctx context.Context, calc *calculation.Calculator, companyID string, info payroll.EmployeeSalaryInfo, period payroll.Period) payroll.EmployeePayrollPreview {
	row := payroll.EmployeePayrollPreview{
		EmployeeID:   info.EmployeeID,
		EmployeeName: info.EmployeeName,
	}

	days, err := s.attendance.ListDays(ctx, companyID, info.EmployeeID, period.Start(), period.End())
	if err != nil {
		return failRow(row, err)
	}

	result, err := calc.CalculatePeriod(days, info, period)
	if err != nil {
		s.logger.Warn("employee payroll failed",
			zap.String("company_id", companyID),
			zap.String("employee_id", info.EmployeeID),
			zap.Error(err),
		)
		return failRow(row, err)
	}

	row.Result = &result
	return row
}

func failRow(row payroll.EmployeePayrollPreview, err error) payroll.EmployeePayrollPreview {
	msg := err.Error()
	row.Error = &msg
	return row
}
