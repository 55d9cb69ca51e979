package payroll

import (
	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== PREVIEW DTOs ==========

type PreviewRequest struct {
	CompanyID   string   `json:"company_id"`
	PeriodMonth int      `json:"period_month"`
	PeriodYear  int      `json:"period_year"`
	EmployeeIDs []string `json:"employee_ids,omitempty"` // Empty = all active employees
}

func (r *PreviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CompanyID) {
		errs = append(errs, validator.ValidationError{Field: "company_id", Message: "is required"})
	}
	if r.PeriodMonth < 1 || r.PeriodMonth > 12 {
		errs = append(errs, validator.ValidationError{Field: "period_month", Message: "must be between 1 and 12"})
	}
	if r.PeriodYear < 2000 {
		errs = append(errs, validator.ValidationError{Field: "period_year", Message: "must be 2000 or later"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *PreviewRequest) Period() Period {
	return Period{Year: r.PeriodYear, Month: r.PeriodMonth}
}

// EmployeePayrollPreview - one employee's row in a company-wide preview. When
// a single employee's data fails integrity checks, only that row carries an
// error; the rest of the batch still computes.
type EmployeePayrollPreview struct {
	EmployeeID   string         `json:"employee_id"`
	EmployeeName string         `json:"employee_name"`
	Result       *PayrollResult `json:"result,omitempty"`
	Error        *string        `json:"error,omitempty"`
}

// PayrollPreviewResponse - the aggregate preview of one period for a company.
// Rows are ordered by employee ID so identical inputs always render
// identically.
type PayrollPreviewResponse struct {
	CompanyID   string                   `json:"company_id"`
	PeriodMonth int                      `json:"period_month"`
	PeriodYear  int                      `json:"period_year"`
	Employees   []EmployeePayrollPreview `json:"employees"`

	EmployeeCount    int             `json:"employee_count"`
	FailedCount      int             `json:"failed_count"`
	TotalGrossSalary decimal.Decimal `json:"total_gross_salary"`
	TotalNetSalary   decimal.Decimal `json:"total_net_salary"`
}
