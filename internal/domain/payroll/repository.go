package payroll

import "context"

// SalaryRepository is the Salary Store boundary: effective salary
// configuration per employee, resolved externally.
type SalaryRepository interface {
	// GetSalaryInfo returns one employee's effective salary info.
	// Returns ErrSalaryInfoNotFound when the employee is unknown.
	GetSalaryInfo(ctx context.Context, companyID, employeeID string) (EmployeeSalaryInfo, error)

	// ListActive returns salary info for every active employee of a company,
	// ordered by employee ID.
	ListActive(ctx context.Context, companyID string) ([]EmployeeSalaryInfo, error)

	// SaveSalaryInfo upserts one employee's salary info (seeding and tests).
	SaveSalaryInfo(ctx context.Context, companyID string, info EmployeeSalaryInfo) error
}
