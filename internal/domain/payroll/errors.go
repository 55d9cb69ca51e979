package payroll

import "errors"

var (
	ErrSalaryInfoNotFound = errors.New("employee salary info not found")
	ErrUnknownSalaryType  = errors.New("unknown salary type")
	ErrMissingHourlyRate  = errors.New("hourly rate is required when overtime is enabled")
	ErrInvalidPeriod      = errors.New("invalid payroll period")
)
