package attendance

import (
	"context"
	"time"
)

// AttendanceRepository is the Attendance Store boundary: raw check-in/out,
// break records and day flags for a pay period. The engine only reads.
type AttendanceRepository interface {
	// ListDays returns the recorded days for one employee with Date in
	// [from, to], ordered by Date ascending.
	ListDays(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]Day, error)

	// SaveDay upserts one recorded day (used by seeding and tests).
	SaveDay(ctx context.Context, companyID, employeeID string, day Day) error
}
