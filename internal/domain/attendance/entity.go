package attendance

import (
	"time"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/policy"
)

// BreakRecord - one tracked break within a working day. Timestamps are raw;
// rounding happens inside the calculation chain.
type BreakRecord struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// DaySchedule - the scheduled clock times for a day, used to derive late
// arrival and early leave. Days without an assigned schedule carry none.
type DaySchedule struct {
	ClockIn  policy.ClockTime `json:"clock_in"`
	ClockOut policy.ClockTime `json:"clock_out"`
}

// Day - raw attendance for one employee on one working day, exactly as the
// attendance store recorded it.
type Day struct {
	Date      time.Time     `json:"date"` // working day, local midnight
	CheckIn   *time.Time    `json:"check_in,omitempty"`
	CheckOut  *time.Time    `json:"check_out,omitempty"`
	Breaks    []BreakRecord `json:"breaks,omitempty"`
	IsHoliday bool          `json:"is_holiday"`
	IsWeekend bool          `json:"is_weekend"`
	Schedule  *DaySchedule  `json:"schedule,omitempty"`
}

// Worked reports whether the day has a complete check-in/check-out pair.
func (d Day) Worked() bool {
	return d.CheckIn != nil && d.CheckOut != nil
}

// BreakResult - evaluated break compliance for one day.
type BreakResult struct {
	ActualMinutes    int  `json:"actual_minutes"`
	EffectiveMinutes int  `json:"effective_minutes"`
	Count            int  `json:"count"`
	Compliant        bool `json:"compliant"`
}

// WorkingHoursResult - the minute breakdown of one worked day.
//
// Invariants: NetWorkingMinutes equals GrossWorkingMinutes minus the
// effective break only for UNPAID break policies, and
// NightMinutes + RegularMinutes == NetWorkingMinutes.
type WorkingHoursResult struct {
	GrossWorkingMinutes   int  `json:"gross_working_minutes"`
	NetWorkingMinutes     int  `json:"net_working_minutes"`
	TotalBreakMinutes     int  `json:"total_break_minutes"`
	EffectiveBreakMinutes int  `json:"effective_break_minutes"`
	BreakCompliant        bool `json:"break_compliant"`
	IsNightShift          bool `json:"is_night_shift"`
	IsOvernightShift      bool `json:"is_overnight_shift"`
	NightMinutes          int  `json:"night_minutes"`
	RegularMinutes        int  `json:"regular_minutes"`
}

// Summary - aggregate attendance figures for one employee over a pay period.
// Allowance and deduction rules evaluate against this.
type Summary struct {
	EmployeeID             string `json:"employee_id"`
	WorkingDays            int    `json:"working_days"`
	WorkingMinutes         int    `json:"working_minutes"`
	AbsenceDays            int    `json:"absence_days"`
	LateCount              int    `json:"late_count"`
	TotalLateMinutes       int    `json:"total_late_minutes"`
	EarlyLeaveCount        int    `json:"early_leave_count"`
	TotalEarlyLeaveMinutes int    `json:"total_early_leave_minutes"`
	NumberOfShifts         int    `json:"number_of_shifts"`
}

// WorkingHours returns the summary's worked time in whole hours, as allowance
// conditions are expressed in hours.
func (s Summary) WorkingHours() int {
	return s.WorkingMinutes / 60
}
