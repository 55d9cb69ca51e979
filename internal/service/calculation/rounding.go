package calculation

import (
	"time"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/policy"
)

// RoundTime rounds a timestamp to the policy's interval, measured from the
// timestamp's own local midnight. Seconds are truncated before rounding.
// Rounding past midnight rolls the date; the date component is never
// truncated. A disabled policy passes the timestamp through (minus seconds).
func RoundTime(t time.Time, p policy.RoundingPolicy) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
	if !p.Enabled {
		return t
	}

	minutes := t.Hour()*60 + t.Minute()
	interval := p.IntervalMinutes
	rem := minutes % interval
	if rem == 0 {
		return t
	}

	rounded := minutes - rem
	switch p.Direction {
	case policy.RoundUp:
		rounded += interval
	case policy.RoundNearest:
		// Exact half-interval ties round up.
		if rem*2 >= interval {
			rounded += interval
		}
	}

	return t.Add(time.Duration(rounded-minutes) * time.Minute)
}

// ApplyRounding returns a copy of the day with every checkpoint timestamp
// rounded per its policy. The master switch disables all four checkpoints at
// once; each checkpoint also has its own enable flag.
func ApplyRounding(day attendance.Day, cfg policy.RoundingConfig) attendance.Day {
	if !cfg.Enabled {
		return day
	}

	rounded := day
	if day.CheckIn != nil {
		t := RoundTime(*day.CheckIn, cfg.CheckIn)
		rounded.CheckIn = &t
	}
	if day.CheckOut != nil {
		t := RoundTime(*day.CheckOut, cfg.CheckOut)
		rounded.CheckOut = &t
	}
	if len(day.Breaks) > 0 {
		rounded.Breaks = make([]attendance.BreakRecord, len(day.Breaks))
		for i, b := range day.Breaks {
			rounded.Breaks[i] = attendance.BreakRecord{
				Start: RoundTime(b.Start, cfg.BreakStart),
				End:   RoundTime(b.End, cfg.BreakEnd),
			}
		}
	}
	return rounded
}
