package calculation

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/policy"
)

// shiftSpan resolves a rounded check-in/check-out pair into an interval of
// minutes relative to the check-in day's midnight. A check-out whose wall
// clock falls before the check-in within 24 hours is read as an overnight
// shift and shifted to the next day; anything earlier is corrupt data.
func shiftSpan(checkIn, checkOut time.Time) (from, to int, overnight bool, err error) {
	d := checkOut.Sub(checkIn)
	if d < 0 {
		if d <= -24*time.Hour {
			return 0, 0, false, fmt.Errorf("%w: check-out %s precedes check-in %s by a full day or more",
				attendance.ErrCheckOutBeforeCheckIn, checkOut.Format(time.RFC3339), checkIn.Format(time.RFC3339))
		}
		checkOut = checkOut.Add(24 * time.Hour)
		d += 24 * time.Hour
	}

	from = checkIn.Hour()*60 + checkIn.Minute()
	to = from + int(d.Minutes())

	iy, im, id := checkIn.Date()
	oy, om, od := checkOut.Date()
	overnight = iy != oy || im != om || id != od
	return from, to, overnight, nil
}

// CalculateWorkingHours splits one worked day into gross, net, night and
// regular minutes.
//
// The net figure subtracts the effective break only for UNPAID break types.
// Night minutes are the overlap of the worked interval with the overtime
// night window, capped at the net total so that night plus regular always
// equals net.
func CalculateWorkingHours(checkIn, checkOut time.Time, breaks attendance.BreakResult, breakType policy.BreakType, nightWindow policy.ClockWindow) (attendance.WorkingHoursResult, error) {
	from, to, overnight, err := shiftSpan(checkIn, checkOut)
	if err != nil {
		return attendance.WorkingHoursResult{}, err
	}

	gross := to - from
	net := gross
	if breakType == policy.BreakTypeUnpaid {
		net -= breaks.EffectiveMinutes
		if net < 0 {
			net = 0
		}
	}

	night := nightWindow.OverlapMinutes(from, to)
	if night > net {
		night = net
	}

	return attendance.WorkingHoursResult{
		GrossWorkingMinutes:   gross,
		NetWorkingMinutes:     net,
		TotalBreakMinutes:     breaks.ActualMinutes,
		EffectiveBreakMinutes: breaks.EffectiveMinutes,
		BreakCompliant:        breaks.Compliant,
		IsNightShift:          night > 0,
		IsOvernightShift:      overnight,
		NightMinutes:          night,
		RegularMinutes:        net - night,
	}, nil
}
