package calculation

import (
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/policy"
	"github.com/shopspring/decimal"
)

var sixty = decimal.NewFromInt(60)

// categoryAmount prices a category at full precision: minutes/60 x hourly
// rate x multiplier. Nothing is rounded here; the aggregator rounds once.
func categoryAmount(minutes int, hourlyRate, multiplier decimal.Decimal) decimal.Decimal {
	if minutes == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(minutes)).Div(sixty).Mul(hourlyRate).Mul(multiplier)
}

// ClassifyOvertime buckets one day's net minutes into the five mutually
// exclusive overtime categories plus the separate night-work premium.
//
// Holidays pay the whole day at the holiday rates, split by night overlap.
// Weekends pay the whole day at the weekend rate. On plain weekdays only
// minutes past the standard day are overtime; night minutes are assigned to
// overtime before regular hours, since the tail of the shift is what runs
// past the threshold.
func ClassifyOvertime(hours attendance.WorkingHoursResult, isHoliday, isWeekend bool, p policy.OvertimePolicy, hourlyRate decimal.Decimal) payroll.OvertimeResult {
	if !p.Enabled {
		return payroll.OvertimeResult{}
	}

	mult := p.EffectiveMultipliers()
	net := hours.NetWorkingMinutes
	var res payroll.OvertimeResult

	switch {
	case isHoliday:
		res.HolidayNightOvertimeMinutes = hours.NightMinutes
		res.HolidayOvertimeMinutes = net - hours.NightMinutes
	case isWeekend:
		res.WeekendOvertimeMinutes = net
	default:
		overtime := net - p.StandardWorkingMinutesPerDay
		if overtime < 0 {
			overtime = 0
		}
		nightOT := hours.NightMinutes
		if nightOT > overtime {
			nightOT = overtime
		}
		res.NightOvertimeMinutes = nightOT
		res.RegularOvertimeMinutes = overtime - nightOT
		res.NightWorkMinutes = hours.NightMinutes - nightOT
	}

	res.RegularOvertimeAmount = categoryAmount(res.RegularOvertimeMinutes, hourlyRate, mult.Regular)
	res.NightOvertimeAmount = categoryAmount(res.NightOvertimeMinutes, hourlyRate, mult.NightOvertime)
	res.HolidayOvertimeAmount = categoryAmount(res.HolidayOvertimeMinutes, hourlyRate, mult.HolidayOvertime)
	res.HolidayNightOvertimeAmount = categoryAmount(res.HolidayNightOvertimeMinutes, hourlyRate, mult.HolidayNightOvertime)
	res.WeekendOvertimeAmount = categoryAmount(res.WeekendOvertimeMinutes, hourlyRate, mult.WeekendOvertime)
	res.NightWorkAmount = categoryAmount(res.NightWorkMinutes, hourlyRate, mult.NightWork)

	res.TotalOvertimeMinutes = res.RegularOvertimeMinutes + res.NightOvertimeMinutes +
		res.HolidayOvertimeMinutes + res.HolidayNightOvertimeMinutes + res.WeekendOvertimeMinutes
	res.TotalOvertimeAmount = res.RegularOvertimeAmount.
		Add(res.NightOvertimeAmount).
		Add(res.HolidayOvertimeAmount).
		Add(res.HolidayNightOvertimeAmount).
		Add(res.WeekendOvertimeAmount)

	// Minutes past the daily cap are flagged, never clipped; an approval
	// workflow decides what happens to them.
	if p.MaxOvertimeMinutesPerDay > 0 && res.TotalOvertimeMinutes > p.MaxOvertimeMinutesPerDay {
		res.OverCapMinutes = res.TotalOvertimeMinutes - p.MaxOvertimeMinutesPerDay
	}

	return res
}

// addOvertime accumulates a day's result into a running period total.
func addOvertime(sum, day payroll.OvertimeResult) payroll.OvertimeResult {
	sum.RegularOvertimeMinutes += day.RegularOvertimeMinutes
	sum.NightOvertimeMinutes += day.NightOvertimeMinutes
	sum.HolidayOvertimeMinutes += day.HolidayOvertimeMinutes
	sum.HolidayNightOvertimeMinutes += day.HolidayNightOvertimeMinutes
	sum.WeekendOvertimeMinutes += day.WeekendOvertimeMinutes
	sum.NightWorkMinutes += day.NightWorkMinutes
	sum.TotalOvertimeMinutes += day.TotalOvertimeMinutes
	sum.OverCapMinutes += day.OverCapMinutes

	sum.RegularOvertimeAmount = sum.RegularOvertimeAmount.Add(day.RegularOvertimeAmount)
	sum.NightOvertimeAmount = sum.NightOvertimeAmount.Add(day.NightOvertimeAmount)
	sum.HolidayOvertimeAmount = sum.HolidayOvertimeAmount.Add(day.HolidayOvertimeAmount)
	sum.HolidayNightOvertimeAmount = sum.HolidayNightOvertimeAmount.Add(day.HolidayNightOvertimeAmount)
	sum.WeekendOvertimeAmount = sum.WeekendOvertimeAmount.Add(day.WeekendOvertimeAmount)
	sum.NightWorkAmount = sum.NightWorkAmount.Add(day.NightWorkAmount)
	sum.TotalOvertimeAmount = sum.TotalOvertimeAmount.Add(day.TotalOvertimeAmount)
	return sum
}
