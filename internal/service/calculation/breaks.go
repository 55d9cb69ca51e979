package calculation

import (
	"fmt"
	"sort"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/policy"
)

// EvaluateBreaks derives the day's break compliance from its rounded break
// records.
//
// With tracking enabled the effective break is the actual total clamped into
// [minimum, maximum]; a shortfall still counts the minimum against working
// time but marks the day non-compliant. Without tracking (or in fixed mode)
// the policy default applies and the day is compliant by definition. The
// night-shift minimum and default replace the day values when the shift
// overlaps the break policy's night window.
func EvaluateBreaks(breaks []attendance.BreakRecord, p policy.BreakPolicy, nightShift bool) (attendance.BreakResult, error) {
	if !p.TrackingEnabled || p.FixedMode {
		def := p.EffectiveDefault(nightShift)
		return attendance.BreakResult{
			ActualMinutes:    def,
			EffectiveMinutes: def,
			Count:            len(breaks),
			Compliant:        true,
		}, nil
	}

	if p.MaxBreaksPerDay > 0 && len(breaks) > p.MaxBreaksPerDay {
		return attendance.BreakResult{}, fmt.Errorf("%w: %d breaks, maximum %d", attendance.ErrTooManyBreaks, len(breaks), p.MaxBreaksPerDay)
	}

	ordered := make([]attendance.BreakRecord, len(breaks))
	copy(ordered, breaks)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Start.Before(ordered[j].Start)
	})

	actual := 0
	for i, b := range ordered {
		d := int(b.End.Sub(b.Start).Minutes())
		if d < 0 {
			return attendance.BreakResult{}, fmt.Errorf("break %d: %w", i+1, attendance.ErrBreakEndBeforeStart)
		}
		actual += d
	}

	minimum := p.EffectiveMinimum(nightShift)
	effective := actual
	if effective < minimum {
		effective = minimum
	}
	if p.MaximumMinutes > 0 && effective > p.MaximumMinutes {
		effective = p.MaximumMinutes
	}

	return attendance.BreakResult{
		ActualMinutes:    actual,
		EffectiveMinutes: effective,
		Count:            len(ordered),
		Compliant:        actual >= minimum,
	}, nil
}
