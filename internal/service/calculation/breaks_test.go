package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/policy"
)

func trackedPolicy() policy.BreakPolicy {
	return policy.BreakPolicy{
		Type:            policy.BreakTypeUnpaid,
		MinimumMinutes:  45,
		MaximumMinutes:  90,
		DefaultMinutes:  60,
		TrackingEnabled: true,
		MaxBreaksPerDay: 3,

		NightMinimumMinutes: 60,
		NightDefaultMinutes: 75,
	}
}

func TestEvaluateBreaks_Tracked(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		breaks        []attendance.BreakRecord
		wantActual    int
		wantEffective int
		wantCompliant bool
	}{
		{
			name:          "within bounds counts as is",
			breaks:        []attendance.BreakRecord{{Start: at(12, 0), End: at(12, 55)}},
			wantActual:    55,
			wantEffective: 55,
			wantCompliant: true,
		},
		{
			name:          "shortfall clamps up and flags non-compliance",
			breaks:        []attendance.BreakRecord{{Start: at(12, 0), End: at(12, 30)}},
			wantActual:    30,
			wantEffective: 45,
			wantCompliant: false,
		},
		{
			name: "excess clamps down to maximum",
			breaks: []attendance.BreakRecord{
				{Start: at(12, 0), End: at(13, 0)},
				{Start: at(15, 0), End: at(16, 0)},
			},
			wantActual:    120,
			wantEffective: 90,
			wantCompliant: true,
		},
		{
			name:          "no breaks at all",
			breaks:        nil,
			wantActual:    0,
			wantEffective: 45,
			wantCompliant: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := EvaluateBreaks(tt.breaks, trackedPolicy(), false)
			require.NoError(t, err)
			assert.Equal(t, tt.wantActual, got.ActualMinutes)
			assert.Equal(t, tt.wantEffective, got.EffectiveMinutes)
			assert.Equal(t, len(tt.breaks), got.Count)
			assert.Equal(t, tt.wantCompliant, got.Compliant)
		})
	}
}

func TestEvaluateBreaks_NightShiftMinimum(t *testing.T) {
	t.Parallel()

	got, err := EvaluateBreaks([]attendance.BreakRecord{{Start: at(1, 0), End: at(1, 50)}}, trackedPolicy(), true)
	require.NoError(t, err)
	assert.Equal(t, 60, got.EffectiveMinutes)
	assert.False(t, got.Compliant)
}

func TestEvaluateBreaks_TooMany(t *testing.T) {
	t.Parallel()

	breaks := []attendance.BreakRecord{
		{Start: at(10, 0), End: at(10, 10)},
		{Start: at(12, 0), End: at(12, 30)},
		{Start: at(15, 0), End: at(15, 10)},
		{Start: at(17, 0), End: at(17, 10)},
	}
	_, err := EvaluateBreaks(breaks, trackedPolicy(), false)
	assert.ErrorIs(t, err, attendance.ErrTooManyBreaks)
}

func TestEvaluateBreaks_EndBeforeStart(t *testing.T) {
	t.Parallel()

	breaks := []attendance.BreakRecord{
		{Start: at(10, 0), End: at(10, 10)},
		{Start: at(12, 30), End: at(12, 0)},
	}
	_, err := EvaluateBreaks(breaks, trackedPolicy(), false)
	require.ErrorIs(t, err, attendance.ErrBreakEndBeforeStart)
	assert.Contains(t, err.Error(), "break 2")
}

func TestEvaluateBreaks_FixedMode(t *testing.T) {
	t.Parallel()

	p := trackedPolicy()
	p.FixedMode = true

	got, err := EvaluateBreaks(nil, p, false)
	require.NoError(t, err)
	assert.Equal(t, 60, got.EffectiveMinutes)
	assert.True(t, got.Compliant)

	night, err := EvaluateBreaks(nil, p, true)
	require.NoError(t, err)
	assert.Equal(t, 75, night.EffectiveMinutes)
	assert.True(t, night.Compliant)
}

func TestEvaluateBreaks_TrackingDisabled(t *testing.T) {
	t.Parallel()

	p := trackedPolicy()
	p.TrackingEnabled = false

	// Recorded breaks are ignored when tracking is off; the default applies.
	got, err := EvaluateBreaks([]attendance.BreakRecord{{Start: at(12, 0), End: at(12, 10)}}, p, false)
	require.NoError(t, err)
	assert.Equal(t, 60, got.EffectiveMinutes)
	assert.True(t, got.Compliant)
}
