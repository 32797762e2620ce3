package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNowUTC(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 18, 30, 0, 0, time.FixedZone("KST", 9*60*60))
	withClock(t, func() time.Time { return fixed })

	got := NowUTC()
	require.Equal(t, time.UTC, got.Location())
	require.True(t, got.Equal(fixed))
}

func TestElapsed(t *testing.T) {
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		want  time.Duration
	}{
		{name: "past start", start: base.Add(-1500 * time.Millisecond), want: 1500 * time.Millisecond},
		{name: "same instant", start: base, want: 0},
		{name: "clock stepped back", start: base.Add(time.Second), want: 0},
	}

	withClock(t, func() time.Time { return base })
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Elapsed(tt.start))
		})
	}
}

func withClock(t *testing.T, fn func() time.Time) {
	t.Helper()
	prev := now
	now = fn
	t.Cleanup(func() { now = prev })
}
