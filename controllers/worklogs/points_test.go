package worklogs

import (
	"testing"
	"time"
)

func TestPointsEarned(t *testing.T) {
	cases := []struct {
		name     string
		base     float64
		bonus    float64
		standard int64
		duration int64
		want     float64
	}{
		{"under standard time earns bonus", 50, 1, 300, 270, 80},
		{"over standard time earns base only", 50, 1, 300, 310, 50},
		{"exactly standard time earns base only", 50, 1, 300, 300, 50},
		{"fractional bonus rate", 30, 0.5, 180, 120, 60},
		{"higher bonus rate", 30, 2, 180, 150, 90},
		{"zero duration earns full bonus", 25, 1, 120, 0, 145},
	}
	for _, tc := range cases {
		got := PointsEarned(tc.base, tc.bonus, tc.standard, tc.duration)
		if got != tc.want {
			t.Fatalf("%s: PointsEarned = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestDurationSeconds_TruncatesFractional(t *testing.T) {
	start := time.Date(2025, 10, 26, 8, 0, 0, 0, time.UTC)
	end := start.Add(270*time.Second + 900*time.Millisecond)
	if got := DurationSeconds(start, end); got != 270 {
		t.Fatalf("expected 270, got %d", got)
	}
}

func TestDurationSeconds_ClampsNegative(t *testing.T) {
	start := time.Date(2025, 10, 26, 8, 0, 0, 0, time.UTC)
	end := start.Add(-30 * time.Second)
	if got := DurationSeconds(start, end); got != 0 {
		t.Fatalf("expected clock-skew clamp to 0, got %d", got)
	}
}
