package streaks

import (
	"testing"
	"time"

	"github.com/jcastellanos/habitframe-backend/pkg/db/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextStreakNonAdherentAlwaysResets(t *testing.T) {
	habit := &models.Habit{CurrentStreak: 10, LongestStreak: 10}
	for _, strict := range []bool{false, true} {
		if got := NextStreak(habit, date(2026, 3, 1), false, strict); got != 0 {
			t.Fatalf("strict=%v: non-adherent must reset to 0, got %d", strict, got)
		}
	}
}

func TestNextStreakDefaultIncrementsRegardlessOfGap(t *testing.T) {
	prev := date(2026, 1, 1)
	habit := &models.Habit{CurrentStreak: 1, LastLoggedDate: &prev}

	if got := NextStreak(habit, date(2026, 1, 30), true, false); got != 2 {
		t.Fatalf("default rule increments across gaps, got %d", got)
	}
}

func TestNextStreakStrict(t *testing.T) {
	prev := date(2026, 1, 10)

	cases := []struct {
		name  string
		habit models.Habit
		day   time.Time
		want  int
	}{
		{"first ever log", models.Habit{}, date(2026, 1, 1), 1},
		{"contiguous day", models.Habit{CurrentStreak: 3, LastLoggedDate: &prev}, date(2026, 1, 11), 4},
		{"gap restarts at one", models.Habit{CurrentStreak: 3, LastLoggedDate: &prev}, date(2026, 1, 20), 1},
		{"backfill restarts at one", models.Habit{CurrentStreak: 3, LastLoggedDate: &prev}, date(2026, 1, 5), 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NextStreak(&tc.habit, tc.day, true, true); got != tc.want {
				t.Fatalf("want %d, got %d", tc.want, got)
			}
		})
	}
}

func TestNextLongestNeverDecreases(t *testing.T) {
	habit := &models.Habit{LongestStreak: 10}
	if got := NextLongest(habit, 0); got != 10 {
		t.Fatalf("longest must survive a reset, got %d", got)
	}
	if got := NextLongest(habit, 11); got != 11 {
		t.Fatalf("longest must follow a new record, got %d", got)
	}
}
