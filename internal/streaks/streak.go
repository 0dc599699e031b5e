package streaks

import (
	"time"

	"github.com/jcastellanos/habitframe-backend/pkg/db/models"
)

// NextStreak computes the streak that results from logging logDate with the
// given adherence against the habit's current metadata.
//
// A non-adherent log always resets to zero. For adherent logs the default
// rule increments unconditionally, matching the reference behavior a user
// could rely on: log day 1 and day 30 and the streak still reads 2. With
// strict enabled the increment only survives when logDate is exactly one day
// after lastLoggedDate; otherwise the streak restarts at 1.
func NextStreak(habit *models.Habit, logDate time.Time, isAdherent, strict bool) int {
	if !isAdherent {
		return 0
	}
	if !strict {
		return habit.CurrentStreak + 1
	}
	if habit.LastLoggedDate == nil {
		return 1
	}
	prev := truncateToDate(*habit.LastLoggedDate)
	if truncateToDate(logDate).Equal(prev.AddDate(0, 0, 1)) {
		return habit.CurrentStreak + 1
	}
	return 1
}

// NextLongest applies the longest-streak invariant: it never decreases.
func NextLongest(habit *models.Habit, newStreak int) int {
	if newStreak > habit.LongestStreak {
		return newStreak
	}
	return habit.LongestStreak
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
