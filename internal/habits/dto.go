package habits

import (
	"time"

	"github.com/jcastellanos/habitframe-backend/internal/badges"
	"github.com/jcastellanos/habitframe-backend/pkg/db/models"
	"github.com/jcastellanos/habitframe-backend/pkg/enums"
	"github.com/google/uuid"
)

// HabitDTO is the transport shape for a habit, streak metadata included.
type HabitDTO struct {
	ID             uuid.UUID           `json:"id"`
	UserID         uuid.UUID           `json:"user_id"`
	Name           string              `json:"name"`
	Description    string              `json:"description"`
	Goal           string              `json:"goal"`
	Category       enums.HabitCategory `json:"category"`
	Icon           string              `json:"icon"`
	StartDate      time.Time           `json:"start_date"`
	IsActive       bool                `json:"is_active"`
	CurrentStreak  int                 `json:"current_streak"`
	LongestStreak  int                 `json:"longest_streak"`
	LastLoggedDate *string             `json:"last_logged_date"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`

	// RecentLogs is populated only by the list operation.
	RecentLogs []LogEntry `json:"recent_logs,omitempty"`
}

// LogEntry is the condensed log shape joined onto a listed habit.
type LogEntry struct {
	ID                uuid.UUID `json:"id"`
	LogDate           string    `json:"log_date"`
	IsAdherent        bool      `json:"is_adherent"`
	Notes             *string   `json:"notes"`
	StreakLengthAtLog int       `json:"streak_length_at_log"`
	CreatedAt         time.Time `json:"created_at"`
}

// CreateInput carries the new-habit payload.
type CreateInput struct {
	UserID      uuid.UUID
	Name        string
	Description string
	Goal        string
	Category    string
	Icon        string
}

// UpdateInput carries a partial habit update. Nil fields are left untouched.
// Streak metadata is deliberately absent; only the logging flow mutates it.
type UpdateInput struct {
	Name        *string
	Description *string
	Goal        *string
	Category    *string
	Icon        *string
}

// CreateOutput pairs the created habit with any badges the creation unlocked.
type CreateOutput struct {
	Habit          HabitDTO          `json:"habit"`
	BadgesUnlocked []badges.BadgeDTO `json:"badges_unlocked"`
}

func toDTO(habit *models.Habit) HabitDTO {
	var lastLogged *string
	if habit.LastLoggedDate != nil {
		formatted := habit.LastLoggedDate.Format("2006-01-02")
		lastLogged = &formatted
	}
	return HabitDTO{
		ID:             habit.ID,
		UserID:         habit.UserID,
		Name:           habit.Name,
		Description:    habit.Description,
		Goal:           habit.Goal,
		Category:       habit.Category,
		Icon:           habit.Icon,
		StartDate:      habit.StartDate,
		IsActive:       habit.IsActive,
		CurrentStreak:  habit.CurrentStreak,
		LongestStreak:  habit.LongestStreak,
		LastLoggedDate: lastLogged,
		CreatedAt:      habit.CreatedAt,
		UpdatedAt:      habit.UpdatedAt,
	}
}

func toLogEntries(logs []models.StreakLog) []LogEntry {
	entries := make([]LogEntry, 0, len(logs))
	for _, log := range logs {
		entries = append(entries, LogEntry{
			ID:                log.ID,
			LogDate:           log.LogDate.Format("2006-01-02"),
			IsAdherent:        log.IsAdherent,
			Notes:             log.Notes,
			StreakLengthAtLog: log.StreakLengthAtLog,
			CreatedAt:         log.CreatedAt,
		})
	}
	return entries
}
