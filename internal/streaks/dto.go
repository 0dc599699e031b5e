package streaks

import (
	"time"

	"github.com/jcastellanos/habitframe-backend/internal/badges"
	"github.com/jcastellanos/habitframe-backend/pkg/db/models"
	"github.com/google/uuid"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// StreakLogDTO is the transport shape for one ledger entry.
type StreakLogDTO struct {
	ID                uuid.UUID `json:"id"`
	HabitID           uuid.UUID `json:"habit_id"`
	LogDate           string    `json:"log_date"`
	IsAdherent        bool      `json:"is_adherent"`
	Notes             *string   `json:"notes"`
	StreakLengthAtLog int       `json:"streak_length_at_log"`
	CreatedAt         time.Time `json:"created_at"`
}

// LogInput carries the log-a-day payload.
type LogInput struct {
	HabitID    uuid.UUID
	LogDate    string
	IsAdherent bool
	Notes      *string
}

// LogOutput is the result of a successful log: the persisted ledger entry,
// the habit's new streak, and any badges this log unlocked.
type LogOutput struct {
	StreakLog      StreakLogDTO      `json:"streak_log"`
	NewStreak      int               `json:"new_streak"`
	BadgesUnlocked []badges.BadgeDTO `json:"badges_unlocked"`
}

func toDTO(log *models.StreakLog) StreakLogDTO {
	return StreakLogDTO{
		ID:                log.ID,
		HabitID:           log.HabitID,
		LogDate:           log.LogDate.Format(DateLayout),
		IsAdherent:        log.IsAdherent,
		Notes:             log.Notes,
		StreakLengthAtLog: log.StreakLengthAtLog,
		CreatedAt:         log.CreatedAt,
	}
}

func toDTOs(logs []models.StreakLog) []StreakLogDTO {
	out := make([]StreakLogDTO, 0, len(logs))
	for i := range logs {
		out = append(out, toDTO(&logs[i]))
	}
	return out
}
