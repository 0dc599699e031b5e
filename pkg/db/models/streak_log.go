package models

import (
	"time"

	"github.com/google/uuid"
)

// StreakLog is one row of the append-only adherence ledger. Rows are never
// updated or deleted; the unique (habit_id, log_date) index enforces the
// one-log-per-day rule even under concurrent inserts.
type StreakLog struct {
	ID                uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	HabitID           uuid.UUID `gorm:"column:habit_id;type:uuid;not null;index:streak_logs_habit_id_idx;uniqueIndex:streak_logs_habit_id_log_date_key"`
	LogDate           time.Time `gorm:"column:log_date;type:date;not null;uniqueIndex:streak_logs_habit_id_log_date_key"`
	IsAdherent        bool      `gorm:"column:is_adherent;not null"`
	Notes             *string   `gorm:"column:notes"`
	StreakLengthAtLog int       `gorm:"column:streak_length_at_log;not null"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime"`
}
