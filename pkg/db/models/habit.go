package models

import (
	"time"

	"github.com/jcastellanos/habitframe-backend/pkg/enums"
	"github.com/google/uuid"
)

// Habit is owned by exactly one user; ownership never transfers. Streak
// metadata lives in native columns and is mutated only by the logging flow.
// longest_streak never decreases.
type Habit struct {
	ID          uuid.UUID           `gorm:"column:id;type:uuid;primaryKey"`
	UserID      uuid.UUID           `gorm:"column:user_id;type:uuid;not null;index:habits_user_id_idx"`
	Name        string              `gorm:"column:name;type:text;not null"`
	Description string              `gorm:"column:description;type:text;not null;default:''"`
	Goal        string              `gorm:"column:goal;type:text;not null;default:''"`
	Category    enums.HabitCategory `gorm:"column:category;type:text;not null"`
	Icon        string              `gorm:"column:icon;type:text;not null"`
	StartDate   time.Time           `gorm:"column:start_date;not null"`
	IsActive    bool                `gorm:"column:is_active;not null;default:true"`

	CurrentStreak  int        `gorm:"column:current_streak;not null;default:0"`
	LongestStreak  int        `gorm:"column:longest_streak;not null;default:0"`
	LastLoggedDate *time.Time `gorm:"column:last_logged_date;type:date"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
