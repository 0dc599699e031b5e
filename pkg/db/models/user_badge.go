package models

import (
	"time"

	"github.com/google/uuid"
)

// UserBadge records a badge a user has earned. Rows only ever accumulate;
// the unique (user_id, badge_id) index keeps re-evaluation idempotent.
type UserBadge struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;index:user_badges_user_id_idx;uniqueIndex:user_badges_user_id_badge_id_key"`
	BadgeID   string    `gorm:"column:badge_id;type:text;not null;uniqueIndex:user_badges_user_id_badge_id_key"`
	AwardedAt time.Time `gorm:"column:awarded_at;autoCreateTime"`
}
