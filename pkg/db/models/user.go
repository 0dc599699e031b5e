package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the canonical identity entity. Users are created lazily on first
// interaction, keyed by their external Farcaster identity.
type User struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	FarcasterID    string    `gorm:"column:farcaster_id;type:text;not null;uniqueIndex:users_farcaster_id_key"`
	DisplayName    *string   `gorm:"column:display_name"`
	ProfilePicture *string   `gorm:"column:profile_picture"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
