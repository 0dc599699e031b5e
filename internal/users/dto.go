package users

import (
	"time"

	"github.com/jcastellanos/habitframe-backend/pkg/db/models"
	"github.com/google/uuid"
)

// UserDTO is the transport shape for a user. ActiveHabits and AchievedBadges
// are computed on read from their source-of-truth tables rather than stored
// as redundant columns.
type UserDTO struct {
	ID             uuid.UUID   `json:"id"`
	FarcasterID    string      `json:"farcaster_id"`
	DisplayName    *string     `json:"display_name"`
	ProfilePicture *string     `json:"profile_picture"`
	ActiveHabits   []uuid.UUID `json:"active_habits"`
	AchievedBadges []string    `json:"achieved_badges"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// UpsertInput carries the user registration / profile refresh payload.
type UpsertInput struct {
	FarcasterID    string
	DisplayName    *string
	ProfilePicture *string
}

func toDTO(user *models.User, habitIDs []uuid.UUID, badgeIDs []string) UserDTO {
	if habitIDs == nil {
		habitIDs = []uuid.UUID{}
	}
	if badgeIDs == nil {
		badgeIDs = []string{}
	}
	return UserDTO{
		ID:             user.ID,
		FarcasterID:    user.FarcasterID,
		DisplayName:    user.DisplayName,
		ProfilePicture: user.ProfilePicture,
		ActiveHabits:   habitIDs,
		AchievedBadges: badgeIDs,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
}
