package users

import (
	"context"

	"github.com/jcastellanos/habitframe-backend/internal/repo"
	"github.com/jcastellanos/habitframe-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository exposes user persistence operations.
type Repository struct {
	repo.Base
}

// NewRepository constructs a users repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// Create inserts a new user and returns the persisted model.
func (r *Repository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if err := r.DB(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// FindByFarcasterID retrieves the user matching the external identity.
func (r *Repository) FindByFarcasterID(ctx context.Context, farcasterID string) (*models.User, error) {
	var user models.User
	if err := r.DB(ctx).Where("farcaster_id = ?", farcasterID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID loads a user by their UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.DB(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile overwrites the mutable display fields.
func (r *Repository) UpdateProfile(ctx context.Context, id uuid.UUID, displayName, profilePicture *string) (*models.User, error) {
	updates := map[string]any{}
	if displayName != nil {
		updates["display_name"] = *displayName
	}
	if profilePicture != nil {
		updates["profile_picture"] = *profilePicture
	}
	if len(updates) > 0 {
		if err := r.DB(ctx).Model(&models.User{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.FindByID(ctx, id)
}
