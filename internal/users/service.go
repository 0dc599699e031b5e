package users

import (
	"context"
	"errors"
	"strings"

	"github.com/jcastellanos/habitframe-backend/pkg/db/models"
	pkgerrors "github.com/jcastellanos/habitframe-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HabitSource supplies the computed active-habit view of a user.
type HabitSource interface {
	ListActiveIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// BadgeSource supplies the computed earned-badge view of a user.
type BadgeSource interface {
	ListEarnedIDs(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// ServiceParams groups dependencies for the users service.
type ServiceParams struct {
	UserRepo    *Repository
	HabitSource HabitSource
	BadgeSource BadgeSource
}

// Service exposes registration and lookup for users.
type Service interface {
	Upsert(ctx context.Context, input UpsertInput) (UserDTO, error)
	GetByFarcasterID(ctx context.Context, farcasterID string) (UserDTO, error)
}

type service struct {
	userRepo    *Repository
	habitSource HabitSource
	badgeSource BadgeSource
}

// NewService builds a users service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.UserRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user repo is required")
	}
	if params.HabitSource == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "habit source is required")
	}
	if params.BadgeSource == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "badge source is required")
	}
	return &service{
		userRepo:    params.UserRepo,
		habitSource: params.HabitSource,
		badgeSource: params.BadgeSource,
	}, nil
}

// Upsert registers a user on first contact and refreshes display fields on
// repeat calls. A single idempotent operation covers both paths.
func (s *service) Upsert(ctx context.Context, input UpsertInput) (UserDTO, error) {
	farcasterID := strings.TrimSpace(input.FarcasterID)
	if farcasterID == "" {
		return UserDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "farcaster id is required")
	}

	existing, err := s.userRepo.FindByFarcasterID(ctx, farcasterID)
	switch {
	case err == nil:
		updated, updateErr := s.userRepo.UpdateProfile(ctx, existing.ID, input.DisplayName, input.ProfilePicture)
		if updateErr != nil {
			return UserDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, updateErr, "update user profile")
		}
		return s.hydrate(ctx, updated)
	case errors.Is(err, gorm.ErrRecordNotFound):
		user := &models.User{
			FarcasterID:    farcasterID,
			DisplayName:    input.DisplayName,
			ProfilePicture: input.ProfilePicture,
		}
		created, createErr := s.userRepo.Create(ctx, user)
		if createErr != nil {
			if pkgerrors.IsUniqueViolation(createErr) {
				// Lost a concurrent registration race; the other writer's
				// row is authoritative.
				return s.GetByFarcasterID(ctx, farcasterID)
			}
			return UserDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, createErr, "create user")
		}
		return s.hydrate(ctx, created)
	default:
		return UserDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}
}

// GetByFarcasterID returns the user with computed habit and badge views.
func (s *service) GetByFarcasterID(ctx context.Context, farcasterID string) (UserDTO, error) {
	farcasterID = strings.TrimSpace(farcasterID)
	if farcasterID == "" {
		return UserDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "farcaster id is required")
	}

	user, err := s.userRepo.FindByFarcasterID(ctx, farcasterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserDTO{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "user not found")
		}
		return UserDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}
	return s.hydrate(ctx, user)
}

func (s *service) hydrate(ctx context.Context, user *models.User) (UserDTO, error) {
	habitIDs, err := s.habitSource.ListActiveIDs(ctx, user.ID)
	if err != nil {
		return UserDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list active habits")
	}
	badgeIDs, err := s.badgeSource.ListEarnedIDs(ctx, user.ID)
	if err != nil {
		return UserDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list earned badges")
	}
	return toDTO(user, habitIDs, badgeIDs), nil
}
