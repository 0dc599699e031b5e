package habits

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jcastellanos/habitframe-backend/internal/badges"
	"github.com/jcastellanos/habitframe-backend/pkg/db"
	"github.com/jcastellanos/habitframe-backend/pkg/db/models"
	"github.com/jcastellanos/habitframe-backend/pkg/enums"
	pkgerrors "github.com/jcastellanos/habitframe-backend/pkg/errors"
	"github.com/jcastellanos/habitframe-backend/pkg/metrics"
	"github.com/jcastellanos/habitframe-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultIcon is used when a habit is created without one.
const DefaultIcon = "🎯"

// LogSource supplies recent log entries for listed habits.
type LogSource interface {
	RecentForHabit(ctx context.Context, habitID uuid.UUID, limit int) ([]models.StreakLog, error)
}

// ServiceParams groups dependencies for the habits service.
type ServiceParams struct {
	HabitRepo *Repository
	BadgeRepo *badges.Repository
	Logs      LogSource
	DB        *db.Client
	Metrics   *metrics.DomainMetrics
}

// Service exposes the habit lifecycle.
type Service interface {
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateInput) (HabitDTO, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, includeLogs bool) ([]HabitDTO, error)
}

type service struct {
	habitRepo *Repository
	badgeRepo *badges.Repository
	logs      LogSource
	db        *db.Client
	metrics   *metrics.DomainMetrics
}

// NewService builds a habits service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.HabitRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "habit repo is required")
	}
	if params.BadgeRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "badge repo is required")
	}
	if params.Logs == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "log source is required")
	}
	if params.DB == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "db client is required")
	}
	return &service{
		habitRepo: params.HabitRepo,
		badgeRepo: params.BadgeRepo,
		logs:      params.Logs,
		db:        params.DB,
		metrics:   params.Metrics,
	}, nil
}

// Create inserts a habit with zeroed streak metadata and evaluates milestone
// badges against the user's new active-habit count. Insert and awards commit
// together.
func (s *service) Create(ctx context.Context, input CreateInput) (CreateOutput, error) {
	if input.UserID == uuid.Nil {
		return CreateOutput{}, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return CreateOutput{}, pkgerrors.New(pkgerrors.CodeValidation, "habit name is required")
	}
	category, err := enums.ParseHabitCategory(input.Category)
	if err != nil {
		return CreateOutput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category")
	}
	icon := strings.TrimSpace(input.Icon)
	if icon == "" {
		icon = DefaultIcon
	}

	catalog, err := s.badgeRepo.ListAll(ctx)
	if err != nil {
		return CreateOutput{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load badge catalog")
	}

	habit := &models.Habit{
		UserID:      input.UserID,
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Goal:        strings.TrimSpace(input.Goal),
		Category:    category,
		Icon:        icon,
		StartDate:   time.Now().UTC(),
		IsActive:    true,
	}

	var unlocked []models.Badge
	err = s.db.WithTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(habit).Error; err != nil {
			return err
		}
		activeCount, err := s.habitRepo.CountActive(ctx, tx, input.UserID)
		if err != nil {
			return err
		}
		earned, err := s.badgeRepo.EarnedSet(ctx, tx, input.UserID)
		if err != nil {
			return err
		}
		unlocked = badges.Evaluate(catalog, earned, badges.Signals{
			ActiveHabitCount: activeCount,
		})
		ids := make([]string, 0, len(unlocked))
		for _, badge := range unlocked {
			ids = append(ids, badge.ID)
		}
		return s.badgeRepo.Award(ctx, tx, input.UserID, ids)
	})
	if err != nil {
		return CreateOutput{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create habit")
	}

	for _, badge := range unlocked {
		s.metrics.IncBadgeAwarded(badge.CriteriaType.String())
	}

	return CreateOutput{
		Habit:          toDTO(habit),
		BadgesUnlocked: badges.ToDTOs(unlocked),
	}, nil
}

// Update applies a partial edit. Streak metadata and logs are never touched
// here.
func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (HabitDTO, error) {
	if id == uuid.Nil {
		return HabitDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "habit id is required")
	}

	fields := map[string]any{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return HabitDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "habit name cannot be empty")
		}
		fields["name"] = name
	}
	if input.Description != nil {
		fields["description"] = strings.TrimSpace(*input.Description)
	}
	if input.Goal != nil {
		fields["goal"] = strings.TrimSpace(*input.Goal)
	}
	if input.Category != nil {
		category, err := enums.ParseHabitCategory(*input.Category)
		if err != nil {
			return HabitDTO{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category")
		}
		fields["category"] = category
	}
	if input.Icon != nil {
		icon := strings.TrimSpace(*input.Icon)
		if icon == "" {
			icon = DefaultIcon
		}
		fields["icon"] = icon
	}

	habit, err := s.habitRepo.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return HabitDTO{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "habit not found")
		}
		return HabitDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update habit")
	}
	return toDTO(habit), nil
}

// Deactivate soft-deletes a habit. Historical logs remain queryable.
func (s *service) Deactivate(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "habit id is required")
	}
	if err := s.habitRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "habit not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deactivate habit")
	}
	return nil
}

// List returns the user's active habits newest-first, optionally joined with
// each habit's most recent logs.
func (s *service) List(ctx context.Context, userID uuid.UUID, includeLogs bool) ([]HabitDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}

	rows, err := s.habitRepo.ListActive(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list habits")
	}

	out := make([]HabitDTO, 0, len(rows))
	for i := range rows {
		dto := toDTO(&rows[i])
		if includeLogs {
			logs, err := s.logs.RecentForHabit(ctx, rows[i].ID, pagination.RecentLogsWindow)
			if err != nil {
				return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load recent logs")
			}
			dto.RecentLogs = toLogEntries(logs)
		}
		out = append(out, dto)
	}
	return out, nil
}
