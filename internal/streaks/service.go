package streaks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jcastellanos/habitframe-backend/internal/badges"
	"github.com/jcastellanos/habitframe-backend/internal/habits"
	"github.com/jcastellanos/habitframe-backend/pkg/db"
	"github.com/jcastellanos/habitframe-backend/pkg/db/models"
	pkgerrors "github.com/jcastellanos/habitframe-backend/pkg/errors"
	"github.com/jcastellanos/habitframe-backend/pkg/logger"
	"github.com/jcastellanos/habitframe-backend/pkg/metrics"
	"github.com/jcastellanos/habitframe-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceParams groups dependencies for the streaks service.
type ServiceParams struct {
	StreakRepo *Repository
	HabitRepo  *habits.Repository
	BadgeRepo  *badges.Repository
	DB         *db.Client
	Metrics    *metrics.DomainMetrics
	Logger     *logger.Logger

	// Strict switches the adherent increment to require the logged date be
	// exactly one day after the previous one. Off by default.
	Strict bool
}

// Service exposes the logging core and ledger reads.
type Service interface {
	Log(ctx context.Context, input LogInput) (LogOutput, error)
	ListLogs(ctx context.Context, habitID uuid.UUID, limit int) ([]StreakLogDTO, error)
}

type service struct {
	streakRepo *Repository
	habitRepo  *habits.Repository
	badgeRepo  *badges.Repository
	db         *db.Client
	metrics    *metrics.DomainMetrics
	logg       *logger.Logger
	strict     bool
}

// NewService builds a streaks service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.StreakRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "streak repo is required")
	}
	if params.HabitRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "habit repo is required")
	}
	if params.BadgeRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "badge repo is required")
	}
	if params.DB == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "db client is required")
	}
	return &service{
		streakRepo: params.StreakRepo,
		habitRepo:  params.HabitRepo,
		badgeRepo:  params.BadgeRepo,
		db:         params.DB,
		metrics:    params.Metrics,
		logg:       params.Logger,
		strict:     params.Strict,
	}, nil
}

// Log records one day of adherence for a habit: append the immutable ledger
// row, overwrite the habit's streak metadata, and award any badges the new
// state unlocks. All three writes commit in a single transaction so the
// ledger can never disagree with the habit summary.
func (s *service) Log(ctx context.Context, input LogInput) (LogOutput, error) {
	if input.HabitID == uuid.Nil {
		return LogOutput{}, pkgerrors.New(pkgerrors.CodeValidation, "habit id is required")
	}
	logDate, err := time.ParseInLocation(DateLayout, input.LogDate, time.UTC)
	if err != nil {
		return LogOutput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "log date must be YYYY-MM-DD")
	}

	habit, err := s.habitRepo.FindByID(ctx, input.HabitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LogOutput{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "habit not found")
		}
		return LogOutput{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load habit")
	}

	// Pre-check for a clean error on the common path. The unique index on
	// (habit_id, log_date) still closes the race below.
	exists, err := s.streakRepo.ExistsForDate(ctx, habit.ID, logDate)
	if err != nil {
		return LogOutput{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check existing log")
	}
	if exists {
		return LogOutput{}, pkgerrors.New(pkgerrors.CodeDuplicateLog,
			fmt.Sprintf("habit %s already logged for %s", habit.ID, input.LogDate))
	}

	newStreak := NextStreak(habit, logDate, input.IsAdherent, s.strict)
	newLongest := NextLongest(habit, newStreak)

	catalog, err := s.badgeRepo.ListAll(ctx)
	if err != nil {
		return LogOutput{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load badge catalog")
	}

	log := &models.StreakLog{
		HabitID:           habit.ID,
		LogDate:           logDate,
		IsAdherent:        input.IsAdherent,
		Notes:             input.Notes,
		StreakLengthAtLog: newStreak,
	}

	var unlocked []models.Badge
	err = s.db.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.streakRepo.Insert(ctx, tx, log); err != nil {
			return err
		}
		if err := s.streakRepo.UpdateHabitStreak(ctx, tx, habit.ID, newStreak, newLongest, logDate); err != nil {
			return err
		}
		adherentCount, err := s.streakRepo.CountAdherentForUser(ctx, tx, habit.UserID)
		if err != nil {
			return err
		}
		activeCount, err := s.habitRepo.CountActive(ctx, tx, habit.UserID)
		if err != nil {
			return err
		}
		earned, err := s.badgeRepo.EarnedSet(ctx, tx, habit.UserID)
		if err != nil {
			return err
		}
		unlocked = badges.Evaluate(catalog, earned, badges.Signals{
			CurrentStreak:    newStreak,
			AdherentLogCount: adherentCount,
			ActiveHabitCount: activeCount,
		})
		ids := make([]string, 0, len(unlocked))
		for _, badge := range unlocked {
			ids = append(ids, badge.ID)
		}
		return s.badgeRepo.Award(ctx, tx, habit.UserID, ids)
	})
	if err != nil {
		if pkgerrors.IsUniqueViolation(err) {
			// Lost the race against a concurrent log for the same date.
			return LogOutput{}, pkgerrors.Wrap(pkgerrors.CodeDuplicateLog, err,
				fmt.Sprintf("habit %s already logged for %s", habit.ID, input.LogDate))
		}
		return LogOutput{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "record streak log")
	}

	s.metrics.IncStreakLog(input.IsAdherent)
	for _, badge := range unlocked {
		s.metrics.IncBadgeAwarded(badge.CriteriaType.String())
	}
	if s.logg != nil && len(unlocked) > 0 {
		logCtx := s.logg.WithHabitID(s.logg.WithUserID(ctx, habit.UserID.String()), habit.ID.String())
		s.logg.Info(logCtx, fmt.Sprintf("unlocked %d badge(s)", len(unlocked)))
	}

	return LogOutput{
		StreakLog:      toDTO(log),
		NewStreak:      newStreak,
		BadgesUnlocked: badges.ToDTOs(unlocked),
	}, nil
}

// ListLogs returns a habit's ledger newest-first. The habit does not have to
// be active; history outlives deactivation.
func (s *service) ListLogs(ctx context.Context, habitID uuid.UUID, limit int) ([]StreakLogDTO, error) {
	if habitID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "habit id is required")
	}
	if _, err := s.habitRepo.FindByID(ctx, habitID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "habit not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load habit")
	}

	logs, err := s.streakRepo.ListForHabit(ctx, habitID, pagination.NormalizeLimit(limit))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list streak logs")
	}
	return toDTOs(logs), nil
}
