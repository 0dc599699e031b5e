package streaks

import (
	"context"
	"time"

	"github.com/jcastellanos/habitframe-backend/internal/repo"
	"github.com/jcastellanos/habitframe-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository encapsulates the append-only streak ledger and the habit
// streak-metadata writes that must commit alongside it.
type Repository struct {
	repo.Base
}

// NewRepository constructs a streaks repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// ExistsForDate reports whether the habit already has a log for the date.
// App-level pre-check only; the unique index remains the authority under
// concurrent inserts.
func (r *Repository) ExistsForDate(ctx context.Context, habitID uuid.UUID, logDate time.Time) (bool, error) {
	var count int64
	err := r.DB(ctx).
		Model(&models.StreakLog{}).
		Where("habit_id = ? AND log_date = ?", habitID, logDate).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Insert appends one ledger row, writing through the supplied transaction
// when one is given. A unique violation surfaces untranslated so the caller
// can map it to the duplicate-log error.
func (r *Repository) Insert(ctx context.Context, tx *gorm.DB, log *models.StreakLog) error {
	conn := tx
	if conn == nil {
		conn = r.DB(ctx)
	}
	return conn.Create(log).Error
}

// UpdateHabitStreak overwrites the habit's streak metadata.
func (r *Repository) UpdateHabitStreak(ctx context.Context, tx *gorm.DB, habitID uuid.UUID, currentStreak, longestStreak int, lastLogged time.Time) error {
	conn := tx
	if conn == nil {
		conn = r.DB(ctx)
	}
	return conn.
		Model(&models.Habit{}).
		Where("id = ?", habitID).
		Updates(map[string]any{
			"current_streak":   currentStreak,
			"longest_streak":   longestStreak,
			"last_logged_date": lastLogged,
		}).Error
}

// ListForHabit returns the habit's logs newest-first, capped at limit.
func (r *Repository) ListForHabit(ctx context.Context, habitID uuid.UUID, limit int) ([]models.StreakLog, error) {
	var logs []models.StreakLog
	err := r.DB(ctx).
		Where("habit_id = ?", habitID).
		Order("log_date DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// RecentForHabit satisfies the habits package's log source.
func (r *Repository) RecentForHabit(ctx context.Context, habitID uuid.UUID, limit int) ([]models.StreakLog, error) {
	return r.ListForHabit(ctx, habitID, limit)
}

// CountAdherentForUser counts every adherent log across the user's habits,
// active or not. Feeds the consistency badge criteria.
func (r *Repository) CountAdherentForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int, error) {
	conn := tx
	if conn == nil {
		conn = r.DB(ctx)
	}
	var count int64
	err := conn.
		Model(&models.StreakLog{}).
		Joins("JOIN habits ON habits.id = streak_logs.habit_id").
		Where("habits.user_id = ? AND streak_logs.is_adherent = ?", userID, true).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}
