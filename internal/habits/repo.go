package habits

import (
	"context"

	"github.com/jcastellanos/habitframe-backend/internal/repo"
	"github.com/jcastellanos/habitframe-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository encapsulates habit persistence.
type Repository struct {
	repo.Base
}

// NewRepository constructs a habits repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// Create inserts a new habit row.
func (r *Repository) Create(ctx context.Context, habit *models.Habit) (*models.Habit, error) {
	if err := r.DB(ctx).Create(habit).Error; err != nil {
		return nil, err
	}
	return habit, nil
}

// FindByID loads a habit by primary key, active or not.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Habit, error) {
	var habit models.Habit
	if err := r.DB(ctx).First(&habit, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &habit, nil
}

// Update applies the given column map and returns the fresh row.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*models.Habit, error) {
	if len(fields) > 0 {
		result := r.DB(ctx).Model(&models.Habit{}).Where("id = ?", id).Updates(fields)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.FindByID(ctx, id)
}

// ListActive returns the user's active habits, newest first.
func (r *Repository) ListActive(ctx context.Context, userID uuid.UUID) ([]models.Habit, error) {
	var habits []models.Habit
	err := r.DB(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		Find(&habits).Error
	if err != nil {
		return nil, err
	}
	return habits, nil
}

// ListActiveIDs returns only the ids of the user's active habits, newest
// first. Satisfies the users package's habit source.
func (r *Repository) ListActiveIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.DB(ctx).
		Model(&models.Habit{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// CountActive counts the user's active habits, reading through the supplied
// transaction when one is given.
func (r *Repository) CountActive(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int, error) {
	conn := tx
	if conn == nil {
		conn = r.DB(ctx)
	}
	var count int64
	err := conn.
		Model(&models.Habit{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// Deactivate soft-deletes a habit. Logs and streak metadata are preserved.
func (r *Repository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := r.DB(ctx).
		Model(&models.Habit{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
