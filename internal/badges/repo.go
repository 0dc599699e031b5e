package badges

import (
	"context"

	"github.com/jcastellanos/habitframe-backend/internal/repo"
	"github.com/jcastellanos/habitframe-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository encapsulates badge catalog and award persistence.
type Repository struct {
	repo.Base
}

// NewRepository constructs a badges repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// ListAll returns the full badge catalog.
func (r *Repository) ListAll(ctx context.Context) ([]models.Badge, error) {
	var catalog []models.Badge
	if err := r.DB(ctx).Order("created_at ASC, id ASC").Find(&catalog).Error; err != nil {
		return nil, err
	}
	return catalog, nil
}

// ListEarnedIDs returns the ids of every badge the user holds.
func (r *Repository) ListEarnedIDs(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var ids []string
	if err := r.DB(ctx).
		Model(&models.UserBadge{}).
		Where("user_id = ?", userID).
		Order("awarded_at ASC").
		Pluck("badge_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// EarnedSet returns the user's badges as a membership set, reading through
// the supplied transaction when one is given.
func (r *Repository) EarnedSet(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (map[string]bool, error) {
	conn := tx
	if conn == nil {
		conn = r.DB(ctx)
	}
	var ids []string
	if err := conn.
		Model(&models.UserBadge{}).
		Where("user_id = ?", userID).
		Pluck("badge_id", &ids).Error; err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

// Award inserts one earned-badge row per id, ignoring ids the user already
// holds so concurrent evaluations cannot double-award.
func (r *Repository) Award(ctx context.Context, tx *gorm.DB, userID uuid.UUID, badgeIDs []string) error {
	if len(badgeIDs) == 0 {
		return nil
	}
	conn := tx
	if conn == nil {
		conn = r.DB(ctx)
	}
	for _, badgeID := range badgeIDs {
		if err := conn.
			Exec(`INSERT INTO user_badges (id, user_id, badge_id, awarded_at) VALUES (?, ?, ?, CURRENT_TIMESTAMP) ON CONFLICT (user_id, badge_id) DO NOTHING`, uuid.New(), userID, badgeID).
			Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedCatalog upserts the provided catalog entries.
func (r *Repository) SeedCatalog(ctx context.Context, catalog []models.Badge) error {
	for _, badge := range catalog {
		err := r.DB(ctx).Exec(
			`INSERT INTO badges (id, name, description, icon_url, rarity, criteria_type, criteria_value, criteria_category, created_at)
                         VALUES (?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
                         ON CONFLICT (id) DO UPDATE SET
                           name = EXCLUDED.name,
                           description = EXCLUDED.description,
                           icon_url = EXCLUDED.icon_url,
                           rarity = EXCLUDED.rarity,
                           criteria_type = EXCLUDED.criteria_type,
                           criteria_value = EXCLUDED.criteria_value,
                           criteria_category = EXCLUDED.criteria_category`,
			badge.ID, badge.Name, badge.Description, badge.IconURL,
			badge.Rarity, badge.CriteriaType, badge.CriteriaValue, badge.CriteriaCategory,
		).Error
		if err != nil {
			return err
		}
	}
	return nil
}
