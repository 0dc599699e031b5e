package badges

import (
	"time"

	"github.com/jcastellanos/habitframe-backend/pkg/db/models"
	"github.com/jcastellanos/habitframe-backend/pkg/enums"
)

// BadgeDTO is the transport shape for a catalog entry or an unlocked badge.
type BadgeDTO struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Description      string             `json:"description"`
	IconURL          string             `json:"icon_url"`
	Rarity           enums.BadgeRarity  `json:"rarity"`
	CriteriaType     enums.CriteriaType `json:"criteria_type"`
	CriteriaValue    int                `json:"criteria_value"`
	CriteriaCategory *string            `json:"criteria_category,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
}

// ToDTO maps a badge row to its transport shape.
func ToDTO(badge models.Badge) BadgeDTO {
	return BadgeDTO{
		ID:               badge.ID,
		Name:             badge.Name,
		Description:      badge.Description,
		IconURL:          badge.IconURL,
		Rarity:           badge.Rarity,
		CriteriaType:     badge.CriteriaType,
		CriteriaValue:    badge.CriteriaValue,
		CriteriaCategory: badge.CriteriaCategory,
		CreatedAt:        badge.CreatedAt,
	}
}

// ToDTOs maps badge rows to transport shapes, never returning nil.
func ToDTOs(badges []models.Badge) []BadgeDTO {
	out := make([]BadgeDTO, 0, len(badges))
	for _, badge := range badges {
		out = append(out, ToDTO(badge))
	}
	return out
}
