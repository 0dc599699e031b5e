package models

import (
	"time"

	"github.com/jcastellanos/habitframe-backend/pkg/enums"
)

// Badge is a static catalog entry shared by all users. The unlock rule is a
// tagged variant: criteria_type names the signal, criteria_value the
// threshold, criteria_category an optional category filter.
type Badge struct {
	ID               string             `gorm:"column:id;type:text;primaryKey"`
	Name             string             `gorm:"column:name;type:text;not null"`
	Description      string             `gorm:"column:description;type:text;not null"`
	IconURL          string             `gorm:"column:icon_url;type:text;not null"`
	Rarity           enums.BadgeRarity  `gorm:"column:rarity;type:text;not null"`
	CriteriaType     enums.CriteriaType `gorm:"column:criteria_type;type:text;not null"`
	CriteriaValue    int                `gorm:"column:criteria_value;not null"`
	CriteriaCategory *string            `gorm:"column:criteria_category"`
	CreatedAt        time.Time          `gorm:"column:created_at;autoCreateTime"`
}
