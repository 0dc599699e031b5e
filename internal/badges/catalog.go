package badges

import (
	"github.com/jcastellanos/habitframe-backend/pkg/db/models"
	"github.com/jcastellanos/habitframe-backend/pkg/enums"
)

// DefaultCatalog returns the seeded badge catalog. IDs are stable slugs
// referenced from user_badges rows, so entries are only ever added.
func DefaultCatalog() []models.Badge {
	return []models.Badge{
		{
			ID:            "first-step",
			Name:          "First Step",
			Description:   "Log your first habit",
			IconURL:       "🌱",
			Rarity:        enums.BadgeRarityCommon,
			CriteriaType:  enums.CriteriaTypeMilestone,
			CriteriaValue: 1,
		},
		{
			ID:            "week-warrior",
			Name:          "Week Warrior",
			Description:   "Maintain a 7-day streak",
			IconURL:       "🌟",
			Rarity:        enums.BadgeRarityCommon,
			CriteriaType:  enums.CriteriaTypeStreak,
			CriteriaValue: 7,
		},
		{
			ID:            "month-master",
			Name:          "Month Master",
			Description:   "Maintain a 30-day streak",
			IconURL:       "🔥",
			Rarity:        enums.BadgeRarityRare,
			CriteriaType:  enums.CriteriaTypeStreak,
			CriteriaValue: 30,
		},
		{
			ID:            "century-club",
			Name:          "Century Club",
			Description:   "Maintain a 100-day streak",
			IconURL:       "💎",
			Rarity:        enums.BadgeRarityEpic,
			CriteriaType:  enums.CriteriaTypeStreak,
			CriteriaValue: 100,
		},
		{
			ID:            "legend",
			Name:          "Legend",
			Description:   "Maintain a 365-day streak",
			IconURL:       "🏆",
			Rarity:        enums.BadgeRarityLegendary,
			CriteriaType:  enums.CriteriaTypeStreak,
			CriteriaValue: 365,
		},
		{
			ID:            "consistency-king",
			Name:          "Consistency King",
			Description:   "Log habits for 30 consecutive days",
			IconURL:       "👑",
			Rarity:        enums.BadgeRarityEpic,
			CriteriaType:  enums.CriteriaTypeConsistency,
			CriteriaValue: 30,
		},
		{
			ID:            "habit-collector",
			Name:          "Habit Collector",
			Description:   "Create and maintain 5 active habits",
			IconURL:       "🎯",
			Rarity:        enums.BadgeRarityRare,
			CriteriaType:  enums.CriteriaTypeMilestone,
			CriteriaValue: 5,
		},
	}
}
