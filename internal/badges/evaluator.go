package badges

import (
	"github.com/jcastellanos/habitframe-backend/pkg/db/models"
	"github.com/jcastellanos/habitframe-backend/pkg/enums"
)

// Signals carries the measurable values unlock criteria compare against,
// computed inside the same transaction as the write that produced them.
type Signals struct {
	// CurrentStreak is the streak length of the habit that was just logged.
	CurrentStreak int
	// AdherentLogCount is the user's total adherent ledger entries across
	// all habits.
	AdherentLogCount int
	// ActiveHabitCount is the number of habits the user currently owns with
	// the active flag set.
	ActiveHabitCount int
}

// Evaluate scans the catalog against the signals and returns the badges the
// user newly qualifies for. Already-earned badges are skipped, so repeated
// evaluation with unchanged signals returns nothing: unlocking is monotonic
// and idempotent.
func Evaluate(catalog []models.Badge, earned map[string]bool, sig Signals) []models.Badge {
	var unlocked []models.Badge
	for _, badge := range catalog {
		if earned[badge.ID] {
			continue
		}
		if qualifies(badge, sig) {
			unlocked = append(unlocked, badge)
		}
	}
	return unlocked
}

func qualifies(badge models.Badge, sig Signals) bool {
	threshold := badge.CriteriaValue
	switch badge.CriteriaType {
	case enums.CriteriaTypeStreak:
		return sig.CurrentStreak >= threshold
	case enums.CriteriaTypeConsistency:
		return sig.AdherentLogCount >= threshold
	case enums.CriteriaTypeMilestone:
		return sig.ActiveHabitCount >= threshold
	default:
		// Unknown criteria never award; the catalog is validated at seed time.
		return false
	}
}
