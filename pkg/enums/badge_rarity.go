package enums

import "fmt"

// BadgeRarity is the presentation tier of a badge. It has no behavioral
// effect on unlock evaluation.
type BadgeRarity string

const (
	BadgeRarityCommon    BadgeRarity = "common"
	BadgeRarityRare      BadgeRarity = "rare"
	BadgeRarityEpic      BadgeRarity = "epic"
	BadgeRarityLegendary BadgeRarity = "legendary"
)

var validBadgeRarities = []BadgeRarity{
	BadgeRarityCommon,
	BadgeRarityRare,
	BadgeRarityEpic,
	BadgeRarityLegendary,
}

// String implements fmt.Stringer.
func (r BadgeRarity) String() string {
	return string(r)
}

// IsValid reports whether the value is a known BadgeRarity.
func (r BadgeRarity) IsValid() bool {
	for _, candidate := range validBadgeRarities {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseBadgeRarity converts raw input into a BadgeRarity.
func ParseBadgeRarity(value string) (BadgeRarity, error) {
	for _, candidate := range validBadgeRarities {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid badge rarity %q", value)
}
