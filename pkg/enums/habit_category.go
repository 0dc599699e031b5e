package enums

import "fmt"

// HabitCategory represents the canonical habit categories.
type HabitCategory string

const (
	HabitCategoryHealth       HabitCategory = "health"
	HabitCategoryProductivity HabitCategory = "productivity"
	HabitCategoryLearning     HabitCategory = "learning"
	HabitCategorySocial       HabitCategory = "social"
	HabitCategoryCreative     HabitCategory = "creative"
)

var validHabitCategories = []HabitCategory{
	HabitCategoryHealth,
	HabitCategoryProductivity,
	HabitCategoryLearning,
	HabitCategorySocial,
	HabitCategoryCreative,
}

// String implements fmt.Stringer.
func (c HabitCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known HabitCategory.
func (c HabitCategory) IsValid() bool {
	for _, candidate := range validHabitCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseHabitCategory converts raw input into a HabitCategory.
func ParseHabitCategory(value string) (HabitCategory, error) {
	for _, candidate := range validHabitCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid habit category %q", value)
}
