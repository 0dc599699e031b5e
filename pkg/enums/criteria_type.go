package enums

import "fmt"

// CriteriaType tags a badge unlock rule with the signal it measures.
type CriteriaType string

const (
	// CriteriaTypeStreak compares against a habit's current streak length.
	CriteriaTypeStreak CriteriaType = "streak"
	// CriteriaTypeConsistency compares against the user's total adherent log count.
	CriteriaTypeConsistency CriteriaType = "consistency"
	// CriteriaTypeMilestone compares against the user's active habit count.
	CriteriaTypeMilestone CriteriaType = "milestone"
)

var validCriteriaTypes = []CriteriaType{
	CriteriaTypeStreak,
	CriteriaTypeConsistency,
	CriteriaTypeMilestone,
}

// String implements fmt.Stringer.
func (c CriteriaType) String() string {
	return string(c)
}

// IsValid reports whether the value is a known CriteriaType.
func (c CriteriaType) IsValid() bool {
	for _, candidate := range validCriteriaTypes {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCriteriaType converts raw input into a CriteriaType.
func ParseCriteriaType(value string) (CriteriaType, error) {
	for _, candidate := range validCriteriaTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid criteria type %q", value)
}
