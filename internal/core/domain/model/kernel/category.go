package kernel

import (
	"fmt"
	"strings"

	"finder/internal/pkg/errs"
)

// Category is one tag from the closed service category enumeration.
// Free-text worker skills are normalized into this set; unmatched skills fall
// back to CategoryGeneral, which acts as a wildcard in notification matching.
type Category string

const (
	CategoryPlumbing        Category = "plumbing"
	CategoryElectrical      Category = "electrical"
	CategoryCarpentry       Category = "carpentry"
	CategoryPainting        Category = "painting"
	CategoryCleaning        Category = "cleaning"
	CategoryGardening       Category = "gardening"
	CategoryMoving          Category = "moving"
	CategoryApplianceRepair Category = "appliance_repair"
	CategoryHVAC            Category = "hvac"
	CategoryRoofing         Category = "roofing"
	CategoryOther           Category = "other"

	// CategoryGeneral is the fallback for skills that match no specific
	// category. A worker whose only category is general is treated as a
	// wildcard by notification fan-out.
	CategoryGeneral Category = "general"
)

// getValidCategories returns the closed set of valid categories.
func getValidCategories() map[Category]struct{} {
	return map[Category]struct{}{
		CategoryPlumbing:        {},
		CategoryElectrical:      {},
		CategoryCarpentry:       {},
		CategoryPainting:        {},
		CategoryCleaning:        {},
		CategoryGardening:       {},
		CategoryMoving:          {},
		CategoryApplianceRepair: {},
		CategoryHVAC:            {},
		CategoryRoofing:         {},
		CategoryOther:           {},
		CategoryGeneral:         {},
	}
}

// AllCategories returns the closed enumeration in a stable order.
func AllCategories() []Category {
	return []Category{
		CategoryPlumbing,
		CategoryElectrical,
		CategoryCarpentry,
		CategoryPainting,
		CategoryCleaning,
		CategoryGardening,
		CategoryMoving,
		CategoryApplianceRepair,
		CategoryHVAC,
		CategoryRoofing,
		CategoryOther,
		CategoryGeneral,
	}
}

// Validate checks that the category belongs to the closed enumeration.
func (c Category) Validate() error {
	if _, ok := getValidCategories()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"category is invalid",
			fmt.Errorf("%q is not a valid category", string(c)),
		)
	}
	return nil
}

// String returns the category tag.
// This method implements the fmt.Stringer interface.
func (c Category) String() string {
	return string(c)
}

// CategoryFromString parses a category tag, case-insensitively and ignoring
// surrounding whitespace. Unlike NormalizeSkill it rejects unknown values
// instead of falling back to general, which makes it the right entry point
// for a job's single category field.
func CategoryFromString(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

// NormalizeSkill maps one raw skill string onto the closed enumeration.
// The skill is lower-cased and trimmed, then matched case-insensitively
// against the category tags; anything unmatched maps to CategoryGeneral.
func NormalizeSkill(skill string) Category {
	candidate := Category(strings.ToLower(strings.TrimSpace(skill)))
	if _, ok := getValidCategories()[candidate]; ok {
		return candidate
	}
	return CategoryGeneral
}

// NormalizeSkills derives a category set from raw skill strings.
// Duplicates collapse and the first-seen order is preserved, which makes the
// operation idempotent: normalizing an already-normalized set returns the
// same set.
func NormalizeSkills(skills []string) []Category {
	seen := make(map[Category]struct{}, len(skills))
	categories := make([]Category, 0, len(skills))

	for _, skill := range skills {
		category := NormalizeSkill(skill)
		if _, ok := seen[category]; ok {
			continue
		}
		seen[category] = struct{}{}
		categories = append(categories, category)
	}

	return categories
}
