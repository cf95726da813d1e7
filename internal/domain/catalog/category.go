package catalog

import "strings"

const CategoryOther = "Other"

var Categories = []string{
	"Cleaning",
	"Repair",
	"Tutoring",
	"Photography",
	"Plumbing",
	"Electrical",
	"Gardening",
	"Cooking",
	"Music",
	"Fitness",
	CategoryOther,
}

// LookupCategory returns the canonical name for any casing of a known
// category.
func LookupCategory(c string) (string, bool) {
	c = strings.TrimSpace(c)
	for _, known := range Categories {
		if strings.EqualFold(c, known) {
			return known, true
		}
	}
	return "", false
}

// NormalizeCategory is LookupCategory for writes: unknown or empty values
// become Other.
func NormalizeCategory(c string) string {
	if known, ok := LookupCategory(c); ok {
		return known
	}
	return CategoryOther
}
