package models

// Category classifies a bill.
type Category string

const (
	CategoryHousing   Category = "Housing"
	CategoryUtilities Category = "Utilities"
	CategoryFood      Category = "Food"
	CategoryTransport Category = "Transport"
	CategoryHealth    Category = "Health"
	CategoryEducation Category = "Education"
	CategoryLeisure   Category = "Leisure"
	CategoryOther     Category = "Other"
)

// Categories lists all valid categories.
func Categories() []Category {
	return []Category{
		CategoryHousing,
		CategoryUtilities,
		CategoryFood,
		CategoryTransport,
		CategoryHealth,
		CategoryEducation,
		CategoryLeisure,
		CategoryOther,
	}
}

// Valid reports whether the category is part of the fixed set.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}

	return false
}

// ParseCategory maps a raw category value to a known Category.
// Unrecognized and missing values map to CategoryOther.
func ParseCategory(s string) Category {
	c := Category(s)
	if !c.Valid() {
		return CategoryOther
	}

	return c
}
