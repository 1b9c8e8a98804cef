package model

import "strings"

// Category is the closed set of purposes a transaction can be classified into.
type Category string

const (
	// CategoryTravel covers flights, hotels and ground transport.
	CategoryTravel Category = "travel"
	// CategoryEcommerce covers online and retail purchases.
	CategoryEcommerce Category = "ecommerce"
	// CategoryFood covers restaurants and groceries.
	CategoryFood Category = "food"
	// CategoryEntertainment covers movies, concerts and events.
	CategoryEntertainment Category = "entertainment"
	// CategoryUtilities covers bills, subscriptions and services.
	CategoryUtilities Category = "utilities"
	// CategoryOther is the fallback when no rule matches. It never has a rule.
	CategoryOther Category = "other"
)

// Categories lists every category in declaration order, OTHER last.
func Categories() []Category {
	return []Category{
		CategoryTravel,
		CategoryEcommerce,
		CategoryFood,
		CategoryEntertainment,
		CategoryUtilities,
		CategoryOther,
	}
}

// ParseCategory maps a category name to its Category, ignoring case and surrounding space.
func ParseCategory(s string) (Category, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, c := range Categories() {
		if string(c) == name {
			return c, true
		}
	}
	return "", false
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}
