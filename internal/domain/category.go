package domain

import "strings"

type Category string

const (
	CategoryMusic         Category = "Music"
	CategoryWorkshops     Category = "Workshops"
	CategoryEntertainment Category = "Entertainment"
	CategoryArt           Category = "Art"
	CategorySports        Category = "Sports"
	CategoryFood          Category = "Food"
	CategoryTechnology    Category = "Technology"
	CategoryOther         Category = "Other"
)

// Categories lists the closed set in display order.
var Categories = []Category{
	CategoryMusic,
	CategoryWorkshops,
	CategoryEntertainment,
	CategoryArt,
	CategorySports,
	CategoryFood,
	CategoryTechnology,
	CategoryOther,
}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// CategoryFilter is a Category or the All sentinel.
type CategoryFilter string

const CategoryAll CategoryFilter = "All"

func (f CategoryFilter) Valid() bool {
	return f == CategoryAll || Category(f).Valid()
}

// Matches reports whether an event category passes the filter.
func (f CategoryFilter) Matches(c Category) bool {
	return f == CategoryAll || Category(f) == c
}

// ParseCategoryFilter accepts the exact enum spelling, case-insensitively.
// An empty input means All.
func ParseCategoryFilter(s string) (CategoryFilter, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, string(CategoryAll)) {
		return CategoryAll, nil
	}
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) {
			return CategoryFilter(c), nil
		}
	}
	return "", ErrValidationMeta("invalid category", map[string]string{
		"category": "must be All or one of: " + categoryList(),
	})
}

func categoryList() string {
	names := make([]string, 0, len(Categories))
	for _, c := range Categories {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
