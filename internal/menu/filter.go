package menu

import "strings"

// Diet filter values. Diet applies to food entries only; alcohol entries
// always pass the diet predicate.
const (
	DietAll    = "all"
	DietVeg    = "veg"
	DietNonVeg = "nonveg"
)

// Availability filter values. The public menu pins this to AvailOnly; the
// admin list may ask for either side or all.
const (
	AvailAll  = "all"
	AvailOnly = "available"
	Unavail   = "unavailable"
)

// Filter is the composed predicate set applied to an entry list. The three
// dimensions and the query combine by logical AND; each dimension at its
// "all"/empty value is a no-op. Application order does not matter.
type Filter struct {
	Query        string `json:"q"`
	Category     string `json:"category"`
	Diet         string `json:"diet"`
	Availability string `json:"availability"`
}

// Matches reports whether a single entry passes every active predicate.
func (f Filter) Matches(e Entry) bool {
	return f.matchesAvailability(e) &&
		f.matchesDiet(e) &&
		f.matchesCategory(e) &&
		MatchesQuery(e, f.Query)
}

// Apply reduces entries to those passing the filter.
func (f Filter) Apply(entries []Entry) []Entry {
	var out []Entry
	for _, e := range entries {
		if f.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}

func (f Filter) matchesAvailability(e Entry) bool {
	switch f.Availability {
	case AvailOnly:
		return e.Available
	case Unavail:
		return !e.Available
	default:
		return true
	}
}

func (f Filter) matchesDiet(e Entry) bool {
	if e.Kind != KindFood {
		return true
	}
	switch f.Diet {
	case DietVeg:
		return e.Vegetarian
	case DietNonVeg:
		return !e.Vegetarian
	default:
		return true
	}
}

func (f Filter) matchesCategory(e Entry) bool {
	if f.Category == "" || f.Category == "all" {
		return true
	}
	return NormalizeCategory(e.Category) == f.Category
}

// MatchesQuery checks the entry name, and any tag, for a case-insensitive
// substring match. A trimmed-empty query passes every entry.
func MatchesQuery(e Entry, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(e.Name), q) {
		return true
	}
	for _, tag := range e.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// CategoryCount is one chip with its live item count.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CategoryCounts computes per-chip counts over all candidate categories in
// first-seen order. The counts honor every predicate except the category
// selection itself, and categories left empty keep a zero count instead of
// being removed, so the chip row can show "CategoryName (0)".
func CategoryCounts(entries []Entry, f Filter) []CategoryCount {
	countFilter := f
	countFilter.Category = ""

	var order []string
	counts := make(map[string]int)
	for _, e := range entries {
		cat := NormalizeCategory(e.Category)
		if _, seen := counts[cat]; !seen {
			order = append(order, cat)
			counts[cat] = 0
		}
		if countFilter.Matches(e) {
			counts[cat]++
		}
	}

	out := make([]CategoryCount, 0, len(order))
	for _, cat := range order {
		out = append(out, CategoryCount{Category: cat, Count: counts[cat]})
	}
	return out
}
