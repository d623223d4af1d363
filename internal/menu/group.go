package menu

import "strings"

// UncategorizedLabel is the sentinel bucket for items without a category.
const UncategorizedLabel = "Uncategorized"

// Bucket is a named group of entries sharing a category value.
type Bucket struct {
	Title string  `json:"title"`
	Items []Entry `json:"items"`
}

// NormalizeCategory maps an empty or whitespace-only category to the
// sentinel label. Non-empty values pass through untouched (case-sensitive).
func NormalizeCategory(category string) string {
	if strings.TrimSpace(category) == "" {
		return UncategorizedLabel
	}
	return category
}

// GroupByCategory partitions entries into buckets keyed by category,
// preserving first-seen category order. No entry is dropped or duplicated:
// flattening the buckets back together yields a permutation of the input.
func GroupByCategory(entries []Entry) []Bucket {
	var order []string
	byCategory := make(map[string][]Entry)
	for _, e := range entries {
		cat := NormalizeCategory(e.Category)
		if _, seen := byCategory[cat]; !seen {
			order = append(order, cat)
		}
		byCategory[cat] = append(byCategory[cat], e)
	}

	buckets := make([]Bucket, 0, len(order))
	for _, cat := range order {
		buckets = append(buckets, Bucket{Title: cat, Items: byCategory[cat]})
	}
	return buckets
}
