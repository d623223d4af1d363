package menu

import (
	"testing"
)

func TestGroupByCategoryRoundTrip(t *testing.T) {
	entries := []Entry{
		{Kind: KindFood, ID: 1, Name: "Idli", Category: "Breakfast"},
		{Kind: KindFood, ID: 2, Name: "Paneer Tikka", Category: "Starters"},
		{Kind: KindFood, ID: 3, Name: "Dosa", Category: "Breakfast"},
		{Kind: KindFood, ID: 4, Name: "Gulab Jamun", Category: "Desserts"},
		{Kind: KindFood, ID: 5, Name: "Mystery Special", Category: ""},
		{Kind: KindFood, ID: 6, Name: "Chicken Wings", Category: "Starters"},
	}

	buckets := GroupByCategory(entries)

	// First-seen category order, not alphabetical.
	wantOrder := []string{"Breakfast", "Starters", "Desserts", UncategorizedLabel}
	if len(buckets) != len(wantOrder) {
		t.Fatalf("bucket count = %d, want %d", len(buckets), len(wantOrder))
	}
	for i, title := range wantOrder {
		if buckets[i].Title != title {
			t.Errorf("bucket[%d].Title = %q, want %q", i, buckets[i].Title, title)
		}
	}

	// Flattening reproduces a permutation of the input: nothing lost or duplicated.
	seen := make(map[int64]int)
	total := 0
	for _, b := range buckets {
		for _, e := range b.Items {
			seen[e.ID]++
			total++
		}
	}
	if total != len(entries) {
		t.Errorf("flattened count = %d, want %d", total, len(entries))
	}
	for _, e := range entries {
		if seen[e.ID] != 1 {
			t.Errorf("entry %d appears %d times after grouping, want 1", e.ID, seen[e.ID])
		}
	}
}

func TestGroupByCategoryEdgeCases(t *testing.T) {
	if got := GroupByCategory(nil); len(got) != 0 {
		t.Errorf("grouping empty input yields %d buckets, want 0", len(got))
	}

	single := []Entry{
		{ID: 1, Category: "Wines"},
		{ID: 2, Category: "Wines"},
	}
	buckets := GroupByCategory(single)
	if len(buckets) != 1 || buckets[0].Title != "Wines" || len(buckets[0].Items) != 2 {
		t.Errorf("single category grouping = %+v, want one Wines bucket with 2 items", buckets)
	}
}

func TestGroupByCategoryCaseSensitive(t *testing.T) {
	entries := []Entry{
		{ID: 1, Category: "Beer"},
		{ID: 2, Category: "beer"},
	}
	buckets := GroupByCategory(entries)
	if len(buckets) != 2 {
		t.Fatalf("expected case-sensitive categories in separate buckets, got %d", len(buckets))
	}
}

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", UncategorizedLabel},
		{"   ", UncategorizedLabel},
		{"Starters", "Starters"},
		{" Starters ", " Starters "},
	}
	for _, tt := range tests {
		if got := NormalizeCategory(tt.in); got != tt.want {
			t.Errorf("NormalizeCategory(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
