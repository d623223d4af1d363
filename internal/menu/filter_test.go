package menu

import (
	"strings"
	"testing"
)

func sampleEntries() []Entry {
	return []Entry{
		{Kind: KindFood, ID: 1, Name: "Idli", Category: "Breakfast", Available: true, Vegetarian: true},
		{Kind: KindFood, ID: 2, Name: "Omelette", Category: "Breakfast", Available: false, Vegetarian: false},
		{Kind: KindFood, ID: 3, Name: "Paneer Tikka", Category: "Starters", Available: true, Vegetarian: true, Tags: []string{"spicy"}},
		{Kind: KindAlcohol, ID: 4, Name: "Classic Mojito", Category: "Cocktails", Available: true},
		{Kind: KindAlcohol, ID: 5, Name: "Old Fashioned", Category: "Cocktails", Available: true, Tags: []string{"whiskey"}},
	}
}

func TestEmptyQueryIsNoOp(t *testing.T) {
	entries := sampleEntries()
	for _, q := range []string{"", "   ", "\t"} {
		got := Filter{Query: q}.Apply(entries)
		if len(got) != len(entries) {
			t.Errorf("Filter{Query:%q} kept %d of %d entries, want all", q, len(got), len(entries))
		}
	}
}

func TestQueryMatchesNameSubstring(t *testing.T) {
	entries := sampleEntries()

	// Every non-empty substring of a name must match it, case-insensitively.
	name := "Classic Mojito"
	for i := 0; i < len(name); i++ {
		for j := i + 1; j <= len(name); j++ {
			q := strings.ToUpper(name[i:j])
			if strings.TrimSpace(q) == "" {
				continue
			}
			got := Filter{Query: q}.Apply(entries)
			found := false
			for _, e := range got {
				if e.ID == 4 {
					found = true
				}
			}
			if !found {
				t.Fatalf("query %q did not match %q", q, name)
			}
		}
	}
}

func TestQueryMatchesTags(t *testing.T) {
	entries := sampleEntries()
	got := Filter{Query: "WHISK"}.Apply(entries)
	if len(got) != 1 || got[0].ID != 5 {
		t.Errorf("tag query matched %+v, want only Old Fashioned", got)
	}
}

func TestFiltersCombineByAND(t *testing.T) {
	entries := sampleEntries()
	f := Filter{Category: "Breakfast", Diet: DietVeg, Availability: AvailOnly}
	got := f.Apply(entries)
	if len(got) != 1 || got[0].Name != "Idli" {
		t.Fatalf("combined filter = %+v, want only Idli", got)
	}
}

func TestFilterOrderIndependence(t *testing.T) {
	// Applying predicates one dimension at a time, in any order, must agree
	// with the combined filter.
	entries := sampleEntries()
	combined := Filter{Category: "Breakfast", Diet: DietVeg, Availability: AvailOnly}.Apply(entries)

	step1 := Filter{Availability: AvailOnly}.Apply(entries)
	step2 := Filter{Diet: DietVeg}.Apply(step1)
	step3 := Filter{Category: "Breakfast"}.Apply(step2)

	alt1 := Filter{Category: "Breakfast"}.Apply(entries)
	alt2 := Filter{Availability: AvailOnly}.Apply(alt1)
	alt3 := Filter{Diet: DietVeg}.Apply(alt2)

	if len(step3) != len(combined) || len(alt3) != len(combined) {
		t.Fatalf("order-dependent filtering: combined=%d seq=%d alt=%d",
			len(combined), len(step3), len(alt3))
	}
	for i := range combined {
		if step3[i].ID != combined[i].ID || alt3[i].ID != combined[i].ID {
			t.Errorf("entry %d differs across application orders", i)
		}
	}
}

func TestAllValuesDisablePredicates(t *testing.T) {
	entries := sampleEntries()
	f := Filter{Category: "all", Diet: DietAll, Availability: AvailAll}
	if got := f.Apply(entries); len(got) != len(entries) {
		t.Errorf("all-valued filter kept %d of %d", len(got), len(entries))
	}
}

func TestDietIgnoresAlcohol(t *testing.T) {
	entries := sampleEntries()
	got := Filter{Diet: DietVeg}.Apply(entries)
	// Both cocktails pass; Omelette is filtered out.
	for _, e := range got {
		if e.Name == "Omelette" {
			t.Error("non-veg food passed the veg filter")
		}
	}
	cocktails := 0
	for _, e := range got {
		if e.Kind == KindAlcohol {
			cocktails++
		}
	}
	if cocktails != 2 {
		t.Errorf("veg filter dropped alcohol entries: kept %d of 2", cocktails)
	}
}

func TestPublicBreakfastScenario(t *testing.T) {
	// Spec scenario: available-only view of Breakfast shows Idli, not Omelette.
	entries := []Entry{
		{Kind: KindFood, ID: 1, Name: "Idli", Category: "Breakfast", Available: true, Vegetarian: true},
		{Kind: KindFood, ID: 2, Name: "Omelette", Category: "Breakfast", Available: false, Vegetarian: false},
	}
	filtered := Filter{Availability: AvailOnly}.Apply(entries)
	buckets := GroupByCategory(filtered)
	if len(buckets) != 1 || buckets[0].Title != "Breakfast" {
		t.Fatalf("buckets = %+v, want single Breakfast bucket", buckets)
	}
	if len(buckets[0].Items) != 1 || buckets[0].Items[0].Name != "Idli" {
		t.Errorf("Breakfast bucket = %+v, want only Idli", buckets[0].Items)
	}
}

func TestCategoryCountsKeepZeroes(t *testing.T) {
	entries := sampleEntries()
	counts := CategoryCounts(entries, Filter{Query: "idli", Availability: AvailOnly})

	want := map[string]int{"Breakfast": 1, "Starters": 0, "Cocktails": 0}
	if len(counts) != 3 {
		t.Fatalf("counts = %+v, want 3 chips including zeroes", counts)
	}
	for _, c := range counts {
		if want[c.Category] != c.Count {
			t.Errorf("count[%s] = %d, want %d", c.Category, c.Count, want[c.Category])
		}
	}
}

func TestCategoryCountsIgnoreCategorySelection(t *testing.T) {
	entries := sampleEntries()
	selected := CategoryCounts(entries, Filter{Category: "Breakfast"})
	unselected := CategoryCounts(entries, Filter{})
	if len(selected) != len(unselected) {
		t.Fatalf("chip count changed with category selection: %d vs %d", len(selected), len(unselected))
	}
	for i := range selected {
		if selected[i] != unselected[i] {
			t.Errorf("chip %d differs under category selection: %+v vs %+v", i, selected[i], unselected[i])
		}
	}
}
