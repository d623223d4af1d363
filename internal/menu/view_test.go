package menu

import (
	"testing"

	"github.com/menuboard/menuboard/internal/domain"
)

func TestBuildMenuViewDropsEmptiedBuckets(t *testing.T) {
	entries := []Entry{
		{Kind: KindFood, ID: 1, Name: "Idli", Category: "Breakfast", Available: true, Vegetarian: true},
		{Kind: KindFood, ID: 2, Name: "Paneer Tikka", Category: "Starters", Available: true, Vegetarian: true},
	}

	view := BuildMenuView(ViewFood, entries, nil, Filter{Query: "idli", Availability: AvailOnly})

	if len(view.Buckets) != 1 || view.Buckets[0].Title != "Breakfast" {
		t.Fatalf("buckets = %+v, want only Breakfast (empty buckets removed)", view.Buckets)
	}
	// The chip row still lists Starters with a zero count.
	foundZero := false
	for _, c := range view.Categories {
		if c.Category == "Starters" && c.Count == 0 {
			foundZero = true
		}
	}
	if !foundZero {
		t.Errorf("categories = %+v, want Starters chip with 0", view.Categories)
	}
	if view.Total != 1 {
		t.Errorf("total = %d, want 1", view.Total)
	}
}

func TestBuildMenuViewAttachesPromotions(t *testing.T) {
	entries := []Entry{
		{Kind: KindAlcohol, ID: 1, Name: "Hoppy IPA", Category: "IPA Beer", Available: true},
		{Kind: KindAlcohol, ID: 2, Name: "Pilsner", Category: "Lager", Available: true},
	}
	promos := []domain.Promotion{
		{Key: "buy2_beer_get1_free", Category: domain.PromoCategoryBeer, Active: true},
		{Key: "welcome", Category: domain.PromoCategoryGeneral, Active: true},
		{Key: "inactive", Category: domain.PromoCategoryGeneral, Active: false},
	}

	view := BuildMenuView(ViewDrinks, entries, promos, Filter{Availability: AvailOnly})

	if len(view.Promotions) != 2 {
		t.Errorf("active promotions = %d, want 2", len(view.Promotions))
	}

	byTitle := make(map[string][]domain.Promotion)
	for _, b := range view.Buckets {
		byTitle[b.Title] = b.Promotions
	}
	if got := byTitle["IPA Beer"]; len(got) != 2 {
		t.Errorf("IPA Beer promotions = %+v, want beer + general", got)
	}
	if got := byTitle["Lager"]; len(got) != 1 || got[0].Key != "welcome" {
		t.Errorf("Lager promotions = %+v, want general only", got)
	}
}

func TestFoodEntryCarriesKindAndTags(t *testing.T) {
	e := FoodEntry(domain.FoodItem{
		ID: 7, Name: "Paneer Tikka", Category: "Starters",
		Price: 350, Vegetarian: true, Available: true, Tags: "spicy, tandoor",
	})
	if e.Kind != KindFood {
		t.Errorf("kind = %s, want food", e.Kind)
	}
	if len(e.Tags) != 2 || e.Tags[0] != "spicy" || e.Tags[1] != "tandoor" {
		t.Errorf("tags = %v", e.Tags)
	}
	if e.Price != "₹350" {
		t.Errorf("price = %q, want ₹350", e.Price)
	}
}

func TestAlcoholEntryCarriesPours(t *testing.T) {
	e := AlcoholEntry(domain.AlcoholItem{
		ID: 8, Name: "Single Malt", Brand: "Amrut", Category: "Whiskey",
		Price60ml: fptr(250), PriceBottle: fptr(1800), Available: true,
	})
	if e.Kind != KindAlcohol {
		t.Errorf("kind = %s, want alcohol", e.Kind)
	}
	if len(e.Pours) != 2 {
		t.Fatalf("pours = %+v, want 2", e.Pours)
	}
	if e.Pours[1].Display != "₹1,800" {
		t.Errorf("bottle display = %q, want ₹1,800", e.Pours[1].Display)
	}
}
