package menu

import (
	"testing"
	"time"

	"github.com/menuboard/menuboard/internal/domain"
)

func TestPromotionsForBucketBeerRule(t *testing.T) {
	promos := []domain.Promotion{
		{Key: "buy2_beer_get1_free", Category: domain.PromoCategoryBeer, Active: true},
	}

	// Both titles contain "beer" case-insensitively.
	for _, title := range []string{"IPA Beer", "Lager beers", "BEER Specials"} {
		got := PromotionsForBucket(ViewDrinks, title, promos)
		if len(got) != 1 {
			t.Errorf("beer promotion not associated with bucket %q", title)
		}
	}

	// "Lager" alone does not contain the substring.
	if got := PromotionsForBucket(ViewDrinks, "Lager", promos); len(got) != 0 {
		t.Errorf("beer promotion wrongly associated with %q: %+v", "Lager", got)
	}
}

func TestPromotionsForBucketRuleTable(t *testing.T) {
	promos := []domain.Promotion{
		{Key: "g", Category: domain.PromoCategoryGeneral, Active: true},
		{Key: "f", Category: domain.PromoCategoryFood, Active: true},
		{Key: "a", Category: domain.PromoCategoryAlcohol, Active: true},
		{Key: "d", Category: domain.PromoCategoryDrinks, Active: true},
		{Key: "b", Category: domain.PromoCategoryBeer, Active: true},
	}

	tests := []struct {
		view   View
		bucket string
		want   []string
	}{
		{ViewFood, "Starters", []string{"g", "f"}},
		{ViewFood, "Beer Snacks", []string{"g", "f", "b"}},
		{ViewDrinks, "Whiskey", []string{"g", "a", "d"}},
		{ViewDrinks, "IPA Beer", []string{"g", "a", "d", "b"}},
	}

	for _, tt := range tests {
		got := PromotionsForBucket(tt.view, tt.bucket, promos)
		keys := make([]string, 0, len(got))
		for _, p := range got {
			keys = append(keys, p.Key)
		}
		if len(keys) != len(tt.want) {
			t.Errorf("%s/%s: got %v, want %v", tt.view, tt.bucket, keys, tt.want)
			continue
		}
		for i := range keys {
			if keys[i] != tt.want[i] {
				t.Errorf("%s/%s: got %v, want %v", tt.view, tt.bucket, keys, tt.want)
				break
			}
		}
	}
}

func TestPromotionsForBucketSkipsInactive(t *testing.T) {
	promos := []domain.Promotion{
		{Key: "g", Category: domain.PromoCategoryGeneral, Active: false},
	}
	if got := PromotionsForBucket(ViewFood, "Starters", promos); len(got) != 0 {
		t.Errorf("inactive promotion associated: %+v", got)
	}
}

func TestMergePresets(t *testing.T) {
	now := time.Now()
	remote := []domain.Promotion{
		{Key: "buy2_beer_get1_free", Title: "Beer Bonanza", Category: "beer", Active: true, UpdatedAt: now},
		{Key: "unknown_key", Title: "Ghost", Active: true},
	}

	merged := MergePresets(remote)
	if len(merged) != len(domain.PresetPromotions) {
		t.Fatalf("merged %d promotions, want %d presets", len(merged), len(domain.PresetPromotions))
	}
	first := merged[0]
	if first.Key != "buy2_beer_get1_free" || first.Title != "Beer Bonanza" || !first.Active {
		t.Errorf("remote overlay not applied: %+v", first)
	}
	for _, p := range merged[1:] {
		if p.Active {
			t.Errorf("preset %s unexpectedly active", p.Key)
		}
		if p.Key == "unknown_key" {
			t.Error("unknown remote key leaked into merged presets")
		}
	}
}

func TestMergePresetsEmptyRemote(t *testing.T) {
	merged := MergePresets(nil)
	if len(merged) != len(domain.PresetPromotions) {
		t.Fatalf("merged %d, want preset count %d", len(merged), len(domain.PresetPromotions))
	}
	for i, p := range merged {
		if p.Key != domain.PresetPromotions[i].Key {
			t.Errorf("preset order changed at %d: %s", i, p.Key)
		}
	}
}
