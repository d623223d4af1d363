package menu

import (
	"strings"

	"github.com/menuboard/menuboard/internal/domain"
)

// View identifies which public menu page is being rendered.
type View string

const (
	ViewFood   View = "food"
	ViewDrinks View = "drinks"
)

// MergePresets overlays remote promotion rows on the preset definitions.
// The preset list is authoritative for which promotions exist; remote rows
// contribute updated copy and the active flag. Unknown remote keys are
// ignored.
func MergePresets(remote []domain.Promotion) []domain.Promotion {
	byKey := make(map[string]domain.Promotion, len(remote))
	for _, r := range remote {
		byKey[r.Key] = r
	}

	out := make([]domain.Promotion, 0, len(domain.PresetPromotions))
	for _, p := range domain.PresetPromotions {
		if r, ok := byKey[p.Key]; ok {
			if r.Title != "" {
				p.Title = r.Title
			}
			if r.Description != "" {
				p.Description = r.Description
			}
			if domain.ValidPromoCategory(r.Category) {
				p.Category = r.Category
			}
			p.Active = r.Active
			p.UpdatedAt = r.UpdatedAt
		}
		out = append(out, p)
	}
	return out
}

// ActiveOnly reduces promotions to those currently active.
func ActiveOnly(promos []domain.Promotion) []domain.Promotion {
	var out []domain.Promotion
	for _, p := range promos {
		if p.Active {
			out = append(out, p)
		}
	}
	return out
}

// PromotionsForBucket decides which active promotions accompany a bucket.
// The rule table is fixed:
//   - category "general" applies to every bucket;
//   - on the food view, category "food" applies;
//   - on the drinks view, categories "alcohol" and "drinks" apply
//     unconditionally;
//   - category "beer" applies when the bucket title contains "beer",
//     case-insensitively.
//
// No other combination associates a promotion with a bucket.
func PromotionsForBucket(view View, bucketTitle string, promos []domain.Promotion) []domain.Promotion {
	titleHasBeer := strings.Contains(strings.ToLower(bucketTitle), "beer")

	var out []domain.Promotion
	for _, p := range promos {
		if !p.Active {
			continue
		}
		switch p.Category {
		case domain.PromoCategoryGeneral:
			out = append(out, p)
		case domain.PromoCategoryFood:
			if view == ViewFood {
				out = append(out, p)
			}
		case domain.PromoCategoryAlcohol, domain.PromoCategoryDrinks:
			if view == ViewDrinks {
				out = append(out, p)
			}
		case domain.PromoCategoryBeer:
			if titleHasBeer {
				out = append(out, p)
			}
		}
	}
	return out
}
