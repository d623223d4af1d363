package domain

import "time"

// Promotion categories. A promotion is never created through the admin UI,
// only toggled; the preset table below is the source of definitions.
const (
	PromoCategoryBeer    = "beer"
	PromoCategoryFood    = "food"
	PromoCategoryDrinks  = "drinks"
	PromoCategoryAlcohol = "alcohol"
	PromoCategoryGeneral = "general"
)

// Promotion is a preset offer toggled active/inactive at runtime. Key is the
// stable identifier used for upserts and for the local fallback store.
type Promotion struct {
	Key         string    `gorm:"primaryKey;size:64" json:"key" form:"key"`
	Title       string    `json:"title" form:"title"`
	Description string    `json:"description" form:"description"`
	Category    string    `gorm:"index;size:32" json:"category" form:"category"`
	Active      bool      `json:"active" form:"active"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Promotion) TableName() string {
	return "menu_promotion"
}

// PresetPromotions are the fixed offer definitions seeded at startup.
var PresetPromotions = []Promotion{
	{
		Key:         "buy2_beer_get1_free",
		Title:       "Buy 2 Beer, Get 1 Free",
		Description: "Order any two beers and get the third beer free of equal or lesser value.",
		Category:    PromoCategoryBeer,
	},
	{
		Key:         "happy_hour_beer_5to7",
		Title:       "Happy Hour Beer (5-7 PM)",
		Description: "Flat 20% off on all beers during happy hours.",
		Category:    PromoCategoryBeer,
	},
	{
		Key:         "buy3_large_pizza_pay2",
		Title:       "Buy 3 Large Pizza, Pay for 2",
		Description: "Get one large pizza free when you order three.",
		Category:    PromoCategoryFood,
	},
	{
		Key:         "combo_whiskey_starter",
		Title:       "Whiskey + Starter Combo",
		Description: "Flat ₹200 off when ordering any whiskey with a starter.",
		Category:    PromoCategoryAlcohol,
	},
	{
		Key:         "welcome_drink_weekend",
		Title:       "Weekend Welcome Drink",
		Description: "One complimentary mocktail for every dine-in group on weekends.",
		Category:    PromoCategoryGeneral,
	},
}

// PresetPromotionByKey returns the preset definition for key, or nil.
func PresetPromotionByKey(key string) *Promotion {
	for i := range PresetPromotions {
		if PresetPromotions[i].Key == key {
			return &PresetPromotions[i]
		}
	}
	return nil
}

// ValidPromoCategory reports whether c is one of the fixed promotion categories.
func ValidPromoCategory(c string) bool {
	switch c {
	case PromoCategoryBeer, PromoCategoryFood, PromoCategoryDrinks,
		PromoCategoryAlcohol, PromoCategoryGeneral:
		return true
	}
	return false
}
