package domain

import (
	"time"

	"github.com/menuboard/menuboard/pkg/common"
)

// FoodItem is a dish on the food menu. Tags is a comma separated list
// (e.g. "spicy,vegan") exposed to the view layer via TagList.
type FoodItem struct {
	ID          int64     `json:"id,string" form:"id"`
	Name        string    `gorm:"index" json:"name" form:"name"`
	Category    string    `gorm:"index" json:"category" form:"category"`
	Description string    `json:"description" form:"description"`
	Price       float64   `json:"price" form:"price"`
	Vegetarian  bool      `json:"vegetarian" form:"vegetarian"`
	Available   bool      `json:"available" form:"available"`
	Tags        string    `gorm:"size:512" json:"tags" form:"tags"`
	Featured    bool      `json:"featured" form:"featured"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (FoodItem) TableName() string {
	return "menu_food"
}

func (i FoodItem) TagList() []string {
	return common.SplitAndTrim(i.Tags)
}

// AlcoholItem is a drink on the alcohol menu. Each pour size price is
// independently optional; nil means the pour is not offered.
type AlcoholItem struct {
	ID          int64     `json:"id,string" form:"id"`
	Name        string    `gorm:"index" json:"name" form:"name"`
	Brand       string    `json:"brand" form:"brand"`
	Category    string    `gorm:"index" json:"category" form:"category"`
	Price30ml   *float64  `gorm:"column:price_30ml" json:"price_30ml" form:"price_30ml"`
	Price60ml   *float64  `gorm:"column:price_60ml" json:"price_60ml" form:"price_60ml"`
	Price90ml   *float64  `gorm:"column:price_90ml" json:"price_90ml" form:"price_90ml"`
	Price180ml  *float64  `gorm:"column:price_180ml" json:"price_180ml" form:"price_180ml"`
	PriceBottle *float64  `gorm:"column:price_bottle" json:"price_bottle" form:"price_bottle"`
	Available   bool      `json:"available" form:"available"`
	Tags        string    `gorm:"size:512" json:"tags" form:"tags"`
	Featured    bool      `json:"featured" form:"featured"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (AlcoholItem) TableName() string {
	return "menu_alcohol"
}

func (i AlcoholItem) TagList() []string {
	return common.SplitAndTrim(i.Tags)
}

// PresetFoodCategories is the closed list offered by the admin form next to
// the free-text category input.
var PresetFoodCategories = []string{
	"Starters",
	"Main Course",
	"Breakfast",
	"Breads",
	"Rice & Biryani",
	"Desserts",
}

// PresetAlcoholCategories mirrors the drink side of the admin form.
var PresetAlcoholCategories = []string{
	"Whiskey",
	"Vodka",
	"Rum",
	"Gin",
	"Beer",
	"Wines",
	"Cocktails",
}
