package menu

import "github.com/menuboard/menuboard/internal/domain"

// ItemKind tags an Entry with its source table. Rendering code switches on
// the kind instead of probing for price fields.
type ItemKind string

const (
	KindFood    ItemKind = "food"
	KindAlcohol ItemKind = "alcohol"
)

// Entry is the presentation form of a menu item, shared by the food and
// drinks views. Food entries carry Price; alcohol entries carry Pours.
type Entry struct {
	Kind        ItemKind    `json:"kind"`
	ID          int64       `json:"id,string"`
	Name        string      `json:"name"`
	Brand       string      `json:"brand,omitempty"`
	Category    string      `json:"category"`
	Description string      `json:"description,omitempty"`
	Tags        []string    `json:"tags,omitempty"`
	Vegetarian  bool        `json:"vegetarian"`
	Available   bool        `json:"available"`
	Featured    bool        `json:"featured"`
	Price       string      `json:"price,omitempty"`
	Pours       []PourPrice `json:"pours,omitempty"`
}

// FoodEntry converts a stored food item into its presentation form.
func FoodEntry(item domain.FoodItem) Entry {
	return Entry{
		Kind:        KindFood,
		ID:          item.ID,
		Name:        item.Name,
		Category:    item.Category,
		Description: item.Description,
		Tags:        item.TagList(),
		Vegetarian:  item.Vegetarian,
		Available:   item.Available,
		Featured:    item.Featured,
		Price:       FormatPrice(item.Price),
	}
}

// AlcoholEntry converts a stored alcohol item into its presentation form.
// Only the pour sizes with a price present are listed, in fixed size order.
func AlcoholEntry(item domain.AlcoholItem) Entry {
	return Entry{
		Kind:      KindAlcohol,
		ID:        item.ID,
		Name:      item.Name,
		Brand:     item.Brand,
		Category:  item.Category,
		Tags:      item.TagList(),
		Available: item.Available,
		Featured:  item.Featured,
		Pours:     PourPrices(item),
	}
}

// FoodEntries maps a food item collection into entries.
func FoodEntries(items []domain.FoodItem) []Entry {
	out := make([]Entry, 0, len(items))
	for _, item := range items {
		out = append(out, FoodEntry(item))
	}
	return out
}

// AlcoholEntries maps an alcohol item collection into entries.
func AlcoholEntries(items []domain.AlcoholItem) []Entry {
	out := make([]Entry, 0, len(items))
	for _, item := range items {
		out = append(out, AlcoholEntry(item))
	}
	return out
}
