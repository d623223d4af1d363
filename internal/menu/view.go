package menu

import "github.com/menuboard/menuboard/internal/domain"

// BucketView is a bucket plus the active promotions displayed alongside it.
type BucketView struct {
	Title      string             `json:"title"`
	Items      []Entry            `json:"items"`
	Promotions []domain.Promotion `json:"promotions,omitempty"`
}

// MenuView is the full presentation model for one public menu page.
type MenuView struct {
	View       View               `json:"view"`
	Buckets    []BucketView       `json:"buckets"`
	Categories []CategoryCount    `json:"categories"`
	Promotions []domain.Promotion `json:"promotions"`
	Total      int                `json:"total"`
}

// BuildMenuView assembles the grouped, filtered view for one page. Chip
// counts are computed before the category selection narrows the set;
// buckets emptied by filtering are dropped from the bucket list entirely.
func BuildMenuView(view View, entries []Entry, promos []domain.Promotion, f Filter) MenuView {
	counts := CategoryCounts(entries, f)
	filtered := f.Apply(entries)

	active := ActiveOnly(promos)
	buckets := GroupByCategory(filtered)

	views := make([]BucketView, 0, len(buckets))
	total := 0
	for _, b := range buckets {
		total += len(b.Items)
		views = append(views, BucketView{
			Title:      b.Title,
			Items:      b.Items,
			Promotions: PromotionsForBucket(view, b.Title, active),
		})
	}

	return MenuView{
		View:       view,
		Buckets:    views,
		Categories: counts,
		Promotions: active,
		Total:      total,
	}
}
