package menu

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/menuboard/menuboard/internal/domain"
)

// PourPrice is one offered pour size with its formatted amount.
type PourPrice struct {
	Size    string  `json:"size"`
	Amount  float64 `json:"amount"`
	Display string  `json:"display"`
}

// Fixed pour size order: 30ml, 60ml, 90ml, 180ml, Bottle.
var pourSizes = []struct {
	label string
	price func(domain.AlcoholItem) *float64
}{
	{"30ml", func(i domain.AlcoholItem) *float64 { return i.Price30ml }},
	{"60ml", func(i domain.AlcoholItem) *float64 { return i.Price60ml }},
	{"90ml", func(i domain.AlcoholItem) *float64 { return i.Price90ml }},
	{"180ml", func(i domain.AlcoholItem) *float64 { return i.Price180ml }},
	{"Bottle", func(i domain.AlcoholItem) *float64 { return i.PriceBottle }},
}

// PourPrices lists the pour sizes priced for item, in fixed size order.
// Absent prices are omitted entirely, never rendered as zero.
func PourPrices(item domain.AlcoholItem) []PourPrice {
	var out []PourPrice
	for _, size := range pourSizes {
		p := size.price(item)
		if p == nil {
			continue
		}
		out = append(out, PourPrice{
			Size:    size.label,
			Amount:  *p,
			Display: FormatPrice(*p),
		})
	}
	return out
}

var pricePrinter = message.NewPrinter(language.English)

// FormatPrice renders an amount as a rupee string with digit grouping.
// Whole amounts drop the fraction ("₹1,800"); others keep two digits.
func FormatPrice(amount float64) string {
	if amount == math.Trunc(amount) {
		return pricePrinter.Sprintf("₹%v", number.Decimal(amount, number.MaxFractionDigits(0)))
	}
	return pricePrinter.Sprintf("₹%v", number.Decimal(amount,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
