// Package pricing selects the exported sale price and strike-through price
// from the raw price facts of a variation.
package pricing

import "github.com/shopspring/decimal"

// Facts are the raw price values looked up for a variation. Absent prices are
// zero.
type Facts struct {
	Price                  decimal.Decimal
	SpecialPrice           decimal.Decimal
	RecommendedRetailPrice decimal.Decimal
}

// Selection is the outcome of price selection. Absent values are flagged
// explicitly and must render as empty fields, never as zero.
type Selection struct {
	Price       decimal.Decimal
	OldPrice    decimal.Decimal
	HasPrice    bool
	HasOldPrice bool
}

// Select computes the effective price and old price for a variation.
//
// The special price is used only when it is set and lower than the regular
// price. The recommended retail price becomes the old price only when it is a
// genuinely higher reference than both the regular and the effective price.
// Select never filters; callers exclude variations without an effective price.
func Select(f Facts) Selection {
	var sel Selection

	if f.SpecialPrice.IsPositive() && f.SpecialPrice.LessThan(f.Price) {
		sel.Price = f.SpecialPrice
		sel.HasPrice = true
	} else if f.Price.IsPositive() {
		sel.Price = f.Price
		sel.HasPrice = true
	}

	// Without an effective price there is nothing to strike through; the
	// variation is excluded by the price gate anyway.
	if !sel.HasPrice {
		return sel
	}

	if f.RecommendedRetailPrice.IsPositive() &&
		f.RecommendedRetailPrice.GreaterThan(sel.Price) &&
		f.RecommendedRetailPrice.GreaterThan(f.Price) {
		sel.OldPrice = f.RecommendedRetailPrice
		sel.HasOldPrice = true
	} else if f.Price.IsPositive() && f.Price.LessThan(sel.Price) {
		sel.OldPrice = f.Price
		sel.HasOldPrice = true
	}

	return sel
}
