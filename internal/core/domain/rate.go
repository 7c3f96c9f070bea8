package domain

import "github.com/shopspring/decimal"

// ResolveRate picks the conversion rate for a from→to swap. A positive
// explicit rate wins. Otherwise the rate is price(from)/price(to), with a
// missing target price read as 1; a source without a price swaps at 1.
func ResolveRate(state *WalletState, from, to string, explicit *decimal.Decimal) decimal.Decimal {
	if explicit != nil && explicit.IsPositive() {
		return *explicit
	}

	fromPrice := state.Price(from)
	if !fromPrice.IsPositive() {
		return decimal.NewFromInt(1)
	}
	toPrice := state.Price(to)
	if !toPrice.IsPositive() {
		toPrice = decimal.NewFromInt(1)
	}
	return fromPrice.Div(toPrice)
}
