// Package presenter turns ledger summaries into the strings an assets page shows.
package presenter

import (
	"strings"

	"wallet-ledger/internal/core/domain"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// AssetRow is one currency line of the assets page.
type AssetRow struct {
	Symbol          string `json:"symbol"`
	Balance         string `json:"balance"`
	Percent         string `json:"percent"`
	WithdrawVisible bool   `json:"withdraw_visible"`
}

// AssetsPageView holds every display string of the assets page.
type AssetsPageView struct {
	TotalAmount   string     `json:"total_amount"`
	DonutLabel    string     `json:"donut_label"`
	PersonalTotal string     `json:"personal_total"`
	PersonalToday string     `json:"personal_today"`
	TeamTotal     string     `json:"team_total"`
	TeamToday     string     `json:"team_today"`
	Assets        []AssetRow `json:"assets"`
}

// AssetsPage formats sum. Totals and income use two decimals with the
// reference symbol; balances use up to four decimals without trailing zeros.
func AssetsPage(sum domain.Summary) AssetsPageView {
	view := AssetsPageView{
		TotalAmount:   referenceAmount(sum.TotalValue),
		DonutLabel:    "≈$" + sum.TotalValue.StringFixed(2),
		PersonalTotal: referenceAmount(sum.Income.PersonalTotal),
		PersonalToday: referenceAmount(sum.Income.PersonalToday),
		TeamTotal:     referenceAmount(sum.Income.TeamTotal),
		TeamToday:     referenceAmount(sum.Income.TeamToday),
	}

	symbols := sum.Symbols()
	view.Assets = make([]AssetRow, 0, len(symbols))
	for _, sym := range symbols {
		bal := sum.Balances[sym]
		view.Assets = append(view.Assets, AssetRow{
			Symbol:          sym,
			Balance:         FormatBalance(bal),
			Percent:         share(sum.Values[sym], sum.TotalValue),
			WithdrawVisible: bal.IsPositive(),
		})
	}
	return view
}

// FormatBalance renders d with at most four decimals and no trailing zeros.
func FormatBalance(d decimal.Decimal) string {
	s := d.StringFixed(4)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

func referenceAmount(d decimal.Decimal) string {
	return d.StringFixed(2) + " " + domain.ReferenceSymbol
}

func share(value, total decimal.Decimal) string {
	if !total.IsPositive() {
		return "0.00%"
	}
	return value.Div(total).Mul(hundred).StringFixed(2) + "%"
}
