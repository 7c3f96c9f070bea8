package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Summary is the read-only projection of a wallet a display layer binds to.
type Summary struct {
	Balances          map[string]decimal.Decimal `json:"balances"`
	Values            map[string]decimal.Decimal `json:"values"`
	TotalValue        decimal.Decimal            `json:"totalValue"`
	ReferenceBalance  decimal.Decimal            `json:"referenceBalance"`
	Income            IncomeCounters             `json:"income"`
	TotalIncomeRuns   int64                      `json:"totalIncomeRuns"`
	WelcomeBonusGiven bool                       `json:"welcomeBonusGiven"`
}

// ComputeSummary values every balance at the wallet's price for its symbol.
// A symbol without any known price is valued at zero. state is not modified.
func ComputeSummary(state *WalletState) Summary {
	sum := Summary{
		Balances:          cloneDecimalMap(state.Balances),
		Values:            make(map[string]decimal.Decimal, len(state.Balances)),
		TotalValue:        decimal.Zero,
		ReferenceBalance:  state.Balance(ReferenceSymbol),
		Income:            state.IncomeCounters,
		TotalIncomeRuns:   state.TotalIncomeRuns,
		WelcomeBonusGiven: state.WelcomeBonusGiven,
	}
	if sum.Balances == nil {
		sum.Balances = map[string]decimal.Decimal{}
	}

	for sym, bal := range state.Balances {
		v := bal.Mul(state.Price(sym))
		sum.Values[sym] = v
		sum.TotalValue = sum.TotalValue.Add(v)
	}
	return sum
}

// Symbols lists the summary's symbols: the default symbols in display order,
// then any others alphabetically.
func (s Summary) Symbols() []string {
	out := make([]string, 0, len(s.Balances))
	seen := make(map[string]bool, len(DefaultSymbols))
	for _, sym := range DefaultSymbols {
		if _, ok := s.Balances[sym]; ok {
			out = append(out, sym)
			seen[sym] = true
		}
	}

	var rest []string
	for sym := range s.Balances {
		if !seen[sym] {
			rest = append(rest, sym)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}
