package domain

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// ReferenceSymbol is the unit every price is expressed in.
const ReferenceSymbol = "USDT"

// DefaultSymbols is the fixed set of symbols every wallet starts with, in display order.
var DefaultSymbols = []string{"USDT", "BTC", "ETH", "USDC", "TRX"}

var defaultPrices = map[string]decimal.Decimal{
	"USDT": decimal.NewFromInt(1),
	"BTC":  decimal.NewFromInt(60000),
	"ETH":  decimal.NewFromInt(3000),
	"USDC": decimal.NewFromInt(1),
	"TRX":  decimal.RequireFromString("0.1"),
}

// DefaultPrices returns a fresh copy of the built-in price table.
func DefaultPrices() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(defaultPrices))
	for sym, p := range defaultPrices {
		out[sym] = p
	}
	return out
}

// DefaultPrice returns the built-in price of symbol, or zero when unknown.
func DefaultPrice(symbol string) decimal.Decimal {
	return defaultPrices[NormalizeSymbol(symbol)]
}

// NormalizeSymbol trims and upper-cases a currency symbol.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// Amount bounds. Amounts and prices outside them are refused.
const (
	MaxAmountExponent = 18
	MaxAmountDigits   = 30
)

// WithinBounds reports whether d has at most MaxAmountDigits significant
// digits and an exponent within ±MaxAmountExponent.
func WithinBounds(d decimal.Decimal) bool {
	exp := d.Exponent()
	if exp > MaxAmountExponent || exp < -MaxAmountExponent {
		return false
	}
	return d.NumDigits() <= MaxAmountDigits
}

// ValidAmount reports whether d is a positive, storable amount.
func ValidAmount(d decimal.Decimal) bool {
	return d.IsPositive() && WithinBounds(d)
}

// IncomeCounters tracks income in reference units.
type IncomeCounters struct {
	PersonalTotal decimal.Decimal `json:"personalTotal"`
	PersonalToday decimal.Decimal `json:"personalToday"`
	TeamTotal     decimal.Decimal `json:"teamTotal"`
	TeamToday     decimal.Decimal `json:"teamToday"`
}

// CreditPersonal adds amount to both personal counters.
func (c *IncomeCounters) CreditPersonal(amount decimal.Decimal) {
	c.PersonalTotal = c.PersonalTotal.Add(amount)
	c.PersonalToday = c.PersonalToday.Add(amount)
}

// WalletState is the persisted snapshot of one wallet.
type WalletState struct {
	Balances          map[string]decimal.Decimal `json:"balances"`
	Prices            map[string]decimal.Decimal `json:"prices"`
	IncomeCounters    IncomeCounters             `json:"incomeCounters"`
	WelcomeBonusGiven bool                       `json:"welcomeBonusGiven"`
	TotalIncomeRuns   int64                      `json:"totalIncomeRuns"`
	TeamSummary       TeamSummary                `json:"teamSummary"`
	Transactions      []TransactionRecord        `json:"transactions"`

	// Extra keeps top-level fields written by other versions so they survive a rewrite.
	Extra map[string]json.RawMessage `json:"-"`
}

// NewWalletState returns a freshly seeded wallet: zero balances for the
// default symbols, default prices and no bonus given yet.
func NewWalletState() *WalletState {
	s := &WalletState{
		Balances:     make(map[string]decimal.Decimal, len(DefaultSymbols)),
		Prices:       DefaultPrices(),
		TeamSummary:  DefaultTeamSummary(),
		Transactions: []TransactionRecord{},
	}
	for _, sym := range DefaultSymbols {
		s.Balances[sym] = decimal.Zero
	}
	return s
}

// Balance returns the balance of symbol (zero when absent).
func (s *WalletState) Balance(symbol string) decimal.Decimal {
	return s.Balances[NormalizeSymbol(symbol)]
}

// Credit adds amount to symbol, creating the entry for an unseen symbol.
func (s *WalletState) Credit(symbol string, amount decimal.Decimal) {
	sym := NormalizeSymbol(symbol)
	if s.Balances == nil {
		s.Balances = make(map[string]decimal.Decimal)
	}
	s.Balances[sym] = s.Balances[sym].Add(amount)
}

// Debit subtracts amount from symbol. It refuses, leaving the balance
// untouched, when the balance does not cover amount.
func (s *WalletState) Debit(symbol string, amount decimal.Decimal) bool {
	sym := NormalizeSymbol(symbol)
	current := s.Balances[sym]
	if current.LessThan(amount) {
		return false
	}
	s.Balances[sym] = current.Sub(amount)
	return true
}

// Price returns the wallet's price for symbol, falling back to the built-in
// table and then to zero.
func (s *WalletState) Price(symbol string) decimal.Decimal {
	sym := NormalizeSymbol(symbol)
	if sym == "" {
		return decimal.Zero
	}
	if p, ok := s.Prices[sym]; ok {
		return p
	}
	return defaultPrices[sym]
}

// PrependTransaction records tx as the newest entry.
func (s *WalletState) PrependTransaction(tx TransactionRecord) {
	s.Transactions = append([]TransactionRecord{tx}, s.Transactions...)
}

func cloneDecimalMap(in map[string]decimal.Decimal) map[string]decimal.Decimal {
	if in == nil {
		return nil
	}
	out := make(map[string]decimal.Decimal, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
