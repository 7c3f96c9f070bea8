package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var snapshotFields = map[string]struct{}{
	"balances":          {},
	"prices":            {},
	"incomeCounters":    {},
	"welcomeBonusGiven": {},
	"totalIncomeRuns":   {},
	"teamSummary":       {},
	"transactions":      {},
}

// Income layouts written before incomeCounters existed. They are folded into
// IncomeCounters on decode and never written back.
var legacyIncomeFields = map[string]struct{}{
	"income":              {},
	"totalPersonalIncome": {},
	"todayPersonalIncome": {},
	"totalTeamIncome":     {},
	"todayTeamIncome":     {},
}

type walletStateAlias WalletState

// MarshalJSON writes the known fields and re-emits preserved unknown ones.
func (s WalletState) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(walletStateAlias(s))
	if err != nil {
		return nil, err
	}
	if len(s.Extra) == 0 {
		return known, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(known, &fields); err != nil {
		return nil, err
	}
	merged := make(map[string]json.RawMessage, len(fields)+len(s.Extra))
	for k, v := range s.Extra {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return json.Marshal(merged)
}

// UnmarshalJSON decodes a snapshot without repairing it; see DecodeSnapshot.
func (s *WalletState) UnmarshalJSON(data []byte) error {
	decoded, _, err := DecodeSnapshot(data)
	if err != nil {
		return err
	}
	*s = *decoded
	return nil
}

// DecodeSnapshot parses a persisted snapshot field by field. A field that
// fails to decode is skipped and its key reported in dropped, so Repair can
// back-fill it; err is returned only when data is not a JSON object.
func DecodeSnapshot(data []byte) (*WalletState, []string, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	if raw == nil {
		return nil, nil, errors.New("decoding snapshot: not an object")
	}

	s := &WalletState{}
	var dropped []string

	decodeField(raw, "balances", &s.Balances, &dropped)
	decodeField(raw, "prices", &s.Prices, &dropped)
	decodeField(raw, "welcomeBonusGiven", &s.WelcomeBonusGiven, &dropped)
	decodeField(raw, "totalIncomeRuns", &s.TotalIncomeRuns, &dropped)
	decodeField(raw, "teamSummary", &s.TeamSummary, &dropped)

	if _, ok := raw["incomeCounters"]; ok {
		decodeField(raw, "incomeCounters", &s.IncomeCounters, &dropped)
	} else {
		s.IncomeCounters = decodeLegacyIncome(raw, &dropped)
	}

	var records []json.RawMessage
	decodeField(raw, "transactions", &records, &dropped)
	for i, r := range records {
		var rec TransactionRecord
		if err := json.Unmarshal(r, &rec); err != nil {
			dropped = append(dropped, fmt.Sprintf("transactions[%d]", i))
			continue
		}
		s.Transactions = append(s.Transactions, rec)
	}

	for k, v := range raw {
		if _, known := snapshotFields[k]; known {
			continue
		}
		if _, legacy := legacyIncomeFields[k]; legacy {
			continue
		}
		if s.Extra == nil {
			s.Extra = make(map[string]json.RawMessage)
		}
		s.Extra[k] = v
	}

	return s, dropped, nil
}

func decodeLegacyIncome(raw map[string]json.RawMessage, dropped *[]string) IncomeCounters {
	var nested struct {
		PersonalToday decimal.Decimal `json:"personalToday"`
		PersonalTotal decimal.Decimal `json:"personalTotal"`
		TeamToday     decimal.Decimal `json:"teamToday"`
		TeamTotal     decimal.Decimal `json:"teamTotal"`
	}
	decodeField(raw, "income", &nested, dropped)

	c := IncomeCounters{
		PersonalTotal: nested.PersonalTotal,
		PersonalToday: nested.PersonalToday,
		TeamTotal:     nested.TeamTotal,
		TeamToday:     nested.TeamToday,
	}
	decodeField(raw, "totalPersonalIncome", &c.PersonalTotal, dropped)
	decodeField(raw, "todayPersonalIncome", &c.PersonalToday, dropped)
	decodeField(raw, "totalTeamIncome", &c.TeamTotal, dropped)
	decodeField(raw, "todayTeamIncome", &c.TeamToday, dropped)
	return c
}

// decodeField decodes raw[key] into dst, leaving dst untouched when the key
// is absent, null or malformed.
func decodeField[T any](raw map[string]json.RawMessage, key string, dst *T, dropped *[]string) {
	v, ok := raw[key]
	if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
		return
	}
	var tmp T
	if err := json.Unmarshal(v, &tmp); err != nil {
		*dropped = append(*dropped, key)
		return
	}
	*dst = tmp
}

// Repair back-fills defaults and restores the snapshot invariants: upper-case
// symbols, every default symbol present, no negative balance or counter, only
// positive prices.
func (s *WalletState) Repair() {
	balances := make(map[string]decimal.Decimal, len(s.Balances)+len(DefaultSymbols))
	for sym, v := range s.Balances {
		key := NormalizeSymbol(sym)
		if key == "" {
			continue
		}
		balances[key] = balances[key].Add(nonNegative(v))
	}
	for _, sym := range DefaultSymbols {
		if _, ok := balances[sym]; !ok {
			balances[sym] = decimal.Zero
		}
	}
	s.Balances = balances

	prices := DefaultPrices()
	for sym, p := range s.Prices {
		key := NormalizeSymbol(sym)
		if key == "" || !p.IsPositive() {
			continue
		}
		prices[key] = p
	}
	s.Prices = prices

	s.IncomeCounters.PersonalTotal = nonNegative(s.IncomeCounters.PersonalTotal)
	s.IncomeCounters.PersonalToday = nonNegative(s.IncomeCounters.PersonalToday)
	s.IncomeCounters.TeamTotal = nonNegative(s.IncomeCounters.TeamTotal)
	s.IncomeCounters.TeamToday = nonNegative(s.IncomeCounters.TeamToday)

	if s.TotalIncomeRuns < 0 {
		s.TotalIncomeRuns = 0
	}

	if s.TeamSummary.Generations == nil {
		s.TeamSummary.Generations = DefaultTeamSummary().Generations
	}
	if s.TeamSummary.Members == nil {
		s.TeamSummary.Members = []json.RawMessage{}
	}

	if s.Transactions == nil {
		s.Transactions = []TransactionRecord{}
	}
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
