package domain

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the kind of balance movement.
type TransactionType string

const (
	TransactionTypeDeposit  TransactionType = "deposit"
	TransactionTypeWithdraw TransactionType = "withdraw"
	TransactionTypeSwap     TransactionType = "swap"
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeBonus    TransactionType = "bonus"
)

// TransactionStatus represents the lifecycle state of a record.
type TransactionStatus string

const (
	TransactionStatusSucceeded TransactionStatus = "succeeded"
	TransactionStatusPending   TransactionStatus = "pending"
)

// TransactionRecord is an immutable audit entry for one balance-affecting operation.
type TransactionRecord struct {
	ID           string            `json:"id"`
	Type         TransactionType   `json:"type"`
	FromCurrency string            `json:"fromCurrency,omitempty"`
	ToCurrency   string            `json:"toCurrency,omitempty"`
	AmountFrom   *decimal.Decimal  `json:"amountFrom,omitempty"`
	AmountTo     *decimal.Decimal  `json:"amountTo,omitempty"`
	Amount       *decimal.Decimal  `json:"amount,omitempty"`
	Rate         *decimal.Decimal  `json:"rate,omitempty"`
	Fee          *decimal.Decimal  `json:"fee,omitempty"`
	Net          *decimal.Decimal  `json:"net,omitempty"`
	Note         string            `json:"note,omitempty"`
	Status       TransactionStatus `json:"status"`
	CreatedAt    time.Time         `json:"createdAt"`
}

// IsPending returns true if the record still awaits settlement.
func (t *TransactionRecord) IsPending() bool {
	return t.Status == TransactionStatusPending
}

// Dec returns a pointer to a copy of d, for the optional amount fields.
func Dec(d decimal.Decimal) *decimal.Decimal {
	return &d
}

type transactionRecordAlias TransactionRecord

// legacyRecordFields are the keys older bill entries used.
type legacyRecordFields struct {
	Currency string `json:"currency"`
	Remark   string `json:"remark"`
}

// UnmarshalJSON reads both the current record layout and the older bill
// layout ("currency" pair string, "remark", capitalised status, swap sides
// in "amount" and "net").
func (t *TransactionRecord) UnmarshalJSON(data []byte) error {
	var alias transactionRecordAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	var legacy legacyRecordFields
	if err := json.Unmarshal(data, &legacy); err != nil {
		return err
	}

	*t = TransactionRecord(alias)
	t.Type = TransactionType(strings.ToLower(strings.TrimSpace(string(t.Type))))
	t.Status = TransactionStatus(strings.ToLower(strings.TrimSpace(string(t.Status))))
	if t.Status == "" {
		t.Status = TransactionStatusSucceeded
	}
	if t.Note == "" {
		t.Note = legacy.Remark
	}
	if t.FromCurrency == "" && t.ToCurrency == "" && legacy.Currency != "" {
		t.FromCurrency, t.ToCurrency = splitLegacyCurrency(t.Type, legacy.Currency)
	}
	// older swap bills kept the sold side in "amount" and the bought side in "net"
	if t.Type == TransactionTypeSwap && t.AmountFrom == nil && t.AmountTo == nil {
		t.AmountFrom, t.AmountTo = t.Amount, t.Net
		t.Amount, t.Net = nil, nil
	}
	return nil
}

// splitLegacyCurrency maps "BTC→USDT" onto a pair, and a single symbol onto
// the side the record type moves money on.
func splitLegacyCurrency(typ TransactionType, currency string) (from, to string) {
	if before, after, ok := strings.Cut(currency, "→"); ok {
		return NormalizeSymbol(before), NormalizeSymbol(after)
	}
	if typ == TransactionTypeWithdraw {
		return NormalizeSymbol(currency), ""
	}
	return "", NormalizeSymbol(currency)
}
