package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// DepositRequest is the request body for a deposit.
type DepositRequest struct {
	Symbol        string          `json:"symbol" binding:"omitempty,symbol" sanitize:"symbol"`
	Amount        decimal.Decimal `json:"amount"`
	CountAsIncome bool            `json:"count_as_income"`
	Note          string          `json:"note" binding:"max=200"`
}

// WithdrawRequest is the request body for a withdrawal.
type WithdrawRequest struct {
	Symbol   string          `json:"symbol" binding:"omitempty,symbol" sanitize:"symbol"`
	Amount   decimal.Decimal `json:"amount"`
	Note     string          `json:"note" binding:"max=200"`
	ApplyFee bool            `json:"apply_fee"`
}

// SwapRequest is the request body for a swap at the wallet's prices or an
// explicit rate.
type SwapRequest struct {
	From   string           `json:"from" binding:"omitempty,symbol" sanitize:"symbol"`
	To     string           `json:"to" binding:"omitempty,symbol" sanitize:"symbol"`
	Amount decimal.Decimal  `json:"amount"`
	Rate   *decimal.Decimal `json:"rate,omitempty"`
}

// RecordSwapRequest books a swap whose received amount is already known.
type RecordSwapRequest struct {
	From     string          `json:"from" binding:"omitempty,symbol" sanitize:"symbol"`
	To       string          `json:"to" binding:"omitempty,symbol" sanitize:"symbol"`
	Amount   decimal.Decimal `json:"amount"`
	Received decimal.Decimal `json:"received"`
}

// IncomeRequest is the request body for an income run.
type IncomeRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// SetPricesRequest replaces the listed prices.
type SetPricesRequest struct {
	Prices map[string]decimal.Decimal `json:"prices" binding:"required"`
}

// TransactionQuery filters GET /transactions.
type TransactionQuery struct {
	Type   string `form:"type" binding:"omitempty,oneof=deposit withdraw swap income bonus"`
	Status string `form:"status" binding:"omitempty,oneof=succeeded pending"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=500"`
}

// IncomeResponse mirrors the income counters.
type IncomeResponse struct {
	PersonalTotal decimal.Decimal `json:"personal_total"`
	PersonalToday decimal.Decimal `json:"personal_today"`
	TeamTotal     decimal.Decimal `json:"team_total"`
	TeamToday     decimal.Decimal `json:"team_today"`
}

// SummaryResponse is the response body for every mutating call and GET /summary.
type SummaryResponse struct {
	Symbols           []string                   `json:"symbols"`
	Balances          map[string]decimal.Decimal `json:"balances"`
	Values            map[string]decimal.Decimal `json:"values"`
	TotalValue        decimal.Decimal            `json:"total_value"`
	ReferenceBalance  decimal.Decimal            `json:"reference_balance"`
	Income            IncomeResponse             `json:"income"`
	TotalIncomeRuns   int64                      `json:"total_income_runs"`
	WelcomeBonusGiven bool                       `json:"welcome_bonus_given"`
}

// TransactionResponse is one ledger record.
type TransactionResponse struct {
	ID           string           `json:"id"`
	Type         string           `json:"type"`
	FromCurrency string           `json:"from_currency,omitempty"`
	ToCurrency   string           `json:"to_currency,omitempty"`
	AmountFrom   *decimal.Decimal `json:"amount_from,omitempty"`
	AmountTo     *decimal.Decimal `json:"amount_to,omitempty"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	Rate         *decimal.Decimal `json:"rate,omitempty"`
	Fee          *decimal.Decimal `json:"fee,omitempty"`
	Net          *decimal.Decimal `json:"net,omitempty"`
	Note         string           `json:"note,omitempty"`
	Status       string           `json:"status"`
	CreatedAt    string           `json:"created_at"`
}

// TransactionListResponse wraps the filtered transaction list, newest first.
type TransactionListResponse struct {
	Items   []TransactionResponse `json:"items"`
	Total   int                   `json:"total"`
	Pending int                   `json:"pending"`
}

// GenerationResponse is one referral level.
type GenerationResponse struct {
	Level     int             `json:"level"`
	Effective int             `json:"effective"`
	Percent   int             `json:"percent"`
	Income    decimal.Decimal `json:"income"`
}

// TeamSummaryResponse is the response body for GET /team.
type TeamSummaryResponse struct {
	TeamSize    int                  `json:"team_size"`
	TodayIncome decimal.Decimal      `json:"today_income"`
	TotalIncome decimal.Decimal      `json:"total_income"`
	Generations []GenerationResponse `json:"generations"`
	Members     []json.RawMessage    `json:"members"`
}
