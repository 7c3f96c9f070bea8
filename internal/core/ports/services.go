package ports

import (
	"context"

	"wallet-ledger/internal/core/domain"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

// WalletLedger defines the wallet business logic.
type WalletLedger interface {
	Deposit(ctx context.Context, symbol string, amount decimal.Decimal, opts DepositOptions) (*domain.Summary, error)
	Withdraw(ctx context.Context, symbol string, amount decimal.Decimal, opts WithdrawOptions) (*domain.Summary, error)
	Swap(ctx context.Context, from, to string, amountFrom decimal.Decimal, explicitRate *decimal.Decimal) (*domain.Summary, error)
	// RecordSwap books a swap whose received amount the caller already knows.
	RecordSwap(ctx context.Context, from, to string, amountFrom, received decimal.Decimal) (*domain.Summary, error)
	AddIncome(ctx context.Context, amount decimal.Decimal) (*domain.Summary, error)
	SetPrices(ctx context.Context, prices map[string]decimal.Decimal) (*domain.Summary, error)
	ApplyWelcomeBonusIfNeeded(ctx context.Context) (*domain.Summary, error)

	GetState(ctx context.Context) *domain.WalletState
	GetSummary(ctx context.Context) *domain.Summary
	ListTransactions(ctx context.Context) []domain.TransactionRecord
	GetTeamSummary(ctx context.Context) domain.TeamSummary
}

// DepositOptions tunes a deposit.
type DepositOptions struct {
	// CountAsIncome also credits the personal income counters.
	CountAsIncome bool
	Note          string
}

// WithdrawOptions tunes a withdrawal.
type WithdrawOptions struct {
	Note string
	// ApplyFee deducts the configured withdraw fee from the net amount.
	ApplyFee bool
}
