package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	noteWelcomeBonus = "Welcome bonus"
	noteIncomeRun    = "Income run"
)

// LedgerConfig holds the tunable amounts of the ledger.
type LedgerConfig struct {
	// WelcomeBonus is credited in the reference symbol once per wallet.
	// Zero or less marks the bonus as given without crediting anything.
	WelcomeBonus decimal.Decimal
	// WithdrawFeeRate is the fraction of a withdrawal kept as fee when the
	// caller asks for it.
	WithdrawFeeRate decimal.Decimal
	// Prices seed a freshly created wallet on top of the built-in table.
	Prices map[string]decimal.Decimal
}

// DefaultLedgerConfig returns the stock amounts: a 3 USDT welcome bonus and no withdraw fee.
func DefaultLedgerConfig() LedgerConfig {
	return LedgerConfig{
		WelcomeBonus:    decimal.NewFromInt(3),
		WithdrawFeeRate: decimal.Zero,
	}
}

// LedgerOption customises a WalletLedgerImpl.
type LedgerOption func(*WalletLedgerImpl)

// WithSealer encrypts snapshots before they reach the store.
func WithSealer(sealer ports.SnapshotSealer) LedgerOption {
	return func(l *WalletLedgerImpl) { l.sealer = sealer }
}

// WithClock replaces time.Now for record timestamps.
func WithClock(now func() time.Time) LedgerOption {
	return func(l *WalletLedgerImpl) { l.now = now }
}

// WithIDGenerator replaces the UUID generator for record IDs.
func WithIDGenerator(newID func() string) LedgerOption {
	return func(l *WalletLedgerImpl) { l.newID = newID }
}

// WalletLedgerImpl implements ports.WalletLedger on top of a SnapshotStore.
// Every operation loads the snapshot, mutates it and writes it back; mu
// serialises that read-modify-write within the process.
type WalletLedgerImpl struct {
	store  ports.SnapshotStore
	sealer ports.SnapshotSealer
	cfg    LedgerConfig
	now    func() time.Time
	newID  func() string
	log    zerolog.Logger

	mu sync.Mutex
}

// NewWalletLedger creates a new WalletLedgerImpl.
func NewWalletLedger(store ports.SnapshotStore, cfg LedgerConfig, log zerolog.Logger, opts ...LedgerOption) *WalletLedgerImpl {
	l := &WalletLedgerImpl{
		store: store,
		cfg:   cfg,
		now:   func() time.Time { return time.Now().UTC() },
		newID: func() string { return uuid.New().String() },
		log:   log,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the persisted snapshot. Absence, read failures, unreadable
// ciphertext and undecodable data all yield a fresh wallet; nothing is
// written until the next mutation.
func (l *WalletLedgerImpl) Load(ctx context.Context) *domain.WalletState {
	data, err := l.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, ports.ErrSnapshotNotFound) {
			l.log.Warn().Err(err).Msg("loading snapshot failed, starting from a fresh wallet")
		}
		return l.freshState()
	}

	if l.sealer != nil {
		opened, err := l.sealer.Open(data)
		switch {
		case err == nil:
			data = opened
		case json.Valid(data):
			l.log.Debug().Msg("snapshot is not sealed, reading it as plaintext")
		default:
			l.log.Warn().Err(err).Msg("opening sealed snapshot failed, starting from a fresh wallet")
			return l.freshState()
		}
	}

	state, dropped, err := domain.DecodeSnapshot(data)
	if err != nil {
		l.log.Warn().Err(err).Msg("snapshot is corrupt, starting from a fresh wallet")
		return l.freshState()
	}
	if len(dropped) > 0 {
		l.log.Warn().Strs("fields", dropped).Msg("snapshot fields unreadable, defaults restored")
	}
	state.Repair()
	return state
}

// Persist writes the whole snapshot.
func (l *WalletLedgerImpl) Persist(ctx context.Context, state *domain.WalletState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("encoding snapshot: %w", err))
	}
	if l.sealer != nil {
		data, err = l.sealer.Seal(data)
		if err != nil {
			return apperror.ErrEncryptionFailure(fmt.Errorf("sealing snapshot: %w", err))
		}
	}
	if err := l.store.Save(ctx, data); err != nil {
		return apperror.ErrStorageFailure(fmt.Errorf("saving snapshot: %w", err))
	}
	return nil
}

// Deposit credits amount of symbol.
func (l *WalletLedgerImpl) Deposit(ctx context.Context, symbol string, amount decimal.Decimal, opts ports.DepositOptions) (*domain.Summary, error) {
	sym := domain.NormalizeSymbol(symbol)
	if sym == "" {
		return nil, apperror.ErrInvalidSymbol()
	}
	if !domain.ValidAmount(amount) {
		return nil, apperror.ErrInvalidAmount()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	state := l.Load(ctx)
	state.Credit(sym, amount)
	if opts.CountAsIncome {
		state.IncomeCounters.CreditPersonal(amount)
	}

	tx := l.newRecord(domain.TransactionTypeDeposit)
	tx.ToCurrency = sym
	tx.AmountTo = domain.Dec(amount)
	tx.Note = opts.Note
	state.PrependTransaction(tx)

	l.log.Info().
		Str("tx_id", tx.ID).
		Str("symbol", sym).
		Str("amount", amount.String()).
		Bool("count_as_income", opts.CountAsIncome).
		Msg("deposit recorded")

	return l.commit(ctx, state, "deposit"), nil
}

// Withdraw debits amount of symbol. A withdrawal above the available balance
// is refused and leaves the wallet untouched.
func (l *WalletLedgerImpl) Withdraw(ctx context.Context, symbol string, amount decimal.Decimal, opts ports.WithdrawOptions) (*domain.Summary, error) {
	sym := domain.NormalizeSymbol(symbol)
	if sym == "" {
		return nil, apperror.ErrInvalidSymbol()
	}
	if !domain.ValidAmount(amount) {
		return nil, apperror.ErrInvalidAmount()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	state := l.Load(ctx)
	if !state.Debit(sym, amount) {
		l.log.Info().
			Str("symbol", sym).
			Str("amount", amount.String()).
			Str("balance", state.Balance(sym).String()).
			Msg("withdraw refused: insufficient balance")
		return nil, apperror.ErrInsufficientBalance()
	}

	fee := decimal.Zero
	if opts.ApplyFee {
		fee = amount.Mul(l.cfg.WithdrawFeeRate)
	}

	tx := l.newRecord(domain.TransactionTypeWithdraw)
	tx.Status = domain.TransactionStatusPending
	tx.FromCurrency = sym
	tx.AmountFrom = domain.Dec(amount)
	tx.Fee = domain.Dec(fee)
	tx.Net = domain.Dec(amount.Sub(fee))
	tx.Note = opts.Note
	state.PrependTransaction(tx)

	l.log.Info().
		Str("tx_id", tx.ID).
		Str("symbol", sym).
		Str("amount", amount.String()).
		Str("fee", fee.String()).
		Msg("withdraw recorded")

	return l.commit(ctx, state, "withdraw"), nil
}

// Swap converts amountFrom of from into to. The rate is explicitRate when it
// is positive, otherwise derived from the wallet's prices.
func (l *WalletLedgerImpl) Swap(ctx context.Context, from, to string, amountFrom decimal.Decimal, explicitRate *decimal.Decimal) (*domain.Summary, error) {
	fromSym, toSym, err := validateSwap(from, to, amountFrom)
	if err != nil {
		return nil, err
	}
	if explicitRate != nil && !domain.WithinBounds(*explicitRate) {
		return nil, apperror.ErrInvalidAmount()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	state := l.Load(ctx)
	rate := domain.ResolveRate(state, fromSym, toSym, explicitRate)
	return l.swapLocked(ctx, state, fromSym, toSym, amountFrom, rate, amountFrom.Mul(rate))
}

// RecordSwap books a swap where the caller already knows what was received.
func (l *WalletLedgerImpl) RecordSwap(ctx context.Context, from, to string, amountFrom, received decimal.Decimal) (*domain.Summary, error) {
	fromSym, toSym, err := validateSwap(from, to, amountFrom)
	if err != nil {
		return nil, err
	}
	if !domain.ValidAmount(received) {
		return nil, apperror.ErrInvalidAmount()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	state := l.Load(ctx)
	return l.swapLocked(ctx, state, fromSym, toSym, amountFrom, received.Div(amountFrom), received)
}

func validateSwap(from, to string, amountFrom decimal.Decimal) (string, string, error) {
	fromSym := domain.NormalizeSymbol(from)
	toSym := domain.NormalizeSymbol(to)
	if fromSym == "" || toSym == "" {
		return "", "", apperror.ErrInvalidSymbol()
	}
	if fromSym == toSym {
		return "", "", apperror.ErrSameSymbolSwap()
	}
	if !domain.ValidAmount(amountFrom) {
		return "", "", apperror.ErrInvalidAmount()
	}
	return fromSym, toSym, nil
}

// swapLocked must be called with mu held.
func (l *WalletLedgerImpl) swapLocked(ctx context.Context, state *domain.WalletState, from, to string, amountFrom, rate, amountTo decimal.Decimal) (*domain.Summary, error) {
	if !state.Debit(from, amountFrom) {
		l.log.Info().
			Str("from", from).
			Str("amount", amountFrom.String()).
			Str("balance", state.Balance(from).String()).
			Msg("swap refused: insufficient balance")
		return nil, apperror.ErrInsufficientBalance()
	}
	state.Credit(to, amountTo)

	tx := l.newRecord(domain.TransactionTypeSwap)
	tx.FromCurrency = from
	tx.ToCurrency = to
	tx.AmountFrom = domain.Dec(amountFrom)
	tx.AmountTo = domain.Dec(amountTo)
	tx.Rate = domain.Dec(rate)
	state.PrependTransaction(tx)

	l.log.Info().
		Str("tx_id", tx.ID).
		Str("from", from).
		Str("to", to).
		Str("amount_from", amountFrom.String()).
		Str("amount_to", amountTo.String()).
		Str("rate", rate.String()).
		Msg("swap recorded")

	return l.commit(ctx, state, "swap"), nil
}

// AddIncome credits one income run in the reference symbol.
func (l *WalletLedgerImpl) AddIncome(ctx context.Context, amount decimal.Decimal) (*domain.Summary, error) {
	if !domain.ValidAmount(amount) {
		return nil, apperror.ErrInvalidAmount()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	state := l.Load(ctx)
	state.Credit(domain.ReferenceSymbol, amount)
	state.IncomeCounters.CreditPersonal(amount)
	state.TotalIncomeRuns++

	tx := l.newRecord(domain.TransactionTypeIncome)
	tx.ToCurrency = domain.ReferenceSymbol
	tx.Amount = domain.Dec(amount)
	tx.Net = domain.Dec(amount)
	tx.Note = noteIncomeRun
	state.PrependTransaction(tx)

	l.log.Info().
		Str("tx_id", tx.ID).
		Str("amount", amount.String()).
		Int64("runs", state.TotalIncomeRuns).
		Msg("income recorded")

	return l.commit(ctx, state, "income"), nil
}

// SetPrices merges prices into the wallet's price table. Either every pair
// is valid and all are applied, or nothing changes.
func (l *WalletLedgerImpl) SetPrices(ctx context.Context, prices map[string]decimal.Decimal) (*domain.Summary, error) {
	if len(prices) == 0 {
		return nil, apperror.ErrInvalidPrice("")
	}
	normalized := make(map[string]decimal.Decimal, len(prices))
	for sym, p := range prices {
		key := domain.NormalizeSymbol(sym)
		if key == "" {
			return nil, apperror.ErrInvalidSymbol()
		}
		if !domain.ValidAmount(p) {
			return nil, apperror.ErrInvalidPrice(key)
		}
		normalized[key] = p
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	state := l.Load(ctx)
	for sym, p := range normalized {
		state.Prices[sym] = p
	}

	l.log.Info().Int("count", len(normalized)).Msg("prices updated")

	return l.commit(ctx, state, "set_prices"), nil
}

// ApplyWelcomeBonusIfNeeded credits the welcome bonus the first time it is
// called for a wallet. Later calls return the summary unchanged.
func (l *WalletLedgerImpl) ApplyWelcomeBonusIfNeeded(ctx context.Context) (*domain.Summary, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	state := l.Load(ctx)
	if state.WelcomeBonusGiven {
		sum := domain.ComputeSummary(state)
		return &sum, nil
	}

	state.WelcomeBonusGiven = true
	bonus := l.cfg.WelcomeBonus
	if bonus.IsPositive() {
		state.Credit(domain.ReferenceSymbol, bonus)
		state.IncomeCounters.CreditPersonal(bonus)

		tx := l.newRecord(domain.TransactionTypeBonus)
		tx.ToCurrency = domain.ReferenceSymbol
		tx.AmountTo = domain.Dec(bonus)
		tx.Note = noteWelcomeBonus
		state.PrependTransaction(tx)

		l.log.Info().Str("tx_id", tx.ID).Str("amount", bonus.String()).Msg("welcome bonus credited")
	}

	return l.commit(ctx, state, "welcome_bonus"), nil
}

// GetState returns a copy of the current wallet.
func (l *WalletLedgerImpl) GetState(ctx context.Context) *domain.WalletState {
	return l.Load(ctx)
}

// GetSummary returns the current summary.
func (l *WalletLedgerImpl) GetSummary(ctx context.Context) *domain.Summary {
	sum := domain.ComputeSummary(l.Load(ctx))
	return &sum
}

// ListTransactions returns the records, newest first.
func (l *WalletLedgerImpl) ListTransactions(ctx context.Context) []domain.TransactionRecord {
	return l.Load(ctx).Transactions
}

// GetTeamSummary returns the stored team view.
func (l *WalletLedgerImpl) GetTeamSummary(ctx context.Context) domain.TeamSummary {
	return l.Load(ctx).TeamSummary
}

func (l *WalletLedgerImpl) freshState() *domain.WalletState {
	state := domain.NewWalletState()
	for sym, p := range l.cfg.Prices {
		key := domain.NormalizeSymbol(sym)
		if key != "" && domain.ValidAmount(p) {
			state.Prices[key] = p
		}
	}
	return state
}

func (l *WalletLedgerImpl) newRecord(typ domain.TransactionType) domain.TransactionRecord {
	return domain.TransactionRecord{
		ID:        l.newID(),
		Type:      typ,
		Status:    domain.TransactionStatusSucceeded,
		CreatedAt: l.now(),
	}
}

// commit persists state and projects it. A failed write is logged and the
// caller still gets the in-memory result.
func (l *WalletLedgerImpl) commit(ctx context.Context, state *domain.WalletState, op string) *domain.Summary {
	if err := l.Persist(ctx, state); err != nil {
		l.log.Warn().Err(err).Str("op", op).Msg("persisting snapshot failed")
	}
	sum := domain.ComputeSummary(state)
	return &sum
}
