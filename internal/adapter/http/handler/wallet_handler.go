package handler

import (
	"wallet-ledger/internal/adapter/http/dto"
	"wallet-ledger/internal/adapter/presenter"
	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"
	"wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet-related endpoints.
type WalletHandler struct {
	ledger ports.WalletLedger
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(ledger ports.WalletLedger) *WalletHandler {
	return &WalletHandler{ledger: ledger}
}

// GetState handles GET /api/v1/wallet/state.
func (h *WalletHandler) GetState(c *gin.Context) {
	response.OK(c, h.ledger.GetState(c.Request.Context()))
}

// GetSummary handles GET /api/v1/wallet/summary.
func (h *WalletHandler) GetSummary(c *gin.Context) {
	response.OK(c, dto.ToSummaryResponse(h.ledger.GetSummary(c.Request.Context())))
}

// ListTransactions handles GET /api/v1/wallet/transactions.
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	var q dto.TransactionQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	txs := h.ledger.ListTransactions(c.Request.Context())
	filtered := make([]domain.TransactionRecord, 0, len(txs))
	for _, tx := range txs {
		if q.Type != "" && string(tx.Type) != q.Type {
			continue
		}
		if q.Status != "" && string(tx.Status) != q.Status {
			continue
		}
		filtered = append(filtered, tx)
	}
	if q.Limit > 0 && len(filtered) > q.Limit {
		filtered = filtered[:q.Limit]
	}

	response.OK(c, dto.ToTransactionListResponse(filtered))
}

// GetTeam handles GET /api/v1/wallet/team.
func (h *WalletHandler) GetTeam(c *gin.Context) {
	response.OK(c, dto.ToTeamSummaryResponse(h.ledger.GetTeamSummary(c.Request.Context())))
}

// GetAssetsPage handles GET /api/v1/wallet/assets-page.
func (h *WalletHandler) GetAssetsPage(c *gin.Context) {
	response.OK(c, presenter.AssetsPage(*h.ledger.GetSummary(c.Request.Context())))
}

// Deposit handles POST /api/v1/wallet/deposit.
func (h *WalletHandler) Deposit(c *gin.Context) {
	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	sum, err := h.ledger.Deposit(c.Request.Context(), req.Symbol, req.Amount, ports.DepositOptions{
		CountAsIncome: req.CountAsIncome,
		Note:          req.Note,
	})
	h.respondCreated(c, sum, err)
}

// Withdraw handles POST /api/v1/wallet/withdraw.
func (h *WalletHandler) Withdraw(c *gin.Context) {
	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	sum, err := h.ledger.Withdraw(c.Request.Context(), req.Symbol, req.Amount, ports.WithdrawOptions{
		Note:     req.Note,
		ApplyFee: req.ApplyFee,
	})
	h.respondCreated(c, sum, err)
}

// Swap handles POST /api/v1/wallet/swap.
func (h *WalletHandler) Swap(c *gin.Context) {
	var req dto.SwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	sum, err := h.ledger.Swap(c.Request.Context(), req.From, req.To, req.Amount, req.Rate)
	h.respondCreated(c, sum, err)
}

// RecordSwap handles POST /api/v1/wallet/swap/record.
func (h *WalletHandler) RecordSwap(c *gin.Context) {
	var req dto.RecordSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	sum, err := h.ledger.RecordSwap(c.Request.Context(), req.From, req.To, req.Amount, req.Received)
	h.respondCreated(c, sum, err)
}

// AddIncome handles POST /api/v1/wallet/income.
func (h *WalletHandler) AddIncome(c *gin.Context) {
	var req dto.IncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	sum, err := h.ledger.AddIncome(c.Request.Context(), req.Amount)
	h.respondCreated(c, sum, err)
}

// SetPrices handles PUT /api/v1/wallet/prices.
func (h *WalletHandler) SetPrices(c *gin.Context) {
	var req dto.SetPricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	sum, err := h.ledger.SetPrices(c.Request.Context(), req.Prices)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToSummaryResponse(sum))
}

// ApplyWelcomeBonus handles POST /api/v1/wallet/welcome-bonus. Repeated
// calls are harmless.
func (h *WalletHandler) ApplyWelcomeBonus(c *gin.Context) {
	sum, err := h.ledger.ApplyWelcomeBonusIfNeeded(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToSummaryResponse(sum))
}

func (h *WalletHandler) respondCreated(c *gin.Context, sum *domain.Summary, err error) {
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ToSummaryResponse(sum))
}
