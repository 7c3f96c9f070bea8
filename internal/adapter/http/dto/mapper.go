package dto

import (
	"encoding/json"
	"sort"
	"time"

	"wallet-ledger/internal/core/domain"
)

// ToSummaryResponse converts a domain summary.
func ToSummaryResponse(sum *domain.Summary) SummaryResponse {
	return SummaryResponse{
		Symbols:          sum.Symbols(),
		Balances:         sum.Balances,
		Values:           sum.Values,
		TotalValue:       sum.TotalValue,
		ReferenceBalance: sum.ReferenceBalance,
		Income: IncomeResponse{
			PersonalTotal: sum.Income.PersonalTotal,
			PersonalToday: sum.Income.PersonalToday,
			TeamTotal:     sum.Income.TeamTotal,
			TeamToday:     sum.Income.TeamToday,
		},
		TotalIncomeRuns:   sum.TotalIncomeRuns,
		WelcomeBonusGiven: sum.WelcomeBonusGiven,
	}
}

// ToTransactionResponse converts a domain record.
func ToTransactionResponse(tx domain.TransactionRecord) TransactionResponse {
	return TransactionResponse{
		ID:           tx.ID,
		Type:         string(tx.Type),
		FromCurrency: tx.FromCurrency,
		ToCurrency:   tx.ToCurrency,
		AmountFrom:   tx.AmountFrom,
		AmountTo:     tx.AmountTo,
		Amount:       tx.Amount,
		Rate:         tx.Rate,
		Fee:          tx.Fee,
		Net:          tx.Net,
		Note:         tx.Note,
		Status:       string(tx.Status),
		CreatedAt:    tx.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToTransactionListResponse converts records, keeping their order.
func ToTransactionListResponse(txs []domain.TransactionRecord) TransactionListResponse {
	resp := TransactionListResponse{Items: make([]TransactionResponse, 0, len(txs))}
	for i := range txs {
		resp.Items = append(resp.Items, ToTransactionResponse(txs[i]))
		if txs[i].IsPending() {
			resp.Pending++
		}
	}
	resp.Total = len(resp.Items)
	return resp
}

// ToTeamSummaryResponse converts the team view, generations ordered by level.
func ToTeamSummaryResponse(team domain.TeamSummary) TeamSummaryResponse {
	resp := TeamSummaryResponse{
		TeamSize:    team.TeamSize,
		TodayIncome: team.TodayIncome,
		TotalIncome: team.TotalIncome,
		Generations: make([]GenerationResponse, 0, len(team.Generations)),
		Members:     team.Members,
	}
	for level, g := range team.Generations {
		resp.Generations = append(resp.Generations, GenerationResponse{
			Level:     level,
			Effective: g.Effective,
			Percent:   g.Percent,
			Income:    g.Income,
		})
	}
	sort.Slice(resp.Generations, func(i, j int) bool {
		return resp.Generations[i].Level < resp.Generations[j].Level
	})
	if resp.Members == nil {
		resp.Members = []json.RawMessage{}
	}
	return resp
}
