package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Generation is one referral level of the team view.
type Generation struct {
	Effective int             `json:"effective"`
	Percent   int             `json:"percent"`
	Income    decimal.Decimal `json:"income"`
}

// TeamSummary is placeholder team data shown on the team page. Nothing in the
// ledger credits it.
type TeamSummary struct {
	TeamSize    int                `json:"teamSize"`
	TodayIncome decimal.Decimal    `json:"todayIncome"`
	TotalIncome decimal.Decimal    `json:"totalIncome"`
	Generations map[int]Generation `json:"generations"`
	Members     []json.RawMessage  `json:"members"`
}

// DefaultTeamSummary returns an empty team with the three standard generations.
func DefaultTeamSummary() TeamSummary {
	return TeamSummary{
		Generations: map[int]Generation{
			1: {Percent: 20},
			2: {Percent: 5},
			3: {Percent: 3},
		},
		Members: []json.RawMessage{},
	}
}
