package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNormalizeSymbol(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"btc", "BTC"},
		{"  usdt ", "USDT"},
		{"Eth", "ETH"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSymbol(tt.in))
		})
	}
}

func TestNewWalletState(t *testing.T) {
	s := NewWalletState()

	for _, sym := range DefaultSymbols {
		bal, ok := s.Balances[sym]
		require.True(t, ok, sym)
		assert.True(t, bal.IsZero(), sym)
	}
	assert.True(t, s.Price("BTC").Equal(d("60000")))
	assert.True(t, s.Price("TRX").Equal(d("0.1")))
	assert.False(t, s.WelcomeBonusGiven)
	assert.NotNil(t, s.Transactions)
	assert.Empty(t, s.Transactions)
	assert.Len(t, s.TeamSummary.Generations, 3)
}

func TestWalletState_Debit(t *testing.T) {
	tests := []struct {
		name    string
		balance string
		amount  string
		wantOK  bool
		wantBal string
	}{
		{"covered", "10", "4", true, "6"},
		{"exact", "10", "10", true, "0"},
		{"insufficient", "3", "100", false, "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewWalletState()
			s.Balances["USDT"] = d(tt.balance)

			ok := s.Debit("usdt", d(tt.amount))
			assert.Equal(t, tt.wantOK, ok)
			assert.True(t, s.Balance("USDT").Equal(d(tt.wantBal)))
		})
	}
}

func TestWalletState_PriceFallback(t *testing.T) {
	s := NewWalletState()
	delete(s.Prices, "ETH")
	s.Prices["DOGE"] = d("0.2")

	assert.True(t, s.Price("eth").Equal(d("3000")), "falls back to built-in table")
	assert.True(t, s.Price("DOGE").Equal(d("0.2")))
	assert.True(t, s.Price("XYZ").IsZero())
	assert.True(t, s.Price("").IsZero())
}

func TestValidAmount(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"1", true},
		{"0.00000001", true},
		{"1e18", true},
		{"123456789012345678901234567890", true},
		{"0.000000000000000001", true},
		{"0", false},
		{"-1", false},
		{"1e19", false},
		{"1e50000000", false},
		{"1e-50000000", false},
		{"0.0000000000000000001", false},
		{"1234567890123456789012345678901", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidAmount(d(tt.in)))
		})
	}
}

func TestComputeSummary(t *testing.T) {
	s := NewWalletState()
	s.Balances["BTC"] = d("0.5")
	s.Balances["USDT"] = d("100")
	s.Balances["XYZ"] = d("7")
	s.IncomeCounters.CreditPersonal(d("3"))
	s.TotalIncomeRuns = 2

	before, err := json.Marshal(s)
	require.NoError(t, err)
	sum := ComputeSummary(s)

	assert.True(t, sum.Values["BTC"].Equal(d("30000")))
	assert.True(t, sum.Values["USDT"].Equal(d("100")))
	assert.True(t, sum.Values["XYZ"].IsZero(), "unknown symbol is valued at zero")
	assert.True(t, sum.TotalValue.Equal(d("30100")))
	assert.True(t, sum.ReferenceBalance.Equal(d("100")))
	assert.True(t, sum.Income.PersonalTotal.Equal(d("3")))
	assert.Equal(t, int64(2), sum.TotalIncomeRuns)

	// pure: the input is unchanged and the summary does not alias it
	after, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
	sum.Balances["BTC"] = d("9")
	assert.True(t, s.Balance("BTC").Equal(d("0.5")))
}

func TestSummary_Symbols(t *testing.T) {
	sum := Summary{Balances: map[string]decimal.Decimal{
		"ZZZ": decimal.Zero, "BTC": decimal.Zero, "AAA": decimal.Zero, "USDT": decimal.Zero,
	}}
	assert.Equal(t, []string{"USDT", "BTC", "AAA", "ZZZ"}, sum.Symbols())
}

func TestResolveRate(t *testing.T) {
	s := NewWalletState()
	s.Prices["NOPRICE"] = decimal.Zero

	explicit := d("2.5")
	zero := decimal.Zero

	tests := []struct {
		name     string
		from, to string
		explicit *decimal.Decimal
		want     string
	}{
		{"explicit wins", "BTC", "USDT", &explicit, "2.5"},
		{"non-positive explicit ignored", "BTC", "USDT", &zero, "60000"},
		{"price ratio", "ETH", "BTC", nil, "0.05"},
		{"unknown target priced at 1", "BTC", "XYZ", nil, "60000"},
		{"unpriced source swaps 1:1", "XYZ", "USDT", nil, "1"},
		{"zero-priced source swaps 1:1", "NOPRICE", "BTC", nil, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveRate(s, tt.from, tt.to, tt.explicit)
			assert.True(t, got.Equal(d(tt.want)), "got %s", got)
		})
	}
}

func TestTransactionRecord_LegacyLayout(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantType    TransactionType
		wantFrom    string
		wantTo      string
		wantNote    string
		wantStat    TransactionStatus
		wantAmtFrom string
		wantAmtTo   string
	}{
		{
			name:     "legacy swap",
			raw:      `{"id":"1","type":"Swap","currency":"btc→usdt","remark":"old","status":"Succeeded"}`,
			wantType: TransactionTypeSwap, wantFrom: "BTC", wantTo: "USDT", wantNote: "old", wantStat: TransactionStatusSucceeded,
		},
		{
			name:     "legacy withdraw",
			raw:      `{"id":"2","type":"withdraw","currency":"USDT","status":"Pending"}`,
			wantType: TransactionTypeWithdraw, wantFrom: "USDT", wantStat: TransactionStatusPending,
		},
		{
			name:     "legacy deposit without status",
			raw:      `{"id":"3","type":"deposit","currency":"eth"}`,
			wantType: TransactionTypeDeposit, wantTo: "ETH", wantStat: TransactionStatusSucceeded,
		},
		{
			name:     "current layout wins over legacy keys",
			raw:      `{"id":"4","type":"deposit","toCurrency":"BTC","currency":"ETH","note":"n","remark":"r","status":"succeeded"}`,
			wantType: TransactionTypeDeposit, wantTo: "BTC", wantNote: "n", wantStat: TransactionStatusSucceeded,
		},
		{
			name:     "legacy swap amounts",
			raw:      `{"id":"5","type":"swap","currency":"BTC→USDT","amount":"0.5","net":"30000"}`,
			wantType: TransactionTypeSwap, wantFrom: "BTC", wantTo: "USDT", wantStat: TransactionStatusSucceeded,
			wantAmtFrom: "0.5", wantAmtTo: "30000",
		},
		{
			name:     "current swap amounts untouched",
			raw:      `{"id":"6","type":"swap","fromCurrency":"BTC","toCurrency":"USDT","amountFrom":"0.1","amountTo":"6000","status":"succeeded"}`,
			wantType: TransactionTypeSwap, wantFrom: "BTC", wantTo: "USDT", wantStat: TransactionStatusSucceeded,
			wantAmtFrom: "0.1", wantAmtTo: "6000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec TransactionRecord
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &rec))
			assert.Equal(t, tt.wantType, rec.Type)
			assert.Equal(t, tt.wantFrom, rec.FromCurrency)
			assert.Equal(t, tt.wantTo, rec.ToCurrency)
			assert.Equal(t, tt.wantNote, rec.Note)
			assert.Equal(t, tt.wantStat, rec.Status)
			if tt.wantAmtFrom == "" {
				return
			}
			require.NotNil(t, rec.AmountFrom)
			require.NotNil(t, rec.AmountTo)
			assert.True(t, rec.AmountFrom.Equal(d(tt.wantAmtFrom)), "amountFrom %s", rec.AmountFrom)
			assert.True(t, rec.AmountTo.Equal(d(tt.wantAmtTo)), "amountTo %s", rec.AmountTo)
			assert.Nil(t, rec.Amount)
			assert.Nil(t, rec.Net)
		})
	}
}

func TestTransactionRecord_IsPending(t *testing.T) {
	assert.True(t, (&TransactionRecord{Status: TransactionStatusPending}).IsPending())
	assert.False(t, (&TransactionRecord{Status: TransactionStatusSucceeded}).IsPending())
}

func TestDecodeSnapshot_LegacyFlatCounters(t *testing.T) {
	raw := `{
		"balances": {"usdt": 12.5, "BTC": "-1"},
		"totalPersonalIncome": 4,
		"todayPersonalIncome": 1,
		"totalTeamIncome": 2,
		"todayTeamIncome": 0.5,
		"transactions": [{"id":"x","type":"deposit","currency":"USDT","amount":12.5}]
	}`

	s, dropped, err := DecodeSnapshot([]byte(raw))
	require.NoError(t, err)
	assert.Empty(t, dropped)
	s.Repair()

	assert.True(t, s.Balance("USDT").Equal(d("12.5")))
	assert.True(t, s.Balance("BTC").IsZero(), "negative balance clamped")
	assert.True(t, s.IncomeCounters.PersonalTotal.Equal(d("4")))
	assert.True(t, s.IncomeCounters.PersonalToday.Equal(d("1")))
	assert.True(t, s.IncomeCounters.TeamTotal.Equal(d("2")))
	assert.True(t, s.IncomeCounters.TeamToday.Equal(d("0.5")))
	require.Len(t, s.Transactions, 1)
	assert.Equal(t, "USDT", s.Transactions[0].ToCurrency)
	assert.Nil(t, s.Extra, "legacy counters are not carried as unknown fields")
}

func TestDecodeSnapshot_LegacyIncomeObject(t *testing.T) {
	raw := `{"income":{"personalToday":1,"personalTotal":9,"teamToday":0,"teamTotal":3},"welcomeBonusGiven":true}`

	s, _, err := DecodeSnapshot([]byte(raw))
	require.NoError(t, err)

	assert.True(t, s.IncomeCounters.PersonalTotal.Equal(d("9")))
	assert.True(t, s.IncomeCounters.TeamTotal.Equal(d("3")))
	assert.True(t, s.WelcomeBonusGiven)
}

func TestDecodeSnapshot_DropsMalformedFields(t *testing.T) {
	raw := `{
		"balances": "not-a-map",
		"prices": {"BTC": "70000", "ETH": 0, "doge": "0.3"},
		"transactions": [{"id":"ok","type":"deposit"}, 42],
		"theme": "dark"
	}`

	s, dropped, err := DecodeSnapshot([]byte(raw))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"balances", "transactions[1]"}, dropped)

	s.Repair()
	for _, sym := range DefaultSymbols {
		_, ok := s.Balances[sym]
		assert.True(t, ok, sym)
	}
	assert.True(t, s.Price("BTC").Equal(d("70000")))
	assert.True(t, s.Price("ETH").Equal(d("3000")), "non-positive price replaced by default")
	assert.True(t, s.Price("DOGE").Equal(d("0.3")))
	require.Len(t, s.Transactions, 1)
	assert.Equal(t, "ok", s.Transactions[0].ID)
	assert.JSONEq(t, `"dark"`, string(s.Extra["theme"]))
}

func TestDecodeSnapshot_NotAnObject(t *testing.T) {
	for _, raw := range []string{`not json`, `null`, `[1,2]`} {
		_, _, err := DecodeSnapshot([]byte(raw))
		assert.Error(t, err, raw)
	}
}

func TestWalletState_JSONRoundTrip(t *testing.T) {
	s := NewWalletState()
	s.Balances["BTC"] = d("0.5")
	s.WelcomeBonusGiven = true
	s.TotalIncomeRuns = 3
	s.PrependTransaction(TransactionRecord{
		ID:           "tx-1",
		Type:         TransactionTypeSwap,
		FromCurrency: "BTC",
		ToCurrency:   "USDT",
		AmountFrom:   Dec(d("0.5")),
		AmountTo:     Dec(d("30000")),
		Rate:         Dec(d("60000")),
		Status:       TransactionStatusSucceeded,
	})
	s.Extra = map[string]json.RawMessage{"theme": json.RawMessage(`"dark"`)}

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Contains(t, fields, "theme")
	assert.Contains(t, fields, "incomeCounters")

	var back WalletState
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Balance("BTC").Equal(d("0.5")))
	assert.True(t, back.WelcomeBonusGiven)
	assert.Equal(t, int64(3), back.TotalIncomeRuns)
	require.Len(t, back.Transactions, 1)
	assert.True(t, back.Transactions[0].AmountTo.Equal(d("30000")))
	assert.JSONEq(t, `"dark"`, string(back.Extra["theme"]))
}

func TestRepair_FillsTeamSummaryAndClampsRuns(t *testing.T) {
	s := &WalletState{TotalIncomeRuns: -4}
	s.Repair()

	assert.Zero(t, s.TotalIncomeRuns)
	assert.Len(t, s.TeamSummary.Generations, 3)
	assert.NotNil(t, s.TeamSummary.Members)
	assert.NotNil(t, s.Transactions)
	assert.True(t, s.Price("USDT").Equal(d("1")))
}
