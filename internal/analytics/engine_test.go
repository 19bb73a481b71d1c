package analytics_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ananyadas/finquest/internal/analytics"
	"github.com/ananyadas/finquest/internal/ledger"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func tx(accountID uuid.UUID, categoryID *uuid.UUID, amount int64, kind ledger.Kind, occurredAt time.Time) *ledger.Transaction {
	return &ledger.Transaction{
		ID:         uuid.New(),
		AccountID:  accountID,
		CategoryID: categoryID,
		Amount:     amount,
		Kind:       kind,
		OccurredAt: occurredAt,
		CreatedAt:  occurredAt,
	}
}

func TestAccountBalances(t *testing.T) {
	bank := &ledger.Account{ID: uuid.New(), Name: "Bank", InitialBalance: 5000}
	cash := &ledger.Account{ID: uuid.New(), Name: "Cash", InitialBalance: 3000}

	txs := []*ledger.Transaction{
		tx(bank.ID, nil, 1200, ledger.KindExpense, testNow),
		tx(cash.ID, nil, 500, ledger.KindExpense, testNow),
	}

	balances := analytics.AccountBalances([]*ledger.Account{bank, cash}, txs)
	require.Len(t, balances, 2)

	assert.Equal(t, int64(3800), balances[0].Balance)
	assert.Equal(t, int64(2500), balances[1].Balance)
	assert.Equal(t, int64(6300), analytics.TotalBalance(balances))
}

func TestSummarize(t *testing.T) {
	account := &ledger.Account{ID: uuid.New(), Name: "Bank"}

	food := &ledger.Category{ID: uuid.New(), Name: "Food", Kind: ledger.KindExpense, Color: "#ff0000"}
	rent := &ledger.Category{ID: uuid.New(), Name: "Rent", Kind: ledger.KindExpense}
	unused := &ledger.Category{ID: uuid.New(), Name: "Travel", Kind: ledger.KindExpense}

	txs := []*ledger.Transaction{
		tx(account.ID, nil, 100000, ledger.KindIncome, testNow),
		tx(account.ID, &food.ID, 20000, ledger.KindExpense, testNow),
		tx(account.ID, &rent.ID, 30000, ledger.KindExpense, testNow.AddDate(0, 0, -1)),
		// Last month's spend must not count toward the monthly numbers.
		tx(account.ID, &food.ID, 99999, ledger.KindExpense, testNow.AddDate(0, -1, 0)),
	}

	summary := analytics.Summarize(
		[]*ledger.Account{account},
		[]*ledger.Category{food, rent, unused},
		txs,
		testNow,
	)

	assert.Equal(t, int64(100000), summary.Income)
	assert.Equal(t, int64(50000), summary.Expense)
	assert.Equal(t, int64(50000), summary.Net)

	// Categories with no activity this month are dropped.
	require.Len(t, summary.CategoryBreakdown, 2)
	assert.Equal(t, "Food", summary.CategoryBreakdown[0].Name)
	assert.Equal(t, int64(20000), summary.CategoryBreakdown[0].Amount)
	assert.Equal(t, "#ff0000", summary.CategoryBreakdown[0].Color)
	assert.Equal(t, analytics.DefaultColor, summary.CategoryBreakdown[1].Color)
}

func TestSummarize_Empty(t *testing.T) {
	summary := analytics.Summarize(nil, nil, nil, testNow)

	assert.Zero(t, summary.TotalBalance)
	assert.Zero(t, summary.Income)
	assert.Zero(t, summary.Net)
	assert.Empty(t, summary.CategoryBreakdown)
}

func TestTrends_Monthly(t *testing.T) {
	accountID := uuid.New()

	txs := []*ledger.Transaction{
		tx(accountID, nil, 50000, ledger.KindIncome, testNow),
		tx(accountID, nil, 10000, ledger.KindExpense, testNow.AddDate(0, -1, 0)),
		tx(accountID, nil, 20000, ledger.KindIncome, testNow.AddDate(0, -2, 0)),
	}

	buckets := analytics.Trends(txs, analytics.PeriodMonth, 3, testNow)
	require.Len(t, buckets, 3)

	// Oldest first.
	assert.Equal(t, "Apr 2025", buckets[0].Period)
	assert.Equal(t, int64(20000), buckets[0].Income)

	assert.Equal(t, "May 2025", buckets[1].Period)
	assert.Equal(t, int64(10000), buckets[1].Expense)
	assert.Equal(t, int64(-10000), buckets[1].Net)

	assert.Equal(t, "Jun 2025", buckets[2].Period)
	assert.Equal(t, int64(50000), buckets[2].Net)
}

func TestCategoryComparison(t *testing.T) {
	accountID := uuid.New()
	food := &ledger.Category{ID: uuid.New(), Name: "Food"}

	txs := []*ledger.Transaction{
		tx(accountID, &food.ID, 15000, ledger.KindExpense, testNow),
		tx(accountID, &food.ID, 12000, ledger.KindExpense, testNow.AddDate(0, -2, 0)),
	}

	comparison := analytics.CategoryComparison([]*ledger.Category{food}, txs, 3, testNow)
	require.Contains(t, comparison, "Food")

	series := comparison["Food"]
	require.Len(t, series.Data, 3)

	assert.Equal(t, int64(12000), series.Data[0].Amount)
	assert.Zero(t, series.Data[1].Amount)
	assert.Equal(t, int64(15000), series.Data[2].Amount)
}

func TestCashFlowForecast(t *testing.T) {
	account := &ledger.Account{ID: uuid.New(), InitialBalance: 100000}

	// 157000 income over the trailing window averages 157000/6 per month.
	txs := []*ledger.Transaction{
		tx(account.ID, nil, 100000, ledger.KindIncome, testNow.AddDate(0, -1, 0)),
		tx(account.ID, nil, 57000, ledger.KindIncome, testNow.AddDate(0, -2, 0)),
		tx(account.ID, nil, 60000, ledger.KindExpense, testNow),
	}

	forecast := analytics.CashFlowForecast([]*ledger.Account{account}, txs, 3, testNow)

	assert.InDelta(t, 157000.0/6, forecast.AvgMonthlyIncome, 0.01)
	assert.InDelta(t, 10000.0, forecast.AvgMonthlyExpense, 0.01)
	assert.InDelta(t, forecast.AvgMonthlyIncome-forecast.AvgMonthlyExpense, forecast.AvgMonthlySavings, 0.01)

	require.Len(t, forecast.Points, 4)
	assert.True(t, forecast.Points[0].IsActual)
	assert.InDelta(t, 197000.0, forecast.Points[0].ProjectedBalance, 0.01)

	assert.False(t, forecast.Points[1].IsActual)
	assert.InDelta(t, 197000.0+forecast.AvgMonthlySavings, forecast.Points[1].ProjectedBalance, 0.01)
}

func TestSubscriptions(t *testing.T) {
	accountID := uuid.New()
	streaming := &ledger.Category{ID: uuid.New(), Name: "Streaming"}

	netflix := tx(accountID, &streaming.ID, 64900, ledger.KindExpense, testNow)
	netflix.IsSubscription = true

	spotify := tx(accountID, &streaming.ID, 11900, ledger.KindExpense, testNow.AddDate(0, 0, -3))
	spotify.IsSubscription = true

	orphan := tx(accountID, nil, 9900, ledger.KindExpense, testNow)
	orphan.IsSubscription = true

	regular := tx(accountID, &streaming.ID, 5000, ledger.KindExpense, testNow)

	report := analytics.Subscriptions(
		[]*ledger.Category{streaming},
		[]*ledger.Transaction{netflix, spotify, orphan, regular},
	)

	assert.Equal(t, 3, report.Count)
	assert.Equal(t, int64(86700), report.MonthlyTotal)

	// Sorted by name: Streaming, Unknown.
	require.Len(t, report.Subscriptions, 2)
	assert.Equal(t, "Streaming", report.Subscriptions[0].Name)
	assert.Equal(t, 2, report.Subscriptions[0].Count)
	assert.Equal(t, int64(76800), report.Subscriptions[0].MonthlyAmount)
	assert.Equal(t, "Unknown", report.Subscriptions[1].Name)
}

func TestDaySpending(t *testing.T) {
	accountID := uuid.New()
	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	txs := []*ledger.Transaction{
		tx(accountID, nil, 10000, ledger.KindExpense, day.Add(9*time.Hour)),
		tx(accountID, nil, 5000, ledger.KindExpense, day.Add(23*time.Hour)),
		tx(accountID, nil, 7000, ledger.KindExpense, day.AddDate(0, 0, -1)),
		tx(accountID, nil, 90000, ledger.KindIncome, day.Add(10*time.Hour)),
	}

	assert.Equal(t, int64(15000), analytics.DaySpending(txs, day))
}

func TestConsecutivePositiveMonths(t *testing.T) {
	accountID := uuid.New()

	type testCase struct {
		name string
		txs  []*ledger.Transaction
		want int
	}

	tests := []testCase{
		{
			name: "NoTransactions",
			txs:  nil,
			want: 0,
		},
		{
			name: "TwoPositiveMonths",
			txs: []*ledger.Transaction{
				tx(accountID, nil, 50000, ledger.KindIncome, testNow.AddDate(0, -1, 0)),
				tx(accountID, nil, 40000, ledger.KindIncome, testNow.AddDate(0, -2, 0)),
			},
			want: 2,
		},
		{
			name: "StreakBrokenByNegativeMonth",
			txs: []*ledger.Transaction{
				tx(accountID, nil, 50000, ledger.KindIncome, testNow.AddDate(0, -1, 0)),
				tx(accountID, nil, 90000, ledger.KindExpense, testNow.AddDate(0, -2, 0)),
				tx(accountID, nil, 40000, ledger.KindIncome, testNow.AddDate(0, -3, 0)),
			},
			want: 1,
		},
		{
			name: "CurrentMonthIgnored",
			txs: []*ledger.Transaction{
				tx(accountID, nil, 90000, ledger.KindExpense, testNow),
				tx(accountID, nil, 50000, ledger.KindIncome, testNow.AddDate(0, -1, 0)),
			},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, analytics.ConsecutivePositiveMonths(tt.txs, testNow))
		})
	}
}
