package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/ananyadas/finquest/internal/ledger"
)

// DefaultColor is used for categories without a configured display color.
const DefaultColor = "#00ffff"

// forecastWindowMonths is the trailing window the forecast averages over. The
// divisor is fixed: months without data still count, so a new user's averages
// start deflated.
const forecastWindowMonths = 6

// AccountBalance pairs an account with its lifetime balance.
type AccountBalance struct {
	Account *ledger.Account
	Balance int64
}

// AccountBalances computes each account's lifetime balance: initial balance
// plus income minus expense over every transaction referencing the account.
func AccountBalances(accounts []*ledger.Account, txs []*ledger.Transaction) []AccountBalance {
	balances := make([]AccountBalance, len(accounts))

	for i, acc := range accounts {
		balance := acc.InitialBalance

		for _, tx := range txs {
			if tx.AccountID == acc.ID {
				balance += tx.Signed()
			}
		}

		balances[i] = AccountBalance{Account: acc, Balance: balance}
	}

	return balances
}

// TotalBalance sums per-account balances.
func TotalBalance(balances []AccountBalance) int64 {
	var total int64
	for _, b := range balances {
		total += b.Balance
	}

	return total
}

// CategorySlice is one category's share of the current month's activity.
type CategorySlice struct {
	Name   string
	Amount int64
	Color  string
}

// Summary is the dashboard view of a user's finances: lifetime balances plus
// the current calendar month's income, expense and category breakdown.
type Summary struct {
	TotalBalance      int64
	Income            int64
	Expense           int64
	Net               int64
	AccountBalances   []AccountBalance
	CategoryBreakdown []CategorySlice
}

// Summarize builds the dashboard summary. Empty inputs yield zero sums and an
// empty breakdown.
func Summarize(accounts []*ledger.Account, categories []*ledger.Category, txs []*ledger.Transaction, now time.Time) Summary {
	balances := AccountBalances(accounts, txs)

	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var income, expense int64

	for _, tx := range txs {
		if tx.OccurredAt.Before(startOfMonth) {
			continue
		}

		if tx.Kind == ledger.KindIncome {
			income += tx.Amount
		} else {
			expense += tx.Amount
		}
	}

	var breakdown []CategorySlice

	for _, cat := range categories {
		var amount int64

		for _, tx := range txs {
			if tx.OccurredAt.Before(startOfMonth) {
				continue
			}

			if tx.CategoryID != nil && *tx.CategoryID == cat.ID {
				amount += tx.Amount
			}
		}

		if amount == 0 {
			continue
		}

		breakdown = append(breakdown, CategorySlice{
			Name:   cat.Name,
			Amount: amount,
			Color:  colorOrDefault(cat.Color),
		})
	}

	return Summary{
		TotalBalance:      TotalBalance(balances),
		Income:            income,
		Expense:           expense,
		Net:               income - expense,
		AccountBalances:   balances,
		CategoryBreakdown: breakdown,
	}
}

// Period is the granularity of a trend bucket.
type Period string

const (
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
)

// TrendBucket is one time window's income/expense/net totals.
type TrendBucket struct {
	Period  string
	Income  int64
	Expense int64
	Net     int64
}

// Trends produces count buckets of the given granularity ending at now,
// ordered oldest to newest.
func Trends(txs []*ledger.Transaction, period Period, count int, now time.Time) []TrendBucket {
	buckets := make([]TrendBucket, 0, count)

	for i := count - 1; i >= 0; i-- {
		var (
			start, end time.Time
			label      string
		)

		switch period {
		case PeriodWeek:
			end = now.AddDate(0, 0, -7*i)
			start = end.AddDate(0, 0, -7)
			label = fmt.Sprintf("Week %d", count-i)
		case PeriodQuarter:
			start, _ = monthRange(now, -3*i)
			_, end = monthRange(now, -3*i+2)
			q := (int(start.Month())-1)/3 + 1
			label = fmt.Sprintf("Q%d %d", q, start.Year())
		default: // month
			start, end = monthRange(now, -i)
			label = start.Format("Jan 2006")
		}

		income, expense := sumWindow(txs, start, end)

		buckets = append(buckets, TrendBucket{
			Period:  label,
			Income:  income,
			Expense: expense,
			Net:     income - expense,
		})
	}

	return buckets
}

// MonthPoint is one month's total for a category series.
type MonthPoint struct {
	Month  string
	Amount int64
}

// ComparisonSeries is a category's month-by-month spend trajectory.
type ComparisonSeries struct {
	CategoryID uuid.UUID
	Color      string
	Data       []MonthPoint
}

// CategoryComparison builds a per-category month series over the last months
// calendar months, oldest first. Months without activity report zero.
func CategoryComparison(categories []*ledger.Category, txs []*ledger.Transaction, months int, now time.Time) map[string]ComparisonSeries {
	comparison := make(map[string]ComparisonSeries, len(categories))

	for _, cat := range categories {
		comparison[cat.Name] = ComparisonSeries{
			CategoryID: cat.ID,
			Color:      colorOrDefault(cat.Color),
			Data:       make([]MonthPoint, 0, months),
		}
	}

	for i := months - 1; i >= 0; i-- {
		start, end := monthRange(now, -i)
		label := start.Format("Jan")

		for _, cat := range categories {
			var amount int64

			for _, tx := range txs {
				if tx.CategoryID == nil || *tx.CategoryID != cat.ID {
					continue
				}

				if inWindow(tx.OccurredAt, start, end) {
					amount += tx.Amount
				}
			}

			series := comparison[cat.Name]
			series.Data = append(series.Data, MonthPoint{Month: label, Amount: amount})
			comparison[cat.Name] = series
		}
	}

	return comparison
}

// ForecastPoint is one projected month. The first point is the actual current
// balance; each later point adds the average monthly savings once.
type ForecastPoint struct {
	Month            string
	ProjectedBalance float64
	ProjectedIncome  float64
	ProjectedExpense float64
	IsActual         bool
}

// Forecast is a linear cash-flow extrapolation from trailing monthly averages.
type Forecast struct {
	Points            []ForecastPoint
	AvgMonthlyIncome  float64
	AvgMonthlyExpense float64
	AvgMonthlySavings float64
}

// CashFlowForecast projects the total balance monthsAhead months forward from
// trailing six-month averages. No smoothing or seasonality.
func CashFlowForecast(accounts []*ledger.Account, txs []*ledger.Transaction, monthsAhead int, now time.Time) Forecast {
	windowStart, _ := monthRange(now, -forecastWindowMonths)

	var incomeSum, expenseSum int64

	for _, tx := range txs {
		if tx.OccurredAt.Before(windowStart) {
			continue
		}

		if tx.Kind == ledger.KindIncome {
			incomeSum += tx.Amount
		} else {
			expenseSum += tx.Amount
		}
	}

	avgIncome := float64(incomeSum) / forecastWindowMonths
	avgExpense := float64(expenseSum) / forecastWindowMonths

	projected := float64(TotalBalance(AccountBalances(accounts, txs)))

	points := make([]ForecastPoint, 0, monthsAhead+1)

	for i := 0; i <= monthsAhead; i++ {
		start, _ := monthRange(now, i)

		if i > 0 {
			projected += avgIncome - avgExpense
		}

		points = append(points, ForecastPoint{
			Month:            start.Format("Jan 2006"),
			ProjectedBalance: projected,
			ProjectedIncome:  avgIncome,
			ProjectedExpense: avgExpense,
			IsActual:         i == 0,
		})
	}

	return Forecast{
		Points:            points,
		AvgMonthlyIncome:  avgIncome,
		AvgMonthlyExpense: avgExpense,
		AvgMonthlySavings: avgIncome - avgExpense,
	}
}

// SubscriptionGroup aggregates flagged transactions sharing a category name.
type SubscriptionGroup struct {
	Name            string
	Count           int
	MonthlyAmount   int64
	LastTransaction *ledger.Transaction
}

// SubscriptionReport lists recurring-charge groups and their combined total,
// assuming each flagged transaction recurs monthly.
type SubscriptionReport struct {
	Subscriptions []SubscriptionGroup
	MonthlyTotal  int64
	Count         int
}

// Subscriptions groups subscription-flagged transactions by category display
// name. Two categories sharing a name collapse into one group; transactions
// whose category was deleted group under "Unknown".
func Subscriptions(categories []*ledger.Category, txs []*ledger.Transaction) SubscriptionReport {
	names := make(map[uuid.UUID]string, len(categories))
	for _, cat := range categories {
		names[cat.ID] = cat.Name
	}

	groups := make(map[string]*SubscriptionGroup)

	var report SubscriptionReport

	for _, tx := range txs {
		if !tx.IsSubscription {
			continue
		}

		report.Count++

		name := "Unknown"
		if tx.CategoryID != nil {
			if n, ok := names[*tx.CategoryID]; ok {
				name = n
			}
		}

		g, ok := groups[name]
		if !ok {
			g = &SubscriptionGroup{Name: name}
			groups[name] = g
		}

		g.Count++
		g.MonthlyAmount += tx.Amount

		if g.LastTransaction == nil || !tx.CreatedAt.Before(g.LastTransaction.CreatedAt) {
			g.LastTransaction = tx
		}
	}

	report.Subscriptions = make([]SubscriptionGroup, 0, len(groups))
	for _, g := range groups {
		report.MonthlyTotal += g.MonthlyAmount
		report.Subscriptions = append(report.Subscriptions, *g)
	}

	sort.Slice(report.Subscriptions, func(i, j int) bool {
		return report.Subscriptions[i].Name < report.Subscriptions[j].Name
	})

	return report
}

// DaySpending totals expense transactions dated on the given calendar day.
func DaySpending(txs []*ledger.Transaction, day time.Time) int64 {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	var total int64

	for _, tx := range txs {
		if tx.Kind != ledger.KindExpense {
			continue
		}

		if !tx.OccurredAt.Before(start) && tx.OccurredAt.Before(end) {
			total += tx.Amount
		}
	}

	return total
}

// ConsecutivePositiveMonths counts how many calendar months in a row, ending
// with the most recent fully elapsed month, had positive net cash flow.
func ConsecutivePositiveMonths(txs []*ledger.Transaction, now time.Time) int {
	streak := 0

	for i := 1; ; i++ {
		start, end := monthRange(now, -i)

		income, expense := sumWindow(txs, start, end)
		if income-expense <= 0 {
			return streak
		}

		streak++

		// Nothing older to count.
		if !anyBefore(txs, start) {
			return streak
		}
	}
}

// monthRange returns the inclusive bounds of the calendar month offset months
// away from now's month. Day overflow normalizes per time.Date.
func monthRange(now time.Time, offset int) (time.Time, time.Time) {
	start := time.Date(now.Year(), time.Month(int(now.Month())+offset), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

	return start, end
}

func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

func sumWindow(txs []*ledger.Transaction, start, end time.Time) (income, expense int64) {
	for _, tx := range txs {
		if !inWindow(tx.OccurredAt, start, end) {
			continue
		}

		if tx.Kind == ledger.KindIncome {
			income += tx.Amount
		} else {
			expense += tx.Amount
		}
	}

	return income, expense
}

func anyBefore(txs []*ledger.Transaction, t time.Time) bool {
	for _, tx := range txs {
		if tx.OccurredAt.Before(t) {
			return true
		}
	}

	return false
}

func colorOrDefault(color string) string {
	if color == "" {
		return DefaultColor
	}

	return color
}
