package analytics

import (
	"time"

	"github.com/google/uuid"

	"github.com/ananyadas/finquest/internal/analytics"
)

type accountBalanceResponse struct {
	AccountID uuid.UUID `json:"account_id"`
	Name      string    `json:"name"`
	Balance   int64     `json:"balance"`
}

type categorySliceResponse struct {
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
	Color  string `json:"color"`
}

type summaryResponse struct {
	TotalBalance      int64                    `json:"total_balance"`
	Income            int64                    `json:"income"`
	Expense           int64                    `json:"expense"`
	Net               int64                    `json:"net"`
	AccountBalances   []accountBalanceResponse `json:"account_balances"`
	CategoryBreakdown []categorySliceResponse  `json:"category_breakdown"`
}

func toSummaryResponse(s analytics.Summary) summaryResponse {
	resp := summaryResponse{
		TotalBalance:      s.TotalBalance,
		Income:            s.Income,
		Expense:           s.Expense,
		Net:               s.Net,
		AccountBalances:   make([]accountBalanceResponse, 0, len(s.AccountBalances)),
		CategoryBreakdown: make([]categorySliceResponse, 0, len(s.CategoryBreakdown)),
	}

	for _, b := range s.AccountBalances {
		resp.AccountBalances = append(resp.AccountBalances, accountBalanceResponse{
			AccountID: b.Account.ID,
			Name:      b.Account.Name,
			Balance:   b.Balance,
		})
	}

	for _, c := range s.CategoryBreakdown {
		resp.CategoryBreakdown = append(resp.CategoryBreakdown, categorySliceResponse{
			Name:   c.Name,
			Amount: c.Amount,
			Color:  c.Color,
		})
	}

	return resp
}

type trendBucketResponse struct {
	Period  string `json:"period"`
	Income  int64  `json:"income"`
	Expense int64  `json:"expense"`
	Net     int64  `json:"net"`
}

func toTrendResponse(buckets []analytics.TrendBucket) []trendBucketResponse {
	resp := make([]trendBucketResponse, len(buckets))
	for i, b := range buckets {
		resp[i] = trendBucketResponse{
			Period:  b.Period,
			Income:  b.Income,
			Expense: b.Expense,
			Net:     b.Net,
		}
	}

	return resp
}

type monthPointResponse struct {
	Month  string `json:"month"`
	Amount int64  `json:"amount"`
}

type comparisonSeriesResponse struct {
	CategoryID uuid.UUID            `json:"category_id"`
	Color      string               `json:"color"`
	Data       []monthPointResponse `json:"data"`
}

func toComparisonResponse(comparison map[string]analytics.ComparisonSeries) map[string]comparisonSeriesResponse {
	resp := make(map[string]comparisonSeriesResponse, len(comparison))

	for name, series := range comparison {
		data := make([]monthPointResponse, len(series.Data))
		for i, p := range series.Data {
			data[i] = monthPointResponse{Month: p.Month, Amount: p.Amount}
		}

		resp[name] = comparisonSeriesResponse{
			CategoryID: series.CategoryID,
			Color:      series.Color,
			Data:       data,
		}
	}

	return resp
}

type forecastPointResponse struct {
	Month            string  `json:"month"`
	ProjectedBalance float64 `json:"projected_balance"`
	ProjectedIncome  float64 `json:"projected_income"`
	ProjectedExpense float64 `json:"projected_expense"`
	IsActual         bool    `json:"is_actual"`
}

type forecastResponse struct {
	Points            []forecastPointResponse `json:"points"`
	AvgMonthlyIncome  float64                 `json:"avg_monthly_income"`
	AvgMonthlyExpense float64                 `json:"avg_monthly_expense"`
	AvgMonthlySavings float64                 `json:"avg_monthly_savings"`
}

func toForecastResponse(f analytics.Forecast) forecastResponse {
	points := make([]forecastPointResponse, len(f.Points))
	for i, p := range f.Points {
		points[i] = forecastPointResponse{
			Month:            p.Month,
			ProjectedBalance: p.ProjectedBalance,
			ProjectedIncome:  p.ProjectedIncome,
			ProjectedExpense: p.ProjectedExpense,
			IsActual:         p.IsActual,
		}
	}

	return forecastResponse{
		Points:            points,
		AvgMonthlyIncome:  f.AvgMonthlyIncome,
		AvgMonthlyExpense: f.AvgMonthlyExpense,
		AvgMonthlySavings: f.AvgMonthlySavings,
	}
}

type subscriptionGroupResponse struct {
	Name            string     `json:"name"`
	Count           int        `json:"count"`
	MonthlyAmount   int64      `json:"monthly_amount"`
	LastTransaction *time.Time `json:"last_transaction,omitempty"`
}

type subscriptionResponse struct {
	Subscriptions []subscriptionGroupResponse `json:"subscriptions"`
	MonthlyTotal  int64                       `json:"monthly_total"`
	Count         int                         `json:"count"`
}

func toSubscriptionResponse(report analytics.SubscriptionReport) subscriptionResponse {
	groups := make([]subscriptionGroupResponse, 0, len(report.Subscriptions))

	for _, g := range report.Subscriptions {
		resp := subscriptionGroupResponse{
			Name:          g.Name,
			Count:         g.Count,
			MonthlyAmount: g.MonthlyAmount,
		}

		if g.LastTransaction != nil {
			resp.LastTransaction = &g.LastTransaction.CreatedAt
		}

		groups = append(groups, resp)
	}

	return subscriptionResponse{
		Subscriptions: groups,
		MonthlyTotal:  report.MonthlyTotal,
		Count:         report.Count,
	}
}
