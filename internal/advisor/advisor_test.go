package advisor_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ananyadas/finquest/internal/advisor"
	"github.com/ananyadas/finquest/internal/analytics"
)

func sampleSummary() analytics.Summary {
	return analytics.Summary{
		TotalBalance: 50000000, // ₹5,00,000
		Income:       10000000, // ₹1,00,000
		Expense:      7000000,
		Net:          3000000,
		CategoryBreakdown: []analytics.CategorySlice{
			{Name: "Food", Amount: 2000000},
			{Name: "Rent", Amount: 4000000},
			{Name: "Travel", Amount: 1000000},
		},
	}
}

func TestReply_KeywordRouting(t *testing.T) {
	s := sampleSummary()

	type testCase struct {
		name     string
		question string
		want     string
	}

	tests := []testCase{
		{
			name:     "CutBeatsSpending",
			question: "How do I cut my spending?",
			want:     "biggest spending category",
		},
		{
			name:     "SpendingReport",
			question: "What did I spend this month?",
			want:     "You've spent",
		},
		{
			name:     "SavingsRate",
			question: "Am I saving enough?",
			want:     "savings rate",
		},
		{
			name:     "Budget",
			question: "Give me some budget advice",
			want:     "50/30/20",
		},
		{
			name:     "Income",
			question: "What's my income?",
			want:     "Your income this month",
		},
		{
			name:     "Balance",
			question: "what is my total balance",
			want:     "total balance across all accounts",
		},
		{
			name:     "Help",
			question: "help",
			want:     "You can ask me",
		},
		{
			name:     "Fallback",
			question: "what's the weather like",
			want:     "financial assistant",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := advisor.Reply(tt.question, s)
			assert.Contains(t, got, tt.want)
		})
	}
}

func TestReply_CaseInsensitive(t *testing.T) {
	s := sampleSummary()

	assert.Equal(t,
		advisor.Reply("what is my BALANCE", s),
		advisor.Reply("what is my balance", s),
	)
}

func TestReply_CutAdviceUsesTopCategory(t *testing.T) {
	got := advisor.Reply("how can I cut costs?", sampleSummary())

	assert.Contains(t, got, "Rent")
	assert.Contains(t, got, "₹40000.00")
	// 20% of the top category.
	assert.Contains(t, got, "₹8000.00")
}

func TestReply_SavingsThresholds(t *testing.T) {
	type testCase struct {
		name   string
		income int64
		net    int64
		want   string
	}

	tests := []testCase{
		{name: "LowRate", income: 10000000, net: 500000, want: "Aim for at least 10%"},
		{name: "MidRate", income: 10000000, net: 1500000, want: "on the right track"},
		{name: "HighRate", income: 10000000, net: 2500000, want: "Excellent"},
		{name: "NoIncome", income: 0, net: 0, want: "can't compute your savings rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := analytics.Summary{Income: tt.income, Net: tt.net}
			assert.Contains(t, advisor.Reply("am I saving enough?", s), tt.want)
		})
	}
}

func TestSelfCareReport(t *testing.T) {
	type testCase struct {
		name     string
		summary  analytics.Summary
		wantSafe int64
	}

	tests := []testCase{
		{
			name: "SavingsBound",
			// 5% of balance = 2500000, 10% of net = 300000; the smaller wins,
			// floored to the nearest 10000.
			summary:  sampleSummary(),
			wantSafe: 300000,
		},
		{
			name: "BalanceBound",
			summary: analytics.Summary{
				TotalBalance: 1000000,
				Income:       10000000,
				Net:          9000000,
			},
			wantSafe: 50000,
		},
		{
			name: "FlooredToStep",
			summary: analytics.Summary{
				TotalBalance: 1090000,
				Income:       10000000,
				Net:          9000000,
			},
			wantSafe: 50000,
		},
		{
			name: "NegativeSavingsFallsBackToFloor",
			summary: analytics.Summary{
				TotalBalance: 50000000,
				Income:       10000000,
				Net:          -2000000,
			},
			wantSafe: 10000,
		},
		{
			name: "NegativeSavingsNoBalance",
			summary: analytics.Summary{
				Income: 10000000,
				Net:    -2000000,
			},
			wantSafe: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := advisor.SelfCareReport(tt.summary)

			assert.Equal(t, tt.wantSafe, report.SafeSpendAmount)
			require.NotEmpty(t, report.Suggestions)
		})
	}
}

func TestSelfCareReport_SavingsRate(t *testing.T) {
	report := advisor.SelfCareReport(sampleSummary())
	assert.InDelta(t, 30.0, report.SavingsRate, 0.01)

	report = advisor.SelfCareReport(analytics.Summary{})
	assert.Zero(t, report.SavingsRate)
}

func TestSelfCareReport_TightMonthSuggestions(t *testing.T) {
	report := advisor.SelfCareReport(analytics.Summary{Net: -100000})

	require.NotEmpty(t, report.Suggestions)
	assert.True(t, strings.Contains(report.Suggestions[0], "tight"))
}
