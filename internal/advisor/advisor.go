// Package advisor turns dashboard numbers into conversational advice. The
// router is rule-based: the first keyword group that matches the question
// wins, so "how do I cut my spending" is advice about cutting, not a
// spending report.
package advisor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ananyadas/finquest/internal/analytics"
)

// rupees renders cents as a display amount.
func rupees(cents int64) string {
	return fmt.Sprintf("₹%.2f", float64(cents)/100)
}

type rule struct {
	keywords []string
	respond  func(s analytics.Summary) string
}

// Order matters: earlier rules shadow later ones.
var rules = []rule{
	{
		keywords: []string{"cut", "reduce", "save money", "lower"},
		respond:  cutAdvice,
	},
	{
		keywords: []string{"spending", "spend", "expense"},
		respond:  spendingReport,
	},
	{
		keywords: []string{"save", "saving"},
		respond:  savingsAdvice,
	},
	{
		keywords: []string{"budget", "improve", "advice"},
		respond:  budgetAdvice,
	},
	{
		keywords: []string{"income"},
		respond: func(s analytics.Summary) string {
			return fmt.Sprintf("Your income this month is %s. Your expenses are %s, leaving you with %s.",
				rupees(s.Income), rupees(s.Expense), rupees(s.Net))
		},
	},
	{
		keywords: []string{"balance", "total"},
		respond: func(s analytics.Summary) string {
			return fmt.Sprintf("Your total balance across all accounts is %s.", rupees(s.TotalBalance))
		},
	},
	{
		keywords: []string{"help"},
		respond: func(analytics.Summary) string {
			return "You can ask me about your spending, your savings rate, your budget, your income, or your balance. Try \"how can I cut my spending?\""
		},
	},
}

// Reply answers a free-form question from the dashboard summary. It is pure:
// the same question and summary always produce the same answer.
func Reply(question string, s analytics.Summary) string {
	q := strings.ToLower(question)

	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(q, kw) {
				return r.respond(s)
			}
		}
	}

	return "I'm your financial assistant. Ask me about your spending, savings, budget, income, or balance and I'll look at your numbers."
}

func topCategory(s analytics.Summary) (analytics.CategorySlice, bool) {
	if len(s.CategoryBreakdown) == 0 {
		return analytics.CategorySlice{}, false
	}

	slices := make([]analytics.CategorySlice, len(s.CategoryBreakdown))
	copy(slices, s.CategoryBreakdown)

	sort.Slice(slices, func(i, j int) bool { return slices[i].Amount > slices[j].Amount })

	return slices[0], true
}

func cutAdvice(s analytics.Summary) string {
	top, ok := topCategory(s)
	if !ok {
		return "I don't see any categorized spending yet. Once you log a few expenses, I can point out where to cut."
	}

	return fmt.Sprintf("Your biggest spending category this month is %s at %s. Start there: trimming it by 20%% would free up %s. Small recurring costs are usually the easiest wins.",
		top.Name, rupees(top.Amount), rupees(top.Amount/5))
}

func spendingReport(s analytics.Summary) string {
	if s.Expense == 0 {
		return "You haven't recorded any expenses this month."
	}

	msg := fmt.Sprintf("You've spent %s this month across %d categories.", rupees(s.Expense), len(s.CategoryBreakdown))

	if top, ok := topCategory(s); ok {
		msg += fmt.Sprintf(" The largest is %s at %s.", top.Name, rupees(top.Amount))
	}

	return msg
}

func savingsAdvice(s analytics.Summary) string {
	if s.Income == 0 {
		return "I can't compute your savings rate without income this month. Record your income and ask me again."
	}

	rate := float64(s.Net) / float64(s.Income) * 100

	switch {
	case rate < 10:
		return fmt.Sprintf("Your savings rate this month is %.1f%%. Aim for at least 10%% of income. Saving %s more would get you there.",
			rate, rupees(s.Income/10-s.Net))
	case rate < 20:
		return fmt.Sprintf("Your savings rate this month is %.1f%%. You're on the right track; pushing past 20%% would put you in great shape.", rate)
	default:
		return fmt.Sprintf("Your savings rate this month is %.1f%%. Excellent! You're saving more than 20%% of your income.", rate)
	}
}

func budgetAdvice(s analytics.Summary) string {
	if s.Income == 0 {
		return "A good starting budget is the 50/30/20 rule: 50% of income on needs, 30% on wants, 20% into savings. Record your income and I'll compute the numbers for you."
	}

	needs := s.Income / 2
	wants := s.Income * 3 / 10
	savings := s.Income / 5

	return fmt.Sprintf("With the 50/30/20 rule, your income of %s breaks down to %s for needs, %s for wants, and %s for savings. You're currently spending %s.",
		rupees(s.Income), rupees(needs), rupees(wants), rupees(savings), rupees(s.Expense))
}
