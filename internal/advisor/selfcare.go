package advisor

import (
	"fmt"

	"github.com/ananyadas/finquest/internal/analytics"
)

// safeSpendFloor rounds the guilt-free amount down to a clean step.
const safeSpendFloor = 10000 // cents

// SelfCare is the "treat yourself responsibly" block: how much the user can
// spend guilt-free, plus context on their financial health.
type SelfCare struct {
	SafeSpendAmount int64
	SavingsRate     float64 // percent, 0 when there is no income
	Suggestions     []string
}

// SelfCareReport computes the guilt-free spend as the smaller of 5% of total
// balance and 10% of this month's savings, rounded down to the floor step.
// A month without savings still offers one floor step, balance permitting.
func SelfCareReport(s analytics.Summary) SelfCare {
	var report SelfCare

	if s.Income > 0 {
		report.SavingsRate = float64(s.Net) / float64(s.Income) * 100
	}

	fromBalance := s.TotalBalance / 20

	fromSavings := int64(safeSpendFloor)
	if s.Net > 0 {
		fromSavings = s.Net / 10
	}

	safe := fromBalance
	if fromSavings < safe {
		safe = fromSavings
	}

	if safe > 0 {
		report.SafeSpendAmount = safe - safe%safeSpendFloor
	}

	switch {
	case report.SafeSpendAmount <= 0:
		report.Suggestions = []string{
			"This month is tight. Free self-care ideas: a walk, a home-cooked favorite meal, a library book.",
			"Focus on covering essentials first; the treat budget will come back as your savings recover.",
		}
	case report.SafeSpendAmount < 5*safeSpendFloor:
		report.Suggestions = []string{
			fmt.Sprintf("You can spend up to %s on yourself without denting your savings.", rupees(report.SafeSpendAmount)),
			"Small treats count: a coffee out, a movie, a new book.",
		}
	default:
		report.Suggestions = []string{
			fmt.Sprintf("You've earned it: up to %s is safe to spend on yourself this month.", rupees(report.SafeSpendAmount)),
			"Consider putting part of it into a savings jar for a bigger treat later.",
		}
	}

	return report
}
