package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/ananyadas/finquest/internal/analytics"
	"github.com/ananyadas/finquest/internal/gamify"
)

type DashboardModel struct {
	CommonModel
	userID           uuid.UUID
	analyticsService *analytics.Service
	gamifyService    *gamify.Service

	summary  analytics.Summary
	progress *gamify.Progress
	loading  bool
	err      error
}

func NewDashboardModel(userID uuid.UUID, analyticsSvc *analytics.Service, gamifySvc *gamify.Service) DashboardModel {
	return DashboardModel{
		userID:           userID,
		analyticsService: analyticsSvc,
		gamifyService:    gamifySvc,
		loading:          true,
	}
}

func (m DashboardModel) Title() string     { return "Dashboard" }
func (m DashboardModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m DashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadDashboardMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.summary = msg.summary
		m.progress = msg.progress
		m.err = nil

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	return m, nil
}

func (m DashboardModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading dashboard...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	var b strings.Builder

	headline := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

	fmt.Fprintf(&b, "%s\n\n", headline.Render(fmt.Sprintf("Total Balance: %s", FormatAmount(m.summary.TotalBalance))))
	fmt.Fprintf(&b, "This Month\n")
	fmt.Fprintf(&b, "  Income:  %s\n", FormatAmount(m.summary.Income))
	fmt.Fprintf(&b, "  Expense: %s\n", FormatAmount(m.summary.Expense))
	fmt.Fprintf(&b, "  Net:     %s\n\n", FormatAmount(m.summary.Net))

	if len(m.summary.AccountBalances) > 0 {
		fmt.Fprintf(&b, "Accounts\n")
		for _, ab := range m.summary.AccountBalances {
			fmt.Fprintf(&b, "  %-20s %10s\n", ab.Account.Name, FormatAmount(ab.Balance))
		}
		fmt.Fprintln(&b)
	}

	if len(m.summary.CategoryBreakdown) > 0 {
		fmt.Fprintf(&b, "Spending by Category\n")
		for _, slice := range m.summary.CategoryBreakdown {
			fmt.Fprintf(&b, "  %-20s %10s\n", slice.Name, FormatAmount(slice.Amount))
		}
		fmt.Fprintln(&b)
	}

	if m.progress != nil {
		faint := lipgloss.NewStyle().Faint(true)
		fmt.Fprintf(&b, "%s\n", faint.Render(fmt.Sprintf(
			"Level %d | %d points | %d month savings streak",
			m.progress.Level(), m.progress.TotalPoints, m.progress.SavingsStreak,
		)))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// Messages

type loadDashboardMsg struct {
	summary  analytics.Summary
	progress *gamify.Progress
	err      error
}

func (m DashboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		summary, err := m.analyticsService.Dashboard(ctx, m.userID)
		if err != nil {
			return loadDashboardMsg{err: err}
		}

		progress, err := m.gamifyService.GetProgress(ctx, m.userID)
		if err != nil {
			return loadDashboardMsg{err: err}
		}

		return loadDashboardMsg{summary: summary, progress: progress}
	}
}
