package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/ananyadas/finquest/internal/gamify"
)

type QuestsModel struct {
	CommonModel
	userID        uuid.UUID
	gamifyService *gamify.Service

	table        table.Model
	challenges   []*gamify.Challenge
	achievements []*gamify.Achievement

	loading bool
	err     error
	status  string
}

func NewQuestsModel(userID uuid.UUID, gamifySvc *gamify.Service) QuestsModel {
	columns := []table.Column{
		{Title: "Challenge", Width: 28},
		{Title: "Type", Width: 8},
		{Title: "Points", Width: 8},
		{Title: "Status", Width: 10},
		{Title: "Expires", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(8),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return QuestsModel{
		userID:        userID,
		gamifyService: gamifySvc,
		table:         t,
		loading:       true,
	}
}

func (m QuestsModel) Title() string { return "Challenges" }
func (m QuestsModel) ShortHelp() string {
	return "Esc: back | g: new challenges | Enter: complete | r: refresh"
}

func (m QuestsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m QuestsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadQuestsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.challenges = msg.challenges
		m.achievements = msg.achievements
		m.err = nil
		m.refreshTable()

		return m, nil

	case questMutateMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = msg.status
		}

		return m, m.loadCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "g":
			return m, m.generateCmd()
		case "enter":
			idx := m.table.Cursor()
			if idx < 0 || idx >= len(m.challenges) {
				return m, nil
			}

			return m, m.completeCmd(m.challenges[idx].ID)
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m QuestsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading challenges...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	var b strings.Builder

	if m.status != "" {
		b.WriteString(lipgloss.NewStyle().Faint(true).Render(m.status) + "\n")
	}

	b.WriteString(tableView)

	if len(m.achievements) > 0 {
		b.WriteString("\n\nAchievements\n")
		for _, a := range m.achievements {
			fmt.Fprintf(&b, "  %s  %s (+%d)\n", FormatDate(a.UnlockedAt), a.Title, a.Points)
		}
	}

	return lipgloss.NewStyle().Padding(1).Render(b.String())
}

func (m *QuestsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.challenges))
	for _, c := range m.challenges {
		rows = append(rows, table.Row{
			c.Title,
			string(c.Type),
			fmt.Sprintf("%d", c.Points),
			string(c.Status),
			FormatDate(c.ExpiresAt),
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadQuestsMsg struct {
	challenges   []*gamify.Challenge
	achievements []*gamify.Achievement
	err          error
}

func (m QuestsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		challenges, err := m.gamifyService.ListChallenges(ctx, m.userID)
		if err != nil {
			return loadQuestsMsg{err: err}
		}

		achievements, err := m.gamifyService.ListAchievements(ctx, m.userID)
		if err != nil {
			return loadQuestsMsg{err: err}
		}

		return loadQuestsMsg{challenges: challenges, achievements: achievements}
	}
}

type questMutateMsg struct {
	status string
	err    error
}

func (m QuestsModel) generateCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		challenges, err := m.gamifyService.GenerateChallenges(ctx, m.userID)
		if err != nil {
			return questMutateMsg{err: err}
		}

		return questMutateMsg{status: fmt.Sprintf("%d active challenges.", len(challenges))}
	}
}

func (m QuestsModel) completeCmd(id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		c, err := m.gamifyService.CompleteChallenge(ctx, m.userID, id)
		if err != nil {
			return questMutateMsg{err: err}
		}

		return questMutateMsg{status: fmt.Sprintf("Done! +%d points.", c.Points)}
	}
}
