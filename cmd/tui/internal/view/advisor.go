package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/ananyadas/finquest/internal/advisor"
)

type advisorState int

const (
	advisorStateAsk advisorState = iota
	advisorStateAnswer
)

type AdvisorModel struct {
	CommonModel
	userID         uuid.UUID
	advisorService *advisor.Service

	state  advisorState
	form   *huh.Form
	answer string
	err    error

	formQuestion string
}

func NewAdvisorModel(userID uuid.UUID, advisorSvc *advisor.Service) AdvisorModel {
	m := AdvisorModel{
		userID:         userID,
		advisorService: advisorSvc,
	}
	m.form = m.newQuestionForm()

	return m
}

func (m *AdvisorModel) newQuestionForm() *huh.Form {
	m.formQuestion = ""

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("question").
				Title("Ask your money buddy").
				Placeholder("How can I save more?").
				Value(&m.formQuestion).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("ask something")
					}
					return nil
				}),
		),
	).WithWidth(60).WithShowHelp(false)
}

func (m AdvisorModel) Title() string { return "Advisor" }
func (m AdvisorModel) ShortHelp() string {
	if m.state == advisorStateAnswer {
		return "Esc: back | a: ask again | s: self-care check"
	}
	return "Esc: back | Enter: ask"
}

func (m AdvisorModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m AdvisorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case advisorAnswerMsg:
		m.state = advisorStateAnswer
		m.answer = msg.answer
		m.err = msg.err

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "s":
			if m.state == advisorStateAnswer {
				return m, m.selfCareCmd()
			}
		case "a":
			if m.state == advisorStateAnswer {
				m.state = advisorStateAsk
				m.form = m.newQuestionForm()

				return m, m.form.Init()
			}
		}
	}

	if m.state != advisorStateAsk {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.askCmd()
}

func (m AdvisorModel) View() string {
	if m.state == advisorStateAnswer {
		if m.err != nil {
			return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(70).
			Render(m.answer)

		return lipgloss.NewStyle().Padding(1).Render(panel)
	}

	return lipgloss.NewStyle().Padding(1).Render(m.form.View())
}

// Messages

type advisorAnswerMsg struct {
	answer string
	err    error
}

func (m AdvisorModel) askCmd() tea.Cmd {
	question := m.formQuestion

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		answer, err := m.advisorService.Ask(ctx, m.userID, question)
		return advisorAnswerMsg{answer: answer, err: err}
	}
}

func (m AdvisorModel) selfCareCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		report, err := m.advisorService.SelfCare(ctx, m.userID)
		if err != nil {
			return advisorAnswerMsg{err: err}
		}

		var b strings.Builder
		fmt.Fprintf(&b, "Safe to spend on yourself: %s\n", FormatAmount(report.SafeSpendAmount))
		fmt.Fprintf(&b, "Savings rate: %.1f%%\n\n", report.SavingsRate)

		for _, s := range report.Suggestions {
			fmt.Fprintf(&b, "- %s\n", s)
		}

		return advisorAnswerMsg{answer: b.String()}
	}
}
