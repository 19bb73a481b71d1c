package view

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/ananyadas/finquest/internal/goal"
)

type goalState int

const (
	goalStateBrowse goalState = iota
	goalStateDeposit
)

// goalItem wraps either a goal or a jar to implement list.Item.
type goalItem struct {
	id      uuid.UUID
	name    string
	current int64
	target  int64
	status  goal.Status
	isJar   bool
	emoji   string
}

func (i goalItem) Title() string {
	label := i.name
	if i.emoji != "" {
		label = i.emoji + " " + label
	}

	tag := "[goal]"
	if i.isJar {
		tag = "[jar]"
	}

	return fmt.Sprintf("%s %s  %s / %s", lipgloss.NewStyle().Faint(true).Render(tag), label,
		FormatAmount(i.current), FormatAmount(i.target))
}

func (i goalItem) Description() string {
	if i.status == goal.StatusCompleted {
		return "Completed!"
	}

	if i.target == 0 {
		return ""
	}

	pct := float64(i.current) / float64(i.target) * 100
	return fmt.Sprintf("%.0f%% there", pct)
}

func (i goalItem) FilterValue() string { return i.name }

type GoalsModel struct {
	CommonModel
	userID      uuid.UUID
	goalService *goal.Service

	state    goalState
	list     list.Model
	items    []goalItem
	selected goalItem
	form     *huh.Form

	loading bool
	err     error
	status  string

	formAmount string
}

func NewGoalsModel(userID uuid.UUID, goalSvc *goal.Service) GoalsModel {
	l := list.New([]list.Item{}, goalItemDelegate{}, 0, 0)
	l.Title = "Goals & Jars"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return GoalsModel{
		userID:      userID,
		goalService: goalSvc,
		list:        l,
		loading:     true,
	}
}

func (m GoalsModel) Title() string { return "Goals & Jars" }
func (m GoalsModel) ShortHelp() string {
	if m.state == goalStateDeposit {
		return "Esc: cancel | Enter: confirm"
	}
	return "Esc: back | Enter: add money | r: refresh"
}

func (m GoalsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m GoalsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadGoalsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.items = msg.items
		m.err = nil
		m.refreshList()

		return m, nil

	case depositMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = msg.status
		}

		m.state = goalStateBrowse
		m.form = nil

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-8)
		return m, nil
	}

	switch m.state {
	case goalStateBrowse:
		return m.updateBrowse(msg)
	case goalStateDeposit:
		return m.updateDeposit(msg)
	}

	return m, nil
}

func (m GoalsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			if m.list.FilterState() == list.Filtering {
				break
			}

			return m, Back
		case tea.KeyEnter:
			if m.list.FilterState() == list.Filtering {
				break
			}

			return m.enterDepositMode()
		case tea.KeyRunes:
			if keyMsg.String() == "r" && m.list.FilterState() != list.Filtering {
				m.loading = true
				return m, m.loadCmd()
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m GoalsModel) enterDepositMode() (tea.Model, tea.Cmd) {
	selected, ok := m.list.SelectedItem().(goalItem)
	if !ok {
		return m, nil
	}

	if selected.status == goal.StatusCompleted {
		m.status = "Already completed."
		return m, nil
	}

	m.selected = selected
	m.formAmount = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("amount").
				Title(fmt.Sprintf("Add to %q (₹)", selected.name)).
				Placeholder("500.00").
				Value(&m.formAmount).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil || v <= 0 {
						return fmt.Errorf("enter a positive amount")
					}
					return nil
				}),
		),
	).WithWidth(40).WithShowHelp(false)

	m.state = goalStateDeposit
	return m, m.form.Init()
}

func (m GoalsModel) updateDeposit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = goalStateBrowse
			m.form = nil
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.depositCmd()
}

func (m GoalsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading goals...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	if m.state == goalStateDeposit && m.form != nil {
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())
	}

	statusLine := ""
	if m.status != "" {
		statusLine = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n"
	}

	return lipgloss.NewStyle().Padding(1).Render(statusLine + m.list.View())
}

func (m *GoalsModel) refreshList() {
	items := make([]list.Item, len(m.items))
	for i, it := range m.items {
		items[i] = it
	}

	m.list.SetItems(items)
}

// Messages

type loadGoalsMsg struct {
	items []goalItem
	err   error
}

func (m GoalsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		goals, err := m.goalService.ListGoals(ctx, m.userID)
		if err != nil {
			return loadGoalsMsg{err: err}
		}

		jars, err := m.goalService.ListJars(ctx, m.userID)
		if err != nil {
			return loadGoalsMsg{err: err}
		}

		items := make([]goalItem, 0, len(goals)+len(jars))
		for _, g := range goals {
			items = append(items, goalItem{
				id:      g.ID,
				name:    g.Name,
				current: g.CurrentAmount,
				target:  g.TargetAmount,
				status:  g.Status,
			})
		}

		for _, j := range jars {
			items = append(items, goalItem{
				id:      j.ID,
				name:    j.Name,
				current: j.CurrentAmount,
				target:  j.TargetAmount,
				status:  j.Status,
				isJar:   true,
				emoji:   j.Emoji,
			})
		}

		return loadGoalsMsg{items: items}
	}
}

type depositMsg struct {
	status string
	err    error
}

func (m GoalsModel) depositCmd() tea.Cmd {
	item := m.selected

	value, err := strconv.ParseFloat(strings.TrimSpace(m.formAmount), 64)
	if err != nil {
		return func() tea.Msg { return depositMsg{err: err} }
	}

	amount := int64(value * 100)

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if item.isJar {
			jar, err := m.goalService.AddToJar(ctx, m.userID, item.id, amount)
			if err != nil {
				return depositMsg{err: err}
			}

			if jar.Status == goal.StatusCompleted {
				return depositMsg{status: "Jar filled! Points awarded."}
			}

			return depositMsg{status: "Added."}
		}

		g, err := m.goalService.UpdateGoalProgress(ctx, m.userID, item.id, amount)
		if err != nil {
			return depositMsg{err: err}
		}

		if g.Status == goal.StatusCompleted {
			return depositMsg{status: "Goal reached! Points awarded."}
		}

		return depositMsg{status: "Added."}
	}
}

// goalItemDelegate renders items in the list.
type goalItemDelegate struct{}

func (d goalItemDelegate) Height() int                             { return 2 }
func (d goalItemDelegate) Spacing() int                            { return 0 }
func (d goalItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d goalItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(goalItem)
	if !ok {
		return
	}

	title := i.Title()
	if index == m.Index() {
		title = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Render("> " + title)
	}

	fmt.Fprintf(w, "  %s\n", title)

	desc := i.Description()
	if desc == "" {
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintf(w, "    %s\n", lipgloss.NewStyle().Faint(true).Render(desc))
}
