package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/ananyadas/finquest/internal/ledger"
)

type txState int

const (
	txStateBrowse txState = iota
	txStateAdd
)

type TransactionsModel struct {
	CommonModel
	userID        uuid.UUID
	ledgerService *ledger.Service

	state      txState
	table      table.Model
	txs        []*ledger.Transaction
	accounts   []*ledger.Account
	categories []*ledger.Category
	form       *huh.Form

	loading bool
	err     error
	status  string

	// Form bindings
	formAccountID  string
	formCategoryID string
	formKind       string
	formAmount     string
	formNote       string
}

func NewTransactionsModel(userID uuid.UUID, ledgerSvc *ledger.Service) TransactionsModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Kind", Width: 8},
		{Title: "Amount", Width: 12},
		{Title: "Category", Width: 18},
		{Title: "Account", Width: 18},
		{Title: "Note", Width: 30},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
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

	return TransactionsModel{
		userID:        userID,
		ledgerService: ledgerSvc,
		table:         t,
		loading:       true,
	}
}

func (m TransactionsModel) Title() string { return "Transactions" }
func (m TransactionsModel) ShortHelp() string {
	if m.state == txStateAdd {
		return "Navigate form | Esc: cancel"
	}
	return "Esc: back | a: add | x: delete | r: refresh"
}

func (m TransactionsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m TransactionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadTxsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.txs = msg.txs
		m.accounts = msg.accounts
		m.categories = msg.categories
		m.err = nil
		m.refreshTable()

		return m, nil

	case txMutateMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = msg.status
		}

		m.state = txStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case txStateBrowse:
		return m.updateBrowse(msg)
	case txStateAdd:
		return m.updateAdd(msg)
	}

	return m, nil
}

func (m TransactionsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "a":
			return m.enterAddMode()
		case "x":
			idx := m.table.Cursor()
			if idx < 0 || idx >= len(m.txs) {
				return m, nil
			}

			return m, m.deleteCmd(m.txs[idx].ID)
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m TransactionsModel) enterAddMode() (tea.Model, tea.Cmd) {
	if len(m.accounts) == 0 {
		m.status = "Create an account first."
		return m, nil
	}

	accountOpts := make([]huh.Option[string], len(m.accounts))
	for i, acc := range m.accounts {
		accountOpts[i] = huh.NewOption(acc.Name, acc.ID.String())
	}

	categoryOpts := []huh.Option[string]{huh.NewOption("(none)", "")}
	for _, cat := range m.categories {
		categoryOpts = append(categoryOpts, huh.NewOption(cat.Name, cat.ID.String()))
	}

	m.formAccountID = m.accounts[0].ID.String()
	m.formCategoryID = ""
	m.formKind = string(ledger.KindExpense)
	m.formAmount = ""
	m.formNote = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("account").
				Title("Account").
				Options(accountOpts...).
				Value(&m.formAccountID),

			huh.NewSelect[string]().
				Key("kind").
				Title("Kind").
				Options(
					huh.NewOption("Expense", string(ledger.KindExpense)),
					huh.NewOption("Income", string(ledger.KindIncome)),
				).
				Value(&m.formKind),

			huh.NewSelect[string]().
				Key("category").
				Title("Category").
				Options(categoryOpts...).
				Value(&m.formCategoryID),

			huh.NewInput().
				Key("amount").
				Title("Amount (₹)").
				Placeholder("250.00").
				Value(&m.formAmount).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil || v <= 0 {
						return fmt.Errorf("enter a positive amount")
					}
					return nil
				}),

			huh.NewInput().
				Key("note").
				Title("Note").
				Value(&m.formNote),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = txStateAdd
	m.table.Blur()
	return m, m.form.Init()
}

func (m TransactionsModel) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = txStateBrowse
			m.form = nil
			m.table.Focus()
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

	return m, m.saveCmd()
}

func (m TransactionsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading transactions...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := tableView

	if m.state == txStateAdd && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render("Add Transaction\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *TransactionsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.txs))
	for _, tx := range m.txs {
		categoryName := ""
		if tx.Category != nil {
			categoryName = tx.Category.Name
		}

		accountName := ""
		if tx.Account != nil {
			accountName = tx.Account.Name
		}

		amount := FormatAmount(tx.Amount)
		if tx.Kind == ledger.KindExpense {
			amount = "-" + amount
		}

		rows = append(rows, table.Row{
			FormatDate(tx.OccurredAt),
			string(tx.Kind),
			amount,
			categoryName,
			accountName,
			tx.Note,
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadTxsMsg struct {
	txs        []*ledger.Transaction
	accounts   []*ledger.Account
	categories []*ledger.Category
	err        error
}

func (m TransactionsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		txs, err := m.ledgerService.ListRecentTransactions(ctx, m.userID)
		if err != nil {
			return loadTxsMsg{err: err}
		}

		accounts, err := m.ledgerService.ListAccounts(ctx, m.userID)
		if err != nil {
			return loadTxsMsg{err: err}
		}

		categories, err := m.ledgerService.ListCategories(ctx, m.userID)
		if err != nil {
			return loadTxsMsg{err: err}
		}

		return loadTxsMsg{txs: txs, accounts: accounts, categories: categories}
	}
}

type txMutateMsg struct {
	status string
	err    error
}

func (m TransactionsModel) saveCmd() tea.Cmd {
	accountID, err := uuid.Parse(m.formAccountID)
	if err != nil {
		return func() tea.Msg { return txMutateMsg{err: err} }
	}

	var categoryID uuid.UUID
	if m.formCategoryID != "" {
		categoryID, err = uuid.Parse(m.formCategoryID)
		if err != nil {
			return func() tea.Msg { return txMutateMsg{err: err} }
		}
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(m.formAmount), 64)
	if err != nil {
		return func() tea.Msg { return txMutateMsg{err: err} }
	}

	params := ledger.CreateTransactionParams{
		AccountID:  accountID,
		CategoryID: categoryID,
		Amount:     int64(value * 100),
		Kind:       ledger.Kind(m.formKind),
		OccurredAt: time.Now(),
		Note:       m.formNote,
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if _, err := m.ledgerService.CreateTransaction(ctx, m.userID, params); err != nil {
			return txMutateMsg{err: err}
		}

		return txMutateMsg{status: "Saved."}
	}
}

func (m TransactionsModel) deleteCmd(id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.ledgerService.DeleteTransaction(ctx, m.userID, id); err != nil {
			return txMutateMsg{err: err}
		}

		return txMutateMsg{status: "Deleted."}
	}
}
