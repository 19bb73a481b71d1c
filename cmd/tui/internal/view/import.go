package view

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/ananyadas/finquest/internal/importer"
	"github.com/ananyadas/finquest/internal/ledger"
)

type importState int

const (
	importStateForm importState = iota
	importStateRunning
	importStateDone
)

type ImportModel struct {
	CommonModel
	userID        uuid.UUID
	importService *importer.Service
	ledgerService *ledger.Service

	state    importState
	form     *huh.Form
	accounts []*ledger.Account
	imported int
	err      error

	formPath      string
	formAccountID string
}

func NewImportModel(userID uuid.UUID, importSvc *importer.Service, ledgerSvc *ledger.Service) ImportModel {
	return ImportModel{
		userID:        userID,
		importService: importSvc,
		ledgerService: ledgerSvc,
	}
}

func (m ImportModel) Title() string { return "Import Statement" }
func (m ImportModel) ShortHelp() string {
	if m.state == importStateDone {
		return "Esc: back"
	}
	return "Esc: back | Enter: next field"
}

func (m ImportModel) Init() tea.Cmd {
	return m.loadAccountsCmd()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case importAccountsMsg:
		if msg.err != nil {
			m.state = importStateDone
			m.err = msg.err

			return m, nil
		}

		m.accounts = msg.accounts
		m.form = m.newForm()

		return m, m.form.Init()

	case importDoneMsg:
		m.state = importStateDone
		m.imported = msg.count
		m.err = msg.err

		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	if m.state != importStateForm || m.form == nil {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = importStateRunning

	return m, m.importCmd()
}

func (m *ImportModel) newForm() *huh.Form {
	accountOpts := make([]huh.Option[string], len(m.accounts))
	for i, acc := range m.accounts {
		accountOpts[i] = huh.NewOption(acc.Name, acc.ID.String())
	}

	if len(m.accounts) > 0 {
		m.formAccountID = m.accounts[0].ID.String()
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("path").
				Title("Statement CSV path").
				Placeholder("statement.csv").
				Value(&m.formPath).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("path cannot be empty")
					}
					if _, err := os.Stat(strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("cannot read file: %v", err)
					}
					return nil
				}),

			huh.NewSelect[string]().
				Key("account").
				Title("Into account").
				Options(accountOpts...).
				Value(&m.formAccountID),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m ImportModel) View() string {
	switch m.state {
	case importStateRunning:
		return lipgloss.NewStyle().Padding(2).Render("Importing...")

	case importStateDone:
		if m.err != nil {
			return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Import failed: %v", m.err))
		}

		return lipgloss.NewStyle().Padding(2).Render(
			fmt.Sprintf("Imported %d transactions.", m.imported),
		)
	}

	if m.form == nil {
		return lipgloss.NewStyle().Padding(2).Render("Loading accounts...")
	}

	return lipgloss.NewStyle().Padding(1).Render(m.form.View())
}

// Messages

type importAccountsMsg struct {
	accounts []*ledger.Account
	err      error
}

func (m ImportModel) loadAccountsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		accounts, err := m.ledgerService.ListAccounts(ctx, m.userID)
		if err != nil {
			return importAccountsMsg{err: err}
		}

		if len(accounts) == 0 {
			return importAccountsMsg{err: fmt.Errorf("no accounts; create one first")}
		}

		return importAccountsMsg{accounts: accounts}
	}
}

type importDoneMsg struct {
	count int
	err   error
}

func (m ImportModel) importCmd() tea.Cmd {
	path := strings.TrimSpace(m.formPath)
	accountID := m.formAccountID

	return func() tea.Msg {
		id, err := uuid.Parse(accountID)
		if err != nil {
			return importDoneMsg{err: err}
		}

		f, err := os.Open(path)
		if err != nil {
			return importDoneMsg{err: err}
		}
		defer f.Close()

		ctx, cancel := DbCtx()
		defer cancel()

		count, err := m.importService.ImportStatement(ctx, m.userID, id, f)

		return importDoneMsg{count: count, err: err}
	}
}
