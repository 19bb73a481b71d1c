package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/ananyadas/finquest/cmd/tui/internal/view"
	"github.com/ananyadas/finquest/internal/advisor"
	"github.com/ananyadas/finquest/internal/analytics"
	authStore "github.com/ananyadas/finquest/internal/auth/store"
	"github.com/ananyadas/finquest/internal/config"
	"github.com/ananyadas/finquest/internal/database"
	"github.com/ananyadas/finquest/internal/gamify"
	gamifyStore "github.com/ananyadas/finquest/internal/gamify/store"
	"github.com/ananyadas/finquest/internal/goal"
	goalStore "github.com/ananyadas/finquest/internal/goal/store"
	"github.com/ananyadas/finquest/internal/importer"
	"github.com/ananyadas/finquest/internal/ledger"
	ledgerStore "github.com/ananyadas/finquest/internal/ledger/store"
)

type model struct {
	userID           uuid.UUID
	ledgerService    *ledger.Service
	analyticsService *analytics.Service
	goalService      *goal.Service
	gamifyService    *gamify.Service
	advisorService   *advisor.Service
	importService    *importer.Service

	currentView View

	dashboardView    view.DashboardModel
	transactionsView view.TransactionsModel
	goalsView        view.GoalsModel
	questsView       view.QuestsModel
	advisorView      view.AdvisorModel
	importView       view.ImportModel
}

type View int

const (
	ViewMenu         View = 0
	ViewDashboard    View = 1
	ViewTransactions View = 2
	ViewGoals        View = 3
	ViewQuests       View = 4
	ViewAdvisor      View = 5
	ViewImport       View = 6
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if cfg.TUI.UserEmail == "" {
		slog.Error("TUI_USER_EMAIL is not set")
		os.Exit(1)
	}

	db, err := database.New(context.Background(), cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	user, err := authStore.New(db).GetUserByEmail(context.Background(), cfg.TUI.UserEmail)
	if err != nil {
		slog.Error("failed to look up user", "email", cfg.TUI.UserEmail, "error", err)
		os.Exit(1)
	}

	ledgerRepo := ledgerStore.New(db)

	gamifySvc := gamify.NewService(gamifyStore.New(db), ledgerRepo)
	ledgerSvc := ledger.NewService(ledgerRepo, gamifySvc)
	analyticsSvc := analytics.NewService(ledgerRepo)
	goalSvc := goal.NewService(goalStore.New(db), gamifySvc)
	advisorSvc := advisor.NewService(analyticsSvc)
	importSvc := importer.NewService(ledgerSvc)

	return model{
		userID:           user.ID,
		ledgerService:    ledgerSvc,
		analyticsService: analyticsSvc,
		goalService:      goalSvc,
		gamifyService:    gamifySvc,
		advisorService:   advisorSvc,
		importService:    importSvc,
		currentView:      ViewMenu,
		dashboardView:    view.NewDashboardModel(user.ID, analyticsSvc, gamifySvc),
		transactionsView: view.NewTransactionsModel(user.ID, ledgerSvc),
		goalsView:        view.NewGoalsModel(user.ID, goalSvc),
		questsView:       view.NewQuestsModel(user.ID, gamifySvc),
		advisorView:      view.NewAdvisorModel(user.ID, advisorSvc),
		importView:       view.NewImportModel(user.ID, importSvc, ledgerSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.userID, m.analyticsService, m.gamifyService)

				return m, m.dashboardView.Init()
			case "2":
				m.currentView = ViewTransactions
				m.transactionsView = view.NewTransactionsModel(m.userID, m.ledgerService)

				return m, m.transactionsView.Init()
			case "3":
				m.currentView = ViewGoals
				m.goalsView = view.NewGoalsModel(m.userID, m.goalService)

				return m, m.goalsView.Init()
			case "4":
				m.currentView = ViewQuests
				m.questsView = view.NewQuestsModel(m.userID, m.gamifyService)

				return m, m.questsView.Init()
			case "5":
				m.currentView = ViewAdvisor
				m.advisorView = view.NewAdvisorModel(m.userID, m.advisorService)

				return m, m.advisorView.Init()
			case "6":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.userID, m.importService, m.ledgerService)

				return m, m.importView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewTransactions:
		var newModel tea.Model
		newModel, cmd = m.transactionsView.Update(msg)
		m.transactionsView = newModel.(view.TransactionsModel)
	case ViewGoals:
		var newModel tea.Model
		newModel, cmd = m.goalsView.Update(msg)
		m.goalsView = newModel.(view.GoalsModel)
	case ViewQuests:
		var newModel tea.Model
		newModel, cmd = m.questsView.Update(msg)
		m.questsView = newModel.(view.QuestsModel)
	case ViewAdvisor:
		var newModel tea.Model
		newModel, cmd = m.advisorView.Update(msg)
		m.advisorView = newModel.(view.AdvisorModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"FinQuest TUI\n\n" +
				"1. Dashboard\n" +
				"2. Transactions\n" +
				"3. Goals & Jars\n" +
				"4. Challenges\n" +
				"5. Advisor\n" +
				"6. Import Statement\n\n" +
				"q. Quit",
		)
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewTransactions:
		return m.transactionsView.View()
	case ViewGoals:
		return m.goalsView.View()
	case ViewQuests:
		return m.questsView.View()
	case ViewAdvisor:
		return m.advisorView.View()
	case ViewImport:
		return m.importView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
