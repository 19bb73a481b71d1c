package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/ananyadas/finquest/internal/advisor"
	"github.com/ananyadas/finquest/internal/analytics"
	"github.com/ananyadas/finquest/internal/auth"
	authStore "github.com/ananyadas/finquest/internal/auth/store"
	"github.com/ananyadas/finquest/internal/bank"
	bankStore "github.com/ananyadas/finquest/internal/bank/store"
	"github.com/ananyadas/finquest/internal/config"
	"github.com/ananyadas/finquest/internal/database"
	"github.com/ananyadas/finquest/internal/gamify"
	gamifyStore "github.com/ananyadas/finquest/internal/gamify/store"
	"github.com/ananyadas/finquest/internal/goal"
	goalStore "github.com/ananyadas/finquest/internal/goal/store"
	appHttp "github.com/ananyadas/finquest/internal/http"
	accountHandler "github.com/ananyadas/finquest/internal/http/account"
	advisorHandler "github.com/ananyadas/finquest/internal/http/advisor"
	analyticsHandler "github.com/ananyadas/finquest/internal/http/analytics"
	"github.com/ananyadas/finquest/internal/http/authapi"
	bankHandler "github.com/ananyadas/finquest/internal/http/bank"
	categoryHandler "github.com/ananyadas/finquest/internal/http/category"
	gamifyHandler "github.com/ananyadas/finquest/internal/http/gamify"
	goalHandler "github.com/ananyadas/finquest/internal/http/goal"
	importHandler "github.com/ananyadas/finquest/internal/http/importcsv"
	moodHandler "github.com/ananyadas/finquest/internal/http/mood"
	receiptHandler "github.com/ananyadas/finquest/internal/http/receipt"
	txHandler "github.com/ananyadas/finquest/internal/http/transaction"
	"github.com/ananyadas/finquest/internal/importer"
	"github.com/ananyadas/finquest/internal/ledger"
	ledgerStore "github.com/ananyadas/finquest/internal/ledger/store"
	"github.com/ananyadas/finquest/internal/mood"
	moodStore "github.com/ananyadas/finquest/internal/mood/store"
	"github.com/ananyadas/finquest/internal/receipt"
	receiptStore "github.com/ananyadas/finquest/internal/receipt/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(context.Background(), cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	receiptFiles, err := receipt.NewDiskStore(cfg.Receipts.Dir)
	if err != nil {
		slog.Error("failed to open receipt store", "error", err)
		os.Exit(1)
	}

	ledgerRepo := ledgerStore.New(db)

	var (
		gamifyService    = gamify.NewService(gamifyStore.New(db), ledgerRepo)
		ledgerService    = ledger.NewService(ledgerRepo, gamifyService)
		analyticsService = analytics.NewService(ledgerRepo)
		goalService      = goal.NewService(goalStore.New(db), gamifyService)
		moodService      = mood.NewService(moodStore.New(db), ledgerRepo)
		advisorService   = advisor.NewService(analyticsService)
		bankService      = bank.NewService(bankStore.New(db))
		receiptService   = receipt.NewService(receiptStore.New(db), receiptFiles)
		importService    = importer.NewService(ledgerService)
		authService      = auth.NewService(authStore.New(db), cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	)

	router := appHttp.New(authService, cfg.Server.Origins, appHttp.Handlers{
		Auth:         authapi.NewHandler(authService),
		Accounts:     accountHandler.NewHandler(ledgerService),
		Categories:   categoryHandler.NewHandler(ledgerService),
		Transactions: txHandler.NewHandler(ledgerService),
		Analytics:    analyticsHandler.NewHandler(analyticsService),
		Goals:        goalHandler.NewHandler(goalService),
		Gamify:       gamifyHandler.NewHandler(gamifyService),
		Moods:        moodHandler.NewHandler(moodService),
		Advisor:      advisorHandler.NewHandler(advisorService),
		Banks:        bankHandler.NewHandler(bankService),
		Import:       importHandler.NewHandler(importService),
		Receipts:     receiptHandler.NewHandler(receiptService),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	server := &http.Server{
		Addr:              port,
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.Timeout,
	}

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
