package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ananyadas/finquest/internal/auth"
	"github.com/ananyadas/finquest/internal/http/account"
	"github.com/ananyadas/finquest/internal/http/advisor"
	"github.com/ananyadas/finquest/internal/http/analytics"
	"github.com/ananyadas/finquest/internal/http/authapi"
	"github.com/ananyadas/finquest/internal/http/bank"
	"github.com/ananyadas/finquest/internal/http/category"
	"github.com/ananyadas/finquest/internal/http/gamify"
	"github.com/ananyadas/finquest/internal/http/goal"
	"github.com/ananyadas/finquest/internal/http/importcsv"
	"github.com/ananyadas/finquest/internal/http/mood"
	"github.com/ananyadas/finquest/internal/http/receipt"
	"github.com/ananyadas/finquest/internal/http/transaction"
)

type Handlers struct {
	Auth         *authapi.Handler
	Accounts     *account.Handler
	Categories   *category.Handler
	Transactions *transaction.Handler
	Analytics    *analytics.Handler
	Goals        *goal.Handler
	Gamify       *gamify.Handler
	Moods        *mood.Handler
	Advisor      *advisor.Handler
	Banks        *bank.Handler
	Import       *importcsv.Handler
	Receipts     *receipt.Handler
}

func New(authSvc *auth.Service, allowedOrigins []string, h Handlers) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Auth.Routes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(authSvc.Middleware)

			r.Route("/me", h.Auth.MeRoutes)

			r.Route("/accounts", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				h.Accounts.Routes(r)
			})

			r.Route("/categories", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				h.Categories.Routes(r)
			})

			r.Route("/transactions", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				h.Transactions.Routes(r)
			})

			r.Route("/analytics", h.Analytics.Routes)

			r.Route("/goals", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				h.Goals.Routes(r)
			})

			r.Route("/jars", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				h.Goals.JarRoutes(r)
			})

			r.Route("/gamification", h.Gamify.Routes)

			r.Route("/moods", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				h.Moods.Routes(r)
			})

			r.Route("/advisor", h.Advisor.Routes)

			r.Route("/banks", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				h.Banks.Routes(r)
			})

			r.Route("/import", h.Import.Routes)
			r.Route("/receipts", h.Receipts.Routes)
		})
	})

	return router
}
