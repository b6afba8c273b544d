// Package api wires the HTTP surface: routing, middleware, handlers.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/taxfolio/backend/internal/api/handlers"
	custommiddleware "github.com/taxfolio/backend/internal/api/middleware"
	"github.com/taxfolio/backend/internal/config"
	"github.com/taxfolio/backend/internal/service"
)

// RouterServices bundles the services the router hands to handlers.
type RouterServices struct {
	System       *service.SystemService
	Settings     *service.SettingsService
	Transactions *service.TransactionService
	Dividends    *service.DividendService
	Rates        *service.RateService
	Inflation    *service.InflationService
	Tax          *service.TaxService
}

// NewRouter creates and configures the HTTP router
func NewRouter(services RouterServices, cfg *config.Config, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger(log))
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(services.System, services.Settings)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
			r.Get("/evds-key", systemHandler.EvdsKeyStatus)
			r.Put("/evds-key", systemHandler.SetEvdsKey)
		})

		r.Route("/tax", func(r chi.Router) {
			taxHandler := handlers.NewTaxHandler(services.Tax)
			r.Get("/report", taxHandler.Report)
		})

		r.Route("/transaction", func(r chi.Router) {
			transactionHandler := handlers.NewTransactionHandler(services.Transactions)
			r.Get("/", transactionHandler.AllTransactions)
			r.Post("/", transactionHandler.CreateTransaction)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", transactionHandler.GetTransaction)
				r.Delete("/", transactionHandler.DeleteTransaction)
			})
		})

		r.Route("/dividend", func(r chi.Router) {
			dividendHandler := handlers.NewDividendHandler(services.Dividends)
			r.Get("/", dividendHandler.AllDividends)
			r.Post("/", dividendHandler.CreateDividend)
		})

		r.Route("/rates", func(r chi.Router) {
			ratesHandler := handlers.NewRatesHandler(services.Rates, services.Inflation)
			r.Get("/exchange", ratesHandler.ListExchangeRates)
			r.Put("/exchange", ratesHandler.UpsertExchangeRate)
			r.Get("/inflation", ratesHandler.ListInflationIndex)
			r.Put("/inflation", ratesHandler.UpsertInflationIndex)
		})
	})

	return r
}
