package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/taxfolio/backend/internal/api"
	"github.com/taxfolio/backend/internal/config"
	"github.com/taxfolio/backend/internal/database"
	"github.com/taxfolio/backend/internal/evds"
	"github.com/taxfolio/backend/internal/jobs"
	"github.com/taxfolio/backend/internal/logging"
	"github.com/taxfolio/backend/internal/repository"
	"github.com/taxfolio/backend/internal/scheduler"
	"github.com/taxfolio/backend/internal/secrets"
	"github.com/taxfolio/backend/internal/service"
	"github.com/taxfolio/backend/internal/tax"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := logging.New(cfg.LogLevel)

	// Open database connection and apply migrations
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate database")
	}

	logger.Info().Str("path", cfg.Database.Path).Msg("connected to database")

	encryptor, err := secrets.NewEncryptor(cfg.Secrets.FernetKey)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid FERNET_KEY")
	}

	// Create repositories
	transactionRepo := repository.NewTransactionRepository(db)
	dividendRepo := repository.NewDividendRepository(db)
	rateRepo := repository.NewExchangeRateRepository(db)
	indexRepo := repository.NewInflationIndexRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	settingsService := service.NewSettingsService(settingRepo, encryptor, logger)
	transactionService := service.NewTransactionService(transactionRepo, logger)
	dividendService := service.NewDividendService(dividendRepo, logger)
	rateService := service.NewRateService(rateRepo, logger)
	inflationService := service.NewInflationService(indexRepo, logger)

	engine := tax.New(rateService, inflationService, logger)
	taxService := service.NewTaxService(transactionRepo, dividendRepo, engine, logger)

	// Background sync of exchange rates and the inflation index
	evdsClient := evds.NewClient(cfg.EVDS.BaseURL)
	marketDataJob := jobs.NewMarketDataJob(evdsClient, settingsService, rateService, inflationService, logger)

	sched := scheduler.New(logger)
	if err := sched.AddJob(cfg.EVDS.SyncSchedule, marketDataJob); err != nil {
		logger.Fatal().Err(err).Msg("failed to register market data job")
	}
	sched.Start()
	defer sched.Stop()

	// Catch up on rates missed while the server was down
	go func() {
		if err := sched.RunNow(marketDataJob); err != nil {
			logger.Warn().Err(err).Msg("startup market data sync failed")
		}
	}()

	// Create router
	router := api.NewRouter(api.RouterServices{
		System:       systemService,
		Settings:     settingsService,
		Transactions: transactionService,
		Dividends:    dividendService,
		Rates:        rateService,
		Inflation:    inflationService,
		Tax:          taxService,
	}, cfg, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info().Str("addr", cfg.Server.Addr).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server exited")
}
