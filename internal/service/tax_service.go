package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/taxfolio/backend/internal/model"
	"github.com/taxfolio/backend/internal/repository"
	"github.com/taxfolio/backend/internal/tax"
)

// TaxService assembles the inputs for a tax report and runs the engine.
type TaxService struct {
	transactionRepo *repository.TransactionRepository
	dividendRepo    *repository.DividendRepository
	engine          *tax.Engine
	log             zerolog.Logger
}

// NewTaxService creates a new TaxService with the provided dependencies.
func NewTaxService(
	transactionRepo *repository.TransactionRepository,
	dividendRepo *repository.DividendRepository,
	engine *tax.Engine,
	log zerolog.Logger,
) *TaxService {
	return &TaxService{
		transactionRepo: transactionRepo,
		dividendRepo:    dividendRepo,
		engine:          engine,
		log:             log.With().Str("component", "tax-service").Logger(),
	}
}

// ComputeReport builds the tax report for a year. The engine replays the
// complete transaction history, not just the tax year's, because lots
// bought in earlier years are still open for sales inside it.
func (s *TaxService) ComputeReport(ctx context.Context, taxYear int) (*model.TaxReport, error) {
	start := time.Now()

	transactions, err := s.transactionRepo.GetAllTransactions(ctx)
	if err != nil {
		return nil, err
	}

	yearStart := time.Date(taxYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(taxYear, time.December, 31, 23, 59, 59, 999000000, time.UTC)
	dividends, err := s.dividendRepo.GetDividendsByPaymentDate(ctx, yearStart, yearEnd)
	if err != nil {
		return nil, err
	}

	report, err := s.engine.ComputeTax(ctx, transactions, dividends, taxYear)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int("tax_year", taxYear).
		Int("transactions", len(transactions)).
		Int("dividends", len(dividends)).
		Dur("elapsed", time.Since(start)).
		Msg("tax report computed")
	return report, nil
}
