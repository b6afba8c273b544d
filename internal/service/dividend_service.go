package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/taxfolio/backend/internal/model"
	"github.com/taxfolio/backend/internal/repository"
)

// DividendService handles dividend-related business logic operations.
type DividendService struct {
	dividendRepo *repository.DividendRepository
	log          zerolog.Logger
}

// NewDividendService creates a new DividendService with the provided repository dependencies.
func NewDividendService(dividendRepo *repository.DividendRepository, log zerolog.Logger) *DividendService {
	return &DividendService{
		dividendRepo: dividendRepo,
		log:          log.With().Str("component", "dividend-service").Logger(),
	}
}

// CreateDividend stores a new dividend record, assigning its ID and
// creation timestamp.
func (s *DividendService) CreateDividend(ctx context.Context, d *model.Dividend) error {
	d.ID = uuid.New().String()
	d.CreatedAt = time.Now().UTC()

	if err := s.dividendRepo.InsertDividend(ctx, d); err != nil {
		return err
	}

	s.log.Info().
		Str("id", d.ID).
		Str("symbol", d.Symbol).
		Msg("dividend created")
	return nil
}

// GetAllDividends retrieves all dividend records sorted by payment date ascending.
func (s *DividendService) GetAllDividends(ctx context.Context) ([]model.Dividend, error) {
	return s.dividendRepo.GetAllDividends(ctx)
}
