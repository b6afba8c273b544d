package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/taxfolio/backend/internal/model"
	"github.com/taxfolio/backend/internal/repository"
)

type cachedRate struct {
	rate  float64
	found bool
}

// RateService serves daily USD/TRY rates to the tax engine. A tax report
// looks up the same handful of dates thousands of times across symbols,
// so lookups are cached in memory. Misses are cached too: a date with no
// stored rate stays missing until the next sync invalidates it.
type RateService struct {
	rateRepo *repository.ExchangeRateRepository
	log      zerolog.Logger

	mu    sync.RWMutex
	cache map[string]cachedRate
}

// NewRateService creates a new RateService with the provided repository dependencies.
func NewRateService(rateRepo *repository.ExchangeRateRepository, log zerolog.Logger) *RateService {
	return &RateService{
		rateRepo: rateRepo,
		log:      log.With().Str("component", "rate-service").Logger(),
		cache:    make(map[string]cachedRate),
	}
}

// Rate returns the USD/TRY rate effective on the given date. The bool
// result is false when no rate is stored for that date.
func (s *RateService) Rate(ctx context.Context, date time.Time) (float64, bool, error) {
	key := date.UTC().Format("2006-01-02")

	s.mu.RLock()
	cached, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		return cached.rate, cached.found, nil
	}

	rate, found, err := s.rateRepo.GetRate(ctx, date)
	if err != nil {
		return 0, false, err
	}

	s.mu.Lock()
	s.cache[key] = cachedRate{rate: rate, found: found}
	s.mu.Unlock()

	return rate, found, nil
}

// UpsertRate stores a rate and refreshes the cache entry for its date.
func (s *RateService) UpsertRate(ctx context.Context, date time.Time, rate float64) error {
	if err := s.rateRepo.UpsertRate(ctx, date, rate); err != nil {
		return err
	}

	s.mu.Lock()
	s.cache[date.UTC().Format("2006-01-02")] = cachedRate{rate: rate, found: true}
	s.mu.Unlock()

	return nil
}

// ListRates returns all stored rates sorted by date ascending.
func (s *RateService) ListRates(ctx context.Context) ([]model.ExchangeRate, error) {
	return s.rateRepo.ListRates(ctx)
}

// LatestRateDate returns the most recent date with a stored rate.
func (s *RateService) LatestRateDate(ctx context.Context) (time.Time, bool, error) {
	return s.rateRepo.LatestRateDate(ctx)
}
