package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/taxfolio/backend/internal/model"
	"github.com/taxfolio/backend/internal/repository"
)

type cachedIndex struct {
	value float64
	found bool
}

// InflationService serves monthly Yİ-ÜFE index values to the tax engine,
// cached the same way RateService caches daily rates.
type InflationService struct {
	indexRepo *repository.InflationIndexRepository
	log       zerolog.Logger

	mu    sync.RWMutex
	cache map[string]cachedIndex
}

// NewInflationService creates a new InflationService with the provided repository dependencies.
func NewInflationService(indexRepo *repository.InflationIndexRepository, log zerolog.Logger) *InflationService {
	return &InflationService{
		indexRepo: indexRepo,
		log:       log.With().Str("component", "inflation-service").Logger(),
		cache:     make(map[string]cachedIndex),
	}
}

func indexKey(year int, month time.Month) string {
	return fmt.Sprintf("%d-%02d", year, int(month))
}

// Index returns the Yİ-ÜFE value for a year/month. The bool result is
// false when the month has no stored value.
func (s *InflationService) Index(ctx context.Context, year int, month time.Month) (float64, bool, error) {
	key := indexKey(year, month)

	s.mu.RLock()
	cached, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		return cached.value, cached.found, nil
	}

	value, found, err := s.indexRepo.GetIndex(ctx, year, month)
	if err != nil {
		return 0, false, err
	}

	s.mu.Lock()
	s.cache[key] = cachedIndex{value: value, found: found}
	s.mu.Unlock()

	return value, found, nil
}

// UpsertIndex stores an index value and refreshes its cache entry.
func (s *InflationService) UpsertIndex(ctx context.Context, year int, month time.Month, value float64) error {
	if err := s.indexRepo.UpsertIndex(ctx, year, month, value); err != nil {
		return err
	}

	s.mu.Lock()
	s.cache[indexKey(year, month)] = cachedIndex{value: value, found: true}
	s.mu.Unlock()

	return nil
}

// ListIndex returns all stored index values sorted by year then month.
func (s *InflationService) ListIndex(ctx context.Context) ([]model.InflationIndex, error) {
	return s.indexRepo.ListIndex(ctx)
}
