// Package jobs contains the scheduled background jobs.
package jobs

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/taxfolio/backend/internal/apperrors"
	"github.com/taxfolio/backend/internal/evds"
	"github.com/taxfolio/backend/internal/service"
)

// defaultLookback bounds the first sync when the rate table is empty.
const defaultLookback = 5 * 365 * 24 * time.Hour

const runTimeout = 5 * time.Minute

// MarketDataJob pulls daily USD/TRY rates and monthly Yİ-ÜFE index
// values from EVDS into the local tables. Incremental: it resumes from
// the day after the most recent stored rate.
type MarketDataJob struct {
	evdsClient       *evds.Client
	settingsService  *service.SettingsService
	rateService      *service.RateService
	inflationService *service.InflationService
	log              zerolog.Logger
}

// NewMarketDataJob creates a new MarketDataJob with the provided dependencies.
func NewMarketDataJob(
	evdsClient *evds.Client,
	settingsService *service.SettingsService,
	rateService *service.RateService,
	inflationService *service.InflationService,
	log zerolog.Logger,
) *MarketDataJob {
	return &MarketDataJob{
		evdsClient:       evdsClient,
		settingsService:  settingsService,
		rateService:      rateService,
		inflationService: inflationService,
		log:              log.With().Str("component", "market-data-job").Logger(),
	}
}

// Name returns the job name for scheduler logging.
func (j *MarketDataJob) Name() string {
	return "market-data-sync"
}

// Run performs one sync cycle. A missing EVDS API key is not an error:
// the job logs and waits for the key to be configured.
func (j *MarketDataJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	apiKey, err := j.settingsService.GetEvdsAPIKey(ctx)
	if errors.Is(err, apperrors.ErrEvdsKeyNotConfigured) {
		j.log.Warn().Msg("evds api key not configured, skipping sync")
		return nil
	}
	if err != nil {
		return err
	}

	start, end := j.syncWindow(ctx)
	if !start.Before(end) && !start.Equal(end) {
		j.log.Debug().Msg("rates already current, nothing to sync")
		return nil
	}

	if err := j.syncRates(ctx, apiKey, start, end); err != nil {
		return err
	}
	return j.syncInflationIndex(ctx, apiKey, start, end)
}

func (j *MarketDataJob) syncWindow(ctx context.Context) (time.Time, time.Time) {
	end := time.Now().UTC().Truncate(24 * time.Hour)

	latest, found, err := j.rateService.LatestRateDate(ctx)
	if err != nil || !found {
		if err != nil {
			j.log.Warn().Err(err).Msg("could not read latest rate date, using full lookback")
		}
		return end.Add(-defaultLookback), end
	}
	return latest.AddDate(0, 0, 1), end
}

func (j *MarketDataJob) syncRates(ctx context.Context, apiKey string, start, end time.Time) error {
	rates, err := j.evdsClient.FetchUsdRates(ctx, apiKey, start, end)
	if err != nil {
		return err
	}

	for _, r := range rates {
		if err := j.rateService.UpsertRate(ctx, r.Date, r.Rate); err != nil {
			return err
		}
	}

	j.log.Info().
		Int("count", len(rates)).
		Time("from", start).
		Time("to", end).
		Msg("exchange rates synced")
	return nil
}

func (j *MarketDataJob) syncInflationIndex(ctx context.Context, apiKey string, start, end time.Time) error {
	values, err := j.evdsClient.FetchInflationIndex(ctx, apiKey, start, end)
	if err != nil {
		return err
	}

	for _, v := range values {
		if err := j.inflationService.UpsertIndex(ctx, v.Year, v.Month, v.Value); err != nil {
			return err
		}
	}

	j.log.Info().
		Int("count", len(values)).
		Msg("inflation index synced")
	return nil
}
