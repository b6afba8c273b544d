package tax

import (
	"context"
	"time"
)

// RateSource resolves how many TRY one USD was worth on a calendar date.
// The bool result is false when no rate is recorded for that date.
type RateSource interface {
	Rate(ctx context.Context, date time.Time) (float64, bool, error)
}

// IndexSource resolves the monthly producer-price index value for a
// year/month pair. The bool result is false when the index has no entry
// for that month. Only ratios of index values are ever used, so the
// absolute scale of the series does not matter.
type IndexSource interface {
	Index(ctx context.Context, year int, month time.Month) (float64, bool, error)
}
