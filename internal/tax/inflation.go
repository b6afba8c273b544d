package tax

import (
	"context"
	"time"
)

// inflationThreshold is the statutory minimum index increase, in percent,
// required before a purchase cost may be adjusted. The comparison is
// strictly greater-than: exactly 10% does not adjust. There is no
// downward adjustment.
const inflationThreshold = 10.0

// minIndexValue guards the ratio against a zero or near-zero start value.
// An index that small is bad source data; it is treated as missing rather
// than letting the ratio blow up.
const minIndexValue = 1e-9

// adjustedCost returns the effective unit cost of a lot for a sale on
// saleDate. The index window runs from the purchase month to the month
// before the sale month (a fixed rule; January rolls back to December of
// the previous year). When the realized index change exceeds the
// threshold the historical cost is scaled up by it; otherwise, and
// whenever either index endpoint is missing, the unadjusted cost is used.
func (e *Engine) adjustedCost(ctx context.Context, open *lot, saleDate time.Time) (float64, error) {
	endYear, endMonth := previousMonth(saleDate.Year(), saleDate.Month())

	rate, ok, err := e.inflationRate(ctx, open.date.Year(), open.date.Month(), endYear, endMonth)
	if err != nil {
		return 0, err
	}
	if !ok || rate <= inflationThreshold {
		return open.price, nil
	}
	return open.price * (1 + rate/100), nil
}

// inflationRate computes the percentage change of the monthly index
// between two year/month points. The bool result is false when either
// endpoint is absent from the index.
func (e *Engine) inflationRate(ctx context.Context, startYear int, startMonth time.Month, endYear int, endMonth time.Month) (float64, bool, error) {
	startValue, ok, err := e.index.Index(ctx, startYear, startMonth)
	if err != nil {
		return 0, false, err
	}
	if !ok {
		e.missingIndex(startYear, startMonth)
		return 0, false, nil
	}

	endValue, ok, err := e.index.Index(ctx, endYear, endMonth)
	if err != nil {
		return 0, false, err
	}
	if !ok {
		e.missingIndex(endYear, endMonth)
		return 0, false, nil
	}

	if startValue < minIndexValue {
		e.log.Warn().
			Int("year", startYear).
			Int("month", int(startMonth)).
			Float64("value", startValue).
			Msg("inflation index start value is zero or negative, skipping adjustment")
		return 0, false, nil
	}

	return (endValue - startValue) / startValue * 100, true, nil
}

func (e *Engine) missingIndex(year int, month time.Month) {
	e.log.Warn().
		Int("year", year).
		Int("month", int(month)).
		Msg("no inflation index value for month, using unadjusted cost")
}

func previousMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}
