package tax

import (
	"context"
	"time"

	"github.com/taxfolio/backend/internal/model"
)

// normalize converts an amount to TRY using the rate effective on the
// given date. TRY amounts pass through unchanged.
//
// When no rate is stored for the date the amount is returned unconverted.
// This is deliberate degraded behavior, not a failure: the computation
// continues on sparse rate data and the gap is surfaced in the log.
func (e *Engine) normalize(ctx context.Context, amount float64, currency string, date time.Time) (float64, error) {
	if currency != model.CurrencyUSD {
		return amount, nil
	}

	rate, ok, err := e.rates.Rate(ctx, date)
	if err != nil {
		return 0, err
	}
	if !ok {
		e.log.Warn().
			Str("currency", currency).
			Time("date", date).
			Msg("no exchange rate for date, amount left unconverted")
		return amount, nil
	}
	return amount * rate, nil
}
