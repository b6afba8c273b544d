package tax

import (
	"context"
	"time"

	"github.com/taxfolio/backend/internal/model"
)

// aggregateDividends sums dividend income paid inside the tax-year window.
// Gross, withheld and net amounts are each normalized to TRY at the
// dividend's own payment date. The per-symbol breakdown tracks gross
// amounts only.
func (e *Engine) aggregateDividends(ctx context.Context, dividends []model.Dividend, start, end time.Time) (model.DividendSummary, error) {
	summary := model.DividendSummary{
		DividendsBySymbol: make(map[string]float64),
	}

	for _, d := range dividends {
		if d.PaymentDate.Before(start) || d.PaymentDate.After(end) {
			continue
		}

		gross, err := e.normalize(ctx, d.GrossAmount, d.Currency, d.PaymentDate)
		if err != nil {
			return model.DividendSummary{}, err
		}
		withheld, err := e.normalize(ctx, d.TaxWithheld, d.Currency, d.PaymentDate)
		if err != nil {
			return model.DividendSummary{}, err
		}
		net, err := e.normalize(ctx, d.NetAmount, d.Currency, d.PaymentDate)
		if err != nil {
			return model.DividendSummary{}, err
		}

		summary.TotalGrossAmount += gross
		summary.TotalTaxWithheld += withheld
		summary.TotalNetAmount += net
		summary.DividendsBySymbol[d.Symbol] += gross
	}

	return summary, nil
}
