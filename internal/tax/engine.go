// Package tax implements the capital-gains tax computation for a single
// year of foreign brokerage activity: FIFO lot matching per symbol,
// normalization of all cash flows to TRY, inflation adjustment of purchase
// costs above the statutory threshold, and aggregation of commissions and
// dividend income into one taxable-income figure.
//
// The engine is a pure batch computation: it holds no state between runs
// and depends only on its inputs and the injected rate/index sources.
package tax

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/taxfolio/backend/internal/model"
)

// Engine computes yearly tax reports from raw transaction and dividend
// records. Rate and index lookups are injected so the engine can run
// against fixed data in tests.
type Engine struct {
	rates RateSource
	index IndexSource
	log   zerolog.Logger
}

// New creates an Engine with the provided lookup sources.
func New(rates RateSource, index IndexSource, log zerolog.Logger) *Engine {
	return &Engine{
		rates: rates,
		index: index,
		log:   log.With().Str("component", "tax-engine").Logger(),
	}
}

// ComputeTax produces the tax report for the given calendar year.
//
// The transaction slice must contain the full history, not just the tax
// year: open lots bought in earlier years are still consumed by tax-year
// sales, and sales outside the tax year still consume lots (without
// contributing to this year's totals) so that the queue state stays
// correct across years.
//
// An empty history yields a zero-valued report, not an error.
func (e *Engine) ComputeTax(ctx context.Context, transactions []model.Transaction, dividends []model.Dividend, taxYear int) (*model.TaxReport, error) {
	start, end := taxYearWindow(taxYear)

	report := &model.TaxReport{
		TaxYear:            taxYear,
		ProfitLossBySymbol: make(map[string]float64),
		DividendSummary: model.DividendSummary{
			DividendsBySymbol: make(map[string]float64),
		},
	}

	bySymbol := make(map[string][]model.Transaction)
	for _, t := range transactions {
		bySymbol[t.Symbol] = append(bySymbol[t.Symbol], t)
	}

	// Symbols are independent of each other, so they are processed
	// concurrently. Within one symbol the transaction stream stays
	// strictly serial; FIFO correctness depends on that.
	var mu sync.Mutex
	outcomes := make([]symbolOutcome, 0, len(bySymbol))

	g, gctx := errgroup.WithContext(ctx)
	for symbol, txs := range bySymbol {
		symbol, txs := symbol, txs
		g.Go(func() error {
			out, err := e.processSymbol(gctx, symbol, txs, start, end)
			if err != nil {
				return err
			}
			mu.Lock()
			outcomes = append(outcomes, out)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Merge in symbol order so float accumulation is deterministic.
	sort.Slice(outcomes, func(i, j int) bool { return outcomes[i].symbol < outcomes[j].symbol })
	for _, out := range outcomes {
		if out.counted {
			report.ProfitLossBySymbol[out.symbol] += out.profitLoss
		}
		report.TotalProfit += out.netProfit
		report.TotalLoss += out.netLoss
		if out.missingBuy {
			report.MissingBuyTransactions = append(report.MissingBuyTransactions, out.symbol)
		}
	}
	for _, out := range outcomes {
		if out.counted {
			report.TotalProfitLoss += out.profitLoss
		}
	}

	commission, err := e.totalCommission(ctx, transactions, start, end)
	if err != nil {
		return nil, err
	}
	report.TotalCommission = commission

	summary, err := e.aggregateDividends(ctx, dividends, start, end)
	if err != nil {
		return nil, err
	}
	report.DividendSummary = summary

	report.TotalProfitLossAfterCommissions = report.TotalProfitLoss - commission
	report.TotalTaxableIncome = report.TotalProfitLossAfterCommissions + summary.TotalGrossAmount

	return report, nil
}

// totalCommission sums the transaction fees of tax-year transactions,
// each normalized to TRY at the transaction's own date.
func (e *Engine) totalCommission(ctx context.Context, transactions []model.Transaction, start, end time.Time) (float64, error) {
	var total float64
	for _, t := range transactions {
		if t.Date.Before(start) || t.Date.After(end) {
			continue
		}
		fee, err := e.normalize(ctx, t.TransactionFee, t.Currency, t.Date)
		if err != nil {
			return 0, err
		}
		total += fee
	}
	return total, nil
}

// taxYearWindow returns the inclusive bounds of a calendar tax year.
func taxYearWindow(year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 23, 59, 59, 999_000_000, time.UTC)
	return start, end
}
