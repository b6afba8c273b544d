package tax

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxfolio/backend/internal/model"
)

type fakeRates map[string]float64

func (f fakeRates) Rate(_ context.Context, date time.Time) (float64, bool, error) {
	r, ok := f[date.Format("2006-01-02")]
	return r, ok, nil
}

type fakeIndex map[string]float64

func (f fakeIndex) Index(_ context.Context, year int, month time.Month) (float64, bool, error) {
	v, ok := f[fmt.Sprintf("%d-%02d", year, int(month))]
	return v, ok, nil
}

func newTestEngine(rates fakeRates, index fakeIndex) *Engine {
	return New(rates, index, zerolog.Nop())
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func buy(symbol string, qty, price float64, on string) model.Transaction {
	return model.Transaction{
		Symbol:           symbol,
		OperationType:    model.OperationBuy,
		ExecutedQuantity: qty,
		AveragePrice:     price,
		Currency:         model.CurrencyTRY,
		Date:             day(on),
	}
}

func sell(symbol string, qty, price float64, on string) model.Transaction {
	return model.Transaction{
		Symbol:           symbol,
		OperationType:    model.OperationSell,
		ExecutedQuantity: qty,
		AveragePrice:     price,
		Currency:         model.CurrencyTRY,
		Date:             day(on),
	}
}

func TestComputeTax_FullLotSale(t *testing.T) {
	e := newTestEngine(fakeRates{}, fakeIndex{})

	report, err := e.ComputeTax(context.Background(), []model.Transaction{
		buy("AAPL", 10, 100, "2023-01-01"),
		sell("AAPL", 10, 150, "2024-06-01"),
	}, nil, 2024)
	require.NoError(t, err)

	assert.InDelta(t, 500, report.ProfitLossBySymbol["AAPL"], 1e-9)
	assert.InDelta(t, 500, report.TotalProfit, 1e-9)
	assert.InDelta(t, 0, report.TotalLoss, 1e-9)
	assert.InDelta(t, 500, report.TotalProfitLoss, 1e-9)
	assert.InDelta(t, 500, report.TotalProfitLossAfterCommissions, 1e-9)
	assert.InDelta(t, 500, report.TotalTaxableIncome, 1e-9)
	assert.Empty(t, report.MissingBuyTransactions)
}

func TestComputeTax_PartialLotConsumption(t *testing.T) {
	history := []model.Transaction{
		buy("THYAO", 5, 10, "2024-01-02"),
		buy("THYAO", 5, 20, "2024-02-02"),
		sell("THYAO", 7, 30, "2024-03-01"),
	}

	t.Run("partial sale realizes both lots proportionally", func(t *testing.T) {
		e := newTestEngine(fakeRates{}, fakeIndex{})

		report, err := e.ComputeTax(context.Background(), history, nil, 2024)
		require.NoError(t, err)

		// (30-10)*5 + (30-20)*2 = 120
		assert.InDelta(t, 120, report.ProfitLossBySymbol["THYAO"], 1e-9)
		assert.Empty(t, report.MissingBuyTransactions)
	})

	t.Run("remainder of second lot stays open at original cost", func(t *testing.T) {
		e := newTestEngine(fakeRates{}, fakeIndex{})

		later := append(append([]model.Transaction{}, history...),
			sell("THYAO", 3, 40, "2024-04-01"))
		report, err := e.ComputeTax(context.Background(), later, nil, 2024)
		require.NoError(t, err)

		// 120 from the first sale plus (40-20)*3 = 60 from the rest of lot two.
		assert.InDelta(t, 180, report.ProfitLossBySymbol["THYAO"], 1e-9)
		assert.Empty(t, report.MissingBuyTransactions)
	})
}

func TestComputeTax_FIFOConsumesOldestLotFirst(t *testing.T) {
	first := buy("GARAN", 5, 10, "2024-01-01")
	second := buy("GARAN", 5, 100, "2024-02-01")
	sale := sell("GARAN", 3, 50, "2024-03-01")

	// Input order must not matter; processing sorts by date.
	orders := [][]model.Transaction{
		{first, second, sale},
		{sale, second, first},
		{second, sale, first},
	}

	for i, history := range orders {
		t.Run(fmt.Sprintf("input order %d", i), func(t *testing.T) {
			e := newTestEngine(fakeRates{}, fakeIndex{})

			report, err := e.ComputeTax(context.Background(), history, nil, 2024)
			require.NoError(t, err)

			// Consumes exclusively from the January lot: (50-10)*3 = 120.
			assert.InDelta(t, 120, report.ProfitLossBySymbol["GARAN"], 1e-9)
		})
	}
}

func TestComputeTax_CrossYearCarryOver(t *testing.T) {
	e := newTestEngine(fakeRates{}, fakeIndex{})

	report, err := e.ComputeTax(context.Background(), []model.Transaction{
		buy("MSFT", 10, 100, "2022-03-01"),
		sell("MSFT", 10, 150, "2024-06-01"),
		// The lot is gone; this second sale has nothing to match.
		sell("MSFT", 5, 200, "2024-07-01"),
	}, nil, 2024)
	require.NoError(t, err)

	assert.InDelta(t, 500, report.ProfitLossBySymbol["MSFT"], 1e-9)
	assert.Equal(t, []string{"MSFT"}, report.MissingBuyTransactions)
}

func TestComputeTax_SaleOutsideTaxYearConsumesLots(t *testing.T) {
	e := newTestEngine(fakeRates{}, fakeIndex{})

	report, err := e.ComputeTax(context.Background(), []model.Transaction{
		buy("VEST", 10, 10, "2023-01-10"),
		// Outside the 2024 window: consumes half the lot, counts nothing.
		sell("VEST", 5, 20, "2023-06-10"),
		sell("VEST", 5, 30, "2024-06-10"),
	}, nil, 2024)
	require.NoError(t, err)

	// Only the 2024 sale is counted: (30-10)*5 = 100.
	assert.InDelta(t, 100, report.ProfitLossBySymbol["VEST"], 1e-9)
	assert.InDelta(t, 100, report.TotalProfitLoss, 1e-9)
	assert.Empty(t, report.MissingBuyTransactions)
}

func TestComputeTax_UnmatchedSale(t *testing.T) {
	e := newTestEngine(fakeRates{}, fakeIndex{})

	report, err := e.ComputeTax(context.Background(), []model.Transaction{
		sell("GHOST", 5, 100, "2024-03-01"),
		sell("GHOST", 5, 100, "2024-04-01"),
		buy("AAPL", 10, 100, "2024-01-01"),
		sell("AAPL", 10, 150, "2024-06-01"),
	}, nil, 2024)
	require.NoError(t, err)

	// Flagged once, deduplicated, and no phantom profit or loss.
	assert.Equal(t, []string{"GHOST"}, report.MissingBuyTransactions)
	assert.NotContains(t, report.ProfitLossBySymbol, "GHOST")
	assert.InDelta(t, 500, report.ProfitLossBySymbol["AAPL"], 1e-9)
	assert.InDelta(t, 500, report.TotalProfitLoss, 1e-9)
}

func TestComputeTax_NetProfitAndLossPerSaleEvent(t *testing.T) {
	e := newTestEngine(fakeRates{}, fakeIndex{})

	report, err := e.ComputeTax(context.Background(), []model.Transaction{
		buy("TUPRS", 10, 100, "2024-01-02"),
		sell("TUPRS", 5, 150, "2024-03-01"),
		sell("TUPRS", 5, 50, "2024-05-01"),
	}, nil, 2024)
	require.NoError(t, err)

	// One winning and one losing sale on the same symbol feed both buckets.
	assert.InDelta(t, 250, report.TotalProfit, 1e-9)
	assert.InDelta(t, 250, report.TotalLoss, 1e-9)
	assert.InDelta(t, 0, report.ProfitLossBySymbol["TUPRS"], 1e-9)
	assert.Contains(t, report.ProfitLossBySymbol, "TUPRS")
}

func TestComputeTax_CurrencyConversion(t *testing.T) {
	rates := fakeRates{
		"2024-02-01": 30,
		"2024-08-01": 35,
	}
	e := newTestEngine(rates, fakeIndex{})

	usdBuy := buy("NVDA", 10, 10, "2024-02-01")
	usdBuy.Currency = model.CurrencyUSD
	usdSell := sell("NVDA", 10, 10, "2024-08-01")
	usdSell.Currency = model.CurrencyUSD
	usdSell.TransactionFee = 5

	report, err := e.ComputeTax(context.Background(), []model.Transaction{usdBuy, usdSell}, nil, 2024)
	require.NoError(t, err)

	// Unit cost 10*30=300 TRY, sale price 10*35=350 TRY: profit 500 TRY.
	assert.InDelta(t, 500, report.ProfitLossBySymbol["NVDA"], 1e-9)
	// Fee converted at the sell date: 5*35=175 TRY.
	assert.InDelta(t, 175, report.TotalCommission, 1e-9)
	assert.InDelta(t, 325, report.TotalProfitLossAfterCommissions, 1e-9)
}

func TestComputeTax_MissingRatePassesAmountThrough(t *testing.T) {
	e := newTestEngine(fakeRates{}, fakeIndex{})

	usdBuy := buy("AMD", 10, 100, "2024-02-01")
	usdBuy.Currency = model.CurrencyUSD
	usdSell := sell("AMD", 10, 150, "2024-08-01")
	usdSell.Currency = model.CurrencyUSD

	report, err := e.ComputeTax(context.Background(), []model.Transaction{usdBuy, usdSell}, nil, 2024)
	require.NoError(t, err)

	// No rates stored: amounts are used unconverted rather than failing.
	assert.InDelta(t, 500, report.ProfitLossBySymbol["AMD"], 1e-9)
}

func TestComputeTax_CommissionsOnlyForTaxYear(t *testing.T) {
	e := newTestEngine(fakeRates{}, fakeIndex{})

	early := buy("SISE", 10, 10, "2023-05-01")
	early.TransactionFee = 7
	inYear := sell("SISE", 10, 20, "2024-05-01")
	inYear.TransactionFee = 3

	report, err := e.ComputeTax(context.Background(), []model.Transaction{early, inYear}, nil, 2024)
	require.NoError(t, err)

	assert.InDelta(t, 3, report.TotalCommission, 1e-9)
	assert.InDelta(t, 100, report.TotalProfitLoss, 1e-9)
	assert.InDelta(t, 97, report.TotalProfitLossAfterCommissions, 1e-9)
}

func TestComputeTax_DividendAggregation(t *testing.T) {
	rates := fakeRates{"2024-09-10": 34}
	e := newTestEngine(rates, fakeIndex{})

	dividends := []model.Dividend{
		{Symbol: "KO", PaymentDate: day("2024-03-15"), GrossAmount: 100, TaxWithheld: 15, NetAmount: 85, Currency: model.CurrencyTRY},
		{Symbol: "KO", PaymentDate: day("2024-06-15"), GrossAmount: 50, TaxWithheld: 7.5, NetAmount: 42.5, Currency: model.CurrencyTRY},
		{Symbol: "PG", PaymentDate: day("2024-09-10"), GrossAmount: 10, TaxWithheld: 1, NetAmount: 9, Currency: model.CurrencyUSD},
		// Outside the tax-year window, must be ignored.
		{Symbol: "KO", PaymentDate: day("2023-12-15"), GrossAmount: 999, TaxWithheld: 0, NetAmount: 999, Currency: model.CurrencyTRY},
	}

	report, err := e.ComputeTax(context.Background(), nil, dividends, 2024)
	require.NoError(t, err)

	summary := report.DividendSummary
	assert.InDelta(t, 150, summary.DividendsBySymbol["KO"], 1e-9)
	assert.InDelta(t, 340, summary.DividendsBySymbol["PG"], 1e-9)
	assert.InDelta(t, 490, summary.TotalGrossAmount, 1e-9)
	assert.InDelta(t, 56.5, summary.TotalTaxWithheld, 1e-9)
	assert.InDelta(t, 433.5, summary.TotalNetAmount, 1e-9)

	// Gross dividends are part of taxable income.
	assert.InDelta(t, 490, report.TotalTaxableIncome, 1e-9)
}

func TestComputeTax_EmptyHistory(t *testing.T) {
	e := newTestEngine(fakeRates{}, fakeIndex{})

	report, err := e.ComputeTax(context.Background(), nil, nil, 2024)
	require.NoError(t, err)

	assert.NotNil(t, report.ProfitLossBySymbol)
	assert.Empty(t, report.ProfitLossBySymbol)
	assert.NotNil(t, report.DividendSummary.DividendsBySymbol)
	assert.Zero(t, report.TotalProfit)
	assert.Zero(t, report.TotalLoss)
	assert.Zero(t, report.TotalProfitLoss)
	assert.Zero(t, report.TotalProfitLossAfterCommissions)
	assert.Zero(t, report.TotalTaxableIncome)
	assert.Nil(t, report.MissingBuyTransactions)
}

func TestComputeTax_ZeroQuantityRecordsSkipped(t *testing.T) {
	e := newTestEngine(fakeRates{}, fakeIndex{})

	report, err := e.ComputeTax(context.Background(), []model.Transaction{
		buy("EREGL", 0, 100, "2024-01-01"),
		sell("EREGL", 0, 150, "2024-06-01"),
	}, nil, 2024)
	require.NoError(t, err)

	assert.Empty(t, report.ProfitLossBySymbol)
	assert.Empty(t, report.MissingBuyTransactions)
}
