package model

// DividendSummary aggregates dividend income for the tax year,
// normalized to TRY. The per-symbol breakdown tracks gross amounts.
type DividendSummary struct {
	TotalGrossAmount  float64            `json:"total_gross_amount"`
	TotalTaxWithheld  float64            `json:"total_tax_withheld"`
	TotalNetAmount    float64            `json:"total_net_amount"`
	DividendsBySymbol map[string]float64 `json:"dividends_by_symbol"`
}

// TaxReport is the full result of one tax-year computation. All monetary
// fields are in TRY. TotalLoss is a positive magnitude. The four totals
// and the per-symbol map are always present, even when zero;
// MissingBuyTransactions is omitted when no symbol was flagged.
type TaxReport struct {
	TaxYear                         int                `json:"tax_year"`
	ProfitLossBySymbol              map[string]float64 `json:"profit_loss_by_symbol"`
	TotalProfit                     float64            `json:"total_profit"`
	TotalLoss                       float64            `json:"total_loss"`
	TotalProfitLoss                 float64            `json:"total_profit_loss"`
	TotalCommission                 float64            `json:"total_commission"`
	TotalProfitLossAfterCommissions float64            `json:"total_profit_loss_after_commissions"`
	DividendSummary                 DividendSummary    `json:"dividend_summary"`
	TotalTaxableIncome              float64            `json:"total_taxable_income"`
	MissingBuyTransactions          []string           `json:"missingBuyTransactions,omitempty"`
}
