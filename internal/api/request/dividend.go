package request

type CreateDividendRequest struct {
	Symbol      string  `json:"symbol"`
	PaymentDate string  `json:"payment_date"`
	GrossAmount float64 `json:"gross_amount"`
	TaxWithheld float64 `json:"tax_withheld"`
	NetAmount   float64 `json:"net_amount"`
	Currency    string  `json:"currency"`
}
