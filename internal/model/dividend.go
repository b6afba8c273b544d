package model

import "time"

// Dividend represents a dividend payment received on a held instrument.
// NetAmount is trusted from the source statement; the engine does not
// re-derive it from gross and withheld.
type Dividend struct {
	ID          string    `json:"id"`
	Symbol      string    `json:"symbol"`
	PaymentDate time.Time `json:"paymentDate"`
	GrossAmount float64   `json:"grossAmount"`
	TaxWithheld float64   `json:"taxWithheld"`
	NetAmount   float64   `json:"netAmount"`
	Currency    string    `json:"currency"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}
