package model

import "time"

// ExchangeRate is the TRY price of one USD effective on a calendar date.
type ExchangeRate struct {
	Date time.Time `json:"date"`
	Rate float64   `json:"rate"`
}

// InflationIndex is one monthly value of the Yİ-ÜFE producer-price index.
// Only ratios between values are used, never the absolute level.
type InflationIndex struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Value float64    `json:"value"`
}
