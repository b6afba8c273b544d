package request

type UpsertExchangeRateRequest struct {
	Date string  `json:"date"`
	Rate float64 `json:"rate"`
}

type UpsertInflationIndexRequest struct {
	Year  int     `json:"year"`
	Month int     `json:"month"`
	Value float64 `json:"value"`
}
