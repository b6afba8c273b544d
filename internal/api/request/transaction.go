package request

type CreateTransactionRequest struct {
	Symbol           string  `json:"symbol"`
	OperationType    string  `json:"operation_type"`
	ExecutedQuantity float64 `json:"executed_quantity"`
	AveragePrice     float64 `json:"average_price"`
	Currency         string  `json:"currency"`
	TransactionFee   float64 `json:"transaction_fee"`
	Date             string  `json:"date"`
}
