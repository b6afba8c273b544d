package request

type SetEvdsKeyRequest struct {
	APIKey string `json:"api_key"`
}
