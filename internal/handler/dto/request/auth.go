package request

type TokenRequest struct {
	APIKey string `json:"api_key" binding:"required"`
}
