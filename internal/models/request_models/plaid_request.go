package request_models

type ExchangePublicTokenRequest struct {
	PublicToken string `json:"public_token" binding:"required"`
}

type GetBalanceRequest struct {
	AccessToken string `json:"access_token" binding:"required"`
}
