package request_models

// PurchaseRequest asks to convert Amount of fiat from the linked bank
// account into BTCAmount of bitcoin sent to the user's payout address.
type PurchaseRequest struct {
	AccountID string  `json:"account_id" binding:"required"`
	BTCAmount float64 `json:"btc_amount" binding:"required,gt=0"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
}
