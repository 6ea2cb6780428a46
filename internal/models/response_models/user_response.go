package response_models

import "exodus/internal/models/db_models"

// UserResponse is the exported representation of a user. The password hash
// and the aggregator access token never leave the server.
type UserResponse struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Address        string `json:"address,omitempty"`
	BitcoinAddress string `json:"bitcoin_address,omitempty"`
}

func NewUserResponse(user *db_models.User) UserResponse {
	return UserResponse{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Address:        user.Address,
		BitcoinAddress: user.BitcoinAddress,
	}
}
