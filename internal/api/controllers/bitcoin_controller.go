package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"exodus/internal/models/request_models"
	"exodus/internal/services"
	"exodus/pkg/middleware"
	"exodus/pkg/utils"
)

type BitcoinController struct {
	bitcoinService services.BitcoinServiceInterface
}

func NewBitcoinController(bitcoinService services.BitcoinServiceInterface) *BitcoinController {
	return &BitcoinController{bitcoinService: bitcoinService}
}

// GetBalance returns the user's BTC balance as a bare number.
func (b *BitcoinController) GetBalance(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	balance, err := b.bitcoinService.GetBalance(c.Request.Context(), claims.UserID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, balance)
}

// Purchase converts fiat into bitcoin and returns the broadcast
// transaction id.
func (b *BitcoinController) Purchase(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var req request_models.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	txID, err := b.bitcoinService.Purchase(c.Request.Context(), claims.UserID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, txID)
}
