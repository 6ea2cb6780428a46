package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"exodus/internal/models/request_models"
	"exodus/internal/services"
	"exodus/pkg/middleware"
	"exodus/pkg/utils"
)

type PlaidController struct {
	plaidService services.PlaidServiceInterface
}

func NewPlaidController(plaidService services.PlaidServiceInterface) *PlaidController {
	return &PlaidController{plaidService: plaidService}
}

func (p *PlaidController) CreateLinkToken(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	data, err := p.plaidService.CreateLinkToken(c.Request.Context(), claims.UserID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

func (p *PlaidController) ExchangePublicToken(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var req request_models.ExchangePublicTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	exchange, err := p.plaidService.ExchangePublicToken(c.Request.Context(), claims.UserID, req.PublicToken)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, exchange)
}

func (p *PlaidController) LinkAccounts(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	accounts, err := p.plaidService.LinkAccounts(c.Request.Context(), claims.UserID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"accounts": accounts})
}

func (p *PlaidController) GetAccounts(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	accounts, err := p.plaidService.GetAccounts(c.Request.Context(), claims.UserID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}

func (p *PlaidController) GetBalance(c *gin.Context) {
	var req request_models.GetBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	balances, err := p.plaidService.GetBalance(c.Request.Context(), req.AccessToken)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"Balance": balances})
}
