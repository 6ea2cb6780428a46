package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"exodus/internal/models/request_models"
	"exodus/internal/models/response_models"
	"exodus/internal/services"
	"exodus/pkg/middleware"
	"exodus/pkg/utils"
)

// sessionMaxAge matches the token TTL: one hour.
const sessionMaxAge = 3600

type AuthController struct {
	authService services.AuthServiceInterface
}

func NewAuthController(authService services.AuthServiceInterface) *AuthController {
	return &AuthController{authService: authService}
}

// Signup registers a user, provisions a payout address when the node
// cooperates, and starts a session.
func (a *AuthController) Signup(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	user, token, err := a.authService.SignUp(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	setTokenCookie(c, token)
	c.JSON(http.StatusCreated, gin.H{"user": response_models.NewUserResponse(user)})
}

func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	user, token, err := a.authService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	setTokenCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"user": response_models.NewUserResponse(user)})
}

// Check verifies the session cookie and returns the embedded claims.
func (a *AuthController) Check(c *gin.Context) {
	token, err := c.Cookie(middleware.SessionCookieName)
	if err != nil || token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "No token provided."})
		return
	}

	claims, err := a.authService.Check(token)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": claims})
}

// Logout clears the session cookie. The token itself stays valid until its
// natural expiry; there is no server-side revocation.
func (a *AuthController) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, false)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// setTokenCookie mirrors the deployed cookie shape: path-wide, one hour,
// and not HTTP-only so the browser app can read it.
func setTokenCookie(c *gin.Context, token string) {
	c.SetCookie(middleware.SessionCookieName, token, sessionMaxAge, "/", "", false, false)
}
