package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"exodus/pkg/utils"
)

// SessionCookieName is the cookie the browser app holds the session token in.
const SessionCookieName = "token"

const claimsKey = "claims"

// JWTAuthMiddleware gates a route group on a valid session cookie. The
// verified claims are attached to the request context for the handler.
func JWTAuthMiddleware(issuer *utils.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookieName)
		if err != nil || tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			c.Abort()
			return
		}

		claims, err := issuer.Verify(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(claimsKey, claims)
		c.Set("user_id", claims.UserID)
		c.Next()
	}
}

// CurrentClaims returns the session claims attached by JWTAuthMiddleware.
func CurrentClaims(c *gin.Context) (*utils.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*utils.Claims)
	return claims, ok
}
