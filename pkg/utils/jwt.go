package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the session credential payload. It carries everything the
// browser app needs to render the dashboard without another round trip.
type Claims struct {
	UserID         uint   `json:"id"`
	Email          string `json:"email"`
	Name           string `json:"name"`
	Address        string `json:"address,omitempty"`
	BitcoinAddress string `json:"bitcoin_address,omitempty"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies session tokens with a process-wide secret.
// There is no rotation or revocation list: a token stays valid until its
// expiry, and logout is purely client-side cookie deletion.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

func (t *TokenIssuer) Issue(userID uint, email, name, address, bitcoinAddress string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:         userID,
		Email:          email,
		Name:           name,
		Address:        address,
		BitcoinAddress: bitcoinAddress,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

func (t *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
