package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.Issue(7, "ann@x.com", "Ann", "1 Main St", "tb1qexample")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "ann@x.com", claims.Email)
	assert.Equal(t, "Ann", claims.Name)
	assert.Equal(t, "1 Main St", claims.Address)
	assert.Equal(t, "tb1qexample", claims.BitcoinAddress)
}

func TestTokenIssuer_RejectsWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	other := NewTokenIssuer("another-secret", time.Hour)

	token, err := issuer.Issue(7, "ann@x.com", "Ann", "", "")
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_RejectsTamperedToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.Issue(7, "ann@x.com", "Ann", "", "")
	require.NoError(t, err)

	_, err = issuer.Verify(token + "tampered")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_RejectsExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Minute)

	token, err := issuer.Issue(7, "ann@x.com", "Ann", "", "")
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_RejectsEmptyToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	_, err := issuer.Verify("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
