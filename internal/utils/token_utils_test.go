package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueToken(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	signed, err := IssueToken("user-1", "secret", "shiftpay-dev", time.Hour, now)
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(signed, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}, jwt.WithIssuer("shiftpay-dev"))
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.True(t, claims.ExpiresAt.Time.Equal(now.Add(time.Hour)))
}

func TestIssueTokenRequiresUserAndSecret(t *testing.T) {
	_, err := IssueToken("", "secret", "", time.Hour, time.Now())
	assert.Error(t, err)
	_, err = IssueToken("user-1", "", "", time.Hour, time.Now())
	assert.Error(t, err)
}
