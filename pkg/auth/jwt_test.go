package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager("secret", "scheme-navigator", time.Hour)

	token, err := m.GenerateToken("ops", "admin")
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "scheme-navigator", claims.Issuer)
}

func TestJWTManager_Rejects(t *testing.T) {
	m := NewJWTManager("secret", "scheme-navigator", time.Hour)

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name: "garbage",
			token: func(t *testing.T) string {
				return "not-a-token"
			},
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				tok, err := NewJWTManager("other", "scheme-navigator", time.Hour).GenerateToken("ops", "admin")
				require.NoError(t, err)
				return tok
			},
		},
		{
			name: "wrong issuer",
			token: func(t *testing.T) string {
				tok, err := NewJWTManager("secret", "someone-else", time.Hour).GenerateToken("ops", "admin")
				require.NoError(t, err)
				return tok
			},
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				tok, err := NewJWTManager("secret", "scheme-navigator", -time.Minute).GenerateToken("ops", "admin")
				require.NoError(t, err)
				return tok
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.ValidateToken(tt.token(t))
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
