package services

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"BabyNest/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokenService("secret", time.Hour)
	account := models.Account{ID: "p-1", Name: "Anna", Email: "anna@example.com", Role: models.RoleParent}

	signed, err := tokens.Generate(account)
	require.NoError(t, err)

	claims, err := tokens.Validate(signed)
	require.NoError(t, err)
	assert.Equal(t, "p-1", claims.ID)
	assert.Equal(t, "anna@example.com", claims.Email)
	assert.Equal(t, models.RoleParent, claims.Role)
}

func TestTokenRejected(t *testing.T) {
	tokens := NewTokenService("secret", time.Hour)
	signed, err := tokens.Generate(models.Account{ID: "p-1", Role: models.RoleParent})
	require.NoError(t, err)

	expired := NewTokenService("secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	parts := strings.Split(signed, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	tests := []struct {
		name    string
		service *TokenService
		token   string
	}{
		{"wrong secret", NewTokenService("other", time.Hour), signed},
		{"tampered", tokens, tampered},
		{"expired", expired, signed},
		{"garbage", tokens, "not-a-token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.service.Validate(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestGenerateOTP(t *testing.T) {
	pattern := regexp.MustCompile(`^[2-9]{6}$`)
	for i := 0; i < 200; i++ {
		code, err := GenerateOTP()
		require.NoError(t, err)
		assert.Regexp(t, pattern, code)
	}
}

func TestGeneratePassword(t *testing.T) {
	pw, err := GeneratePassword()
	require.NoError(t, err)
	assert.Len(t, pw, 8)
	assert.NotContains(t, pw, "0")
	assert.NotContains(t, pw, "O")
}

func TestTrackingNumberFormat(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	for i := 0; i < 50; i++ {
		tracking, err := TrackingNumber(now)
		require.NoError(t, err)
		assert.Regexp(t, `^ORD-\d{10}$`, tracking)
	}
}
