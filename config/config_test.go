package config

import (
	"context"
	"testing"
	"time"

	"BabyNest/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_HOST", "db.render.com")
	t.Setenv("DB_SSLMODE", "")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, 5*time.Minute, cfg.OTPTTL)
	assert.Equal(t, 168*time.Hour, cfg.JWTExpiresIn)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("OTP_TTL", "five minutes")

	_, err := Load()
	assert.Error(t, err)
}

func TestInitMailerDrivers(t *testing.T) {
	log := zap.NewNop()

	m, err := InitMailer(context.Background(), MailConfig{Driver: "log"}, log)
	require.NoError(t, err)
	assert.IsType(t, &services.LogMailer{}, m)

	m, err = InitMailer(context.Background(), MailConfig{Driver: "smtp", SMTPHost: "smtp.example.com", SMTPPort: "587", FromEmail: "no-reply@example.com"}, log)
	require.NoError(t, err)
	assert.IsType(t, &services.SMTPMailer{}, m)

	_, err = InitMailer(context.Background(), MailConfig{Driver: "smtp"}, log)
	assert.Error(t, err)

	_, err = InitMailer(context.Background(), MailConfig{Driver: "pigeon"}, log)
	assert.Error(t, err)
}

func TestInitStorageWithoutBucket(t *testing.T) {
	s, closeFn, err := InitStorage(context.Background(), "", "")
	require.NoError(t, err)
	assert.Nil(t, s)
	assert.NoError(t, closeFn())
}
