package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("FIREBASE_PROJECT_ID", "start-connect")
	t.Setenv("AUTH_RATE_PER_SEC", "2.5")
	t.Setenv("REDIS_ADDR", "")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, "start-connect", cfg.Firebase.ProjectID)
	assert.Equal(t, "https://identitytoolkit.googleapis.com/v1", cfg.Firebase.AuthEndpoint)
	assert.Equal(t, 2.5, cfg.RateLimit.PerSecond)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, 30, cfg.Jobs.RequestExpiryDays)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}

func TestGetEnvFloat(t *testing.T) {
	key := "TEST_FLOAT_VAR"

	os.Setenv(key, "0.5")
	assert.Equal(t, 0.5, getEnvFloat(key, 1))

	os.Setenv(key, "nope")
	assert.Equal(t, 1.0, getEnvFloat(key, 1))

	os.Unsetenv(key)
}
