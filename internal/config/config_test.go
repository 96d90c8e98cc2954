package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloodbank-backend/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validConfig = `
server:
  host: 0.0.0.0
  port: 8080
store:
  type: memory
jwt:
  secret: this-is-a-test-secret-of-32-chars!
log:
  level: debug
  format: text
`

func TestLoad(t *testing.T) {
	t.Run("Valid Memory Config", func(t *testing.T) {
		cfg, err := config.Load(writeConfig(t, validConfig))
		require.NoError(t, err)
		assert.Equal(t, "memory", cfg.Store.Type)
		assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddress())
	})

	t.Run("Defaults Applied", func(t *testing.T) {
		cfg, err := config.Load(writeConfig(t, validConfig))
		require.NoError(t, err)
		assert.Equal(t, 60, cfg.JWT.AccessTokenExpiry)
		assert.Equal(t, 60*24*7, cfg.JWT.RefreshTokenExpiry)
		assert.Equal(t, "0 0 1 * * *", cfg.Scheduler.CompletePastCamps)
		assert.Equal(t, "0 0 8 * * *", cfg.Scheduler.SendLowStockAlerts)
	})

	t.Run("Missing File", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("Short JWT Secret", func(t *testing.T) {
		_, err := config.Load(writeConfig(t, `
server:
  port: 8080
store:
  type: memory
jwt:
  secret: too-short
`))
		assert.ErrorContains(t, err, "at least 32 characters")
	})

	t.Run("Postgres Requires Database Settings", func(t *testing.T) {
		_, err := config.Load(writeConfig(t, `
server:
  port: 8080
store:
  type: postgres
jwt:
  secret: this-is-a-test-secret-of-32-chars!
`))
		assert.ErrorContains(t, err, "database host is required")
	})

	t.Run("Unknown Store Type", func(t *testing.T) {
		_, err := config.Load(writeConfig(t, `
server:
  port: 8080
store:
  type: sqlite
jwt:
  secret: this-is-a-test-secret-of-32-chars!
`))
		assert.ErrorContains(t, err, "unknown store type")
	})

	t.Run("Environment Overrides", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "env-supplied-secret-that-is-long-enough!")
		t.Setenv("STORE_TYPE", "memory")

		cfg, err := config.Load(writeConfig(t, `
server:
  port: 8080
store:
  type: memory
jwt:
  secret: this-is-a-test-secret-of-32-chars!
`))
		require.NoError(t, err)
		assert.Equal(t, "env-supplied-secret-that-is-long-enough!", cfg.JWT.Secret)
	})
}

func TestGetDatabaseConnectionString(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.User = "bank"
	cfg.Database.Password = "pw"
	cfg.Database.Host = "localhost"
	cfg.Database.Port = 5432
	cfg.Database.Database = "bloodbank"
	cfg.Database.SSLMode = "disable"

	assert.Equal(t, "postgres://bank:pw@localhost:5432/bloodbank?sslmode=disable",
		cfg.GetDatabaseConnectionString())
}
