package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("MAILER_API_KEY", "")

	path := writeConfig(t, `
[database]
user = "termine"
password = "from-file"
dbname = "termine"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 45, cfg.Booking.SlotIntervalMinutes)
	assert.Equal(t, 120, cfg.Booking.LeadTimeMinutes)
	assert.True(t, cfg.Booking.EnforceLeadTime)
	assert.Equal(t, "Europe/Berlin", cfg.Booking.Timezone)
	assert.Equal(t, 1024, cfg.Cache.ScheduleEntries)
	assert.Equal(t, "host=localhost port=5432 user=termine password=from-file dbname=termine sslmode=disable", cfg.Database.DSN())
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("MAILER_API_KEY", "re_123")

	path := writeConfig(t, `
[database]
dbname = "termine"
password = "from-file"

[mailer]
url = "https://api.resend.com/emails"
api_key = "file-key"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "re_123", cfg.Mailer.APIKey)
}

func TestLoad_Invalid(t *testing.T) {
	path := writeConfig(t, `
[database]
dbname = "termine"

[booking]
slot_interval_minutes = 0
timezone = "Mars/Olympus"
`)

	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "slot_interval_minutes")
	assert.Contains(t, err.Error(), "booking.timezone")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
