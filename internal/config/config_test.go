package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("BASE_ADMIN_CHAT_ID", "42")
	t.Setenv("DATABASE_URL", "absences.db")
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("BOT_DEBUG", "false")
	t.Setenv("WEEKENDS_FILE", "")
	t.Setenv("DEMO_DATA_FILE", "")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("TIMEZONE", "UTC")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.TelegramToken)
	assert.EqualValues(t, 42, cfg.BaseAdminChatID)
	assert.Equal(t, "absences.db", cfg.DatabaseURL)
	assert.Equal(t, "UTC", cfg.Location.String())
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
	assert.False(t, cfg.BotDebug)
	assert.Empty(t, cfg.WeekendsFile)
	assert.True(t, cfg.IsAdmin(42))
	assert.False(t, cfg.IsAdmin(7))
}

func TestLoad_Optional(t *testing.T) {
	setRequired(t)
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("BOT_DEBUG", "true")
	t.Setenv("WEEKENDS_FILE", "calendar/2024.json")
	t.Setenv("DEMO_DATA_FILE", "demo.json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
	assert.True(t, cfg.BotDebug)
	assert.Equal(t, "calendar/2024.json", cfg.WeekendsFile)
	assert.Equal(t, "demo.json", cfg.DemoDataFile)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("no token", func(t *testing.T) {
		setRequired(t)
		t.Setenv("TELEGRAM_BOT_TOKEN", "")
		_, err := Load()
		assert.ErrorIs(t, err, ErrMissingToken)
	})

	t.Run("bad admin id", func(t *testing.T) {
		setRequired(t)
		t.Setenv("BASE_ADMIN_CHAT_ID", "admin")
		_, err := Load()
		assert.ErrorIs(t, err, ErrMissingAdmin)
	})

	t.Run("no database", func(t *testing.T) {
		setRequired(t)
		t.Setenv("DATABASE_URL", "")
		_, err := Load()
		assert.ErrorIs(t, err, ErrMissingDatabase)
	})

	t.Run("bad timezone", func(t *testing.T) {
		setRequired(t)
		t.Setenv("TIMEZONE", "Mars/Olympus")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("bad log level", func(t *testing.T) {
		setRequired(t)
		t.Setenv("TIMEZONE", "UTC")
		t.Setenv("LOG_LEVEL", "loud")
		_, err := Load()
		assert.Error(t, err)
	})
}
