package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type BotConfig struct {
	TelegramToken   string
	BaseAdminChatID int64
	DatabaseURL     string
	WeekendsFile    string // производственный календарь, необязательно
	DemoDataFile    string // демо-набор отсутствий, необязательно
	Location        *time.Location
	LogLevel        logrus.Level
	BotDebug        bool
}

var (
	ErrMissingToken    = errors.New("could not get bot token")
	ErrMissingAdmin    = errors.New("could not get admin chat id")
	ErrMissingDatabase = errors.New("could not get db url")
)

var instance *BotConfig
var once sync.Once

// GetBotConfig загружает конфиг один раз, при ошибке завершает процесс
func GetBotConfig() *BotConfig {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			logrus.Warnf("error loading .env file: %s", err.Error())
		}

		cfg, err := Load()
		if err != nil {
			logrus.Fatal(err)
		}
		instance = cfg
	})

	return instance
}

// Load читает конфиг из переменных окружения
func Load() (*BotConfig, error) {
	cfg := &BotConfig{}

	cfg.TelegramToken = getEnv("TELEGRAM_BOT_TOKEN", "")
	if cfg.TelegramToken == "" {
		return nil, ErrMissingToken
	}

	cfg.BaseAdminChatID = getEnvAsInt("BASE_ADMIN_CHAT_ID", -2)
	if cfg.BaseAdminChatID == -2 {
		return nil, ErrMissingAdmin
	}

	cfg.DatabaseURL = getEnv("DATABASE_URL", "")
	if cfg.DatabaseURL == "" {
		return nil, ErrMissingDatabase
	}

	cfg.WeekendsFile = getEnv("WEEKENDS_FILE", "")
	cfg.DemoDataFile = getEnv("DEMO_DATA_FILE", "")
	cfg.BotDebug = getEnvAsBool("BOT_DEBUG", false)

	loc, err := time.LoadLocation(getEnv("TIMEZONE", "Local"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}
	cfg.Location = loc

	level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	return cfg, nil
}

// IsAdmin проверяет чат администратора
func (c *BotConfig) IsAdmin(chatID int64) bool {
	return c.BaseAdminChatID != 0 && c.BaseAdminChatID == chatID
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

func getEnvAsBool(name string, defaultVal bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}

	return defaultVal
}

func getEnvAsInt(name string, defaultVal int64) int64 {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseInt(valStr, 10, 64); err == nil {
		return val
	}

	return defaultVal
}
