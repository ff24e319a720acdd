package main

import (
	"os"
	"os/signal"
	"syscall"

	"absence-calendar-bot/internal/config"
	"absence-calendar-bot/internal/handler"
	"absence-calendar-bot/internal/repository"
	"absence-calendar-bot/internal/service"
	"absence-calendar-bot/pkg/telegram"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	logrus.Info("Initializing config...")
	cfg := config.GetBotConfig()
	logrus.SetLevel(cfg.LogLevel)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	logrus.Info("Config initialized...")

	logger := logrus.StandardLogger()

	db, err := gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		logrus.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatal("Failed to get database instance:", err)
	}

	absenceRepo, err := repository.NewGormAbsenceRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create absence repository")
	}

	nonWorkingDayRepo, err := repository.NewGormNonWorkingDayRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create non-working day repository")
	}

	absenceService := service.NewAbsenceService(absenceRepo, logger)
	nonWorkingDayService := service.NewNonWorkingDayService(nonWorkingDayRepo)
	calendarService := service.NewCalendarService(absenceService, nonWorkingDayService, cfg.Location, logger)

	// Производственный календарь для отметки выходных
	if cfg.WeekendsFile != "" {
		count, err := nonWorkingDayService.LoadFromJSON(cfg.WeekendsFile)
		if err != nil {
			logrus.WithError(err).Warn("Failed to load non-working days")
		} else {
			logrus.Infof("Loaded %d non-working days from %s", count, cfg.WeekendsFile)
		}
	}

	if cfg.DemoDataFile != "" {
		count, err := absenceService.LoadDemoData(cfg.DemoDataFile)
		if err != nil {
			logrus.WithError(err).Warn("Failed to load demo data")
		} else if count > 0 {
			logrus.Infof("Loaded %d demo absences", count)
		}
	}

	client, err := telegram.NewClient(cfg.TelegramToken, cfg.BotDebug)
	if err != nil {
		logrus.Fatal("Failed to create Telegram client:", err)
	}

	logrus.Infof("Authorized on account %s", client.Bot.Self.UserName)

	botHandler := handler.NewHandler(
		client.Bot,
		absenceService,
		calendarService,
		cfg,
		logger,
	)

	updates := client.Updates()

	// Обработка сигналов для graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go botHandler.HandleUpdates(updates)

	logrus.Info("Bot started. Press Ctrl+C to stop.")
	<-stop

	client.Stop()

	if err := sqlDB.Close(); err != nil {
		logrus.Infof("Error closing database: %v", err)
	}

	logrus.Info("Bot stopped gracefully")
}
