package handler

import (
	"strings"

	"absence-calendar-bot/internal/config"
	"absence-calendar-bot/internal/service"
	"absence-calendar-bot/pkg/telegram"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	sender          telegram.Sender
	absenceService  *service.AbsenceService
	calendarService *service.CalendarService
	config          *config.BotConfig
	logger          *logrus.Logger
}

func NewHandler(
	sender telegram.Sender,
	absenceService *service.AbsenceService,
	calendarService *service.CalendarService,
	cfg *config.BotConfig,
	logger *logrus.Logger,
) *Handler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Handler{
		sender:          sender,
		absenceService:  absenceService,
		calendarService: calendarService,
		config:          cfg,
		logger:          logger,
	}
}

func (h *Handler) HandleUpdates(updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		h.HandleUpdate(update)
	}
}

// HandleUpdate обрабатывает одно обновление
func (h *Handler) HandleUpdate(update tgbotapi.Update) {
	log := h.logger.WithFields(logrus.Fields{
		"update_id":  update.UpdateID,
		"request_id": uuid.NewString(),
	})

	// Обработка callback query (для inline кнопок)
	if update.CallbackQuery != nil {
		h.handleCallbackQuery(log, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		return
	}

	h.handleMessage(log, update.Message)
}

// handleCallbackQuery обрабатывает кнопки навигации по неделям
func (h *Handler) handleCallbackQuery(log *logrus.Entry, callback *tgbotapi.CallbackQuery) {
	// Отвечаем на callback (убираем "часики" у кнопки)
	defer func() {
		if _, err := h.sender.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
			log.WithError(err).Warn("Failed to answer callback")
		}
	}()

	if callback.Message == nil {
		return
	}
	chatID := callback.Message.Chat.ID
	data := callback.Data

	log.WithFields(logrus.Fields{"chat_id": chatID, "data": data}).Info("Callback received")

	switch {
	case strings.HasPrefix(data, callbackWeek):
		h.editWeek(log, chatID, callback.Message.MessageID, strings.TrimPrefix(data, callbackWeek))
	case strings.HasPrefix(data, callbackWeekHTML):
		h.sendWeekHTML(log, chatID, strings.TrimPrefix(data, callbackWeekHTML))
	default:
		log.WithField("data", data).Warn("Unknown callback")
	}
}

func (h *Handler) handleMessage(log *logrus.Entry, message *tgbotapi.Message) {
	if message.Chat == nil {
		return
	}

	username := ""
	if message.From != nil {
		username = message.From.UserName
	}
	log.Infof("[%s] %s", username, message.Text)

	if message.IsCommand() {
		h.handleCommand(log, message)
		return
	}

	h.reply(log, message.Chat.ID, "Используйте /help для списка команд.")
}

// reply отправляет простое текстовое сообщение
func (h *Handler) reply(log *logrus.Entry, chatID int64, text string) {
	h.send(log, tgbotapi.NewMessage(chatID, text))
}

func (h *Handler) send(log *logrus.Entry, c tgbotapi.Chattable) {
	if _, err := h.sender.Send(c); err != nil {
		log.WithError(err).Error("Failed to send message")
	}
}
