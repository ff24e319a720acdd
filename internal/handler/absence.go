package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"absence-calendar-bot/internal/calendar"
	"absence-calendar-bot/internal/models"
	"absence-calendar-bot/internal/render"
	"absence-calendar-bot/internal/service"
	"absence-calendar-bot/pkg/week"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

const addAbsenceUsage = `📝 Добавление отсутствия

Формат команды:
/addabsence имя тип начало конец

Пример:
/addabsence Alice Krankheit 2024-03-11 2024-03-12
→ Alice болеет с 11 по 12 марта 2024

Типы: Krankheit, Unfall, Other`

// showAbsences показывает отсутствия, сгруппированные по людям
func (h *Handler) showAbsences(log *logrus.Entry, message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID
	name := strings.TrimSpace(args)

	var (
		grouping *calendar.Grouping
		err      error
	)
	if name == "" {
		grouping, err = h.absenceService.Grouped()
	} else {
		var absences []models.Absence
		absences, err = h.absenceService.ListPersonAbsences(name)
		grouping = calendar.GroupBySurname(absences)
	}
	if err != nil {
		log.WithError(err).Error("Failed to get absences")
		h.reply(log, chatID, "❌ Ошибка получения данных: "+err.Error())
		return
	}

	h.reply(log, chatID, render.Absences(grouping))
}

// addAbsence добавляет отсутствие (только администратор)
func (h *Handler) addAbsence(log *logrus.Entry, message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	if !h.config.IsAdmin(chatID) {
		log.WithField("chat_id", chatID).Warn("Unauthorized access to addabsence command")
		h.reply(log, chatID, "❌ Доступ запрещен. Эта команда только для администраторов.")
		return
	}

	parts := strings.Fields(args)
	if len(parts) < 4 {
		h.reply(log, chatID, addAbsenceUsage)
		return
	}

	// имя может состоять из нескольких слов
	n := len(parts)
	name := strings.Join(parts[:n-3], " ")

	absenceType, err := models.ParseAbsenceType(parts[n-3])
	if err != nil {
		h.reply(log, chatID, "❌ Неизвестный тип. Используйте Krankheit, Unfall или Other.")
		return
	}

	loc := h.calendarService.Location()
	start, err := week.ParseDate(parts[n-2], loc)
	if err != nil {
		h.reply(log, chatID, "❌ Ошибка парсинга даты начала: "+err.Error())
		return
	}
	end, err := week.ParseDate(parts[n-1], loc)
	if err != nil {
		h.reply(log, chatID, "❌ Ошибка парсинга даты окончания: "+err.Error())
		return
	}

	absence, err := h.absenceService.AddAbsence(name, absenceType, week.FormatDate(start), week.FormatDate(end))
	if err != nil {
		log.WithError(err).Warn("Failed to add absence")
		h.reply(log, chatID, "❌ Ошибка добавления отсутствия: "+describe(err))
		return
	}

	h.reply(log, chatID, fmt.Sprintf(`✅ Отсутствие добавлено!

🆔 ID: %d
👤 %s
%s %s
📅 Период: %s (%d дн.)`,
		absence.ID,
		absence.PersonName,
		absence.Type.Marker(), absence.Type.Label(),
		absence.DisplayRange(), absence.Days()))
}

// deleteAbsence удаляет отсутствие по ID (только администратор)
func (h *Handler) deleteAbsence(log *logrus.Entry, message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	if !h.config.IsAdmin(chatID) {
		log.WithField("chat_id", chatID).Warn("Unauthorized access to deleteabsence command")
		h.reply(log, chatID, "❌ Доступ запрещен. Эта команда только для администраторов.")
		return
	}

	id, err := strconv.ParseUint(strings.TrimSpace(args), 10, 32)
	if err != nil {
		h.reply(log, chatID, "❌ Неверный формат ID. Используйте: /deleteabsence ID")
		return
	}

	absence, err := h.absenceService.DeleteAbsence(uint(id))
	if err != nil {
		log.WithError(err).Warn("Failed to delete absence")
		h.reply(log, chatID, "❌ Ошибка удаления: "+describe(err))
		return
	}

	h.reply(log, chatID, fmt.Sprintf("🗑️ Удалено: #%d %s, %s", absence.ID, absence.PersonName, absence.DisplayRange()))
}

// describe переводит ошибки предметной области в текст для пользователя
func describe(err error) string {
	switch {
	case errors.Is(err, models.ErrEmptyPersonName):
		return "не указано имя"
	case errors.Is(err, models.ErrReversedRange):
		return "дата окончания раньше даты начала"
	case errors.Is(err, models.ErrInvalidDate):
		return "неверная дата"
	case errors.Is(err, models.ErrUnknownAbsenceType):
		return "неизвестный тип отсутствия"
	case errors.Is(err, service.ErrPeriodConflict):
		return "период пересекается с существующим отсутствием"
	case errors.Is(err, service.ErrAbsenceNotFound):
		return "запись не найдена"
	}
	return err.Error()
}
