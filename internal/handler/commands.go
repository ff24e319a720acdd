package handler

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

const helpText = `📅 Календарь отсутствий

Команды:
/week [дата] - календарь недели (по умолчанию текущей)
/weekhtml [дата] - календарь недели HTML-файлом
/absences [имя] - все отсутствия по людям
/legend - цвета типов отсутствия

Для администратора:
/addabsence имя тип начало конец
/deleteabsence ID

Типы: Krankheit, Unfall, Other
Даты: ГГГГ-ММ-ДД или ДД.ММ.ГГГГ`

func (h *Handler) handleCommand(log *logrus.Entry, message *tgbotapi.Message) {
	command := message.Command()
	args := message.CommandArguments()

	switch command {
	case "start", "help":
		h.reply(log, message.Chat.ID, helpText)
	case "legend":
		h.showLegend(log, message)
	case "week", "kw":
		h.showWeek(log, message, args)
	case "weekhtml":
		h.sendWeekHTML(log, message.Chat.ID, args)
	case "absences":
		h.showAbsences(log, message, args)
	case "addabsence":
		h.addAbsence(log, message, args)
	case "deleteabsence":
		h.deleteAbsence(log, message, args)
	default:
		h.reply(log, message.Chat.ID, "❌ Неизвестная команда. Используйте /help для списка команд.")
	}
}
