package handler

import (
	"fmt"
	"html"
	"strings"
	"time"

	"absence-calendar-bot/internal/calendar"
	"absence-calendar-bot/internal/render"
	"absence-calendar-bot/pkg/week"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

const (
	callbackWeek     = "week:"
	callbackWeekHTML = "weekhtml:"
)

// showWeek показывает календарь недели текстом
func (h *Handler) showWeek(log *logrus.Entry, message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	view, err := h.buildWeek(args)
	if err != nil {
		log.WithError(err).Warn("Failed to build week view")
		h.reply(log, chatID, "❌ "+err.Error())
		return
	}

	msg := tgbotapi.NewMessage(chatID, weekText(view))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = weekKeyboard(view)
	h.send(log, msg)
}

// editWeek перерисовывает сообщение с календарем при навигации
func (h *Handler) editWeek(log *logrus.Entry, chatID int64, messageID int, date string) {
	view, err := h.buildWeek(date)
	if err != nil {
		log.WithError(err).Warn("Failed to build week view")
		h.reply(log, chatID, "❌ "+err.Error())
		return
	}

	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, weekText(view), weekKeyboard(view))
	edit.ParseMode = tgbotapi.ModeHTML
	h.send(log, edit)
}

// sendWeekHTML отправляет календарь недели HTML-файлом
func (h *Handler) sendWeekHTML(log *logrus.Entry, chatID int64, args string) {
	view, err := h.buildWeek(args)
	if err != nil {
		log.WithError(err).Warn("Failed to build week view")
		h.reply(log, chatID, "❌ "+err.Error())
		return
	}

	data, err := render.HTML(view)
	if err != nil {
		log.WithError(err).Error("Failed to render week HTML")
		h.reply(log, chatID, "❌ Ошибка формирования календаря")
		return
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  fmt.Sprintf("kw-%d-%s.html", view.Window.WeekNumber, week.FormatDate(view.Window.Start())),
		Bytes: data,
	})
	doc.Caption = fmt.Sprintf("KW %d: %s - %s",
		view.Window.WeekNumber,
		view.Window.Start().Format("02.01.2006"),
		view.Window.End().Format("02.01.2006"))
	h.send(log, doc)
}

func (h *Handler) showLegend(log *logrus.Entry, message *tgbotapi.Message) {
	h.reply(log, message.Chat.ID, "🎨 Цвета:\n"+render.Legend())
}

// buildWeek строит неделю для даты из аргумента или для сегодняшнего дня
func (h *Handler) buildWeek(arg string) (calendar.WeekView, error) {
	ref, err := h.resolveDate(arg)
	if err != nil {
		return calendar.WeekView{}, err
	}
	return h.calendarService.Week(ref)
}

func (h *Handler) resolveDate(arg string) (time.Time, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return h.calendarService.Today(), nil
	}
	return week.ParseDate(arg, h.calendarService.Location())
}

func weekText(view calendar.WeekView) string {
	return "<pre>" + html.EscapeString(render.Text(view)) + "</pre>"
}

func weekKeyboard(view calendar.WeekView) tgbotapi.InlineKeyboardMarkup {
	monday := view.Window.Start()
	prev := week.FormatDate(monday.AddDate(0, 0, -7))
	next := week.FormatDate(monday.AddDate(0, 0, 7))
	current := week.FormatDate(monday)

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️", callbackWeek+prev),
			tgbotapi.NewInlineKeyboardButtonData("HTML", callbackWeekHTML+current),
			tgbotapi.NewInlineKeyboardButtonData("▶️", callbackWeek+next),
		),
	)
}
