package week

import (
	"fmt"
	"time"
)

// DaysInWeek - количество дней в окне недели
const DaysInWeek = 7

// DateLayout - формат календарной даты (ISO)
const DateLayout = "2006-01-02"

// Window - неделя с понедельника по воскресенье, содержащая опорную дату
type Window struct {
	WeekNumber int
	Days       [DaysInWeek]time.Time
}

// Compute возвращает окно недели для опорной даты.
// Время суток игнорируется, дни строятся в часовом поясе ref.
func Compute(ref time.Time) Window {
	monday := StartOfWeek(ref)

	var w Window
	for i := 0; i < DaysInWeek; i++ {
		w.Days[i] = monday.AddDate(0, 0, i)
	}
	w.WeekNumber = Number(ref)

	return w
}

// Number - приближенный номер недели: ceil(дней с 1 января / 7).
// Это не ISO-8601. 1 января формула дает 0, поднимаем до 1.
func Number(ref time.Time) int {
	elapsed := ref.YearDay() - 1
	n := (elapsed + DaysInWeek - 1) / DaysInWeek
	if n < 1 {
		n = 1
	}
	return n
}

// StartOfDay возвращает полночь того же календарного дня
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// StartOfWeek возвращает понедельник недели для даты
func StartOfWeek(date time.Time) time.Time {
	weekday := int(date.Weekday())
	// воскресенье (0) - последний день недели
	offset := weekday - 1
	if weekday == 0 {
		offset = 6
	}
	return StartOfDay(date).AddDate(0, 0, -offset)
}

// Start - понедельник окна
func (w Window) Start() time.Time {
	return w.Days[0]
}

// End - воскресенье окна
func (w Window) End() time.Time {
	return w.Days[DaysInWeek-1]
}

// Contains проверяет, попадает ли календарная дата в окно
func (w Window) Contains(date time.Time) bool {
	for _, d := range w.Days {
		if IsSameDay(d, date) {
			return true
		}
	}
	return false
}

// DateStrings возвращает дни окна в формате YYYY-MM-DD
func (w Window) DateStrings() []string {
	out := make([]string, 0, DaysInWeek)
	for _, d := range w.Days {
		out = append(out, FormatDate(d))
	}
	return out
}

// IsSameDay сравнивает только календарные даты
func IsSameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// FormatDate форматирует дату как YYYY-MM-DD
func FormatDate(date time.Time) string {
	return date.Format(DateLayout)
}

// ParseDate разбирает дату в форматах YYYY-MM-DD или ДД.ММ.ГГГГ в часовом поясе loc
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	formats := []string{
		DateLayout,
		"02.01.2006",
	}

	for _, format := range formats {
		if t, err := time.ParseInLocation(format, value, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD or DD.MM.YYYY", value)
}
