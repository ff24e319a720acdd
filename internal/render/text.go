// Package render превращает недельный календарь в текст для чата или HTML-таблицу.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"absence-calendar-bot/internal/calendar"
)

const (
	nameWidth = 12
	cellWidth = 6
)

var weekdayNames = [7]string{"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Вс"}

// Text рисует неделю моноширинной таблицей.
// Эмодзи-маркер считается шириной в два символа.
func Text(view calendar.WeekView) string {
	var b strings.Builder

	b.WriteString(pad(fmt.Sprintf("KW %d", view.Window.WeekNumber), nameWidth))
	for i, d := range view.Days {
		name := weekdayNames[i]
		if d.NonWorking {
			name += "*"
		}
		b.WriteString(pad(name, cellWidth))
	}
	b.WriteString("\n")

	b.WriteString(strings.Repeat(" ", nameWidth))
	for _, d := range view.Days {
		b.WriteString(pad(d.Date.Format("02.01"), cellWidth))
	}
	b.WriteString("\n")

	if len(view.Rows) == 0 {
		b.WriteString("\nНет отсутствий\n")
	}

	for _, row := range view.Rows {
		b.WriteString(pad(truncate(row.Name, nameWidth-1), nameWidth))
		for _, cell := range row.Cells {
			if cell.Empty() {
				b.WriteString(pad("·", cellWidth))
				continue
			}
			// маркер эмодзи занимает две позиции
			b.WriteString(cell.Absences[0].Type.Marker())
			b.WriteString(strings.Repeat(" ", cellWidth-2))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), " \n")
}

// Legend - расшифровка маркеров
func Legend() string {
	var parts []string
	for _, l := range calendar.Legend() {
		parts = append(parts, fmt.Sprintf("%s %s (%s)", l.Type.Marker(), l.Label, l.Type))
	}
	parts = append(parts, "* выходной")
	return strings.Join(parts, "\n")
}

// Absences форматирует группировку по людям
func Absences(g *calendar.Grouping) string {
	if g.Len() == 0 {
		return "📭 Отсутствий нет."
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("📋 Отсутствия (%d, людей: %d):", g.Total(), g.Len()))

	for _, p := range g.People() {
		lines = append(lines, "")
		lines = append(lines, "👤 "+p.Name)
		for _, a := range p.Absences {
			lines = append(lines, fmt.Sprintf("  #%d %s %s: %s (%d дн.)",
				a.ID, a.Type.Marker(), a.Type.Label(), a.DisplayRange, a.Days()))
		}
	}

	return strings.Join(lines, "\n")
}

func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-n)
}

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	r := []rune(s)
	return string(r[:width-1]) + "…"
}
