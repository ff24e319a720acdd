package calendar

import (
	"time"

	"absence-calendar-bot/internal/models"
	"absence-calendar-bot/pkg/week"
)

// DayHeader - столбец календаря
type DayHeader struct {
	Date       time.Time
	ISO        string
	NonWorking bool
	Holiday    bool
}

// Cell - ячейка "человек x день"
type Cell struct {
	Date     string
	Absences []GroupedAbsence
	Color    string // цвет первого отсутствия, покрывающего день
}

// Empty - в этот день отсутствий нет
func (c Cell) Empty() bool {
	return len(c.Absences) == 0
}

// Row - строка календаря для одного человека
type Row struct {
	Name  string
	Cells [week.DaysInWeek]Cell
}

// LegendEntry - расшифровка цвета
type LegendEntry struct {
	Type  models.AbsenceType
	Color string
	Label string
}

// WeekView - готовые данные для отрисовки недели
type WeekView struct {
	Window week.Window
	Days   [week.DaysInWeek]DayHeader
	Rows   []Row
	Legend []LegendEntry
}

// BuildGrid соединяет окно недели с группировкой.
// daysOff - множество YYYY-MM-DD -> праздник (true) или выходной (false).
func BuildGrid(w week.Window, g *Grouping, daysOff map[string]bool) WeekView {
	view := WeekView{Window: w, Legend: Legend()}

	dates := w.DateStrings()
	for i, d := range w.Days {
		holiday, off := daysOff[dates[i]]
		view.Days[i] = DayHeader{
			Date:       d,
			ISO:        dates[i],
			NonWorking: off,
			Holiday:    off && holiday,
		}
	}

	for _, p := range g.People() {
		row := Row{Name: p.Name}
		for i, date := range dates {
			cell := Cell{Date: date}
			for _, a := range p.Absences {
				if a.Covers(date) {
					cell.Absences = append(cell.Absences, a)
				}
			}
			if len(cell.Absences) > 0 {
				cell.Color = cell.Absences[0].Type.Color()
			}
			row.Cells[i] = cell
		}
		view.Rows = append(view.Rows, row)
	}

	return view
}

// Legend возвращает расшифровку цветов для всех типов
func Legend() []LegendEntry {
	types := models.AbsenceTypes()
	out := make([]LegendEntry, 0, len(types))
	for _, t := range types {
		out = append(out, LegendEntry{Type: t, Color: t.Color(), Label: t.Label()})
	}
	return out
}

// AbsentCount - сколько людей отсутствует хотя бы один день недели
func (v WeekView) AbsentCount() int {
	n := 0
	for _, r := range v.Rows {
		for _, c := range r.Cells {
			if !c.Empty() {
				n++
				break
			}
		}
	}
	return n
}
