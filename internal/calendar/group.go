// Package calendar собирает недельный календарь отсутствий:
// группировка записей по людям и сетка "человек x день".
package calendar

import "absence-calendar-bot/internal/models"

// GroupedAbsence - отсутствие с готовой строкой периода для отображения
type GroupedAbsence struct {
	models.Absence
	DisplayRange string
}

// Person - человек и его отсутствия в исходном порядке
type Person struct {
	Name     string
	Absences []GroupedAbsence
}

// Grouping - упорядоченное отображение имя -> отсутствия.
// Порядок ключей - порядок первого появления во входных данных.
type Grouping struct {
	names []string
	index map[string]int
	dates [][]GroupedAbsence
}

// GroupBySurname группирует отсутствия по имени за один проход.
// Внутри группы порядок входа сохраняется.
func GroupBySurname(absences []models.Absence) *Grouping {
	g := &Grouping{index: make(map[string]int)}

	for _, a := range absences {
		i, ok := g.index[a.PersonName]
		if !ok {
			i = len(g.names)
			g.index[a.PersonName] = i
			g.names = append(g.names, a.PersonName)
			g.dates = append(g.dates, nil)
		}
		g.dates[i] = append(g.dates[i], GroupedAbsence{
			Absence:      a,
			DisplayRange: a.StartDate + " - " + a.EndDate,
		})
	}

	return g
}

// Names возвращает имена в порядке первого появления
func (g *Grouping) Names() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)
	return out
}

// Get возвращает отсутствия человека
func (g *Grouping) Get(name string) ([]GroupedAbsence, bool) {
	i, ok := g.index[name]
	if !ok {
		return nil, false
	}
	return g.dates[i], true
}

// People возвращает группы в виде списка людей
func (g *Grouping) People() []Person {
	people := make([]Person, 0, len(g.names))
	for i, name := range g.names {
		people = append(people, Person{Name: name, Absences: g.dates[i]})
	}
	return people
}

// Len - количество людей
func (g *Grouping) Len() int {
	return len(g.names)
}

// Total - общее количество отсутствий во всех группах
func (g *Grouping) Total() int {
	total := 0
	for _, d := range g.dates {
		total += len(d)
	}
	return total
}
