package render

import (
	"strings"
	"testing"
	"time"

	"absence-calendar-bot/internal/calendar"
	"absence-calendar-bot/internal/models"
	"absence-calendar-bot/pkg/week"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleView() calendar.WeekView {
	w := week.Compute(time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC))
	g := calendar.GroupBySurname([]models.Absence{
		{ID: 1, PersonName: "Alice", Type: models.AbsenceTypeIllness, StartDate: "2024-03-11", EndDate: "2024-03-12"},
		{ID: 2, PersonName: "Bob <script>", Type: models.AbsenceTypeAccident, StartDate: "2024-03-15", EndDate: "2024-03-15"},
	})
	return calendar.BuildGrid(w, g, map[string]bool{"2024-03-16": false})
}

func TestText(t *testing.T) {
	out := Text(sampleView())
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "KW 11"))
	assert.Contains(t, lines[0], "Сб*")
	assert.NotContains(t, lines[0], "Вс*")
	assert.Contains(t, lines[1], "11.03")
	assert.Contains(t, lines[1], "17.03")
	assert.True(t, strings.HasPrefix(lines[2], "Alice"))
	assert.Equal(t, 2, strings.Count(lines[2], "🟩"))
	assert.Equal(t, 1, strings.Count(lines[3], "🟥"))
}

func TestText_Empty(t *testing.T) {
	w := week.Compute(time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC))
	out := Text(calendar.BuildGrid(w, calendar.GroupBySurname(nil), nil))

	assert.Contains(t, out, "Нет отсутствий")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Alice", truncate("Alice", 11))
	assert.Equal(t, "Maximilian…", truncate("Maximilian Mustermann", 11))
}

func TestLegend(t *testing.T) {
	out := Legend()

	assert.Contains(t, out, "🟩 Болезнь (Krankheit)")
	assert.Contains(t, out, "🟥 Несчастный случай (Unfall)")
	assert.Contains(t, out, "🟧 Другое (Other)")
}

func TestAbsences(t *testing.T) {
	g := calendar.GroupBySurname([]models.Absence{
		{ID: 1, PersonName: "Alice", Type: models.AbsenceTypeIllness, StartDate: "2024-03-11", EndDate: "2024-03-12"},
		{ID: 2, PersonName: "Bob", Type: models.AbsenceTypeOther, StartDate: "2024-03-15", EndDate: "2024-03-15"},
		{ID: 3, PersonName: "Alice", Type: models.AbsenceTypeAccident, StartDate: "2024-03-20", EndDate: "2024-03-22"},
	})

	out := Absences(g)

	assert.Contains(t, out, "(3, людей: 2)")
	assert.Contains(t, out, "#1 🟩 Болезнь: 2024-03-11 - 2024-03-12 (2 дн.)")
	assert.Contains(t, out, "#3 🟥 Несчастный случай: 2024-03-20 - 2024-03-22 (3 дн.)")
	assert.Less(t, strings.Index(out, "Alice"), strings.Index(out, "Bob"))

	assert.Equal(t, "📭 Отсутствий нет.", Absences(calendar.GroupBySurname(nil)))
}

func TestHTML(t *testing.T) {
	out, err := HTML(sampleView())
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, "<th>KW 11</th>")
	assert.Contains(t, html, "11.03.2024")
	assert.Contains(t, html, `<th class="off">16.03.2024</th>`)
	assert.Contains(t, html, "background-color: #CBFFA9")
	assert.Contains(t, html, "background-color: #FF9B9B")
	assert.Contains(t, html, "Krankheit: 2024-03-11 - 2024-03-12")
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "Bob &lt;script&gt;")
}
