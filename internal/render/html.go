package render

import (
	"bytes"
	"html/template"
	"strings"

	"absence-calendar-bot/internal/calendar"
)

const weekTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>KW {{.Window.WeekNumber}}</title>
<style>
table { border-collapse: collapse; font-family: sans-serif; }
th, td { border: 1px solid #d4d4d8; padding: 6px 10px; font-size: 14px; }
thead { background: #f1f5f9; }
th.off { color: #94a3b8; }
td.name { font-weight: 600; }
</style>
</head>
<body>
<table>
<thead>
<tr>
<th>KW {{.Window.WeekNumber}}</th>
{{- range .Days}}
<th{{if .NonWorking}} class="off"{{end}}>{{.Date.Format "02.01.2006"}}</th>
{{- end}}
</tr>
</thead>
<tbody>
{{- range .Rows}}
<tr>
<td class="name">{{.Name}}</td>
{{- range .Cells}}
{{- if .Empty}}
<td></td>
{{- else}}
<td style="background-color: {{css .Color}}" title="{{ranges .Absences}}"></td>
{{- end}}
{{- end}}
</tr>
{{- end}}
</tbody>
</table>
<p>
{{- range .Legend}}
<span style="background-color: {{css .Color}}; padding: 2px 8px;">{{.Label}}</span>
{{- end}}
</p>
</body>
</html>
`

var weekTmpl = template.Must(template.New("week").Funcs(template.FuncMap{
	// цвета берутся только из фиксированной палитры
	"css": func(c string) template.CSS { return template.CSS(c) },
	"ranges": func(absences []calendar.GroupedAbsence) string {
		parts := make([]string, 0, len(absences))
		for _, a := range absences {
			parts = append(parts, string(a.Type)+": "+a.DisplayRange)
		}
		return strings.Join(parts, "; ")
	},
}).Parse(weekTemplate))

// HTML рисует неделю HTML-таблицей с цветными ячейками
func HTML(view calendar.WeekView) ([]byte, error) {
	var buf bytes.Buffer
	if err := weekTmpl.Execute(&buf, view); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
