package weekends

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

// WeekendJSON - структура производственного календаря (формат xmlcalendar)
type WeekendJSON struct {
	Year        int             `json:"year"`
	Months      []MonthWeekends `json:"months"`
	Transitions []Transition    `json:"transitions"`
	Statistic   Statistic       `json:"statistic"`
}

type MonthWeekends struct {
	Month int    `json:"month"`
	Days  string `json:"days"`
}

type Transition struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type Statistic struct {
	Workdays int     `json:"workdays"`
	Holidays int     `json:"holidays"`
	Hours40  float64 `json:"hours40"`
	Hours36  float64 `json:"hours36"`
	Hours24  float64 `json:"hours24"`
}

// Day - нерабочий день календаря
type Day struct {
	Date    time.Time
	Year    int
	Month   int
	Day     int
	Holiday bool
}

// ISO возвращает дату в формате YYYY-MM-DD
func (d Day) ISO() string {
	return d.Date.Format("2006-01-02")
}

// ParseWeekendsJSON читает файл календаря и возвращает нерабочие дни
func ParseWeekendsJSON(filePath string) ([]Day, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON file: %w", err)
	}
	defer f.Close()

	return ParseWeekends(f)
}

// ParseWeekends разбирает календарь из r.
// Суффикс "+" - перенесенный праздник, "*" - сокращенный рабочий день (пропускается).
func ParseWeekends(r io.Reader) ([]Day, error) {
	var weekendJSON WeekendJSON
	if err := json.NewDecoder(r).Decode(&weekendJSON); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	days := []Day{}

	for _, monthData := range weekendJSON.Months {
		if monthData.Month < 1 || monthData.Month > 12 {
			return nil, fmt.Errorf("invalid month %d", monthData.Month)
		}

		for _, dayStr := range strings.Split(monthData.Days, ",") {
			dayStr = strings.TrimSpace(dayStr)
			if dayStr == "" || strings.HasSuffix(dayStr, "*") {
				continue
			}

			holiday := strings.HasSuffix(dayStr, "+")
			dayStr = strings.TrimSuffix(dayStr, "+")

			day, err := strconv.Atoi(dayStr)
			if err != nil {
				return nil, fmt.Errorf("failed to parse day '%s' in month %d: %w",
					dayStr, monthData.Month, err)
			}

			date := time.Date(weekendJSON.Year, time.Month(monthData.Month), day, 0, 0, 0, 0, time.UTC)
			if date.Day() != day {
				return nil, fmt.Errorf("day %d out of range in month %d", day, monthData.Month)
			}

			days = append(days, Day{
				Date:    date,
				Year:    weekendJSON.Year,
				Month:   monthData.Month,
				Day:     day,
				Holiday: holiday,
			})
		}
	}

	return days, nil
}

// IsNonWorkingDay проверяет, есть ли дата в списке
func IsNonWorkingDay(days []Day, date time.Time) bool {
	for _, day := range days {
		if day.Date.Year() == date.Year() &&
			day.Date.Month() == date.Month() &&
			day.Date.Day() == date.Day() {
			return true
		}
	}
	return false
}
