package models

import (
	"errors"
	"fmt"
)

// AbsenceType - тип отсутствия. Закрытый набор значений.
type AbsenceType string

const (
	AbsenceTypeIllness  AbsenceType = "Krankheit"
	AbsenceTypeAccident AbsenceType = "Unfall"
	AbsenceTypeOther    AbsenceType = "Other"
)

// Цвета ячеек календаря по типу отсутствия
const (
	ColorIllness  = "#CBFFA9"
	ColorAccident = "#FF9B9B"
	ColorOther    = "#FFD6A5"
)

var ErrUnknownAbsenceType = errors.New("unknown absence type")

// AbsenceTypes возвращает все допустимые типы в порядке отображения
func AbsenceTypes() []AbsenceType {
	return []AbsenceType{AbsenceTypeIllness, AbsenceTypeAccident, AbsenceTypeOther}
}

// ColorFor возвращает цвет для типа отсутствия
func ColorFor(t AbsenceType) (string, error) {
	switch t {
	case AbsenceTypeIllness:
		return ColorIllness, nil
	case AbsenceTypeAccident:
		return ColorAccident, nil
	case AbsenceTypeOther:
		return ColorOther, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAbsenceType, string(t))
	}
}

// ParseAbsenceType разбирает тип из пользовательского ввода.
// Принимает теги и русские названия, регистр не важен.
func ParseAbsenceType(value string) (AbsenceType, error) {
	switch normalize(value) {
	case "krankheit", "illness", "болезнь", "больничный":
		return AbsenceTypeIllness, nil
	case "unfall", "accident", "травма", "несчастный":
		return AbsenceTypeAccident, nil
	case "other", "другое", "прочее":
		return AbsenceTypeOther, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAbsenceType, value)
}

// IsValid проверяет, что тип входит в закрытый набор
func (t AbsenceType) IsValid() bool {
	_, err := ColorFor(t)
	return err == nil
}

// Color - цвет ячейки. Для невалидного типа пустая строка.
func (t AbsenceType) Color() string {
	c, _ := ColorFor(t)
	return c
}

// Marker - цветной значок для текстового календаря
func (t AbsenceType) Marker() string {
	switch t {
	case AbsenceTypeIllness:
		return "🟩"
	case AbsenceTypeAccident:
		return "🟥"
	case AbsenceTypeOther:
		return "🟧"
	}
	return "⬜"
}

// Label - название типа для пользователя
func (t AbsenceType) Label() string {
	switch t {
	case AbsenceTypeIllness:
		return "Болезнь"
	case AbsenceTypeAccident:
		return "Несчастный случай"
	case AbsenceTypeOther:
		return "Другое"
	}
	return string(t)
}
