package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout - формат дат отсутствия
const DateLayout = "2006-01-02"

var (
	ErrEmptyPersonName = errors.New("person name is empty")
	ErrInvalidDate     = errors.New("invalid calendar date")
	ErrReversedRange   = errors.New("end date is before start date")
)

// Absence - период отсутствия сотрудника. После создания не изменяется.
type Absence struct {
	ID         uint        `gorm:"primaryKey" json:"id,omitempty"`
	PersonName string      `gorm:"type:varchar(100);not null;index" json:"surname"`
	Type       AbsenceType `gorm:"type:varchar(20);not null" json:"absence"`
	StartDate  string      `gorm:"type:varchar(10);not null;index" json:"d_start"`
	EndDate    string      `gorm:"type:varchar(10);not null;index" json:"d_end"`
	CreatedAt  time.Time   `json:"-"`
	UpdatedAt  time.Time   `json:"-"`
}

func (Absence) TableName() string {
	return "absences"
}

// NewAbsence создает отсутствие с проверкой входных данных
func NewAbsence(personName string, absenceType AbsenceType, startDate, endDate string) (Absence, error) {
	a := Absence{
		PersonName: strings.TrimSpace(personName),
		Type:       absenceType,
		StartDate:  strings.TrimSpace(startDate),
		EndDate:    strings.TrimSpace(endDate),
	}
	if err := a.Validate(); err != nil {
		return Absence{}, err
	}
	return a, nil
}

// Validate проверяет имя, тип и порядок дат
func (a *Absence) Validate() error {
	if strings.TrimSpace(a.PersonName) == "" {
		return ErrEmptyPersonName
	}
	if !a.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownAbsenceType, string(a.Type))
	}

	start, err := time.Parse(DateLayout, a.StartDate)
	if err != nil {
		return fmt.Errorf("%w: start %q", ErrInvalidDate, a.StartDate)
	}
	end, err := time.Parse(DateLayout, a.EndDate)
	if err != nil {
		return fmt.Errorf("%w: end %q", ErrInvalidDate, a.EndDate)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: %s > %s", ErrReversedRange, a.StartDate, a.EndDate)
	}
	return nil
}

// Covers проверяет, входит ли дата (YYYY-MM-DD) в период включительно.
// ISO-даты сравниваются как строки.
func (a *Absence) Covers(date string) bool {
	return a.StartDate <= date && date <= a.EndDate
}

// Overlaps проверяет пересечение с интервалом [start, end]
func (a *Absence) Overlaps(start, end string) bool {
	return a.StartDate <= end && start <= a.EndDate
}

// Days возвращает длительность периода в календарных днях
func (a *Absence) Days() int {
	start, err := time.Parse(DateLayout, a.StartDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse(DateLayout, a.EndDate)
	if err != nil || end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// DisplayRange - строка "начало - конец"
func (a *Absence) DisplayRange() string {
	return a.StartDate + " - " + a.EndDate
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
