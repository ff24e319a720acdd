package service

import (
	"absence-calendar-bot/internal/models"
	"absence-calendar-bot/internal/repository"
	"absence-calendar-bot/pkg/weekends"

	"github.com/sirupsen/logrus"
)

type NonWorkingDayService struct {
	repo repository.NonWorkingDayRepository
}

func NewNonWorkingDayService(repo repository.NonWorkingDayRepository) *NonWorkingDayService {
	return &NonWorkingDayService{repo: repo}
}

// LoadFromJSON загружает выходные дни из JSON файла в базу данных
func (s *NonWorkingDayService) LoadFromJSON(filePath string) (int, error) {
	weekendDays, err := weekends.ParseWeekendsJSON(filePath)
	if err != nil {
		return 0, err
	}

	var nonWorkingDays []models.NonWorkingDay
	for _, wd := range weekendDays {
		nonWorkingDays = append(nonWorkingDays, models.NonWorkingDay{
			Date:    wd.ISO(),
			Year:    wd.Year,
			Month:   wd.Month,
			Day:     wd.Day,
			Holiday: wd.Holiday,
		})
	}

	// Удаляем старые записи (чтобы избежать дублирования)
	if err := s.repo.DeleteAll(); err != nil {
		logrus.Warnf("Failed to delete old non-working days: %v", err)
	}

	if err := s.repo.BulkCreate(nonWorkingDays); err != nil {
		return 0, err
	}

	return len(nonWorkingDays), nil
}

// DaysOffBetween возвращает дату -> признак праздника для диапазона
func (s *NonWorkingDayService) DaysOffBetween(startDate, endDate string) (map[string]bool, error) {
	days, err := s.repo.GetBetween(startDate, endDate)
	if err != nil {
		return nil, err
	}

	out := make(map[string]bool, len(days))
	for _, d := range days {
		out[d.Date] = d.Holiday
	}
	return out, nil
}
