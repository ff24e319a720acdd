package service

import (
	"errors"
	"fmt"
	"os"

	"absence-calendar-bot/internal/calendar"
	"absence-calendar-bot/internal/models"
	"absence-calendar-bot/internal/repository"

	json "github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPeriodConflict  = errors.New("period overlaps an existing absence")
	ErrAbsenceNotFound = errors.New("absence not found")
)

type AbsenceService struct {
	repo   repository.AbsenceRepository
	cache  *calendar.GroupingCache
	logger *logrus.Logger
}

func NewAbsenceService(repo repository.AbsenceRepository, logger *logrus.Logger) *AbsenceService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &AbsenceService{
		repo:   repo,
		cache:  calendar.NewGroupingCache(),
		logger: logger,
	}
}

// AddAbsence проверяет и сохраняет новый период отсутствия.
// Периоды одного человека не должны пересекаться.
func (s *AbsenceService) AddAbsence(personName string, absenceType models.AbsenceType, startDate, endDate string) (*models.Absence, error) {
	absence, err := models.NewAbsence(personName, absenceType, startDate, endDate)
	if err != nil {
		return nil, err
	}

	conflict, err := s.repo.CheckPeriodConflict(absence.PersonName, absence.StartDate, absence.EndDate)
	if err != nil {
		return nil, fmt.Errorf("check period conflict: %w", err)
	}
	if conflict {
		return nil, fmt.Errorf("%w: %s %s", ErrPeriodConflict, absence.PersonName, absence.DisplayRange())
	}

	if err := s.repo.Create(&absence); err != nil {
		return nil, fmt.Errorf("create absence: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"id":     absence.ID,
		"person": absence.PersonName,
		"type":   absence.Type,
		"range":  absence.DisplayRange(),
	}).Info("Absence created")

	return &absence, nil
}

// ListAbsences возвращает все отсутствия в порядке добавления
func (s *AbsenceService) ListAbsences() ([]models.Absence, error) {
	return s.repo.GetAll()
}

// ListPersonAbsences возвращает отсутствия одного человека
func (s *AbsenceService) ListPersonAbsences(personName string) ([]models.Absence, error) {
	return s.repo.GetByPerson(personName)
}

// Grouped возвращает отсутствия, сгруппированные по людям.
// Пока содержимое таблицы не меняется, группировка берется из кэша.
func (s *AbsenceService) Grouped() (*calendar.Grouping, error) {
	absences, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("load absences: %w", err)
	}
	return s.cache.Get(absences), nil
}

// DeleteAbsence удаляет период отсутствия
func (s *AbsenceService) DeleteAbsence(id uint) (*models.Absence, error) {
	absence, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if absence == nil {
		return nil, fmt.Errorf("%w: id %d", ErrAbsenceNotFound, id)
	}

	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrAbsenceNotFound, id)
		}
		return nil, err
	}

	s.logger.Infof("Deleted absence ID %d", id)
	return absence, nil
}

// LoadDemoData загружает демо-набор из JSON, если таблица пуста.
// Формат записи: {"surname", "absence", "d_start", "d_end"}.
func (s *AbsenceService) LoadDemoData(filePath string) (int, error) {
	count, err := s.repo.Count()
	if err != nil {
		return 0, err
	}
	if count > 0 {
		s.logger.WithField("existing", count).Info("Absences already present, demo data skipped")
		return 0, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("failed to read demo data: %w", err)
	}

	var absences []models.Absence
	if err := json.Unmarshal(data, &absences); err != nil {
		return 0, fmt.Errorf("failed to unmarshal demo data: %w", err)
	}

	for i := range absences {
		absences[i].ID = 0
		if err := absences[i].Validate(); err != nil {
			return 0, fmt.Errorf("demo record %d: %w", i, err)
		}
	}

	if err := s.repo.BulkCreate(absences); err != nil {
		return 0, err
	}

	return len(absences), nil
}
