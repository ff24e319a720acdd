package repository

import (
	"absence-calendar-bot/internal/models"

	"gorm.io/gorm"
)

type NonWorkingDayRepository interface {
	BulkCreate(days []models.NonWorkingDay) error
	GetBetween(startDate, endDate string) ([]models.NonWorkingDay, error)
	GetAll() ([]models.NonWorkingDay, error)
	DeleteAll() error
	IsNonWorkingDay(date string) (bool, error)
}

type GormNonWorkingDayRepository struct {
	db *gorm.DB
}

func NewGormNonWorkingDayRepository(db *gorm.DB) (*GormNonWorkingDayRepository, error) {
	// Автомиграция для таблицы non_working_days
	if err := db.AutoMigrate(&models.NonWorkingDay{}); err != nil {
		return nil, err
	}

	return &GormNonWorkingDayRepository{db: db}, nil
}

func (r *GormNonWorkingDayRepository) BulkCreate(days []models.NonWorkingDay) error {
	if len(days) == 0 {
		return nil
	}
	return r.db.Create(&days).Error
}

// GetBetween возвращает дни из диапазона [startDate, endDate], даты YYYY-MM-DD
func (r *GormNonWorkingDayRepository) GetBetween(startDate, endDate string) ([]models.NonWorkingDay, error) {
	var days []models.NonWorkingDay
	err := r.db.Where("date BETWEEN ? AND ?", startDate, endDate).
		Order("date ASC").
		Find(&days).Error
	return days, err
}

func (r *GormNonWorkingDayRepository) GetAll() ([]models.NonWorkingDay, error) {
	var days []models.NonWorkingDay
	err := r.db.Order("date ASC").Find(&days).Error
	return days, err
}

func (r *GormNonWorkingDayRepository) DeleteAll() error {
	return r.db.Exec("DELETE FROM non_working_days").Error
}

func (r *GormNonWorkingDayRepository) IsNonWorkingDay(date string) (bool, error) {
	var count int64
	err := r.db.Model(&models.NonWorkingDay{}).
		Where("date = ?", date).
		Count(&count).Error
	return count > 0, err
}
