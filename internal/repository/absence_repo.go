package repository

import (
	"errors"

	"absence-calendar-bot/internal/models"

	"gorm.io/gorm"
)

type AbsenceRepository interface {
	Create(absence *models.Absence) error
	BulkCreate(absences []models.Absence) error
	GetByID(id uint) (*models.Absence, error)
	GetAll() ([]models.Absence, error)
	GetByPerson(personName string) ([]models.Absence, error)
	GetOverlapping(startDate, endDate string) ([]models.Absence, error)
	CheckPeriodConflict(personName, startDate, endDate string) (bool, error)
	Count() (int64, error)
	Delete(id uint) error
	DeleteByPerson(personName string) (int64, error)
}

type GormAbsenceRepository struct {
	db *gorm.DB
}

func NewGormAbsenceRepository(db *gorm.DB) (*GormAbsenceRepository, error) {
	if err := db.AutoMigrate(&models.Absence{}); err != nil {
		return nil, err
	}
	return &GormAbsenceRepository{db: db}, nil
}

func (r *GormAbsenceRepository) Create(absence *models.Absence) error {
	return r.db.Create(absence).Error
}

func (r *GormAbsenceRepository) BulkCreate(absences []models.Absence) error {
	if len(absences) == 0 {
		return nil
	}
	return r.db.Create(&absences).Error
}

// GetByID возвращает nil, nil если запись не найдена
func (r *GormAbsenceRepository) GetByID(id uint) (*models.Absence, error) {
	var absence models.Absence
	err := r.db.First(&absence, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &absence, nil
}

// GetAll возвращает записи в порядке добавления
func (r *GormAbsenceRepository) GetAll() ([]models.Absence, error) {
	var absences []models.Absence
	err := r.db.Order("id ASC").Find(&absences).Error
	return absences, err
}

func (r *GormAbsenceRepository) GetByPerson(personName string) ([]models.Absence, error) {
	var absences []models.Absence
	err := r.db.Where("person_name = ?", personName).
		Order("id ASC").
		Find(&absences).Error
	return absences, err
}

// GetOverlapping возвращает записи, пересекающиеся с [startDate, endDate]
func (r *GormAbsenceRepository) GetOverlapping(startDate, endDate string) ([]models.Absence, error) {
	var absences []models.Absence
	err := r.db.Where("start_date <= ? AND end_date >= ?", endDate, startDate).
		Order("id ASC").
		Find(&absences).Error
	return absences, err
}

func (r *GormAbsenceRepository) CheckPeriodConflict(personName, startDate, endDate string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Absence{}).
		Where("person_name = ? AND start_date <= ? AND end_date >= ?",
			personName, endDate, startDate).
		Count(&count).Error
	return count > 0, err
}

func (r *GormAbsenceRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Absence{}).Count(&count).Error
	return count, err
}

func (r *GormAbsenceRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Absence{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormAbsenceRepository) DeleteByPerson(personName string) (int64, error) {
	result := r.db.Where("person_name = ?", personName).Delete(&models.Absence{})
	return result.RowsAffected, result.Error
}
