package db

import (
	"github.com/terraincognita07/cradle/internal/models"
	"gorm.io/gorm"
)

type PeriodRepository struct {
	database *gorm.DB
}

func NewPeriodRepository(database *gorm.DB) *PeriodRepository {
	return &PeriodRepository{database: database}
}

func (repo *PeriodRepository) ListAll() ([]models.PeriodEntry, error) {
	entries := make([]models.PeriodEntry, 0)
	if err := repo.database.Order("start_date DESC, id DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *PeriodRepository) FindByID(id string) (models.PeriodEntry, bool, error) {
	entry := models.PeriodEntry{}
	result := repo.database.Where("id = ?", id).Limit(1).Find(&entry)
	if result.Error != nil {
		return models.PeriodEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.PeriodEntry{}, false, nil
	}
	return entry, true, nil
}

func (repo *PeriodRepository) Create(entry *models.PeriodEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *PeriodRepository) DeleteByID(id string) (bool, error) {
	result := repo.database.Where("id = ?", id).Delete(&models.PeriodEntry{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *PeriodRepository) DeleteAll() error {
	return repo.database.Exec(`DELETE FROM period_entries`).Error
}

func (repo *PeriodRepository) Count() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.PeriodEntry{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
