package repository

import (
	"errors"

	"clinicpro-backend/models"

	"gorm.io/gorm"
)

type SettingsRepository interface {
	// Get returns the singleton settings row, seeding the defaults on first use.
	Get() (*models.ReminderSettings, error)
	Save(s *models.ReminderSettings) error
}

type settingsRepo struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepo{db: db}
}

func (r *settingsRepo) Get() (*models.ReminderSettings, error) {
	var s models.ReminderSettings
	err := r.db.First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s = models.DefaultReminderSettings()
		if err := r.db.Create(&s).Error; err != nil {
			return nil, err
		}
		return &s, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *settingsRepo) Save(s *models.ReminderSettings) error {
	return r.db.Save(s).Error
}
