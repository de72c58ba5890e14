package repository

import (
	"clinicpro-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReminderLogRepository interface {
	Create(entry *models.ReminderLog) error
	ListByAppointment(appointmentID uuid.UUID) ([]models.ReminderLog, error)
}

type reminderLogRepo struct {
	db *gorm.DB
}

func NewReminderLogRepository(db *gorm.DB) ReminderLogRepository {
	return &reminderLogRepo{db: db}
}

func (r *reminderLogRepo) Create(entry *models.ReminderLog) error {
	return r.db.Create(entry).Error
}

func (r *reminderLogRepo) ListByAppointment(appointmentID uuid.UUID) ([]models.ReminderLog, error) {
	var logs []models.ReminderLog
	if err := r.db.Where("appointment_id = ?", appointmentID).
		Order("sent_at desc").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
