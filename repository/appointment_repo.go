package repository

import (
	"time"

	"clinicpro-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentFilter narrows List results. Nil pointer fields are ignored.
type AppointmentFilter struct {
	Status       models.AppointmentStatus
	ReminderSent *bool
}

type AppointmentRepository interface {
	// List returns appointments with Patient and Doctor preloaded, ordered by
	// date then time ascending.
	List(filter *AppointmentFilter) ([]models.Appointment, error)
	FindByID(id uuid.UUID) (*models.Appointment, error)
	Create(appt *models.Appointment) error
	UpdateStatus(id uuid.UUID, status models.AppointmentStatus) error
	// MarkReminderSent flips reminder_sent, reminder_sent_at and
	// contact_method_used in one conditional update guarded on
	// reminder_sent = false. Returns false when another caller already
	// claimed the dispatch; that is the at-most-once guarantee.
	MarkReminderSent(id uuid.UUID, sentAt time.Time, method models.ContactMethod) (bool, error)
}

type appointmentRepo struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepo{db: db}
}

func (r *appointmentRepo) List(filter *AppointmentFilter) ([]models.Appointment, error) {
	q := r.db.Preload("Patient").Preload("Doctor").
		Order("appointment_date asc, appointment_time asc")
	if filter != nil {
		if filter.Status != "" {
			q = q.Where("status = ?", filter.Status)
		}
		if filter.ReminderSent != nil {
			q = q.Where("reminder_sent = ?", *filter.ReminderSent)
		}
	}

	var appts []models.Appointment
	if err := q.Find(&appts).Error; err != nil {
		return nil, err
	}
	return appts, nil
}

func (r *appointmentRepo) FindByID(id uuid.UUID) (*models.Appointment, error) {
	var appt models.Appointment
	if err := r.db.Preload("Patient").Preload("Doctor").
		First(&appt, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &appt, nil
}

func (r *appointmentRepo) Create(appt *models.Appointment) error {
	return r.db.Create(appt).Error
}

func (r *appointmentRepo) UpdateStatus(id uuid.UUID, status models.AppointmentStatus) error {
	return r.db.Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *appointmentRepo) MarkReminderSent(id uuid.UUID, sentAt time.Time, method models.ContactMethod) (bool, error) {
	res := r.db.Model(&models.Appointment{}).
		Where("id = ? AND reminder_sent = ?", id, false).
		Updates(map[string]interface{}{
			"reminder_sent":       true,
			"reminder_sent_at":    sentAt,
			"contact_method_used": string(method),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
