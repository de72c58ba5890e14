// models/reminder_log.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReminderLog is one delivery attempt for an appointment reminder.
type ReminderLog struct {
	ID            uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	AppointmentID uuid.UUID     `gorm:"type:uuid;index;not null" json:"appointmentId"`
	PatientID     uuid.UUID     `gorm:"type:uuid;index;not null" json:"patientId"`
	Channel       ContactMethod `gorm:"type:varchar(20)" json:"channel"`
	Message       string        `gorm:"type:text" json:"message"`
	Status        string        `gorm:"type:varchar(20)" json:"status"` // sent, failed
	ErrorMessage  string        `gorm:"type:text" json:"errorMessage,omitempty"`
	SentAt        time.Time     `json:"sentAt"`

	CreatedAt time.Time `json:"createdAt"`
}

func (r *ReminderLog) BeforeCreate(tx *gorm.DB) (err error) {
	r.ID = uuid.New()
	return
}
