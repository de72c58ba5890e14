package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReminderSettings is a singleton row: created with defaults on first read,
// mutated only through the settings endpoint.
type ReminderSettings struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	SMSEnabled      bool `gorm:"default:true" json:"smsEnabled"`
	WhatsAppEnabled bool `gorm:"default:true" json:"whatsappEnabled"`
	EmailEnabled    bool `gorm:"default:false" json:"emailEnabled"`

	// Hours before the appointment start at which the reminder becomes due.
	ReminderTiming int `gorm:"default:24" json:"reminderTiming"`

	SMSTemplate      string `gorm:"type:text" json:"smsTemplate"`
	WhatsAppTemplate string `gorm:"type:text" json:"whatsappTemplate"`
	EmailTemplate    string `gorm:"type:text" json:"emailTemplate"`

	AutoRemind           bool `gorm:"default:true" json:"autoRemind"`
	ConfirmationRequired bool `gorm:"default:false" json:"confirmationRequired"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *ReminderSettings) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

func (s *ReminderSettings) ChannelEnabled(m ContactMethod) bool {
	switch m {
	case ContactSMS:
		return s.SMSEnabled
	case ContactWhatsApp:
		return s.WhatsAppEnabled
	case ContactEmail:
		return s.EmailEnabled
	}
	return false
}

func (s *ReminderSettings) TemplateFor(m ContactMethod) string {
	switch m {
	case ContactSMS:
		return s.SMSTemplate
	case ContactWhatsApp:
		return s.WhatsAppTemplate
	case ContactEmail:
		return s.EmailTemplate
	}
	return ""
}

// DefaultReminderSettings seeds the singleton with the stock templates.
func DefaultReminderSettings() ReminderSettings {
	return ReminderSettings{
		SMSEnabled:      true,
		WhatsAppEnabled: true,
		EmailEnabled:    false,
		ReminderTiming:  24,
		SMSTemplate: "Hi {patientName}, this is a reminder for your appointment with {doctorName} on {date} at {time}. " +
			"Please reply CONFIRM to confirm or CANCEL to reschedule.",
		WhatsAppTemplate: "Hello {patientName}!\n\nThis is a friendly reminder about your appointment:\n\n" +
			"Doctor: {doctorName}\nDate: {date}\nTime: {time}\n\n" +
			"Please confirm your attendance or let us know if you need to reschedule.",
		EmailTemplate: "Dear {patientName},\n\nThis is a reminder for your upcoming appointment:\n\n" +
			"Doctor: {doctorName}\nDate: {date}\nTime: {time}\nType: {appointmentType}\n\n" +
			"Please arrive 15 minutes early for check-in.\n\n" +
			"If you need to reschedule, please contact us at least 24 hours in advance.\n\n" +
			"Best regards,\nThe Medical Team",
		AutoRemind:           true,
		ConfirmationRequired: false,
	}
}
