package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Storage formats for appointment date and time-of-day. Times are clinic-local;
// the clinic timezone is configured at process level (utils.ClinicLocation).
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type Appointment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	PatientID uuid.UUID `gorm:"type:uuid;index;not null" json:"patientId"`
	DoctorID  uuid.UUID `gorm:"type:uuid;index;not null" json:"doctorId"`

	AppointmentDate string `gorm:"type:varchar(10);not null;index" json:"appointmentDate"`
	AppointmentTime string `gorm:"type:varchar(5);not null" json:"appointmentTime"`
	AppointmentType string `json:"appointmentType,omitempty"`

	Status AppointmentStatus `gorm:"type:varchar(20);default:'scheduled';not null" json:"status"`

	ReminderSent      bool           `gorm:"default:false;not null" json:"reminderSent"`
	ReminderSentAt    *time.Time     `json:"reminderSentAt,omitempty"`
	ContactMethodUsed *ContactMethod `gorm:"type:varchar(20)" json:"contactMethodUsed,omitempty"`

	Patient Patient `gorm:"foreignKey:PatientID" json:"patient"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}

// StartAt resolves the stored date and time-of-day into an instant in loc.
func (a *Appointment) StartAt(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout+" "+TimeLayout, a.AppointmentDate+" "+a.AppointmentTime, loc)
}

// HasPassed reports whether the appointment's start time is behind now.
func (a *Appointment) HasPassed(now time.Time, loc *time.Location) bool {
	start, err := a.StartAt(loc)
	if err != nil {
		return false
	}
	return now.After(start)
}

// IsToday compares calendar dates in the clinic timezone, not raw strings.
func (a *Appointment) IsToday(now time.Time, loc *time.Location) bool {
	d, err := time.ParseInLocation(DateLayout, a.AppointmentDate, loc)
	if err != nil {
		return false
	}
	ny, nm, nd := now.In(loc).Date()
	ay, am, ad := d.Date()
	return ay == ny && am == nm && ad == nd
}

// IsUpcoming reports whether the appointment date is strictly after today.
func (a *Appointment) IsUpcoming(now time.Time, loc *time.Location) bool {
	d, err := time.ParseInLocation(DateLayout, a.AppointmentDate, loc)
	if err != nil {
		return false
	}
	ny, nm, nd := now.In(loc).Date()
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, loc)
	return d.After(today)
}

// Transition moves the appointment to next, enforcing the lifecycle:
// scheduled -> confirmed -> completed; scheduled/confirmed -> cancelled;
// scheduled/confirmed -> no_show once the start time has passed.
// Terminal states reject every further transition.
func (a *Appointment) Transition(next AppointmentStatus, now time.Time, loc *time.Location) error {
	if !next.Valid() || a.Status.IsTerminal() || next == a.Status {
		return ErrInvalidTransition
	}

	allowed := false
	switch next {
	case StatusConfirmed:
		allowed = a.Status == StatusScheduled
	case StatusCompleted:
		allowed = a.Status == StatusConfirmed
	case StatusCancelled:
		allowed = a.Status == StatusScheduled || a.Status == StatusConfirmed
	case StatusNoShow:
		allowed = (a.Status == StatusScheduled || a.Status == StatusConfirmed) && a.HasPassed(now, loc)
	}

	if !allowed {
		return ErrInvalidTransition
	}
	a.Status = next
	return nil
}
