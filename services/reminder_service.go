// services/reminder_service.go
package services

import (
	"errors"
	"log"
	"time"

	"clinicpro-backend/models"
	"clinicpro-backend/repository"
	"clinicpro-backend/utils"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// ReminderService decides when appointment reminders are due and dispatches
// them over the patient's preferred channel. At-most-once delivery per
// appointment is enforced by the repository's conditional update, so a manual
// "send now" and the cron sweep can race safely.
type ReminderService struct {
	appointments repository.AppointmentRepository
	settings     repository.SettingsRepository
	logs         repository.ReminderLogRepository
	senders      map[models.ContactMethod]MessageSender
	loc          *time.Location
}

func NewReminderService(db *gorm.DB) *ReminderService {
	return &ReminderService{
		appointments: repository.NewAppointmentRepository(db),
		settings:     repository.NewSettingsRepository(db),
		logs:         repository.NewReminderLogRepository(db),
		senders: map[models.ContactMethod]MessageSender{
			models.ContactSMS:      NewTwilioSMSSender(),
			models.ContactWhatsApp: NewTwilioWhatsAppSender(),
			models.ContactEmail:    NewSendGridSender(),
		},
		loc: utils.ClinicLocation(),
	}
}

// IsReminderDue reports whether appt should be reminded at now: the
// appointment is still scheduled or confirmed, no reminder has gone out, the
// patient's preferred channel is enabled, and now has reached the due instant
// (start time minus the configured lead hours, boundary inclusive).
func (s *ReminderService) IsReminderDue(appt *models.Appointment, settings *models.ReminderSettings, now time.Time) bool {
	if appt.ReminderSent {
		return false
	}
	if appt.Status != models.StatusScheduled && appt.Status != models.StatusConfirmed {
		return false
	}
	if !settings.ChannelEnabled(appt.Patient.PreferredContactMethod) {
		return false
	}
	start, err := appt.StartAt(s.loc)
	if err != nil {
		log.Printf("Appointment %s: unparseable date/time %q %q", appt.ID, appt.AppointmentDate, appt.AppointmentTime)
		return false
	}
	dueAt := start.Add(-time.Duration(settings.ReminderTiming) * time.Hour)
	return !now.Before(dueAt)
}

// SendReminder dispatches the reminder for one appointment. Returns
// models.ErrAlreadySent when another caller won the conditional update (the
// caller should treat that as benign) and models.ErrChannelDisabled when the
// patient's preferred channel is switched off; in that case reminder_sent
// stays false so re-enabling the channel later resumes delivery.
func (s *ReminderService) SendReminder(appointmentID uuid.UUID, now time.Time) error {
	appt, err := s.appointments.FindByID(appointmentID)
	if err != nil {
		return err
	}
	cfg, err := s.settings.Get()
	if err != nil {
		return err
	}

	method := appt.Patient.PreferredContactMethod
	if !cfg.ChannelEnabled(method) {
		return models.ErrChannelDisabled
	}
	if appt.ReminderSent {
		return models.ErrAlreadySent
	}

	message := s.renderFor(appt, cfg, method)

	applied, err := s.appointments.MarkReminderSent(appt.ID, now, method)
	if err != nil {
		return err
	}
	if !applied {
		return models.ErrAlreadySent
	}

	s.deliver(appt, method, message, now)
	return nil
}

func (s *ReminderService) renderFor(appt *models.Appointment, cfg *models.ReminderSettings, method models.ContactMethod) string {
	fields := utils.TemplateFields{
		PatientName:     appt.Patient.FullName(),
		DoctorName:      appt.Doctor.FullName(),
		AppointmentType: appt.AppointmentType,
	}
	if start, err := appt.StartAt(s.loc); err == nil {
		fields.Date = utils.FormatReminderDate(start)
		fields.Time = utils.FormatReminderTime(start)
	} else {
		fields.Date = appt.AppointmentDate
		fields.Time = appt.AppointmentTime
	}
	return utils.RenderTemplate(cfg.TemplateFor(method), fields)
}

// deliver hands the rendered message to the channel's transport and records
// the attempt. The reminder flag has already been claimed at this point, so a
// transport failure is logged rather than retried.
func (s *ReminderService) deliver(appt *models.Appointment, method models.ContactMethod, message string, now time.Time) {
	to := appt.Patient.Phone
	if method == models.ContactEmail {
		to = appt.Patient.Email
	}

	status := "sent"
	errorMsg := ""
	if sender, ok := s.senders[method]; !ok {
		status = "failed"
		errorMsg = "no sender configured for channel " + string(method)
	} else if err := sender.Send(to, message); err != nil {
		log.Printf("Failed to send %s reminder for appointment %s: %v", method, appt.ID, err)
		status = "failed"
		errorMsg = err.Error()
	}

	entry := models.ReminderLog{
		AppointmentID: appt.ID,
		PatientID:     appt.PatientID,
		Channel:       method,
		Message:       message,
		Status:        status,
		ErrorMessage:  errorMsg,
		SentAt:        now,
	}
	if err := s.logs.Create(&entry); err != nil {
		log.Printf("Failed to log reminder for appointment %s: %v", appt.ID, err)
	}
}

// ProcessDueReminders is the auto-remind sweep: it walks every appointment
// that has not been reminded yet and dispatches the due ones.
func (s *ReminderService) ProcessDueReminders(now time.Time) {
	cfg, err := s.settings.Get()
	if err != nil {
		log.Printf("Failed to load reminder settings: %v", err)
		return
	}
	if !cfg.AutoRemind {
		return
	}

	notSent := false
	appts, err := s.appointments.List(&repository.AppointmentFilter{ReminderSent: &notSent})
	if err != nil {
		log.Printf("Failed to fetch appointments for reminder sweep: %v", err)
		return
	}

	for i := range appts {
		appt := &appts[i]
		if !s.IsReminderDue(appt, cfg, now) {
			continue
		}
		if err := s.SendReminder(appt.ID, now); err != nil {
			// A concurrent manual send is fine; anything else gets logged.
			if errors.Is(err, models.ErrAlreadySent) {
				continue
			}
			log.Printf("Appointment %s: reminder dispatch failed: %v", appt.ID, err)
		}
	}
}

// StartScheduler runs the sweep every 15 minutes.
func (s *ReminderService) StartScheduler() {
	c := cron.New()
	c.AddFunc("*/15 * * * *", func() {
		s.ProcessDueReminders(time.Now())
	})
	c.Start()
	log.Println("Reminder scheduler started")
}
