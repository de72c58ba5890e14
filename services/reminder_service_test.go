package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	"clinicpro-backend/models"
	"clinicpro-backend/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeAppointmentRepo keeps appointments in memory and mimics the store's
// conditional update under a mutex.
type fakeAppointmentRepo struct {
	mu    sync.Mutex
	appts map[uuid.UUID]*models.Appointment
}

func newFakeAppointmentRepo(appts ...*models.Appointment) *fakeAppointmentRepo {
	r := &fakeAppointmentRepo{appts: make(map[uuid.UUID]*models.Appointment)}
	for _, a := range appts {
		if a.ID == uuid.Nil {
			a.ID = uuid.New()
		}
		r.appts[a.ID] = a
	}
	return r
}

func (r *fakeAppointmentRepo) List(filter *repository.AppointmentFilter) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, a := range r.appts {
		if filter != nil && filter.ReminderSent != nil && a.ReminderSent != *filter.ReminderSent {
			continue
		}
		if filter != nil && filter.Status != "" && a.Status != filter.Status {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (r *fakeAppointmentRepo) FindByID(id uuid.UUID) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.appts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *fakeAppointmentRepo) Create(appt *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if appt.ID == uuid.Nil {
		appt.ID = uuid.New()
	}
	stored := *appt
	r.appts[appt.ID] = &stored
	return nil
}

func (r *fakeAppointmentRepo) UpdateStatus(id uuid.UUID, status models.AppointmentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.appts[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.Status = status
	return nil
}

func (r *fakeAppointmentRepo) MarkReminderSent(id uuid.UUID, sentAt time.Time, method models.ContactMethod) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.appts[id]
	if !ok || a.ReminderSent {
		return false, nil
	}
	a.ReminderSent = true
	at := sentAt
	a.ReminderSentAt = &at
	m := method
	a.ContactMethodUsed = &m
	return true, nil
}

type fakeSettingsRepo struct {
	cfg models.ReminderSettings
}

func (r *fakeSettingsRepo) Get() (*models.ReminderSettings, error) {
	cfg := r.cfg
	return &cfg, nil
}

func (r *fakeSettingsRepo) Save(s *models.ReminderSettings) error {
	r.cfg = *s
	return nil
}

type fakeLogRepo struct {
	mu      sync.Mutex
	entries []models.ReminderLog
}

func (r *fakeLogRepo) Create(entry *models.ReminderLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakeLogRepo) ListByAppointment(appointmentID uuid.UUID) ([]models.ReminderLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.ReminderLog
	for _, e := range r.entries {
		if e.AppointmentID == appointmentID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeSender struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (s *fakeSender) Send(to, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, body)
	return nil
}

func testSettings() models.ReminderSettings {
	cfg := models.DefaultReminderSettings()
	cfg.EmailEnabled = true
	return cfg
}

func testAppointment(method models.ContactMethod) *models.Appointment {
	return &models.Appointment{
		ID:              uuid.New(),
		PatientID:       uuid.New(),
		DoctorID:        uuid.New(),
		AppointmentDate: "2024-01-15",
		AppointmentTime: "10:00",
		AppointmentType: "General Checkup",
		Status:          models.StatusScheduled,
		Patient: models.Patient{
			FirstName:              "Sarah",
			LastName:               "Johnson",
			Email:                  "sarah.j@example.com",
			Phone:                  "+1234567890",
			PreferredContactMethod: method,
		},
		Doctor: models.Doctor{FirstName: "Dr.", LastName: "Smith"},
	}
}

func newTestService(repo *fakeAppointmentRepo, cfg models.ReminderSettings, sender MessageSender) (*ReminderService, *fakeLogRepo) {
	logs := &fakeLogRepo{}
	svc := &ReminderService{
		appointments: repo,
		settings:     &fakeSettingsRepo{cfg: cfg},
		logs:         logs,
		senders: map[models.ContactMethod]MessageSender{
			models.ContactSMS:      sender,
			models.ContactWhatsApp: sender,
			models.ContactEmail:    sender,
		},
		loc: time.UTC,
	}
	return svc, logs
}

func TestIsReminderDueBoundary(t *testing.T) {
	appt := testAppointment(models.ContactSMS)
	cfg := testSettings()
	cfg.ReminderTiming = 24

	svc, _ := newTestService(newFakeAppointmentRepo(appt), cfg, &fakeSender{})

	start := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	assert.False(t, svc.IsReminderDue(appt, &cfg, start.Add(-25*time.Hour)), "25h before start is too early")
	assert.True(t, svc.IsReminderDue(appt, &cfg, start.Add(-24*time.Hour)), "boundary at exactly 24h is inclusive")
	assert.True(t, svc.IsReminderDue(appt, &cfg, start.Add(-23*time.Hour)))
}

func TestIsReminderDueGuards(t *testing.T) {
	cfg := testSettings()
	cfg.ReminderTiming = 24
	now := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

	svc, _ := newTestService(newFakeAppointmentRepo(), cfg, &fakeSender{})

	sent := testAppointment(models.ContactSMS)
	sent.ReminderSent = true
	assert.False(t, svc.IsReminderDue(sent, &cfg, now), "already reminded")

	cancelled := testAppointment(models.ContactSMS)
	cancelled.Status = models.StatusCancelled
	assert.False(t, svc.IsReminderDue(cancelled, &cfg, now), "cancelled appointments are not reminded")

	disabled := testAppointment(models.ContactEmail)
	cfgDisabled := cfg
	cfgDisabled.EmailEnabled = false
	assert.False(t, svc.IsReminderDue(disabled, &cfgDisabled, now), "disabled channel")

	broken := testAppointment(models.ContactSMS)
	broken.AppointmentDate = "15/01/2024"
	assert.False(t, svc.IsReminderDue(broken, &cfg, now), "unparseable date")
}

func TestSendReminderRendersAndLogs(t *testing.T) {
	appt := testAppointment(models.ContactWhatsApp)
	repo := newFakeAppointmentRepo(appt)
	sender := &fakeSender{}
	svc, logs := newTestService(repo, testSettings(), sender)

	now := time.Date(2024, 1, 14, 10, 0, 0, 0, time.UTC)
	require.NoError(t, svc.SendReminder(appt.ID, now))

	require.Len(t, sender.sent, 1)
	assert.Contains(t, sender.sent[0], "Sarah Johnson")
	assert.Contains(t, sender.sent[0], "Dr. Smith")
	assert.Contains(t, sender.sent[0], "Jan 15, 2024")
	assert.Contains(t, sender.sent[0], "10:00 AM")

	stored, err := repo.FindByID(appt.ID)
	require.NoError(t, err)
	assert.True(t, stored.ReminderSent)
	require.NotNil(t, stored.ReminderSentAt)
	assert.Equal(t, now, *stored.ReminderSentAt)
	require.NotNil(t, stored.ContactMethodUsed)
	assert.Equal(t, models.ContactWhatsApp, *stored.ContactMethodUsed)

	entries, err := logs.ListByAppointment(appt.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "sent", entries[0].Status)
	assert.Equal(t, models.ContactWhatsApp, entries[0].Channel)
}

func TestSendReminderIsMonotonic(t *testing.T) {
	appt := testAppointment(models.ContactSMS)
	repo := newFakeAppointmentRepo(appt)
	sender := &fakeSender{}
	svc, _ := newTestService(repo, testSettings(), sender)

	now := time.Date(2024, 1, 14, 10, 0, 0, 0, time.UTC)
	require.NoError(t, svc.SendReminder(appt.ID, now))

	// A later retry cannot un-send or double-send.
	err := svc.SendReminder(appt.ID, now.Add(2*time.Hour))
	assert.ErrorIs(t, err, models.ErrAlreadySent)
	assert.Len(t, sender.sent, 1)

	cfg := testSettings()
	stored, _ := repo.FindByID(appt.ID)
	assert.False(t, svc.IsReminderDue(stored, &cfg, now.Add(48*time.Hour)))
}

func TestSendReminderChannelDisabledLeavesStateUntouched(t *testing.T) {
	appt := testAppointment(models.ContactEmail)
	repo := newFakeAppointmentRepo(appt)
	cfg := testSettings()
	cfg.EmailEnabled = false
	sender := &fakeSender{}
	svc, logs := newTestService(repo, cfg, sender)

	err := svc.SendReminder(appt.ID, time.Date(2024, 1, 14, 10, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, models.ErrChannelDisabled)

	// reminder_sent stays false so re-enabling the channel resumes delivery.
	stored, _ := repo.FindByID(appt.ID)
	assert.False(t, stored.ReminderSent)
	assert.Nil(t, stored.ReminderSentAt)
	assert.Empty(t, sender.sent)
	assert.Empty(t, logs.entries)
}

func TestSendReminderUnknownAppointment(t *testing.T) {
	svc, _ := newTestService(newFakeAppointmentRepo(), testSettings(), &fakeSender{})
	err := svc.SendReminder(uuid.New(), time.Now())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestConcurrentDispatchExactlyOneWins(t *testing.T) {
	appt := testAppointment(models.ContactSMS)
	repo := newFakeAppointmentRepo(appt)
	sender := &fakeSender{}
	svc, logs := newTestService(repo, testSettings(), sender)

	now := time.Date(2024, 1, 14, 10, 0, 0, 0, time.UTC)

	const attempts = 8
	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- svc.SendReminder(appt.ID, now)
		}()
	}
	wg.Wait()
	close(errs)

	wins, losses := 0, 0
	for err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, models.ErrAlreadySent):
			losses++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, wins, "exactly one dispatch must win")
	assert.Equal(t, attempts-1, losses)
	assert.Len(t, sender.sent, 1)

	entries, _ := logs.ListByAppointment(appt.ID)
	assert.Len(t, entries, 1)
}

func TestDeliveryFailureIsLoggedAfterGuard(t *testing.T) {
	appt := testAppointment(models.ContactSMS)
	repo := newFakeAppointmentRepo(appt)
	sender := &fakeSender{err: errors.New("gateway timeout")}
	svc, logs := newTestService(repo, testSettings(), sender)

	now := time.Date(2024, 1, 14, 10, 0, 0, 0, time.UTC)
	require.NoError(t, svc.SendReminder(appt.ID, now))

	// The guard was claimed; the failed attempt is recorded, not retried.
	stored, _ := repo.FindByID(appt.ID)
	assert.True(t, stored.ReminderSent)

	entries, _ := logs.ListByAppointment(appt.ID)
	require.Len(t, entries, 1)
	assert.Equal(t, "failed", entries[0].Status)
	assert.Equal(t, "gateway timeout", entries[0].ErrorMessage)
}

func TestProcessDueRemindersSweep(t *testing.T) {
	due := testAppointment(models.ContactSMS)
	due.AppointmentDate = "2024-01-15"
	notYet := testAppointment(models.ContactSMS)
	notYet.AppointmentDate = "2024-01-20"
	done := testAppointment(models.ContactSMS)
	done.AppointmentDate = "2024-01-15"
	done.ReminderSent = true

	repo := newFakeAppointmentRepo(due, notYet, done)
	sender := &fakeSender{}
	cfg := testSettings()
	cfg.ReminderTiming = 24
	svc, _ := newTestService(repo, cfg, sender)

	svc.ProcessDueReminders(time.Date(2024, 1, 14, 12, 0, 0, 0, time.UTC))

	assert.Len(t, sender.sent, 1)
	stored, _ := repo.FindByID(due.ID)
	assert.True(t, stored.ReminderSent)
	storedNotYet, _ := repo.FindByID(notYet.ID)
	assert.False(t, storedNotYet.ReminderSent)
}

func TestProcessDueRemindersRespectsAutoRemindFlag(t *testing.T) {
	due := testAppointment(models.ContactSMS)
	repo := newFakeAppointmentRepo(due)
	sender := &fakeSender{}
	cfg := testSettings()
	cfg.AutoRemind = false
	svc, _ := newTestService(repo, cfg, sender)

	svc.ProcessDueReminders(time.Date(2024, 1, 14, 12, 0, 0, 0, time.UTC))

	assert.Empty(t, sender.sent)
}
