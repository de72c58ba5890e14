package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAppointment(date, timeOfDay string, status AppointmentStatus) *Appointment {
	return &Appointment{
		AppointmentDate: date,
		AppointmentTime: timeOfDay,
		Status:          status,
	}
}

func TestTransitionLifecycle(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, loc)

	appt := newTestAppointment("2024-01-15", "10:00", StatusScheduled)

	require.NoError(t, appt.Transition(StatusConfirmed, now, loc))
	assert.Equal(t, StatusConfirmed, appt.Status)

	require.NoError(t, appt.Transition(StatusCompleted, now, loc))
	assert.Equal(t, StatusCompleted, appt.Status)
}

func TestTransitionFromTerminalStateFails(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, loc)

	for _, terminal := range []AppointmentStatus{StatusCompleted, StatusCancelled, StatusNoShow} {
		for _, next := range []AppointmentStatus{StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow} {
			appt := newTestAppointment("2024-01-15", "10:00", terminal)
			err := appt.Transition(next, now, loc)
			assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s should be rejected", terminal, next)
			assert.Equal(t, terminal, appt.Status, "status must not change on rejected transition")
		}
	}
}

func TestTransitionCancellation(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, loc)

	scheduled := newTestAppointment("2024-01-15", "10:00", StatusScheduled)
	require.NoError(t, scheduled.Transition(StatusCancelled, now, loc))

	confirmed := newTestAppointment("2024-01-15", "10:00", StatusConfirmed)
	require.NoError(t, confirmed.Transition(StatusCancelled, now, loc))
}

func TestTransitionNoShowRequiresPassedStart(t *testing.T) {
	loc := time.UTC
	appt := newTestAppointment("2024-01-15", "10:00", StatusConfirmed)

	before := time.Date(2024, 1, 15, 9, 0, 0, 0, loc)
	assert.ErrorIs(t, appt.Transition(StatusNoShow, before, loc), ErrInvalidTransition)

	after := time.Date(2024, 1, 15, 10, 30, 0, 0, loc)
	require.NoError(t, appt.Transition(StatusNoShow, after, loc))
	assert.Equal(t, StatusNoShow, appt.Status)
}

func TestTransitionCompletedRequiresConfirmed(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, loc)

	appt := newTestAppointment("2024-01-15", "10:00", StatusScheduled)
	assert.ErrorIs(t, appt.Transition(StatusCompleted, now, loc), ErrInvalidTransition)
}

func TestTransitionRejectsUnknownStatus(t *testing.T) {
	loc := time.UTC
	now := time.Now()

	appt := newTestAppointment("2024-01-15", "10:00", StatusScheduled)
	assert.ErrorIs(t, appt.Transition(AppointmentStatus("rescheduled"), now, loc), ErrInvalidTransition)
}

func TestIsTodayAndIsUpcoming(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 1, 15, 18, 0, 0, 0, loc)

	today := newTestAppointment("2024-01-15", "10:00", StatusScheduled)
	assert.True(t, today.IsToday(now, loc))
	assert.False(t, today.IsUpcoming(now, loc))

	tomorrow := newTestAppointment("2024-01-16", "09:15", StatusScheduled)
	assert.False(t, tomorrow.IsToday(now, loc))
	assert.True(t, tomorrow.IsUpcoming(now, loc))

	yesterday := newTestAppointment("2024-01-14", "14:30", StatusScheduled)
	assert.False(t, yesterday.IsToday(now, loc))
	assert.False(t, yesterday.IsUpcoming(now, loc))
}

func TestIsTodayRespectsClinicTimezone(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	// 23:00 UTC on Jan 14 is already Jan 15 in Tokyo.
	now := time.Date(2024, 1, 14, 23, 0, 0, 0, time.UTC)

	appt := newTestAppointment("2024-01-15", "10:00", StatusScheduled)
	assert.True(t, appt.IsToday(now, tokyo))
	assert.False(t, appt.IsToday(now, time.UTC))
}

func TestStartAtParsesClinicLocalTime(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	appt := newTestAppointment("2024-01-15", "10:00", StatusScheduled)
	start, err := appt.StartAt(tokyo)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 10, 0, 0, 0, tokyo), start)

	appt.AppointmentDate = "not-a-date"
	_, err = appt.StartAt(tokyo)
	assert.Error(t, err)
}
