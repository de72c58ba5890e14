package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterTodayAndUpcoming(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, loc)

	appts := []Appointment{
		{AppointmentDate: "2024-01-15", AppointmentTime: "10:00"},
		{AppointmentDate: "2024-01-15", AppointmentTime: "14:30"},
		{AppointmentDate: "2024-01-16", AppointmentTime: "09:15"},
		{AppointmentDate: "2024-01-14", AppointmentTime: "11:00"},
	}

	today := FilterToday(appts, now, loc)
	require.Len(t, today, 2)
	assert.Equal(t, "10:00", today[0].AppointmentTime)
	assert.Equal(t, "14:30", today[1].AppointmentTime)

	upcoming := FilterUpcoming(appts, now, loc)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "2024-01-16", upcoming[0].AppointmentDate)

	// Source collection is untouched.
	assert.Len(t, appts, 4)
	assert.Equal(t, "2024-01-15", appts[0].AppointmentDate)
}

func TestCountRemindersSent(t *testing.T) {
	appts := []Appointment{
		{ReminderSent: true},
		{ReminderSent: false},
		{ReminderSent: true},
	}
	assert.Equal(t, 2, CountRemindersSent(appts))
	assert.Equal(t, 0, CountRemindersSent(nil))
}

func TestSearchPatientsCaseInsensitiveSubstring(t *testing.T) {
	patients := []Patient{
		{FirstName: "John", LastName: "Smith", Email: "jsmith@example.com", Phone: "+1234567890"},
		{FirstName: "Sarah", LastName: "Johnson", Email: "sarah.j@example.com", Phone: "+1234567891"},
		{FirstName: "Emily", LastName: "Davis", Email: "emily@example.com", Phone: "+1234567892"},
	}

	// "john" matches John Smith and the embedded "john" in "Johnson".
	got := SearchPatients(patients, "john")
	require.Len(t, got, 2)
	assert.Equal(t, "Smith", got[0].LastName)
	assert.Equal(t, "Johnson", got[1].LastName)

	// Email and phone are searched too.
	assert.Len(t, SearchPatients(patients, "EMILY@"), 1)
	assert.Len(t, SearchPatients(patients, "7891"), 1)

	// Empty term matches everyone, in source order.
	all := SearchPatients(patients, "  ")
	require.Len(t, all, 3)
	assert.Equal(t, "John", all[0].FirstName)

	assert.Empty(t, SearchPatients(patients, "nomatch"))
}
