package models

import (
	"strings"
	"time"
)

// Derived views over in-memory collections. All of these return fresh slices
// in source order and never mutate their input.

// FilterToday keeps appointments whose date falls on now's calendar day in loc.
func FilterToday(appts []Appointment, now time.Time, loc *time.Location) []Appointment {
	out := make([]Appointment, 0, len(appts))
	for _, a := range appts {
		if a.IsToday(now, loc) {
			out = append(out, a)
		}
	}
	return out
}

// FilterUpcoming keeps appointments dated strictly after today in loc.
func FilterUpcoming(appts []Appointment, now time.Time, loc *time.Location) []Appointment {
	out := make([]Appointment, 0, len(appts))
	for _, a := range appts {
		if a.IsUpcoming(now, loc) {
			out = append(out, a)
		}
	}
	return out
}

func CountRemindersSent(appts []Appointment) int {
	n := 0
	for _, a := range appts {
		if a.ReminderSent {
			n++
		}
	}
	return n
}

// SearchPatients matches a case-insensitive substring against the patient's
// full name, email, and phone. An empty term matches everyone.
func SearchPatients(patients []Patient, term string) []Patient {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return append([]Patient(nil), patients...)
	}
	out := make([]Patient, 0, len(patients))
	for _, p := range patients {
		if strings.Contains(strings.ToLower(p.FullName()), term) ||
			strings.Contains(strings.ToLower(p.Email), term) ||
			strings.Contains(strings.ToLower(p.Phone), term) {
			out = append(out, p)
		}
	}
	return out
}
