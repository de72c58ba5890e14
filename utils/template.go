// utils/template.go
package utils

import (
	"strings"
	"time"
)

// TemplateFields are the values substituted into reminder message templates.
// Empty fields render as empty strings.
type TemplateFields struct {
	PatientName     string
	DoctorName      string
	Date            string
	Time            string
	AppointmentType string
}

// RenderTemplate replaces every occurrence of {patientName}, {doctorName},
// {date}, {time} and {appointmentType} in a single pass. Unrecognized
// placeholders are left verbatim. strings.Replacer does not rescan replaced
// text, so field values that look like placeholders cannot cascade.
func RenderTemplate(template string, fields TemplateFields) string {
	r := strings.NewReplacer(
		"{patientName}", fields.PatientName,
		"{doctorName}", fields.DoctorName,
		"{date}", fields.Date,
		"{time}", fields.Time,
		"{appointmentType}", fields.AppointmentType,
	)
	return r.Replace(template)
}

// FormatReminderDate renders the {date} token in the human-readable form used
// in outgoing messages, independent of the stored YYYY-MM-DD format.
func FormatReminderDate(t time.Time) string {
	return t.Format("Jan 02, 2006")
}

// FormatReminderTime renders the {time} token, e.g. "2:30 PM".
func FormatReminderTime(t time.Time) string {
	return t.Format("3:04 PM")
}
