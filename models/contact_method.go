package models

import "fmt"

// ContactMethod is a notification transport used for appointment reminders.
type ContactMethod string

const (
	ContactSMS      ContactMethod = "sms"
	ContactWhatsApp ContactMethod = "whatsapp"
	ContactEmail    ContactMethod = "email"
)

// ContactMethods lists every supported channel.
var ContactMethods = []ContactMethod{ContactSMS, ContactWhatsApp, ContactEmail}

func ParseContactMethod(s string) (ContactMethod, error) {
	m := ContactMethod(s)
	if !m.Valid() {
		return "", fmt.Errorf("unknown contact method: %q", s)
	}
	return m, nil
}

func (m ContactMethod) Valid() bool {
	switch m {
	case ContactSMS, ContactWhatsApp, ContactEmail:
		return true
	}
	return false
}

// Label is the display name shown on dashboards and in reminder logs.
func (m ContactMethod) Label() string {
	switch m {
	case ContactSMS:
		return "SMS"
	case ContactWhatsApp:
		return "WhatsApp"
	case ContactEmail:
		return "Email"
	}
	return string(m)
}
