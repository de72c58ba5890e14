package services

import (
	"errors"
	"fmt"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridSender sends reminder emails through the SendGrid API.
type SendGridSender struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewSendGridSender() *SendGridSender {
	fromName := os.Getenv("SENDGRID_FROM_NAME")
	if fromName == "" {
		fromName = "ClinicPro"
	}
	return &SendGridSender{
		client:    sendgrid.NewSendClient(os.Getenv("SENDGRID_API_KEY")),
		fromEmail: os.Getenv("SENDGRID_FROM_EMAIL"),
		fromName:  fromName,
	}
}

func (s *SendGridSender) Send(to, body string) error {
	if s.fromEmail == "" {
		return errors.New("sendgrid sender email not configured")
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, "Appointment Reminder", recipient, body, body)

	resp, err := s.client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}
