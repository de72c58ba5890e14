package services

import (
	"errors"
	"log"
	"os"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioSender sends SMS or WhatsApp messages through the Twilio REST API.
// WhatsApp uses the same message endpoint with "whatsapp:" prefixed numbers.
type TwilioSender struct {
	client   *twilio.RestClient
	from     string
	whatsapp bool
}

func newTwilioClient() *twilio.RestClient {
	return twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: os.Getenv("TWILIO_ACCOUNT_SID"),
		Password: os.Getenv("TWILIO_AUTH_TOKEN"),
	})
}

func NewTwilioSMSSender() *TwilioSender {
	return &TwilioSender{
		client: newTwilioClient(),
		from:   os.Getenv("TWILIO_PHONE_NUMBER"),
	}
}

func NewTwilioWhatsAppSender() *TwilioSender {
	return &TwilioSender{
		client:   newTwilioClient(),
		from:     "whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"),
		whatsapp: true,
	}
}

func (s *TwilioSender) Send(to, body string) error {
	if s.from == "" {
		return errors.New("twilio sender number not configured")
	}
	if s.whatsapp {
		to = "whatsapp:" + to
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return err
	}
	if resp.Sid != nil {
		log.Printf("Message sent to %s, SID: %s", to, *resp.Sid)
	} else {
		log.Printf("Message sent to %s, but no SID returned", to)
	}
	return nil
}
