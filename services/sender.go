package services

// MessageSender delivers one rendered reminder to a recipient address
// (phone number or email, depending on the channel behind the implementation).
type MessageSender interface {
	Send(to, body string) error
}
