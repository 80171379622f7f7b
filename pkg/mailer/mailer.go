package mailer

import (
	"fmt"

	"github.com/formlight/formlight/internal/config"
	gomail "gopkg.in/gomail.v2"
)

// Mailer delivers outbound mail. Services depend on this interface so
// SMTP stays out of the core.
type Mailer interface {
	SendNewPassword(to, password string) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer() *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(config.SmtpHost, config.SmtpPort, config.SmtpUser, config.SmtpPass),
		from:   config.MailFrom,
	}
}

func (m *SMTPMailer) SendNewPassword(to, password string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Your new password")
	msg.SetBody("text/plain", fmt.Sprintf("Your new password is: %s", password))

	return m.dialer.DialAndSend(msg)
}
