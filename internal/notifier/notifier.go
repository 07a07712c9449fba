package notifier

import (
	"gopkg.in/gomail.v2"

	"github.com/pinkman07/TaksApprovalSystem/internal/config"
)

type Email struct {
	To      string
	Subject string
	Body    string
}

type Sender interface {
	Send(e Email) error
}

// Mailer delivers notification emails over SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (m *Mailer) Send(e Email) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", e.To)
	msg.SetHeader("Subject", e.Subject)
	msg.SetBody("text/plain", e.Body)
	return m.dialer.DialAndSend(msg)
}
