package infra

import (
	"bytes"
	"fmt"
	"net/smtp"

	"github.com/iamumarjaved/padelbridge1/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer sends transactional mail over plain SMTP. A Mailer with an empty
// host is a no-op, so environments without SMTP configured still work.
type Mailer struct {
	host string
	port int
	user string
	pass string
	from string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPassword,
		from: cfg.SMTPUser,
	}
}

// Send delivers an HTML email. When pdf is non-empty it is attached under
// pdfName.
func (m *Mailer) Send(to []string, subject, htmlBody string, pdfName string, pdf []byte) error {
	if m.host == "" {
		return nil
	}

	e := email.NewEmail()
	e.From = m.from
	e.To = to
	e.Subject = subject
	e.HTML = []byte(htmlBody)
	if len(pdf) > 0 {
		if _, err := e.Attach(bytes.NewReader(pdf), pdfName, "application/pdf"); err != nil {
			return err
		}
	}

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	return e.Send(addr, auth)
}
