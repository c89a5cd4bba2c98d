package infra

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"

	"sfacapi/internal/config"
)

// Mailer wraps SMTP configuration for sending verification emails.
type Mailer struct {
	host     string
	user     string
	password string
	addr     string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		user:     cfg.EmailUser,
		password: cfg.EmailPass,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
	}
}

// SendVerificationCode mails a password-change code to the user.
func (m *Mailer) SendVerificationCode(to, code string) error {
	e := email.NewEmail()
	e.From = `"SFAC" <no-reply@SFAC.com>`
	e.To = []string{to}
	e.Subject = "Código de verificación"
	e.HTML = []byte(fmt.Sprintf(`
        <p>Tu código de verificación para cambiar la contraseña es:</p>
        <h2>%s</h2>
        <p>Este código expira en 10 minutos.</p>
      `, code))

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return e.Send(m.addr, auth)
}
