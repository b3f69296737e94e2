package mailer

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"sudar-backend/pkg/utils"
)

type Mailer interface {
	SendVerificationCode(to, teacherName, code string) error
	SendResetCode(to, code string) error
}

type mailer struct {
	dialer  *gomail.Dialer
	cfg     utils.EmailConfig
	log     *zap.Logger
	enabled bool
}

// NewMailer buat mailer SMTP. Kalau kredensial SMTP kosong, email hanya
// dicatat ke log supaya development tetap jalan tanpa akun SMTP.
func NewMailer(cfg utils.EmailConfig, log *zap.Logger) Mailer {
	m := &mailer{
		cfg: cfg,
		log: log.With(zap.String("component", "mailer")),
	}

	if cfg.User == "" || cfg.Password == "" {
		m.log.Warn("SMTP credentials not configured, outgoing emails will be logged only")
		return m
	}

	m.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	m.enabled = true
	return m
}

func (m *mailer) from() string {
	if m.cfg.From != "" {
		return m.cfg.From
	}
	return m.cfg.User
}

func (m *mailer) send(to, subject, htmlBody string) error {
	if !m.enabled {
		m.log.Info("email delivery skipped, SMTP not configured",
			zap.String("to", to),
			zap.String("subject", subject))
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", msg.FormatAddress(m.from(), m.cfg.FromName))
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	return nil
}

func (m *mailer) SendVerificationCode(to, teacherName, code string) error {
	body := fmt.Sprintf(`
		<h2>Hello %s,</h2>
		<p>Use the following code to verify your email address:</p>
		<h1>%s</h1>
		<p>This code will expire in a few minutes. If you did not sign up, you can ignore this email.</p>
	`, teacherName, code)

	return m.send(to, "Verify your email address", body)
}

func (m *mailer) SendResetCode(to, code string) error {
	body := fmt.Sprintf(`
		<h3>Password reset requested</h3>
		<p>We received a request to reset the password for your account.</p>
		<p>Use the following code to reset your password: <strong>%s</strong></p>
		<p>If you did not request this change, you can ignore this email.</p>
	`, code)

	return m.send(to, "Reset your password", body)
}
