package mailer

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/menuboard/menuboard/config"
)

// Mailer sends transactional mail through the configured SMTP relay.
type Mailer struct {
	cfg config.MailConfig
}

func New(cfg config.MailConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// SendPasswordReset mails a one-time reset token to an operator.
func (m *Mailer) SendPasswordReset(to, username, token string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Menuboard password reset")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nA password reset was requested for your Menuboard admin account.\n"+
			"Use this token to set a new password:\n\n    %s\n\n"+
			"If you did not request this, you can ignore this mail.\n",
		username, token))

	dialer := gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.Username, m.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		zap.L().Error("password reset mail failed", zap.String("to", to), zap.Error(err))
		return err
	}
	zap.L().Info("password reset mail sent", zap.String("to", to))
	return nil
}
