package smtp

import (
	"fmt"

	"github.com/JMURv/gate-access/internal/config"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type EmailService interface {
	SendDeviceAlert(subject, body string) error
}

type EmailServer struct {
	server string
	port   int
	user   string
	pass   string
	admin  string
}

func New(conf config.Config) *EmailServer {
	return &EmailServer{
		server: conf.Email.Server,
		port:   conf.Email.Port,
		user:   conf.Email.User,
		pass:   conf.Email.Pass,
		admin:  conf.Email.Admin,
	}
}

// SendDeviceAlert notifies the organizer admin address about device
// lifecycle events (created, deactivated).
func (s *EmailServer) SendDeviceAlert(subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.user)
	m.SetHeader("To", s.admin)
	m.SetHeader("Subject", fmt.Sprintf("[gate-access] %s", subject))
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.server, s.port, s.user, s.pass)
	if err := d.DialAndSend(m); err != nil {
		zap.L().Error(
			"Failed to send an email",
			zap.Error(err),
		)
		return err
	}
	return nil
}
