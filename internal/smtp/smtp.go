package smtp

import (
	"context"
	"fmt"

	"github.com/JMURv/apk-gate/internal/config"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// EmailServer notifies the operations inbox about token lifecycle events.
// Delivery is best effort; failures are logged and never block issuance.
type EmailServer struct {
	enabled bool
	server  string
	port    int
	user    string
	pass    string
	admin   string
}

func New(conf config.Config) *EmailServer {
	return &EmailServer{
		enabled: conf.Email.Enabled,
		server:  conf.Email.Server,
		port:    conf.Email.Port,
		user:    conf.Email.User,
		pass:    conf.Email.Pass,
		admin:   conf.Email.Admin,
	}
}

func (s *EmailServer) TokenIssued(_ context.Context, customerKey, tokenValue string) {
	if !s.enabled {
		return
	}

	m := s.getMessageBase("Token issued", s.admin)
	m.SetBody(
		"text/plain",
		fmt.Sprintf(
			"A new access token (%s) was issued for customer %q.",
			abbreviate(tokenValue), customerKey,
		),
	)

	s.send(m)
}

func (s *EmailServer) TokenRevoked(_ context.Context, tokenValue string) {
	if !s.enabled {
		return
	}

	m := s.getMessageBase("Token revoked", s.admin)
	m.SetBody(
		"text/plain",
		fmt.Sprintf("Access token (%s) was revoked.", abbreviate(tokenValue)),
	)

	s.send(m)
}

// abbreviate keeps full token values out of mailboxes.
func abbreviate(tokenValue string) string {
	if len(tokenValue) <= 8 {
		return tokenValue
	}
	return tokenValue[:8] + "..."
}

func (s *EmailServer) getMessageBase(subject, toEmail string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", s.user)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	return m
}

func (s *EmailServer) send(m *gomail.Message) {
	d := gomail.NewDialer(s.server, s.port, s.user, s.pass)
	if err := d.DialAndSend(m); err != nil {
		zap.L().Error(
			"Failed to send an email",
			zap.Error(err),
		)
	}
}
