package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Service defines the interface for sending emails
type Service interface {
	SendPasswordReset(to, resetLink, expiresAt string) error
}

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type serviceImpl struct {
	cfg    Config
	dialer *gomail.Dialer
}

// NewService creates a new email service instance
func NewService(cfg Config) Service {
	return &serviceImpl{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// SendPasswordReset sends a password reset email to the user
func (s *serviceImpl) SendPasswordReset(to, resetLink, expiresAt string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Reset your Thameem Mobile password")
	m.SetBody("text/html", fmt.Sprintf(
		"<p>A password reset was requested for your account.</p>"+
			"<p><a href=%q>Reset password</a></p>"+
			"<p>This link expires at %s. If you did not request this, ignore this email.</p>",
		resetLink, expiresAt,
	))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send password reset email: %w", err)
	}
	return nil
}
