package email

import (
	"fmt"

	"jobboard_backend/internal/models"

	"gopkg.in/gomail.v2"
)

// SMTPProvider реализует Provider через gomail
type SMTPProvider struct {
	config *SMTPConfig
	dialer *gomail.Dialer
}

var _ Provider = (*SMTPProvider)(nil)

// NewSMTPProvider создает новый SMTP провайдер
func NewSMTPProvider(config *SMTPConfig) (*SMTPProvider, error) {
	if config.Host == "" {
		return nil, fmt.Errorf("SMTP host is required")
	}
	if config.Port <= 0 || config.Port > 65535 {
		return nil, fmt.Errorf("invalid SMTP port: %d", config.Port)
	}

	return &SMTPProvider{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}, nil
}

func (p *SMTPProvider) Send(email *Email) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.config.FromEmail, p.config.FromName)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/plain", email.Body)

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (p *SMTPProvider) SendApplicationStatusChanged(to string, jobTitle string, status models.ApplicationStatus, feedback string) error {
	return p.Send(statusChangedEmail(to, jobTitle, status, feedback))
}

func (p *SMTPProvider) Close() error {
	return nil
}
