package email

import (
	"fmt"

	"jobboard_backend/internal/models"
)

// Provider определяет интерфейс для отправки email
type Provider interface {
	// Send отправляет простое email сообщение
	Send(email *Email) error

	// SendApplicationStatusChanged уведомляет кандидата о смене статуса заявки
	SendApplicationStatusChanged(to string, jobTitle string, status models.ApplicationStatus, feedback string) error

	// Close закрывает соединение с провайдером
	Close() error
}

func statusChangedEmail(to string, jobTitle string, status models.ApplicationStatus, feedback string) *Email {
	body := fmt.Sprintf("The status of your application for %q is now: %s.", jobTitle, status)
	if feedback != "" {
		body += "\n\nEmployer feedback:\n" + feedback
	}
	return &Email{
		To:      []string{to},
		Subject: fmt.Sprintf("Application update: %s", jobTitle),
		Body:    body,
	}
}
