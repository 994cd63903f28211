package email

import (
	"sync"

	"jobboard_backend/internal/models"
)

// MockProvider копит отправленные письма в памяти. Используется в тестах
// вместо реального SMTP.
type MockProvider struct {
	mu   sync.Mutex
	sent []*Email

	// SendErr, если задана, возвращается из Send
	SendErr error
}

var _ Provider = (*MockProvider)(nil)

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) Send(email *Email) error {
	if p.SendErr != nil {
		return p.SendErr
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, email)
	return nil
}

func (p *MockProvider) SendApplicationStatusChanged(to string, jobTitle string, status models.ApplicationStatus, feedback string) error {
	return p.Send(statusChangedEmail(to, jobTitle, status, feedback))
}

func (p *MockProvider) Close() error {
	return nil
}

// Sent возвращает копию списка отправленных писем
func (p *MockProvider) Sent() []*Email {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*Email, len(p.sent))
	copy(out, p.sent)
	return out
}
