package mailer

import "context"

// CertificateEmail carries everything the certificate notification needs.
type CertificateEmail struct {
	To             string
	StudentName    string
	TaskTitle      string
	CertificateURL string
}

// Mailer dispatches transactional email. Implementations never retry;
// callers decide whether a send failure is fatal.
type Mailer interface {
	SendCertificateEmail(ctx context.Context, email CertificateEmail) error
}

// Mock records sends instead of performing them. Used in tests and when
// no API key is configured.
type Mock struct {
	Sent []CertificateEmail
	Err  error
}

func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SendCertificateEmail(_ context.Context, email CertificateEmail) error {
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, email)
	return nil
}
