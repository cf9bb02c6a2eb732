package mailer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func TestRenderCertificateEmail(t *testing.T) {
	html, err := renderCertificateEmail(CertificateEmail{
		StudentName:    "Student",
		TaskTitle:      "Refer five friends",
		CertificateURL: "https://example.com/certificates/abc.pdf",
	})

	assert.NoError(t, err)
	assert.Contains(t, html, "Dear Student,")
	assert.Contains(t, html, "<strong>Refer five friends</strong>")
	assert.Contains(t, html, `href="https://example.com/certificates/abc.pdf"`)
}

func TestResendClient_SendCertificateEmail(t *testing.T) {
	var got sendRequest
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewResendClient(Config{
		APIKey:  "test-key",
		From:    "noreply@school.edu",
		BaseURL: srv.URL,
	})

	err := client.SendCertificateEmail(context.Background(), CertificateEmail{
		To:             "student@school.edu",
		StudentName:    "Student",
		TaskTitle:      "Refer five friends",
		CertificateURL: "https://example.com/certificates/abc.pdf",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, []string{"student@school.edu"}, got.To)
	assert.Equal(t, "noreply@school.edu", got.From)
	assert.Contains(t, got.Subject, "Refer five friends")
	assert.Contains(t, got.HTML, "Download Certificate")
}

func TestResendClient_SendCertificateEmail_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"name":"validation_error","message":"invalid to address"}`))
	}))
	defer srv.Close()

	client := NewResendClient(Config{APIKey: "test-key", BaseURL: srv.URL})

	err := client.SendCertificateEmail(context.Background(), CertificateEmail{To: "bad"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid to address")
}
