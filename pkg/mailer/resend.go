package mailer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

const defaultBaseURL = "https://api.resend.com"

type Config struct {
	APIKey  string `json:"apiKey"`
	From    string `json:"from"`
	BaseURL string `json:"baseUrl"`
}

// ResendClient submits email through the Resend transactional API.
type ResendClient struct {
	baseURL string
	apiKey  string
	from    string
	client  *http.Client
}

func NewResendClient(cfg Config) *ResendClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &ResendClient{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		from:    cfg.From,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type apiError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

func (c *ResendClient) SendCertificateEmail(ctx context.Context, email CertificateEmail) error {
	html, err := renderCertificateEmail(email)
	if err != nil {
		return errors.Wrap(err, "failed to render certificate email")
	}

	payload := sendRequest{
		From:    c.from,
		To:      []string{email.To},
		Subject: fmt.Sprintf("Congratulations! Your Certificate for %s", email.TaskTitle),
		HTML:    html,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "failed to marshal send request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to build send request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to call email provider")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		respBody, _ := io.ReadAll(resp.Body)

		var apiErr apiError
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Message != "" {
			return errors.Errorf("email provider rejected send: %s (%s)", apiErr.Message, apiErr.Name)
		}
		return errors.Errorf("email provider returned status %d", resp.StatusCode)
	}

	return nil
}
