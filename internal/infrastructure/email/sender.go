package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"collabhub.backend/pkg/logger"
)

const defaultEndpoint = "https://api.resend.com/emails"

// Sender delivers transactional email through the Resend API.
type Sender struct {
	apiKey   string
	from     string
	baseURL  string
	endpoint string
	client   *http.Client
}

// NewSender creates a Resend-backed sender. baseURL is the public URL
// verification links point back to.
func NewSender(apiKey, from, baseURL string) *Sender {
	return &Sender{
		apiKey:   apiKey,
		from:     from,
		baseURL:  baseURL,
		endpoint: defaultEndpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendError struct {
	Message string `json:"message"`
}

// SendVerification sends the email-verification link for a fresh signup.
func (s *Sender) SendVerification(ctx context.Context, to, token string) error {
	link := fmt.Sprintf("%s/verify-email?token=%s", s.baseURL, token)
	html := fmt.Sprintf(
		`<p>Welcome to CollabHub!</p><p>Confirm your email address by clicking <a href="%s">this link</a>. The link expires in 24 hours.</p>`,
		link,
	)
	return s.send(ctx, to, "Verify your CollabHub email", html)
}

func (s *Sender) send(ctx context.Context, to, subject, html string) error {
	if s.apiKey == "" {
		logger.Warn(ctx, "email delivery skipped, no api key configured", zap.String("to", to))
		return nil
	}

	payload, err := json.Marshal(sendRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach email provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		var apiErr sendError
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
			return fmt.Errorf("email provider error (status %d): %s", resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("email provider error (status %d)", resp.StatusCode)
	}

	logger.Info(ctx, "verification email sent", zap.String("to", to))
	return nil
}
