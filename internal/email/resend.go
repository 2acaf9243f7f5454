package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const defaultResendEndpoint = "https://api.resend.com/emails"

// resendSender implements Sender against the Resend HTTP API.
type resendSender struct {
	apiKey   string
	endpoint string
	client   *http.Client
	logger   zerolog.Logger
}

// NewResendSender creates a Resend-backed sender.
func NewResendSender(apiKey string, logger zerolog.Logger) Sender {
	return &resendSender{
		apiKey:   apiKey,
		endpoint: defaultResendEndpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
		logger:   logger.With().Str("component", "resend-sender").Logger(),
	}
}

// NewResendSenderWithEndpoint is NewResendSender pointed at a custom API
// endpoint; used by tests.
func NewResendSenderWithEndpoint(apiKey, endpoint string, logger zerolog.Logger) Sender {
	s := NewResendSender(apiKey, logger).(*resendSender)
	s.endpoint = endpoint
	return s
}

type resendResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Send delivers the message and returns the provider's message id.
func (s *resendSender) Send(ctx context.Context, msg Message) (string, error) {
	body, err := json.Marshal(msg)
	if err != nil {
		return "", fmt.Errorf("failed to encode email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error().Err(err).Str("subject", msg.Subject).Msg("email request failed")
		return "", fmt.Errorf("email request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read email response: %w", err)
	}

	var parsed resendResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil && resp.StatusCode < 300 {
		return "", fmt.Errorf("failed to decode email response: %w", err)
	}

	if resp.StatusCode >= 300 {
		s.logger.Error().
			Int("status", resp.StatusCode).
			Str("message", parsed.Message).
			Msg("email provider rejected send")
		return "", fmt.Errorf("email provider returned status %d: %s", resp.StatusCode, parsed.Message)
	}

	s.logger.Info().Str("message_id", parsed.ID).Str("subject", msg.Subject).Msg("email sent")
	return parsed.ID, nil
}
