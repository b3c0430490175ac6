package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// HTTPService implements webhook notifications via HTTP POST.
type HTTPService struct {
	httpClient *http.Client
	endpoint   string
	log        zerolog.Logger
	maxRetries int
	retryDelay time.Duration
}

// NewHTTPService creates a new HTTP-based webhook service. An empty endpoint
// disables delivery; notifications are then logged and dropped.
func NewHTTPService(endpoint string, log zerolog.Logger) *HTTPService {
	return &HTTPService{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		endpoint:   endpoint,
		log:        log.With().Str("component", "webhook").Logger(),
		maxRetries: 3,
		retryDelay: 2 * time.Second,
	}
}

// NotifyStatusChanged sends a webhook notification for a status transition.
func (s *HTTPService) NotifyStatusChanged(ctx context.Context, payload *StatusChangedPayload) error {
	if s.endpoint == "" {
		s.log.Debug().Str("ticket_id", payload.TicketID).Msg("no webhook URL configured, skipping notification")
		return nil
	}

	if payload.Event == "" {
		payload.Event = EventStatusChanged
	}

	return s.send(ctx, payload)
}

func (s *HTTPService) send(ctx context.Context, payload *StatusChangedPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("create webhook request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", "propdesk-inbox-api/1.0")
		req.Header.Set("X-Propdesk-Event", payload.Event)
		req.Header.Set("X-Propdesk-Ticket-ID", payload.TicketID)

		resp, err := s.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("send webhook (attempt %d/%d): %w", attempt, s.maxRetries, err)
			s.log.Warn().Err(err).Str("url", s.endpoint).Int("attempt", attempt).Msg("webhook delivery failed")

			if attempt < s.maxRetries {
				time.Sleep(s.retryDelay)
				continue
			}
			break
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			s.log.Info().Str("url", s.endpoint).Int("status", resp.StatusCode).Str("ticket_id", payload.TicketID).Msg("webhook delivered successfully")
			return nil
		}

		lastErr = fmt.Errorf("webhook returned status %d (attempt %d/%d)", resp.StatusCode, attempt, s.maxRetries)
		s.log.Warn().Int("status", resp.StatusCode).Str("url", s.endpoint).Int("attempt", attempt).Msg("webhook delivery failed")

		if attempt < s.maxRetries {
			time.Sleep(s.retryDelay)
		}
	}

	return lastErr
}
