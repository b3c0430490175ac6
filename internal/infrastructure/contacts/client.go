// Package contacts resolves display names for conversation counterparties
// against the external contacts gateway.
package contacts

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"propdesk/inbox-api/internal/domain/message"
)

// Client implements conversation.ProfileProvider.
type Client struct {
	httpClient *resty.Client
	log        zerolog.Logger
}

// NewClient constructs the contacts client. An empty baseURL disables
// lookups; every resolution then falls back to the raw address.
func NewClient(baseURL string, log zerolog.Logger) *Client {
	return &Client{
		httpClient: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(3 * time.Second).
			SetHeader("Content-Type", "application/json"),
		log: log.With().Str("component", "contacts-client").Logger(),
	}
}

type profileResponse struct {
	DisplayName string `json:"display_name"`
}

// DisplayName resolves the counterparty address to a contact name. Lookup
// failures are logged and reported as a miss so the caller can fall back to
// the raw address.
func (c *Client) DisplayName(ctx context.Context, channel message.Channel, counterparty string) (string, bool) {
	if c.httpClient.BaseURL == "" {
		return "", false
	}

	var profile profileResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("channel", channel.String()).
		SetQueryParam("address", counterparty).
		SetResult(&profile).
		Get("/v1/contacts/resolve")
	if err != nil {
		c.log.Warn().Err(err).Str("address", counterparty).Msg("contact lookup failed")
		return "", false
	}
	if resp.IsError() || profile.DisplayName == "" {
		return "", false
	}

	return profile.DisplayName, true
}
