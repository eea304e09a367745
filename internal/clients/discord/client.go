package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/lotus-labs/faucet-bot/internal/interactions"
)

const (
	// DefaultAPIURL is the Discord REST API base.
	DefaultAPIURL = "https://discord.com/api/v10"

	defaultTimeout = 30 * time.Second
	// Maximum response body size to read for error logging
	maxResponseBodySize = 1024
)

// ErrMissingInteractionToken is returned when a follow-up has no interaction token to address.
var ErrMissingInteractionToken = errors.New("missing interaction token")

// Client edits interaction responses through the Discord webhook API.
type Client struct {
	baseURL       string
	applicationID string
	httpClient    *http.Client
}

// New creates a Client. An empty baseURL uses DefaultAPIURL and a nil httpClient gets a default timeout.
func New(baseURL, applicationID string, httpClient *http.Client) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse discord API URL: %w", err)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:       parsedURL.String(),
		applicationID: applicationID,
		httpClient:    httpClient,
	}, nil
}

// EditOriginal replaces the content of the response to the interaction identified by token.
// It is the only way to complete an interaction that was answered with a deferred ack.
func (c *Client) EditOriginal(ctx context.Context, token string, msg interactions.FollowUp) error {
	if token == "" {
		return ErrMissingInteractionToken
	}
	if c.applicationID == "" {
		return errors.New("application id not configured")
	}
	endpoint, err := url.JoinPath(c.baseURL, "webhooks", c.applicationID, token, "messages", "@original")
	if err != nil {
		return fmt.Errorf("failed to build follow-up URL: %w", err)
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal follow-up: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create follow-up request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send follow-up: %w", err)
	}
	defer resp.Body.Close() // nolint:errcheck

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
		return fmt.Errorf("follow-up returned status code %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}
