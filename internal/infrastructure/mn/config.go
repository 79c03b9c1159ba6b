package mn

import (
	"errors"
	"net/url"
	"strings"
	"time"
)

// Config holds the MN API client configuration.
type Config struct {
	// BaseURL is the root of the MN REST API
	BaseURL string
	// TokenURL is the OAuth2 client-credentials token endpoint. Empty disables
	// authentication (local development and tests).
	TokenURL string
	// ClientID is the OAuth2 client ID
	ClientID string
	// ClientSecret is the OAuth2 client secret
	ClientSecret string
	// Timeout is the per-request HTTP timeout
	Timeout time.Duration
}

// Validation errors for the MN client configuration.
var (
	ErrConfigMissingBaseURL = errors.New("mn: base URL is required")
	ErrConfigInvalidBaseURL = errors.New("mn: base URL is not a valid URL")
	ErrConfigMissingClient  = errors.New("mn: client ID and secret are required when a token URL is set")
)

// Validate checks the configuration for required fields.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return ErrConfigMissingBaseURL
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrConfigInvalidBaseURL
	}
	if c.TokenURL != "" && (c.ClientID == "" || c.ClientSecret == "") {
		return ErrConfigMissingClient
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	return nil
}
