package jobsboard

import (
	"errors"
	"net/url"
	"strings"
	"time"
)

// Config holds the Jobs Board API client configuration.
type Config struct {
	// BaseURL is the root of the Jobs Board REST API
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

// Validation errors for the Jobs Board client configuration.
var (
	ErrConfigMissingBaseURL = errors.New("jobsboard: base URL is required")
	ErrConfigInvalidBaseURL = errors.New("jobsboard: base URL is not a valid URL")
	ErrConfigMissingClient  = errors.New("jobsboard: client ID and secret are required when a token URL is set")
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
