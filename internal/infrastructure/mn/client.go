package mn

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/jobsboard/integration-bridge/internal/domain/integration"
)

// maxResponseSize is the maximum allowed response size from the MN API (10MB)
const maxResponseSize = 10 * 1024 * 1024

// ErrUnavailable indicates the MN API could not be reached.
var ErrUnavailable = errors.New("mn: API unavailable")

// Client implements integration.MNGateway against the downstream MN REST API.
// Every call is a single synchronous request; retry policy belongs to the
// caller's delivery mechanism, not here.
type Client struct {
	config     *Config
	httpClient *http.Client
}

// NewClient creates a new MN API client. When a token URL is configured,
// requests carry an OAuth2 client-credentials bearer token.
func NewClient(config *Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: config.Timeout}
	if config.TokenURL != "" {
		cc := clientcredentials.Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			TokenURL:     config.TokenURL,
		}
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
		httpClient = cc.Client(ctx)
		httpClient.Timeout = config.Timeout
	}

	return &Client{
		config:     config,
		httpClient: httpClient,
	}, nil
}

// CreateEmployer registers a new employer downstream. The response carries the
// MN-assigned employer ID.
func (c *Client) CreateEmployer(ctx context.Context, employer integration.MNEmployer) (*integration.MNEmployer, error) {
	body, err := c.send(ctx, http.MethodPost, "/employers", employerRequestFromDomain(employer))
	if err != nil {
		return nil, err
	}

	var resp employerResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("mn: failed to parse employer response: %w", err)
	}
	return resp.toDomain(), nil
}

// UpdateEmployer updates an existing downstream employer.
func (c *Client) UpdateEmployer(ctx context.Context, employer integration.MNEmployer) (*integration.MNEmployer, error) {
	body, err := c.send(ctx, http.MethodPut, "/employers", employerRequestFromDomain(employer))
	if err != nil {
		return nil, err
	}

	var resp employerResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("mn: failed to parse employer response: %w", err)
	}
	return resp.toDomain(), nil
}

// CreateJob registers a new job downstream. The response carries the
// MN-assigned job ID.
func (c *Client) CreateJob(ctx context.Context, job integration.MNJob) (*integration.MNJob, error) {
	body, err := c.send(ctx, http.MethodPost, "/jobs-prospects", jobRequestFromDomain(job))
	if err != nil {
		return nil, err
	}

	var resp jobResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("mn: failed to parse job response: %w", err)
	}
	return resp.toDomain(), nil
}

// UpdateJob updates an existing downstream job.
func (c *Client) UpdateJob(ctx context.Context, job integration.MNJob) (*integration.MNJob, error) {
	body, err := c.send(ctx, http.MethodPut, "/jobs-prospects", jobRequestFromDomain(job))
	if err != nil {
		return nil, err
	}

	var resp jobResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("mn: failed to parse job response: %w", err)
	}
	return resp.toDomain(), nil
}

// send performs a JSON request against the MN API and returns the body.
func (c *Client) send(ctx context.Context, method, path string, payload any) ([]byte, error) {
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("mn: failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("mn: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("mn: failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("mn: request failed: HTTP %d: %s", resp.StatusCode, truncate(body, 512))
	}

	return body, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

// Ensure Client implements MNGateway
var _ integration.MNGateway = (*Client)(nil)
