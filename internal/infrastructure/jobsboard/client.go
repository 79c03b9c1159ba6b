package jobsboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/jobsboard/integration-bridge/internal/domain/integration"
)

// maxResponseSize is the maximum allowed response size from the Jobs Board API (10MB)
const maxResponseSize = 10 * 1024 * 1024

// ErrUnavailable indicates the Jobs Board API could not be reached.
var ErrUnavailable = errors.New("jobsboard: API unavailable")

// Client implements integration.JobsBoardGateway against the source Jobs
// Board REST API.
type Client struct {
	config     *Config
	httpClient *http.Client
}

// NewClient creates a new Jobs Board API client. When a token URL is
// configured, requests carry an OAuth2 client-credentials bearer token.
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

// GetEmployer fetches the current state of an employer.
// A 404 response yields (nil, nil).
func (c *Client) GetEmployer(ctx context.Context, id string) (*integration.Employer, error) {
	body, found, err := c.get(ctx, "/employers/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	var resp employerResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("jobsboard: failed to parse employer response: %w", err)
	}
	return resp.toDomain(), nil
}

// GetJob fetches the current state of a job.
// A 404 response yields (nil, nil).
func (c *Client) GetJob(ctx context.Context, id string) (*integration.Job, error) {
	body, found, err := c.get(ctx, "/jobs/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	var resp jobResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("jobsboard: failed to parse job response: %w", err)
	}
	return resp.toDomain(), nil
}

// GetAllEmployers fetches one zero-indexed page of employers.
func (c *Client) GetAllEmployers(ctx context.Context, page, size int) (*integration.EmployerPage, error) {
	body, _, err := c.get(ctx, "/employers", pageQuery(page, size))
	if err != nil {
		return nil, err
	}

	var resp employerPageResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("jobsboard: failed to parse employer page: %w", err)
	}

	result := &integration.EmployerPage{
		Content: make([]integration.Employer, len(resp.Content)),
		Page:    resp.Page.toDomain(),
	}
	for i := range resp.Content {
		result.Content[i] = *resp.Content[i].toDomain()
	}
	return result, nil
}

// GetAllJobs fetches one zero-indexed page of jobs.
func (c *Client) GetAllJobs(ctx context.Context, page, size int) (*integration.JobPage, error) {
	body, _, err := c.get(ctx, "/jobs", pageQuery(page, size))
	if err != nil {
		return nil, err
	}

	var resp jobPageResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("jobsboard: failed to parse job page: %w", err)
	}

	result := &integration.JobPage{
		Content: make([]integration.Job, len(resp.Content)),
		Page:    resp.Page.toDomain(),
	}
	for i := range resp.Content {
		result.Content[i] = *resp.Content[i].toDomain()
	}
	return result, nil
}

// CreateExpressionOfInterest records a prisoner's interest in a job in the
// source system. The operation is idempotent on the source side.
func (c *Client) CreateExpressionOfInterest(ctx context.Context, jobID, prisonNumber string) error {
	path := "/jobs/" + url.PathEscape(jobID) + "/expressions-of-interest/" + url.PathEscape(prisonNumber)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.config.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("jobsboard: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize))

	if resp.StatusCode >= 400 {
		return fmt.Errorf("jobsboard: expression-of-interest request failed: HTTP %d", resp.StatusCode)
	}
	return nil
}

// get performs a GET and returns the body. found is false for a 404.
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, bool, error) {
	endpoint := c.config.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, false, fmt.Errorf("jobsboard: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, false, fmt.Errorf("jobsboard: failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, false, nil
	}
	if resp.StatusCode >= 400 {
		return nil, false, fmt.Errorf("jobsboard: request failed: HTTP %d", resp.StatusCode)
	}

	return body, true, nil
}

func pageQuery(page, size int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	return q
}

// Ensure Client implements JobsBoardGateway
var _ integration.JobsBoardGateway = (*Client)(nil)
