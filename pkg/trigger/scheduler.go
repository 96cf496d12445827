package trigger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Job is one recurring job registered with the external scheduler.
type Job struct {
	ID          string            `json:"id"`
	Destination string            `json:"destination"`
	CronExpr    string            `json:"cron"`
	Body        json.RawMessage   `json:"body,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
}

// Scheduler is the external cron scheduler the schedule provider
// registers jobs with. Jobs POST their body to the destination URL on
// every firing.
type Scheduler interface {
	Schedule(ctx context.Context, destination, cronExpr string, body []byte, headers map[string]string) (string, error)
	Delete(ctx context.Context, jobID string) error
	List(ctx context.Context) ([]Job, error)
}

// HTTPScheduler talks to the scheduler's REST API.
type HTTPScheduler struct {
	httpClient *http.Client
	baseURL    string
}

// NewHTTPScheduler creates a scheduler client for the given endpoint.
func NewHTTPScheduler(baseURL string) *HTTPScheduler {
	return &HTTPScheduler{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
	}
}

// OverrideHTTPClientForTest replaces the underlying HTTP client.
// Test use only.
func (s *HTTPScheduler) OverrideHTTPClientForTest(client *http.Client) {
	s.httpClient = client
}

// Schedule registers a recurring job and returns its scheduler-assigned id.
func (s *HTTPScheduler) Schedule(ctx context.Context, destination, cronExpr string, body []byte, headers map[string]string) (string, error) {
	payload, err := json.Marshal(Job{
		Destination: destination,
		CronExpr:    cronExpr,
		Body:        body,
		Headers:     headers,
	})
	if err != nil {
		return "", fmt.Errorf("encode job: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/jobs", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("register job: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("scheduler returned HTTP %d", resp.StatusCode)
	}

	var created Job
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("decode job response: %w", err)
	}
	return created.ID, nil
}

// Delete removes a job by id.
func (s *HTTPScheduler) Delete(ctx context.Context, jobID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, s.baseURL+"/jobs/"+jobID, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("delete job %s: %w", jobID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("scheduler returned HTTP %d", resp.StatusCode)
	}
	return nil
}

// List returns all registered jobs.
func (s *HTTPScheduler) List(ctx context.Context) ([]Job, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/jobs", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scheduler returned HTTP %d", resp.StatusCode)
	}

	var jobs []Job
	if err := json.NewDecoder(resp.Body).Decode(&jobs); err != nil {
		return nil, fmt.Errorf("decode jobs response: %w", err)
	}
	return jobs, nil
}
