package sandbox

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	neturl "net/url"

	"github.com/agentd-io/agentd/pkg/config"
)

// HTTPProvider talks to the sandbox orchestrator's REST API.
type HTTPProvider struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
}

// NewHTTPProvider creates a provider for the configured orchestrator.
func NewHTTPProvider(cfg *config.SandboxConfig) *HTTPProvider {
	return &HTTPProvider{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		logger:     slog.Default(),
	}
}

// OverrideHTTPClientForTest replaces the underlying HTTP client.
// Test use only.
func (p *HTTPProvider) OverrideHTTPClientForTest(client *http.Client) {
	p.httpClient = client
}

// Create provisions a new sandbox bound to projectID.
func (p *HTTPProvider) Create(ctx context.Context, password, projectID string) (*Sandbox, error) {
	payload := map[string]string{
		"password":   password,
		"project_id": projectID,
	}

	var sb Sandbox
	if err := p.do(ctx, http.MethodPost, p.baseURL+"/sandboxes", payload, &sb); err != nil {
		return nil, fmt.Errorf("create sandbox for project %s: %w", projectID, err)
	}

	p.logger.Info("Sandbox created", "sandbox_id", sb.ID, "project_id", projectID)
	return &sb, nil
}

// GetOrStart fetches a sandbox, asking the orchestrator to resume it when
// it has been suspended.
func (p *HTTPProvider) GetOrStart(ctx context.Context, sandboxID string) (*Sandbox, error) {
	var sb Sandbox
	url := fmt.Sprintf("%s/sandboxes/%s/start", p.baseURL, sandboxID)
	if err := p.do(ctx, http.MethodPost, url, nil, &sb); err != nil {
		return nil, fmt.Errorf("start sandbox %s: %w", sandboxID, err)
	}
	return &sb, nil
}

// Delete tears down a sandbox.
func (p *HTTPProvider) Delete(ctx context.Context, sandboxID string) error {
	url := fmt.Sprintf("%s/sandboxes/%s", p.baseURL, sandboxID)
	if err := p.do(ctx, http.MethodDelete, url, nil, nil); err != nil {
		return fmt.Errorf("delete sandbox %s: %w", sandboxID, err)
	}
	p.logger.Info("Sandbox deleted", "sandbox_id", sandboxID)
	return nil
}

// UploadFile writes content to path inside the sandbox filesystem. The
// content travels base64-encoded in the JSON body.
func (p *HTTPProvider) UploadFile(ctx context.Context, sandboxID, path string, content []byte) error {
	payload := map[string]string{
		"path":    path,
		"content": base64.StdEncoding.EncodeToString(content),
	}
	url := fmt.Sprintf("%s/sandboxes/%s/files", p.baseURL, sandboxID)
	if err := p.do(ctx, http.MethodPost, url, payload, nil); err != nil {
		return fmt.Errorf("upload file to sandbox %s: %w", sandboxID, err)
	}
	return nil
}

// ListFiles lists the entries under path inside the sandbox filesystem.
func (p *HTTPProvider) ListFiles(ctx context.Context, sandboxID, path string) ([]FileInfo, error) {
	var out struct {
		Files []FileInfo `json:"files"`
	}
	url := fmt.Sprintf("%s/sandboxes/%s/files?path=%s", p.baseURL, sandboxID, neturl.QueryEscape(path))
	if err := p.do(ctx, http.MethodGet, url, nil, &out); err != nil {
		return nil, fmt.Errorf("list files in sandbox %s: %w", sandboxID, err)
	}
	return out.Files, nil
}

func (p *HTTPProvider) do(ctx context.Context, method, url string, payload, out any) error {
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sandbox orchestrator returned HTTP %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
