package config

import "time"

// SandboxConfig contains the sandbox provisioner transport settings.
type SandboxConfig struct {
	// BaseURL is the sandbox orchestrator's API endpoint. Empty disables
	// provisioning — trigger-initiated projects are created without one.
	BaseURL string `yaml:"base_url"`

	// APIKey authenticates requests to the orchestrator.
	APIKey string `yaml:"api_key"`

	// RequestTimeout bounds a single provisioning call. Sandbox creation
	// involves container startup, so this is generous.
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// DefaultSandboxConfig returns the built-in sandbox defaults.
func DefaultSandboxConfig() *SandboxConfig {
	return &SandboxConfig{
		RequestTimeout: 60 * time.Second,
	}
}
