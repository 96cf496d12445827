package config

import "time"

// ServerConfig contains HTTP server and WebSocket settings.
type ServerConfig struct {
	// Port the HTTP server listens on.
	Port string `yaml:"port"`

	// WSWriteTimeout bounds a single WebSocket write.
	WSWriteTimeout time.Duration `yaml:"ws_write_timeout"`

	// AllowedWSOrigins is the WebSocket origin allowlist.
	// Empty means same-origin checks are skipped (development).
	AllowedWSOrigins []string `yaml:"allowed_ws_origins"`

	// StreamKeepAlive is the interval between SSE keep-alive comments
	// while a viewer waits for new items.
	StreamKeepAlive time.Duration `yaml:"stream_keep_alive"`
}

// DefaultServerConfig returns the built-in server defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:            "8080",
		WSWriteTimeout:  10 * time.Second,
		StreamKeepAlive: 15 * time.Second,
	}
}

// EventsConfig contains response buffer retention settings.
type EventsConfig struct {
	// CleanupGrace is how long buffer rows survive after a run reaches a
	// terminal state, so late viewers still receive the final items.
	CleanupGrace time.Duration `yaml:"cleanup_grace"`

	// TTL is the age-based bound for rows whose run never finalised
	// (e.g. the owning instance died before scheduling cleanup).
	TTL time.Duration `yaml:"ttl"`

	// SweepInterval is how often the age-based sweep runs.
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// DefaultEventsConfig returns the built-in event retention defaults.
func DefaultEventsConfig() *EventsConfig {
	return &EventsConfig{
		CleanupGrace:  60 * time.Second,
		TTL:           24 * time.Hour,
		SweepInterval: time.Hour,
	}
}

// LLMConfig contains the LLM gateway transport settings.
type LLMConfig struct {
	// Addr is the primary gRPC gateway address.
	Addr string `yaml:"addr"`

	// FallbackAddr, when set, is tried after an overload-classified error
	// from the primary.
	FallbackAddr string `yaml:"fallback_addr"`

	// DefaultModel is used when a run does not name one.
	DefaultModel string `yaml:"default_model"`
}

// DefaultLLMConfig returns the built-in LLM transport defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		Addr:         "localhost:50051",
		DefaultModel: "claude-sonnet-4",
	}
}

// TriggerConfig contains trigger service settings.
type TriggerConfig struct {
	// WebhookBaseURL is this service's externally reachable base URL;
	// the schedule provider points scheduler jobs at
	// {WebhookBaseURL}/api/v1/triggers/{id}/webhook.
	WebhookBaseURL string `yaml:"webhook_base_url"`

	// SchedulerURL is the external scheduler's API endpoint.
	SchedulerURL string `yaml:"scheduler_url"`

	// MaxConsecutiveFailures disables a trigger after this many failed
	// scheduled executions in a row. 0 disables the bound.
	MaxConsecutiveFailures int `yaml:"max_consecutive_failures"`
}

// DefaultTriggerConfig returns the built-in trigger defaults.
func DefaultTriggerConfig() *TriggerConfig {
	return &TriggerConfig{
		WebhookBaseURL:         "http://localhost:8080",
		MaxConsecutiveFailures: 5,
	}
}
