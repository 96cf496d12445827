// Package config loads and validates service configuration.
//
// Configuration comes from an optional YAML file (agentd.yaml in the config
// directory) with environment variables expanded via {{.VAR}} templates,
// layered over built-in defaults. Database settings are read directly from
// the environment by pkg/database.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration object.
type Config struct {
	Server  *ServerConfig  `yaml:"server"`
	Queue   *QueueConfig   `yaml:"queue"`
	Events  *EventsConfig  `yaml:"events"`
	LLM     *LLMConfig     `yaml:"llm"`
	Trigger *TriggerConfig `yaml:"trigger"`
	Sandbox *SandboxConfig `yaml:"sandbox"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// A missing agentd.yaml is not an error — defaults apply.
func Initialize(configDir string) (*Config, error) {
	cfg := &Config{
		Server:  DefaultServerConfig(),
		Queue:   DefaultQueueConfig(),
		Events:  DefaultEventsConfig(),
		LLM:     DefaultLLMConfig(),
		Trigger: DefaultTriggerConfig(),
		Sandbox: DefaultSandboxConfig(),
	}

	path := filepath.Join(configDir, "agentd.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("No agentd.yaml found, using defaults", "path", path)
			return cfg, cfg.Validate()
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(ExpandEnv(data), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// Re-fill sections the file nulled out.
	if cfg.Server == nil {
		cfg.Server = DefaultServerConfig()
	}
	if cfg.Queue == nil {
		cfg.Queue = DefaultQueueConfig()
	}
	if cfg.Events == nil {
		cfg.Events = DefaultEventsConfig()
	}
	if cfg.LLM == nil {
		cfg.LLM = DefaultLLMConfig()
	}
	if cfg.Trigger == nil {
		cfg.Trigger = DefaultTriggerConfig()
	}
	if cfg.Sandbox == nil {
		cfg.Sandbox = DefaultSandboxConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Info("Configuration loaded", "path", path)
	return cfg, nil
}

// Validate checks cross-field constraints on the loaded configuration.
func (c *Config) Validate() error {
	if c.Queue.WorkerCount <= 0 {
		return fmt.Errorf("queue.worker_count must be positive, got %d", c.Queue.WorkerCount)
	}
	if c.Queue.MaxConcurrentRuns <= 0 {
		return fmt.Errorf("queue.max_concurrent_runs must be positive, got %d", c.Queue.MaxConcurrentRuns)
	}
	if c.Queue.HeartbeatInterval >= c.Queue.OrphanThreshold {
		return fmt.Errorf("queue.heartbeat_interval (%v) must be shorter than queue.orphan_threshold (%v)",
			c.Queue.HeartbeatInterval, c.Queue.OrphanThreshold)
	}
	if c.LLM.Addr == "" {
		return fmt.Errorf("llm.addr is required")
	}
	return nil
}
