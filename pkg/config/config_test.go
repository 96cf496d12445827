package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_Defaults(t *testing.T) {
	cfg, err := Initialize(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Queue.WorkerCount)
	assert.Equal(t, 20, cfg.Queue.MaxConcurrentRuns)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 60*time.Second, cfg.Events.CleanupGrace)
	assert.Equal(t, "localhost:50051", cfg.LLM.Addr)
}

func TestInitialize_YAMLOverrides(t *testing.T) {
	dir := t.TempDir()
	yaml := `
queue:
  worker_count: 2
  max_concurrent_runs: 4
  poll_interval: 250ms
  heartbeat_interval: 10s
  orphan_threshold: 1m
llm:
  addr: "gateway:9000"
  fallback_addr: "gateway-b:9000"
trigger:
  webhook_base_url: "https://api.example.com"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "agentd.yaml"), []byte(yaml), 0o644))

	cfg, err := Initialize(dir)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	assert.Equal(t, 4, cfg.Queue.MaxConcurrentRuns)
	assert.Equal(t, 250*time.Millisecond, cfg.Queue.PollInterval)
	assert.Equal(t, "gateway:9000", cfg.LLM.Addr)
	assert.Equal(t, "gateway-b:9000", cfg.LLM.FallbackAddr)
	assert.Equal(t, "https://api.example.com", cfg.Trigger.WebhookBaseURL)

	// Sections absent from the file keep defaults.
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestInitialize_RejectsBadHeartbeat(t *testing.T) {
	dir := t.TempDir()
	yaml := `
queue:
  heartbeat_interval: 5m
  orphan_threshold: 1m
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "agentd.yaml"), []byte(yaml), 0o644))

	_, err := Initialize(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "heartbeat_interval")
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("AGENTD_TEST_HOST", "db.internal")

	out := ExpandEnv([]byte("host: {{.AGENTD_TEST_HOST}}"))
	assert.Equal(t, "host: db.internal", string(out))

	// Literal $ is preserved.
	out = ExpandEnv([]byte(`cron: "0 9 * * 1-5"`))
	assert.Equal(t, `cron: "0 9 * * 1-5"`, string(out))

	// Missing variables expand to empty.
	out = ExpandEnv([]byte("key: {{.AGENTD_TEST_MISSING_VAR}}"))
	assert.Equal(t, "key: ", string(out))
}
