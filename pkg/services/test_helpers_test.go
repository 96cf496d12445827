package services

import (
	"context"
	"testing"

	"github.com/agentd-io/agentd/ent"
	"github.com/agentd-io/agentd/pkg/models"
	"github.com/stretchr/testify/require"
)

// createTestThread creates a thread for tests that need one
func createTestThread(t *testing.T, client *ent.Client) *ent.Thread {
	t.Helper()

	th, err := NewThreadService(client).CreateThread(context.Background(), models.CreateThreadRequest{})
	require.NoError(t, err)
	return th
}

// createTestRun enqueues a pending run on a fresh thread
func createTestRun(t *testing.T, client *ent.Client) *ent.AgentRun {
	t.Helper()

	th := createTestThread(t, client)
	run, err := NewRunService(client).CreateRun(context.Background(), models.CreateRunRequest{
		ThreadID: th.ID,
		Model:    "gpt-4o",
	})
	require.NoError(t, err)
	return run
}
