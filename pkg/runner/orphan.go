package runner

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/agentd-io/agentd/ent"
	"github.com/agentd-io/agentd/ent/agentrun"
	"github.com/agentd-io/agentd/pkg/events"
	"github.com/agentd-io/agentd/pkg/services"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned runs.
// All instances run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds running runs with stale heartbeats and
// marks them as failed (terminal — no resume).
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	orphans, err := p.runs.FindStaleRunning(ctx, p.config.OrphanThreshold)
	if err != nil {
		return fmt.Errorf("failed to query orphaned runs: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned runs", "count", len(orphans))

	recovered := 0
	for _, run := range orphans {
		if err := p.recoverOrphanedRun(ctx, run); err != nil {
			slog.Error("Failed to recover orphaned run",
				"run_id", run.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedRun marks a single orphaned run as failed and publishes
// the terminal status so stream viewers are released.
func (p *WorkerPool) recoverOrphanedRun(ctx context.Context, run *ent.AgentRun) error {
	log := slog.With("run_id", run.ID, "old_instance_id", run.InstanceID)

	lastHeartbeat := "unknown"
	if run.LastHeartbeatAt != nil {
		lastHeartbeat = run.LastHeartbeatAt.Format(time.RFC3339)
	}

	instanceID := "unknown"
	if run.InstanceID != nil {
		instanceID = *run.InstanceID
	}

	errMsg := fmt.Sprintf("Orphaned: no heartbeat from instance %s since %s", instanceID, lastHeartbeat)
	finalized, err := p.runs.FinalizeRun(ctx, run.ID, agentrun.StatusFailed, errMsg, nil)
	if err != nil {
		return fmt.Errorf("failed to mark run as failed: %w", err)
	}

	if p.publisher != nil {
		if err := p.publisher.PublishRunStatus(ctx, run.ID, events.RunStatusPayload{
			Type:         events.EventTypeRunStatus,
			RunID:        run.ID,
			ThreadID:     finalized.ThreadID,
			Status:       string(agentrun.StatusFailed),
			ErrorMessage: errMsg,
			Timestamp:    time.Now().Format(time.RFC3339Nano),
		}); err != nil {
			log.Warn("Failed to publish orphan terminal status", "error", err)
		}
	}

	log.Warn("Orphaned run marked as failed", "last_heartbeat", lastHeartbeat)
	return nil
}

// CleanupStartupOrphans performs a one-time cleanup of runs owned by this
// instance that were running when the instance previously crashed.
// Called once during startup, before the worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, runs *services.RunService, instanceID string) error {
	orphans, err := runs.ListRunningByInstance(ctx, instanceID)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"instance_id", instanceID,
		"count", len(orphans))

	for _, run := range orphans {
		errMsg := fmt.Sprintf("Orphaned: instance %s restarted while run was in progress", instanceID)
		if _, err := runs.FinalizeRun(ctx, run.ID, agentrun.StatusFailed, errMsg, nil); err != nil {
			slog.Error("Failed to mark startup orphan",
				"run_id", run.ID,
				"error", err)
			continue
		}

		slog.Info("Startup orphan recovered", "run_id", run.ID)
	}

	return nil
}
