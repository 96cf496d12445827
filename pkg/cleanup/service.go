// Package cleanup enforces retention on the response buffer.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/agentd-io/agentd/pkg/config"
	"github.com/agentd-io/agentd/pkg/services"
)

// Service periodically removes buffered events older than the configured
// TTL. The normal path deletes a run's buffer shortly after the run
// finishes; this sweep catches rows whose owning instance died before that
// cleanup could be scheduled. Deletion by age is idempotent and safe to run
// from multiple instances at once.
type Service struct {
	config       *config.EventsConfig
	eventService *services.EventService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new retention sweep service.
func NewService(cfg *config.EventsConfig, eventService *services.EventService) *Service {
	return &Service{
		config:       cfg,
		eventService: eventService,
	}
}

// Start launches the background sweep loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Event retention sweep started",
		"ttl", s.config.TTL,
		"interval", s.config.SweepInterval)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Event retention sweep stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.sweep()

	ticker := time.NewTicker(s.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *Service) sweep() {
	count, err := s.eventService.CleanupOrphanedEvents(context.Background(), s.config.TTL)
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: removed expired buffer events", "count", count)
	}
}
