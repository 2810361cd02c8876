package jobs

import (
	"fmt"
	"log/slog"

	"logistics/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	registrySnapshotJob *RegistrySnapshotJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	registryStatsHandler queries.GetRegistryStatsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		registrySnapshotJob: NewRegistrySnapshotJob(registryStatsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.registrySnapshotJob.Start(); err != nil {
		return fmt.Errorf("failed to start registry snapshot job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.registrySnapshotJob.Stop()
}
