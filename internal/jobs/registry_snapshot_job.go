package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// RegistrySnapshotJob periodically logs the size of each registry. The
// snapshot is the cheapest way to watch the ledger grow without an external
// metrics stack.
type RegistrySnapshotJob struct {
	handler queries.GetRegistryStatsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewRegistrySnapshotJob creates a job that logs registry counts once a minute.
func NewRegistrySnapshotJob(handler queries.GetRegistryStatsQueryHandler, logger *slog.Logger) *RegistrySnapshotJob {
	return &RegistrySnapshotJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "registry_snapshot_job"),
	}
}

// Start begins the snapshot job to run every minute.
func (j *RegistrySnapshotJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		stats, err := j.handler.Handle(ctx, queries.NewGetRegistryStatsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Registry snapshot failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Registry snapshot",
			"carriers", stats.Carriers,
			"routes", stats.Routes,
			"schedules", stats.Schedules,
			"optimizations", stats.Optimizations,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Registry snapshot job started (running every minute)")
	return nil
}

// Stop stops the snapshot job.
func (j *RegistrySnapshotJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Registry snapshot job stopped")
}
