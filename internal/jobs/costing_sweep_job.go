package jobs

import (
	"context"
	"log/slog"
	"time"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DefaultSweepSchedule runs the sweep at the top of every minute.
const DefaultSweepSchedule = "0 * * * * *"

// CostingSweepJob re-publishes costing requests for parcels that have stayed
// uncosted longer than the threshold. The threshold keeps the sweep from
// racing the in-flight costing of freshly created parcels; re-publishing an
// already costed parcel is harmless because the costing update is
// conditional.
type CostingSweepJob struct {
	uowFactory commands.ParcelUoWFactory
	publisher  ports.MessagePublisher
	threshold  time.Duration
	schedule   string
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewCostingSweepJob creates the sweep job. schedule is a six-field cron
// expression, usually DefaultSweepSchedule; threshold is the minimum age of
// an uncosted parcel before the sweep picks it up.
func NewCostingSweepJob(
	uowFactory commands.ParcelUoWFactory,
	publisher ports.MessagePublisher,
	schedule string,
	threshold time.Duration,
	logger *slog.Logger,
) *CostingSweepJob {
	return &CostingSweepJob{
		uowFactory: uowFactory,
		publisher:  publisher,
		threshold:  threshold,
		schedule:   schedule,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "costing_sweep_job"),
	}
}

// Start schedules the sweep.
func (j *CostingSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Sweep(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Costing sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Costing sweep job started",
		"schedule", j.schedule, "threshold", j.threshold.String())
	return nil
}

// Stop stops the sweep job.
func (j *CostingSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Costing sweep job stopped")
}

// Sweep runs one pass: it lists parcels uncosted for longer than the
// threshold and publishes one costing request per parcel. Publish failures
// are logged and skipped so one broken message cannot starve the rest; the
// affected parcels are retried on the next pass.
func (j *CostingSweepJob) Sweep(ctx context.Context) error {
	uow := j.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stuck, err := uow.ParcelRepository().GetUncostedOlderThan(ctx, time.Now().Add(-j.threshold))
	if err != nil {
		return err
	}

	// The read needs no lock held during publishing.
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if len(stuck) == 0 {
		return nil
	}

	republished := 0
	for _, parcelID := range stuck {
		msg := ports.CalculateCostMessage{PackageID: parcelID.String()}
		if err = j.publisher.Publish(ctx, msg); err != nil {
			j.logger.ErrorContext(ctx, "Failed to re-publish costing request",
				"package_id", parcelID.String(), "error", err)
			continue
		}
		republished++
	}

	j.logger.InfoContext(ctx, "Costing sweep completed",
		"stuck", len(stuck), "republished", republished)
	return nil
}
