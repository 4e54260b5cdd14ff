package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	costingSweepJob *CostingSweepJob
}

// NewJobManager creates a new job manager owning the costing sweep job.
func NewJobManager(costingSweepJob *CostingSweepJob) *JobManager {
	return &JobManager{
		costingSweepJob: costingSweepJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.costingSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start costing sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.costingSweepJob.Stop()
}
