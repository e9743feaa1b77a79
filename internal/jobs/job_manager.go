package jobs

import (
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	overdueOrdersJob *OverdueOrdersJob
}

// NewJobManager validates the schedule and builds every job.
func NewJobManager(overdueFinder OverdueOrdersFinder, overdueSpec string, logger *slog.Logger) (*JobManager, error) {
	if overdueSpec == "" {
		overdueSpec = DefaultOverdueCheckSpec
	}
	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	if _, err := parser.Parse(overdueSpec); err != nil {
		return nil, fmt.Errorf("invalid overdue check schedule %q: %w", overdueSpec, err)
	}

	return &JobManager{
		overdueOrdersJob: NewOverdueOrdersJob(overdueFinder, overdueSpec, logger),
	}, nil
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueOrdersJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue orders job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueOrdersJob.Stop()
}
