package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"havenpos/internal/core/application/usecases/queries"
	"havenpos/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// DefaultOverdueCheckSpec runs the check at the top of every minute.
const DefaultOverdueCheckSpec = "0 * * * * *"

const runTimeout = 30 * time.Second

type OverdueOrdersFinder interface {
	Handle(ctx context.Context, query queries.ListOverdueOrdersQuery) ([]queries.OverdueOrderResponse, error)
}

// OverdueOrdersJob warns once per order when it becomes overdue. An order
// that stops being overdue and becomes overdue again is reported again.
type OverdueOrdersJob struct {
	finder OverdueOrdersFinder
	spec   string
	cron   *cron.Cron
	logger *slog.Logger

	mu       sync.Mutex
	reported map[kernel.UUID]struct{}
}

func NewOverdueOrdersJob(finder OverdueOrdersFinder, spec string, logger *slog.Logger) *OverdueOrdersJob {
	if spec == "" {
		spec = DefaultOverdueCheckSpec
	}
	return &OverdueOrdersJob{
		finder:   finder,
		spec:     spec,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "overdue_orders_job"),
		reported: make(map[kernel.UUID]struct{}),
	}
}

// Start schedules the job.
func (j *OverdueOrdersJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()

		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Overdue orders job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue orders job started", "spec", j.spec)
	return nil
}

// Run performs one check and returns the orders reported for the first time.
func (j *OverdueOrdersJob) Run(ctx context.Context) ([]queries.OverdueOrderResponse, error) {
	overdue, err := j.finder.Handle(ctx, queries.NewListOverdueOrdersQuery())
	if err != nil {
		return nil, err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	current := make(map[kernel.UUID]struct{}, len(overdue))
	var fresh []queries.OverdueOrderResponse
	for _, o := range overdue {
		current[o.ID] = struct{}{}
		if _, seen := j.reported[o.ID]; seen {
			continue
		}
		fresh = append(fresh, o)
		j.logger.WarnContext(ctx, "Order is overdue",
			"order_id", o.ID.String(),
			"order_number", o.Number,
			"status", o.Status.String(),
			"table", o.Destination.Table,
			"prep_minutes", o.PrepMinutes,
			"waiting", o.Waiting.Round(time.Second).String())
	}
	j.reported = current

	return fresh, nil
}

// Stop stops the scheduler and waits for a running check to finish.
func (j *OverdueOrdersJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Overdue orders job stopped")
}
