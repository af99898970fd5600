package jobs

import (
	"context"
	"log/slog"

	"shipping/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// LowStockJob periodically reports items whose available quantity, on hand
// minus reserved, has fallen to the configured threshold or below. The report
// goes to the structured log; replenishment itself happens out of band.
type LowStockJob struct {
	handler   queries.ListLowStockQueryHandler
	threshold int
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewLowStockJob creates the low-stock report job with the given cron
// schedule and availability threshold.
func NewLowStockJob(
	handler queries.ListLowStockQueryHandler,
	schedule string,
	threshold int,
	logger *slog.Logger,
) *LowStockJob {
	return &LowStockJob{
		handler:   handler,
		threshold: threshold,
		schedule:  schedule,
		cron:      cron.New(),
		logger:    logger.With("component", "low_stock_job"),
	}
}

// Start schedules the job. Returns an error when the schedule expression is
// invalid.
func (j *LowStockJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		query, qErr := queries.NewListLowStockQuery(j.threshold)
		if qErr != nil {
			j.logger.ErrorContext(ctx, "Low stock job misconfigured", "error", qErr)
			return
		}

		items, hErr := j.handler.Handle(ctx, query)
		if hErr != nil {
			j.logger.ErrorContext(ctx, "Low stock job failed", "error", hErr)
			return
		}

		if len(items) == 0 {
			return
		}

		for _, item := range items {
			j.logger.WarnContext(ctx, "Item below stock threshold",
				"item_id", item.ItemID,
				"description", item.Description,
				"on_hand", item.QuantityOnHand,
				"reserved", item.ReservedQuantity,
				"available", item.Available,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock job started",
		"schedule", j.schedule, "threshold", j.threshold)
	return nil
}

// Stop stops the low-stock job.
func (j *LowStockJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock job stopped")
}
