package jobs

import (
	"context"
	"log/slog"

	"shipping/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OverdueShipmentJob periodically surfaces shipments whose delivery
// estimate has passed while they are still in flight. The job only
// reports; it never mutates shipment state.
type OverdueShipmentJob struct {
	handler queries.GetOverdueShipmentsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueShipmentJob creates a job that scans for overdue shipments
// every ten minutes.
func NewOverdueShipmentJob(handler queries.GetOverdueShipmentsQueryHandler, logger *slog.Logger) *OverdueShipmentJob {
	return &OverdueShipmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "overdue_shipment_job"),
	}
}

// Start begins the overdue shipment scan.
func (j *OverdueShipmentJob) Start() error {
	_, err := j.cron.AddFunc("0 */10 * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetOverdueShipmentsQuery()

		overdue, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue shipment scan failed", "error", err)
			return
		}

		if len(overdue) == 0 {
			return
		}

		j.logger.WarnContext(ctx, "Shipments past their delivery estimate", "count", len(overdue))
		for _, s := range overdue {
			j.logger.WarnContext(ctx, "Overdue shipment",
				"shipment_id", s.ID,
				"status", s.Status,
				"estimated_delivery", s.EstimatedDelivery,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue shipment job started (running every 10 minutes)")
	return nil
}

// Stop stops the overdue shipment scan.
func (j *OverdueShipmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue shipment job stopped")
}
