package batch

import (
	"context"
	"customer-dashboard/internal/domain/customer"
	"customer-dashboard/internal/infrastructure/monitoring"
	"fmt"
	"log/slog"
	"time"
)

// StoreStatsJob refreshes the customer count gauge from the store.
type StoreStatsJob struct {
	customerService customer.CustomerService
	logger          *slog.Logger
}

func NewStoreStatsJob(customerSvc customer.CustomerService, logger *slog.Logger) *StoreStatsJob {
	if customerSvc == nil || logger == nil {
		panic("StoreStatsJob dependencies cannot be nil")
	}
	return &StoreStatsJob{
		customerService: customerSvc,
		logger:          logger.With("job", "StoreStats"),
	}
}

// Run leaves the gauge at its previous value when the count fails.
func (j *StoreStatsJob) Run(ctx context.Context) error {
	startTime := time.Now()
	j.logger.DebugContext(ctx, "Starting store stats job.")

	total, err := j.customerService.CountCustomers(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to count customers, gauge not updated.", slog.Any("error", err))
		return fmt.Errorf("store stats job: %w", err)
	}

	monitoring.SetCustomersTotal(total)
	j.logger.InfoContext(ctx, "Store stats job finished.",
		slog.Int64("customers_total", total),
		slog.Duration("duration", time.Since(startTime)),
	)
	return nil
}
