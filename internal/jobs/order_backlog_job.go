package jobs

import (
	"context"
	"time"

	"wreaths/internal/core/application/usecases/queries"
	"wreaths/internal/core/domain/model/order"

	"go.uber.org/zap"
)

// runTimeout bounds a single job run.
const runTimeout = 30 * time.Second

type ActiveOrdersReader interface {
	Handle(ctx context.Context, query queries.GetActiveOrdersQuery) ([]queries.ActiveOrderView, error)
}

// OrderBacklogJob reports the active orders per status.
type OrderBacklogJob struct {
	reader ActiveOrdersReader
	logger *zap.Logger
}

func NewOrderBacklogJob(reader ActiveOrdersReader, logger *zap.Logger) *OrderBacklogJob {
	return &OrderBacklogJob{
		reader: reader,
		logger: logger.Named("order_backlog_job"),
	}
}

// Backlog is one run's result: active order counts keyed by status, and the oldest order.
type Backlog struct {
	Counts      map[order.Status]int
	Total       int
	OldestSince time.Time
}

// Run loads the active orders once and logs the counts.
func (j *OrderBacklogJob) Run(ctx context.Context) (Backlog, error) {
	query, err := queries.NewGetActiveOrdersQuery("")
	if err != nil {
		return Backlog{}, err
	}
	orders, err := j.reader.Handle(ctx, query)
	if err != nil {
		j.logger.Error("failed to load active orders", zap.Error(err))
		return Backlog{}, err
	}

	backlog := Backlog{Counts: make(map[order.Status]int), Total: len(orders)}
	for _, o := range orders {
		backlog.Counts[o.Status]++
		if backlog.OldestSince.IsZero() || o.CreatedAt.Before(backlog.OldestSince) {
			backlog.OldestSince = o.CreatedAt
		}
	}

	fields := []zap.Field{zap.Int("active", backlog.Total)}
	for _, status := range order.AllStatuses() {
		if n := backlog.Counts[status]; n > 0 {
			fields = append(fields, zap.Int(status.String(), n))
		}
	}
	if !backlog.OldestSince.IsZero() {
		fields = append(fields, zap.Time("oldest_since", backlog.OldestSince))
	}
	j.logger.Info("order backlog", fields...)
	return backlog, nil
}

func (j *OrderBacklogJob) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()
	_, _ = j.Run(ctx)
}
