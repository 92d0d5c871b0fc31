package jobs

import (
	"context"
	"time"

	"wreaths/internal/core/application/usecases/queries"
	"wreaths/internal/core/domain/model/bespoke"

	"go.uber.org/zap"
)

type EnquiriesReader interface {
	Handle(ctx context.Context, query queries.ListEnquiriesQuery) ([]queries.EnquiryView, error)
}

// EnquiryBacklogJob reports bespoke enquiries that have not been answered yet.
type EnquiryBacklogJob struct {
	reader EnquiriesReader
	logger *zap.Logger
	now    func() time.Time
}

func NewEnquiryBacklogJob(reader EnquiriesReader, logger *zap.Logger) *EnquiryBacklogJob {
	return &EnquiryBacklogJob{
		reader: reader,
		logger: logger.Named("enquiry_backlog_job"),
		now:    time.Now,
	}
}

// Run returns the number of unanswered enquiries and how long the oldest has waited.
func (j *EnquiryBacklogJob) Run(ctx context.Context) (int, time.Duration, error) {
	query, err := queries.NewListEnquiriesQuery(bespoke.EnquiryNew.String())
	if err != nil {
		return 0, 0, err
	}
	enquiries, err := j.reader.Handle(ctx, query)
	if err != nil {
		j.logger.Error("failed to load enquiries", zap.Error(err))
		return 0, 0, err
	}
	if len(enquiries) == 0 {
		j.logger.Debug("no unanswered enquiries")
		return 0, 0, nil
	}

	// newest first, so the last one has waited longest
	waited := j.now().Sub(enquiries[len(enquiries)-1].CreatedAt)
	j.logger.Info("unanswered enquiries",
		zap.Int("count", len(enquiries)),
		zap.Duration("oldest_waiting", waited),
	)
	return len(enquiries), waited, nil
}

func (j *EnquiryBacklogJob) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()
	_, _, _ = j.Run(ctx)
}
