package jobs

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultSchedule runs the backlog reports every five minutes.
const DefaultSchedule = "*/5 * * * *"

// JobManager owns the cron scheduler and the jobs registered on it.
type JobManager struct {
	cron   *cron.Cron
	logger *zap.Logger
}

// NewJobManager registers both backlog jobs on schedule, a standard five-field cron
// expression or a descriptor such as "@every 1m". An invalid schedule is an error.
func NewJobManager(
	schedule string,
	activeOrders ActiveOrdersReader,
	enquiries EnquiriesReader,
	logger *zap.Logger,
) (*JobManager, error) {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	logger = logger.Named("jobs")
	c := cron.New(cron.WithChain(cron.Recover(cronLogger{logger: logger})))

	orderJob := NewOrderBacklogJob(activeOrders, logger)
	if _, err := c.AddFunc(schedule, orderJob.tick); err != nil {
		return nil, fmt.Errorf("schedule order backlog job %q: %w", schedule, err)
	}
	enquiryJob := NewEnquiryBacklogJob(enquiries, logger)
	if _, err := c.AddFunc(schedule, enquiryJob.tick); err != nil {
		return nil, fmt.Errorf("schedule enquiry backlog job %q: %w", schedule, err)
	}

	return &JobManager{cron: c, logger: logger}, nil
}

func (jm *JobManager) StartAll() {
	jm.cron.Start()
	jm.logger.Info("scheduled jobs started", zap.Int("jobs", len(jm.cron.Entries())))
}

// StopAll stops the scheduler and waits for running jobs to finish.
func (jm *JobManager) StopAll() {
	<-jm.cron.Stop().Done()
	jm.logger.Info("scheduled jobs stopped")
}

// cronLogger adapts zap to cron.Logger.
type cronLogger struct {
	logger *zap.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Sugar().Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Sugar().Errorw(msg, append(keysAndValues, "error", err)...)
}
