// Package jobs runs the scheduled background tasks of the service on robfig/cron.
//
//   - OrderBacklogJob logs how many orders wait at each step of the workflow.
//   - EnquiryBacklogJob logs how many bespoke enquiries are still unanswered.
//
// Both read through the query handlers only and never change data. A failed run is logged
// and the next tick tries again. JobManager starts and stops them together:
//
//	manager, err := jobs.NewJobManager("*/5 * * * *", activeOrders, enquiries, logger)
//	if err != nil {
//		return err
//	}
//	manager.StartAll()
//	defer manager.StopAll()
package jobs
