// Package jobs provides background tasks; cycles are wrapped in a robfig/cron/v3 chain.
//
// # Available Jobs
//
// DeliveryWatchdogJob sweeps once at start, then sleeps watchdog.interval (10s by
// default) after every cycle, and moves accepted orders whose delivery window
// elapsed to delivered.
//
// # Usage
//
//	watchdog := jobs.NewDeliveryWatchdogJob(&handler, 10*time.Second, 15*time.Second, logger)
//	jobManager := jobs.NewJobManager(watchdog)
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed cycle is logged once by the job and the schedule continues.
// Panics inside a cycle are recovered by the cron chain. Cycles run one at a time.
package jobs
