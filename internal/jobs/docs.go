// Package jobs contains the scheduled background work of the warehouse.
// Jobs wrap command handlers and run them on cron schedules.
package jobs
