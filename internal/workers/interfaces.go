// Package workers runs the background jobs of the logbook server.
//
// Every job implements [Worker]; [Workers] starts and stops them together
// with the HTTP server.
package workers

import "context"

// Worker is a background job with a start/stop lifecycle.
//
// Run must not block: scheduled workers register their jobs and return.
// Stop waits for running jobs until ctx is done.
type Worker interface {
	Run()
	Stop(ctx context.Context) error
}
