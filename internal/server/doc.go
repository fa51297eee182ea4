// Package server runs the logbook HTTP server and the background workers
// under one lifecycle: start, wait for a stop signal, shut down gracefully
// within the configured timeout.
package server
