package server

import "context"

// Server defines the lifecycle contract of the logbook server.
//
// Implementations block in [RunServer] until shutdown is requested and
// release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

// Background is a set of jobs started and stopped with the server.
type Background interface {
	Run()
	Stop(ctx context.Context) error
}
