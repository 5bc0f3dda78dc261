package server

// Server is the lifecycle contract of the diagnostics endpoint.
//
// Implementations block in RunServer until shutdown is requested and release
// their listener in Shutdown.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
