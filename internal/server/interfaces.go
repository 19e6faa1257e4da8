package server

// Server owns the lifetime of the journal's HTTP listener.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT arrives, then drains
	// in-flight requests and returns.
	RunServer()

	// Shutdown stops accepting connections and waits for in-flight requests
	// up to the shutdown timeout.
	Shutdown()
}
