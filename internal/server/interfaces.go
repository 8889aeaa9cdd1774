package server

// Server runs the CPF validation HTTP boundary until the process is
// signalled, then drains in-flight requests.
type Server interface {
	// RunServer blocks until SIGINT/SIGTERM or a listener failure.
	RunServer()

	Shutdown()
}
