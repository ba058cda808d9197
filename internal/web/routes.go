package web

// registerRoutes registers all HTTP routes
func (s *Server) registerRoutes() {
	// Color endpoints
	s.router.HandleFunc("/color", s.handleColor)
	s.router.HandleFunc("/get-colors", s.handleColors)

	// Mascot endpoint
	s.router.HandleFunc("/get-animal", s.handleAnimal)

	// Operational endpoints
	s.router.HandleFunc("/healthz", s.handleHealth)
	if s.metrics != nil {
		s.router.HandleFunc("/metrics", s.handleMetrics)
	}

	// Root endpoint, also the catch-all for unknown paths
	s.router.HandleFunc("/", s.handleWelcome)
}
