package web

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"hue/internal/errors"
	"hue/internal/palette"
	"hue/internal/version"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Source    string    `json:"source"`
}

// handleWelcome serves the route overview on the exact root path and
// doubles as the catch-all for unknown paths
func (s *Server) handleWelcome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.handleNotFound(w, r)
		return
	}

	renderPage(w, http.StatusOK, welcomePage, "hue", nil)
}

// handleNotFound renders the 404 page for paths no route claims
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	WriteErrorPage(w, errors.New(errors.RouteNotFound,
		fmt.Sprintf("no route matches %s", r.URL.Path)))
}

// handleColor shows the color for the requested variant, or a random
// registry color when the variant is absent or unknown. The response is
// always a 200.
func (s *Server) handleColor(w http.ResponseWriter, r *http.Request) {
	variant := r.URL.Query().Get("variant")

	color, ok := palette.Find(variant)
	outcome := "match"
	if !ok {
		color = palette.Random()
		outcome = "random"
	}

	if s.metrics != nil {
		s.metrics.RecordColorLookup(outcome)
	}

	renderPage(w, http.StatusOK, colorPage, "Color", color)
}

// handleColors lists every registry color with links to its color and
// mascot pages
func (s *Server) handleColors(w http.ResponseWriter, r *http.Request) {
	renderPage(w, http.StatusOK, colorsPage, "Available colors", palette.All())
}

// handleAnimal looks up the mascot for the requested variant. The
// variant parameter is required here, unlike /color.
func (s *Server) handleAnimal(w http.ResponseWriter, r *http.Request) {
	variant := strings.TrimSpace(r.URL.Query().Get("variant"))
	if variant == "" {
		if s.metrics != nil {
			s.metrics.RecordMascotLookup("bad_request")
		}
		WriteErrorPage(w, errors.New(errors.MissingParameter,
			"query parameter 'variant' is required"))
		return
	}

	animal, err := s.mascots.Find(variant)
	if err != nil {
		if errors.IsCode(err, errors.AnimalNotFound) {
			if s.metrics != nil {
				s.metrics.RecordMascotLookup("not_found")
			}
		} else {
			if s.metrics != nil {
				s.metrics.RecordMascotLookup("error")
			}
			s.logger.Error("Animal lookup failed", map[string]interface{}{
				"variant": variant,
				"error":   err.Error(),
			})
		}
		WriteErrorPage(w, err)
		return
	}

	if s.metrics != nil {
		s.metrics.RecordMascotLookup("found")
	}

	renderPage(w, http.StatusOK, animalPage, animal.Name, animal)
}

// handleHealth responds to health check requests (simple liveness check)
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   version.Version,
		Source:    s.mascots.Path(),
	}

	WriteJSON(w, response, http.StatusOK)
}
