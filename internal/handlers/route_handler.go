package handlers

import (
	"net/http"

	"github.com/ecosphere/ecosphere-api/internal/routing"
	log "github.com/sirupsen/logrus"
)

// RouteHandler serves the simulated route optimizer.
type RouteHandler struct {
	Optimizer *routing.Optimizer
}

func NewRouteHandler(optimizer *routing.Optimizer) *RouteHandler {
	return &RouteHandler{Optimizer: optimizer}
}

// OptimizeRouteHandler suggests a route between two named points.
func (h *RouteHandler) OptimizeRouteHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	opts := routing.Options{
		PrioritizeEco: query.Get("eco") == "true",
		IsEmergency:   query.Get("emergency") == "true",
	}

	route, err := h.Optimizer.Optimize(query.Get("from"), query.Get("to"), opts)
	if err != nil {
		log.WithError(err).Warn("Route optimization rejected")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, route)
}
