// Package http serves liveness and readiness probes next to the gRPC API.
package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dtroode/rewards-server/internal/logger"
	"github.com/dtroode/rewards-server/internal/model"
)

const readinessTimeout = 2 * time.Second

type Router struct {
	router *chi.Mux
	pinger model.Pinger
	logger *logger.Logger
}

func NewRouter(pinger model.Pinger, logger *logger.Logger) *Router {
	r := &Router{
		router: chi.NewRouter(),
		pinger: pinger,
		logger: logger,
	}

	r.router.Use(middleware.Recoverer)
	r.router.Get("/healthz", r.liveness)
	r.router.Get("/readyz", r.readiness)

	return r
}

func (r *Router) Handler() http.Handler {
	return r.router
}

type healthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func (r *Router) liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

func (r *Router) readiness(w http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), readinessTimeout)
	defer cancel()

	if err := r.pinger.Ping(ctx); err != nil {
		r.logger.Warn("readiness check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable", Error: "store unreachable"})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
