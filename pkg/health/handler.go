package health

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler returns a readiness endpoint: it evaluates all registered checks
// and responds 200 with the JSON report when everything passes, or 503 when
// any check fails.
func (r *Registry) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		report := r.Check(req.Context())

		status := http.StatusOK
		if report.Status != StatusOK {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, report)
	}
}

// LivenessHandler returns an endpoint that reports ok as long as the process
// is able to serve requests, without evaluating dependency checks.
func (r *Registry) LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, Report{Status: StatusOK})
	}
}

// Routes mounts the conventional probe endpoints: /healthz for liveness and
// /readyz for readiness.
func (r *Registry) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/healthz", r.LivenessHandler())
	router.Get("/readyz", r.Handler())
	return router
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
