package observability

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ServeMetrics exposes /metrics and /healthz on addr for scraping a
// long-running admin session. It blocks, so callers run it in a goroutine.
func ServeMetrics(addr string, logger *slog.Logger) error {
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods("GET")

	logger.Info("metrics listener started", "addr", addr)
	return http.ListenAndServe(addr, r)
}
