package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// handleHealth performs basic liveness check
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	health := map[string]any{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(s.startedAt).String(),
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(health)
}

// handleReady performs readiness check with dependency verification
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status := "ready"
	httpStatus := http.StatusOK
	checks := make(map[string]any)

	if s.templates == nil {
		checks["templates"] = "failed: templates not loaded"
		status = "not_ready"
		httpStatus = http.StatusServiceUnavailable
	} else {
		checks["templates"] = "ok"
	}

	// A ledger listing exercises the full path down to the database file.
	if _, _, err := s.ledger.List(ctx); err != nil {
		checks["ledger_store"] = fmt.Sprintf("failed: %v", err)
		status = "not_ready"
		httpStatus = http.StatusServiceUnavailable
	} else {
		checks["ledger_store"] = "ok"
	}

	response := map[string]any{
		"status":    status,
		"timestamp": time.Now().Format(time.RFC3339),
		"checks":    checks,
	}

	w.WriteHeader(httpStatus)
	json.NewEncoder(w).Encode(response)
}

// handleMetrics exposes request and application counters in plain text.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	traceMetrics := s.tracer.GetMetrics()

	expenseCount := 0
	if entries, _, err := s.ledger.List(r.Context()); err == nil {
		expenseCount = len(entries)
	}

	summary, _, loaded := s.reports.Summary()
	reportLoaded := 0
	if loaded {
		reportLoaded = 1
	}

	w.WriteHeader(http.StatusOK)

	fmt.Fprintf(w, "# HELP http_requests_total Total number of HTTP requests\n")
	fmt.Fprintf(w, "# TYPE http_requests_total counter\n")
	fmt.Fprintf(w, "http_requests_total %d\n\n", traceMetrics.TotalRequests)

	fmt.Fprintf(w, "# HELP http_last_response_time_ms Duration of the most recent request\n")
	fmt.Fprintf(w, "# TYPE http_last_response_time_ms gauge\n")
	fmt.Fprintf(w, "http_last_response_time_ms %d\n\n", traceMetrics.LastResponseTimeMs)

	fmt.Fprintf(w, "# HELP report_loaded Whether an export is currently loaded\n")
	fmt.Fprintf(w, "# TYPE report_loaded gauge\n")
	fmt.Fprintf(w, "report_loaded %d\n\n", reportLoaded)

	fmt.Fprintf(w, "# HELP report_orders_total Orders in the current summary\n")
	fmt.Fprintf(w, "# TYPE report_orders_total gauge\n")
	fmt.Fprintf(w, "report_orders_total %d\n\n", summary.InTransit+summary.Completed+summary.Delivered)

	fmt.Fprintf(w, "# HELP ledger_expenses_total Expense entries in the ledger\n")
	fmt.Fprintf(w, "# TYPE ledger_expenses_total gauge\n")
	fmt.Fprintf(w, "ledger_expenses_total %d\n", expenseCount)

	fmt.Fprintf(w, "\n# HELP process_uptime_seconds Seconds since startup\n")
	fmt.Fprintf(w, "# TYPE process_uptime_seconds gauge\n")
	fmt.Fprintf(w, "process_uptime_seconds %.0f\n", time.Since(s.startedAt).Seconds())
}
