// Package http is the presentation adapter: it renders the summary
// snapshot, the expense ledger, and the net settlement figure, and turns
// user actions into core operations. No settlement math happens here.
package http

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	applog "payout/internal/log"
	"payout/internal/middleware/trace"
	"payout/internal/services"
	appweb "payout/web"
)

type Server struct {
	http.Server

	templates *template.Template
	reports   *services.ReportService
	ledger    *services.LedgerService
	tracer    *trace.Middleware
	startedAt time.Time

	maxUploadBytes int64
}

// NewServer wires routes, templates, and middleware. maxUploadBytes bounds
// the accepted export size.
func NewServer(addr string, reports *services.ReportService, ledger *services.LedgerService, logger *applog.Logger, maxUploadBytes int64) (*Server, error) {
	templates, err := template.New("").Funcs(templateFuncs()).ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		templates:      templates,
		reports:        reports,
		ledger:         ledger,
		tracer:         trace.NewMiddleware(),
		startedAt:      time.Now(),
		maxUploadBytes: maxUploadBytes,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleDashboard)
	mux.HandleFunc("/report", s.handleUploadReport)
	mux.HandleFunc("/summary", s.handleSummary)
	mux.HandleFunc("/expenses", s.handleExpenses)
	mux.HandleFunc("/expenses/delete", s.handleDeleteExpense)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/readyz", s.handleReady)
	mux.HandleFunc("/metrics", s.handleMetrics)

	static, err := fs.Sub(appweb.StaticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	handler := applog.ComponentMiddleware(applog.ComponentHTTP)(mux)
	handler = applog.Middleware(logger)(handler)

	s.Addr = addr
	s.Handler = s.tracer.Middleware(handler)
	s.ReadTimeout = 10 * time.Second
	s.WriteTimeout = 10 * time.Second
	s.IdleTimeout = 60 * time.Second
	s.MaxHeaderBytes = 1 << 16

	return s, nil
}

// render executes a template into the response, logging failures through
// the context logger.
func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "Template render failed",
			applog.FieldError, err.Error(),
			applog.FieldRequestID, trace.GetRequestID(r.Context()),
			"template", name)
	}
}
