// Package services orchestrates the pipeline and the expense ledger for the
// presentation layer.
package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"payout/internal/core"
	"payout/internal/loader"
	applog "payout/internal/log"
	"payout/internal/pipeline"
)

// ReportMeta describes the currently loaded export.
type ReportMeta struct {
	FileName    string
	ProcessedAt time.Time
}

// ReportService owns the current session. Loading a new export replaces the
// previous session wholesale; nothing from the old record set survives.
type ReportService struct {
	mu      sync.RWMutex
	session *pipeline.Session
	meta    ReportMeta
}

func NewReportService() *ReportService {
	return &ReportService{}
}

// Load parses an export, runs the pipeline, and returns the resulting
// summary. On failure the previous session is left untouched.
func (s *ReportService) Load(ctx context.Context, data []byte, filename string) (core.Summary, error) {
	headers, records, err := loader.Parse(data)
	if err != nil {
		return core.Summary{}, err
	}

	session := pipeline.NewSession(headers, records)
	summary := session.Run()

	s.mu.Lock()
	s.session = session
	s.meta = ReportMeta{FileName: filename, ProcessedAt: time.Now()}
	s.mu.Unlock()

	fields := applog.NewFields().
		WithReport(filename, len(records), len(session.Records)).
		WithComponent(applog.ComponentReport).
		WithOperation(applog.OpLoad)
	slog.InfoContext(ctx, "Report loaded", append(fields.ToSlice(), "total", summary.Total)...)

	return summary, nil
}

// Summary recomputes the snapshot from the current session. The snapshot is
// derived fresh on every call; the bool reports whether a report is loaded.
func (s *ReportService) Summary() (core.Summary, ReportMeta, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return core.Summary{}, ReportMeta{}, false
	}
	return s.session.Summarize(), s.meta, true
}
