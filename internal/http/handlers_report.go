package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"payout/internal/core"
	applog "payout/internal/log"
	"payout/internal/services"
)

// summaryView feeds the summary partial: the snapshot plus the ledger merge.
type summaryView struct {
	HasReport bool
	Meta      services.ReportMeta
	Summary   core.Summary
	Net       core.NetBreakdown
}

// dashboardView feeds the full page.
type dashboardView struct {
	Report summaryView
	Ledger expensesView
}

func (s *Server) summaryData(r *http.Request) (summaryView, error) {
	view := summaryView{}
	view.Summary, view.Meta, view.HasReport = s.reports.Summary()

	net, err := s.ledger.Net(r.Context(), view.Summary)
	if err != nil {
		return view, err
	}
	view.Net = net
	return view, nil
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	view, err := s.summaryData(r)
	if err != nil {
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "Dashboard data failed",
			applog.FieldError, err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	expenses, total, err := s.ledger.List(r.Context())
	if err != nil {
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "Ledger list failed",
			applog.FieldError, err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	s.render(w, r, "index.html", dashboardView{
		Report: view,
		Ledger: expensesView{Expenses: expenses, Total: total},
	})
}

func (s *Server) handleUploadReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		NewHTMXResponse().
			Status(http.StatusBadRequest).
			TriggerErrorNotification("Upload too large or malformed").
			ErrorDiv("Upload too large or malformed").
			Write(w)
		return
	}

	file, header, err := r.FormFile("export")
	if err != nil {
		NewHTMXResponse().
			Status(http.StatusUnprocessableEntity).
			TriggerErrorNotification("Select an export file first").
			ErrorDiv("Select an export file first").
			Write(w)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "Upload read failed",
			applog.FieldError, err.Error(),
			applog.FieldFile, header.Filename)
		NewHTMXResponse().
			Status(http.StatusInternalServerError).
			ErrorDiv("Could not read upload").
			Write(w)
		return
	}

	summary, err := s.reports.Load(r.Context(), data, header.Filename)
	if err != nil {
		msg := "Could not process export"
		if errors.Is(err, core.ErrNoRows) {
			msg = "Export has no data rows"
		}
		applog.FromContext(r.Context()).WarnContext(r.Context(), "Report load rejected",
			applog.FieldError, err.Error(),
			applog.FieldFile, header.Filename)
		NewHTMXResponse().
			Status(http.StatusUnprocessableEntity).
			TriggerErrorNotification(msg).
			ErrorDiv(msg).
			Write(w)
		return
	}

	NewHTMXResponse().
		TriggerReportLoaded().
		TriggerSuccessNotification(fmt.Sprintf("Processed %s: total %s", header.Filename, Peso(summary.Total))).
		Write(w)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	view, err := s.summaryData(r)
	if err != nil {
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "Summary data failed",
			applog.FieldError, err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	s.render(w, r, "summary.html", view)
}
