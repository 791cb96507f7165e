package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"payout/internal/core"
	applog "payout/internal/log"
)

// expensesView feeds the expense panel partial.
type expensesView struct {
	Expenses []core.Expense
	Total    core.Money
}

func (s *Server) handleExpenses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.renderExpensePanel(w, r)
	case http.MethodPost:
		s.handleCreateExpense(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) renderExpensePanel(w http.ResponseWriter, r *http.Request) {
	expenses, total, err := s.ledger.List(r.Context())
	if err != nil {
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "Ledger list failed",
			applog.FieldError, err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	s.render(w, r, "expenses.html", expensesView{Expenses: expenses, Total: total})
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		NewHTMXResponse().
			Status(http.StatusBadRequest).
			ErrorDiv("Malformed request").
			Write(w)
		return
	}

	name := strings.TrimSpace(r.Form.Get("name"))
	amountStr := strings.TrimSpace(r.Form.Get("amount"))

	cents, err := core.ParseDecimalToCents(amountStr)
	if err != nil {
		NewHTMXResponse().
			Status(http.StatusUnprocessableEntity).
			TriggerErrorNotification("Enter a valid name and amount").
			ErrorDiv("Invalid amount").
			Write(w)
		return
	}

	expense := core.Expense{Name: name, Amount: core.Money{Cents: cents}}
	if err := s.ledger.Add(r.Context(), expense); err != nil {
		if errors.Is(err, core.ErrEmptyName) || errors.Is(err, core.ErrInvalidAmount) {
			NewHTMXResponse().
				Status(http.StatusUnprocessableEntity).
				TriggerErrorNotification("Enter a valid name and amount").
				ErrorDiv("Enter a valid name and amount").
				Write(w)
			return
		}
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "Expense save failed",
			applog.FieldError, err.Error(),
			applog.FieldExpenseName, name,
			applog.FieldAmountCents, cents)
		NewHTMXResponse().
			Status(http.StatusInternalServerError).
			ErrorDiv("Error saving expense").
			Write(w)
		return
	}

	applog.FromContext(r.Context()).InfoContext(r.Context(), "Expense recorded",
		applog.FieldExpenseName, name,
		applog.FieldAmountCents, cents)

	NewHTMXResponse().
		TriggerLedgerChanged().
		TriggerFormReset().
		TriggerSuccessNotification("Recorded " + name + " at " + Peso(expense.Amount.Pesos())).
		Write(w)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		NewHTMXResponse().
			Status(http.StatusBadRequest).
			ErrorDiv("Malformed request").
			Write(w)
		return
	}

	position, err := strconv.Atoi(strings.TrimSpace(r.Form.Get("index")))
	if err != nil {
		NewHTMXResponse().
			Status(http.StatusUnprocessableEntity).
			ErrorDiv("Invalid expense position").
			Write(w)
		return
	}

	removed, err := s.ledger.RemoveAt(r.Context(), position)
	if err != nil {
		if errors.Is(err, core.ErrOutOfRange) {
			NewHTMXResponse().
				Status(http.StatusUnprocessableEntity).
				TriggerErrorNotification("That expense no longer exists").
				ErrorDiv("That expense no longer exists").
				Write(w)
			return
		}
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "Expense remove failed",
			applog.FieldError, err.Error(),
			applog.FieldPosition, position)
		NewHTMXResponse().
			Status(http.StatusInternalServerError).
			ErrorDiv("Error removing expense").
			Write(w)
		return
	}

	NewHTMXResponse().
		TriggerLedgerChanged().
		TriggerSuccessNotification("Removed " + removed.Name).
		Write(w)
}
