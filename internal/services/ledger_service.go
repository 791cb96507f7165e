package services

import (
	"context"
	"fmt"
	"log/slog"

	"payout/internal/core"
	applog "payout/internal/log"
	"payout/internal/storage"
)

// LedgerService exposes the persisted expense ledger as an ordered sequence
// addressed by zero-based position.
type LedgerService struct {
	repo *storage.SQLiteRepository
}

func NewLedgerService(repo *storage.SQLiteRepository) *LedgerService {
	return &LedgerService{repo: repo}
}

// Add validates and persists a new entry. Validation failures mutate
// nothing and are immediately retryable with corrected input.
func (s *LedgerService) Add(ctx context.Context, e core.Expense) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if _, err := s.repo.Append(ctx, e); err != nil {
		return fmt.Errorf("persist expense: %w", err)
	}
	return nil
}

// RemoveAt deletes the entry at the given zero-based position and returns
// it. An out-of-range position is a reported failure, not a silent no-op.
func (s *LedgerService) RemoveAt(ctx context.Context, position int) (core.Expense, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return core.Expense{}, fmt.Errorf("load ledger: %w", err)
	}
	if position < 0 || position >= len(entries) {
		return core.Expense{}, core.ErrOutOfRange
	}

	target := entries[position]
	if err := s.repo.Delete(ctx, target.ID); err != nil {
		return core.Expense{}, fmt.Errorf("remove expense: %w", err)
	}

	fields := applog.NewFields().
		WithExpense(target.Expense.Name, target.Expense.Amount.Cents).
		WithComponent(applog.ComponentLedger).
		WithOperation(applog.OpRemove)
	slog.InfoContext(ctx, "Expense removed from ledger",
		append(fields.ToSlice(), applog.FieldPosition, position)...)

	return target.Expense, nil
}

// List returns the current entries with their running total.
func (s *LedgerService) List(ctx context.Context) ([]core.Expense, core.Money, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, core.Money{}, fmt.Errorf("load ledger: %w", err)
	}

	expenses := make([]core.Expense, len(entries))
	var total core.Money
	for i, se := range entries {
		expenses[i] = se.Expense
		total.Cents += se.Expense.Amount.Cents
	}
	return expenses, total, nil
}

// Net merges the settled total from a summary with the ledger total.
func (s *LedgerService) Net(ctx context.Context, summary core.Summary) (core.NetBreakdown, error) {
	_, total, err := s.List(ctx)
	if err != nil {
		return core.NetBreakdown{}, err
	}
	return core.NewNetBreakdown(summary.Settled, total.Pesos()), nil
}
