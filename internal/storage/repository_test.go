package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"payout/internal/core"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "payout.db"))
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestRepositoryAppendAndList(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	entries, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list on fresh db: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("fresh ledger has %d entries, want 0", len(entries))
	}

	first, err := repo.Append(ctx, core.Expense{Name: "Packaging", Amount: core.Money{Cents: 5000}})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	second, err := repo.Append(ctx, core.Expense{Name: "Tape", Amount: core.Money{Cents: 1250}})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if second <= first {
		t.Fatalf("ids not increasing: %d then %d", first, second)
	}

	entries, err = repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Expense.Name != "Packaging" || entries[1].Expense.Amount.Cents != 1250 {
		t.Fatalf("unexpected list content: %+v", entries)
	}
}

func TestRepositoryDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.Append(ctx, core.Expense{Name: "Packaging", Amount: core.Money{Cents: 5000}})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, id); !errors.Is(err, core.ErrOutOfRange) {
		t.Fatalf("second delete error = %v, want ErrOutOfRange", err)
	}

	entries, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("ledger not empty after delete: %+v", entries)
	}
}
