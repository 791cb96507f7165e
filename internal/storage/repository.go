// Package storage persists the expense ledger in a local SQLite database.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"payout/internal/core"

	_ "modernc.org/sqlite"
)

// StoredExpense is a ledger row with its database identity. Positional
// operations in the service layer resolve positions to IDs through the
// list order, which is insertion order.
type StoredExpense struct {
	ID      int64
	Expense core.Expense
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Append inserts a new ledger entry and returns its ID.
func (r *SQLiteRepository) Append(ctx context.Context, e core.Expense) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (name, amount_cents) VALUES (?, ?)`,
		e.Name, e.Amount.Cents)
	if err != nil {
		return 0, fmt.Errorf("insert expense: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("expense insert id: %w", err)
	}

	slog.InfoContext(ctx, "Expense saved",
		"id", id,
		"name", e.Name,
		"amount_cents", e.Amount.Cents)

	return id, nil
}

// List returns all ledger entries in insertion order.
func (r *SQLiteRepository) List(ctx context.Context) ([]StoredExpense, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, amount_cents FROM expenses ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var out []StoredExpense
	for rows.Next() {
		var se StoredExpense
		if err := rows.Scan(&se.ID, &se.Expense.Name, &se.Expense.Amount.Cents); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		out = append(out, se)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}
	return out, nil
}

// Delete removes a ledger entry by ID. Deleting an ID that no longer exists
// is reported as core.ErrOutOfRange.
func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete expense rows affected: %w", err)
	}
	if n == 0 {
		return core.ErrOutOfRange
	}

	slog.InfoContext(ctx, "Expense removed", "id", id)
	return nil
}
