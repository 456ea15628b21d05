package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"tally/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteRepository keeps the expense sequence in a SQLite database instead
// of the flat ledger file. Insertion order is the rowid order, so All
// returns records exactly as they were entered.
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

	// Run migrations
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

// Add validates the expense and inserts it as a new row.
func (r *SQLiteRepository) Add(ctx context.Context, e core.Expense) error {
	if err := e.Validate(); err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (entry_date, category, payee, amount_cents) VALUES (?, ?, ?, ?)`,
		e.Date.String(), e.Category, e.Payee, e.Amount.Cents)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}

	id, _ := res.LastInsertId()
	slog.InfoContext(ctx, "Expense saved to SQLite",
		"id", id,
		"payee", e.Payee,
		"category", e.Category,
		"amount_cents", e.Amount.Cents,
		"date", e.Date.String())

	return nil
}

// All returns every expense in insertion order.
func (r *SQLiteRepository) All(ctx context.Context) ([]core.Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT entry_date, category, payee, amount_cents FROM expenses ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []core.Expense
	for rows.Next() {
		var (
			entryDate string
			category  string
			payee     string
			cents     int64
		)
		if err := rows.Scan(&entryDate, &category, &payee, &cents); err != nil {
			return nil, fmt.Errorf("scan expense row: %w", err)
		}
		date, err := core.ParseDate(entryDate)
		if err != nil {
			return nil, fmt.Errorf("stored entry_date %q: %w", entryDate, err)
		}
		expenses = append(expenses, core.Expense{
			Date:     date,
			Category: category,
			Payee:    payee,
			Amount:   core.Money{Cents: cents},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expense rows: %w", err)
	}

	return expenses, nil
}
