// Package storage implements the TransactionStore port on SQLite.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/Pval-k/finance-tracker/internal/core"
	"github.com/Pval-k/finance-tracker/internal/store"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
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

// ListByOwner returns the owner's transactions newest first.
func (r *SQLiteRepository) ListByOwner(ctx context.Context, owner string) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, amount_cents, category, tx_type, tx_date
		FROM transactions
		WHERE owner_id = ?
		ORDER BY tx_date DESC, created_at DESC`, owner)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var txs []core.Transaction
	for rows.Next() {
		var (
			tx      core.Transaction
			cents   int64
			txType  string
			dateStr string
		)
		if err := rows.Scan(&tx.ID, &tx.Title, &cents, &tx.Category, &txType, &dateStr); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		tx.Amount = core.Money{Cents: cents}
		tx.Type = core.Type(txType)
		date, err := core.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("parse stored date %q: %w", dateStr, err)
		}
		tx.Date = date
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return txs, nil
}

func (r *SQLiteRepository) Insert(ctx context.Context, owner string, fields store.TransactionFields) (string, error) {
	id := uuid.NewString()
	now := time.Now().UTC().Format(time.RFC3339)

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO transactions (id, owner_id, title, amount_cents, category, tx_type, tx_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, owner, fields.Title, fields.Amount.Cents, fields.Category, string(fields.Type), fields.Date.String(), now, now)
	if err != nil {
		return "", fmt.Errorf("insert transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved",
		"id", id,
		"title", fields.Title,
		"amount_cents", fields.Amount.Cents,
		"category", fields.Category,
		"type", string(fields.Type))

	return id, nil
}

func (r *SQLiteRepository) Replace(ctx context.Context, owner, id string, fields store.TransactionFields) error {
	now := time.Now().UTC().Format(time.RFC3339)

	res, err := r.db.ExecContext(ctx, `
		UPDATE transactions
		SET title = ?, amount_cents = ?, category = ?, tx_type = ?, tx_date = ?, updated_at = ?
		WHERE id = ? AND owner_id = ?`,
		fields.Title, fields.Amount.Cents, fields.Category, string(fields.Type), fields.Date.String(), now, id, owner)
	if err != nil {
		return fmt.Errorf("replace transaction: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("replace transaction rows affected: %w", err)
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *SQLiteRepository) Remove(ctx context.Context, owner, id string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM transactions WHERE id = ? AND owner_id = ?`, id, owner)
	if err != nil {
		return fmt.Errorf("remove transaction: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("remove transaction rows affected: %w", err)
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}
