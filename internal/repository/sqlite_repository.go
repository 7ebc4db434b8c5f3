package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) Repository {
	return &sqliteRepository{db: db}
}

// View runs fn inside a transaction that is always rolled back; writes are refused.
func (r *sqliteRepository) View(ctx context.Context, fn func(tx Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	return fn(&sqliteTx{tx: tx, readOnly: true})
}

// Update runs fn inside a transaction and commits only if fn succeeds.
func (r *sqliteRepository) Update(ctx context.Context, fn func(tx Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	// Ensure transaction is rolled back on error
	defer tx.Rollback()

	if err := fn(&sqliteTx{tx: tx}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}
	return nil
}

func (r *sqliteRepository) Close() error {
	return r.db.Close()
}

type sqliteTx struct {
	tx       *sql.Tx
	readOnly bool
}

func (t *sqliteTx) Get(ctx context.Context, table Table, id string) ([]byte, error) {
	if !table.valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}
	query := fmt.Sprintf("SELECT value FROM %s WHERE id = ?", table)
	var value string
	err := t.tx.QueryRowContext(ctx, query, id).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return []byte(value), nil
}

func (t *sqliteTx) List(ctx context.Context, table Table) (map[string][]byte, error) {
	if !table.valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}
	query := fmt.Sprintf("SELECT id, value FROM %s", table)
	rows, err := t.tx.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]byte)
	for rows.Next() {
		var id, value string
		if err := rows.Scan(&id, &value); err != nil {
			return nil, err
		}
		out[id] = []byte(value)
	}
	return out, rows.Err()
}

func (t *sqliteTx) Put(ctx context.Context, table Table, id string, value []byte) error {
	if t.readOnly {
		return ErrReadOnly
	}
	if !table.valid() {
		return fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}
	query := fmt.Sprintf(
		"INSERT INTO %s (id, value) VALUES (?, ?) ON CONFLICT(id) DO UPDATE SET value = excluded.value", table)
	if _, err := t.tx.ExecContext(ctx, query, id, string(value)); err != nil {
		return fmt.Errorf("could not write %s/%s: %w", table, id, err)
	}
	return nil
}

func (t *sqliteTx) Delete(ctx context.Context, table Table, id string) error {
	if t.readOnly {
		return ErrReadOnly
	}
	if !table.valid() {
		return fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}
	query := fmt.Sprintf("DELETE FROM %s WHERE id = ?", table)
	res, err := t.tx.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("could not delete %s/%s: %w", table, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
