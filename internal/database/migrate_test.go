package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
)

func TestRunMigrationsIsIdempotent(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "tabset.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	if err := RunMigrations(db); err != nil {
		t.Fatalf("first migrate: %v", err)
	}
	if err := RunMigrations(db); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
	for _, table := range []string{"selections", "closed_tabs"} {
		var name string
		err := db.QueryRowContext(context.Background(),
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		if err != nil {
			t.Fatalf("table %s missing: %v", table, err)
		}
	}
}

func TestWithTxRollsBackOnError(t *testing.T) {
	db, err := OpenMigrated(filepath.Join(t.TempDir(), "tabset.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()
	ctx := context.Background()

	sentinel := context.Canceled
	err = WithTx(ctx, db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO selections(group_id, panel) VALUES ('g', 'p')`); err != nil {
			return err
		}
		return sentinel
	})
	if err != sentinel {
		t.Fatalf("WithTx err = %v, want %v", err, sentinel)
	}
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM selections`).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("rollback left %d rows", n)
	}
}
