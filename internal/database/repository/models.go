package repository

import (
	"context"
	"database/sql"
	"time"
)

// DBTX is satisfied by *sql.DB and *sql.Tx, so a repo can run inside a
// caller's transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Selection is the panel last shown in a tab group.
type Selection struct {
	GroupID   string
	Panel     string
	UpdatedAt time.Time
}

// ClosedTab is a tab the user closed in a tab group.
type ClosedTab struct {
	GroupID  string
	Panel    string
	ClosedAt time.Time
}
