package repository

import (
	"context"

	"github.com/jask/tabset/internal/database"
)

// ClosedTabRepo records tabs the user closed so they stay closed.
type ClosedTabRepo struct {
	db DBTX
}

func NewClosedTabRepo(db DBTX) *ClosedTabRepo {
	return &ClosedTabRepo{db: db}
}

func (r *ClosedTabRepo) Add(ctx context.Context, groupID, panel string) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO closed_tabs(group_id, panel, closed_at)
	VALUES (?, ?, ?)
	ON CONFLICT(group_id, panel) DO UPDATE SET closed_at=excluded.closed_at;
	`, groupID, panel, database.Now())
	return err
}

func (r *ClosedTabRepo) ListByGroup(ctx context.Context, groupID string) ([]ClosedTab, error) {
	return r.query(ctx, `SELECT group_id, panel, closed_at FROM closed_tabs WHERE group_id = ? ORDER BY closed_at, panel`, groupID)
}

// List returns every closed tab, grouped by tab group.
func (r *ClosedTabRepo) List(ctx context.Context) ([]ClosedTab, error) {
	return r.query(ctx, `SELECT group_id, panel, closed_at FROM closed_tabs ORDER BY group_id, closed_at, panel`)
}

func (r *ClosedTabRepo) query(ctx context.Context, q string, args ...any) ([]ClosedTab, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []ClosedTab
	for rows.Next() {
		var c ClosedTab
		if err := rows.Scan(&c.GroupID, &c.Panel, &c.ClosedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Reopen forgets every closed tab of a group.
func (r *ClosedTabRepo) Reopen(ctx context.Context, groupID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM closed_tabs WHERE group_id = ?`, groupID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *ClosedTabRepo) Clear(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM closed_tabs`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
