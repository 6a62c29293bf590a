package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jask/tabset/internal/database"
)

// SelectionRepo remembers the last shown panel per tab group.
type SelectionRepo struct {
	db DBTX
}

func NewSelectionRepo(db DBTX) *SelectionRepo {
	return &SelectionRepo{db: db}
}

func (r *SelectionRepo) Put(ctx context.Context, groupID, panel string) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO selections(group_id, panel, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT(group_id) DO UPDATE SET
	 panel=excluded.panel,
	 updated_at=excluded.updated_at;
	`, groupID, panel, database.Now())
	return err
}

// Get returns the stored selection; ok is false when the group has none.
func (r *SelectionRepo) Get(ctx context.Context, groupID string) (sel Selection, ok bool, err error) {
	row := r.db.QueryRowContext(ctx, `SELECT group_id, panel, updated_at FROM selections WHERE group_id = ?`, groupID)
	if err := row.Scan(&sel.GroupID, &sel.Panel, &sel.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Selection{}, false, nil
		}
		return Selection{}, false, err
	}
	return sel, true, nil
}

func (r *SelectionRepo) List(ctx context.Context) ([]Selection, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT group_id, panel, updated_at FROM selections ORDER BY group_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Selection
	for rows.Next() {
		var s Selection
		if err := rows.Scan(&s.GroupID, &s.Panel, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Clear deletes every stored selection and reports how many were removed.
func (r *SelectionRepo) Clear(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM selections`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
