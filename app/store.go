package app

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/jask/tabset/internal/database"
	"github.com/jask/tabset/internal/database/repository"
)

// Store remembers, per group, the last shown panel and the tabs the user
// closed.
type Store struct {
	db         *sql.DB
	Selections *repository.SelectionRepo
	Closed     *repository.ClosedTabRepo
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:         db,
		Selections: repository.NewSelectionRepo(db),
		Closed:     repository.NewClosedTabRepo(db),
	}
}

// GroupState is everything remembered about one tab group. Panel is empty
// when only closed tabs are on record.
type GroupState struct {
	GroupID   string
	Panel     string
	UpdatedAt time.Time
	Closed    []string
}

func (s *Store) SaveSelection(ctx context.Context, groupID, panel string) error {
	return s.Selections.Put(ctx, groupID, panel)
}

func (s *Store) SaveClosed(ctx context.Context, groupID, panel string) error {
	return s.Closed.Add(ctx, groupID, panel)
}

// Restore returns the remembered panel ("" if none) and the closed panels.
func (s *Store) Restore(ctx context.Context, groupID string) (string, map[string]bool, error) {
	sel, ok, err := s.Selections.Get(ctx, groupID)
	if err != nil {
		return "", nil, fmt.Errorf("load selection: %w", err)
	}
	closed, err := s.Closed.ListByGroup(ctx, groupID)
	if err != nil {
		return "", nil, fmt.Errorf("load closed tabs: %w", err)
	}
	out := make(map[string]bool, len(closed))
	for _, c := range closed {
		out[c.Panel] = true
	}
	if !ok {
		return "", out, nil
	}
	return sel.Panel, out, nil
}

// Reopen forgets the group's closed tabs and returns their panel names.
func (s *Store) Reopen(ctx context.Context, groupID string) ([]string, error) {
	var names []string
	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		closed := repository.NewClosedTabRepo(tx)
		rows, err := closed.ListByGroup(ctx, groupID)
		if err != nil {
			return fmt.Errorf("load closed tabs: %w", err)
		}
		if _, err := closed.Reopen(ctx, groupID); err != nil {
			return fmt.Errorf("reopen closed tabs: %w", err)
		}
		names = make([]string, 0, len(rows))
		for _, c := range rows {
			names = append(names, c.Panel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// Clear forgets every selection and closed tab. Either both go or neither.
func (s *Store) Clear(ctx context.Context) (selections, closed int64, err error) {
	err = database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		var err error
		if selections, err = repository.NewSelectionRepo(tx).Clear(ctx); err != nil {
			return fmt.Errorf("clear selections: %w", err)
		}
		if closed, err = repository.NewClosedTabRepo(tx).Clear(ctx); err != nil {
			return fmt.Errorf("clear closed tabs: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return selections, closed, nil
}

// Groups lists every group with a remembered selection or a closed tab,
// ordered by group ID.
func (s *Store) Groups(ctx context.Context) ([]GroupState, error) {
	sels, err := s.Selections.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list selections: %w", err)
	}
	closed, err := s.Closed.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list closed tabs: %w", err)
	}
	byID := make(map[string]*GroupState, len(sels))
	get := func(id string) *GroupState {
		if st, ok := byID[id]; ok {
			return st
		}
		st := &GroupState{GroupID: id}
		byID[id] = st
		return st
	}
	for _, sel := range sels {
		st := get(sel.GroupID)
		st.Panel, st.UpdatedAt = sel.Panel, sel.UpdatedAt
	}
	for _, c := range closed {
		st := get(c.GroupID)
		st.Closed = append(st.Closed, c.Panel)
	}
	out := make([]GroupState, 0, len(byID))
	for _, st := range byID {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GroupID < out[j].GroupID })
	return out, nil
}
