package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/tabset/internal/database"
	"github.com/jask/tabset/internal/database/repository"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.OpenMigrated(filepath.Join(t.TempDir(), "tabset.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSelectionRepoPutGetList(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSelectionRepo(openTestDB(t))

	_, ok, err := repo.Get(ctx, "demo")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, repo.Put(ctx, "demo", "general"))
	require.NoError(t, repo.Put(ctx, "demo", "advanced"))
	require.NoError(t, repo.Put(ctx, "other", "custom"))

	sel, ok, err := repo.Get(ctx, "demo")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "advanced", sel.Panel)
	require.False(t, sel.UpdatedAt.IsZero())

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "demo", all[0].GroupID)
	require.Equal(t, "other", all[1].GroupID)

	n, err := repo.Clear(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), n)
	all, err = repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestClosedTabRepoAddAndReopen(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewClosedTabRepo(openTestDB(t))

	require.NoError(t, repo.Add(ctx, "demo", "tab-3"))
	require.NoError(t, repo.Add(ctx, "demo", "tab-3"))
	require.NoError(t, repo.Add(ctx, "demo", "tab-4"))
	require.NoError(t, repo.Add(ctx, "other", "tab-1"))

	closed, err := repo.ListByGroup(ctx, "demo")
	require.NoError(t, err)
	require.Len(t, closed, 2)

	n, err := repo.Reopen(ctx, "demo")
	require.NoError(t, err)
	require.Equal(t, int64(2), n)
	closed, err = repo.ListByGroup(ctx, "demo")
	require.NoError(t, err)
	require.Empty(t, closed)

	n, err = repo.Clear(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
}

func TestReposShareACallerTransaction(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	require.NoError(t, repository.NewClosedTabRepo(db).Add(ctx, "other", "tab-1"))

	boom := errors.New("boom")
	err := database.WithTx(ctx, db, func(tx *sql.Tx) error {
		require.NoError(t, repository.NewSelectionRepo(tx).Put(ctx, "demo", "advanced"))
		require.NoError(t, repository.NewClosedTabRepo(tx).Add(ctx, "demo", "tab-3"))
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, ok, err := repository.NewSelectionRepo(db).Get(ctx, "demo")
	require.NoError(t, err)
	require.False(t, ok)
	all, err := repository.NewClosedTabRepo(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "other", all[0].GroupID)
}
