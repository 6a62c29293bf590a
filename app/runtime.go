package app

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/jask/tabset/internal/database"
)

// OpenStore opens the sqlite database at path, creating and migrating it
// if needed. The caller closes the returned db.
func OpenStore(path string) (*Store, *sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	db, err := database.OpenMigrated(path)
	if err != nil {
		return nil, nil, err
	}
	return NewStore(db), db, nil
}

// Run starts the demo program and blocks until the user quits or ctx is
// canceled.
func Run(ctx context.Context, deps Deps) error {
	if deps.Zones == nil {
		deps.Zones = zone.New()
		defer deps.Zones.Close()
	}
	m, err := NewModel(ctx, deps)
	if err != nil {
		return err
	}
	defer m.Group().Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
