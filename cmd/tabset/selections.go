package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/jask/tabset/app"
)

func newSelectionsCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selections",
		Short: "Inspect or forget remembered tab selections",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the remembered panel and closed tabs of every group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, closeDB, err := openStore(root)
			if err != nil {
				return err
			}
			defer closeDB()
			groups, err := store.Groups(cmd.Context())
			if err != nil {
				return err
			}
			if len(groups) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no remembered selections")
				return nil
			}
			t := table.New().Headers("GROUP", "PANEL", "UPDATED", "CLOSED")
			for _, g := range groups {
				panel, updated := g.Panel, "-"
				if panel == "" {
					panel = "-"
				} else {
					updated = g.UpdatedAt.Local().Format(time.DateTime)
				}
				closed := "-"
				if len(g.Closed) > 0 {
					closed = strings.Join(g.Closed, ", ")
				}
				t.Row(g.GroupID, panel, updated, closed)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Forget every remembered selection and closed tab",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, closeDB, err := openStore(root)
			if err != nil {
				return err
			}
			defer closeDB()
			sels, closed, err := store.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cleared %d selection(s) and %d closed tab(s)\n", sels, closed)
			return nil
		},
	})
	return cmd
}

func openStore(root *rootOptions) (*app.Store, func(), error) {
	cfg, err := root.load()
	if err != nil {
		return nil, nil, err
	}
	store, db, err := app.OpenStore(cfg.Store.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	return store, func() { _ = db.Close() }, nil
}
