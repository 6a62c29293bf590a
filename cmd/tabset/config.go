package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jask/tabset/core"
	"github.com/jask/tabset/internal/config"
)

func newConfigCmd(root *rootOptions) *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			printConfig(cmd, cfg)
			if !write {
				return nil
			}
			path := root.configPath
			if path == "" {
				path = config.DefaultPath()
			}
			if err := config.Save(path, cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nwrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&write, "write", false, "write the resolved configuration back to the config file")
	return cmd
}

func printConfig(cmd *cobra.Command, cfg config.Config) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "tabs.activation         %s\n", cfg.Tabs.Activation)
	fmt.Fprintf(out, "tabs.placement          %s\n", cfg.Tabs.Placement)
	fmt.Fprintf(out, "tabs.no_scroll_controls %t\n", cfg.Tabs.NoScrollControls)
	fmt.Fprintf(out, "tabs.scroll_behavior    %s\n", cfg.Tabs.ScrollBehavior)
	fmt.Fprintf(out, "tabs.frame_interval     %s\n", cfg.Tabs.FrameInterval)
	fmt.Fprintf(out, "tabs.icon_library       %s\n", cfg.Tabs.IconLibrary)
	fmt.Fprintf(out, "store.path              %s\n", cfg.Store.Path)
	fmt.Fprintf(out, "log.path                %s\n", cfg.Log.Path)
	fmt.Fprintf(out, "log.level               %s\n", cfg.Log.Level)
	// Effective bindings: defaults with the [keys] overrides applied.
	byAction := core.KeybindingsByAction(core.ApplyActionKeybindings(core.DefaultKeyBindings(), cfg.Keys))
	actions := make([]string, 0, len(byAction))
	for action := range byAction {
		actions = append(actions, action)
	}
	slices.Sort(actions)
	for _, action := range actions {
		fmt.Fprintf(out, "keys.%-18s %s\n", action, strings.Join(byAction[action], ", "))
	}
}
