package main

import (
	"github.com/spf13/cobra"

	"github.com/jask/tabset/internal/config"
)

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "tabset",
		Short: "Tabbed navigation for terminal UIs",
		Long: `tabset runs an interactive demo of the tab group component and manages
the state it remembers between runs.

Configuration is read from ~/.config/tabset/config.toml (or $TABSET_CONFIG);
every key can be overridden with TABSET_<SECTION>_<KEY>.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default: ~/.config/tabset/config.toml)")

	cmd.AddCommand(newDemoCmd(opts), newConfigCmd(opts), newSelectionsCmd(opts))
	return cmd
}

func (o *rootOptions) load() (config.Config, error) {
	return config.Load(o.configPath)
}
