package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/tabset/app"
	"github.com/jask/tabset/internal/config"
	"github.com/jask/tabset/internal/logging"
)

type demoOptions struct {
	placement        string
	activation       string
	noScrollControls bool
	extraTabs        int
	logLevel         string
}

func newDemoCmd(root *rootOptions) *cobra.Command {
	opts := &demoOptions{}
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the interactive tab group demo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			if err := opts.apply(cmd, &cfg); err != nil {
				return err
			}
			return runDemo(cmd, cfg, opts.extraTabs)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.placement, "placement", "", "strip placement: top, bottom, start or end")
	f.StringVar(&opts.activation, "activation", "", "activation: auto or manual")
	f.BoolVar(&opts.noScrollControls, "no-scroll-controls", false, "never show scroll buttons")
	f.IntVar(&opts.extraTabs, "tabs", 12, "number of extra closable tabs")
	f.StringVar(&opts.logLevel, "log-level", "", "log level override")
	return cmd
}

// apply layers explicitly set flags over the loaded config.
func (o *demoOptions) apply(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	if f.Changed("placement") {
		cfg.Tabs.Placement = o.placement
	}
	if f.Changed("activation") {
		cfg.Tabs.Activation = o.activation
	}
	if f.Changed("no-scroll-controls") {
		cfg.Tabs.NoScrollControls = o.noScrollControls
	}
	if f.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if o.extraTabs < 0 {
		return fmt.Errorf("%w: --tabs must not be negative", config.ErrInvalid)
	}
	return cfg.Validate()
}

func runDemo(cmd *cobra.Command, cfg config.Config, extraTabs int) error {
	logger, closer, err := logging.Open(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closer.Close()

	store, db, err := app.OpenStore(cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	logger.Info("starting demo", "placement", cfg.Tabs.Placement, "activation", cfg.Tabs.Activation, "tabs", extraTabs)
	return app.Run(cmd.Context(), app.Deps{
		Config:    cfg,
		Store:     store,
		Logger:    logger,
		ExtraTabs: extraTabs,
	})
}
