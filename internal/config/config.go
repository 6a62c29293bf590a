package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/jask/tabset/icons"
	"github.com/jask/tabset/internal/scroll"
	"github.com/jask/tabset/tabs"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds application configuration.
type Config struct {
	Tabs  TabsConfig  `mapstructure:"tabs"`
	Store StoreConfig `mapstructure:"store"`
	Log   LogConfig   `mapstructure:"log"`
	// Keys overrides the default key bindings by action name.
	Keys map[string][]string `mapstructure:"keys"`
}

// TabsConfig holds the tab group defaults used by the demo.
type TabsConfig struct {
	Activation       string        `mapstructure:"activation"`
	Placement        string        `mapstructure:"placement"`
	NoScrollControls bool          `mapstructure:"no_scroll_controls"`
	ScrollBehavior   string        `mapstructure:"scroll_behavior"`
	FrameInterval    time.Duration `mapstructure:"frame_interval"`
	IconLibrary      string        `mapstructure:"icon_library"`
}

// StoreConfig holds sqlite settings.
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig holds debug log settings. An empty path disables logging.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// DefaultPath is where Load looks when neither an explicit path nor
// TABSET_CONFIG is given.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "tabset", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix
// TABSET_, e.g. TABSET_TABS_PLACEMENT. A missing file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	if path == "" {
		path = os.Getenv("TABSET_CONFIG")
	}
	if path == "" {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix("TABSET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	share := filepath.Join(os.Getenv("HOME"), ".local", "share", "tabset")
	v.SetDefault("tabs.activation", "auto")
	v.SetDefault("tabs.placement", "top")
	v.SetDefault("tabs.no_scroll_controls", false)
	v.SetDefault("tabs.scroll_behavior", "smooth")
	v.SetDefault("tabs.frame_interval", scroll.DefaultFrameInterval)
	v.SetDefault("tabs.icon_library", icons.DefaultLibrary)
	v.SetDefault("store.path", filepath.Join(share, "tabset.db"))
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}

// Validate checks every enumerated setting.
func (c Config) Validate() error {
	if _, err := tabs.ParseActivation(c.Tabs.Activation); err != nil {
		return fmt.Errorf("%w: tabs.activation: %w", ErrInvalid, err)
	}
	if _, err := tabs.ParsePlacement(c.Tabs.Placement); err != nil {
		return fmt.Errorf("%w: tabs.placement: %w", ErrInvalid, err)
	}
	if _, err := scroll.ParseBehavior(c.Tabs.ScrollBehavior); err != nil {
		return fmt.Errorf("%w: tabs.scroll_behavior: %w", ErrInvalid, err)
	}
	if c.Tabs.FrameInterval <= 0 {
		return fmt.Errorf("%w: tabs.frame_interval must be positive, got %s", ErrInvalid, c.Tabs.FrameInterval)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	if strings.TrimSpace(c.Store.Path) == "" {
		return fmt.Errorf("%w: store.path is empty", ErrInvalid)
	}
	return nil
}

// Save writes cfg to path as TOML, creating the directory if needed.
func Save(path string, cfg Config) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("tabs.activation", cfg.Tabs.Activation)
	v.Set("tabs.placement", cfg.Tabs.Placement)
	v.Set("tabs.no_scroll_controls", cfg.Tabs.NoScrollControls)
	v.Set("tabs.scroll_behavior", cfg.Tabs.ScrollBehavior)
	v.Set("tabs.frame_interval", cfg.Tabs.FrameInterval.String())
	v.Set("tabs.icon_library", cfg.Tabs.IconLibrary)
	v.Set("store.path", cfg.Store.Path)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	for action, keys := range cfg.Keys {
		v.Set("keys."+action, keys)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
