// Package config resolves folio settings from flags, environment, .env and a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"folio/internal/viewstate"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment override, e.g. FOLIO_BREAKPOINT_PX.
	EnvPrefix = "FOLIO"
	// HomeDir is the per-user directory under $HOME holding config.yaml and the log.
	HomeDir = ".folio"

	KeyBreakpoint   = "breakpoint_px"
	KeyCellWidth    = "cell_width_px"
	KeyLoadingDelay = "loading_delay"
	KeyContentFile  = "content_file"
	KeyLogFile      = "log_file"
	KeyVerbose      = "verbose"
	KeyMouse        = "mouse"
)

// Config is the resolved runtime configuration.
type Config struct {
	Breakpoint   viewstate.Breakpoint
	CellWidth    int // logical pixels per terminal column
	LoadingDelay time.Duration
	ContentFile  string
	LogFile      string
	Verbose      bool
	Mouse        bool
}

// Dir returns ~/.folio, or ./.folio when the home directory is unknown.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return HomeDir
	}
	return filepath.Join(home, HomeDir)
}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() Config {
	return Config{
		Breakpoint:   viewstate.DefaultBreakpoint,
		CellWidth:    8,
		LoadingDelay: 2 * time.Second,
		LogFile:      filepath.Join(Dir(), "folio.log"),
		Mouse:        true,
	}
}

// PixelWidth converts a terminal width in columns to logical pixels.
func (c Config) PixelWidth(columns int) int {
	return columns * c.CellWidth
}

// Validate rejects settings the shell cannot run with.
func (c Config) Validate() error {
	if c.Breakpoint <= 0 {
		return fmt.Errorf("%s must be positive, got %d", KeyBreakpoint, c.Breakpoint)
	}
	if c.CellWidth <= 0 {
		return fmt.Errorf("%s must be positive, got %d", KeyCellWidth, c.CellWidth)
	}
	if c.LoadingDelay < 0 {
		return fmt.Errorf("%s must not be negative, got %s", KeyLoadingDelay, c.LoadingDelay)
	}
	return nil
}

// NewViper returns a viper instance with defaults and FOLIO_* environment overrides.
// Callers may bind flags to it before calling Load.
func NewViper() *viper.Viper {
	d := Defaults()
	v := viper.New()
	v.SetDefault(KeyBreakpoint, int(d.Breakpoint))
	v.SetDefault(KeyCellWidth, d.CellWidth)
	v.SetDefault(KeyLoadingDelay, d.LoadingDelay)
	v.SetDefault(KeyContentFile, d.ContentFile)
	v.SetDefault(KeyLogFile, d.LogFile)
	v.SetDefault(KeyVerbose, d.Verbose)
	v.SetDefault(KeyMouse, d.Mouse)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// Load reads the config file into v and resolves the final Config.
// An explicit path must exist; without one, ~/.folio/config.yaml is read if present.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else {
		v.SetConfigFile(filepath.Join(Dir(), "config.yaml"))
		v.SetConfigType("yaml")
		// Ignore error if config file doesn't exist yet.
		_ = v.ReadInConfig()
	}

	cfg := Config{
		Breakpoint:   viewstate.Breakpoint(v.GetInt(KeyBreakpoint)),
		CellWidth:    v.GetInt(KeyCellWidth),
		LoadingDelay: v.GetDuration(KeyLoadingDelay),
		ContentFile:  v.GetString(KeyContentFile),
		LogFile:      v.GetString(KeyLogFile),
		Verbose:      v.GetBool(KeyVerbose),
		Mouse:        v.GetBool(KeyMouse),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
