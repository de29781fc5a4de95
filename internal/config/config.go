package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config is the full runtime configuration of the life binary.
type Config struct {
	Grid    GridConfig    `toml:"grid" yaml:"grid"`
	Display DisplayConfig `toml:"display" yaml:"display"`
	Driver  DriverConfig  `toml:"driver" yaml:"driver"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
}

// GridConfig sizes and seeds the starting world.
type GridConfig struct {
	Width   int   `toml:"width" yaml:"width"`
	Height  int   `toml:"height" yaml:"height"`
	Seed    int64 `toml:"seed" yaml:"seed"`       // 0 = seed from the clock
	Workers int   `toml:"workers" yaml:"workers"` // 0 = GOMAXPROCS
	Empty   bool  `toml:"empty" yaml:"empty"`     // start cleared instead of random
}

// DisplayConfig controls cell size and update and redraw rates.
type DisplayConfig struct {
	CellPixels int `toml:"cell_pixels" yaml:"cell_pixels"`
	UPS        int `toml:"ups" yaml:"ups"`
	MaxFPS     int `toml:"max_fps" yaml:"max_fps"`
}

// DriverConfig selects the driver and its inputs.
type DriverConfig struct {
	Mode        string `toml:"mode" yaml:"mode"` // term, text, script or gui
	Script      string `toml:"script" yaml:"script"`
	Generations int    `toml:"generations" yaml:"generations"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
	Output string `toml:"output" yaml:"output"` // "stderr", "stdout" or a file path
}

// Modes lists the driver names Validate accepts.
var Modes = []string{"term", "text", "script", "gui"}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			Width:  100,
			Height: 100,
		},
		Display: DisplayConfig{
			CellPixels: 5,
			UPS:        120,
			MaxFPS:     240,
		},
		Driver: DriverConfig{
			Mode:        "term",
			Generations: 10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Output: "stderr",
		},
	}
}

// Load reads a TOML or YAML file on top of the defaults. The format is picked
// from the file extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml", "":
		err = toml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("config %s: unsupported extension %q", path, filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Grid.Width, "w", c.Grid.Width, "grid width in cells")
	fs.IntVar(&c.Grid.Height, "h", c.Grid.Height, "grid height in cells")
	fs.Int64Var(&c.Grid.Seed, "seed", c.Grid.Seed, "seed for randomization (0 = clock)")
	fs.IntVar(&c.Grid.Workers, "workers", c.Grid.Workers, "goroutines per generation (0 = GOMAXPROCS)")
	fs.BoolVar(&c.Grid.Empty, "empty", c.Grid.Empty, "start with a cleared grid")
	fs.IntVar(&c.Display.CellPixels, "scale", c.Display.CellPixels, "pixels per cell side")
	fs.IntVar(&c.Display.UPS, "ups", c.Display.UPS, "generations per second while running")
	fs.IntVar(&c.Display.MaxFPS, "fps", c.Display.MaxFPS, "maximum redraws per second")
	fs.StringVar(&c.Driver.Mode, "mode", c.Driver.Mode, "driver: "+strings.Join(Modes, ", "))
	fs.StringVar(&c.Driver.Script, "script", c.Driver.Script, "lua script for the script driver")
	fs.IntVar(&c.Driver.Generations, "n", c.Driver.Generations, "generations printed by the text driver")
	fs.StringVar(&c.Logging.Level, "log-level", c.Logging.Level, "log level")
	fs.StringVar(&c.Logging.Format, "log-format", c.Logging.Format, "log format: json or console")
	fs.StringVar(&c.Logging.Output, "log-output", c.Logging.Output, "log sink: stderr, stdout or a file path")
}

// Overlay copies every flag explicitly set on fs onto dst, so command-line
// values win over a loaded file. Flags dst does not bind are ignored.
func Overlay(dst *Config, fs *flag.FlagSet) error {
	bound := flag.NewFlagSet("overlay", flag.ContinueOnError)
	dst.Bind(bound)
	var errs []error
	fs.Visit(func(f *flag.Flag) {
		if bound.Lookup(f.Name) == nil {
			return
		}
		if err := bound.Set(f.Name, f.Value.String()); err != nil {
			errs = append(errs, fmt.Errorf("flag -%s: %w", f.Name, err))
		}
	})
	return errors.Join(errs...)
}

// Validate reports every field that would leave the program unable to run.
func (c *Config) Validate() error {
	var errs []error
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		errs = append(errs, fmt.Errorf("grid: dimensions must be positive, got %dx%d", c.Grid.Width, c.Grid.Height))
	}
	if c.Grid.Workers < 0 {
		errs = append(errs, fmt.Errorf("grid: workers must not be negative, got %d", c.Grid.Workers))
	}
	if c.Display.CellPixels <= 0 {
		errs = append(errs, fmt.Errorf("display: cell_pixels must be positive, got %d", c.Display.CellPixels))
	}
	if c.Display.UPS <= 0 {
		errs = append(errs, fmt.Errorf("display: ups must be positive, got %d", c.Display.UPS))
	}
	if c.Display.MaxFPS <= 0 {
		errs = append(errs, fmt.Errorf("display: max_fps must be positive, got %d", c.Display.MaxFPS))
	}
	if !validMode(c.Driver.Mode) {
		errs = append(errs, fmt.Errorf("driver: unknown mode %q", c.Driver.Mode))
	}
	if c.Driver.Mode == "script" && c.Driver.Script == "" {
		errs = append(errs, errors.New("driver: script mode needs a script path"))
	}
	if c.Driver.Generations < 0 {
		errs = append(errs, fmt.Errorf("driver: generations must not be negative, got %d", c.Driver.Generations))
	}
	return errors.Join(errs...)
}

func validMode(mode string) bool {
	for _, m := range Modes {
		if m == mode {
			return true
		}
	}
	return false
}
