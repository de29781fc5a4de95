package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	_ "lifegrid/internal/app"
	"lifegrid/internal/config"
	_ "lifegrid/internal/console"
	"lifegrid/internal/core"
	"lifegrid/internal/logging"
	_ "lifegrid/internal/script"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// The terminal driver owns the screen; stderr output would tear it.
	if cfg.Driver.Mode == "term" && isStdStream(cfg.Logging.Output) {
		cfg.Logging.Level = "fatal"
	}
	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	factory, ok := core.Drivers()[cfg.Driver.Mode]
	if !ok {
		return fmt.Errorf("unknown mode %q (available: %s)", cfg.Driver.Mode, strings.Join(core.DriverNames(), ", "))
	}
	driver, err := factory(cfg, log)
	if err != nil {
		return fmt.Errorf("%s driver: %w", cfg.Driver.Mode, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting",
		zap.String("mode", driver.Name()),
		zap.Int("width", cfg.Grid.Width),
		zap.Int("height", cfg.Grid.Height),
		zap.Int("workers", cfg.Grid.Workers))
	if err := driver.Run(ctx); err != nil {
		return fmt.Errorf("%s driver: %w", driver.Name(), err)
	}
	return nil
}

// loadConfig resolves defaults, an optional file named by -config or
// LIFE_CONFIG, and explicitly set flags, in increasing precedence.
func loadConfig(args []string) (*config.Config, error) {
	cfg := config.Default()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	path := fs.String("config", os.Getenv("LIFE_CONFIG"), "TOML or YAML config file")
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *path == "" {
		return cfg, nil
	}

	loaded, err := config.Load(*path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := config.Overlay(loaded, fs); err != nil {
		return nil, err
	}
	return loaded, nil
}

func isStdStream(output string) bool {
	return output == "" || output == "stderr" || output == "stdout"
}
