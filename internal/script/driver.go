package script

import (
	"context"

	"go.uber.org/zap"

	"lifegrid/internal/config"
	"lifegrid/internal/core"
	"lifegrid/internal/session"
)

// Driver runs one Lua file against a fresh session.
type Driver struct {
	engine *Engine
	path   string
	log    *zap.Logger
}

// Name returns the driver mode.
func (d *Driver) Name() string { return "script" }

// Run executes the script and closes the VM.
func (d *Driver) Run(ctx context.Context) error {
	defer d.engine.Close()
	d.log.Info("running script", zap.String("file", d.path))
	return d.engine.DoFile(ctx, d.path)
}

func init() {
	core.Register("script", func(cfg *config.Config, log *zap.Logger) (core.Driver, error) {
		s, err := session.New(cfg.Grid, log)
		if err != nil {
			return nil, err
		}
		return &Driver{engine: NewEngine(s, log), path: cfg.Driver.Script, log: log}, nil
	})
}
