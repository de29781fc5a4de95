package console

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"lifegrid/internal/config"
	"lifegrid/internal/core"
	"lifegrid/internal/session"
)

func init() {
	core.Register("term", func(cfg *config.Config, log *zap.Logger) (core.Driver, error) {
		s, err := session.New(cfg.Grid, log)
		if err != nil {
			return nil, err
		}
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("open terminal: %w", err)
		}
		return NewTerminal(screen, s, cfg.Display, log), nil
	})
	core.Register("text", func(cfg *config.Config, log *zap.Logger) (core.Driver, error) {
		s, err := session.New(cfg.Grid, log)
		if err != nil {
			return nil, err
		}
		return NewText(os.Stdout, s, cfg.Driver.Generations, log), nil
	})
}
