//go:build !ebiten

package app

import (
	"errors"

	"go.uber.org/zap"

	"lifegrid/internal/config"
	"lifegrid/internal/core"
)

// ErrNoGUI is returned by the gui driver factory in builds without the ebiten tag.
var ErrNoGUI = errors.New("the gui driver requires building with -tags ebiten")

func init() {
	core.Register("gui", func(*config.Config, *zap.Logger) (core.Driver, error) {
		return nil, ErrNoGUI
	})
}
