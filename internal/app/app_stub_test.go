//go:build !ebiten

package app

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"lifegrid/internal/config"
	"lifegrid/internal/core"
)

func TestHeadlessGUIFactory(t *testing.T) {
	factory, ok := core.Drivers()["gui"]
	if !ok {
		t.Fatal("gui driver not registered")
	}
	if _, err := factory(config.Default(), zap.NewNop()); !errors.Is(err, ErrNoGUI) {
		t.Fatalf("err = %v, want ErrNoGUI", err)
	}
}
