package console

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"lifegrid/internal/session"
)

// Text prints the starting world and then every generation as glyph rows,
// each followed by the time its advance took.
type Text struct {
	out         io.Writer
	session     *session.Session
	generations int
	log         *zap.Logger
}

// NewText returns a driver that writes generations to out.
func NewText(out io.Writer, s *session.Session, generations int, log *zap.Logger) *Text {
	return &Text{out: out, session: s, generations: generations, log: log}
}

// Name returns the driver mode.
func (t *Text) Name() string { return "text" }

// Run writes the generations, stopping early when ctx is cancelled.
func (t *Text) Run(ctx context.Context) error {
	if err := t.write(); err != nil {
		return err
	}
	for i := 0; i < t.generations; i++ {
		if err := ctx.Err(); err != nil {
			t.log.Info("text driver interrupted", zap.Int("generation", t.session.Generation()))
			return nil
		}
		t.session.Step()
		if err := t.write(); err != nil {
			return err
		}
	}
	return nil
}

func (t *Text) write() error {
	w := t.session.World()
	if _, err := fmt.Fprintf(t.out, "%sWorld Tick: %dms\n", w, w.LastAdvance().Milliseconds()); err != nil {
		return fmt.Errorf("write generation %d: %w", t.session.Generation(), err)
	}
	return nil
}
