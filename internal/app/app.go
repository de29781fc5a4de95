//go:build ebiten

package app

import (
	"context"
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"lifegrid/internal/config"
	"lifegrid/internal/core"
	"lifegrid/internal/render"
	"lifegrid/internal/session"
	"lifegrid/internal/ui"
)

const hudWidth = 200

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	ctx     context.Context
	session *session.Session
	frame   *core.Frame
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	log     *zap.Logger

	scale  int
	render time.Duration
}

// New constructs a Game for the provided session.
func New(ctx context.Context, s *session.Session, scale int, log *zap.Logger) *Game {
	w, h := s.World().Width(), s.World().Height()
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		ctx:     ctx,
		session: s,
		frame:   core.NewFrame(w, h),
		painter: render.NewGridPainter(w, h),
		overlay: ui.NewOverlay(w, h, scale),
		hud:     ui.NewHUD(hudWidth),
		log:     log,
		scale:   scale,
	}
}

// Update handles input and advances the session while it is running.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.log.Info("gui driver quit", zap.Int("generation", g.session.Generation()))
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.ToggleRunning()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.session.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Randomize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.session.Step()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		px, py := ebiten.CursorPosition()
		w := g.session.World()
		if x, y, ok := render.CellAt(px, py, g.scale, w.Width(), w.Height()); ok {
			g.session.ToggleCell(x, y)
		}
	}

	g.overlay.Update()
	g.session.Tick()
	g.hud.Update(g.session.Stats(g.render))
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	w := g.session.World()
	g.frame.Load(w)
	g.painter.Blit(screen, g.frame, render.AliveColor, render.DeadColor, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, w.Width()*g.scale, w.Height()*g.scale)
	g.render = time.Since(start)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := g.session.World()
	return w.Width()*g.scale + g.hud.Width(), w.Height() * g.scale
}

// Driver opens the window and runs the game loop.
type Driver struct {
	session *session.Session
	display config.DisplayConfig
	log     *zap.Logger
}

// Name returns the driver mode.
func (d *Driver) Name() string { return "gui" }

// Run blocks until the window is closed, the user quits or ctx is cancelled.
func (d *Driver) Run(ctx context.Context) error {
	game := New(ctx, d.session, d.display.CellPixels, d.log)
	width, height := game.Layout(0, 0)

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetTPS(d.display.UPS)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	d.log.Info("gui driver started", zap.Int("width", width), zap.Int("height", height), zap.Int("tps", d.display.UPS))
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func init() {
	core.Register("gui", func(cfg *config.Config, log *zap.Logger) (core.Driver, error) {
		s, err := session.New(cfg.Grid, log)
		if err != nil {
			return nil, err
		}
		return &Driver{session: s, display: cfg.Display, log: log}, nil
	})
}
