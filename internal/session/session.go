package session

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"lifegrid/internal/config"
	"lifegrid/internal/core"
	pkgcore "lifegrid/pkg/core"
	"lifegrid/pkg/life"
)

// Session holds the current generation for a driver loop together with the
// driver-local running flag. Calls must be serialized by the owning driver.
type Session struct {
	world      life.World
	rng        *pkgcore.RNG
	running    bool
	generation int
	log        *zap.Logger
}

// New builds a session from the grid section of the config. A zero seed draws
// one from the clock.
func New(cfg config.GridConfig, log *zap.Logger) (*Session, error) {
	if log == nil {
		log = zap.NewNop()
	}
	rng := pkgcore.NewTimeRNG()
	if cfg.Seed != 0 {
		rng = pkgcore.NewRNG(cfg.Seed)
	}
	opts := []life.Option{life.WithWorkers(cfg.Workers)}

	var (
		world life.World
		err   error
	)
	if cfg.Empty {
		world, err = life.New(cfg.Width, cfg.Height, opts...)
	} else {
		world, err = life.NewRandom(cfg.Width, cfg.Height, rng, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("new world: %w", err)
	}

	log.Info("world created",
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("empty", cfg.Empty),
		zap.Int("population", world.Population()))
	return &Session{world: world, rng: rng, running: true, log: log}, nil
}

// World returns the current generation.
func (s *Session) World() life.World { return s.world }

// Generation counts advances since the last clear or randomize.
func (s *Session) Generation() int { return s.generation }

// Running reports whether Tick advances the world.
func (s *Session) Running() bool { return s.running }

// ToggleRunning pauses or resumes automatic advancing.
func (s *Session) ToggleRunning() {
	s.running = !s.running
	s.log.Debug("running toggled", zap.Bool("running", s.running))
}

// Clear replaces the world with an empty one.
func (s *Session) Clear() {
	s.world = s.world.Clear()
	s.generation = 0
	s.log.Debug("world cleared")
}

// Randomize replaces the world with a freshly randomized one.
func (s *Session) Randomize() {
	s.world = s.world.Random(s.rng)
	s.generation = 0
	s.log.Debug("world randomized", zap.Int("population", s.world.Population()))
}

// Step advances one generation regardless of the running flag.
func (s *Session) Step() {
	s.world = s.world.Advance()
	s.generation++
	s.log.Debug("generation advanced",
		zap.Int("generation", s.generation),
		zap.Duration("took", s.world.LastAdvance()))
}

// Tick advances one generation while running and reports whether it did.
func (s *Session) Tick() bool {
	if !s.running {
		return false
	}
	s.Step()
	return true
}

// ToggleCell flips the interior cell at (x, y). Border and off-grid
// coordinates are ignored.
func (s *Session) ToggleCell(x, y int) {
	s.world = s.world.Toggle(x, y)
	s.log.Debug("cell toggled", zap.Int("x", x), zap.Int("y", y), zap.Bool("alive", s.world.IsAlive(x, y)))
}

// Stats summarizes the session for display. render is the caller's own
// measurement of its last draw.
func (s *Session) Stats(render time.Duration) core.Stats {
	return core.Stats{
		Generation:  s.generation,
		Population:  s.world.Population(),
		Running:     s.running,
		LastAdvance: s.world.LastAdvance(),
		Render:      render,
	}
}
