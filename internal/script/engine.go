package script

import (
	"context"
	"fmt"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"lifegrid/internal/session"
)

// Engine wraps a gopher-lua VM whose globals drive a session.
// Single-goroutine access only.
type Engine struct {
	vm      *lua.LState
	session *session.Session
	log     *zap.Logger
}

// NewEngine creates a VM and exposes the session commands to it.
func NewEngine(s *session.Session, log *zap.Logger) *Engine {
	e := &Engine{vm: lua.NewState(), session: s, log: log}
	for name, fn := range map[string]lua.LGFunction{
		"step":       e.step,
		"clear":      e.clear,
		"randomize":  e.randomize,
		"toggle":     e.toggle,
		"alive":      e.alive,
		"neighbors":  e.neighbors,
		"population": e.population,
		"generation": e.generation,
		"width":      e.width,
		"height":     e.height,
		"render":     e.render,
		"tick_ms":    e.tickMillis,
		"log":        e.logMessage,
	} {
		e.vm.SetGlobal(name, e.vm.NewFunction(fn))
	}
	return e
}

// Close releases the VM.
func (e *Engine) Close() { e.vm.Close() }

// DoString runs a chunk of Lua source.
func (e *Engine) DoString(src string) error {
	if err := e.vm.DoString(src); err != nil {
		return fmt.Errorf("run script: %w", err)
	}
	return nil
}

// DoFile runs the Lua file at path. Cancelling ctx aborts the script.
func (e *Engine) DoFile(ctx context.Context, path string) error {
	e.vm.SetContext(ctx)
	defer e.vm.RemoveContext()
	if err := e.vm.DoFile(path); err != nil {
		if ctx.Err() != nil {
			e.log.Info("script interrupted", zap.String("file", path), zap.Int("generation", e.session.Generation()))
			return nil
		}
		return fmt.Errorf("run script %s: %w", path, err)
	}
	return nil
}

// step([n]) advances n generations, default 1.
func (e *Engine) step(L *lua.LState) int {
	n := L.OptInt(1, 1)
	if n < 0 {
		L.ArgError(1, "generation count must not be negative")
		return 0
	}
	ctx := L.Context()
	for i := 0; i < n; i++ {
		if ctx != nil && ctx.Err() != nil {
			L.RaiseError("step interrupted after %d of %d generations: %v", i, n, ctx.Err())
			return 0
		}
		e.session.Step()
	}
	return 0
}

func (e *Engine) clear(L *lua.LState) int {
	e.session.Clear()
	return 0
}

func (e *Engine) randomize(L *lua.LState) int {
	e.session.Randomize()
	return 0
}

func (e *Engine) toggle(L *lua.LState) int {
	e.session.ToggleCell(L.CheckInt(1), L.CheckInt(2))
	return 0
}

func (e *Engine) alive(L *lua.LState) int {
	L.Push(lua.LBool(e.session.World().IsAlive(L.CheckInt(1), L.CheckInt(2))))
	return 1
}

func (e *Engine) neighbors(L *lua.LState) int {
	L.Push(lua.LNumber(e.session.World().CountAliveNeighbors(L.CheckInt(1), L.CheckInt(2))))
	return 1
}

func (e *Engine) population(L *lua.LState) int {
	L.Push(lua.LNumber(e.session.World().Population()))
	return 1
}

func (e *Engine) generation(L *lua.LState) int {
	L.Push(lua.LNumber(e.session.Generation()))
	return 1
}

func (e *Engine) width(L *lua.LState) int {
	L.Push(lua.LNumber(e.session.World().Width()))
	return 1
}

func (e *Engine) height(L *lua.LState) int {
	L.Push(lua.LNumber(e.session.World().Height()))
	return 1
}

func (e *Engine) render(L *lua.LState) int {
	L.Push(lua.LString(e.session.World().String()))
	return 1
}

func (e *Engine) tickMillis(L *lua.LState) int {
	L.Push(lua.LNumber(float64(e.session.World().LastAdvance().Microseconds()) / 1000))
	return 1
}

func (e *Engine) logMessage(L *lua.LState) int {
	e.log.Info(L.CheckString(1), zap.Int("generation", e.session.Generation()))
	return 0
}
