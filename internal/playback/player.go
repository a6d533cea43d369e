package playback

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/san-kum/sortsim/internal/array"
	"github.com/san-kum/sortsim/internal/gate"
	"github.com/san-kum/sortsim/internal/logger"
	"github.com/san-kum/sortsim/internal/sorting"
)

// ErrSuperseded is returned by Run when another Start or Stop ends the run.
var ErrSuperseded = errors.New("playback: run superseded before completion")

// Result describes a run that reached completion.
type Result struct {
	Session   string
	Algorithm string
	Steps     int
	Elapsed   time.Duration
	Values    []int
}

type Player struct {
	mu       sync.Mutex
	state    *array.State
	gate     *gate.Gate
	bridge   *Bridge
	registry *sorting.Registry
	log      *logger.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// New wires a player. A nil registry uses sorting.NewRegistry and a nil
// logger discards output. The bridge starts out showing the seed.
func New(state *array.State, g *gate.Gate, registry *sorting.Registry, log *logger.Logger) *Player {
	if registry == nil {
		registry = sorting.NewRegistry()
	}
	if log == nil {
		log = logger.Discard()
	}
	p := &Player{
		state:    state,
		gate:     g,
		bridge:   NewBridge(),
		registry: registry,
		log:      log.WithComponent("playback"),
	}
	p.bridge.show(state.Seed())
	return p
}

func (p *Player) Gate() *gate.Gate                { return p.gate }
func (p *Player) Bridge() *Bridge                 { return p.bridge }
func (p *Player) Registry() *sorting.Registry     { return p.registry }
func (p *Player) Algorithms() []sorting.Algorithm { return p.registry.List() }

// Start supersedes any in-flight run and launches name on a new goroutine.
// An unknown name is a configuration error and leaves everything untouched.
func (p *Player) Start(name string) error {
	alg, err := p.registry.Get(name)
	if err != nil {
		p.log.Warn("start rejected", logger.F("algorithm", name), logger.Error(err))
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()

	id := uuid.NewString()
	work := p.state.Reset()
	p.bridge.begin(id, alg.Title, work)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	p.cancel, p.done = cancel, done

	p.log.Info("run started", logger.F("session", id), logger.F("algorithm", alg.Name), logger.F("size", len(work)))

	go p.run(ctx, id, alg, work, done)
	return nil
}

func (p *Player) run(ctx context.Context, id string, alg sorting.Algorithm, work []int, done chan struct{}) {
	defer close(done)

	v := &frameStepper{gate: p.gate, bridge: p.bridge, values: work}
	if err := alg.Sort(ctx, work, v); err != nil {
		p.bridge.abort()
		p.log.Debug("run cancelled", logger.F("session", id), logger.F("steps", v.steps), logger.Error(err))
		return
	}

	elapsed := p.bridge.finish(work, v.steps)
	p.log.Info("run complete", logger.F("session", id), logger.F("algorithm", alg.Name),
		logger.F("steps", v.steps), logger.Duration(elapsed))
}

// Stop cancels the current run, if any, and waits for it to exit.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *Player) stopLocked() {
	if p.cancel == nil {
		return
	}
	p.cancel()
	<-p.done
	p.cancel = nil
}

// Wait blocks until the current run ends or ctx is done.
func (p *Player) Wait(ctx context.Context) error {
	p.mu.Lock()
	done := p.done
	p.mu.Unlock()

	if done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run starts name and blocks until it completes. Cancelling ctx stops the run.
func (p *Player) Run(ctx context.Context, name string) (Result, error) {
	if err := p.Start(name); err != nil {
		return Result{}, err
	}
	if err := p.Wait(ctx); err != nil {
		p.Stop()
		return Result{}, err
	}

	snap := p.bridge.Snapshot()
	if !snap.Complete {
		return Result{}, fmt.Errorf("%w: %s", ErrSuperseded, name)
	}
	return Result{
		Session:   snap.Session,
		Algorithm: snap.Algorithm,
		Steps:     snap.Steps,
		Elapsed:   p.bridge.Elapsed(),
		Values:    snap.Values,
	}, nil
}

// Randomize stops the current run, draws a new seed and shows it.
func (p *Player) Randomize() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()
	p.state.Randomize()
	p.bridge.show(p.state.Seed())
	p.log.Info("seed regenerated", logger.F("size", p.state.Len()), logger.F("shape", p.state.Shape()))
}

// frameStepper publishes a frame at every step, then lets the gate pause or
// throttle the run.
type frameStepper struct {
	gate   *gate.Gate
	bridge *Bridge
	values []int
	steps  int
}

func (s *frameStepper) Step(ctx context.Context, i, j int) error {
	s.steps++
	return s.gate.Step(ctx, func() {
		s.bridge.publish(s.values, i, j, s.steps)
	})
}
