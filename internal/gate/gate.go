package gate

import (
	"context"
	"sync"
	"time"
)

const (
	MinSpeed     = 1
	MaxSpeed     = 100
	DefaultUnit  = time.Millisecond
	DefaultSpeed = MaxSpeed
)

type Gate struct {
	mu     sync.Mutex
	paused bool
	speed  int
	unit   time.Duration
	resume chan struct{}
	parked int
}

// New returns an unpaused gate. A zero unit disables throttling.
func New(speed int, unit time.Duration) *Gate {
	if unit < 0 {
		unit = 0
	}
	return &Gate{
		speed: clamp(speed),
		unit:  unit,
	}
}

func clamp(speed int) int {
	if speed < MinSpeed {
		return MinSpeed
	}
	if speed > MaxSpeed {
		return MaxSpeed
	}
	return speed
}

// Step renders, then blocks while paused, then sleeps according to speed.
// It returns a non-nil error only when ctx is cancelled.
func (g *Gate) Step(ctx context.Context, render func()) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if render != nil {
		render()
	}

	for {
		g.mu.Lock()
		if !g.paused {
			d := g.delayLocked()
			g.mu.Unlock()
			return sleep(ctx, d)
		}
		wake := g.resume
		g.parked++
		g.mu.Unlock()

		select {
		case <-wake:
		case <-ctx.Done():
		}

		g.mu.Lock()
		g.parked--
		g.mu.Unlock()

		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (g *Gate) Pause() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.paused {
		return
	}
	g.paused = true
	g.resume = make(chan struct{})
}

func (g *Gate) Resume() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.paused {
		return
	}
	g.paused = false
	close(g.resume)
	g.resume = nil
}

// Toggle flips the paused state and reports whether the gate is now paused.
func (g *Gate) Toggle() bool {
	g.mu.Lock()
	paused := g.paused
	g.mu.Unlock()

	if paused {
		g.Resume()
		return false
	}
	g.Pause()
	return true
}

func (g *Gate) Paused() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.paused
}

// Parked reports whether a step is currently blocked on the pause.
func (g *Gate) Parked() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.parked > 0
}

// SetSpeed stores level clamped to [MinSpeed, MaxSpeed].
func (g *Gate) SetSpeed(level int) {
	g.mu.Lock()
	g.speed = clamp(level)
	g.mu.Unlock()
}

func (g *Gate) Speed() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.speed
}

// AdjustSpeed adds delta to the current speed and returns the clamped result.
func (g *Gate) AdjustSpeed(delta int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.speed = clamp(g.speed + delta)
	return g.speed
}

// Delay is the pause applied after each unpaused step at the current speed.
func (g *Gate) Delay() time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.delayLocked()
}

func (g *Gate) delayLocked() time.Duration {
	return time.Duration(MaxSpeed+1-g.speed) * g.unit
}
