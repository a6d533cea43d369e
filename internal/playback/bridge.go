package playback

import (
	"sync"
	"time"
)

// Snapshot is one published frame. Values is owned by the caller.
type Snapshot struct {
	Values    []int
	Complete  bool
	Highlight [2]int
	Algorithm string
	Session   string
	Steps     int
	Version   uint64
}

// Bridge publishes frames from the sorting goroutine to readers.
type Bridge struct {
	mu      sync.RWMutex
	snap    Snapshot
	start   time.Time
	elapsed time.Duration
	running bool
	now     func() time.Time
}

func NewBridge() *Bridge {
	return &Bridge{
		snap: Snapshot{Highlight: [2]int{-1, -1}},
		now:  time.Now,
	}
}

// Snapshot returns a copy of the latest frame.
func (b *Bridge) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	s := b.snap
	s.Values = append([]int(nil), b.snap.Values...)
	return s
}

// Elapsed keeps counting while a run is in flight and freezes once it ends.
func (b *Bridge) Elapsed() time.Duration {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.running {
		return b.now().Sub(b.start)
	}
	return b.elapsed
}

func (b *Bridge) ElapsedSeconds() float64 {
	return b.Elapsed().Seconds()
}

func (b *Bridge) Running() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.running
}

// show replaces the frame without starting the timer.
func (b *Bridge) show(values []int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.running = false
	b.elapsed = 0
	b.snap = Snapshot{
		Values:    append(b.snap.Values[:0], values...),
		Highlight: [2]int{-1, -1},
		Version:   b.snap.Version + 1,
	}
}

func (b *Bridge) begin(session, algorithm string, values []int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.start = b.now()
	b.elapsed = 0
	b.running = true
	b.snap = Snapshot{
		Values:    append(b.snap.Values[:0], values...),
		Highlight: [2]int{-1, -1},
		Algorithm: algorithm,
		Session:   session,
		Version:   b.snap.Version + 1,
	}
}

func (b *Bridge) publish(values []int, i, j, steps int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.snap.Values = append(b.snap.Values[:0], values...)
	b.snap.Highlight = [2]int{i, j}
	b.snap.Steps = steps
	b.snap.Version++
}

func (b *Bridge) finish(values []int, steps int) time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.elapsed = b.now().Sub(b.start)
	b.running = false
	b.snap.Values = append(b.snap.Values[:0], values...)
	b.snap.Highlight = [2]int{-1, -1}
	b.snap.Complete = true
	b.snap.Steps = steps
	b.snap.Version++
	return b.elapsed
}

// abort stops the timer of a cancelled run without marking it complete.
func (b *Bridge) abort() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.running {
		b.elapsed = b.now().Sub(b.start)
		b.running = false
	}
}
