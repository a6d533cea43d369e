package sorting

import (
	"context"
	"errors"
)

// ErrUnknownAlgorithm is returned when a name does not resolve in a Registry.
var ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

// Visualizer receives every step. i and j are the indices the algorithm is
// looking at, or -1 when there is nothing to highlight.
type Visualizer interface {
	Step(ctx context.Context, i, j int) error
}

// VisualizerFunc adapts a function to Visualizer.
type VisualizerFunc func(ctx context.Context, i, j int) error

func (f VisualizerFunc) Step(ctx context.Context, i, j int) error { return f(ctx, i, j) }

// Nop counts nothing and never blocks.
var Nop Visualizer = VisualizerFunc(func(ctx context.Context, i, j int) error { return ctx.Err() })

type Func func(ctx context.Context, a []int, v Visualizer) error

type Algorithm struct {
	Name  string
	Title string
	Sort  Func
}

// Counter forwards steps and counts them.
type Counter struct {
	Next  Visualizer
	Steps int
}

func (c *Counter) Step(ctx context.Context, i, j int) error {
	c.Steps++
	if c.Next == nil {
		return ctx.Err()
	}
	return c.Next.Step(ctx, i, j)
}
