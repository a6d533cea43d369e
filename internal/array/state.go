package array

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"time"
)

const (
	DefaultSize = 130
	DefaultMax  = 750
)

// Shape selects how a seed array is generated.
type Shape string

const (
	ShapeRandom    Shape = "random"
	ShapeSorted    Shape = "sorted"
	ShapeReversed  Shape = "reversed"
	ShapeFewUnique Shape = "few-unique"
)

const fewUniqueLevels = 8

func Shapes() []Shape {
	return []Shape{ShapeRandom, ShapeSorted, ShapeReversed, ShapeFewUnique}
}

func ParseShape(s string) (Shape, error) {
	for _, sh := range Shapes() {
		if string(sh) == s {
			return sh, nil
		}
	}
	return "", fmt.Errorf("unknown seed shape: %s", s)
}

// State owns the seed array and the working buffer sorted by a run.
// The working buffer is handed to exactly one writer at a time.
type State struct {
	size    int
	limit   int
	shape   Shape
	rng     *rand.Rand
	seed    []int
	working []int
}

// New builds a State and generates its first seed. A seed of 0 uses the clock.
func New(size, limit int, shape Shape, seed int64) (*State, error) {
	if size <= 0 {
		return nil, fmt.Errorf("array size must be positive, got %d", size)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("max value must be positive, got %d", limit)
	}
	if shape == "" {
		shape = ShapeRandom
	}
	if _, err := ParseShape(string(shape)); err != nil {
		return nil, err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &State{
		size:    size,
		limit:   limit,
		shape:   shape,
		rng:     rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1)),
		seed:    make([]int, size),
		working: make([]int, size),
	}
	s.Randomize()
	return s, nil
}

// FromValues builds a State whose seed is exactly values.
func FromValues(values []int) (*State, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("array size must be positive, got 0")
	}
	limit := 1
	for _, v := range values {
		if v < 0 {
			return nil, fmt.Errorf("negative value %d in seed", v)
		}
		if v+1 > limit {
			limit = v + 1
		}
	}
	s := &State{
		size:    len(values),
		limit:   limit,
		shape:   ShapeRandom,
		rng:     rand.New(rand.NewPCG(1, 2)),
		seed:    append([]int(nil), values...),
		working: make([]int, len(values)),
	}
	return s, nil
}

func (s *State) Len() int     { return s.size }
func (s *State) Max() int     { return s.limit }
func (s *State) Shape() Shape { return s.shape }

// Reset copies the seed into the working buffer and returns the buffer.
func (s *State) Reset() []int {
	copy(s.working, s.seed)
	return s.working
}

// Randomize regenerates the seed with values in [0, max).
func (s *State) Randomize() {
	switch s.shape {
	case ShapeFewUnique:
		step := s.limit / fewUniqueLevels
		if step == 0 {
			step = 1
		}
		for i := range s.seed {
			s.seed[i] = (s.rng.IntN(fewUniqueLevels) * step) % s.limit
		}
	default:
		for i := range s.seed {
			s.seed[i] = s.rng.IntN(s.limit)
		}
	}

	switch s.shape {
	case ShapeSorted:
		sort.Ints(s.seed)
	case ShapeReversed:
		sort.Sort(sort.Reverse(sort.IntSlice(s.seed)))
	}
}

// Seed returns a copy of the seed array.
func (s *State) Seed() []int {
	out := make([]int, len(s.seed))
	copy(out, s.seed)
	return out
}
