package sorting

import (
	"fmt"
	"strings"
)

type Registry struct {
	algorithms map[string]Algorithm
	order      []string
}

// NewRegistry returns a registry holding the six algorithms in menu order.
func NewRegistry() *Registry {
	r := &Registry{algorithms: make(map[string]Algorithm)}

	r.Register(Algorithm{Name: "selection", Title: "Selection Sort", Sort: Selection})
	r.Register(Algorithm{Name: "insertion", Title: "Insertion Sort", Sort: Insertion})
	r.Register(Algorithm{Name: "bubble", Title: "Bubble Sort", Sort: Bubble})
	r.Register(Algorithm{Name: "merge", Title: "Merge Sort", Sort: Merge})
	r.Register(Algorithm{Name: "quick", Title: "Quick Sort", Sort: Quick})
	r.Register(Algorithm{Name: "heap", Title: "Heap Sort", Sort: Heap})

	return r
}

// Register adds or replaces an algorithm. Replacing keeps its menu position.
func (r *Registry) Register(a Algorithm) {
	key := normalize(a.Name)
	if _, ok := r.algorithms[key]; !ok {
		r.order = append(r.order, key)
	}
	r.algorithms[key] = a
}

// Get resolves "quick", "Quick", "Quick Sort" and "quick_sort" alike.
func (r *Registry) Get(name string) (Algorithm, error) {
	a, ok := r.algorithms[normalize(name)]
	if !ok {
		return Algorithm{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return a, nil
}

// At returns the algorithm at 0-based menu position i.
func (r *Registry) At(i int) (Algorithm, bool) {
	if i < 0 || i >= len(r.order) {
		return Algorithm{}, false
	}
	return r.algorithms[r.order[i]], true
}

func (r *Registry) List() []Algorithm {
	out := make([]Algorithm, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.algorithms[key])
	}
	return out
}

func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

func normalize(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.NewReplacer("_", " ", "-", " ").Replace(n)
	n = strings.TrimSuffix(n, " sort")
	return strings.TrimSpace(n)
}
