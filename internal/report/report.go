package report

import (
	"context"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sortsim/internal/array"
	"github.com/san-kum/sortsim/internal/gate"
	"github.com/san-kum/sortsim/internal/logger"
	"github.com/san-kum/sortsim/internal/playback"
	"github.com/san-kum/sortsim/internal/sorting"
)

// Row is the outcome of one algorithm on the shared seed.
type Row struct {
	Algorithm string
	Title     string
	Steps     int
	Elapsed   time.Duration
	Sorted    bool
}

// Bench runs every registered algorithm on the same seed through a player
// whose gate uses the given speed and unit. A zero unit measures the raw
// algorithms.
func Bench(ctx context.Context, st *array.State, reg *sorting.Registry, speed int, unit time.Duration, log *logger.Logger) ([]Row, error) {
	p := playback.New(st, gate.New(speed, unit), reg, log)
	defer p.Stop()

	want := st.Seed()
	slices.Sort(want)

	rows := make([]Row, 0, len(reg.List()))
	for _, alg := range reg.List() {
		res, err := p.Run(ctx, alg.Name)
		if err != nil {
			return rows, fmt.Errorf("%s: %w", alg.Name, err)
		}
		rows = append(rows, Row{
			Algorithm: alg.Name,
			Title:     alg.Title,
			Steps:     res.Steps,
			Elapsed:   res.Elapsed,
			Sorted:    slices.Equal(res.Values, want),
		})
	}
	return rows, nil
}

func WriteTable(w io.Writer, rows []Row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tSTEPS\tTIME\tSORTED")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%v\t%v\n", r.Title, r.Steps, r.Elapsed.Round(time.Microsecond), r.Sorted)
	}
	return tw.Flush()
}

// StepsChart plots the step count of each row in table order.
func StepsChart(rows []Row, width, height int) string {
	if len(rows) == 0 {
		return ""
	}
	data := make([]float64, len(rows))
	for i, r := range rows {
		data[i] = float64(r.Steps)
	}
	caption := "steps:"
	for i, r := range rows {
		caption += fmt.Sprintf(" %d=%s", i, r.Algorithm)
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// ArrayChart plots values by index.
func ArrayChart(values []int, caption string, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	data := make([]float64, len(values))
	for i, v := range values {
		data[i] = float64(v)
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
