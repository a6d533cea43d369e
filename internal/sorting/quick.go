package sorting

import "context"

func Quick(ctx context.Context, a []int, v Visualizer) error {
	return quickSort(ctx, a, 0, len(a)-1, v)
}

func quickSort(ctx context.Context, a []int, si, ei int, v Visualizer) error {
	if si >= ei {
		return nil
	}
	c, err := partition(ctx, a, si, ei, v)
	if err != nil {
		return err
	}
	if err := quickSort(ctx, a, si, c-1, v); err != nil {
		return err
	}
	return quickSort(ctx, a, c+1, ei, v)
}

// partition places a[si] at its final index, found by counting the elements
// not greater than it, then swaps misplaced elements inward from both ends.
func partition(ctx context.Context, a []int, si, ei int, v Visualizer) (int, error) {
	pivot := a[si]
	count := 0
	for i := si + 1; i <= ei; i++ {
		if a[i] <= pivot {
			count++
		}
	}
	p := si + count
	a[p], a[si] = a[si], a[p]

	i, j := si, ei
	for i < p && j > p {
		for i < p && a[i] <= pivot {
			i++
		}
		for j > p && a[j] > pivot {
			j--
		}
		if i < p && j > p {
			a[i], a[j] = a[j], a[i]
			if err := v.Step(ctx, i, j); err != nil {
				return p, err
			}
			i++
			j--
		}
	}
	return p, nil
}
