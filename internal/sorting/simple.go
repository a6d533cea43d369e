package sorting

import "context"

func Selection(ctx context.Context, a []int, v Visualizer) error {
	n := len(a)
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			if a[j] < a[minIdx] {
				minIdx = j
			}
			if err := v.Step(ctx, i, minIdx); err != nil {
				return err
			}
		}
		a[i], a[minIdx] = a[minIdx], a[i]
		if err := v.Step(ctx, i, minIdx); err != nil {
			return err
		}
	}
	return nil
}

func Insertion(ctx context.Context, a []int, v Visualizer) error {
	for i := 1; i < len(a); i++ {
		key := a[i]
		j := i - 1
		for j >= 0 && a[j] > key {
			a[j+1] = a[j]
			j--
			if err := v.Step(ctx, i, j+1); err != nil {
				return err
			}
		}
		a[j+1] = key
	}
	return nil
}

// Bubble makes every pass even when the slice is already sorted.
func Bubble(ctx context.Context, a []int, v Visualizer) error {
	n := len(a)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-1-i; j++ {
			if a[j] > a[j+1] {
				a[j], a[j+1] = a[j+1], a[j]
				if err := v.Step(ctx, j, j+1); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
