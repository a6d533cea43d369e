package sorting

import "context"

func Heap(ctx context.Context, a []int, v Visualizer) error {
	n := len(a)
	for i := n/2 - 1; i >= 0; i-- {
		if err := siftDown(ctx, a, n, i, v); err != nil {
			return err
		}
	}
	for i := n - 1; i >= 0; i-- {
		a[0], a[i] = a[i], a[0]
		if err := v.Step(ctx, 0, i); err != nil {
			return err
		}
		if err := siftDown(ctx, a, i, 0, v); err != nil {
			return err
		}
	}
	return nil
}

// siftDown restores the max-heap property of a[:n] below index i.
func siftDown(ctx context.Context, a []int, n, i int, v Visualizer) error {
	largest := i
	left, right := 2*i+1, 2*i+2
	if left < n && a[left] > a[largest] {
		largest = left
	}
	if right < n && a[right] > a[largest] {
		largest = right
	}
	if largest == i {
		return nil
	}
	a[i], a[largest] = a[largest], a[i]
	if err := v.Step(ctx, i, largest); err != nil {
		return err
	}
	return siftDown(ctx, a, n, largest, v)
}
