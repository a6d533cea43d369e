package sorting

import "context"

func Merge(ctx context.Context, a []int, v Visualizer) error {
	if len(a) == 0 {
		return nil
	}
	buf := make([]int, len(a))
	return mergeSort(ctx, a, buf, 0, len(a)-1, v)
}

func mergeSort(ctx context.Context, a, buf []int, si, ei int, v Visualizer) error {
	if si >= ei {
		return nil
	}
	mid := (si + ei) / 2
	if err := mergeSort(ctx, a, buf, si, mid, v); err != nil {
		return err
	}
	if err := mergeSort(ctx, a, buf, mid+1, ei, v); err != nil {
		return err
	}
	return merge(ctx, a, buf, si, mid, ei, v)
}

// merge combines a[si:mid+1] and a[mid+1:ei+1] through buf, then copies the
// result back. The slice itself only changes at the copy-back.
func merge(ctx context.Context, a, buf []int, si, mid, ei int, v Visualizer) error {
	out := buf[:ei-si+1]
	i, j, k := si, mid+1, 0

	for i <= mid && j <= ei {
		if a[i] <= a[j] {
			out[k] = a[i]
			i++
		} else {
			out[k] = a[j]
			j++
		}
		k++
		if err := v.Step(ctx, i, j); err != nil {
			return err
		}
	}

	for i <= mid {
		out[k] = a[i]
		i++
		k++
		if err := v.Step(ctx, i, -1); err != nil {
			return err
		}
	}

	for j <= ei {
		out[k] = a[j]
		j++
		k++
		if err := v.Step(ctx, j, -1); err != nil {
			return err
		}
	}

	copy(a[si:ei+1], out)
	return v.Step(ctx, -1, -1)
}
