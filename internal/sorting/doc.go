// Package sorting provides the six step-instrumented sorting algorithms.
//
// Each algorithm sorts an int slice in place and reports every visualizable
// unit of progress to a [Visualizer]. The visualizer decides what a step
// costs (render, pause, throttle); the algorithms only decide where steps
// happen:
//
//   - [Selection]: each inner comparison and each placement swap
//   - [Insertion]: each shift to the right of a larger element
//   - [Bubble]: each swap
//   - [Merge]: each element placed into the merge buffer, and each copy-back
//   - [Quick]: each two-pointer swap of the counting partition
//   - [Heap]: each root extraction swap and each sift-down swap
//
// A non-nil error from Visualizer.Step aborts the algorithm and is returned
// unchanged. Algorithms are textbook versions; Quick always pivots on the
// leftmost element and degrades to O(n^2) on sorted input.
package sorting
