// Package playback owns sort runs and the frames they publish.
//
// A [Player] runs at most one algorithm at a time on a background goroutine.
// Starting a new run cancels the previous one and waits for its goroutine to
// exit before the working array is reset, so a superseded run can never write
// into the array of the run that replaced it.
//
// The [Bridge] is the read-only side consumed by a view: it holds a copy of
// the array as of the last step, the completion flag and the run timer.
//
// # Example
//
//	st, _ := array.New(array.DefaultSize, array.DefaultMax, array.ShapeRandom, 0)
//	p := playback.New(st, gate.New(100, gate.DefaultUnit), nil, nil)
//	_ = p.Start("quick")
//	snap := p.Bridge().Snapshot()
package playback
