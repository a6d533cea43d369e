// Package viz is the terminal view of a sorting run, built on Bubble Tea.
//
// The view never touches the working array. On every tick it copies the
// latest frame from a [playback.Bridge] and draws one bar per element on a
// braille [Canvas], two bars per terminal cell.
//
// # Key Bindings
//
//	1-6   - Start Selection, Insertion, Bubble, Merge, Quick or Heap sort
//	Space - Pause/Resume the running sort
//	+/-   - Speed up/down by 5
//	]/[   - Speed up/down by 1
//	N     - Draw a new seed array
//	T     - Cycle color themes
//	?     - Toggle full help
//	Q     - Quit
package viz
