// Package gate implements the step controller shared by the sort engine and
// the view.
//
// Every visualizable step of a running sort goes through [Gate.Step], which
//
//   - calls the render hook synchronously, so the published frame always
//     matches the array at that exact point of the algorithm;
//   - parks the sorting goroutine while the gate is paused;
//   - otherwise sleeps (101 - speed) units to throttle the animation.
//
// # Thread Safety
//
// A Gate is safe for one controlling goroutine (Pause, Resume, SetSpeed) and
// one stepping goroutine at a time. Parking never busy-waits: a paused step
// blocks on a channel that Resume closes, and re-checks the paused flag after
// every wake-up so a resume issued before the wait begins is never lost.
package gate
