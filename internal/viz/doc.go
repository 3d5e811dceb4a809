// Package viz draws a running gravity simulation in the terminal.
//
// The package implements a TUI using the Bubble Tea framework:
//
//   - [Model]: live view of one scene with an energy trace
//   - [Picker]: scene menu that launches a [Model]
//   - [Canvas]: Braille-based pixel canvas
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	R     - Reset to initial bodies
//	+/-   - Double or halve ticks per frame
//	C     - Clear trails
//	T     - Cycle color themes
//	?     - Show help overlay
package viz
