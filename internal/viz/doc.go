// Package viz draws the orbiting bodies in the terminal.
//
// The live view is a Bubble Tea program rendering onto a braille [Canvas]:
// each character cell holds 2x4 dots, so a 80x24 terminal gives a 160x96 dot
// surface. Bodies are outlined, the token holder is filled, spokes run from
// the centre and optional trail dots show where each body was.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	N     - Single step while paused
//	R     - Reset to frame 0
//	T     - Toggle trails
//	C     - Cycle color themes
//	?     - Show help overlay
//	Q     - Quit
package viz
