// Package viz provides the terminal calculator for molcalc.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: input fields, live mass breakdown and a mass-vs-volume curve
//   - [Canvas]: Braille-based pixel canvas the beaker is drawn on
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	j/k   - Select field
//	h/l   - Adjust value or cycle unit (H/L for ×10 steps)
//	Enter - Type a value
//	p     - Cycle solute presets
//	t     - Cycle color themes
//	w     - Write the current scene as SVG
//	q     - Quit
package viz
