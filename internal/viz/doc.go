// Package viz provides the terminal backends for the waveform animation.
//
//   - [Model]: interactive Bubble Tea program drawing the step waveform on a
//     Braille [Canvas], with per-slot annotations and themed titles
//   - [Stream]: non-interactive renderer that redraws an asciigraph plot
//     after every segment, suitable for pipes and recordings
//
// # Key Bindings
//
//	Space - Pause/Resume the reveal
//	R     - Replay from the first slot
//	T     - Cycle color themes
//	Q     - Quit (also Esc, Ctrl+C)
package viz
