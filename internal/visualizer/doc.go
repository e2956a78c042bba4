// Package visualizer turns a resolved configuration into an animated
// voltage-over-time figure.
//
// A [Visualizer] encodes the configured signal, describes the plot as a
// backend-independent [Figure] and hands it to a [Backend] together with a
// [waveform.Player]. Backends pull one segment per delay, redraw, and keep
// the display open until the user closes it.
package visualizer
