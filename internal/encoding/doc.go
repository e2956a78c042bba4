// Package encoding implements the Manchester II (BiPhase-L) line code
// following the G. E. Thomas convention.
//
// Every input character maps to exactly one two-half-slot [Symbol]:
//
//	'0' -> Rising  "01"  low to high
//	'1' -> Falling "10"  high to low
//	' ' -> Idle    "00"  no voltage, used as the violation bit between frames
//
// Any other character rejects the whole input with an [InvalidInputError].
package encoding
