package encoding

import "strings"

// Encode maps every character of input to its Manchester II symbol.
//
// The whole input is checked before failing, so the returned
// *InvalidInputError names every unsupported character. On error the
// returned slice is nil.
func Encode(input string) ([]Symbol, error) {
	out := make([]Symbol, 0, len(input))
	var bad []CharError
	n := 0
	for _, r := range input {
		pos := n
		n++
		s, ok := symbolFor(r)
		if !ok {
			bad = append(bad, CharError{Pos: pos, Char: r})
			continue
		}
		out = append(out, s)
	}

	if len(out) != n || len(bad) > 0 {
		return nil, newInvalidInputError(input, len(out), bad)
	}
	return out, nil
}

func symbolFor(r rune) (Symbol, bool) {
	switch r {
	case '0':
		return Rising, true
	case '1':
		return Falling, true
	case ' ':
		return Idle, true
	}
	return 0, false
}

// Codes renders symbols as their two-character codes.
func Codes(symbols []Symbol) []string {
	out := make([]string, len(symbols))
	for i, s := range symbols {
		out[i] = s.String()
	}
	return out
}

// Frames counts the whitespace-delimited frames in a signal.
func Frames(input string) int {
	return len(strings.Fields(input))
}
