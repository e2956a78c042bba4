package encoding

import "fmt"

// Symbol is one encoded time slot.
type Symbol uint8

const (
	// Rising encodes bit 0: low half-slot then high half-slot.
	Rising Symbol = iota
	// Falling encodes bit 1: high half-slot then low half-slot.
	Falling
	// Idle encodes a frame separator with no voltage on the line.
	Idle
)

var codes = [...]string{
	Rising:  "01",
	Falling: "10",
	Idle:    "00",
}

func (s Symbol) String() string {
	if int(s) < len(codes) {
		return codes[s]
	}
	return fmt.Sprintf("Symbol(%d)", uint8(s))
}

// Name returns a human readable label for the transition.
func (s Symbol) Name() string {
	switch s {
	case Rising:
		return "rising"
	case Falling:
		return "falling"
	case Idle:
		return "idle"
	}
	return "unknown"
}

// ParseSymbol reads a two-character code back into a Symbol.
func ParseSymbol(code string) (Symbol, error) {
	for s, c := range codes {
		if c == code {
			return Symbol(s), nil
		}
	}
	return 0, fmt.Errorf("encoding: unknown code %q", code)
}

func (s Symbol) MarshalText() ([]byte, error) {
	if int(s) >= len(codes) {
		return nil, fmt.Errorf("encoding: invalid symbol %d", uint8(s))
	}
	return []byte(codes[s]), nil
}

func (s *Symbol) UnmarshalText(text []byte) error {
	v, err := ParseSymbol(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
