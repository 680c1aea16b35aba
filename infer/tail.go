package infer

import (
	"fmt"
	"strings"

	"github.com/arloliu/chainstat/errs"
)

// Tail selects the alternative hypothesis of a z test.
type Tail int

const (
	// LessThan tests mean < hypothesized mean.
	LessThan Tail = iota
	// GreaterThan tests mean > hypothesized mean.
	GreaterThan
	// NotEqual tests mean != hypothesized mean (two-sided).
	NotEqual
)

var tailNames = [...]string{
	LessThan:    "lessthan",
	GreaterThan: "greaterthan",
	NotEqual:    "notequal",
}

func (t Tail) String() string {
	if t < 0 || int(t) >= len(tailNames) {
		return "unknown"
	}

	return tailNames[t]
}

// ParseTail accepts "lessthan", "greaterthan" or "notequal", ignoring case
// and surrounding space.
func ParseTail(s string) (Tail, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range tailNames {
		if n == name {
			return Tail(i), nil
		}
	}

	return 0, fmt.Errorf("tail %q: %w", s, errs.ErrUnknownTail)
}

// MarshalText implements encoding.TextMarshaler.
func (t Tail) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(tailNames) {
		return nil, fmt.Errorf("tail %d: %w", int(t), errs.ErrUnknownTail)
	}

	return []byte(tailNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tail) UnmarshalText(text []byte) error {
	parsed, err := ParseTail(string(text))
	if err != nil {
		return err
	}
	*t = parsed

	return nil
}
