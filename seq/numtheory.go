package seq

import (
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/chainstat/errs"
)

// maxExactInt is the largest magnitude a float64 holds without gaps.
const maxExactInt = 1 << 53

// GCD returns the greatest common divisor of all elements, reduced left to
// right with Euclid's algorithm. Signs are ignored. Every element must be a
// whole number.
func (s *Numbers) GCD() (int64, error) {
	ints, err := s.integers("gcd")
	if err != nil {
		return 0, err
	}

	acc := ints[0]
	for _, v := range ints[1:] {
		acc = gcd(acc, v)
	}

	return acc, nil
}

// LCM returns the least common multiple of all elements, reduced left to
// right as a·b / gcd(a, b). Signs are ignored; any zero element makes the
// result zero. A multiple that does not fit in an int64 is ErrOverflow.
func (s *Numbers) LCM() (int64, error) {
	ints, err := s.integers("lcm")
	if err != nil {
		return 0, err
	}
	if slices.Contains(ints, 0) {
		return 0, nil
	}

	acc := ints[0]
	for i, v := range ints[1:] {
		next, ok := lcm(acc, v)
		if !ok {
			return 0, fmt.Errorf("lcm: element %d (%d): %w", i+1, v, errs.ErrOverflow)
		}
		acc = next
	}

	return acc, nil
}

func (s *Numbers) integers(op string) ([]int64, error) {
	if len(s.values) == 0 {
		return nil, fmt.Errorf("%s: %w", op, errs.ErrEmptySequence)
	}

	out := make([]int64, len(s.values))
	for i, v := range s.values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) || math.Abs(v) > maxExactInt {
			return nil, fmt.Errorf("%s: element %d (%v): %w", op, i, v, errs.ErrNotInteger)
		}
		out[i] = abs(int64(v))
	}

	return out, nil
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// lcm reports false when the result overflows. a and b are non-negative.
func lcm(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}

	q := a / gcd(a, b)
	if q > math.MaxInt64/b {
		return 0, false
	}

	return q * b, true
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
