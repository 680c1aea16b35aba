// Package combin provides integer ranges, factorials and the counting
// functions built on them.
//
// Results are float64 so that large counts degrade to +Inf instead of
// wrapping around: 170! is the largest finite factorial.
package combin

import (
	"fmt"

	"github.com/arloliu/chainstat/errs"
	"github.com/arloliu/chainstat/seq"
)

// List returns the integers lower..upper inclusive as a new sequence. The
// sequence is empty when lower > upper.
func List(lower, upper int) *seq.Numbers {
	if lower > upper {
		return seq.Of()
	}

	values := make([]float64, 0, upper-lower+1)
	for i := lower; i <= upper; i++ {
		values = append(values, float64(i))
	}

	return seq.NewNumbers(values)
}

// Factorial returns n!, computed as an iterative product. Factorial(0) is 1.
func Factorial(n int) (float64, error) {
	if n < 0 {
		return 0, fmt.Errorf("factorial(%d): %w", n, errs.ErrNegativeArgument)
	}

	return fallingProduct(n, n), nil
}

// Permutation returns the number of ordered selections of r items from n,
// n! / (n-r)!.
func Permutation(n, r int) (float64, error) {
	if err := validateChoose("permutation", n, r); err != nil {
		return 0, err
	}

	return fallingProduct(n, r), nil
}

// Combination returns the number of unordered selections of r items from n,
// n! / (r! * (n-r)!).
func Combination(n, r int) (float64, error) {
	if err := validateChoose("combination", n, r); err != nil {
		return 0, err
	}

	// C(n, r) == C(n, n-r); the shorter product loses less precision.
	if r > n-r {
		r = n - r
	}

	c := 1.0
	for i := 1; i <= r; i++ {
		c = c * float64(n-r+i) / float64(i)
	}

	return c, nil
}

// fallingProduct returns n * (n-1) * ... * (n-k+1).
func fallingProduct(n, k int) float64 {
	p := 1.0
	for i := n; i > n-k; i-- {
		p *= float64(i)
	}

	return p
}

func validateChoose(op string, n, r int) error {
	if n < 0 || r < 0 {
		return fmt.Errorf("%s(%d, %d): %w", op, n, r, errs.ErrNegativeArgument)
	}
	if r > n {
		return fmt.Errorf("%s(%d, %d): r exceeds n: %w", op, n, r, errs.ErrInvalidInput)
	}

	return nil
}
