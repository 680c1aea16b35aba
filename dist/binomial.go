package dist

import (
	"fmt"
	"math"

	"github.com/arloliu/chainstat/seq"
)

// Binompdf returns the probability of exactly x successes in trials
// independent trials with success probability p:
// C(trials, x) * p^x * (1-p)^(trials-x). It returns 0 for x outside
// [0, trials].
func Binompdf(trials int, p float64, x int) (float64, error) {
	if err := checkBinomial(trials, p); err != nil {
		return 0, fmt.Errorf("binompdf: %w", err)
	}

	return binompdf(trials, p, x), nil
}

// BinompdfAll returns the whole mass function as a sequence indexed by the
// number of successes, 0..trials.
func BinompdfAll(trials int, p float64) (*seq.Numbers, error) {
	if err := checkBinomial(trials, p); err != nil {
		return nil, fmt.Errorf("binompdf: %w", err)
	}

	pmf := make([]float64, trials+1)
	for x := range pmf {
		pmf[x] = binompdf(trials, p, x)
	}

	return seq.NewNumbers(pmf), nil
}

// Binomcdf returns the probability of at most x successes, summing Binompdf
// for k = 0..x. It is 0 for x < 0 and the full mass (1 up to rounding) for
// x >= trials.
func Binomcdf(trials int, p float64, x int) (float64, error) {
	if err := checkBinomial(trials, p); err != nil {
		return 0, fmt.Errorf("binomcdf: %w", err)
	}

	var sum float64
	for k := 0; k <= min(x, trials); k++ {
		sum += binompdf(trials, p, k)
	}

	return sum, nil
}

// binompdf works in log space so C(trials, x) cannot overflow for large
// trial counts while p^x underflows.
func binompdf(trials int, p float64, x int) float64 {
	if x < 0 || x > trials {
		return 0
	}

	switch p {
	case 0:
		return boolProb(x == 0)
	case 1:
		return boolProb(x == trials)
	}

	n, k := float64(trials), float64(x)

	return math.Exp(lnChoose(n, k) + k*math.Log(p) + (n-k)*math.Log1p(-p))
}

func lnChoose(n, k float64) float64 {
	a, _ := math.Lgamma(n + 1)
	b, _ := math.Lgamma(k + 1)
	c, _ := math.Lgamma(n - k + 1)

	return a - b - c
}

func boolProb(b bool) float64 {
	if b {
		return 1
	}

	return 0
}

func checkBinomial(trials int, p float64) error {
	if err := checkTrials(trials); err != nil {
		return err
	}

	return checkProbability(p)
}
