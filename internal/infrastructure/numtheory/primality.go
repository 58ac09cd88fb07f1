package numtheory

import (
	"context"
	"math"
	"math/big"
)

// DefaultWitness is the single Fermat base used by IsProbablePrime.
const DefaultWitness = 3

// divisorPollInterval is how many trial divisors are tried between context checks.
const divisorPollInterval = 4096

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Predicate decides primality of a candidate. A non-nil error means the test was
// abandoned, typically because ctx is done.
type Predicate func(ctx context.Context, n *big.Int) (bool, error)

// IsPrime is the exact test. Even numbers other than 2 are composite; odd numbers
// are trial divided by every odd integer up to floor(sqrt(n))+1. It is correct for
// all inputs but runs in O(sqrt(n)).
func IsPrime(n *big.Int) bool {
	ok, _ := IsPrimeContext(context.Background(), n)
	return ok
}

// IsPrimeContext is IsPrime that gives up with ctx.Err() once ctx is done.
func IsPrimeContext(ctx context.Context, n *big.Int) (bool, error) {
	if n.Cmp(two) < 0 {
		return false, nil
	}
	if n.Cmp(two) == 0 {
		return true, nil
	}
	if n.Bit(0) == 0 {
		return false, nil
	}
	if n.IsUint64() {
		return isPrimeUint64(ctx, n.Uint64())
	}

	h := new(big.Int).Sqrt(n)
	h.Add(h, one)
	rem := new(big.Int)
	tried := 0
	for i := big.NewInt(3); i.Cmp(h) <= 0; i.Add(i, two) {
		if tried++; tried%divisorPollInterval == 0 {
			if err := ctx.Err(); err != nil {
				return false, err
			}
		}
		if rem.Mod(n, i).Sign() == 0 {
			return false, nil
		}
	}
	return true, nil
}

func isPrimeUint64(ctx context.Context, n uint64) (bool, error) {
	h := isqrt(n) + 1
	tried := 0
	for i := uint64(3); i <= h; i += 2 {
		if tried++; tried%divisorPollInterval == 0 {
			if err := ctx.Err(); err != nil {
				return false, err
			}
		}
		if n%i == 0 {
			return false, nil
		}
	}
	return true, nil
}

func isqrt(n uint64) uint64 {
	r := uint64(math.Sqrt(float64(n)))
	if r > math.MaxUint32 {
		r = math.MaxUint32
	}
	for r*r > n {
		r--
	}
	for r < math.MaxUint32 && (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// FermatTest is the fast probabilistic predicate: n passes when w^(n-1) ≡ 1 (mod n)
// for every witness w not divisible by n. Fermat pseudoprimes to all witnesses and
// Carmichael numbers are accepted; this is a known false positive, not a bug.
type FermatTest struct {
	Witnesses []*big.Int
}

// NewFermatTest builds a test over the given witnesses, defaulting to DefaultWitness.
func NewFermatTest(witnesses ...int64) *FermatTest {
	if len(witnesses) == 0 {
		witnesses = []int64{DefaultWitness}
	}
	ws := make([]*big.Int, len(witnesses))
	for i, w := range witnesses {
		ws[i] = big.NewInt(w)
	}
	return &FermatTest{Witnesses: ws}
}

// IsProbablePrime reports whether n passes every witness.
func (f *FermatTest) IsProbablePrime(n *big.Int) bool {
	if n.Cmp(two) < 0 {
		return false
	}

	nMinusOne := new(big.Int).Sub(n, one)
	rem := new(big.Int)
	for _, w := range f.Witnesses {
		if rem.Mod(w, n).Sign() == 0 {
			continue
		}
		r, err := ModPow(w, nMinusOne, n)
		if err != nil || r.Cmp(one) != 0 {
			return false
		}
	}
	return true
}

// Test adapts IsProbablePrime to Predicate. A single test is a handful of
// modular exponentiations, so ctx is only checked up front.
func (f *FermatTest) Test(ctx context.Context, n *big.Int) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return f.IsProbablePrime(n), nil
}

var defaultFermatTest = NewFermatTest()

// IsProbablePrime runs the single-witness Fermat test with base 3.
func IsProbablePrime(n *big.Int) bool {
	return defaultFermatTest.IsProbablePrime(n)
}
