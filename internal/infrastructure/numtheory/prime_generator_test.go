//go:build unit
// +build unit

package numtheory

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/kylepxiao/RSA-Encryption/internal/domain/rsa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExactGenerator(t *testing.T, source Source) rsa.PrimeGenerator {
	t.Helper()
	generator, err := NewExactPrimeGenerator(source)
	require.NoError(t, err)
	return generator
}

func TestPrimeGenerator_Generate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		draw         int64
		lower, upper int64
		expected     int64
	}{
		{"odd candidate is prime", 3, 10, 20, 13},
		{"even candidate is decremented", 4, 10, 20, 13},
		{"walks down to next prime", 6, 10, 20, 13},
		{"wraps to upper bound", 0, 10, 20, 19},
		{"wraps to odd below even upper bound", 1, 24, 30, 29},
		{"textbook prime 61", 2, 59, 62, 61},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generator := newExactGenerator(t, NewSequenceSource(tt.draw))
			prime, err := generator.Generate(ctx, big.NewInt(tt.lower), big.NewInt(tt.upper))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, prime.Int64())
		})
	}
}

func TestPrimeGenerator_ResultsArePrimeAndBounded(t *testing.T) {
	ctx := context.Background()
	generator := newExactGenerator(t, NewTickSource(2024))
	lower, upper := big.NewInt(1000), big.NewInt(5000)

	for i := 0; i < 100; i++ {
		prime, err := generator.Generate(ctx, lower, upper)
		require.NoError(t, err)
		assert.True(t, IsPrime(prime))
		assert.True(t, prime.Cmp(lower) >= 0 && prime.Cmp(upper) <= 0, "prime %s out of bounds", prime)
	}
}

func TestPrimeGenerator_NoPrimeInRange(t *testing.T) {
	generator := newExactGenerator(t, NewSequenceSource(0, 1, 2, 3))

	_, err := generator.Generate(context.Background(), big.NewInt(24), big.NewInt(28))
	assert.ErrorIs(t, err, rsa.ErrNoPrimeInRange)

	_, err = generator.Generate(context.Background(), big.NewInt(0), big.NewInt(1))
	assert.ErrorIs(t, err, rsa.ErrNoPrimeInRange)
}

func TestPrimeGenerator_InvalidRange(t *testing.T) {
	generator := newExactGenerator(t, NewSequenceSource(1))
	ctx := context.Background()

	_, err := generator.Generate(ctx, big.NewInt(20), big.NewInt(20))
	assert.ErrorIs(t, err, rsa.ErrInvalidRange)

	_, err = generator.Generate(ctx, big.NewInt(30), big.NewInt(20))
	assert.ErrorIs(t, err, rsa.ErrInvalidRange)

	_, err = generator.Generate(ctx, big.NewInt(-5), big.NewInt(20))
	assert.ErrorIs(t, err, rsa.ErrInvalidRange)

	_, err = generator.Generate(ctx, nil, big.NewInt(20))
	assert.ErrorIs(t, err, rsa.ErrInvalidRange)
}

func TestPrimeGenerator_ContextCancelled(t *testing.T) {
	generator := newExactGenerator(t, NewSequenceSource(1))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := generator.Generate(ctx, big.NewInt(10), big.NewInt(1000))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPrimeGenerator_DeadlineInsideTrialDivision(t *testing.T) {
	lower, ok := new(big.Int).SetString("1000000000000000000000000000000", 10)
	require.True(t, ok)
	upper := new(big.Int).Add(lower, big.NewInt(100000))
	generator := newExactGenerator(t, NewSequenceSource(99999))

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		_, err := generator.Generate(ctx, lower, upper)
		done <- err
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	case <-time.After(5 * time.Second):
		t.Fatal("Generate did not return after its deadline")
	}
}

func TestQuickPrimeGenerator_GenerateDefault(t *testing.T) {
	generator, err := NewQuickPrimeGenerator(NewCryptoSource())
	require.NoError(t, err)

	prime, err := generator.GenerateDefault(context.Background())
	require.NoError(t, err)

	lower, upper := DefaultQuickBounds()
	assert.True(t, prime.Cmp(lower) >= 0 && prime.Cmp(upper) <= 0)
	assert.True(t, IsProbablePrime(prime))
	assert.True(t, prime.ProbablyPrime(20), "Fermat survivors this large are prime in practice")
}

func TestDefaultBounds(t *testing.T) {
	lower, upper := DefaultExactBounds()
	assert.Equal(t, "2305843009213693951", lower.String())
	assert.Equal(t, "9223372036854775807", upper.String())

	qLower, qUpper := DefaultQuickBounds()
	assert.Equal(t, "784637716923335095224261902710254454442933591094742482943", qLower.String())
	assert.True(t, qUpper.Cmp(qLower) > 0)
}

func TestNewPrimeGenerator_Validation(t *testing.T) {
	_, err := NewPrimeGenerator(nil, IsPrimeContext, big.NewInt(1), big.NewInt(10))
	assert.Error(t, err)

	_, err = NewPrimeGenerator(NewSequenceSource(1), nil, big.NewInt(1), big.NewInt(10))
	assert.Error(t, err)

	_, err = NewPrimeGenerator(NewSequenceSource(1), IsPrimeContext, big.NewInt(10), big.NewInt(1))
	assert.ErrorIs(t, err, rsa.ErrInvalidRange)
}
