package numtheory

import (
	cryptorand "crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"math/rand"
	"sync"
	"time"

	"github.com/kylepxiao/RSA-Encryption/internal/domain/rsa"
)

// Source draws non-negative integers for prime and exponent search.
type Source interface {
	// Intn returns a value in [0, max). max must be positive.
	Intn(max *big.Int) (*big.Int, error)
}

// tickDraws is the number of 31-bit draws combined into one value.
const tickDraws = 26

var tenThousand = big.NewInt(10000)

// TickSource is the NOT cryptographically secure default source. Every draw
// advances a monotonic tick and reseeds a math/rand generator from it, then
// combines tickDraws outputs as r0*10000^25 + r1*10000^24 + ... + r25 before
// reducing modulo max. The sequence is fully determined by the starting seed.
type TickSource struct {
	mu   sync.Mutex
	tick int64
}

// NewTickSource returns a source starting at the given seed.
func NewTickSource(seed int64) *TickSource {
	return &TickSource{tick: seed}
}

// NewClockTickSource returns a source seeded with the current Unix time.
func NewClockTickSource() *TickSource {
	return NewTickSource(time.Now().Unix())
}

// Intn implements Source.
func (s *TickSource) Intn(max *big.Int) (*big.Int, error) {
	if max == nil || max.Sign() <= 0 {
		return nil, fmt.Errorf("failed to draw random value below %v: %w", max, rsa.ErrInvalidRange)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	num := big.NewInt(s.next())
	for i := 1; i < tickDraws; i++ {
		num.Mul(num, tenThousand)
		num.Add(num, big.NewInt(s.next()))
	}
	return num.Mod(num, max), nil
}

// Tick returns the current tick.
func (s *TickSource) Tick() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tick
}

func (s *TickSource) next() int64 {
	s.tick++
	return int64(rand.New(rand.NewSource(s.tick)).Int31())
}

// CryptoSource draws from a cryptographically secure reader. Swapping it in
// leaves every generation algorithm unchanged.
type CryptoSource struct {
	Reader io.Reader
}

// NewCryptoSource returns a source backed by crypto/rand.
func NewCryptoSource() *CryptoSource {
	return &CryptoSource{Reader: cryptorand.Reader}
}

// Intn implements Source.
func (s *CryptoSource) Intn(max *big.Int) (*big.Int, error) {
	if max == nil || max.Sign() <= 0 {
		return nil, fmt.Errorf("failed to draw random value below %v: %w", max, rsa.ErrInvalidRange)
	}
	v, err := cryptorand.Int(s.Reader, max)
	if err != nil {
		return nil, fmt.Errorf("failed to read random value: %w", err)
	}
	return v, nil
}

// NewSource builds a source by name, see rsa.RandomSourceTick and rsa.RandomSourceCrypto.
func NewSource(kind string) (Source, error) {
	switch kind {
	case rsa.RandomSourceTick, "":
		return NewClockTickSource(), nil
	case rsa.RandomSourceCrypto:
		return NewCryptoSource(), nil
	default:
		return nil, fmt.Errorf("unsupported random source: %s", kind)
	}
}

// SequenceSource replays a fixed list of values, each reduced modulo max. It
// exists for deterministic runs and tests.
type SequenceSource struct {
	mu     sync.Mutex
	values []*big.Int
	next   int
}

// NewSequenceSource returns a source cycling through values.
func NewSequenceSource(values ...int64) *SequenceSource {
	vs := make([]*big.Int, len(values))
	for i, v := range values {
		vs[i] = big.NewInt(v)
	}
	return &SequenceSource{values: vs}
}

// Intn implements Source.
func (s *SequenceSource) Intn(max *big.Int) (*big.Int, error) {
	if max == nil || max.Sign() <= 0 {
		return nil, fmt.Errorf("failed to draw random value below %v: %w", max, rsa.ErrInvalidRange)
	}
	if len(s.values) == 0 {
		return nil, errors.New("sequence source is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.values[s.next%len(s.values)]
	s.next++
	return new(big.Int).Mod(v, max), nil
}
