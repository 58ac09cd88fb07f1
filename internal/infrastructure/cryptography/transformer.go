package cryptography

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"runtime"

	"github.com/kylepxiao/RSA-Encryption/internal/domain/rsa"
	"github.com/kylepxiao/RSA-Encryption/internal/infrastructure/numtheory"
	"github.com/kylepxiao/RSA-Encryption/internal/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// minChunk keeps tiny messages on a single goroutine.
const minChunk = 64

var lowByte = big.NewInt(0xff)

// transformer implements rsa.Transformer with one modular exponentiation per byte
type transformer struct {
	workers int
	logger  logger.Logger
}

// NewTransformer creates a transformer that spreads work over at most workers
// goroutines. workers <= 0 uses one per CPU.
func NewTransformer(logger logger.Logger, workers int) (rsa.Transformer, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &transformer{workers: workers, logger: logger}, nil
}

// Encrypt maps every byte c of message to c^e mod n.
func (t *transformer) Encrypt(ctx context.Context, message []byte, pub rsa.PublicKey) (rsa.Ciphertext, error) {
	if err := checkKey(pub.N, pub.E); err != nil {
		return nil, err
	}

	out := make(rsa.Ciphertext, len(message))
	err := t.fanOut(ctx, len(message), func(i int) error {
		c, err := numtheory.ModPow(big.NewInt(int64(message[i])), pub.E, pub.N)
		if err != nil {
			return err
		}
		out[i] = c
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt message: %w", err)
	}

	t.logger.Info(fmt.Sprintf("Encrypted %d character(s)", len(message)))
	return out, nil
}

// Decrypt maps every value c to the low byte of c^d mod n. A key that does not
// match the one used to encrypt yields garbage rather than an error.
func (t *transformer) Decrypt(ctx context.Context, cipher rsa.Ciphertext, priv rsa.PrivateKey) ([]byte, error) {
	if err := checkKey(priv.N, priv.D); err != nil {
		return nil, err
	}

	out := make([]byte, len(cipher))
	err := t.fanOut(ctx, len(cipher), func(i int) error {
		if cipher[i] == nil {
			return fmt.Errorf("%w: missing value at position %d", rsa.ErrMalformedNumber, i)
		}
		p, err := numtheory.ModPow(cipher[i], priv.D, priv.N)
		if err != nil {
			return err
		}
		out[i] = byte(p.And(p, lowByte).Uint64())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt message: %w", err)
	}

	t.logger.Info(fmt.Sprintf("Decrypted %d character(s)", len(cipher)))
	return out, nil
}

// fanOut calls fn for every index in [0, n), split into contiguous chunks.
func (t *transformer) fanOut(ctx context.Context, n int, fn func(i int) error) error {
	if n == 0 {
		return nil
	}

	chunk := (n + t.workers - 1) / t.workers
	if chunk < minChunk {
		chunk = minChunk
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(t.workers)
	for start := 0; start < n; start += chunk {
		start := start
		end := min(start+chunk, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := fn(i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

func checkKey(n, exp *big.Int) error {
	if n == nil || exp == nil {
		return fmt.Errorf("%w: modulus and exponent are required", rsa.ErrInvalidKeyMaterial)
	}
	if n.Cmp(big.NewInt(1)) <= 0 {
		return rsa.ErrInvalidModulus
	}
	if exp.Sign() < 0 {
		return rsa.ErrNegativeExponent
	}
	return nil
}
