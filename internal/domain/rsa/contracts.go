package rsa

import (
	"context"
	"math/big"
)

// PrimeGenerator searches for primes accepted by a primality predicate.
type PrimeGenerator interface {
	// Generate returns a prime from a downward wrap-around scan that starts at a
	// random odd candidate in [lower, upper).
	Generate(ctx context.Context, lower, upper *big.Int) (*big.Int, error)

	// GenerateDefault runs Generate over the generator's default bounds.
	GenerateDefault(ctx context.Context) (*big.Int, error)
}

// KeyGenerator derives complete key material.
type KeyGenerator interface {
	// GenerateKeys selects two distinct primes and a public exponent, then derives
	// the private exponent. The report describes the search effort.
	GenerateKeys(ctx context.Context, opts *KeyGenOptions) (*KeyMaterial, *KeyGenReport, error)
}

// Transformer maps messages to ciphertext and back, one value per byte.
type Transformer interface {
	// Encrypt computes code^e mod n for every byte of message.
	Encrypt(ctx context.Context, message []byte, key PublicKey) (Ciphertext, error)

	// Decrypt computes c^d mod n for every element and keeps the low 8 bits.
	Decrypt(ctx context.Context, cipher Ciphertext, key PrivateKey) ([]byte, error)
}

// KeyRepository persists key records.
type KeyRepository interface {
	Create(ctx context.Context, key *KeyRecord) error
	List(ctx context.Context, query *KeyQuery) ([]*KeyRecord, error)
	GetByID(ctx context.Context, keyID string) (*KeyRecord, error)
	DeleteByID(ctx context.Context, keyID string) error
}

// KeyService manages the lifecycle of persisted keys.
type KeyService interface {
	// Generate creates key material and stores it.
	Generate(ctx context.Context, opts *KeyGenOptions) (*KeyRecord, error)

	// List returns stored keys matching the query.
	List(ctx context.Context, query *KeyQuery) ([]*KeyRecord, error)

	// GetByID returns a stored key.
	GetByID(ctx context.Context, keyID string) (*KeyRecord, error)

	// DeleteByID removes a stored key.
	DeleteByID(ctx context.Context, keyID string) error
}

// TransformService encrypts and decrypts with stored keys.
type TransformService interface {
	Encrypt(ctx context.Context, keyID string, message []byte) (Ciphertext, error)
	Decrypt(ctx context.Context, keyID string, cipher Ciphertext) ([]byte, error)
}

// PrimeService exposes bounded prime search to callers that pick the predicate per request.
type PrimeService interface {
	// Generate returns a prime in [lower, upper]. Nil bounds select the predicate's default range.
	Generate(ctx context.Context, quick bool, lower, upper *big.Int) (*big.Int, error)
}
