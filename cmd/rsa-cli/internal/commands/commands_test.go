//go:build unit
// +build unit

package commands

import (
	"errors"
	"math/big"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kylepxiao/RSA-Encryption/internal/domain/rsa"
	"github.com/kylepxiao/RSA-Encryption/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyCommand_ManualKey(t *testing.T) {
	out, err := execute(t, "key", "--p1", "61", "--p2", "53", "--e", "17")
	require.NoError(t, err)

	assert.Contains(t, out, "Prime Values: p=61 q=53")
	assert.Contains(t, out, "Public Encryption Key: n=3233, e=17")
	assert.Contains(t, out, "Private Encryption Key: d=2753")
	assert.NotContains(t, out, "Generating primes...")
}

func TestKeyCommand_BoundedRange(t *testing.T) {
	out, err := execute(t, "key", "--lower", "1000", "--upper", "5000", "--random", "crypto")
	require.NoError(t, err)

	assert.Contains(t, out, "Generating primes...")
	assert.Contains(t, out, "Public Encryption Key: n=")
}

func TestKeyCommand_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"malformed prime", []string{"key", "--p1", "abc", "--p2", "53"}, rsa.ErrMalformedNumber},
		{"negative exponent flag", []string{"key", "--p1", "61", "--p2", "53", "--e", "-17"}, rsa.ErrMalformedNumber},
		{"not invertible", []string{"key", "--p1", "61", "--p2", "53", "--e", "5"}, rsa.ErrNotInvertible},
		{"equal primes", []string{"key", "--p1", "61", "--p2", "61", "--e", "7"}, rsa.ErrInvalidKeyMaterial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestKeyCommand_FlagGroups(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"lower without upper", []string{"key", "--lower", "100"}},
		{"single prime", []string{"key", "--p1", "61"}},
		{"primes with bounds", []string{"key", "--p1", "61", "--p2", "53", "--lower", "1", "--upper", "9"}},
		{"unknown random source", []string{"key", "--random", "dice"}},
		{"unknown log level", []string{"prime", "--log-level", "loud"}},
		{"positional argument", []string{"prime", "17"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestTransformCommands_RoundTrip(t *testing.T) {
	input := testutil.CreateTestFile(t, "encrypt_in.txt", []byte("Hello, RSA\nsecond line"))
	cipherPath := filepath.Join(t.TempDir(), "encrypt_out.txt")
	outputPath := filepath.Join(t.TempDir(), "decrypt_out.txt")

	out, err := execute(t, "encrypt", "--n", "3233", "--e", "17", "--input", input, "--output", cipherPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Encrypting...")

	cipher := testutil.ReadTestFile(t, cipherPath)
	assert.True(t, strings.HasPrefix(cipher, "3000 "), "'H' encrypts to 3000, got %q", cipher)

	out, err = execute(t, "decrypt", "--n", "3233", "--d", "2753", "--input", cipherPath, "--output", outputPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Decrypting...")

	assert.Equal(t, "Hello, RSA\nsecond line\n", testutil.ReadTestFile(t, outputPath))
}

func TestTransformCommands_KnownVector(t *testing.T) {
	cipherPath := testutil.CreateTestFile(t, "decrypt_in.txt", []byte("2790 "))
	outputPath := filepath.Join(t.TempDir(), "decrypt_out.txt")

	_, err := execute(t, "decrypt", "--n", "3233", "--d", "2753", "--input", cipherPath, "--output", outputPath)
	require.NoError(t, err)
	assert.Equal(t, "A", testutil.ReadTestFile(t, outputPath))
}

func TestTransformCommands_Errors(t *testing.T) {
	input := testutil.CreateTestFile(t, "in.txt", []byte("x"))
	output := filepath.Join(t.TempDir(), "out.txt")

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"no key", []string{"encrypt", "--input", input, "--output", output}, nil},
		{"key id with modulus", []string{"encrypt", "--key-id", "abc", "--n", "3233", "--e", "17", "--input", input, "--output", output}, nil},
		{"modulus without exponent", []string{"decrypt", "--n", "3233", "--input", input, "--output", output}, nil},
		{"malformed modulus", []string{"encrypt", "--n", "32x3", "--e", "17", "--input", input, "--output", output}, rsa.ErrMalformedNumber},
		{"modulus one", []string{"encrypt", "--n", "1", "--e", "17", "--input", input, "--output", output}, rsa.ErrInvalidModulus},
		{"malformed ciphertext", []string{"decrypt", "--n", "3233", "--d", "2753", "--input", testutil.CreateTestFile(t, "bad.txt", []byte("12 z4")), "--output", output}, rsa.ErrMalformedNumber},
		{"missing input", []string{"encrypt", "--n", "3233", "--e", "17", "--input", filepath.Join(t.TempDir(), "missing.txt"), "--output", output}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			if tt.want != nil {
				assert.True(t, errors.Is(err, tt.want), "got %v", err)
			}
		})
	}
}

func TestPrimeCommand(t *testing.T) {
	out, err := execute(t, "prime", "--lower", "100", "--upper", "200")
	require.NoError(t, err)

	p, ok := new(big.Int).SetString(strings.TrimSpace(out), 10)
	require.True(t, ok, "output %q", out)
	assert.True(t, p.ProbablyPrime(20))
	assert.True(t, p.Cmp(big.NewInt(100)) >= 0 && p.Cmp(big.NewInt(200)) <= 0)
}

func TestPrimeCommand_NoPrimeInRange(t *testing.T) {
	_, err := execute(t, "prime", "--lower", "24", "--upper", "28")
	require.Error(t, err)
	assert.True(t, errors.Is(err, rsa.ErrNoPrimeInRange))
}
