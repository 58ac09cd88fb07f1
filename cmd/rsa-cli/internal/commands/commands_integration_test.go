//go:build integration
// +build integration

package commands

import (
	"errors"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/kylepxiao/RSA-Encryption/internal/domain/rsa"
	"github.com/kylepxiao/RSA-Encryption/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var savedKeyPattern = regexp.MustCompile(`Saved key: id=([0-9a-f-]{36})`)

func TestSavedKey_EncryptDecrypt(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "keys.db")

	out, err := executeWithDB(t, dbPath, "key", "--p1", "61", "--p2", "53", "--e", "17", "--save")
	require.NoError(t, err)
	match := savedKeyPattern.FindStringSubmatch(out)
	require.Len(t, match, 2, "output %q", out)
	keyID := match[1]

	input := testutil.CreateTestFile(t, "encrypt_in.txt", []byte("stored key"))
	cipherPath := filepath.Join(t.TempDir(), "encrypt_out.txt")
	outputPath := filepath.Join(t.TempDir(), "decrypt_out.txt")

	_, err = executeWithDB(t, dbPath, "encrypt", "--key-id", keyID, "--input", input, "--output", cipherPath)
	require.NoError(t, err)

	_, err = executeWithDB(t, dbPath, "decrypt", "--key-id", keyID, "--input", cipherPath, "--output", outputPath)
	require.NoError(t, err)

	assert.Equal(t, "stored key\n", testutil.ReadTestFile(t, outputPath))
}

func TestSavedKey_UnknownID(t *testing.T) {
	input := testutil.CreateTestFile(t, "encrypt_in.txt", []byte("x"))

	_, err := execute(t, "encrypt", "--key-id", "00000000-0000-4000-8000-000000000000",
		"--input", input, "--output", filepath.Join(t.TempDir(), "out.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, rsa.ErrKeyNotFound), "got %v", err)
}
