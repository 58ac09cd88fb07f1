package messagefile

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/kylepxiao/RSA-Encryption/internal/domain/rsa"
)

// Default file names used by the CLI.
const (
	DefaultEncryptInput  = "encrypt_in.txt"
	DefaultEncryptOutput = "encrypt_out.txt"
	DefaultDecryptInput  = "decrypt_in.txt"
	DefaultDecryptOutput = "decrypt_out.txt"
)

// ReadPlaintext loads the message to encrypt from path.
func ReadPlaintext(path string) ([]byte, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open plaintext file: %w", err)
	}
	defer closeFile(file)

	return DecodePlaintext(file)
}

// WritePlaintext stores a decrypted message verbatim.
func WritePlaintext(path string, message []byte) error {
	if err := os.WriteFile(filepath.Clean(path), message, 0600); err != nil {
		return fmt.Errorf("failed to write plaintext file: %w", err)
	}
	return nil
}

// ReadCiphertext loads a ciphertext written by WriteCiphertext or by hand.
func ReadCiphertext(path string) (rsa.Ciphertext, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open ciphertext file: %w", err)
	}
	defer closeFile(file)

	return DecodeCiphertext(file)
}

// WriteCiphertext stores cipher as space separated decimal tokens.
func WriteCiphertext(path string, cipher rsa.Ciphertext) error {
	file, err := os.OpenFile(filepath.Clean(path), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create ciphertext file: %w", err)
	}
	defer closeFile(file)

	return EncodeCiphertext(file, cipher)
}

func closeFile(file *os.File) {
	if err := file.Close(); err != nil {
		log.Printf("warning: failed to close file: %v\n", err)
	}
}
