package commands

import (
	"context"
	"fmt"
	"math/big"

	"github.com/kylepxiao/RSA-Encryption/internal/app"
	"github.com/kylepxiao/RSA-Encryption/internal/domain/rsa"
	"github.com/kylepxiao/RSA-Encryption/internal/infrastructure/cryptography"
	"github.com/kylepxiao/RSA-Encryption/internal/infrastructure/messagefile"

	"github.com/spf13/cobra"
)

// TransformCommandHandler encrypts and decrypts message files.
type TransformCommandHandler struct {
	workers int
}

// NewTransformCommandHandler creates a handler that uses one transform worker per CPU.
func NewTransformCommandHandler() (*TransformCommandHandler, error) {
	return &TransformCommandHandler{workers: 0}, nil
}

// EncryptCmd encrypts the input file with a stored key or an explicit (n, e) pair
func (commandHandler *TransformCommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	inputPath, outputPath, err := fileFlags(cmd)
	if err != nil {
		return err
	}

	message, err := messagefile.ReadPlaintext(inputPath)
	if err != nil {
		return err
	}

	transformer, err := cryptography.NewTransformer(s.logger, commandHandler.workers)
	if err != nil {
		return fmt.Errorf("failed to create transformer: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Encrypting...")
	var cipher rsa.Ciphertext
	err = commandHandler.withKey(cmd, s, transformer, "e",
		func(ctx context.Context, svc rsa.TransformService, keyID string) error {
			c, err := svc.Encrypt(ctx, keyID, message)
			cipher = c
			return err
		},
		func(ctx context.Context, n, e *big.Int) error {
			c, err := transformer.Encrypt(ctx, message, rsa.PublicKey{N: n, E: e})
			cipher = c
			return err
		})
	if err != nil {
		return err
	}

	if err := messagefile.WriteCiphertext(outputPath, cipher); err != nil {
		return err
	}
	s.logger.Info(fmt.Sprintf("Encrypted %d bytes from %s to %s", len(message), inputPath, outputPath))
	return nil
}

// DecryptCmd decrypts the input file with a stored key or an explicit (n, d) pair
func (commandHandler *TransformCommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	inputPath, outputPath, err := fileFlags(cmd)
	if err != nil {
		return err
	}

	cipher, err := messagefile.ReadCiphertext(inputPath)
	if err != nil {
		return err
	}

	transformer, err := cryptography.NewTransformer(s.logger, commandHandler.workers)
	if err != nil {
		return fmt.Errorf("failed to create transformer: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Decrypting...")
	var message []byte
	err = commandHandler.withKey(cmd, s, transformer, "d",
		func(ctx context.Context, svc rsa.TransformService, keyID string) error {
			m, err := svc.Decrypt(ctx, keyID, cipher)
			message = m
			return err
		},
		func(ctx context.Context, n, d *big.Int) error {
			m, err := transformer.Decrypt(ctx, cipher, rsa.PrivateKey{N: n, D: d})
			message = m
			return err
		})
	if err != nil {
		return err
	}

	if err := messagefile.WritePlaintext(outputPath, message); err != nil {
		return err
	}
	s.logger.Info(fmt.Sprintf("Decrypted %d values from %s to %s", len(cipher), inputPath, outputPath))
	return nil
}

// withKey runs stored when --key-id is set, otherwise explicit with --n and the
// exponent flag named exponentFlag.
func (commandHandler *TransformCommandHandler) withKey(
	cmd *cobra.Command,
	s *session,
	transformer rsa.Transformer,
	exponentFlag string,
	stored func(ctx context.Context, svc rsa.TransformService, keyID string) error,
	explicit func(ctx context.Context, n, exp *big.Int) error,
) error {
	keyID, err := cmd.Flags().GetString("key-id")
	if err != nil {
		return fmt.Errorf("invalid key-id flag: %w", err)
	}

	if keyID == "" {
		n, err := decimalFlag(cmd, "n")
		if err != nil {
			return err
		}
		exp, err := decimalFlag(cmd, exponentFlag)
		if err != nil {
			return err
		}
		if n == nil || exp == nil {
			return fmt.Errorf("either --key-id or both --n and --%s are required", exponentFlag)
		}
		return explicit(cmd.Context(), n, exp)
	}

	repo, closeRepo, err := s.openKeyRepository()
	if err != nil {
		return err
	}
	defer closeRepo()

	svc, err := app.NewTransformService(transformer, repo, s.logger)
	if err != nil {
		return fmt.Errorf("failed to create transform service: %w", err)
	}
	return stored(cmd.Context(), svc, keyID)
}

func fileFlags(cmd *cobra.Command) (string, string, error) {
	inputPath, err := cmd.Flags().GetString("input")
	if err != nil {
		return "", "", fmt.Errorf("invalid input flag: %w", err)
	}
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return "", "", fmt.Errorf("invalid output flag: %w", err)
	}
	return inputPath, outputPath, nil
}

// InitTransformCommands registers the encrypt and decrypt commands
func InitTransformCommands(rootCmd *cobra.Command) error {
	handler, err := NewTransformCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create transform command handler %w", err)
	}

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a text file byte by byte",
		Args:  cobra.NoArgs,
		RunE:  handler.EncryptCmd,
	}
	encryptCmd.Flags().String("key-id", "", "ID of a saved key")
	encryptCmd.Flags().String("e", "", "Public exponent")
	encryptCmd.Flags().String("n", "", "Modulus")
	encryptCmd.Flags().String("input", messagefile.DefaultEncryptInput, "Path to the plaintext file")
	encryptCmd.Flags().String("output", messagefile.DefaultEncryptOutput, "Path to the ciphertext file")
	encryptCmd.MarkFlagsRequiredTogether("e", "n")
	encryptCmd.MarkFlagsMutuallyExclusive("key-id", "e")
	encryptCmd.MarkFlagsMutuallyExclusive("key-id", "n")
	encryptCmd.MarkFlagsOneRequired("key-id", "n")
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a ciphertext file",
		Args:  cobra.NoArgs,
		RunE:  handler.DecryptCmd,
	}
	decryptCmd.Flags().String("key-id", "", "ID of a saved key")
	decryptCmd.Flags().String("d", "", "Private exponent")
	decryptCmd.Flags().String("n", "", "Modulus")
	decryptCmd.Flags().String("input", messagefile.DefaultDecryptInput, "Path to the ciphertext file")
	decryptCmd.Flags().String("output", messagefile.DefaultDecryptOutput, "Path to the plaintext file")
	decryptCmd.MarkFlagsRequiredTogether("d", "n")
	decryptCmd.MarkFlagsMutuallyExclusive("key-id", "d")
	decryptCmd.MarkFlagsMutuallyExclusive("key-id", "n")
	decryptCmd.MarkFlagsOneRequired("key-id", "n")
	rootCmd.AddCommand(decryptCmd)

	return nil
}
