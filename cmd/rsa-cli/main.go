// Package main is the entry point for the rsa-cli application.
// It registers the key, encrypt, decrypt and prime sub-commands and executes them.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	commands "github.com/kylepxiao/RSA-Encryption/cmd/rsa-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "rsa-cli",
		Short: "Textbook RSA key generation and text file encryption",
		Long: `rsa-cli generates textbook RSA keys from arbitrary precision primes and
encrypts or decrypts text files one byte at a time.

Keys are not padded and the default random source is not cryptographically
secure. Use --random crypto for crypto/rand draws. Saved keys live in the
sqlite file named by --db.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	commands.RegisterPersistentFlags(rootCmd)

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitKeyCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize key commands: %w", err)
	}

	if err := commands.InitTransformCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize transform commands: %w", err)
	}

	if err := commands.InitPrimeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize prime commands: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
