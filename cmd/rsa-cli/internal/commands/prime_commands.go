package commands

import (
	"fmt"

	"github.com/kylepxiao/RSA-Encryption/internal/app"
	"github.com/kylepxiao/RSA-Encryption/internal/infrastructure/numtheory"

	"github.com/spf13/cobra"
)

// PrimeCommandHandler prints single primes.
type PrimeCommandHandler struct {
	witnesses []int64
}

// NewPrimeCommandHandler creates a handler using the base-3 Fermat test for --quick.
func NewPrimeCommandHandler() (*PrimeCommandHandler, error) {
	return &PrimeCommandHandler{witnesses: []int64{3}}, nil
}

// GeneratePrimeCmd prints a prime from the given or default range
func (commandHandler *PrimeCommandHandler) GeneratePrimeCmd(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	quick, err := cmd.Flags().GetBool("quick")
	if err != nil {
		return fmt.Errorf("invalid quick flag: %w", err)
	}
	lower, err := decimalFlag(cmd, "lower")
	if err != nil {
		return err
	}
	upper, err := decimalFlag(cmd, "upper")
	if err != nil {
		return err
	}

	exact, err := numtheory.NewExactPrimeGenerator(s.source)
	if err != nil {
		return fmt.Errorf("failed to create exact prime generator: %w", err)
	}
	fermat, err := numtheory.NewFermatPrimeGenerator(s.source, commandHandler.witnesses...)
	if err != nil {
		return fmt.Errorf("failed to create quick prime generator: %w", err)
	}
	primeService, err := app.NewPrimeService(exact, fermat, s.logger)
	if err != nil {
		return fmt.Errorf("failed to create prime service: %w", err)
	}

	p, err := primeService.Generate(cmd.Context(), quick, lower, upper)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), numtheory.FormatDecimal(p))
	return nil
}

// InitPrimeCommands registers the prime command
func InitPrimeCommands(rootCmd *cobra.Command) error {
	handler, err := NewPrimeCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create prime command handler %w", err)
	}

	var primeCmd = &cobra.Command{
		Use:   "prime",
		Short: "Generate a prime number",
		Args:  cobra.NoArgs,
		RunE:  handler.GeneratePrimeCmd,
	}
	primeCmd.Flags().Bool("quick", false, "Accept a Fermat probable prime from the larger default range")
	primeCmd.Flags().String("lower", "", "Lower bound of the search")
	primeCmd.Flags().String("upper", "", "Upper bound of the search")
	primeCmd.MarkFlagsRequiredTogether("lower", "upper")
	rootCmd.AddCommand(primeCmd)

	return nil
}
