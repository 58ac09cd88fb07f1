package commands

import (
	"fmt"
	"io"
	"math/big"

	"github.com/kylepxiao/RSA-Encryption/internal/app"
	"github.com/kylepxiao/RSA-Encryption/internal/domain/rsa"
	"github.com/kylepxiao/RSA-Encryption/internal/infrastructure/cryptography"
	"github.com/kylepxiao/RSA-Encryption/internal/pkg/config"

	"github.com/spf13/cobra"
)

// KeyCommandHandler generates key pairs from the command line.
type KeyCommandHandler struct {
	settings *config.KeyGenSettings
}

// NewKeyCommandHandler creates a handler using the default key generation settings.
func NewKeyCommandHandler() (*KeyCommandHandler, error) {
	return &KeyCommandHandler{settings: config.NewDefaultKeyGenSettings()}, nil
}

// GenerateKeyCmd generates a key pair, prints it and optionally saves it to the key store
func (commandHandler *KeyCommandHandler) GenerateKeyCmd(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	opts, err := keyGenOptionsFromFlags(cmd)
	if err != nil {
		return err
	}
	save, err := cmd.Flags().GetBool("save")
	if err != nil {
		return fmt.Errorf("invalid save flag: %w", err)
	}
	settings, err := commandHandler.settingsFromFlags(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	opts.OnRegenerate = func(event rsa.RegenerationEvent) {
		fmt.Fprintf(out, "Generating New Key... (%s after %s)\n", event.Reason, event.Elapsed)
	}
	if opts.P1 == nil {
		fmt.Fprintln(out, "Generating primes...")
	}

	generator, err := cryptography.NewKeyGenerator(settings, s.source, s.logger)
	if err != nil {
		return fmt.Errorf("failed to create key generator: %w", err)
	}

	if !save {
		key, report, err := generator.GenerateKeys(cmd.Context(), opts)
		if err != nil {
			return err
		}
		printKey(out, key)
		s.logger.Debug(fmt.Sprintf("Key generated in %s with %d regenerations", report.Duration, report.Regenerations))
		return nil
	}

	repo, closeRepo, err := s.openKeyRepository()
	if err != nil {
		return err
	}
	defer closeRepo()

	keyService, err := app.NewKeyService(generator, repo, s.logger)
	if err != nil {
		return fmt.Errorf("failed to create key service: %w", err)
	}
	record, err := keyService.Generate(cmd.Context(), opts)
	if err != nil {
		return err
	}
	key, err := record.KeyMaterial()
	if err != nil {
		return err
	}

	printKey(out, key)
	fmt.Fprintf(out, "Saved key: id=%s\n", record.ID)
	return nil
}

func (commandHandler *KeyCommandHandler) settingsFromFlags(cmd *cobra.Command) (*config.KeyGenSettings, error) {
	settings := *commandHandler.settings

	timeout, err := cmd.Flags().GetDuration("watchdog-timeout")
	if err != nil {
		return nil, fmt.Errorf("invalid watchdog-timeout flag: %w", err)
	}
	bound, err := cmd.Flags().GetInt64("exponent-bound")
	if err != nil {
		return nil, fmt.Errorf("invalid exponent-bound flag: %w", err)
	}
	settings.WatchdogTimeout = timeout
	settings.ExponentBound = bound

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

func keyGenOptionsFromFlags(cmd *cobra.Command) (*rsa.KeyGenOptions, error) {
	quick, err := cmd.Flags().GetBool("quick")
	if err != nil {
		return nil, fmt.Errorf("invalid quick flag: %w", err)
	}

	opts := &rsa.KeyGenOptions{Quick: quick}
	for name, dst := range map[string]**big.Int{
		"lower": &opts.Lower,
		"upper": &opts.Upper,
		"p1":    &opts.P1,
		"p2":    &opts.P2,
		"e":     &opts.E,
	} {
		v, err := decimalFlag(cmd, name)
		if err != nil {
			return nil, err
		}
		*dst = v
	}
	return opts, nil
}

func printKey(w io.Writer, key *rsa.KeyMaterial) {
	fmt.Fprintf(w, "Prime Values: p=%s q=%s\n", key.P1(), key.P2())
	fmt.Fprintf(w, "Public Encryption Key: n=%s, e=%s\n", key.N(), key.E())
	fmt.Fprintf(w, "Private Encryption Key: d=%s\n", key.D())
}

// InitKeyCommands registers key generation commands
func InitKeyCommands(rootCmd *cobra.Command) error {
	handler, err := NewKeyCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create key command handler %w", err)
	}

	var keyCmd = &cobra.Command{
		Use:   "key",
		Short: "Generate an RSA key pair",
		Args:  cobra.NoArgs,
		RunE:  handler.GenerateKeyCmd,
	}
	keyCmd.Flags().Bool("quick", false, "Accept primes passing the Fermat test instead of trial division")
	keyCmd.Flags().String("lower", "", "Lower bound of the prime search")
	keyCmd.Flags().String("upper", "", "Upper bound of the prime search")
	keyCmd.Flags().String("p1", "", "First prime, skips the prime search")
	keyCmd.Flags().String("p2", "", "Second prime, skips the prime search")
	keyCmd.Flags().String("e", "", "Public exponent, skips the exponent search")
	keyCmd.Flags().Bool("save", false, "Persist the key to the key store")
	keyCmd.Flags().Duration("watchdog-timeout", config.DefaultWatchdogTimeout, "Exponent search time before the primes are regenerated")
	keyCmd.Flags().Int64("exponent-bound", config.DefaultExponentBound, "Exclusive upper bound for drawn public exponents")
	keyCmd.MarkFlagsRequiredTogether("lower", "upper")
	keyCmd.MarkFlagsRequiredTogether("p1", "p2")
	keyCmd.MarkFlagsMutuallyExclusive("p1", "lower")
	keyCmd.MarkFlagsMutuallyExclusive("p1", "quick")
	rootCmd.AddCommand(keyCmd)

	return nil
}
