//go:build unit || integration
// +build unit integration

package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func newTestRootCmd(t *testing.T) *cobra.Command {
	t.Helper()

	rootCmd := &cobra.Command{Use: "rsa-cli", SilenceUsage: true, SilenceErrors: true}
	RegisterPersistentFlags(rootCmd)
	require.NoError(t, InitKeyCommands(rootCmd))
	require.NoError(t, InitTransformCommands(rootCmd))
	require.NoError(t, InitPrimeCommands(rootCmd))
	return rootCmd
}

// executeWithDB runs the CLI against the sqlite file at dbPath and returns stdout.
func executeWithDB(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()

	rootCmd := newTestRootCmd(t)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--"+FlagDB, dbPath))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeWithDB(t, filepath.Join(t.TempDir(), "keys.db"), args...)
}
