package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/yaswanthreddy/portfolio/internal/content"
	"github.com/yaswanthreddy/portfolio/internal/types"
)

var configEnv = []string{
	"PORT", "LOG_LEVEL", "CONTENT_PATH", "TEMPLATE_DIR", "CORS_ORIGINS", "TRUSTED_PROXIES",
	"DATABASE_URL", "SQLITE_PATH",
	"SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASS", "TO_EMAIL", "IP_HASH_KEY",
}

// clearEnv blanks every variable config.FromEnv reads.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configEnv {
		t.Setenv(k, "")
	}
}

func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command in-process with fresh flag values.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

// writePortfolio encodes p into a temp file named name and returns its path.
func writePortfolio(t *testing.T, name string, p *types.Portfolio) string {
	t.Helper()
	format, err := content.FormatFromPath(name)
	require.NoError(t, err)
	data, err := content.Encode(p, format)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}
