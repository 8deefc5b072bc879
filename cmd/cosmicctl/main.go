// Command cosmicctl computes blueprint profiles offline, without the HTTP
// server or a language model.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	pkglogger "github.com/yanqian/cosmic-blueprint/pkg/logger"
)

var (
	verbose bool
	logger  *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "cosmicctl",
	Short: "Cosmic blueprint toolkit",
	Long: `cosmicctl runs the deterministic half of a cosmic blueprint reading:
numerology, western and Chinese zodiac, and life stage context.

Output goes to stdout as JSON or tables. Logs go to stderr.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := "warn"
		if verbose {
			level = "debug"
		}
		logger = pkglogger.NewWithWriter(cmd.ErrOrStderr(), level)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")

	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(signsCmd)
	rootCmd.AddCommand(stagesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func cliLogger() *slog.Logger {
	if logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return logger
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
