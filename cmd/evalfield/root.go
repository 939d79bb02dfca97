package main

import (
	"fmt"
	"os"

	"github.com/danielpatrickdp/evalfield/internal/config"
	"github.com/danielpatrickdp/evalfield/internal/logging"
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

// cfg is loaded from the environment before any subcommand runs.
var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:   "evalfield",
	Short: "Compare and validate dominance-ordered evaluations",
	Long: "evalfield builds typed evaluations (integer, real, enumeration, pair, missing)\n" +
		"and answers the dominance and ordering questions between them.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.Version = version
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}
	cfg = loaded
	logging.Init(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat, cmd.ErrOrStderr())
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
