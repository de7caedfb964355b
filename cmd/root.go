package cmd

import (
	"errors"
	"fmt"
	"os"

	cfgpkg "github.com/KaramelBytes/pollnorm-cli/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Config
)

// errUsage marks a wrong-argument-count invocation; Execute maps it to
// exit code 2 with a usage line, keeping runtime failures on exit 1.
var errUsage = errors.New("usage")

const usageLine = "Usage: pollnorm <input.csv> <output.csv>"

var rootCmd = &cobra.Command{
	Use:   "pollnorm <input.csv> <output.csv>",
	Short: "Normalize an opinion-poll CSV export",
	Long: `pollnorm cleans a CSV export of opinion-poll records: dates are
canonicalized to YYYY-MM-DD, pollster names are stripped of markup,
sponsors are split into their own column, rows are sorted newest first,
and each row is annotated with the rolling Influence-weighted Approve
average. The overall weighted average is printed to stdout.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return errUsage
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNormalize(args[0], args[1], cmd.OutOrStdout())
	},
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usageLine)
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.pollnorm/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug diagnostics")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: defaults cover every setting
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
	if debug {
		cfg.Debug = true
	}
}
