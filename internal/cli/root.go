package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/collegelist/internal/config"
	"github.com/rshade/collegelist/internal/logging"
)

// annotationOwnsTerminal marks commands that draw on the terminal and must
// keep log output off stderr.
const annotationOwnsTerminal = "collegelist/owns-terminal"

// annotationSkipConfigFile marks commands that run on defaults without
// reading the config file.
const annotationSkipConfigFile = "collegelist/skip-config-file"

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the collegelist CLI.
// It wires up configuration, logging and tracing, and the browse, list,
// config and version subcommands.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithArgs(ver, os.LookupEnv)
}

// NewRootCmdWithArgs creates the root command with an explicit env lookup for testability.
func NewRootCmdWithArgs(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	var (
		logResult  *logging.LogPathResult
		configPath string
		datasets   []string
		batchSize  int
	)

	cmd := &cobra.Command{
		Use:           "collegelist",
		Short:         "Browse, search and sort a college listing",
		Long:          "collegelist: an infinite-scroll college listing with name search and column sorting",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.New()
			if _, skip := cmd.Annotations[annotationSkipConfigFile]; !skip {
				loaded, err := config.LoadWithEnv(configPath, lookupEnv)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			// CLI flags override environment variables and config file
			flags := cmd.Flags()
			if flags.Changed("batch-size") {
				cfg.Listing.BatchSize = batchSize
			}
			if flags.Changed("dataset") {
				cfg.Listing.Datasets = datasets
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			config.SetGlobalConfig(cfg)

			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if logResult != nil {
				return logResult.Close()
			}
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default $COLLEGELIST_CONFIG or ~/.collegelist/config.yaml)")
	cmd.PersistentFlags().StringArrayVar(&datasets, "dataset", nil,
		"dataset file (.json, .yaml, .yml); repeat to concatenate shards (default: bundled dataset)")
	cmd.PersistentFlags().IntVar(&batchSize, "batch-size", 0,
		"rows revealed per request (overrides config file and env var)")

	cmd.AddCommand(NewBrowseCmd(), NewListCmd(), newConfigCmd(), NewVersionCmd(ver))

	return cmd
}

const rootCmdExample = `  # Browse the bundled dataset interactively
  collegelist browse

  # Print the first batch sorted by fees, highest first
  collegelist list --sort fees:desc

  # Search by name across every row
  collegelist list --all --filter iit

  # Reveal two more batches and print JSON
  collegelist list --reveal 2 --output json

  # Use custom dataset shards
  collegelist list --dataset north.json --dataset south.yaml

  # Initialize configuration
  collegelist config init`

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd())
	return cmd
}
