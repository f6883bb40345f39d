package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/collegelist/internal/config"
	"github.com/rshade/collegelist/internal/tui"
)

// ErrNoTerminal is returned by browse when stdin or stdout is not a terminal.
var ErrNoTerminal = errors.New("browse needs an interactive terminal; use 'collegelist list' instead")

// NewBrowseCmd creates the interactive browser command.
func NewBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse colleges in an interactive terminal UI",
		Long: `Opens the college list in a full-screen terminal UI.

Rows are revealed in batches as you scroll towards the bottom. Press / to
search by name, 1-5 to sort by a column (press again to reverse), enter for
details and q to quit.`,
		Annotations: map[string]string{annotationOwnsTerminal: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
				return ErrNoTerminal
			}

			cfg := config.GetGlobalConfig()
			ctx := cmd.Context()
			p, err := loadPipeline(ctx, cfg)
			if err != nil {
				return err
			}

			logger.Debug().Ctx(ctx).Int("scroll_threshold", cfg.Listing.ScrollThreshold).Msg("starting browser")
			return tui.Run(ctx, p, cfg.Listing.ScrollThreshold, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
