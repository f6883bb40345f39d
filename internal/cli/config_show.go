package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/collegelist/internal/config"
)

// NewConfigShowCmd creates the config show command. It prints the effective
// configuration after the config file, environment and flags are applied.
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := config.GetGlobalConfig().Marshal()
			if err != nil {
				return fmt.Errorf("marshaling configuration: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
