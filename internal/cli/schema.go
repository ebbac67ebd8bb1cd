package cli

import (
	"fmt"

	"github.com/retroenv/c64reasm/internal/project"
	"github.com/spf13/cobra"
)

func newSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Generate JSON schema for project files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bts, err := project.Schema()
			if err != nil {
				return fmt.Errorf("failed to generate schema: %w", err)
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), string(bts)); err != nil {
				return fmt.Errorf("writing schema: %w", err)
			}
			return nil
		},
	}
}
