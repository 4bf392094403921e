package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/bdroads/internal/app"
)

func (c *CLI) newSimpleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simple",
		Short: "Render a lightweight map with major roads and city markers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			output, _ := cmd.Flags().GetString("output")

			return c.app.Simple(cmd.Context(), app.SimpleOptions{
				ConfigPath: configPath,
				Output:     output,
			})
		},
	}

	cmd.Flags().StringP("output", "o", "", "Override the simple map output path")

	return cmd
}
