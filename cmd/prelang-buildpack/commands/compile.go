package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCompileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compile BUILD_DIR CACHE_DIR [ENV_DIR]",
		Short: "Build the application and precompile its assets",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var envDir string
			if len(args) == 3 {
				envDir = args[2]
			}
			_, err := c.app.Compile(cmd.Context(), args[0], args[1], envDir)
			return err
		},
	}
}
