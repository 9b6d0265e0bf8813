package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect BUILD_DIR",
		Short: "Print the application type if this buildpack applies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detection, err := c.app.Detect(args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), detection.Name)
			return nil
		},
	}
}
