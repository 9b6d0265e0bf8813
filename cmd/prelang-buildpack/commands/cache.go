package commands

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func (c *CLI) newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the persistent asset cache",
	}
	cmd.AddCommand(c.newCacheStatusCmd())
	cmd.AddCommand(c.newCacheClearCmd())
	return cmd
}

func (c *CLI) newCacheStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status CACHE_DIR",
		Short: "List the stored cache slots",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := c.app.CacheStatus(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(records) == 0 {
				_, _ = fmt.Fprintln(out, "cache is empty")
				return nil
			}
			for _, r := range records {
				_, _ = fmt.Fprintf(out, "%-20s %6d files %10s  %s  stored %s\n",
					r.Slot,
					r.Files,
					humanize.IBytes(uint64(r.Bytes)), //nolint:gosec // Sizes are non-negative
					r.Digest,
					humanize.Time(r.StoredAt),
				)
			}
			return nil
		},
	}
}

func (c *CLI) newCacheClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear CACHE_DIR [SLOT]",
		Short: "Remove one stored slot, or all of them",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var slot string
			if len(args) == 2 {
				slot = args[1]
			}
			cleared, err := c.app.CacheClear(cmd.Context(), args[0], slot)
			for _, name := range cleared {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "cleared %s\n", name)
			}
			return err
		},
	}
}
