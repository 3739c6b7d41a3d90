package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/fresh/internal/core/domain"
)

func (c *CLI) newCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile ENTRY",
		Short: "Compile an entry configuration and print it as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			compiled, err := c.app.Compile(cmd.Context(), args[0], compileOptions(cmd))
			if err != nil {
				return err
			}
			if compiled.FromCache {
				c.logger.Debug("using cached configuration")
			}
			return printDocument(cmd.OutOrStdout(), compiled.Document)
		},
	}
	addCacheFlags(cmd)
	cmd.Flags().BoolP("force", "f", false, "Recompile even when the cache is fresh")
	return cmd
}

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check ENTRY",
		Short: "Report whether the cache for an entry is fresh",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fresh, err := c.app.Check(cmd.Context(), args[0], compileOptions(cmd))
			if err != nil {
				return err
			}
			if !fresh {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "stale")
				return domain.ErrCacheStale
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "fresh")
			return nil
		},
	}
	addCacheFlags(cmd)
	return cmd
}
