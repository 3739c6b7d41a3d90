package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/fresh/internal/core/domain"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch ENTRY",
		Short: "Recompile an entry whenever one of its resources changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := compileOptions(cmd)
			return c.app.Watch(cmd.Context(), args[0], opts, func(compiled *domain.Compiled, err error) {
				if err != nil {
					return
				}
				if err := printDocument(cmd.OutOrStdout(), compiled.Document); err != nil {
					c.logger.Error(err)
				}
			})
		},
	}
	cmd.Flags().StringP("cache", "c", domain.DefaultCacheFile, "Path of the cache artifact")
	return cmd
}
