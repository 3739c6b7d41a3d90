package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/fresh/internal/engine/importer"
)

func (c *CLI) newGlobCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "glob PATTERN",
		Short: "List the paths a glob pattern selects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recursive, _ := cmd.Flags().GetBool("recursive")
			excluded, _ := cmd.Flags().GetStringArray("exclude")

			matches, err := c.app.Glob(cmd.Context(), args[0], importer.GlobOptions{
				Recursive: recursive,
				Excluded:  excluded,
			})
			if err != nil {
				return err
			}
			for _, m := range matches {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), m); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolP("recursive", "r", false, "Also list every file below matching directories")
	cmd.Flags().StringArrayP("exclude", "e", nil, "Path to leave out of the result, may be repeated")
	return cmd
}
