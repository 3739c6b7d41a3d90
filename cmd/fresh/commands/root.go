// Package commands implements the CLI commands for fresh.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/fresh/internal/app"
	"go.trai.ch/fresh/internal/build"
	"go.trai.ch/fresh/internal/core/domain"
	"go.trai.ch/fresh/internal/core/ports"
)

// CLI represents the command line interface for fresh.
type CLI struct {
	app     *app.App
	logger  ports.Logger
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App, logger ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "fresh",
		Short:         "Compile layered configuration files behind a freshness-checked cache",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("log-level", "info", "Minimum log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringSliceP("path", "p", nil, "Additional directories to search for imported resources")

	c := &CLI{
		app:     a,
		logger:  logger,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			c.logger.SetLevel(domain.LogLevelDebug)
		} else if cmd.Flags().Changed("log-level") {
			level, _ := cmd.Flags().GetString("log-level")
			c.logger.SetLevel(domain.ParseLogLevel(level))
		}
		if paths, _ := cmd.Flags().GetStringSlice("path"); len(paths) > 0 {
			c.app.AddSearchPaths(paths...)
		}
	}

	rootCmd.AddCommand(c.newCompileCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newGlobCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOut redirects command output. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}

func addCacheFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("cache", "c", domain.DefaultCacheFile, "Path of the cache artifact")
	cmd.Flags().BoolP("debug", "d", false, "Validate the cache against every tracked resource")
}

func compileOptions(cmd *cobra.Command) app.CompileOptions {
	cachePath, _ := cmd.Flags().GetString("cache")
	debug, _ := cmd.Flags().GetBool("debug")
	force, _ := cmd.Flags().GetBool("force")
	return app.CompileOptions{
		CachePath: cachePath,
		Debug:     debug,
		Force:     force,
	}
}

func printDocument(w io.Writer, doc domain.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
