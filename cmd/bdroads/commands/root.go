// Package commands implements the CLI commands for bdroads.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/bdroads/internal/app"
	"go.trai.ch/bdroads/internal/build"
	"go.trai.ch/bdroads/internal/core/domain"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for bdroads.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Analyze(ctx context.Context, opts app.AnalyzeOptions) error
	CacheInfo(ctx context.Context, opts app.CacheOptions) error
	ClearCache(ctx context.Context, opts app.CacheOptions) error
	Simple(ctx context.Context, opts app.SimpleOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "bdroads",
		Short:         "Bangladesh road network connectivity analysis and interactive map",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runRoot,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.Flags()
	flags.Bool("force-download", false, "Force re-download of the road network (recomputes statistics)")
	flags.Bool("force-analysis", false, "Force recomputation of connectivity statistics")
	flags.Bool("force-boundaries", false, "Force re-download of district boundaries")
	flags.Bool("cache-info", false, "Show cache information and exit")
	flags.Bool("clear-cache", false, "Clear all cached data and exit")
	flags.String("network-type", string(domain.NetworkDrive), "Network type for fresh downloads (drive, walk, bike, all)")
	flags.String("cache-dir", "", "Override the cache directory")
	flags.StringP("output", "o", "", "Override the map output path")

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the configuration file (default bdroads.yaml)")

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newSimpleCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) runRoot(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	configPath, _ := flags.GetString("config")
	cacheDir, _ := flags.GetString("cache-dir")
	cacheInfo, _ := flags.GetBool("cache-info")
	clearCache, _ := flags.GetBool("clear-cache")

	if cacheInfo && clearCache {
		return errors.Join(domain.ErrConfig,
			zerr.With(domain.ErrConflictingFlags, "flags", "--cache-info, --clear-cache"))
	}

	cacheOpts := app.CacheOptions{ConfigPath: configPath, CacheDir: cacheDir}
	switch {
	case clearCache:
		return c.app.ClearCache(cmd.Context(), cacheOpts)
	case cacheInfo:
		return c.app.CacheInfo(cmd.Context(), cacheOpts)
	}

	opts := app.AnalyzeOptions{
		ConfigPath: configPath,
		CacheDir:   cacheDir,
	}
	opts.Output, _ = flags.GetString("output")
	opts.Force.Graph, _ = flags.GetBool("force-download")
	opts.Force.Stats, _ = flags.GetBool("force-analysis")
	opts.Force.Boundaries, _ = flags.GetBool("force-boundaries")

	// The config file decides the network type unless the flag is given.
	if flags.Changed("network-type") {
		opts.NetworkType, _ = flags.GetString("network-type")
	}

	return c.app.Analyze(cmd.Context(), opts)
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
