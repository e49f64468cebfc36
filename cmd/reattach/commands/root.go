// Package commands implements the CLI commands for reattach.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/reattach/internal/adapters/detector"
	"go.trai.ch/reattach/internal/app"
	"go.trai.ch/reattach/internal/build"
)

// CLI represents the command line interface for reattach.
type CLI struct {
	app     Application
	log     LogSettings
	rootCmd *cobra.Command

	configPath string
	outputMode string
	verbose    bool
	jsonLogs   bool
}

// Application represents the application logic interface.
type Application interface {
	Versions(ctx context.Context, opts app.VersionsOptions) error
	Reconnect(ctx context.Context, opts app.ReconnectOptions) error
}

// LogSettings is implemented by loggers that can be reconfigured from global flags.
type LogSettings interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
	SetColor(enable bool)
}

// New creates a new CLI instance with the given app. log may be nil.
func New(a Application, log LogSettings) *CLI {
	rootCmd := &cobra.Command{
		Use:           "reattach",
		Short:         "Reconnect tests to the results of previous runs",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
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

	c := &CLI{
		app:     a,
		log:     log,
		rootCmd: rootCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", "", "Path to reattach.yaml (default: searched upwards from the working directory)")
	flags.StringVarP(&c.outputMode, "output-mode", "o", "auto", "Output mode: auto, color, or plain")
	flags.BoolVar(&c.verbose, "verbose", false, "Show diagnostic messages")
	flags.BoolVar(&c.jsonLogs, "json-logs", false, "Write log messages as JSON")
	rootCmd.PersistentPreRunE = c.configureLogging

	rootCmd.AddCommand(c.newVersionsCmd())
	rootCmd.AddCommand(c.newReconnectCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// configureLogging applies the global flags to the logger.
func (c *CLI) configureLogging(_ *cobra.Command, _ []string) error {
	mode, err := detector.ParseMode(c.outputMode)
	if err != nil {
		return err
	}
	if c.log == nil {
		return nil
	}
	c.log.SetVerbose(c.verbose)
	c.log.SetJSON(c.jsonLogs)
	c.log.SetColor(detector.Colored(mode))
	return nil
}

func (c *CLI) commonOptions(apps []string, target string) app.CommonOptions {
	return app.CommonOptions{
		ConfigPath: c.configPath,
		Apps:       apps,
		Target:     target,
		OutputMode: c.outputMode,
	}
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
