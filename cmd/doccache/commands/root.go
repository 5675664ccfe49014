// Package commands implements the CLI commands for doccache.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/doccache/internal/app"
	"go.trai.ch/doccache/internal/build"
	"go.trai.ch/doccache/internal/core/domain"
	"go.trai.ch/doccache/internal/core/ports"
)

// logSettings is implemented by the slog adapter.
type logSettings interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

// CLI represents the command line interface for doccache.
type CLI struct {
	app     *app.App
	logger  ports.Logger
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "doccache",
		Short:         "Load and cache JSON documents from resources, files and URLs",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.PersistentFlags().StringP("config", "c", domain.DefaultConfigFile, "Path to configuration file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON")

	c := &CLI{
		app:     a,
		logger:  log,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = c.configure

	rootCmd.AddCommand(c.newLoadCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) configure(cmd *cobra.Command, _ []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonLogs, _ := cmd.Flags().GetBool("json-logs")
	if ls, ok := c.logger.(logSettings); ok {
		ls.SetVerbose(verbose)
		ls.SetJSON(jsonLogs)
	}

	if cmd.Name() == "version" {
		return nil
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	return c.app.Configure(cmd.Context(), configPath)
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

// SetOutput sets the standard and error output writers.
func (c *CLI) SetOutput(out, errOut io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(errOut)
}
