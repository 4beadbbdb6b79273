// Package commands implements the CLI commands for tsload.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/tsload/internal/adapters/detector"
	"go.trai.ch/tsload/internal/app"
	"go.trai.ch/tsload/internal/build"
)

// CLI represents the command line interface for tsload.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Emit(ctx context.Context, files []string, opts app.EmitOptions) error
	Watch(ctx context.Context, opts app.Options) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "tsload",
		Short:         "Compile TypeScript through a long-lived compiler session",
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

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "Path or file name of the tsconfig file")
	flags.String("instance", "", "Name of the compiler session")
	flags.Bool("transpile-only", false, "Skip type information and emit each file on its own")
	flags.Bool("watch-api", false, "Use the incremental watch program")
	flags.Bool("json", false, "Log in JSON format")
	flags.String("color", "auto", "Colored output: auto, always, or never")
	flags.Bool("trace", false, "Log the duration of every compiler operation")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newEmitCmd())
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// options reads the persistent flags shared by every command.
func options(cmd *cobra.Command) app.Options {
	config, _ := cmd.Flags().GetString("config")
	instance, _ := cmd.Flags().GetString("instance")
	transpileOnly, _ := cmd.Flags().GetBool("transpile-only")
	watchAPI, _ := cmd.Flags().GetBool("watch-api")
	jsonLogs, _ := cmd.Flags().GetBool("json")
	color, _ := cmd.Flags().GetString("color")
	trace, _ := cmd.Flags().GetBool("trace")

	return app.Options{
		ConfigFile:           config,
		Instance:             instance,
		TranspileOnly:        transpileOnly,
		ExperimentalWatchAPI: watchAPI,
		Color:                detector.ParseColorMode(color),
		JSON:                 jsonLogs,
		Trace:                trace,
	}
}
