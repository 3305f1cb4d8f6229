// Package cli provides the customs command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fishbait/customs/i18n"
	"github.com/fishbait/customs/internal/config"
	"github.com/fishbait/customs/source"
)

// Version information set at build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// App represents the CLI application.
type App struct {
	root       *cobra.Command
	stdout     io.Writer
	stderr     io.Writer
	configPath string
}

// New creates a new CLI application.
func New() *App {
	app := &App{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	app.root = &cobra.Command{
		Use:   "customs",
		Short: "Stamp fishbait payloads against their declared shapes",
		Long: `customs checks JSON or YAML payloads of the fishbait poker backend against
the agents that describe them. A payload that conforms is printed in its
stamped form; one that does not is rejected with every issue found.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	app.root.PersistentFlags().StringVarP(&app.configPath, "config", "c", "", "Path to a YAML configuration file")

	app.root.AddCommand(
		app.newVersionCmd(),
		app.newCheckCmd(),
		app.newSchemaCmd(),
		app.newSchemasCmd(),
	)

	return app
}

// WithOutput sets custom output writers.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

// WithInput sets the reader used for the "-" input.
func (a *App) WithInput(stdin io.Reader) *App {
	a.root.SetIn(stdin)
	return a
}

// Execute runs the CLI application.
func (a *App) Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return a.root.ExecuteContext(ctx)
}

// ExecuteWithArgs runs the CLI with specific arguments (useful for testing).
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.Execute(ctx)
}

// loadConfig reads the --config file, or the defaults, and applies the
// process-wide settings (message language, JSON driver).
func (a *App) loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		if cfg, err = config.Load(a.configPath); err != nil {
			return nil, err
		}
	}
	i18n.SetLanguage(cfg.Language)
	if err := source.Select(cfg.Input.JSONDriver); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "customs version %s\n", Version)
			fmt.Fprintf(a.stdout, "  Git commit: %s\n", GitCommit)
			fmt.Fprintf(a.stdout, "  Build date: %s\n", BuildDate)
		},
	}
}
