package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	j "github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

type schemaOptions struct {
	outputPath string
}

func (a *App) newSchemaCmd() *cobra.Command {
	opts := &schemaOptions{}

	cmd := &cobra.Command{
		Use:   "schema <name>",
		Short: "Print the JSON Schema of a named schema",
		Long: `Print the JSON Schema an agent projects itself into. The schema describes
the wire form the agent accepts (snake_case keys, ISO card ids), not the
stamped form.

Examples:
  # Print to stdout
  customs schema gameState

  # Write to a file
  customs schema board -o board.schema.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.exportSchema(args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Output file path (default: stdout)")

	return cmd
}

func (a *App) exportSchema(name string, opts *schemaOptions) error {
	sch, ok := schemas[name]
	if !ok {
		return fmt.Errorf("unknown schema %q (see \"customs schemas\")", name)
	}
	s, err := sch.inspector.JSONSchema()
	if err != nil {
		return fmt.Errorf("failed to generate schema: %w", err)
	}
	b, err := j.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode schema: %w", err)
	}

	if opts.outputPath == "" {
		_, _ = fmt.Fprintln(a.stdout, string(b))
		return nil
	}
	if err := os.WriteFile(opts.outputPath, append(b, '\n'), 0600); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	_, _ = fmt.Fprintf(a.stdout, "Schema exported to %s\n", opts.outputPath)
	return nil
}

func (a *App) newSchemasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schemas",
		Short: "List the schema names check and schema accept",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			for _, n := range schemaNames() {
				fmt.Fprintf(w, "%s\t%s\n", n, schemas[n].summary)
			}
			return w.Flush()
		},
	}
}
