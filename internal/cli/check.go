package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/felixgeelhaar/bolt/v3"
	j "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/fishbait/customs"
	"github.com/fishbait/customs/internal/logging"
	"github.com/fishbait/customs/source/yaml"
)

// ErrRejected is returned by check when the payload does not conform.
var ErrRejected = errors.New("payload rejected")

type checkOptions struct {
	format     string
	issuesJSON bool
	watch      bool
}

func (a *App) newCheckCmd() *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check <schema> [file|-]",
		Short: "Check a payload against a named schema",
		Long: `Check a JSON or YAML payload against one of the schemas listed by
"customs schemas". The payload is read from the file, or from stdin when the
file is "-" or omitted. YAML is chosen by a .yaml/.yml extension or --format.

Examples:
  # Check a saved game state
  customs check gameState state.json

  # Check a board from stdin with the go-json driver
  echo '[0,null,5]' | customs check board -c customs.yaml

  # Re-check a file every time it is saved
  customs check gameState state.json --watch`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := "-"
			if len(args) == 2 {
				input = args[1]
			}
			if opts.watch {
				return a.watch(cmd, args[0], input, opts)
			}
			return a.check(cmd, args[0], input, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Input format: json or yaml (default: by extension, else json)")
	cmd.Flags().BoolVar(&opts.issuesJSON, "issues-json", false, "Print rejection issues as JSON")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Re-check the file whenever it changes")

	return cmd
}

func (a *App) check(cmd *cobra.Command, name, input string, opts *checkOptions) error {
	sch, ok := schemas[name]
	if !ok {
		return fmt.Errorf("unknown schema %q (see \"customs schemas\")", name)
	}
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Logging(a.stderr))
	format, err := inputFormat(input, opts.format)
	if err != nil {
		return err
	}
	logging.Apply(logger.Debug(), logging.Schema(name), logging.Input(input), logging.Driver(cfg.Input.JSONDriver)).Msg("checking payload")

	data, truncated, err := readInput(cmd.InOrStdin(), input, cfg.Input.MaxBytes)
	if err != nil {
		return err
	}
	var v any
	if truncated {
		err = customs.Issues{{Path: "/", Code: customs.CodeTruncated, Message: "max bytes exceeded"}}
	} else {
		if format == "json" && cfg.Input.DuplicateKeys == "warn" {
			warnDuplicates(logger, name, data)
		}
		var src customs.Source
		if format == "yaml" {
			src = yaml.NewBytes(data)
		} else {
			src = customs.JSONBytes(data)
		}
		v, err = sch.decode(cmd.Context(), customs.WithNumberMode(src, cfg.NumberMode()), cfg.ParseOpt())
	}
	if err != nil {
		iss, ok := customs.AsIssues(err)
		if !ok {
			return err
		}
		logging.Apply(logger.Info(), logging.Schema(name), logging.IssueCount(len(iss))).Msg("payload rejected")
		if err := a.printIssues(iss, opts.issuesJSON); err != nil {
			return err
		}
		return fmt.Errorf("%w: %d issue(s)", ErrRejected, len(iss))
	}

	out, err := j.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode stamped value: %w", err)
	}
	fmt.Fprintln(a.stdout, string(out))
	return nil
}

// watch checks input once, then again on every change until interrupted.
// Rejections are reported on stderr and do not end the loop.
func (a *App) watch(cmd *cobra.Command, name, input string, opts *checkOptions) error {
	if input == "-" {
		return errors.New("--watch needs a file, not stdin")
	}
	if _, ok := schemas[name]; !ok {
		return fmt.Errorf("unknown schema %q (see \"customs schemas\")", name)
	}
	w, err := newFileWatcher(input)
	if err != nil {
		return err
	}
	recheck := func() {
		if err := a.check(cmd, name, input, opts); err != nil {
			fmt.Fprintf(a.stderr, "Error: %v\n", err)
		}
	}
	recheck()
	return w.Run(cmd.Context(), recheck, func(err error) {
		fmt.Fprintf(a.stderr, "watch error: %v\n", err)
	})
}

func warnDuplicates(logger *bolt.Logger, name string, data []byte) {
	dups, err := customs.DetectDuplicateKeys(customs.JSONBytes(data), 0)
	if err != nil {
		// the decode below reports the syntax error
		return
	}
	for _, iss := range dups {
		logging.Apply(logger.Warn(), logging.Schema(name), logging.Issue(iss)).Msg(iss.Message)
	}
}

func (a *App) printIssues(iss customs.Issues, asJSON bool) error {
	if asJSON {
		type issueOut struct {
			Path    string         `json:"path"`
			Code    string         `json:"code"`
			Message string         `json:"message"`
			Hint    string         `json:"hint,omitempty"`
			Params  map[string]any `json:"params,omitempty"`
		}
		out := make([]issueOut, len(iss))
		for i, is := range iss {
			out[i] = issueOut{Path: is.Path, Code: is.Code, Message: is.Message, Hint: is.Hint, Params: is.Params}
		}
		b, err := j.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode issues: %w", err)
		}
		fmt.Fprintln(a.stdout, string(b))
		return nil
	}
	for _, is := range iss {
		line := fmt.Sprintf("%s\t%s\t%s", is.Path, is.Code, is.Message)
		if is.Hint != "" && is.Hint != is.Message {
			line += " (" + is.Hint + ")"
		}
		fmt.Fprintln(a.stdout, line)
	}
	return nil
}

func inputFormat(input, flag string) (string, error) {
	switch strings.ToLower(flag) {
	case "json", "yaml":
		return strings.ToLower(flag), nil
	case "yml":
		return "yaml", nil
	case "":
	default:
		return "", fmt.Errorf("unsupported format %q (want json or yaml)", flag)
	}
	switch strings.ToLower(filepath.Ext(input)) {
	case ".yaml", ".yml":
		return "yaml", nil
	default:
		return "json", nil
	}
}

// readInput reports truncated when maxBytes is set and the input exceeds it.
func readInput(stdin io.Reader, input string, maxBytes int64) ([]byte, bool, error) {
	var r io.Reader = stdin
	if input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return nil, false, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	if maxBytes > 0 {
		r = io.LimitReader(r, maxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read input: %w", err)
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, true, nil
	}
	return data, false, nil
}
