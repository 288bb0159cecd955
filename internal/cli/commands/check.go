package commands

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/leapstack-labs/baldguard/internal/cli/output"
	"github.com/leapstack-labs/baldguard/pkg/parser"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Assign bool // Parse every line as an assignment
	Watch  bool // Re-check files when they change
}

// checkDiagnostic is one parse failure in a checked file.
type checkDiagnostic struct {
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
	Kind    string `json:"kind" yaml:"kind"`
	Message string `json:"message" yaml:"message"`
	Source  string `json:"source" yaml:"source"`
}

// checkFileResult holds the outcome of checking one file.
type checkFileResult struct {
	Path        string            `json:"path" yaml:"path"`
	Checked     int               `json:"checked" yaml:"checked"`
	Diagnostics []checkDiagnostic `json:"diagnostics" yaml:"diagnostics"`
}

// checkSummary aggregates the results of a run.
type checkSummary struct {
	Files       int `json:"files" yaml:"files"`
	Expressions int `json:"expressions" yaml:"expressions"`
	Errors      int `json:"errors" yaml:"errors"`
}

type checkOutput struct {
	Summary checkSummary      `json:"summary" yaml:"summary"`
	Files   []checkFileResult `json:"files" yaml:"files"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Parse every rule in one or more files",
		Long: `Parse each line of the given files as a rule expression and report the
lines that fail. Blank lines and lines starting with "#" are skipped.

Files are checked concurrently. With --watch the files are re-checked
whenever they change until interrupted.`,
		Example: `  # Check a rules file
  baldguard check rules.txt

  # Check assignment files and keep watching them
  baldguard check --assign --watch filters/*.rules`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Assign, "assign", false, "Parse lines as assignments (name := expression)")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-check files when they change")

	return cmd
}

func runCheck(cmd *cobra.Command, paths []string, opts *CheckOptions) error {
	c := NewCommandContext(cmd)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	results, err := checkFiles(ctx, c, paths, opts.Assign)
	if err != nil {
		return err
	}
	failed := renderCheckResults(c.Renderer, results)

	if opts.Watch {
		return watchFiles(ctx, c, paths, opts.Assign)
	}
	if failed {
		return ErrReported
	}
	return nil
}

// checkFiles checks paths concurrently. Results are returned in argument order.
func checkFiles(ctx context.Context, c *CommandContext, paths []string, assign bool) ([]checkFileResult, error) {
	results := make([]checkFileResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := checkFile(c, path, assign)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func checkFile(c *CommandContext, path string, assign bool) (checkFileResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return checkFileResult{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	c.Logger.Debug("checking file", "path", path, "bytes", len(data))

	res := checkSource(path, data, assign, c.ParserOptions())
	c.Logger.Debug("checked file", "path", path, "expressions", res.Checked, "errors", len(res.Diagnostics))
	return res, nil
}

// checkSource parses each rule line of data.
func checkSource(path string, data []byte, assign bool, opts []parser.Option) checkFileResult {
	res := checkFileResult{Path: path, Diagnostics: []checkDiagnostic{}}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		res.Checked++
		var err error
		if assign {
			_, err = parser.ParseAssignment(line, opts...)
		} else {
			_, err = parser.ParseExpression(line, opts...)
		}
		if err != nil {
			res.Diagnostics = append(res.Diagnostics, newCheckDiagnostic(lineNo, line, err))
		}
	}
	return res
}

func newCheckDiagnostic(lineNo int, line string, err error) checkDiagnostic {
	d := checkDiagnostic{Line: lineNo, Source: line, Message: err.Error()}
	var pe *parser.ParseError
	if errors.As(err, &pe) {
		d.Column = pe.Pos.Column
		d.Kind = pe.Kind.String()
		d.Message = pe.Message
	}
	return d
}

// renderCheckResults writes the results and reports whether any line failed.
func renderCheckResults(r *output.Renderer, results []checkFileResult) bool {
	summary := checkSummary{Files: len(results)}
	for _, res := range results {
		summary.Expressions += res.Checked
		summary.Errors += len(res.Diagnostics)
	}

	if r.EffectiveMode() != output.ModeText {
		_ = r.Structured(checkOutput{Summary: summary, Files: results})
		return summary.Errors > 0
	}

	for _, res := range results {
		if len(res.Diagnostics) == 0 {
			continue
		}
		r.Println(r.Styles().Path.Render(res.Path))
		for _, d := range res.Diagnostics {
			loc := fmt.Sprintf("%d:%d", d.Line, d.Column)
			r.Printf("  %s  %s\n", r.Styles().Muted.Render(fmt.Sprintf("%-7s", loc)), d.Message)
			r.Printf("    %s\n", d.Source)
			if d.Column > 0 {
				r.Printf("    %s%s\n", strings.Repeat(" ", d.Column-1), r.Styles().Caret.Render("^"))
			}
		}
		r.Println("")
	}

	msg := fmt.Sprintf("Checked %d expressions in %d files", summary.Expressions, summary.Files)
	if summary.Errors == 0 {
		r.Success(msg + ", no errors")
		return false
	}
	r.Println(r.Styles().Error.Render(fmt.Sprintf("%s, %d errors", msg, summary.Errors)))
	return true
}
