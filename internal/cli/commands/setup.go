package commands

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/baldguard/internal/cli/config"
	"github.com/leapstack-labs/baldguard/internal/cli/output"
	"github.com/leapstack-labs/baldguard/pkg/parser"
	"github.com/leapstack-labs/baldguard/pkg/token"
	"github.com/spf13/cobra"
)

// ErrReported is returned by commands that already wrote their diagnostics.
// The caller should exit non-zero without printing it again.
var ErrReported = errors.New("errors reported")

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the loaded configuration.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(cmd.Context()),
		Renderer: NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg),
	}
}

// NewRenderer creates a renderer honoring the output and color settings of cfg.
func NewRenderer(w, errW io.Writer, cfg *config.Config) *output.Renderer {
	return output.NewRenderer(w, errW, output.Mode(cfg.OutputFormat),
		output.WithColor(output.ColorMode(cfg.Color)))
}

// ParserOptions returns the parser options implied by the configuration.
func (c *CommandContext) ParserOptions() []parser.Option {
	return []parser.Option{parser.WithMaxDepth(c.Cfg.MaxDepth)}
}

// getConfig returns the current configuration, or defaults when none was loaded.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.Default()
}

// readInput joins the positional arguments into one source text. With no
// arguments, or a single "-", the text is read from stdin.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", err
		}
		return strings.TrimRight(string(data), "\r\n"), nil
	}
	return strings.Join(args, " "), nil
}

// isAssignment reports whether input lexes with a ":=" token, so ":=" inside
// a string literal does not count.
func isAssignment(input string) bool {
	toks, err := parser.Tokenize(input)
	if err != nil {
		return false
	}
	for _, tok := range toks {
		if tok.Type == token.ASSIGN {
			return true
		}
	}
	return false
}
