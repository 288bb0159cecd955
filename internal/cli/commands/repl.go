package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/baldguard/internal/cli/output"
	"github.com/leapstack-labs/baldguard/pkg/ast"
	"github.com/leapstack-labs/baldguard/pkg/parser"
	"github.com/leapstack-labs/baldguard/pkg/token"
	"github.com/spf13/cobra"
)

const replPrompt = "baldguard> "

// NewReplCommand creates the repl command.
func NewReplCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive expression shell",
		Long: `Start an interactive shell that parses each line and prints its syntax
tree. Lines containing ":=" are parsed as assignments.

Type .help for the list of dot-commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRepl(cmd)
		},
	}
}

func runRepl(cmd *cobra.Command) error {
	c := NewCommandContext(cmd)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     c.Cfg.HistoryFile,
		AutoComplete:    newReplCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	// Lines go through readline's own writers so output does not tear the prompt.
	c.Renderer = NewRenderer(rl.Stdout(), rl.Stderr(), c.Cfg)
	s := &replSession{ctx: c}

	_, _ = fmt.Fprintln(rl.Stdout(), "baldguard expression REPL")
	_, _ = fmt.Fprintln(rl.Stdout(), "Type .help for commands, .quit to exit")

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if quit := s.handleLine(line); quit {
			return nil
		}
	}
}

// replSession evaluates REPL input lines.
type replSession struct {
	ctx *CommandContext
}

// handleLine processes one line and reports whether the session should end.
func (s *replSession) handleLine(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	if strings.HasPrefix(line, ".") {
		return s.handleDotCommand(line)
	}
	s.parseLine(line)
	return false
}

func (s *replSession) parseLine(line string) {
	r := s.ctx.Renderer
	opts := s.ctx.ParserOptions()

	if isAssignment(line) {
		a, err := parser.ParseAssignment(line, opts...)
		if err != nil {
			r.Error(line, err)
			return
		}
		r.Println(r.Styles().Bold.Render(a.Identifier) + " :=")
		s.show(a.Expression, a)
		return
	}

	expr, err := parser.ParseExpression(line, opts...)
	if err != nil {
		r.Error(line, err)
		return
	}
	s.show(expr, expr)
}

// show prints tree in text mode, or v in the structured mode.
func (s *replSession) show(tree ast.Expression, v any) {
	r := s.ctx.Renderer
	if r.EffectiveMode() == output.ModeText {
		r.Tree(tree)
		return
	}
	if err := r.Structured(v); err != nil {
		r.Error("", err)
	}
}

func (s *replSession) handleDotCommand(line string) bool {
	r := s.ctx.Renderer
	command, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(command) {
	case ".quit", ".exit":
		return true

	case ".help":
		printReplHelp(r.Writer())

	case ".tokens":
		toks, err := parser.Tokenize(rest)
		if err != nil {
			r.Error(rest, err)
			break
		}
		r.Tokens(toks)

	case ".fmt":
		out, err := formatSource(rest, s.ctx.ParserOptions())
		if err != nil {
			r.Error(rest, err)
			break
		}
		r.Println(out)

	case ".ident":
		name, err := parser.ParseIdentifier(rest)
		if err != nil {
			r.Error(rest, err)
			break
		}
		r.Success(name)

	case ".keywords":
		r.Println(strings.Join(token.Keywords(), " "))

	default:
		_, _ = fmt.Fprintf(r.ErrWriter(), "Unknown command: %s (type .help for commands)\n", command)
	}
	return false
}

func printReplHelp(w io.Writer) {
	help := `
Commands:
  .help             Show this help message
  .tokens <expr>    Show the token stream of an expression
  .fmt <expr>       Print an expression in canonical form
  .ident <name>     Check that a name is a valid identifier
  .keywords         List reserved words
  .quit / .exit     Exit the REPL

Tips:
  - Lines containing := are parsed as assignments
  - Use arrow keys to navigate history
  - Tab completion works for keywords and dot-commands
`
	_, _ = fmt.Fprintln(w, help)
}

// newReplCompleter completes dot-commands and reserved words.
func newReplCompleter() *readline.PrefixCompleter {
	items := []readline.PrefixCompleterInterface{
		readline.PcItem(".help"),
		readline.PcItem(".tokens"),
		readline.PcItem(".fmt"),
		readline.PcItem(".ident"),
		readline.PcItem(".keywords"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	}
	for _, kw := range token.Keywords() {
		items = append(items, readline.PcItem(kw))
	}
	return readline.NewPrefixCompleter(items...)
}
