package commands

import (
	"github.com/leapstack-labs/baldguard/internal/cli/output"
	"github.com/leapstack-labs/baldguard/pkg/ast"
	"github.com/leapstack-labs/baldguard/pkg/parser"
	"github.com/spf13/cobra"
)

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [expression]",
		Short: "Parse an expression and print its syntax tree",
		Long: `Parse a rule expression and print the resulting syntax tree.

The expression is taken from the arguments, or from stdin when none are given.

Output adapts to environment:
  - Terminal: indented tree
  - Piped/Scripted: JSON
  - --output yaml: YAML`,
		Example: `  baldguard parse 'not spam and score = limit'
  baldguard parse -o json 'subject matches "*invoice*"'
  echo 'a = b' | baldguard parse
  baldguard parse -- -5 + a`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			return runParse(NewCommandContext(cmd), input)
		},
	}
}

func runParse(c *CommandContext, input string) error {
	r := c.Renderer
	expr, err := parser.ParseExpression(input, c.ParserOptions()...)
	if err != nil {
		r.Error(input, err)
		return ErrReported
	}
	c.Logger.Debug("parsed expression", "depth", ast.Depth(expr), "identifiers", ast.Identifiers(expr))

	if r.EffectiveMode() == output.ModeText {
		r.Tree(expr)
		return nil
	}
	return r.Structured(expr)
}

// NewAssignCommand creates the assign command.
func NewAssignCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "assign [assignment]",
		Short: "Parse an assignment and print its syntax tree",
		Long: `Parse an assignment of the form "name := expression" and print the
bound name and the syntax tree of the expression.`,
		Example: `  baldguard assign 'is_spam := text matches "buy*" or score = 10'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			return runAssign(NewCommandContext(cmd), input)
		},
	}
}

func runAssign(c *CommandContext, input string) error {
	r := c.Renderer
	a, err := parser.ParseAssignment(input, c.ParserOptions()...)
	if err != nil {
		r.Error(input, err)
		return ErrReported
	}
	c.Logger.Debug("parsed assignment", "identifier", a.Identifier, "depth", ast.Depth(a.Expression))

	if r.EffectiveMode() == output.ModeText {
		r.Println(r.Styles().Bold.Render(a.Identifier) + " :=")
		r.Tree(a.Expression)
		return nil
	}
	return r.Structured(a)
}

// NewIdentCommand creates the ident command.
func NewIdentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ident <name>",
		Short: "Check that a name is a valid identifier",
		Long: `Check that a name is a valid identifier, i.e. it matches
[A-Za-z_][A-Za-z0-9_]* and is not a reserved word.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewCommandContext(cmd)
			name, err := parser.ParseIdentifier(args[0])
			if err != nil {
				c.Renderer.Error(args[0], err)
				return ErrReported
			}
			c.Renderer.Success(name)
			return nil
		},
	}
}
