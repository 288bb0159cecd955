package commands

import (
	"github.com/leapstack-labs/baldguard/pkg/format"
	"github.com/leapstack-labs/baldguard/pkg/parser"
	"github.com/spf13/cobra"
)

// NewFmtCommand creates the fmt command.
func NewFmtCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt [expression]",
		Short: "Print an expression in canonical form",
		Long: `Parse the input and print it back with canonical spacing and only the
parentheses the precedence rules require. Inputs containing ":=" are
formatted as assignments.`,
		Example: `  baldguard fmt '((a))and(b=1)'
  baldguard fmt 'x:=a'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			return runFmt(NewCommandContext(cmd), input)
		},
	}
}

func runFmt(c *CommandContext, input string) error {
	r := c.Renderer
	out, err := formatSource(input, c.ParserOptions())
	if err != nil {
		r.Error(input, err)
		return ErrReported
	}
	r.Println(out)
	return nil
}

// formatSource parses input as an assignment or an expression and renders it
// canonically.
func formatSource(input string, opts []parser.Option) (string, error) {
	if isAssignment(input) {
		a, err := parser.ParseAssignment(input, opts...)
		if err != nil {
			return "", err
		}
		return format.Assignment(a)
	}
	expr, err := parser.ParseExpression(input, opts...)
	if err != nil {
		return "", err
	}
	return format.Expression(expr)
}
