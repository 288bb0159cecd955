package commands

import (
	"github.com/leapstack-labs/baldguard/internal/cli/output"
	"github.com/leapstack-labs/baldguard/pkg/parser"
	"github.com/spf13/cobra"
)

// tokenInfo is the structured form of a token.
type tokenInfo struct {
	Type    string `json:"type" yaml:"type"`
	Literal string `json:"literal" yaml:"literal"`
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
	Offset  int    `json:"offset" yaml:"offset"`
}

// NewTokensCommand creates the tokens command.
func NewTokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "tokens [expression]",
		Aliases: []string{"lex"},
		Short:   "Print the token stream of an expression",
		Long: `Run only the lexer over the input and print every token with its
type, raw text and position.`,
		Example: `  baldguard tokens 'a -1 = -1'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			return runTokens(NewCommandContext(cmd), input)
		},
	}
}

func runTokens(c *CommandContext, input string) error {
	r := c.Renderer
	toks, err := parser.Tokenize(input)
	if err != nil {
		r.Error(input, err)
		return ErrReported
	}
	c.Logger.Debug("tokenized input", "tokens", len(toks))

	if r.EffectiveMode() == output.ModeText {
		r.Tokens(toks)
		return nil
	}
	infos := make([]tokenInfo, len(toks))
	for i, tok := range toks {
		infos[i] = tokenInfo{
			Type:    tok.Type.String(),
			Literal: tok.Literal,
			Line:    tok.Pos.Line,
			Column:  tok.Pos.Column,
			Offset:  tok.Pos.Offset,
		}
	}
	return r.Structured(infos)
}
