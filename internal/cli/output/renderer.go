// Package output renders parser results for the CLI in text, JSON or YAML.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/leapstack-labs/baldguard/pkg/parser"
	"golang.org/x/term"
)

// Mode selects the output format.
type Mode string

// Output modes.
const (
	ModeAuto Mode = "auto"
	ModeText Mode = "text"
	ModeJSON Mode = "json"
	ModeYAML Mode = "yaml"
)

// Renderer writes command results to an output and an error stream.
type Renderer struct {
	w      io.Writer
	errW   io.Writer
	mode   Mode
	isTTY  bool
	styles *Styles
	errSty *Styles
}

// Option configures a Renderer.
type Option func(*rendererOptions)

type rendererOptions struct {
	color ColorMode
}

// WithColor sets the color mode. The default is ColorAuto.
func WithColor(mode ColorMode) Option {
	return func(o *rendererOptions) {
		o.color = mode
	}
}

// NewRenderer creates a renderer for w (results) and errW (diagnostics).
func NewRenderer(w, errW io.Writer, mode Mode, opts ...Option) *Renderer {
	o := rendererOptions{color: ColorAuto}
	for _, opt := range opts {
		opt(&o)
	}
	if mode == "" {
		mode = ModeAuto
	}

	tty := isTerminal(w)
	return &Renderer{
		w:      w,
		errW:   errW,
		mode:   mode,
		isTTY:  tty,
		styles: NewStyles(newLipglossRenderer(w, o.color, tty)),
		errSty: NewStyles(newLipglossRenderer(errW, o.color, isTerminal(errW))),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// EffectiveMode resolves ModeAuto: text on a terminal, JSON otherwise.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if r.isTTY {
		return ModeText
	}
	return ModeJSON
}

// IsTTY reports whether the output stream is a terminal.
func (r *Renderer) IsTTY() bool { return r.isTTY }

// Writer returns the output stream.
func (r *Renderer) Writer() io.Writer { return r.w }

// ErrWriter returns the diagnostic stream.
func (r *Renderer) ErrWriter() io.Writer { return r.errW }

// Styles returns the styles bound to the output stream.
func (r *Renderer) Styles() *Styles { return r.styles }

// Println writes a line to the output stream.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.w, a...)
}

// Printf writes formatted text to the output stream.
func (r *Renderer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.w, format, a...)
}

// Success writes a styled success line.
func (r *Renderer) Success(msg string) {
	r.Println(r.styles.Success.Render(msg))
}

// Muted writes a dimmed line.
func (r *Renderer) Muted(msg string) {
	r.Println(r.styles.Muted.Render(msg))
}

// JSON writes v as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Structured writes v in the effective JSON or YAML mode.
func (r *Renderer) Structured(v any) error {
	if r.EffectiveMode() == ModeYAML {
		return r.YAML(v)
	}
	return r.JSON(v)
}

// Error writes err to the diagnostic stream. When err is a *parser.ParseError
// and input is known, the offending line is echoed with a caret under the
// error column.
func (r *Renderer) Error(input string, err error) {
	_, _ = fmt.Fprintln(r.errW, r.FormatError(input, err))
}

// FormatError renders err as Error would, without writing it.
func (r *Renderer) FormatError(input string, err error) string {
	s := r.errSty
	var sb strings.Builder
	sb.WriteString(s.Error.Render("error:"))
	sb.WriteString(" ")
	sb.WriteString(err.Error())

	var pe *parser.ParseError
	if input == "" || !errors.As(err, &pe) || !pe.Pos.IsValid() {
		return sb.String()
	}
	lines := strings.Split(input, "\n")
	if pe.Pos.Line > len(lines) {
		return sb.String()
	}
	line := lines[pe.Pos.Line-1]
	sb.WriteString("\n  ")
	sb.WriteString(line)
	sb.WriteString("\n  ")
	sb.WriteString(strings.Repeat(" ", max(pe.Pos.Column-1, 0)))
	sb.WriteString(s.Caret.Render("^"))
	return sb.String()
}
