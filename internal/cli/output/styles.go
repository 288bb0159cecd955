package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles used by the renderer.
type Styles struct {
	Error   lipgloss.Style
	Success lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Caret   lipgloss.Style
	Keyword lipgloss.Style
	Path    lipgloss.Style
}

// ColorMode controls whether styled output emits ANSI sequences.
type ColorMode string

// Color modes.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// newLipglossRenderer binds a lipgloss renderer to w with the color profile
// implied by mode. In auto mode, non-terminals get plain text.
func newLipglossRenderer(w io.Writer, mode ColorMode, tty bool) *lipgloss.Renderer {
	lr := lipgloss.NewRenderer(w)
	switch {
	case mode == ColorNever:
		lr.SetColorProfile(termenv.Ascii)
	case mode == ColorAlways:
		lr.SetColorProfile(termenv.ANSI256)
	case !tty:
		lr.SetColorProfile(termenv.Ascii)
	}
	return lr
}

// NewStyles creates the style set for a lipgloss renderer.
func NewStyles(lr *lipgloss.Renderer) *Styles {
	return &Styles{
		Error:   lr.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Success: lr.NewStyle().Foreground(lipgloss.Color("10")),
		Muted:   lr.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:    lr.NewStyle().Bold(true),
		Caret:   lr.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Keyword: lr.NewStyle().Foreground(lipgloss.Color("13")),
		Path:    lr.NewStyle().Foreground(lipgloss.Color("12")).Underline(true),
	}
}
