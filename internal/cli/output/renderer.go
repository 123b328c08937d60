// Package output renders command results for terminals and machines.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// OutputMode selects the output format.
type OutputMode string

// Output modes.
const (
	ModeAuto OutputMode = "auto"
	ModeText OutputMode = "text"
	ModeJSON OutputMode = "json"
)

// Mode converts a flag value into an OutputMode. Unknown values mean auto.
func Mode(s string) OutputMode {
	switch OutputMode(s) {
	case ModeText, ModeJSON:
		return OutputMode(s)
	default:
		return ModeAuto
	}
}

// ColorMode is the value of --colors.
type ColorMode string

// Color modes.
const (
	ColorAuto  ColorMode = "auto"
	ColorOff   ColorMode = "off"
	ColorForce ColorMode = "force"
)

// ParseColorMode parses a --colors value.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(s) {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorOff, ColorForce:
		return ColorMode(s), nil
	default:
		return "", fmt.Errorf("invalid value %q for --colors: expected auto, off or force", s)
	}
}

// Styles holds the lipgloss styles of a renderer.
type Styles struct {
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Info     lipgloss.Style
	Hint     lipgloss.Style
	Success  lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style
	Path     lipgloss.Style
	Category lipgloss.Style
	DiffAdd  lipgloss.Style
	DiffDel  lipgloss.Style
	DiffHunk lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Error:    r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning:  r.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Info:     r.NewStyle().Foreground(lipgloss.Color("12")),
		Hint:     r.NewStyle().Foreground(lipgloss.Color("8")),
		Success:  r.NewStyle().Foreground(lipgloss.Color("10")),
		Muted:    r.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:     r.NewStyle().Bold(true),
		Path:     r.NewStyle().Bold(true).Underline(true),
		Category: r.NewStyle().Foreground(lipgloss.Color("13")),
		DiffAdd:  r.NewStyle().Foreground(lipgloss.Color("10")),
		DiffDel:  r.NewStyle().Foreground(lipgloss.Color("9")),
		DiffHunk: r.NewStyle().Foreground(lipgloss.Color("14")),
	}
}

// Renderer writes styled output. Human-readable output goes to the error
// stream, machine-readable output to the output stream.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   OutputMode
	styles Styles
}

// NewRenderer creates a renderer. Colors are used when colors is force, or
// when it is auto and errOut is a terminal.
func NewRenderer(out, errOut io.Writer, mode OutputMode, colors ColorMode) *Renderer {
	tty := false
	if f, ok := errOut.(*os.File); ok {
		tty = term.IsTerminal(int(f.Fd()))
	}
	switch colors {
	case ColorForce:
		tty = true
	case ColorOff:
		tty = false
	}
	return NewRendererWithTTY(out, errOut, tty, mode)
}

// NewRendererWithTTY creates a renderer with an explicit color decision.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode OutputMode) *Renderer {
	lr := lipgloss.NewRenderer(errOut)
	if isTTY {
		lr.SetColorProfile(termenv.ANSI256)
	} else {
		lr.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		styles: newStyles(lr),
	}
}

// Styles returns the renderer styles.
func (r *Renderer) Styles() Styles {
	return r.styles
}

// EffectiveMode resolves ModeAuto.
func (r *Renderer) EffectiveMode() OutputMode {
	if r.mode == ModeJSON {
		return ModeJSON
	}
	return ModeText
}

// Writer returns the output stream.
func (r *Renderer) Writer() io.Writer {
	return r.out
}

// ErrWriter returns the stream for human-readable output.
func (r *Renderer) ErrWriter() io.Writer {
	return r.errOut
}

// Println writes a line to the output stream.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}

// Printf writes formatted text to the output stream.
func (r *Renderer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.out, format, a...)
}

// Eprintf writes formatted text to the error stream.
func (r *Renderer) Eprintf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.errOut, format, a...)
}

// JSON writes v as indented JSON to the output stream.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
