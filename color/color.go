// Package color presents the display units of [znkr.io/cdiff/render] on a terminal.
//
// Styles are [lipgloss] styles. The renderer passed to [NewPrinter] decides which color profile
// is used, e.g., to print plain text:
//
//	r := lipgloss.NewRenderer(os.Stdout)
//	r.SetColorProfile(termenv.Ascii)
//	p := color.NewPrinter(os.Stdout, r, color.LineNumbers(lipgloss.Color("4")))
//
// A renderer without an explicit color profile detects it from the environment, honoring
// NO_COLOR and CLICOLOR_FORCE.
//
// [znkr.io/cdiff/render]: https://pkg.go.dev/znkr.io/cdiff/render
// [lipgloss]: https://pkg.go.dev/github.com/charmbracelet/lipgloss
package color

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"znkr.io/cdiff/render"
)

// Styles holds the style for every kind of display unit that is styled. Line breaks and blank
// units are always written as they are.
type Styles struct {
	Structural     lipgloss.Style
	LineNumber     lipgloss.Style
	Same           lipgloss.Style
	HookLeft       lipgloss.Style
	HookRight      lipgloss.Style
	DifferentLeft  lipgloss.Style
	DifferentRight lipgloss.Style
	Space          lipgloss.Style
}

// DefaultStyles returns the default styles for renderer r.
func DefaultStyles(r *lipgloss.Renderer) Styles {
	// Tabs are part of the compared text and must not be expanded.
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	fg := func(c string) lipgloss.Style { return base.Foreground(lipgloss.Color(c)) }
	return Styles{
		Structural:     fg("7"),
		LineNumber:     fg("3"),
		Same:           fg("15"),
		HookLeft:       fg("1"),
		HookRight:      fg("2"),
		DifferentLeft:  fg("0").Background(lipgloss.Color("1")),
		DifferentRight: fg("0").Background(lipgloss.Color("2")),
		Space:          fg("7"),
	}
}

// A Option makes it possible to configure custom colors in [NewPrinter].
type Option func(*Styles)

// Structure colors the punctuation of the line prefix and the placeholder for missing
// characters.
func Structure(fg lipgloss.TerminalColor) Option {
	return func(s *Styles) {
		s.Structural = s.Structural.Foreground(fg)
	}
}

// LineNumbers colors line numbers.
func LineNumbers(fg lipgloss.TerminalColor) Option {
	return func(s *Styles) {
		s.LineNumber = s.LineNumber.Foreground(fg)
	}
}

// Matches colors characters that are shown without highlighting.
func Matches(fg lipgloss.TerminalColor) Option {
	return func(s *Styles) {
		s.Same = s.Same.Foreground(fg)
	}
}

// Hooks colors the "<" and ">" markers of the line prefix.
func Hooks(left, right lipgloss.TerminalColor) Option {
	return func(s *Styles) {
		s.HookLeft = s.HookLeft.Foreground(left)
		s.HookRight = s.HookRight.Foreground(right)
	}
}

// Differences colors differing characters with foreground fg on the backgrounds left and right.
func Differences(fg, left, right lipgloss.TerminalColor) Option {
	return func(s *Styles) {
		s.DifferentLeft = s.DifferentLeft.Foreground(fg).Background(left)
		s.DifferentRight = s.DifferentRight.Foreground(fg).Background(right)
	}
}

// Printer writes styled display units to a writer.
type Printer struct {
	w      io.Writer
	styles Styles
}

// NewPrinter creates a new printer that writes to w using the styles of renderer r.
func NewPrinter(w io.Writer, r *lipgloss.Renderer, opts ...Option) *Printer {
	styles := DefaultStyles(r)
	for _, opt := range opts {
		opt(&styles)
	}
	return &Printer{w: w, styles: styles}
}

// Print writes units to the underlying writer.
func (p *Printer) Print(units []render.Unit) error {
	_, err := io.WriteString(p.w, p.sprint(units))
	return err
}

// Sprint returns units as styled text using renderer r.
func Sprint(r *lipgloss.Renderer, units []render.Unit, opts ...Option) string {
	return NewPrinter(nil, r, opts...).sprint(units)
}

func (p *Printer) sprint(units []render.Unit) string {
	var sb, run strings.Builder
	// Units of the same kind are styled together to keep the number of escape sequences low.
	for i := 0; i < len(units); {
		kind := units[i].Kind
		if kind == render.Newline || kind == render.Blank {
			sb.WriteString(units[i].Text())
			i++
			continue
		}
		run.Reset()
		for ; i < len(units) && units[i].Kind == kind; i++ {
			run.WriteString(units[i].Text())
		}
		style := p.style(kind)
		sb.WriteString(style.Render(run.String()))
	}
	return sb.String()
}

func (p *Printer) style(kind render.Kind) lipgloss.Style {
	switch kind {
	case render.Structural:
		return p.styles.Structural
	case render.LineNumber:
		return p.styles.LineNumber
	case render.Same:
		return p.styles.Same
	case render.HookLeft:
		return p.styles.HookLeft
	case render.HookRight:
		return p.styles.HookRight
	case render.DifferentLeft:
		return p.styles.DifferentLeft
	case render.DifferentRight:
		return p.styles.DifferentRight
	case render.Space:
		return p.styles.Space
	default:
		panic("never reached")
	}
}
