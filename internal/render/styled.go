package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the colors used by the styled renderer.
type Theme struct {
	Primary lipgloss.Color
	Accent  lipgloss.Color
}

// DefaultTheme returns the dark-blue / lime palette.
func DefaultTheme() Theme {
	return Theme{
		Primary: lipgloss.Color("#101F38"),
		Accent:  lipgloss.Color("#8BC34A"),
	}
}

// Styled decorates banners and headings with lipgloss. Content lines are
// written unchanged so the data reads the same as the plain output.
type Styled struct {
	lineWriter
	banner  lipgloss.Style
	heading lipgloss.Style
}

// NewStyled returns a Styled renderer writing to w.
func NewStyled(w io.Writer, theme Theme) *Styled {
	return &Styled{
		lineWriter: lineWriter{w: w},
		banner: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Accent).
			Padding(0, 2),
		heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary).
			Underline(true),
	}
}

func (s *Styled) Banner(title string) {
	s.writeln(s.banner.Render(title))
	s.writeln("")
}

func (s *Styled) Heading(text string) { s.writeln(s.heading.Render(text)) }
func (s *Styled) Line(text string) { s.writeln(text) }
func (s *Styled) Blank() { s.writeln("") }
