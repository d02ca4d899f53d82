// Package render writes demonstration output either as the verbatim legacy
// console text or as a lipgloss-styled variant for terminals.
package render

import (
	"fmt"
	"io"
)

// Style names accepted by New.
const (
	StylePlain  = "plain"
	StyleStyled = "styled"
)

// Renderer receives the output of the demonstration blocks line by line.
// Write failures are sticky: after the first error every call is a no-op and
// Err reports it.
type Renderer interface {
	Banner(title string)
	Heading(text string)
	Line(text string)
	Blank()
	Err() error
}

// New returns the renderer registered under style.
func New(style string, w io.Writer) (Renderer, error) {
	switch style {
	case StylePlain, "":
		return NewPlain(w), nil
	case StyleStyled:
		return NewStyled(w, DefaultTheme()), nil
	default:
		return nil, fmt.Errorf("unknown output style %q (valid: %s, %s)", style, StylePlain, StyleStyled)
	}
}

// lineWriter carries the shared sticky-error write path.
type lineWriter struct {
	w   io.Writer
	err error
}

func (l *lineWriter) writeln(s string) {
	if l.err != nil {
		return
	}
	if _, err := io.WriteString(l.w, s+"\n"); err != nil {
		l.err = fmt.Errorf("write output: %w", err)
	}
}

func (l *lineWriter) Err() error { return l.err }

// Plain reproduces the legacy console text exactly.
type Plain struct {
	lineWriter
}

// NewPlain returns a Plain renderer writing to w.
func NewPlain(w io.Writer) *Plain {
	return &Plain{lineWriter{w: w}}
}

// Banner writes "========== title ==========" followed by an empty line.
func (p *Plain) Banner(title string) {
	p.writeln("========== " + title + " ==========")
	p.writeln("")
}

func (p *Plain) Heading(text string) { p.writeln(text) }
func (p *Plain) Line(text string) { p.writeln(text) }
func (p *Plain) Blank() { p.writeln("") }
