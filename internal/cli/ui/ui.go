// Package ui holds terminal presentation helpers for tools built on the
// convargs library. Styling is applied only when stderr is a terminal;
// otherwise output degrades to plain text so diagnostics stay greppable in
// pipelines and logs.
package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	sourceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	targetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// Styled reports whether styled output should be produced, i.e. whether
// stderr is attached to a terminal.
func Styled() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// Errorf renders a single-line diagnostic with the distinct error prefix.
func Errorf(format string, a ...any) string {
	prefix := "Error:"
	if Styled() {
		prefix = errorStyle.Render(prefix)
	}
	return prefix + " " + fmt.Sprintf(format, a...)
}

// Summary renders the resolved conversion plan. In directory mode target is
// empty and only the source directory is shown.
func Summary(source, target string) string {
	if Styled() {
		source = sourceStyle.Render(source)
		if target != "" {
			target = targetStyle.Render(target)
		}
	}
	if target == "" {
		return fmt.Sprintf("%s (directory)", source)
	}
	return fmt.Sprintf("%s -> %s", source, target)
}
