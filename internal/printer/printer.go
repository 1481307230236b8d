package printer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Style definitions for consistent console output across the application.
var (
	boldStyle    = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // Green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // Red
	badgeStyle   = lipgloss.NewStyle().Bold(true).Reverse(true).Foreground(lipgloss.Color("6"))
)

// SetNoColor disables (or re-enables) ANSI styling for all render functions.
func SetNoColor(disabled bool) {
	if disabled {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
}

// Render functions return styled strings without printing.

// Bold returns text with bold styling.
func Bold(text string) string {
	return boldStyle.Render(text)
}

// Success returns text with success (green) styling.
func Success(text string) string {
	return successStyle.Render(text)
}

// Error returns text with error (red) styling.
func Error(text string) string {
	return errorStyle.Render(text)
}

// PrintError prints text with error (red) styling to stderr.
func PrintError(text string) {
	fmt.Fprintln(os.Stderr, Error(text))
}

// Message is a titled block of body lines.
type Message struct {
	Title     string
	BodyLines []string
}

// Fprint renders msg as a badge-prefixed title followed by indented body
// lines, framed by blank lines.
func Fprint(w io.Writer, msg Message) {
	var sb strings.Builder

	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%s %s\n", badgeStyle.Render(" NX "), Bold(msg.Title))

	if len(msg.BodyLines) > 0 {
		sb.WriteString("\n")
		for _, line := range msg.BodyLines {
			if line == "" {
				sb.WriteString("\n")
				continue
			}
			fmt.Fprintf(&sb, "   %s\n", line)
		}
	}
	sb.WriteString("\n")

	_, _ = io.WriteString(w, sb.String())
}
