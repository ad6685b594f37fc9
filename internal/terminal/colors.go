package terminal

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f38ba8"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e2af"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#cba6f7"))
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa"))
)

const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠"
	InfoIcon    = "•"
)

// Green returns text in success color
func Green(text string) string {
	return successStyle.Render(text)
}

// Red returns text in bold error color
func Red(text string) string {
	return errorStyle.Render(text)
}

// Yellow returns text in warning color
func Yellow(text string) string {
	return warningStyle.Render(text)
}

// Dim returns text in dim gray color
func Dim(text string) string {
	return dimStyle.Render(text)
}

// Title returns text as a header
func Title(text string) string {
	return titleStyle.Render(text)
}

// Path returns text in path color
func Path(text string) string {
	return pathStyle.Render(text)
}

// Success prints a success line
func Success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", Green(SuccessIcon), fmt.Sprintf(format, args...))
}

// Failure prints an error line
func Failure(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", Red(ErrorIcon), fmt.Sprintf(format, args...))
}

// Warning prints a warning line
func Warning(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s  %s\n", Yellow(WarningIcon), Yellow("Warning: "+fmt.Sprintf(format, args...)))
}

// Info prints an informational line
func Info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", Dim(InfoIcon), fmt.Sprintf(format, args...))
}
