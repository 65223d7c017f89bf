package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Terminal prints styled status lines. Colors are only emitted when the
// writer is a color-capable terminal.
type Terminal struct {
	out       io.Writer
	label     lipgloss.Style
	value     lipgloss.Style
	success   lipgloss.Style
	warning   lipgloss.Style
	failure   lipgloss.Style
	highlight lipgloss.Style
	dim       lipgloss.Style
}

// NewTerminal creates a Terminal writing to w
func NewTerminal(w io.Writer) *Terminal {
	r := lipgloss.NewRenderer(w)
	return &Terminal{
		out:       w,
		label:     r.NewStyle().Foreground(lipgloss.Color("6")),
		value:     r.NewStyle().Foreground(lipgloss.Color("3")),
		success:   r.NewStyle().Foreground(lipgloss.Color("2")),
		warning:   r.NewStyle().Foreground(lipgloss.Color("3")),
		failure:   r.NewStyle().Foreground(lipgloss.Color("1")),
		highlight: r.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
		dim:       r.NewStyle().Faint(true),
	}
}

// PrintError prints an error message in red
func (t *Terminal) PrintError(msg string, args ...interface{}) {
	fmt.Fprintln(t.out, t.failure.Render(withDetail(msg, args)))
}

// PrintSuccess prints a success message in green
func (t *Terminal) PrintSuccess(msg string) {
	fmt.Fprintln(t.out, t.success.Render(msg))
}

// PrintInfo prints a label/value pair
func (t *Terminal) PrintInfo(label string, value string) {
	fmt.Fprintf(t.out, "%s: %s\n", t.label.Render(label), t.value.Render(value))
}

// PrintWarning prints a warning message in yellow
func (t *Terminal) PrintWarning(msg string, args ...interface{}) {
	fmt.Fprintln(t.out, t.warning.Render(withDetail(msg, args)))
}

// PrintHighlight prints a highlighted message
func (t *Terminal) PrintHighlight(msg string) {
	fmt.Fprintln(t.out, t.highlight.Render(msg))
}

// PrintDim prints a secondary message
func (t *Terminal) PrintDim(msg string) {
	fmt.Fprintln(t.out, t.dim.Render(msg))
}

func withDetail(msg string, args []interface{}) string {
	if len(args) > 0 && fmt.Sprintf("%v", args[0]) != "" {
		return msg + ": " + fmt.Sprintf("%v", args[0])
	}
	return msg
}

var stdout = NewTerminal(os.Stdout)

// PrintError prints an error message to stdout
func PrintError(msg string, args ...interface{}) {
	stdout.PrintError(msg, args...)
}

// PrintSuccess prints a success message to stdout
func PrintSuccess(msg string) {
	stdout.PrintSuccess(msg)
}

// PrintInfo prints a label/value pair to stdout
func PrintInfo(label string, value string) {
	stdout.PrintInfo(label, value)
}

// PrintWarning prints a warning message to stdout
func PrintWarning(msg string, args ...interface{}) {
	stdout.PrintWarning(msg, args...)
}

// PrintHighlight prints a highlighted message to stdout
func PrintHighlight(msg string) {
	stdout.PrintHighlight(msg)
}
