package printer

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/xresource/xrm"
)

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgBlue, color.Bold)
	messageStyle = color.New(color.FgRed, color.Bold)
	nameStyle    = color.New(color.FgYellow)
	valueStyle   = color.New(color.FgGreen, color.Bold)
)

// FormatDiagnostics renders strict-scan diagnostics with the offending
// line underlined.
func FormatDiagnostics(diags []xrm.Diagnostic) string {
	var builder strings.Builder
	for _, d := range diags {
		builder.WriteString(formatDiagnostic(d))
	}
	return builder.String()
}

func formatDiagnostic(d xrm.Diagnostic) string {
	var result strings.Builder

	result.WriteString(errorStyle.Sprint("error: ") + d.Message + "\n")
	location := d.Filename
	if location == "" {
		location = "<input>"
	}
	result.WriteString(lineStyle.Sprint(" --> ") +
		fileStyle.Sprintf("%s:%d", location, d.Line) + "\n")

	lineNumberStr := fmt.Sprintf("%d", d.Line)
	padding := strings.Repeat(" ", len(lineNumberStr))

	result.WriteString(lineStyle.Sprintf(" %s |\n", padding))
	result.WriteString(lineStyle.Sprintf(" %s | ", lineNumberStr))
	result.WriteString(d.Text + "\n")
	result.WriteString(lineStyle.Sprintf(" %s | ", padding))

	width := len(d.Text)
	if width < 1 {
		width = 1
	}
	result.WriteString(messageStyle.Sprint(strings.Repeat("~", width)) + "\n\n")

	return result.String()
}

// FormatResult renders one resolved resource as "name: value".
func FormatResult(name, value string) string {
	return nameStyle.Sprint(name) + ": " + valueStyle.Sprint(value) + "\n"
}

// FormatEntries renders the serialized database with colored
// specifiers.
func FormatEntries(db *xrm.Database) string {
	var builder strings.Builder
	for _, e := range db.Entries() {
		line := e.String()
		if idx := strings.Index(line, ": "); idx >= 0 {
			builder.WriteString(nameStyle.Sprint(line[:idx]))
			builder.WriteString(": ")
			builder.WriteString(line[idx+2:])
		} else {
			builder.WriteString(line)
		}
		builder.WriteString("\n")
	}
	return builder.String()
}
