package xrm

import "os"

// Diagnostic describes one malformed logical line found while scanning
// resource text in strict mode.
type Diagnostic struct {
	Filename string
	Line     int    // physical line the logical line started on, 1-based
	Text     string // the offending logical line
	Message  string
}

// ScanDiagnostics parses a blob without building a database and
// returns one diagnostic per malformed logical line. Bulk loading
// stays lenient; this is the opt-in strict view of the same text.
func ScanDiagnostics(text string) []Diagnostic {
	var diags []Diagnostic
	for _, ll := range splitLogicalLines(text) {
		if _, err := ParseLine(ll.text); err != nil {
			diags = append(diags, Diagnostic{
				Line:    ll.number,
				Text:    ll.text,
				Message: err.Error(),
			})
		}
	}
	return diags
}

// ScanFile runs ScanDiagnostics over the contents of a file. Include
// directives are validated syntactically but not followed.
func ScanFile(path string) ([]Diagnostic, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	diags := ScanDiagnostics(string(data))
	for i := range diags {
		diags[i].Filename = path
	}
	return diags, nil
}
