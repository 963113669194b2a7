package xrm

import (
	"strings"

	"go.uber.org/zap"
)

// Database is an ordered collection of entries. Insertion order is
// preserved across all mutations; replacing a value keeps the entry at
// its original position.
//
// A Database is not safe for concurrent mutation; callers sharing one
// across goroutines must serialize writes externally.
type Database struct {
	entries []*Entry
	logger  *zap.Logger
}

// NewDatabase creates an empty database.
func NewDatabase() *Database {
	return &Database{}
}

// DatabaseFromText parses a multi-line resource blob. Malformed lines
// are skipped so that a single bad line does not invalidate the rest;
// include directives are not resolved here.
func DatabaseFromText(text string) *Database {
	db := NewDatabase()
	db.LoadText(text)
	return db
}

// SetLogger attaches a logger used to report skipped lines during bulk
// loads. A nil logger disables reporting.
func (db *Database) SetLogger(logger *zap.Logger) {
	db.logger = logger
}

// Len returns the number of entries.
func (db *Database) Len() int {
	return len(db.entries)
}

// Entries returns the entries in insertion order. The slice is shared
// with the database and must not be mutated.
func (db *Database) Entries() []*Entry {
	return db.entries
}

// LoadText parses text and puts every successfully parsed entry into
// the database. Parse failures on individual lines are swallowed, and
// include directives are ignored; use DatabaseFromFile when includes
// must be resolved.
func (db *Database) LoadText(text string) {
	db.loadText(text, nil)
}

func (db *Database) loadText(text string, include func(path string)) {
	for _, ll := range splitLogicalLines(text) {
		line, err := ParseLine(ll.text)
		if err != nil {
			if db.logger != nil {
				db.logger.Debug("skipping malformed resource line",
					zap.Int("line", ll.number), zap.Error(err))
			}
			continue
		}
		switch line.Kind {
		case LineEntry:
			db.Put(line.Entry)
		case LineInclude:
			if include != nil {
				include(line.Include)
			}
		}
	}
}

// Put inserts the entry, or replaces the value of an existing entry
// with the structurally identical specifier.
func (db *Database) Put(e *Entry) {
	for _, existing := range db.entries {
		if existing.SpecifierEquals(e) {
			existing.Value = e.Value
			return
		}
	}
	db.entries = append(db.entries, e)
}

// PutLine parses a single resource line and puts the result. Comments,
// blank lines, and include directives are accepted but change nothing.
func (db *Database) PutLine(text string) error {
	line, err := ParseLine(text)
	if err != nil {
		return err
	}
	if line.Kind == LineEntry {
		db.Put(line.Entry)
	}
	return nil
}

// PutResource parses a bare specifier, decodes the value, and puts the
// resulting entry.
func (db *Database) PutResource(specifier, value string) error {
	comps, err := parseSpecifier(specifier)
	if err != nil {
		return err
	}
	db.Put(&Entry{Components: comps, Value: DecodeValue(value)})
	return nil
}

// Combine moves every entry of src into db in order. Entries whose
// specifier already exists in db replace the existing value when
// override is set and are discarded otherwise. src is emptied.
func (db *Database) Combine(src *Database, override bool) {
	for _, e := range src.entries {
		if existing := db.findSpecifier(e); existing != nil {
			if override {
				existing.Value = e.Value
			}
			continue
		}
		db.entries = append(db.entries, e)
	}
	src.entries = nil
}

func (db *Database) findSpecifier(e *Entry) *Entry {
	for _, existing := range db.entries {
		if existing.SpecifierEquals(e) {
			return existing
		}
	}
	return nil
}

// String serializes the database in insertion order, one entry per
// line. Comments and include directives are not preserved.
func (db *Database) String() string {
	var sb strings.Builder
	for _, e := range db.entries {
		sb.WriteString(e.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// logicalLine is one line of resource text after folding continuations,
// tagged with the physical line number it started on.
type logicalLine struct {
	text   string
	number int
}

// splitLogicalLines splits a blob into logical lines. CRLF endings are
// normalized, and a line ending in an unescaped backslash is folded
// into the next one.
func splitLogicalLines(text string) []logicalLine {
	var result []logicalLine
	var pending strings.Builder
	pendingStart := 0

	lines := strings.Split(text, "\n")
	for i, raw := range lines {
		raw = strings.TrimSuffix(raw, "\r")

		if pending.Len() == 0 {
			pendingStart = i + 1
		}

		if hasContinuation(raw) {
			pending.WriteString(raw[:len(raw)-1])
			continue
		}

		pending.WriteString(raw)
		line := pending.String()
		pending.Reset()

		if i == len(lines)-1 && line == "" {
			// trailing newline, not an extra blank line
			continue
		}
		result = append(result, logicalLine{text: line, number: pendingStart})
	}

	if pending.Len() > 0 {
		// continuation on the final line with nothing to join
		result = append(result, logicalLine{text: pending.String(), number: pendingStart})
	}
	return result
}

// hasContinuation reports whether the line ends in an unescaped
// backslash, i.e. an odd-length run of trailing backslashes.
func hasContinuation(line string) bool {
	n := 0
	for i := len(line) - 1; i >= 0 && line[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}
