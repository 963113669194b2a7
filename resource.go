package xrm

import (
	"strconv"
	"strings"
)

// GetString returns the value of the best matching entry for the fully
// qualified resource name and class. class may be empty; if given, it
// must have the same number of components as name.
func (db *Database) GetString(name, class string) (string, error) {
	if db == nil || len(db.entries) == 0 {
		return "", ErrNotFound
	}

	queryName, err := ParseQuery(name)
	if err != nil {
		return "", err
	}

	// An empty class is a widely used placeholder for not passing one,
	// even though the specification asks for both.
	var queryClass []Component
	if class != "" {
		queryClass, err = ParseQuery(class)
		if err != nil {
			return "", err
		}
		if len(queryClass) != len(queryName) {
			return "", ErrLengthMismatch
		}
	}

	entry, ok := db.match(queryName, queryClass)
	if !ok {
		return "", ErrNotFound
	}
	return entry.Value, nil
}

// GetLong returns the resource value converted to a signed integer.
func (db *Database) GetLong(name, class string) (int64, error) {
	s, err := db.GetString(name, class)
	if err != nil {
		return 0, err
	}
	return ConvertToLong(s)
}

// GetBool returns the resource value converted to a boolean. A missing
// resource yields false together with ErrNotFound.
func (db *Database) GetBool(name, class string) (bool, error) {
	s, err := db.GetString(name, class)
	if err != nil {
		return false, err
	}
	return ConvertToBool(s), nil
}

// ConvertToLong parses a value as a signed base-10 integer. The whole
// string must be consumed.
func ConvertToLong(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// ConvertToBool converts a value to a boolean: a number maps to its
// truthiness, "true"/"on"/"yes" map to true, and everything else,
// including "false"/"off"/"no", maps to false.
func ConvertToBool(s string) bool {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v != 0
	}
	switch strings.ToLower(s) {
	case "true", "on", "yes":
		return true
	}
	return false
}
