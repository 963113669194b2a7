package xrm

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// DatabaseFromFile reads a resource file and constructs a database
// from it, resolving #include directives recursively.
func DatabaseFromFile(path string) (*Database, error) {
	db := NewDatabase()
	if err := db.LoadFile(path); err != nil {
		return nil, err
	}
	return db, nil
}

// LoadFile loads a resource file into the database. Include directives
// are resolved relative to the directory of the including file; a file
// already on the include stack is skipped to break cycles. Unreadable
// include targets are skipped like any other bad line, only the
// top-level file must be readable.
func (db *Database) LoadFile(path string) error {
	return db.loadFile(path, make(map[string]struct{}))
}

func (db *Database) loadFile(path string, stack map[string]struct{}) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if _, onStack := stack[abs]; onStack {
		if db.logger != nil {
			db.logger.Warn("breaking include cycle", zap.String("file", path))
		}
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading resource file: %w", err)
	}

	stack[abs] = struct{}{}
	defer delete(stack, abs)

	dir := filepath.Dir(path)
	db.loadText(string(data), func(include string) {
		target := include
		if !filepath.IsAbs(target) {
			target = filepath.Join(dir, target)
		}
		if err := db.loadFile(target, stack); err != nil && db.logger != nil {
			db.logger.Warn("skipping unreadable include",
				zap.String("file", target), zap.Error(err))
		}
	})
	return nil
}

// DatabaseFromDefault constructs the database the way XGetDefault
// does, minus the X server round trip: $HOME/.Xresources if it exists,
// otherwise $HOME/.Xdefaults; then the $XENVIRONMENT file, or
// $HOME/.Xdefaults-$HOSTNAME when XENVIRONMENT is unset, combined with
// override. Callers holding the RESOURCE_MANAGER property blob should
// use DatabaseFromText instead.
func DatabaseFromDefault() *Database {
	db := NewDatabase()

	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}

	if home != "" {
		for _, name := range []string{".Xresources", ".Xdefaults"} {
			path := filepath.Join(home, name)
			if _, err := os.Stat(path); err == nil {
				_ = db.LoadFile(path)
				break
			}
		}
	}

	extra := os.Getenv("XENVIRONMENT")
	if extra == "" && home != "" {
		if host, err := os.Hostname(); err == nil && host != "" {
			extra = filepath.Join(home, ".Xdefaults-"+host)
		}
	}
	if extra != "" {
		if other, err := DatabaseFromFile(extra); err == nil {
			db.Combine(other, true)
		}
	}

	return db
}
