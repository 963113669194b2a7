package xrm

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDatabaseFromFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "app.ad", "app.title: hello\n! comment\napp.width: 80\n")

	db, err := DatabaseFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, db.Len())
}

func TestDatabaseFromFileMissing(t *testing.T) {
	_, err := DatabaseFromFile(filepath.Join(t.TempDir(), "nope.ad"))
	assert.Error(t, err)
}

func TestDatabaseFromFileInclude(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "colors"), 0o755))
	writeFile(t, filepath.Join(dir, "colors"), "dark.ad", "*background: black\n")
	main := writeFile(t, dir, "main.ad",
		"#include \"colors/dark.ad\"\napp.title: hi\n")

	db, err := DatabaseFromFile(main)
	require.NoError(t, err)
	assert.Equal(t, 2, db.Len())

	v, err := db.GetString("app.background", "")
	require.NoError(t, err)
	assert.Equal(t, "black", v)
}

func TestDatabaseFromFileIncludeOverride(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.ad", "app.color: base\n")
	main := writeFile(t, dir, "main.ad",
		"app.color: early\n#include \"base.ad\"\napp.other: x\n")

	db, err := DatabaseFromFile(main)
	require.NoError(t, err)

	// the included file is loaded at the point of the directive
	v, err := db.GetString("app.color", "")
	require.NoError(t, err)
	assert.Equal(t, "base", v)
}

func TestDatabaseFromFileIncludeCycle(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.ad", "#include \"b.ad\"\nfrom.a: 1\n")
	pathA := filepath.Join(dir, "a.ad")
	writeFile(t, dir, "b.ad", "#include \"a.ad\"\nfrom.b: 2\n")

	db, err := DatabaseFromFile(pathA)
	require.NoError(t, err)
	assert.Equal(t, 2, db.Len(), "cycle is broken, both files load once")
}

func TestDatabaseFromFileMissingInclude(t *testing.T) {
	dir := t.TempDir()
	main := writeFile(t, dir, "main.ad",
		"#include \"gone.ad\"\napp.title: hi\n")

	db, err := DatabaseFromFile(main)
	require.NoError(t, err, "unreadable includes are skipped")
	assert.Equal(t, 1, db.Len())
}
