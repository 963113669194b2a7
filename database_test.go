package xrm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseFromText(t *testing.T) {
	db := DatabaseFromText(`
! colors
*foreground: black
xterm*foreground: white
this line is garbage
Xft.dpi: 96
`)
	assert.Equal(t, 3, db.Len(), "bad lines and comments are skipped")
}

func TestDatabaseLoadTextLaterLineWins(t *testing.T) {
	db := DatabaseFromText("Xft.dpi: 96\nXft.dpi: 144\n")
	require.Equal(t, 1, db.Len())
	v, err := db.GetString("Xft.dpi", "")
	require.NoError(t, err)
	assert.Equal(t, "144", v)
}

func TestDatabaseContinuationLines(t *testing.T) {
	db := DatabaseFromText("xterm.title: hello \\\nworld\n")
	require.Equal(t, 1, db.Len())
	v, err := db.GetString("xterm.title", "")
	require.NoError(t, err)
	assert.Equal(t, "hello world", v)
}

func TestDatabasePut(t *testing.T) {
	db := NewDatabase()
	require.NoError(t, db.PutResource("Foo.bar", "1"))
	require.NoError(t, db.PutResource("Foo.baz", "2"))
	require.NoError(t, db.PutResource("Foo.bar", "3"))

	require.Equal(t, 2, db.Len())
	// replacement keeps the original position
	assert.Equal(t, "Foo.bar: 3\nFoo.baz: 2\n", db.String())
}

func TestDatabasePutStructuralEquality(t *testing.T) {
	db := NewDatabase()
	require.NoError(t, db.PutResource("Foo.bar", "1"))
	require.NoError(t, db.PutResource("Foo*bar", "2"))
	require.NoError(t, db.PutResource("Foo.?", "3"))

	// same components, different bindings or kinds: three distinct entries
	assert.Equal(t, 3, db.Len())
}

func TestDatabasePutLine(t *testing.T) {
	db := NewDatabase()
	require.NoError(t, db.PutLine("a.b: c"))
	require.NoError(t, db.PutLine("! a comment"))
	require.NoError(t, db.PutLine(""))
	assert.Error(t, db.PutLine("no separator"))
	assert.Equal(t, 1, db.Len())
}

func TestDatabaseCombine(t *testing.T) {
	tests := []struct {
		name     string
		override bool
		want     string
	}{
		{
			name:     "override replaces in place",
			override: true,
			want:     "a.b: src\nc.d: dst\ne.f: src\n",
		},
		{
			name:     "no override keeps target values",
			override: false,
			want:     "a.b: dst\nc.d: dst\ne.f: src\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := DatabaseFromText("a.b: dst\nc.d: dst\n")
			src := DatabaseFromText("a.b: src\ne.f: src\n")

			dst.Combine(src, tt.override)

			assert.Equal(t, tt.want, dst.String())
			assert.Equal(t, 0, src.Len(), "source is consumed")
		})
	}
}

func TestDatabaseCombineMatchesPutSemantics(t *testing.T) {
	src := DatabaseFromText("a.b: 1\n*c: 2\nd.e: 3\n")
	dst1 := DatabaseFromText("a.b: 0\nx.y: 9\n")
	dst2 := DatabaseFromText("a.b: 0\nx.y: 9\n")

	dst1.Combine(src, true)
	for _, e := range DatabaseFromText("a.b: 1\n*c: 2\nd.e: 3\n").Entries() {
		dst2.Put(e)
	}

	assert.Equal(t, dst2.String(), dst1.String())
}

func TestDatabaseSerializeRoundTrip(t *testing.T) {
	text := "*foreground: black\nxterm*vt100.?.geometry: 80x24\nXft.dpi: 96\n"
	db := DatabaseFromText(text)

	out := db.String()
	assert.Equal(t, text, out)

	reloaded := DatabaseFromText(out)
	require.Equal(t, db.Len(), reloaded.Len())
	for i, e := range db.Entries() {
		other := reloaded.Entries()[i]
		assert.True(t, e.SpecifierEquals(other))
		assert.Equal(t, e.Value, other.Value)
	}
}

func TestDatabaseLeadingSpaceRoundTrip(t *testing.T) {
	db := NewDatabase()
	require.NoError(t, db.PutResource("Foo.bar", " hello"))

	out := db.String()
	assert.Equal(t, "Foo.bar: \\ hello\n", out)

	reloaded := DatabaseFromText(out)
	v, err := reloaded.GetString("Foo.bar", "")
	require.NoError(t, err)
	assert.Equal(t, " hello", v)
}

func TestSplitLogicalLines(t *testing.T) {
	lines := splitLogicalLines("a: 1\r\nb: 2\\\nc\nd: 3\n")
	require.Len(t, lines, 3)
	assert.Equal(t, logicalLine{text: "a: 1", number: 1}, lines[0])
	assert.Equal(t, logicalLine{text: "b: 2c", number: 2}, lines[1])
	assert.Equal(t, logicalLine{text: "d: 3", number: 4}, lines[2])
}

func TestSplitLogicalLinesEscapedBackslash(t *testing.T) {
	// an even run of trailing backslashes is not a continuation
	lines := splitLogicalLines("a: 1\\\\\nb: 2\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "a: 1\\\\", lines[0].text)
}
