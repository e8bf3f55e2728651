package sparse

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	in := strings.Join([]string{
		"rows=3",
		"cols=4",
		"",
		"( 0, 1, 5 )",
		"  (2,3,-7)",
		"\t",
	}, "\n")

	m, err := Decode(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 4, m.Cols())
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, int64(5), m.Get(0, 1))
	assert.Equal(t, int64(-7), m.Get(2, 3))
}

func TestDecodeDuplicateKeyKeepsLast(t *testing.T) {
	in := "rows=1\ncols=1\n(0,0,3)\n(0,0,9)\n"
	m, err := Decode(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, int64(9), m.Get(0, 0))
	assert.Equal(t, 1, m.Len())
}

func TestDecodeZeroEntryIsDropped(t *testing.T) {
	in := "rows=2\ncols=2\n(0,0,0)\n"
	m, err := Decode(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty input", ""},
		{"header only", "rows=2\n"},
		{"misordered header", "cols=3\nrows=2\n"},
		{"missing header", "(0,0,1)\n(0,1,2)\n"},
		{"non-integer row count", "rows=x\ncols=2\n"},
		{"decimal row count", "rows=2.0\ncols=2\n"},
		{"unparenthesized entry", "rows=2\ncols=2\n0,0,1\n"},
		{"wrong arity", "rows=2\ncols=2\n(0,0)\n"},
		{"too many fields", "rows=2\ncols=2\n(0,0,1,2)\n"},
		{"decimal value", "rows=2\ncols=2\n(1, 1, 3.5)\n"},
		{"exponent value", "rows=2\ncols=2\n(1, 1, 1e3)\n"},
		{"empty field", "rows=2\ncols=2\n(1,,1)\n"},
		{"bare minus", "rows=2\ncols=2\n(1,1,-)\n"},
		{"entry out of range", "rows=2\ncols=2\n(5,0,1)\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.in))
			require.ErrorIs(t, err, ErrBadFormat)
		})
	}
}

func TestDecodeOutOfRangeEntryWrapsIndexError(t *testing.T) {
	_, err := Decode(strings.NewReader("rows=2\ncols=2\n(0,7,1)\n"))
	require.ErrorIs(t, err, ErrBadFormat)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 3, fe.Line)
}

func TestEncodeOrdering(t *testing.T) {
	m := New(3, 3)
	for _, e := range []Entry{{1, 0, 5}, {0, 2, 3}, {0, 0, 1}} {
		require.NoError(t, m.Set(e.Row, e.Col, e.Value))
	}

	var b strings.Builder
	require.NoError(t, Encode(m, &b))

	want := "rows=3\ncols=3\n(0, 0, 1)\n(0, 2, 3)\n(1, 0, 5)\n"
	assert.Equal(t, want, b.String())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	m := New(4, 5)
	for _, e := range []Entry{{0, 0, 1}, {0, 4, -3}, {2, 1, 42}, {3, 3, 7}} {
		require.NoError(t, m.Set(e.Row, e.Col, e.Value))
	}

	path := filepath.Join(t.TempDir(), "m.txt")
	require.NoError(t, Save(m, path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.True(t, got.Equal(m))
}

func TestLoadReportsPathAndLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("rows=2\ncols=2\n(1, 2, 3.5)\n"), 0o644))

	_, err := Load(path)
	require.ErrorIs(t, err, ErrBadFormat)

	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, path, fe.Path)
	assert.Equal(t, 3, fe.Line)
	assert.Contains(t, err.Error(), path)
}

func TestLoadMisorderedHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swapped.txt")
	require.NoError(t, os.WriteFile(path, []byte("cols=3\nrows=2\n"), 0o644))

	_, err := Load(path)
	require.ErrorIs(t, err, ErrBadFormat)
}

func TestLoadMissingFileIsNotFormatError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.False(t, errors.Is(err, ErrBadFormat))
}

// Negative dimension headers parse as integers, so the header itself is
// accepted; the first entry then fails bounds and the load is rejected.
func TestLoadNegativeDimensions(t *testing.T) {
	_, err := Decode(strings.NewReader("rows=-2\ncols=2\n(0,0,1)\n"))
	require.ErrorIs(t, err, ErrBadFormat)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	// With no entries there is nothing to bounds-check.
	m, err := Decode(strings.NewReader("rows=-2\ncols=2\n"))
	require.NoError(t, err)
	assert.Equal(t, -2, m.Rows())
}
