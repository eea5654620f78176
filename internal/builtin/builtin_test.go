package builtin

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	table := NewTable()

	cases := []struct {
		name  string
		found bool
	}{
		{"cd", true},
		{"help", true},
		{"exit", true},
		{"cls", true},
		{"CD", false},
		{"Exit", false},
		{"cdd", false},
		{"c", false},
		{"ls", false},
		{"", false},
	}

	for _, tc := range cases {
		t.Run("lookup "+tc.name, func(t *testing.T) {
			fn, found := table.Lookup(tc.name)

			assert.Equal(t, tc.found, found)
			assert.Equal(t, tc.found, fn != nil)
		})
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"cd", "help", "exit", "cls"}, NewTable().Names())
}

func TestChangeDirectoryMissingArgument(t *testing.T) {
	before, err := os.Getwd()
	require.NoError(t, err)

	var errW bytes.Buffer
	cont := changeDirectory([]string{"cd"}, io.Discard, &errW)

	after, err := os.Getwd()
	require.NoError(t, err)

	assert.True(t, cont)
	assert.Equal(t, before, after)
	assert.Contains(t, errW.String(), `expected argument to "cd"`)
}

func TestChangeDirectoryNonexistentPath(t *testing.T) {
	before, err := os.Getwd()
	require.NoError(t, err)

	var errW bytes.Buffer
	cont := changeDirectory([]string{"cd", "/nonexistent-path"}, io.Discard, &errW)

	after, err := os.Getwd()
	require.NoError(t, err)

	assert.True(t, cont)
	assert.Equal(t, before, after)
	assert.Contains(t, errW.String(), "qwertysh: cd:")
	assert.Contains(t, errW.String(), "/nonexistent-path")
}

func TestChangeDirectory(t *testing.T) {
	before, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(before) })

	target := t.TempDir()

	var errW bytes.Buffer
	cont := changeDirectory([]string{"cd", target}, io.Discard, &errW)

	after, err := os.Getwd()
	require.NoError(t, err)

	assert.True(t, cont)
	assert.Empty(t, errW.String())

	// The temp dir may sit behind a symlink (e.g. /tmp on darwin), so
	// compare resolved paths.
	resolved, err := filepath.EvalSymlinks(target)
	require.NoError(t, err)
	assert.Equal(t, resolved, after)
}

func TestHelp(t *testing.T) {
	table := NewTable()

	var out bytes.Buffer
	fn, found := table.Lookup("help")
	require.True(t, found)

	cont := fn([]string{"help"}, &out, io.Discard)

	assert.True(t, cont)
	for _, name := range table.Names() {
		assert.Contains(t, out.String(), "  "+name+"\n")
	}

	// Names appear in declaration order.
	banner := out.String()
	assert.Less(t, strings.Index(banner, "  cd\n"), strings.Index(banner, "  help\n"))
	assert.Less(t, strings.Index(banner, "  help\n"), strings.Index(banner, "  exit\n"))
	assert.Less(t, strings.Index(banner, "  exit\n"), strings.Index(banner, "  cls\n"))
}

func TestExit(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"no arguments", []string{"exit"}},
		{"arguments ignored", []string{"exit", "1", "now"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, exit(tc.args, io.Discard, io.Discard))
		})
	}
}

func TestClear(t *testing.T) {
	var out bytes.Buffer
	cont := clear([]string{"cls"}, &out, io.Discard)

	assert.True(t, cont)
	assert.Equal(t, "\x1b[2J", out.String())
}
