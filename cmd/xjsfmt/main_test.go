package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.birchlake.dev/xjs/format"
	"go.birchlake.dev/xjs/stringtest"
)

// defaultConfig builds a format.Config carrying the flag defaults, the way
// main's flag registration would.
func defaultConfig(t *testing.T) *format.Config {
	t.Helper()

	cfg := format.NewConfig()
	cfg.RegisterFlags(pflag.NewFlagSet("test", pflag.ContinueOnError))

	return cfg
}

func TestProcessInput_WriteMode_ReformatsInPlace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.xjs")

	src := "{  a:1,   b : 2 }"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	err := processInput(defaultConfig(t), path, false, false, true)
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)

	want := stringtest.JoinLF(
		"a: 1, b: 2",
		"",
	)
	assert.Equal(t, want, string(got))
}

func TestProcessInput_WriteMode_LeavesFormattedFileAlone(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.xjs")

	src := stringtest.JoinLF(
		"a: 1, b: 2",
		"",
	)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	info, err := os.Stat(path)
	require.NoError(t, err)

	mtime := info.ModTime()

	require.NoError(t, processInput(defaultConfig(t), path, false, false, true))

	info, err = os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, mtime, info.ModTime())
}

func TestProcessInput_JSONExtension_WritesStrictForm(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.json")

	require.NoError(t, os.WriteFile(path, []byte("{\"a\": [1, 2], \"b\": \"x\"}"), 0o644))

	require.NoError(t, processInput(defaultConfig(t), path, false, false, true))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\"a\":[1,2],\"b\":\"x\"}\n", string(got))
}

func TestProcessInput_SyntaxError_Propagates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.json")

	require.NoError(t, os.WriteFile(path, []byte("[1,2,3,]"), 0o644))

	err := processInput(defaultConfig(t), path, false, false, true)
	require.Error(t, err)
}

func TestResync(t *testing.T) {
	assert.Equal(t, 2, resync([]string{"x", "y", "match"}, "match"))
	assert.Equal(t, 0, resync([]string{"x", "y", "z"}, "missing"))
	assert.Equal(t, 0, resync([]string{"only"}, "only"), "a head match needs no resync")
}

func TestProcessInput_UnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.toml")

	require.NoError(t, os.WriteFile(path, []byte("a = 1"), 0o644))

	err := processInput(defaultConfig(t), path, false, false, true)
	require.ErrorIs(t, err, format.ErrUnknownExtension)
}
