package format_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.birchlake.dev/xjs/document"
	"go.birchlake.dev/xjs/format"
)

func TestLookup_PreRegisteredExtensions(t *testing.T) {
	_, ok := format.Lookup("json")
	assert.True(t, ok)

	_, ok = format.Lookup("xjs")
	assert.True(t, ok)

	_, ok = format.Lookup(".JSON")
	assert.True(t, ok, "extension match is case-insensitive and dot-tolerant")
}

func TestLookup_UnknownExtension(t *testing.T) {
	_, ok := format.Lookup("yaml")
	assert.False(t, ok)
}

func TestDefaultExtension_IsXJS(t *testing.T) {
	assert.Equal(t, "xjs", format.DefaultExtension())
}

func TestScopeDefaults_RestoresOnReturn(t *testing.T) {
	restore := format.ScopeDefaults("json")
	assert.Equal(t, "json", format.DefaultExtension())

	restore()
	assert.Equal(t, "xjs", format.DefaultExtension())
}

func TestRegister_AddsNewExtension(t *testing.T) {
	format.Register("toml", format.Entry{
		Parse: func(_ string) (*document.Value, error) { return document.NewNull(), nil },
		Write: func(_ *document.Value) string { return "" },
	})

	_, ok := format.Lookup("toml")
	assert.True(t, ok)
}

func TestAutoParse_DispatchesByExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a":1}`), 0o644))

	v, err := format.AutoParse(path)
	require.NoError(t, err)

	n, ok := v.GetMember("a")
	require.True(t, ok)
	assert.Equal(t, float64(1), n.Number())
}

func TestAutoParse_DefaultExtensionWhenNoneInPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "noext")
	require.NoError(t, os.WriteFile(path, []byte("a: 1"), 0o644))

	v, err := format.AutoParse(path)
	require.NoError(t, err)

	n, ok := v.GetMember("a")
	require.True(t, ok)
	assert.Equal(t, float64(1), n.Number())
}

func TestAutoParse_UnknownExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: 1"), 0o644))

	_, err := format.AutoParse(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, format.ErrUnknownExtension)
}

func TestAutoWrite_DispatchesByExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	obj := document.NewObject()
	obj.AddMember("a", document.NewNumber(1))

	require.NoError(t, format.AutoWrite(path, obj))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(got))
}

func TestAutoWrite_UnknownExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.yaml")

	err := format.AutoWrite(path, document.NewNull())
	require.Error(t, err)
	assert.ErrorIs(t, err, format.ErrUnknownExtension)
}
