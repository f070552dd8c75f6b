package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "midi2json.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	s := Defaults()

	assert.Equal(t, DefaultIndent, s.Indent)
	assert.Equal(t, DefaultPattern, s.Pattern)
	assert.Equal(t, DefaultOutputExt, s.OutputExt)
}

func TestLoadEmptyPath(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
}

func TestLoadOverrides(t *testing.T) {
	path := writeSettings(t, fmt.Sprintf("%s = \"\\t\"\n%s = \"*.midi\"\n%s = \"txt\"\n",
		KeyIndent, KeyPattern, KeyOutputExt))

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "\t", s.Indent)
	assert.Equal(t, "*.midi", s.Pattern)
	assert.Equal(t, ".txt", s.OutputExt)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeSettings(t, KeyPattern+" = \"*.MID\"\n"+KeyIndent+" = \"\"\n")

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "*.MID", s.Pattern)
	assert.Equal(t, DefaultIndent, s.Indent)
	assert.Equal(t, DefaultOutputExt, s.OutputExt)
}

func TestLoadUnknownKey(t *testing.T) {
	path := writeSettings(t, "recursive = true\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown settings")
	assert.Contains(t, err.Error(), "recursive")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load settings")
}

func TestLoadMalformed(t *testing.T) {
	path := writeSettings(t, "indent = \n")

	_, err := Load(path)
	assert.Error(t, err)
}
