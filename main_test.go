package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"midi2json/convert"
	"midi2json/internal/smftest"
)

func TestCommandDefaultOutput(t *testing.T) {
	dir := t.TempDir()
	src := smftest.Write(t, dir, "song.mid", smftest.Song())

	var out bytes.Buffer
	err := newCommand(&out).Run(context.Background(), []string{"midi2json", src})
	require.NoError(t, err)

	dst := filepath.Join(dir, "song.json")
	assert.FileExists(t, dst)
	assert.Equal(t, "Successfully converted "+src+" to "+dst+"\n", out.String())
}

func TestCommandOutputFlag(t *testing.T) {
	dir := t.TempDir()
	src := smftest.Write(t, dir, "song.mid", smftest.Song())
	dst := filepath.Join(dir, "renamed.json")

	var out bytes.Buffer
	err := newCommand(&out).Run(context.Background(), []string{"midi2json", "-o", dst, src})
	require.NoError(t, err)

	assert.FileExists(t, dst)
	assert.NoFileExists(t, filepath.Join(dir, "song.json"))
}

func TestCommandConfigFlag(t *testing.T) {
	dir := t.TempDir()
	src := smftest.Write(t, dir, "song.mid", smftest.Song())
	cfg := smftest.Write(t, dir, "settings.toml", []byte("output_ext = \".midi.json\"\n"))

	var out bytes.Buffer
	err := newCommand(&out).Run(context.Background(), []string{"midi2json", "--config", cfg, src})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "song.midi.json"))
}

func TestCommandMissingArgument(t *testing.T) {
	var out bytes.Buffer
	err := newCommand(&out).Run(context.Background(), []string{"midi2json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "midi_file")
}

func TestCommandConversionFailure(t *testing.T) {
	dir := t.TempDir()
	src := smftest.Write(t, dir, "broken.mid", []byte("nope"))

	var out bytes.Buffer
	err := newCommand(&out).Run(context.Background(), []string{"midi2json", src})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Error converting MIDI file")
	assert.True(t, errors.Is(err, convert.ErrInvalidMIDI))
	assert.Empty(t, out.String())

	_, statErr := os.Stat(filepath.Join(dir, "broken.json"))
	assert.True(t, os.IsNotExist(statErr))
}
