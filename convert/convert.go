package convert

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"midi2json/config"
	"midi2json/midiparse"
)

// Failure kinds of a conversion. Match them with errors.Is.
var (
	ErrInputNotFound     = errors.New("input not found")
	ErrInvalidMIDI       = errors.New("invalid MIDI file")
	ErrOutputNotWritable = errors.New("output not writable")
)

// Error reports which step of a conversion failed and for which path.
type Error struct {
	Kind error
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool { return target == e.Kind }

// Converter turns one MIDI file into one JSON file.
type Converter struct {
	settings config.Settings
}

// NewConverter creates a converter using the given settings.
func NewConverter(settings config.Settings) *Converter {
	return &Converter{settings: settings}
}

// OutputPath returns the default destination for src: src with its extension
// replaced by the configured output extension.
func (c *Converter) OutputPath(src string) string {
	return ReplaceExt(src, c.settings.OutputExt)
}

// Convert reads the MIDI file at src and writes its JSON form to dst,
// creating or truncating it. An empty dst selects OutputPath(src).
// It returns the path written.
func (c *Converter) Convert(src, dst string) (string, error) {
	if dst == "" {
		dst = c.OutputPath(src)
	}

	doc, err := midiparse.ParseMIDI(src)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", errors.WithStack(&Error{Kind: ErrInputNotFound, Path: src, Err: err})
	case errors.Is(err, midiparse.ErrOpen):
		return "", errors.Wrapf(err, "cannot read %s", src)
	case err != nil:
		return "", errors.WithStack(&Error{Kind: ErrInvalidMIDI, Path: src, Err: err})
	}

	// Encode fully before touching dst so a failure leaves it unchanged.
	var buf bytes.Buffer
	if err := doc.Encode(&buf, c.settings.Indent); err != nil {
		return "", errors.Wrapf(err, "failed to encode %s", src)
	}

	if err := os.WriteFile(dst, buf.Bytes(), 0o644); err != nil {
		return "", errors.WithStack(&Error{Kind: ErrOutputNotWritable, Path: dst, Err: err})
	}

	return dst, nil
}

// ReplaceExt swaps the extension of path for ext. A path without an
// extension gets ext appended.
func ReplaceExt(path, ext string) string {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") && strings.Count(base, ".") == 1 {
		return path + ext
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
