package batch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Converter converts one file. An empty dst selects the default output path.
type Converter interface {
	Convert(src, dst string) (string, error)
}

// Failure records a file that could not be converted.
type Failure struct {
	Path string
	Err  error
}

// Summary is the outcome of one batch run.
type Summary struct {
	Found     int
	Converted []string
	Failed    []Failure
}

// Runner converts every file matching a pattern in one directory.
type Runner struct {
	conv    Converter
	out     io.Writer
	pattern string
}

// NewRunner creates a runner that reports progress to out.
func NewRunner(conv Converter, out io.Writer, pattern string) *Runner {
	return &Runner{conv: conv, out: out, pattern: pattern}
}

// Run converts the matching files of dir one after another. A failed file is
// reported and skipped; the remaining files are still attempted. The error
// is only set when the pattern itself is malformed.
func (r *Runner) Run(dir string) (Summary, error) {
	files, err := filepath.Glob(filepath.Join(dir, r.pattern))
	if err != nil {
		return Summary{}, errors.Wrapf(err, "invalid pattern %q", r.pattern)
	}

	var summary Summary
	if len(files) == 0 {
		fmt.Fprintln(r.out, "No MIDI files found in the current directory.")
		return summary, nil
	}

	summary.Found = len(files)
	fmt.Fprintf(r.out, "Found %d MIDI file(s) to convert:\n", len(files))

	for _, file := range files {
		base := filepath.Base(file)
		fmt.Fprintf(r.out, "Converting %s...\n", base)

		dst, err := r.conv.Convert(file, "")
		if err != nil {
			fmt.Fprintf(r.out, "× Error converting %s: %v\n", base, err)
			summary.Failed = append(summary.Failed, Failure{Path: file, Err: err})
			continue
		}

		fmt.Fprintf(r.out, "✓ Successfully converted to %s\n", filepath.Base(dst))
		summary.Converted = append(summary.Converted, dst)
	}

	fmt.Fprintln(r.out, "All conversions completed.")
	return summary, nil
}

// DefaultDir returns the directory holding the running executable.
func DefaultDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(err, "failed to locate executable")
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
