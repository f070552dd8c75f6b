// Package midiparse reads Standard MIDI Files and maps them to JSON documents.
package midiparse

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

// ErrOpen marks a failure to open the input file, as opposed to reading it.
var ErrOpen = errors.New("failed to open file")

type openError struct {
	err error
}

func (e *openError) Error() string { return "failed to open file: " + e.err.Error() }

func (e *openError) Unwrap() error { return e.err }

func (e *openError) Is(target error) bool { return target == ErrOpen }

// ParseMIDI reads the Standard MIDI File at filename. Open failures match
// ErrOpen and keep the underlying *fs.PathError.
func ParseMIDI(filename string) (*Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.WithStack(&openError{err: err})
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a Standard MIDI File from r and maps it to a Document.
// The smf reader panics on some corrupt tracks; that is returned as an error.
func Parse(r io.Reader) (doc *Document, err error) {
	defer func() {
		if p := recover(); p != nil {
			doc = nil
			err = errors.Errorf("failed to read SMF: %v", p)
		}
	}()

	s, err := smf.ReadFrom(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read SMF")
	}
	return FromSMF(s), nil
}

// FromSMF maps a parsed SMF to a Document. Track and event order are kept
// as read. It has no side effects and always yields the same Document for
// the same input.
func FromSMF(s *smf.SMF) *Document {
	doc := &Document{
		TicksPerBeat: ticksPerBeat(s.TimeFormat),
		Tracks:       make([]Track, 0, len(s.Tracks)),
	}

	for i, tr := range s.Tracks {
		track := Track{Messages: make([]Event, 0, len(tr))}
		named := false

		for _, ev := range tr {
			msg := DecodeMessage([]byte(ev.Message))
			if nm, ok := msg.(NameMeta); ok && !named && nm.Kind() == KindTrackName {
				track.Name = nm.Name
				named = true
			}
			track.Messages = append(track.Messages, Event{Delta: ev.Delta, Message: msg})
		}

		if !named {
			track.Name = fmt.Sprintf("Track %d", i)
		}
		doc.Tracks = append(doc.Tracks, track)
	}

	return doc
}

// ticksPerBeat returns the metric resolution, or for SMPTE time code the
// division word as stored in the header.
func ticksPerBeat(tf smf.TimeFormat) int {
	switch t := tf.(type) {
	case smf.MetricTicks:
		return int(t)
	case smf.TimeCode:
		return int(uint8(-int8(t.FramesPerSecond)))<<8 | int(t.SubFrames)
	}
	return 0
}
