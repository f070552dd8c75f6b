// Package smftest assembles Standard MIDI File bytes for tests.
package smftest

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// Event is one track event: delta ticks and the raw message bytes.
type Event struct {
	Delta uint32
	Data  []byte
}

// File returns a complete SMF with an MThd header and one MTrk chunk per
// track. The format is 0 for a single track and 1 otherwise.
func File(division uint16, tracks ...[]Event) []byte {
	var format uint16
	if len(tracks) > 1 {
		format = 1
	}

	out := []byte("MThd")
	out = binary.BigEndian.AppendUint32(out, 6)
	out = binary.BigEndian.AppendUint16(out, format)
	out = binary.BigEndian.AppendUint16(out, uint16(len(tracks)))
	out = binary.BigEndian.AppendUint16(out, division)

	for _, tr := range tracks {
		var body []byte
		for _, ev := range tr {
			body = append(body, VLQ(ev.Delta)...)
			body = append(body, ev.Data...)
		}
		out = append(out, "MTrk"...)
		out = binary.BigEndian.AppendUint32(out, uint32(len(body)))
		out = append(out, body...)
	}
	return out
}

// VLQ encodes v as a MIDI variable-length quantity.
func VLQ(v uint32) []byte {
	out := []byte{byte(v & 0x7F)}
	for v >>= 7; v > 0; v >>= 7 {
		out = append([]byte{byte(v&0x7F) | 0x80}, out...)
	}
	return out
}

// Meta builds a meta event message.
func Meta(typ byte, data []byte) []byte {
	out := []byte{0xFF, typ}
	out = append(out, VLQ(uint32(len(data)))...)
	return append(out, data...)
}

func TrackName(name string) []byte { return Meta(0x03, []byte(name)) }

func EndOfTrack() []byte { return Meta(0x2F, nil) }

// Song is a two track file at 480 ticks per beat. The first track is named
// "Piano" and carries tempo, meter and one note; the second is unnamed.
func Song() []byte {
	return File(480,
		[]Event{
			{0, TrackName("Piano")},
			{0, Meta(0x51, []byte{0x07, 0xA1, 0x20})},
			{0, Meta(0x58, []byte{4, 2, 24, 8})},
			{0, []byte{0x90, 60, 100}},
			{480, []byte{0x80, 60, 64}},
			{0, EndOfTrack()},
		},
		[]Event{
			{0, []byte{0xC1, 5}},
			{10, []byte{0xB1, 7, 90}},
			{20, []byte{0xE1, 0x00, 0x40}},
			{0, EndOfTrack()},
		},
	)
}

// Write stores data as name inside dir and returns the full path.
func Write(t testing.TB, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", path, err)
	}
	return path
}
