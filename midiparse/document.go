package midiparse

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// DefaultIndent is the indentation used for written JSON documents.
const DefaultIndent = "  "

// Document is the JSON form of one Standard MIDI File.
type Document struct {
	TicksPerBeat int     `json:"ticks_per_beat"`
	Tracks       []Track `json:"tracks"`
}

type Track struct {
	Name     string  `json:"name"`
	Messages []Event `json:"messages"`
}

// Event is a track event: the decoded message and its delta time in ticks.
type Event struct {
	Delta   uint32
	Message Message
}

// MarshalJSON writes the message kind as "type", then the message fields in
// declaration order, then the delta as "time".
func (e Event) MarshalJSON() ([]byte, error) {
	if e.Message == nil {
		return nil, errors.New("event has no message")
	}

	kind, err := marshal(e.Message.Kind())
	if err != nil {
		return nil, err
	}
	body, err := marshal(e.Message)
	if err != nil {
		return nil, errors.Wrapf(err, "marshal %s", e.Message.Kind())
	}
	// body is a JSON object; keep only its members.
	body = bytes.TrimSpace(body)
	body = body[1 : len(body)-1]

	var buf bytes.Buffer
	buf.WriteString(`{"type":`)
	buf.Write(kind)
	if len(body) > 0 {
		buf.WriteByte(',')
		buf.Write(body)
	}
	buf.WriteString(`,"time":`)
	buf.WriteString(strconv.FormatUint(uint64(e.Delta), 10))
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Encode writes d as indented JSON followed by a newline. An empty indent
// falls back to DefaultIndent.
func (d *Document) Encode(w io.Writer, indent string) error {
	if indent == "" {
		indent = DefaultIndent
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	return errors.Wrap(enc.Encode(d), "encode document")
}

func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
