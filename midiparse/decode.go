package midiparse

import (
	"golang.org/x/text/encoding/charmap"
)

// Meta type bytes following the 0xFF status.
const (
	metaSequenceNumber    = 0x00
	metaText              = 0x01
	metaCopyright         = 0x02
	metaTrackName         = 0x03
	metaInstrumentName    = 0x04
	metaLyrics            = 0x05
	metaMarker            = 0x06
	metaCuePoint          = 0x07
	metaProgramName       = 0x08
	metaDeviceName        = 0x09
	metaChannelPrefix     = 0x20
	metaMidiPort          = 0x21
	metaEndOfTrack        = 0x2F
	metaSetTempo          = 0x51
	metaSMPTEOffset       = 0x54
	metaTimeSignature     = 0x58
	metaKeySignature      = 0x59
	metaSequencerSpecific = 0x7F
)

var textKinds = map[byte]string{
	metaText:      KindText,
	metaCopyright: KindCopyright,
	metaLyrics:    KindLyrics,
	metaMarker:    KindMarker,
	metaCuePoint:  KindCuePoint,
}

var nameKinds = map[byte]string{
	metaTrackName:      KindTrackName,
	metaInstrumentName: KindInstrumentName,
	metaProgramName:    KindProgramName,
	metaDeviceName:     KindDeviceName,
}

var realtimeKinds = map[byte]string{
	0xF6: KindTuneRequest,
	0xF8: KindClock,
	0xFA: KindStart,
	0xFB: KindContinue,
	0xFC: KindStop,
	0xFE: KindActiveSensing,
}

var smpteFrameRates = [4]float64{24, 25, 29.97, 30}

// DecodeMessage maps the raw bytes of one track event to its variant.
// Bytes that cannot be interpreted fall back to Unknown or UnknownMeta
// instead of failing, so every event of a parsed track is kept.
func DecodeMessage(raw []byte) Message {
	if len(raw) == 0 {
		return Unknown{Data: ints(raw)}
	}

	status := raw[0]
	switch {
	case status == 0xFF:
		return decodeMeta(raw)
	case status == 0xF0 || status == 0xF7:
		return Sysex{Data: ints(trimSysex(raw[1:]))}
	case status >= 0xF0:
		return decodeSystem(raw)
	case status >= 0x80:
		return decodeChannel(raw)
	}
	return Unknown{Data: ints(raw)}
}

func decodeChannel(raw []byte) Message {
	ch := raw[0] & 0x0F
	data := raw[1:]

	switch raw[0] & 0xF0 {
	case 0x80:
		if len(data) >= 2 {
			return NoteOff{Channel: ch, Note: data[0], Velocity: data[1]}
		}
	case 0x90:
		if len(data) >= 2 {
			return NoteOn{Channel: ch, Note: data[0], Velocity: data[1]}
		}
	case 0xA0:
		if len(data) >= 2 {
			return Polytouch{Channel: ch, Note: data[0], Value: data[1]}
		}
	case 0xB0:
		if len(data) >= 2 {
			return ControlChange{Channel: ch, Control: data[0], Value: data[1]}
		}
	case 0xC0:
		if len(data) >= 1 {
			return ProgramChange{Channel: ch, Program: data[0]}
		}
	case 0xD0:
		if len(data) >= 1 {
			return Aftertouch{Channel: ch, Value: data[0]}
		}
	case 0xE0:
		if len(data) >= 2 {
			value := int(data[1]&0x7F)<<7 | int(data[0]&0x7F)
			return Pitchwheel{Channel: ch, Pitch: int16(value - 8192)}
		}
	}
	return Unknown{Data: ints(raw)}
}

func decodeSystem(raw []byte) Message {
	data := raw[1:]

	switch raw[0] {
	case 0xF1:
		if len(data) >= 1 {
			return QuarterFrame{FrameType: data[0] >> 4, FrameValue: data[0] & 0x0F}
		}
	case 0xF2:
		if len(data) >= 2 {
			return Songpos{Pos: uint16(data[1]&0x7F)<<7 | uint16(data[0]&0x7F)}
		}
	case 0xF3:
		if len(data) >= 1 {
			return SongSelect{Song: data[0]}
		}
	default:
		if kind, ok := realtimeKinds[raw[0]]; ok {
			return Realtime{kind: kind}
		}
	}
	return Unknown{Data: ints(raw)}
}

func decodeMeta(raw []byte) Message {
	if len(raw) < 2 {
		return Unknown{Data: ints(raw)}
	}
	typ := raw[1]
	data := metaPayload(raw[2:])

	if kind, ok := textKinds[typ]; ok {
		return TextMeta{kind: kind, Text: decodeText(data)}
	}
	if kind, ok := nameKinds[typ]; ok {
		return NameMeta{kind: kind, Name: decodeText(data)}
	}

	switch typ {
	case metaSequenceNumber:
		switch len(data) {
		case 0:
			return SequenceNumber{}
		case 2:
			return SequenceNumber{Number: uint16(data[0])<<8 | uint16(data[1])}
		}
	case metaChannelPrefix:
		if len(data) == 1 {
			return ChannelPrefix{Channel: data[0]}
		}
	case metaMidiPort:
		if len(data) == 1 {
			return MidiPort{Port: data[0]}
		}
	case metaEndOfTrack:
		if len(data) == 0 {
			return EndOfTrack{}
		}
	case metaSetTempo:
		if len(data) == 3 {
			return SetTempo{Tempo: uint32(data[0])<<16 | uint32(data[1])<<8 | uint32(data[2])}
		}
	case metaSMPTEOffset:
		if len(data) == 5 {
			return SMPTEOffset{
				FrameRate: smpteFrameRates[(data[0]>>5)&0x03],
				Hours:     data[0] & 0x1F,
				Minutes:   data[1],
				Seconds:   data[2],
				Frames:    data[3],
				SubFrames: data[4],
			}
		}
	case metaTimeSignature:
		if len(data) == 4 && data[1] < 32 {
			return TimeSignature{
				Numerator:               data[0],
				Denominator:             1 << data[1],
				ClocksPerClick:          data[2],
				Notated32ndNotesPerBeat: data[3],
			}
		}
	case metaKeySignature:
		if len(data) == 2 {
			if key, ok := keyName(int8(data[0]), data[1]); ok {
				return KeySignature{Key: key}
			}
		}
	case metaSequencerSpecific:
		return SequencerSpecific{Data: ints(data)}
	}
	return UnknownMeta{TypeByte: typ, Data: ints(data)}
}

// metaPayload strips the variable-length size prefix. A size that runs past
// the end of the message is clamped to the bytes actually present.
func metaPayload(b []byte) []byte {
	var size uint32
	i := 0
	for ; i < len(b) && i < 4; i++ {
		size = size<<7 | uint32(b[i]&0x7F)
		if b[i]&0x80 == 0 {
			i++
			break
		}
	}
	b = b[i:]
	if int(size) < len(b) {
		b = b[:size]
	}
	return b
}

func trimSysex(b []byte) []byte {
	if n := len(b); n > 0 && b[n-1] == 0xF7 {
		return b[:n-1]
	}
	return b
}

// decodeText reads meta text as ISO-8859-1, which maps every byte to a rune.
func decodeText(b []byte) string {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(out)
}

func ints(b []byte) []int {
	out := make([]int, len(b))
	for i, v := range b {
		out[i] = int(v)
	}
	return out
}
