package midiparse

// Message is the decoded body of one track event. Kind is emitted as the
// "type" tag of the JSON object, the struct fields follow it.
type Message interface {
	Kind() string
}

const (
	KindNoteOff           = "note_off"
	KindNoteOn            = "note_on"
	KindPolytouch         = "polytouch"
	KindControlChange     = "control_change"
	KindProgramChange     = "program_change"
	KindAftertouch        = "aftertouch"
	KindPitchwheel        = "pitchwheel"
	KindSysex             = "sysex"
	KindQuarterFrame      = "quarter_frame"
	KindSongpos           = "songpos"
	KindSongSelect        = "song_select"
	KindTuneRequest       = "tune_request"
	KindClock             = "clock"
	KindStart             = "start"
	KindContinue          = "continue"
	KindStop              = "stop"
	KindActiveSensing     = "active_sensing"
	KindUnknown           = "unknown"
	KindSequenceNumber    = "sequence_number"
	KindText              = "text"
	KindCopyright         = "copyright"
	KindTrackName         = "track_name"
	KindInstrumentName    = "instrument_name"
	KindLyrics            = "lyrics"
	KindMarker            = "marker"
	KindCuePoint          = "cue_marker"
	KindProgramName       = "program_name"
	KindDeviceName        = "device_name"
	KindChannelPrefix     = "channel_prefix"
	KindMidiPort          = "midi_port"
	KindEndOfTrack        = "end_of_track"
	KindSetTempo          = "set_tempo"
	KindSMPTEOffset       = "smpte_offset"
	KindTimeSignature     = "time_signature"
	KindKeySignature      = "key_signature"
	KindSequencerSpecific = "sequencer_specific"
	KindUnknownMeta       = "unknown_meta"
)

// Channel voice messages.

type NoteOff struct {
	Channel  uint8 `json:"channel"`
	Note     uint8 `json:"note"`
	Velocity uint8 `json:"velocity"`
}

func (NoteOff) Kind() string { return KindNoteOff }

// NoteOn keeps velocity 0 as a note_on; it is not rewritten to note_off.
type NoteOn struct {
	Channel  uint8 `json:"channel"`
	Note     uint8 `json:"note"`
	Velocity uint8 `json:"velocity"`
}

func (NoteOn) Kind() string { return KindNoteOn }

type Polytouch struct {
	Channel uint8 `json:"channel"`
	Note    uint8 `json:"note"`
	Value   uint8 `json:"value"`
}

func (Polytouch) Kind() string { return KindPolytouch }

type ControlChange struct {
	Channel uint8 `json:"channel"`
	Control uint8 `json:"control"`
	Value   uint8 `json:"value"`
}

func (ControlChange) Kind() string { return KindControlChange }

type ProgramChange struct {
	Channel uint8 `json:"channel"`
	Program uint8 `json:"program"`
}

func (ProgramChange) Kind() string { return KindProgramChange }

type Aftertouch struct {
	Channel uint8 `json:"channel"`
	Value   uint8 `json:"value"`
}

func (Aftertouch) Kind() string { return KindAftertouch }

// Pitchwheel holds the bend centered on zero, -8192..8191.
type Pitchwheel struct {
	Channel uint8 `json:"channel"`
	Pitch   int16 `json:"pitch"`
}

func (Pitchwheel) Kind() string { return KindPitchwheel }

// System messages.

// Sysex data excludes the F0 status byte and the terminating F7.
type Sysex struct {
	Data []int `json:"data"`
}

func (Sysex) Kind() string { return KindSysex }

type QuarterFrame struct {
	FrameType  uint8 `json:"frame_type"`
	FrameValue uint8 `json:"frame_value"`
}

func (QuarterFrame) Kind() string { return KindQuarterFrame }

type Songpos struct {
	Pos uint16 `json:"pos"`
}

func (Songpos) Kind() string { return KindSongpos }

type SongSelect struct {
	Song uint8 `json:"song"`
}

func (SongSelect) Kind() string { return KindSongSelect }

// Realtime is any single-byte system message without attributes.
type Realtime struct {
	kind string
}

func (r Realtime) Kind() string { return r.kind }

// Unknown carries the raw bytes of a message no other variant matches.
type Unknown struct {
	Data []int `json:"data"`
}

func (Unknown) Kind() string { return KindUnknown }

// Meta events.

type SequenceNumber struct {
	Number uint16 `json:"number"`
}

func (SequenceNumber) Kind() string { return KindSequenceNumber }

// TextMeta covers text, copyright, lyrics, marker and cue_marker.
type TextMeta struct {
	kind string
	Text string `json:"text"`
}

func (m TextMeta) Kind() string { return m.kind }

// NameMeta covers track_name, instrument_name, program_name and device_name.
type NameMeta struct {
	kind string
	Name string `json:"name"`
}

func (m NameMeta) Kind() string { return m.kind }

type ChannelPrefix struct {
	Channel uint8 `json:"channel"`
}

func (ChannelPrefix) Kind() string { return KindChannelPrefix }

type MidiPort struct {
	Port uint8 `json:"port"`
}

func (MidiPort) Kind() string { return KindMidiPort }

type EndOfTrack struct{}

func (EndOfTrack) Kind() string { return KindEndOfTrack }

// SetTempo is in microseconds per quarter note.
type SetTempo struct {
	Tempo uint32 `json:"tempo"`
}

func (SetTempo) Kind() string { return KindSetTempo }

// SMPTEOffset.FrameRate is 24, 25, 29.97 or 30.
type SMPTEOffset struct {
	FrameRate float64 `json:"frame_rate"`
	Hours     uint8   `json:"hours"`
	Minutes   uint8   `json:"minutes"`
	Seconds   uint8   `json:"seconds"`
	Frames    uint8   `json:"frames"`
	SubFrames uint8   `json:"sub_frames"`
}

func (SMPTEOffset) Kind() string { return KindSMPTEOffset }

// TimeSignature.Denominator is the real denominator, not the stored power of two.
type TimeSignature struct {
	Numerator               uint8  `json:"numerator"`
	Denominator             uint32 `json:"denominator"`
	ClocksPerClick          uint8  `json:"clocks_per_click"`
	Notated32ndNotesPerBeat uint8  `json:"notated_32nd_notes_per_beat"`
}

func (TimeSignature) Kind() string { return KindTimeSignature }

type KeySignature struct {
	Key string `json:"key"`
}

func (KeySignature) Kind() string { return KindKeySignature }

type SequencerSpecific struct {
	Data []int `json:"data"`
}

func (SequencerSpecific) Kind() string { return KindSequencerSpecific }

type UnknownMeta struct {
	TypeByte uint8 `json:"type_byte"`
	Data     []int `json:"data"`
}

func (UnknownMeta) Kind() string { return KindUnknownMeta }
