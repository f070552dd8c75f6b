package midiparse

var majorKeys = [15]string{"Cb", "Gb", "Db", "Ab", "Eb", "Bb", "F", "C", "G", "D", "A", "E", "B", "F#", "C#"}

var minorKeys = [15]string{"Abm", "Ebm", "Bbm", "Fm", "Cm", "Gm", "Dm", "Am", "Em", "Bm", "F#m", "C#m", "G#m", "D#m", "A#m"}

// keyName turns a key signature meta payload (sharps/flats count, mode) into
// a key name. ok is false when the count is outside -7..7 or the mode is not
// major (0) or minor (1).
func keyName(accidentals int8, mode byte) (name string, ok bool) {
	if accidentals < -7 || accidentals > 7 {
		return "", false
	}
	idx := int(accidentals) + 7
	switch mode {
	case 0:
		return majorKeys[idx], true
	case 1:
		return minorKeys[idx], true
	}
	return "", false
}
