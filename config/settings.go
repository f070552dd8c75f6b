package config

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Settings keys in the TOML file
const (
	KeyIndent    = "indent"
	KeyPattern   = "pattern"
	KeyOutputExt = "output_ext"
)

// Default values
const (
	DefaultIndent    = "  "
	DefaultPattern   = "*.mid"
	DefaultOutputExt = ".json"
)

// Settings controls how MIDI files are found and how JSON is written.
type Settings struct {
	// Indent is the per-level JSON indentation.
	Indent string `toml:"indent"`
	// Pattern selects the files converted by a batch run.
	Pattern string `toml:"pattern"`
	// OutputExt replaces the input extension when no output path is given.
	OutputExt string `toml:"output_ext"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Indent:    DefaultIndent,
		Pattern:   DefaultPattern,
		OutputExt: DefaultOutputExt,
	}
}

// Load reads settings from a TOML file on top of the defaults. An empty path
// returns the defaults. Keys the file sets to "" keep their default.
func Load(path string) (Settings, error) {
	s := Defaults()
	if path == "" {
		return s, nil
	}

	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return Settings{}, errors.Wrapf(err, "failed to load settings from %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Settings{}, errors.Errorf("unknown settings in %s: %s", path, strings.Join(keys, ", "))
	}

	return s.normalize(), nil
}

func (s Settings) normalize() Settings {
	def := Defaults()
	if s.Indent == "" {
		s.Indent = def.Indent
	}
	if s.Pattern == "" {
		s.Pattern = def.Pattern
	}
	if s.OutputExt == "" {
		s.OutputExt = def.OutputExt
	}
	if !strings.HasPrefix(s.OutputExt, ".") {
		s.OutputExt = "." + s.OutputExt
	}
	return s
}
