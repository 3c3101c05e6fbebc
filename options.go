package qterm

import "gopkg.in/yaml.v3"

// ScrollbackSaveType selects which dump format Save should default to
// when an embedder doesn't pick one explicitly (e.g. a keybinding that
// always saves in the user's preferred format).
type ScrollbackSaveType string

const (
	SaveTypeNormal ScrollbackSaveType = "normal"
	SaveTypeHTML   ScrollbackSaveType = "html"
	SaveTypeAsk    ScrollbackSaveType = "ask"
)

// Options holds the configuration recognized by the engine, per spec §6.
// Decoded from YAML, matching the config-file-driven ambient stack used
// elsewhere in the retrieval pack.
type Options struct {
	ScrollbackLinesMax int  `yaml:"scrollback_lines_max"`
	Strip8thBit        bool `yaml:"strip_8th_bit"`
	LineWrap           bool `yaml:"line_wrap"`
	LineFeedOnCR       bool `yaml:"line_feed_on_cr"`
	DisplayNull        bool `yaml:"display_null"`
	Assume80Columns    bool `yaml:"assume_80_columns"`
	ATASCIIHasWideFont bool `yaml:"atascii_has_wide_font"`
	PETSCIIHasWideFont bool `yaml:"petscii_has_wide_font"`

	ScrollbackSaveType ScrollbackSaveType `yaml:"scrollback_save_type"`

	// Codepage selects the 8-bit input translation table applied before
	// non-UTF-8 FSMs (see codepage.go). Empty means "no translation".
	Codepage string `yaml:"codepage"`
}

// DefaultOptions returns the engine's out-of-the-box configuration.
func DefaultOptions() Options {
	return Options{
		ScrollbackLinesMax: 20000,
		LineWrap:           true,
		ScrollbackSaveType: SaveTypeNormal,
	}
}

// LoadOptions decodes YAML-encoded configuration, starting from
// DefaultOptions so an embedder's partial config only overrides the
// fields it mentions.
func LoadOptions(data []byte) (Options, error) {
	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Marshal encodes the options back to YAML, e.g. for persisting edits
// made through a dialog.
func (o Options) Marshal() ([]byte, error) {
	return yaml.Marshal(o)
}
