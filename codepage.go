package qterm

import "golang.org/x/text/encoding/charmap"

// codepages maps the configured Options.Codepage name to the charmap
// table used to translate incoming 8-bit bytes before they reach a
// non-UTF-8 Emulation, per spec §4.3's "applies a configured codepage
// translation" note.
var codepages = map[string]*charmap.Charmap{
	"cp437":      charmap.CodePage437,
	"cp850":      charmap.CodePage850,
	"cp852":      charmap.CodePage852,
	"cp866":      charmap.CodePage866,
	"iso8859-1":  charmap.ISO8859_1,
	"iso8859-2":  charmap.ISO8859_2,
	"iso8859-15": charmap.ISO8859_15,
	"koi8-r":     charmap.KOI8R,
	"windows-1252": charmap.Windows1252,
}

// translateCodepage maps b through the named codepage's decode table and
// returns the resulting rune as a byte, so downstream FSMs keep working
// against single bytes. A rune above 0xFF (or an undecodable byte) leaves
// b unchanged. An unknown or empty codepage name is the identity
// translation.
func translateCodepage(codepage string, b byte) byte {
	cm, ok := codepages[codepage]
	if !ok {
		return b
	}
	r := cm.DecodeByte(b)
	if r < 0 {
		return b
	}
	if r > 0xFF {
		return b
	}
	return byte(r)
}
