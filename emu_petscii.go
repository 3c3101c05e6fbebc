package qterm

// petsciiTable maps the low 128 PETSCII codes to Unicode, following the
// Commodore "unshifted" character set layout: control codes, digits,
// punctuation and letters line up with ASCII; only 0x5C, 0x5E, 0x5F, 0x60
// and 0x7B-0x7F map to Commodore glyphs (£, arrows, line drawing, π).
var petsciiTable = [128]rune{
	0x0000, 0x0001, 0x0002, 0x0003, 0x0004, 0x0005, 0x0006, 0x0007,
	0x0008, 0x0009, '\n', 0x000b, 0x000c, '\r', 0x000e, 0x000f,
	0x0010, 0x0011, 0x0012, 0x0013, 0x0014, 0x0015, 0x0016, 0x0017,
	0x0018, 0x0019, 0x001a, 0x001b, 0x001c, 0x001d, 0x001e, 0x001f,
	' ', '!', '"', '#', '$', '%', '&', '\'',
	'(', ')', '*', '+', ',', '-', '.', '/',
	'0', '1', '2', '3', '4', '5', '6', '7',
	'8', '9', ':', ';', '<', '=', '>', '?',
	'@', 'A', 'B', 'C', 'D', 'E', 'F', 'G',
	'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O',
	'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W',
	'X', 'Y', 'Z', '[', 0x00A3, ']', 0x2191, 0x2190,
	0x2500, 'a', 'b', 'c', 'd', 'e', 'f', 'g',
	'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o',
	'p', 'q', 'r', 's', 't', 'u', 'v', 'w',
	'x', 'y', 'z', 0x253C, 0x2502, 0x2592, 0x25E4, 0x03C0,
}

// petsciiControl lists the codes, below 0x20 and in the 0x80-0x9F range,
// that act as cursor/screen
// controls rather than passing through petsciiTable verbatim, per spec
// §4.3.a's "its own control table" note.
var petsciiControl = map[int]func(e *petsciiEmulation){
	0x0d: func(e *petsciiEmulation) { e.eng.CursorCarriageReturn(); e.eng.CursorLinefeed(true) },
	0x11: func(e *petsciiEmulation) { e.eng.CursorDown(1, true) },
	0x91: func(e *petsciiEmulation) { e.eng.CursorUp(1, true) },
	0x1d: func(e *petsciiEmulation) { e.eng.CursorRight(1, true) },
	0x9d: func(e *petsciiEmulation) { e.eng.CursorLeft(1, true) },
	0x93: func(e *petsciiEmulation) {
		e.eng.EraseScreen(0, 0, e.eng.screenRows()-1, e.eng.scr.RightMargin, false)
		e.eng.CursorPosition(0, 0)
	},
	0x14: func(e *petsciiEmulation) { e.eng.DeleteCharacter(1) },
	0x07: func(e *petsciiEmulation) { e.eng.Bell() },
}

// petsciiEmulation implements the Commodore PETSCII byte stream, shaped
// like ATASCII (a translation table plus a handful of control codes) but
// with its own table and control set (spec §4.3.a).
type petsciiEmulation struct {
	eng *Engine
}

func newPETSCIIEmulation(eng *Engine) Emulation {
	return &petsciiEmulation{eng: eng}
}

func (e *petsciiEmulation) Variant() Variant { return VariantPETSCII }

func (e *petsciiEmulation) Reset() {}

func (e *petsciiEmulation) EncodeKey(k Key) string {
	return encodeKeyFrom(ttyKeyTable, k)
}

func (e *petsciiEmulation) Step(b int) StepResult {
	if b < 0 || b > 0xff {
		return stepNoChar
	}
	if fn, ok := petsciiControl[b]; ok {
		fn(e)
		return stepNoChar
	}
	if b < 0x80 {
		return StepResult{Kind: OneChar, Char: petsciiTable[b]}
	}
	return StepResult{Kind: OneChar, Char: petsciiTable[b-0x80]}
}
