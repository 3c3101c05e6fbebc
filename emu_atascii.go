package qterm

// atasciiTable maps the 128 ATASCII codes below 0x80 to the Unicode code
// points qterm renders them as; codes 0x80-0xFF are looked up here at
// b-0x80. Printable ASCII maps to itself; the Atari's own line-drawing
// and control glyphs map into the Unicode box-drawing and symbol blocks
// the way other ATASCII-aware terminal emulators do.
var atasciiTable = [128]rune{
	0x2665, 0x251C, 0x2518, 0x2524, 0x2510, 0x2571, 0x2572, 0x25E2,
	0x2597, 0x25E3, 0x259D, 0x2598, 0x259A, 0x2514, 0x2534, 0x252C,
	0x2606, 0x2522, 0x25E4, 0x251B, 0x2409, 0x2403, 0x240A, 0x2401,
	0x2424, 0x2518, 0x2191, 0x2193, 0x2190, 0x25C0, 0x2192, 0x25B6,
	' ', '!', '"', '#', '$', '%', '&', '\'',
	'(', ')', '*', '+', ',', '-', '.', '/',
	'0', '1', '2', '3', '4', '5', '6', '7',
	'8', '9', ':', ';', '<', '=', '>', '?',
	'@', 'A', 'B', 'C', 'D', 'E', 'F', 'G',
	'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O',
	'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W',
	'X', 'Y', 'Z', '[', '\\', ']', '^', '_',
	0x2666, 'a', 'b', 'c', 'd', 'e', 'f', 'g',
	'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o',
	'p', 'q', 'r', 's', 't', 'u', 'v', 'w',
	'x', 'y', 'z', 0x2660, '|', 0x25CF, 0x2580, 0x25AE,
}

// atasciiEmulation implements the ATASCII byte stream (spec §4.3.a): a
// single control byte, 0x1B (ESC), toggles whether the very next byte is
// printed literally instead of acted on as a control code.
type atasciiEmulation struct {
	eng             *Engine
	printNextControl bool
}

func newATASCIIEmulation(eng *Engine) Emulation {
	return &atasciiEmulation{eng: eng}
}

func (e *atasciiEmulation) Variant() Variant { return VariantATASCII }

func (e *atasciiEmulation) Reset() {
	e.printNextControl = false
}

func (e *atasciiEmulation) EncodeKey(k Key) string {
	return encodeKeyFrom(ttyKeyTable, k)
}

func (e *atasciiEmulation) Step(b int) StepResult {
	if b < 0 || b > 0xff {
		return stepNoChar
	}

	if e.printNextControl {
		e.printNextControl = false
		return e.emit(b)
	}

	switch b {
	case 0x1b:
		e.printNextControl = true
		return stepNoChar
	case 0x7d:
		e.eng.EraseScreen(0, 0, e.eng.screenRows()-1, e.eng.scr.RightMargin, false)
		e.eng.CursorPosition(0, 0)
		return stepNoChar
	case 0x1c:
		e.eng.CursorUp(1, true)
		return stepNoChar
	case 0x1d:
		e.eng.CursorDown(1, true)
		return stepNoChar
	case 0x1e:
		e.eng.CursorLeft(1, true)
		return stepNoChar
	case 0x1f:
		e.eng.CursorRight(1, true)
		return stepNoChar
	case 0x7e:
		e.eng.CursorLeft(1, true)
		e.eng.DeleteCharacter(1)
		return stepNoChar
	case 0x7f:
		next := e.eng.tabs.Next(e.eng.scr.CursorX, e.eng.scr.RightMargin)
		e.eng.CursorPosition(e.eng.scr.CursorY, next)
		return stepNoChar
	case 0x9b:
		e.eng.CursorCarriageReturn()
		e.eng.CursorLinefeed(true)
		return stepNoChar
	case 0x9c:
		e.eng.EraseLine(e.eng.scr.CursorX, e.eng.scr.RightMargin+1, false)
		return stepNoChar
	case 0x9d:
		e.eng.RectangleScrollDown(e.eng.scr.CursorY, 0, e.eng.scr.ScrollBottom, e.eng.scr.RightMargin, 1)
		return stepNoChar
	case 0x9e:
		e.eng.tabs.Clear(e.eng.scr.CursorX)
		return stepNoChar
	case 0x9f:
		e.eng.tabs.Set(e.eng.scr.CursorX)
		return stepNoChar
	case 0xfd:
		e.eng.Bell()
		return stepNoChar
	case 0xfe:
		e.eng.DeleteCharacter(1)
		return stepNoChar
	case 0xff:
		e.eng.InsertBlanks(1)
		return stepNoChar
	default:
		return e.emit(b)
	}
}

// emit maps an ATASCII byte to its Unicode rendering and, for bytes with
// the high bit set (the Atari's inverse-video forms of the low 128),
// prints the cell itself in StyleReverse rather than returning it through
// StepResult, since PrintCharacter has no per-character attribute
// override and inverse video here is a property of the input byte, not a
// mode change that should persist past this one cell.
func (e *atasciiEmulation) emit(b int) StepResult {
	if b < 0x80 {
		return StepResult{Kind: OneChar, Char: atasciiTable[b]}
	}

	scr := e.eng.scr
	saved := scr.DrawingAttr
	scr.DrawingAttr = saved.WithStyle(StyleReverse)
	e.eng.PrintCharacter(atasciiTable[b-0x80])
	scr.DrawingAttr = saved
	return stepNoChar
}
