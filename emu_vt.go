package qterm

import "strconv"

// vtState is the shared VT-family parser state machine's current parse
// mode, following the classic escape/CSI parser shape used across the
// VT100/VT102/VT220/ANSI/AVATAR/Linux/xterm variants.
type vtState int

const (
	vtGround vtState = iota
	vtEscape
	vtCSI
	vtCSIIntermediate
)

// vtProfile isolates the handful of behaviors that differ between members
// of the VT family, so emu_vt.go implements one FSM parameterized by
// profile rather than duplicating the parser per variant.
type vtProfile struct {
	keyTable    map[Key]string
	allow8bitC1 bool
}

func vtProfileFor(v Variant) vtProfile {
	if v == VariantVT52 {
		return vtProfile{keyTable: vt52KeyTable}
	}
	return vtProfile{keyTable: vtKeyTable, allow8bitC1: v == VariantXterm || v == VariantXtermUTF8}
}

// vtEmulation implements the shared escape/CSI state machine for every
// VT-family Variant (spec §4.3.c).
type vtEmulation struct {
	eng     *Engine
	variant Variant
	profile vtProfile

	state vtState

	params    []int
	param     int
	hasParam  bool
	private   byte // '?' for DEC-private CSI sequences, 0 otherwise
	pending   rune
}

func newVTEmulation(eng *Engine, v Variant) Emulation {
	return &vtEmulation{eng: eng, variant: v, profile: vtProfileFor(v)}
}

func (e *vtEmulation) Variant() Variant { return e.variant }

func (e *vtEmulation) Reset() {
	e.state = vtGround
	e.resetParams()
}

func (e *vtEmulation) resetParams() {
	e.params = e.params[:0]
	e.param = 0
	e.hasParam = false
	e.private = 0
}

func (e *vtEmulation) EncodeKey(k Key) string {
	return encodeKeyFrom(e.profile.keyTable, k)
}

// Step advances the FSM by one byte. Only ground-state printable bytes
// ever return a character;
// every escape/CSI/control byte is handled as a side effect against eng
// and returns NoCharYet.
func (e *vtEmulation) Step(b int) StepResult {
	switch e.state {
	case vtGround:
		return e.stepGround(b)
	case vtEscape:
		return e.stepEscape(b)
	case vtCSI, vtCSIIntermediate:
		return e.stepCSI(b)
	}
	return stepNoChar
}

func (e *vtEmulation) stepGround(b int) StepResult {
	switch b {
	case 0x1b:
		e.state = vtEscape
		return stepNoChar
	case 0x08:
		e.eng.CursorLeft(1, true)
		return stepNoChar
	case 0x09:
		next := e.eng.tabs.Next(e.eng.scr.CursorX, e.eng.scr.RightMargin)
		e.eng.CursorPosition(e.eng.scr.CursorY, next)
		return stepNoChar
	case 0x0a, 0x0b, 0x0c:
		e.eng.CursorLinefeed(false)
		return stepNoChar
	case 0x0d:
		e.eng.CursorCarriageReturn()
		return stepNoChar
	case 0x07:
		e.eng.Bell()
		return stepNoChar
	default:
		if b < 0x20 {
			return stepNoChar
		}
		return StepResult{Kind: OneChar, Char: rune(b)}
	}
}

func (e *vtEmulation) stepEscape(b int) StepResult {
	if e.pending == '#' {
		e.pending = 0
		switch b {
		case '3':
			e.eng.SetDoubleHeight(HeightTop)
		case '4':
			e.eng.SetDoubleHeight(HeightBottom)
		case '5':
			e.eng.SetDoubleWidth(false)
		case '6':
			e.eng.SetDoubleWidth(true)
		}
		e.state = vtGround
		return stepNoChar
	}

	switch b {
	case '[':
		e.state = vtCSI
		e.resetParams()
		return stepNoChar
	case 'D':
		e.eng.CursorLinefeed(false)
		e.state = vtGround
		return stepNoChar
	case 'E':
		e.eng.CursorLinefeed(true)
		e.state = vtGround
		return stepNoChar
	case 'M':
		e.eng.CursorUp(1, true)
		e.state = vtGround
		return stepNoChar
	case 'c':
		e.eng.scr.DrawingAttr = DefaultAttr
		e.eng.scr.OriginMode = false
		e.eng.CursorPosition(0, 0)
		e.state = vtGround
		return stepNoChar
	case '7':
		e.eng.savedCursorX, e.eng.savedCursorY = e.eng.scr.CursorX, e.eng.scr.CursorY
		e.eng.savedAttr = e.eng.scr.DrawingAttr
		e.state = vtGround
		return stepNoChar
	case '8':
		e.eng.CursorPosition(e.eng.savedCursorY, e.eng.savedCursorX)
		e.eng.scr.DrawingAttr = e.eng.savedAttr
		e.state = vtGround
		return stepNoChar
	case '#':
		// DEC line-size/alignment sequences: consume one more byte, then
		// return to ground. Only the double-width/height selectors '3'-'6'
		// act; any other byte, '8' (screen alignment) included, is a no-op.
		e.state = vtEscape
		e.pending = '#'
		return stepNoChar
	default:
		e.state = vtGround
		return stepNoChar
	}
}

func (e *vtEmulation) stepCSI(b int) StepResult {
	switch {
	case b == '?' && len(e.params) == 0 && !e.hasParam:
		e.private = '?'
		return stepNoChar
	case b >= '0' && b <= '9':
		e.param = e.param*10 + (b - '0')
		e.hasParam = true
		return stepNoChar
	case b == ';':
		e.params = append(e.params, e.param)
		e.param = 0
		e.hasParam = false
		return stepNoChar
	case b >= 0x40 && b <= 0x7e:
		if e.hasParam || len(e.params) == 0 {
			e.params = append(e.params, e.param)
		}
		e.dispatchCSI(byte(b))
		e.state = vtGround
		return stepNoChar
	default:
		return stepNoChar
	}
}

func (e *vtEmulation) arg(i, def int) int {
	if i >= len(e.params) || e.params[i] == 0 {
		return def
	}
	return e.params[i]
}

func (e *vtEmulation) dispatchCSI(final byte) {
	eng := e.eng
	scr := eng.scr

	if e.private == '?' {
		e.dispatchPrivateCSI(final)
		return
	}

	switch final {
	case 'A':
		eng.CursorUp(e.arg(0, 1), true)
	case 'B':
		eng.CursorDown(e.arg(0, 1), true)
	case 'C':
		eng.CursorRight(e.arg(0, 1), true)
	case 'D':
		eng.CursorLeft(e.arg(0, 1), true)
	case 'H', 'f':
		eng.CursorPosition(e.arg(0, 1)-1, e.arg(1, 1)-1)
	case 'J':
		e.eraseInDisplay(e.arg(0, 0))
	case 'K':
		e.eraseInLine(e.arg(0, 0))
	case 'L':
		eng.RectangleScrollDown(scr.CursorY, 0, scr.ScrollBottom, scr.RightMargin, e.arg(0, 1))
	case 'M':
		eng.RectangleScrollUp(scr.CursorY, 0, scr.ScrollBottom, scr.RightMargin, e.arg(0, 1))
	case 'P':
		eng.DeleteCharacter(e.arg(0, 1))
	case '@':
		eng.InsertBlanks(e.arg(0, 1))
	case 'S':
		eng.RectangleScrollUp(scr.ScrollTop, 0, scr.ScrollBottom, scr.RightMargin, e.arg(0, 1))
	case 'T':
		eng.RectangleScrollDown(scr.ScrollTop, 0, scr.ScrollBottom, scr.RightMargin, e.arg(0, 1))
	case 'g':
		switch e.arg(0, 0) {
		case 0:
			eng.tabs.Clear(scr.CursorX)
		case 3:
			eng.tabs.ClearAll()
		}
	case 'm':
		e.selectGraphicRendition()
	case 'r':
		top, bottom := e.arg(0, 1)-1, e.arg(1, eng.screenRows())-1
		if top < bottom {
			scr.ScrollTop, scr.ScrollBottom = top, bottom
			eng.CursorPosition(0, 0)
		}
	case 'n':
		if e.arg(0, 0) == 6 {
			eng.WriteResponse([]byte("\x1b[" + strconv.Itoa(scr.CursorY+1) + ";" + strconv.Itoa(scr.CursorX+1) + "R"))
		}
	}
}

func (e *vtEmulation) dispatchPrivateCSI(final byte) {
	eng := e.eng
	scr := eng.scr
	if final != 'h' && final != 'l' {
		return
	}
	on := final == 'h'
	switch e.arg(0, 0) {
	case 1:
		// application cursor keys: tracked by the embedder via EncodeKey
		// table selection, nothing to flip here.
	case 6:
		scr.OriginMode = on
		eng.CursorPosition(0, 0)
	case 7:
		scr.AutoWrap = on
	case 25:
		scr.VisibleCursor = on
	}
}

func (e *vtEmulation) eraseInDisplay(mode int) {
	eng := e.eng
	scr := eng.scr
	switch mode {
	case 0:
		eng.EraseLine(scr.CursorX, scr.RightMargin+1, false)
		eng.EraseScreen(scr.CursorY+1, 0, eng.screenRows()-1, scr.RightMargin, false)
	case 1:
		eng.EraseLine(0, scr.CursorX+1, false)
		eng.EraseScreen(0, 0, scr.CursorY-1, scr.RightMargin, false)
	case 2:
		eng.EraseScreen(0, 0, eng.screenRows()-1, scr.RightMargin, false)
	}
}

func (e *vtEmulation) eraseInLine(mode int) {
	eng := e.eng
	scr := eng.scr
	switch mode {
	case 0:
		eng.EraseLine(scr.CursorX, scr.RightMargin+1, false)
	case 1:
		eng.EraseLine(0, scr.CursorX+1, false)
	case 2:
		eng.EraseLine(0, scr.RightMargin+1, false)
	}
}

func (e *vtEmulation) selectGraphicRendition() {
	scr := e.eng.scr
	if len(e.params) == 0 {
		scr.DrawingAttr = DefaultAttr
		return
	}
	a := scr.DrawingAttr
	for _, p := range e.params {
		switch {
		case p == 0:
			a = DefaultAttr
		case p == 1:
			a = a.WithStyle(StyleBold)
		case p == 4:
			a = a.WithStyle(StyleUnderline)
		case p == 5:
			a = a.WithStyle(StyleBlink)
		case p == 7:
			a = a.WithStyle(StyleReverse)
		case p == 8:
			a = a.WithStyle(StyleProtect)
		case p == 22:
			a = a.WithoutStyle(StyleBold)
		case p == 24:
			a = a.WithoutStyle(StyleUnderline)
		case p == 25:
			a = a.WithoutStyle(StyleBlink)
		case p == 27:
			a = a.WithoutStyle(StyleReverse)
		case p >= 30 && p <= 37:
			a.Fg = uint8(p - 30)
		case p == 39:
			a.Fg = DefaultColorIndex
		case p >= 40 && p <= 47:
			a.Bg = uint8(p - 40)
		case p == 49:
			a.Bg = DefaultColorIndex
		case p >= 90 && p <= 97:
			a.Fg = uint8(p-90) + 8
		case p >= 100 && p <= 107:
			a.Bg = uint8(p-100) + 8
		}
	}
	scr.DrawingAttr = a
}
