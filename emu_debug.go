package qterm

import "fmt"

// debugEmulation implements the DEBUG hex view (spec §4.3.b): every
// received byte is rendered as a two-digit hex pair, 16 bytes per
// terminal row, wrapping to a new buffer line once 16 pairs have been
// written. It never interprets any byte as a control code.
type debugEmulation struct {
	eng      *Engine
	colInRow int
	row      []byte
}

func newDebugEmulation(eng *Engine) Emulation {
	return &debugEmulation{eng: eng}
}

func (e *debugEmulation) Variant() Variant { return VariantDebug }

func (e *debugEmulation) Reset() {
	e.colInRow = 0
	e.row = nil
}

func (e *debugEmulation) EncodeKey(k Key) string {
	return encodeKeyFrom(ttyKeyTable, k)
}

// Step writes the two hex digits and a following space for b directly
// into the current line via SetCellRaw (spec §4.3.b's documented
// bypass of the cursor-driven write path) and returns NoCharYet, since
// the hex view manages its own cursor column rather than letting
// PrintCharacter's wrap rule apply.
func (e *debugEmulation) Step(b int) StepResult {
	if b < 0 || b > 0xff {
		return stepNoChar
	}

	hex := fmt.Sprintf("%02X ", b)
	base := e.colInRow * 3
	l := e.eng.buf.Edit()
	for i, ch := range hex {
		l.SetCellRaw(base+i, ch, e.eng.scr.DrawingAttr)
	}

	e.colInRow++
	if e.colInRow >= 16 {
		e.newRow()
	}
	return stepNoChar
}

func (e *debugEmulation) newRow() {
	e.colInRow = 0
	e.eng.CursorLinefeed(true)
}

// flushPending implements the optional Engine.flushPendingEmulation hook.
// It does nothing: every byte is already written via SetCellRaw, a
// partial row (fewer than 16 pairs) stays on its line exactly as written,
// and no further text is added to it.
func (e *debugEmulation) flushPending() {}
