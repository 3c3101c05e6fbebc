package qterm

// ttyEmulation is the plainest variant in the pack (spec §4.3.a): it
// recognizes only the universal control codes -- CR, LF, BS, BEL, TAB --
// and prints everything else as-is. No escape sequences, no cursor
// addressing.
type ttyEmulation struct {
	eng *Engine
}

func newTTYEmulation(eng *Engine) Emulation {
	return &ttyEmulation{eng: eng}
}

func (e *ttyEmulation) Variant() Variant { return VariantTTY }

func (e *ttyEmulation) Reset() {}

func (e *ttyEmulation) EncodeKey(k Key) string {
	return encodeKeyFrom(ttyKeyTable, k)
}

func (e *ttyEmulation) Step(b int) StepResult {
	switch b {
	case 0x0d:
		e.eng.CursorCarriageReturn()
	case 0x0a:
		e.eng.CursorLinefeed(false)
	case 0x08:
		e.eng.CursorLeft(1, true)
	case 0x09:
		next := e.eng.tabs.Next(e.eng.scr.CursorX, e.eng.scr.RightMargin)
		e.eng.CursorPosition(e.eng.scr.CursorY, next)
	case 0x07:
		e.eng.Bell()
	default:
		if b >= 0 && b <= 0xff {
			return StepResult{Kind: OneChar, Char: rune(b)}
		}
	}
	return stepNoChar
}
