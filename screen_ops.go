package qterm

// lineAtRow returns the Line for absolute screen row (0-based, within
// [0, screenRows-1]), walking from the edit anchor by the offset between
// row and the current cursor row. Lines are created on demand when the
// walk runs past the tail, per spec §3's Lifecycle note; walking past the
// head clamps instead, since the head is never stale while screenRows
// lines are always pre-populated.
func (e *Engine) lineAtRow(row int) *Line {
	delta := row - e.scr.CursorY
	l := e.buf.Edit()

	if delta > 0 {
		for i := 0; i < delta; i++ {
			if l.next == nil {
				l = e.appendLine()
			} else {
				l = l.next
			}
		}
	} else if delta < 0 {
		for i := 0; i < -delta; i++ {
			if l.prev == nil {
				break
			}
			l = l.prev
		}
	}
	return l
}

// appendLine allocates a new tail line per spec §4.1's append contract:
// spaces in the default attribute, or (for the DEBUG hex view) the whole
// row painted in reverse video so its debug cursor stays visible.
func (e *Engine) appendLine() *Line {
	l := e.buf.Append(DefaultAttr)
	if e.scr.Emulation == VariantDebug {
		reverse := DefaultAttr.WithStyle(StyleReverse)
		for i := range l.Colors {
			l.Colors[i] = reverse
		}
	}
	l.SetDoubleWidth(e.needsWideFontDoubling())
	return l
}

// needsWideFontDoubling reports whether the active variant's lines
// should render double-width because no wide font is configured for it,
// per spec §6's atascii_has_wide_font/petscii_has_wide_font options.
func (e *Engine) needsWideFontDoubling() bool {
	switch e.scr.Emulation {
	case VariantATASCII:
		return !e.opts.ATASCIIHasWideFont
	case VariantPETSCII:
		return !e.opts.PETSCIIHasWideFont
	default:
		return false
	}
}

// moveEditTo relocates the edit anchor to absolute row, updating CursorY.
func (e *Engine) moveEditTo(row int) {
	l := e.lineAtRow(row)
	e.buf.SetEdit(l)
	e.scr.CursorY = row
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// CursorUp moves the cursor up n rows. Upward travel past scrollTop (when
// honor is true) or row 0 clamps rather than scrolling.
func (e *Engine) CursorUp(n int, honor bool) {
	if n <= 0 {
		return
	}
	e.scr.ClearDeferredWrap()
	limit := 0
	if honor {
		limit = e.scr.ScrollTop
	}
	e.moveEditTo(clampInt(e.scr.CursorY-n, limit, e.screenRows()-1))
}

// CursorDown moves the cursor down n rows, creating lines on downward
// travel past the tail.
func (e *Engine) CursorDown(n int, honor bool) {
	if n <= 0 {
		return
	}
	e.scr.ClearDeferredWrap()
	limit := e.screenRows() - 1
	if honor {
		limit = e.scr.ScrollBottom
	}
	e.moveEditTo(clampInt(e.scr.CursorY+n, 0, limit))
}

// CursorLeft moves the cursor left n columns, clamped to [0, rightMargin].
func (e *Engine) CursorLeft(n int, honor bool) {
	if n <= 0 {
		return
	}
	e.scr.ClearDeferredWrap()
	e.scr.CursorX = clampInt(e.scr.CursorX-n, 0, e.scr.RightMargin)
}

// CursorRight moves the cursor right n columns, clamped to
// [0, rightMargin], padding the line with spaces if it grows past the
// line's current length.
func (e *Engine) CursorRight(n int, honor bool) {
	if n <= 0 {
		return
	}
	e.scr.ClearDeferredWrap()
	newX := clampInt(e.scr.CursorX+n, 0, e.scr.RightMargin)
	e.buf.Edit().PadTo(newX, e.scr.DrawingAttr)
	e.scr.CursorX = newX
}

// CursorPosition places the cursor absolutely. If origin mode is active,
// row is relative to scrollTop. Always clears the deferred-wrap flag.
func (e *Engine) CursorPosition(row, col int) {
	effectiveRow := row
	if e.scr.OriginMode {
		effectiveRow = row + e.scr.ScrollTop
	}
	effectiveRow = clampInt(effectiveRow, 0, e.screenRows()-1)
	col = clampInt(col, 0, e.scr.RightMargin)

	e.moveEditTo(effectiveRow)
	e.scr.CursorX = col
	e.scr.ClearDeferredWrap()
}

// CursorCarriageReturn sets CursorX to 0 and, if LineFeedOnCR is set,
// also performs a linefeed.
func (e *Engine) CursorCarriageReturn() {
	e.scr.CursorX = 0
	e.scr.ClearDeferredWrap()
	if e.scr.LineFeedOnCR {
		e.CursorLinefeed(false)
	}
}

// CursorLinefeed advances one row respecting the scroll region, per spec
// §4.2. When newLineMode is true, CursorX also resets to 0.
func (e *Engine) CursorLinefeed(newLineMode bool) {
	if e.scr.CursorY < e.scr.ScrollBottom {
		e.moveEditTo(e.scr.CursorY + 1)
	} else if e.scr.ScrollTop == 0 && e.scr.ScrollBottom == e.screenRows()-1 {
		oldTop := e.lineAtRow(0)
		l := e.appendLine()
		e.buf.SetEdit(l)
		oldTop.Dirty = true
	} else {
		e.RectangleScrollUp(e.scr.ScrollTop, 0, e.scr.ScrollBottom, e.scr.RightMargin, 1)
	}

	if newLineMode {
		e.scr.CursorX = 0
	}
	e.scr.ClearDeferredWrap()
}

// CursorFormfeed clears the screen region and homes the cursor.
func (e *Engine) CursorFormfeed() {
	e.EraseScreen(0, 0, e.screenRows()-1, e.scr.RightMargin, false)
	e.moveEditTo(0)
	e.scr.CursorX = 0
	e.scr.ClearDeferredWrap()
}

// currentEraseAttr returns the attribute erase/fill operations stamp into
// cleared cells for the active variant.
func (e *Engine) currentEraseAttr() Attr {
	return bceErase(e.scr.DrawingAttr, e.scr.Emulation.decStyle())
}

// EraseLine replaces cells [start,end) of the current line with spaces,
// honoring protected cells when honorProtected is true.
func (e *Engine) EraseLine(start, end int, honorProtected bool) {
	e.buf.Edit().Erase(start, end, e.currentEraseAttr(), honorProtected)
}

// FillLineWithCharacter replaces cells [start,end) of the current line
// with ch in the current drawing attribute.
func (e *Engine) FillLineWithCharacter(start, end int, ch rune, honorProtected bool) {
	e.buf.Edit().FillWith(start, end, ch, e.scr.DrawingAttr, honorProtected)
}

// EraseScreen erases columns [left,right] of every row in
// [topRow,bottomRow] (a rectangle), extending the buffer as needed.
func (e *Engine) EraseScreen(topRow, left, bottomRow, right int, honorProtected bool) {
	attr := e.currentEraseAttr()
	for row := topRow; row <= bottomRow; row++ {
		l := e.lineAtRow(row)
		rowLeft, rowRight := left, right
		l.Erase(rowLeft, rowRight+1, attr, honorProtected)
	}
}

// RectangleScrollUp scrolls rows [top,bottom] within columns [left,right]
// up by count, clearing the vacated rows at the bottom of the rectangle.
// When count covers the whole region height, it short-circuits to a
// single erase, per spec §4.2/§8.
func (e *Engine) RectangleScrollUp(top, left, bottom, right, count int) {
	height := bottom - top + 1
	if count >= height {
		e.EraseScreen(top, left, bottom, right, false)
		return
	}

	for row := top; row <= bottom-count; row++ {
		src := e.lineAtRow(row + count)
		dst := e.lineAtRow(row)
		copyCellSpan(dst, src, left, right)
	}
	e.EraseScreen(bottom-count+1, left, bottom, right, false)
}

// RectangleScrollDown is the downward counterpart of RectangleScrollUp.
func (e *Engine) RectangleScrollDown(top, left, bottom, right, count int) {
	height := bottom - top + 1
	if count >= height {
		e.EraseScreen(top, left, bottom, right, false)
		return
	}

	for row := bottom; row >= top+count; row-- {
		src := e.lineAtRow(row - count)
		dst := e.lineAtRow(row)
		copyCellSpan(dst, src, left, right)
	}
	e.EraseScreen(top, left, top+count-1, right, false)
}

// copyCellSpan copies cells [left,right] from src to dst, extending dst's
// Length as needed.
func copyCellSpan(dst, src *Line, left, right int) {
	if right >= LineCapacity {
		right = LineCapacity - 1
	}
	for col := left; col <= right; col++ {
		ch, attr := src.CellAt(col)
		dst.SetCell(col, ch, attr)
	}
}

// DeleteCharacter removes n cells at the cursor, shifting the remainder
// of the current line left.
func (e *Engine) DeleteCharacter(n int) {
	e.buf.Edit().DeleteChars(e.scr.CursorX, n, e.currentEraseAttr())
}

// InsertBlanks inserts n blank cells at the cursor, shifting the
// remainder of the current line right.
func (e *Engine) InsertBlanks(n int) {
	e.buf.Edit().InsertBlanks(e.scr.CursorX, n, e.scr.DrawingAttr)
}

// SetDoubleWidth tags the current line double-width (or clears it).
func (e *Engine) SetDoubleWidth(on bool) {
	e.buf.Edit().SetDoubleWidth(on)
}

// SetDoubleHeight tags the current line's double-height half.
func (e *Engine) SetDoubleHeight(mode DoubleHeight) {
	e.buf.Edit().SetDoubleHeightMode(mode)
}

// InvertScrollbackColors toggles ReverseColor on every line in the
// visible region, padding short lines with spaces first so the reverse
// extends across the full screen width.
func (e *Engine) InvertScrollbackColors() {
	for row := 0; row < e.screenRows(); row++ {
		l := e.lineAtRow(row)
		l.PadTo(e.scr.RightMargin+1, DefaultAttr)
		l.ReverseColor = !l.ReverseColor
		l.Dirty = true
	}
}

// PrintCharacter applies the shared auto-wrap rule (spec §4.2) and writes
// r into the current cell using the current drawing attribute, then
// advances the cursor. Every Emulation's printable output flows through
// this single implementation.
func (e *Engine) PrintCharacter(r rune) {
	if e.scr.InsertMode {
		e.buf.Edit().InsertBlanks(e.scr.CursorX, 1, e.scr.DrawingAttr)
	}

	atMargin := e.scr.CursorX >= e.scr.RightMargin
	vtFamily := e.scr.Emulation.vtFamily()

	switch {
	case !atMargin:
		// Case A: cursor strictly inside the margin.
		e.writeCell(e.scr.CursorX, r)
		e.scr.CursorX++
		e.scr.ClearDeferredWrap()

	case e.scr.AutoWrap && vtFamily:
		// Case B: VT-family deferred wrap.
		if !e.scr.deferredWrap {
			e.writeCell(e.scr.RightMargin, r)
			e.scr.deferredWrap = true
		} else {
			e.wrapToNextLine()
			e.writeCell(0, r)
			e.scr.CursorX = 1
			e.scr.deferredWrap = false
		}

	case e.scr.AutoWrap:
		// Case C: non-VT-family immediate wrap.
		e.writeCell(e.scr.CursorX, r)
		e.wrapToNextLine()

	default:
		// Case D: auto-wrap off, cursor stays at the margin.
		e.writeCell(e.scr.CursorX, r)
	}
}

func (e *Engine) writeCell(col int, r rune) {
	e.buf.Edit().SetCell(col, r, e.scr.DrawingAttr)
}

func (e *Engine) wrapToNextLine() {
	e.CursorLinefeed(true)
}
