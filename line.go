package qterm

import "github.com/unilibs/uniwidth"

// LineCapacity is the fixed horizontal capacity of a Line, in cells.
const LineCapacity = 256

// DoubleHeight selects which half of a double-height logical row a Line
// renders.
type DoubleHeight uint8

const (
	// HeightSingle is an ordinary, single-height line.
	HeightSingle DoubleHeight = iota
	// HeightTop renders the top half of a double-height logical row.
	HeightTop
	// HeightBottom renders the bottom half of a double-height logical row.
	HeightBottom
)

// Line is a fixed-capacity horizontal row of the scrollback buffer. Cells
// at index >= Length are implicitly spaces with DefaultAttr; callers must
// not assume anything about the contents of Chars/Colors beyond Length.
type Line struct {
	Length int
	Chars  [LineCapacity]rune
	Colors [LineCapacity]Attr

	Dirty bool

	DoubleWidth  bool
	DoubleHeight DoubleHeight
	ReverseColor bool

	SearchColors [LineCapacity]Attr
	SearchMatch  bool

	prev, next *Line
}

// NewLine returns a Line whose cells are implicitly spaces in attr, ready
// to be linked into a Buffer.
func NewLine(attr Attr) *Line {
	l := &Line{}
	l.fill(0, LineCapacity, ' ', attr, false)
	l.Length = 0
	return l
}

// fill writes ch/attr into [start,end) unconditionally (no protection
// check); used by erase/append paths that already decided to overwrite.
func (l *Line) fill(start, end int, ch rune, attr Attr, markDirty bool) {
	if start < 0 {
		start = 0
	}
	if end > LineCapacity {
		end = LineCapacity
	}
	for i := start; i < end; i++ {
		l.Chars[i] = ch
		l.Colors[i] = attr
	}
	if markDirty {
		l.Dirty = true
	}
}

// CellAt returns the rune and attribute that would be rendered at col,
// honoring the "cells beyond Length render as space with default
// attribute" invariant.
func (l *Line) CellAt(col int) (rune, Attr) {
	if col < 0 || col >= LineCapacity {
		return ' ', DefaultAttr
	}
	if col >= l.Length {
		return ' ', DefaultAttr
	}
	return l.Chars[col], l.Colors[col]
}

// SetCell writes a printable character at col in attr, extending Length
// if col is the new rightmost meaningful cell, and marks the line dirty.
// Any gap between the old Length and col is padded with spaces in attr,
// matching the cursor-right "pads the line with spaces" rule in §4.2.
func (l *Line) SetCell(col int, ch rune, attr Attr) {
	if col < 0 || col >= LineCapacity {
		return
	}
	if col >= l.Length {
		l.fill(l.Length, col, ' ', attr, false)
		l.Length = col + 1
	}
	l.Chars[col] = ch
	l.Colors[col] = attr
	l.Dirty = true
}

// SetCellRaw writes directly into a cell without touching Length growth
// beyond what's needed to keep the cell addressable, does not advance any
// cursor, and marks the line dirty. This is the "raw cell write"
// primitive spec §9 calls for so the DEBUG hex view's writes (hex pairs
// in columns 0-47) go through a documented entry point instead of touching memory
// directly.
func (l *Line) SetCellRaw(col int, ch rune, attr Attr) {
	if col < 0 || col >= LineCapacity {
		return
	}
	if col >= l.Length {
		l.fill(l.Length, col+1, ' ', DefaultAttr, false)
		l.Length = col + 1
	}
	l.Chars[col] = ch
	l.Colors[col] = attr
	l.Dirty = true
}

// Erase clears [start,end) to space, honoring protected cells when
// honorProtected is true, and stamps eraseAttr into the cleared cells.
// Length shrinks only when the erase touches its current tail and no
// protected cell blocks the shrink.
func (l *Line) Erase(start, end int, eraseAttr Attr, honorProtected bool) {
	if start < 0 {
		start = 0
	}
	if end > LineCapacity {
		end = LineCapacity
	}
	for i := start; i < end; i++ {
		if honorProtected && l.Colors[i].Protected() {
			continue
		}
		l.Chars[i] = ' '
		l.Colors[i] = eraseAttr
	}
	l.Dirty = true
	l.recomputeLength()
}

// recomputeLength shrinks Length to the rightmost non-space cell (or a
// cell carrying a non-default attribute), so trailing erases don't leave
// a padded-but-empty tail counted as meaningful.
func (l *Line) recomputeLength() {
	for l.Length > 0 {
		i := l.Length - 1
		if l.Chars[i] != ' ' || l.Colors[i] != DefaultAttr {
			break
		}
		l.Length--
	}
}

// PadTo extends Length to n (a no-op if n <= Length), filling the new
// cells with spaces in attr. Used by cursor-right travel past the
// current line length (spec §4.2).
func (l *Line) PadTo(n int, attr Attr) {
	if n > LineCapacity {
		n = LineCapacity
	}
	if n <= l.Length {
		return
	}
	l.fill(l.Length, n, ' ', attr, false)
	l.Length = n
	l.Dirty = true
}

// FillWith writes ch/attr into [start,end), honoring protected cells when
// honorProtected is true, and extends Length to cover the filled span.
// Used by fill_line_with_character (spec §4.2), which differs from Erase
// in writing an arbitrary character rather than space.
func (l *Line) FillWith(start, end int, ch rune, attr Attr, honorProtected bool) {
	if start < 0 {
		start = 0
	}
	if end > LineCapacity {
		end = LineCapacity
	}
	for i := start; i < end; i++ {
		if honorProtected && l.Colors[i].Protected() {
			continue
		}
		l.Chars[i] = ch
		l.Colors[i] = attr
	}
	l.Dirty = true
	if end > l.Length {
		l.Length = end
	}
}

// InsertBlanks shifts cells at and after col right by n (cells that fall
// off the right edge of capacity are discarded) and fills the vacated
// span with spaces in attr.
func (l *Line) InsertBlanks(col, n int, attr Attr) {
	if col < 0 || col >= LineCapacity || n <= 0 {
		return
	}
	if n > LineCapacity-col {
		n = LineCapacity - col
	}
	copy(l.Chars[col+n:LineCapacity], l.Chars[col:LineCapacity-n])
	copy(l.Colors[col+n:LineCapacity], l.Colors[col:LineCapacity-n])
	l.fill(col, col+n, ' ', attr, false)
	l.Dirty = true
	if l.Length+n > LineCapacity {
		l.Length = LineCapacity
	} else if l.Length > col {
		l.Length += n
	}
}

// DeleteChars removes n cells starting at col, shifting the remainder
// left and padding the vacated tail with spaces in attr.
func (l *Line) DeleteChars(col, n int, attr Attr) {
	if col < 0 || col >= LineCapacity || n <= 0 {
		return
	}
	if n > LineCapacity-col {
		n = LineCapacity - col
	}
	copy(l.Chars[col:LineCapacity-n], l.Chars[col+n:LineCapacity])
	copy(l.Colors[col:LineCapacity-n], l.Colors[col+n:LineCapacity])
	l.fill(LineCapacity-n, LineCapacity, ' ', attr, false)
	l.Dirty = true
	if l.Length > col {
		l.Length -= n
		if l.Length < col {
			l.Length = col
		}
	}
}

// SetDoubleWidth tags the line as double-width. Clearing double-width
// (single=true passed as false) also clears double-height, per spec
// §3's invariant that DoubleHeight != 0 implies DoubleWidth.
func (l *Line) SetDoubleWidth(on bool) {
	l.DoubleWidth = on
	if !on {
		l.DoubleHeight = HeightSingle
	}
	l.Dirty = true
}

// SetDoubleHeightMode sets the double-height half and implies
// double-width whenever mode != HeightSingle.
func (l *Line) SetDoubleHeightMode(mode DoubleHeight) {
	l.DoubleHeight = mode
	if mode != HeightSingle {
		l.DoubleWidth = true
	}
	l.Dirty = true
}

// ClearSearchMatch resets any search-highlight overlay on the line.
func (l *Line) ClearSearchMatch() {
	l.SearchMatch = false
}

// RenderWidth returns the display width of the line's meaningful cells,
// honoring double-width glyphs via uniwidth.
func (l *Line) RenderWidth() int {
	w := 0
	for i := 0; i < l.Length; i++ {
		cw := uniwidth.RuneWidth(l.Chars[i])
		if cw <= 0 {
			cw = 1
		}
		w += cw
	}
	return w
}

// Text returns the line's meaningful cells as a string, trailing space
// included up to Length.
func (l *Line) Text() string {
	return string(l.Chars[:l.Length])
}
