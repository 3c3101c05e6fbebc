package qterm

// RenderWindow walks the visible window starting from viewBottom and
// writes cells to r, per spec §4.1. A larger skipLines shortens the walk
// back from viewBottom, so the window starts that many lines later; any
// non-zero skipLines also renders it as the scrollback view.
func (b *Buffer) RenderWindow(r Renderer, width, skipLines int) {
	top := b.visibleTop(skipLines)
	rows := b.visibleHeight - b.statusHeight - 1
	inScrollbackView := skipLines > 0

	l := top
	row := 0
	for ; row < rows && l != nil; row++ {
		b.renderLine(r, l, row, width, inScrollbackView)
		l = l.next
	}

	// Rows beyond the last renderable line are cleared and marked
	// single-width, per spec §4.1.
	for ; row < rows; row++ {
		r.SetRowDoubleWidth(row, false)
		r.ClearRemainder(row, 0, width)
	}

	r.Flush()
}

func (b *Buffer) renderLine(r Renderer, l *Line, row, width int, inScrollbackView bool) {
	doubleWidth := l.DoubleWidth
	r.SetRowDoubleWidth(row, doubleWidth)

	useHardwareDW := doubleWidth && r.HasTrueDoubleWidth()

	col := 0
	for i := 0; i < l.Length && col < width; i++ {
		ch, attr := l.Chars[i], l.Colors[i]
		attr = vt100CheckReverseColor(attr, l.ReverseColor)
		if l.SearchMatch && inScrollbackView {
			attr = l.SearchColors[i]
		}

		r.PutCell(row, col, ch, attr)
		col++

		if doubleWidth && !useHardwareDW {
			// Each character occupies two display cells when the
			// backend lacks hardware double-width support.
			if col < width {
				r.PutCell(row, col, ' ', attr)
				col++
			}
		}
	}

	r.ClearRemainder(row, col, width)
	l.Dirty = false
}
