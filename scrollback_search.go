package qterm

import "strings"

// SearchState tracks a resumable case-insensitive scrollback search, per
// spec §4.1.
type SearchState struct {
	pattern  string
	lastLine *Line // line after which "find again" resumes
}

// Search performs a fresh case-insensitive substring search over every
// line's text, starting from head. On each match it copies the line's
// Colors into SearchColors, ORs in REVERSE|BLINK over the matching span,
// moves viewBottom so the first matching line is near the top of the
// viewport, and returns whether any match was found.
func (b *Buffer) Search(pattern string, st *SearchState) bool {
	b.clearSearchMarks()
	st.pattern = pattern
	st.lastLine = nil

	if pattern == "" {
		return false
	}

	first := b.markMatches(b.head, pattern)
	if first == nil {
		return false
	}

	st.lastLine = first
	b.scrollToShow(first)
	return true
}

// FindAgain resumes searching from the line after the previously matched
// one. Exhausting all matches returns (found=false) to signal "no more
// matches", per spec §4.1, and the following call starts again from head.
// Matching lines re-scanned this pass are marked again; no marks are
// cleared -- callers that want a full fresh highlight set should call
// Search again.
func (b *Buffer) FindAgain(st *SearchState) bool {
	if st.pattern == "" {
		return false
	}

	start := b.head
	if st.lastLine != nil {
		if st.lastLine.next == nil {
			// exhausted forward; the next call starts again from head
			st.lastLine = nil
			return false
		}
		start = st.lastLine.next
	}

	next := b.markMatches(start, st.pattern)
	if next == nil {
		st.lastLine = nil
		return false
	}

	st.lastLine = next
	b.scrollToShow(next)
	return true
}

// clearSearchMarks clears SearchMatch on every line, per spec's "switching
// away from scrollback-view state clears the match state".
func (b *Buffer) clearSearchMarks() {
	for l := b.head; l != nil; l = l.next {
		l.ClearSearchMatch()
	}
}

// markMatches scans from start forward and marks every matching line,
// returning the first one found (or nil).
func (b *Buffer) markMatches(start *Line, pattern string) *Line {
	needle := strings.ToLower(pattern)
	var first *Line

	for l := start; l != nil; l = l.next {
		text := strings.ToLower(l.Text())
		idx := strings.Index(text, needle)
		if idx < 0 {
			continue
		}

		l.SearchColors = l.Colors
		end := idx + len(needle)
		if end > l.Length {
			end = l.Length
		}
		for i := idx; i < end; i++ {
			l.SearchColors[i] = l.SearchColors[i].WithStyle(StyleReverse | StyleBlink)
		}
		l.SearchMatch = true

		if first == nil {
			first = l
		}
	}
	return first
}

func (b *Buffer) scrollToShow(l *Line) {
	// Move viewBottom so l is visible near the top of the viewport: walk
	// forward visibleHeight-statusHeight-2 lines from l (clamping at
	// tail), matching render-window's "walk prev from viewBottom" so l
	// lands near the top row.
	rows := b.visibleHeight - b.statusHeight - 2
	if rows < 0 {
		rows = 0
	}
	target := l
	for i := 0; i < rows && target.next != nil; i++ {
		target = target.next
	}
	b.viewBottom = target
}
