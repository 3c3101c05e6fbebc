package qterm

// Buffer is the scrollback: a doubly linked list of fixed-width Line
// records with four named anchors (head, tail, edit, viewBottom), per
// spec §3/§4.1. The doubly linked list is an idiomatic-Go reading of the
// design note in spec §9: heap-allocated, GC-owned *Line nodes sidestep
// the aliasing/allocation-churn pitfalls that note warns about in a
// systems language without a collector.
type Buffer struct {
	head, tail       *Line
	edit             *Line
	viewBottom       *Line
	length           int
	maxLines         int // 0 = uncapped while scrollback is on; ignored when off
	scrollbackOn     bool
	visibleHeight    int
	statusHeight     int
	trackingNewest   bool // append() advances viewBottom to the new tail
	notify           NotificationSink
}

// NewBuffer creates an empty scrollback buffer. visibleHeight/statusHeight
// bound the buffer's size when scrollback is disabled, per spec §3's
// invariant "total length <= visible_height - status_height - 1".
func NewBuffer(visibleHeight, statusHeight int) *Buffer {
	b := &Buffer{
		visibleHeight:  visibleHeight,
		statusHeight:   statusHeight,
		trackingNewest: true,
		notify:         NoopNotification{},
	}
	first := NewLine(DefaultAttr)
	b.head, b.tail, b.edit, b.viewBottom = first, first, first, first
	b.length = 1
	return b
}

// SetNotificationSink installs the sink used for non-fatal save/search
// notices.
func (b *Buffer) SetNotificationSink(n NotificationSink) {
	if n == nil {
		n = NoopNotification{}
	}
	b.notify = n
}

// Len returns the number of lines currently in the buffer.
func (b *Buffer) Len() int { return b.length }

// Head returns the oldest line.
func (b *Buffer) Head() *Line { return b.head }

// Tail returns the newest line.
func (b *Buffer) Tail() *Line { return b.tail }

// Edit returns the line containing the virtual cursor's row.
func (b *Buffer) Edit() *Line { return b.edit }

// SetEdit reassigns the edit anchor.
func (b *Buffer) SetEdit(l *Line) { b.edit = l }

// ViewBottom returns the last line currently visible in the viewport.
func (b *Buffer) ViewBottom() *Line { return b.viewBottom }

// SetViewBottom reassigns the view-bottom anchor.
func (b *Buffer) SetViewBottom(l *Line) { b.viewBottom = l }

// EnableScrollback switches the cap policy between "keep at most
// maxLines total" (enabled) and "keep only the visible region"
// (disabled). max<=0 means uncapped while enabled.
func (b *Buffer) EnableScrollback(enabled bool, maxLines int) {
	b.scrollbackOn = enabled
	b.maxLines = maxLines
	b.enforceCap()
}

// SetTracksNewest controls whether Append moves viewBottom to the new
// tail line. The engine sets this to false while the user is in
// scrollback-view state (spec §5: "new bytes still mutate the
// scrollback... but view_bottom is not moved until the user exits
// scrollback-view").
func (b *Buffer) SetTracksNewest(tracks bool) { b.trackingNewest = tracks }

// Next returns l's newer neighbor, or nil at the tail.
func (l *Line) Next() *Line { return l.next }

// Prev returns l's older neighbor, or nil at the head.
func (l *Line) Prev() *Line { return l.prev }

// Append allocates a new tail line, spaces in attr, links it after the
// current tail, advances viewBottom if trackingNewest, and enforces the
// configured cap. Returns the new line.
func (b *Buffer) Append(attr Attr) *Line {
	l := NewLine(attr)
	l.prev = b.tail
	b.tail.next = l
	b.tail = l
	b.length++

	if b.trackingNewest {
		b.viewBottom = l
	}

	b.enforceCap()
	return l
}

// InsertBefore links a new line, spaces in attr, immediately before ref
// and returns it. Used by downward-scroll primitives (spec §4.1). If
// viewBottom == ref, viewBottom advances to the new line's prev so the
// same cells stay visible, per spec's "Insert before a line" note.
func (b *Buffer) InsertBefore(ref *Line, attr Attr) *Line {
	l := NewLine(attr)
	l.next = ref
	l.prev = ref.prev
	if ref.prev != nil {
		ref.prev.next = l
	} else {
		b.head = l
	}
	ref.prev = l
	b.length++

	if b.viewBottom == ref && l.prev != nil {
		b.viewBottom = l.prev
	}

	b.enforceCap()
	return l
}

// dropHead evicts the oldest line. Panics (invariant violation, per spec
// §7) if the buffer would become empty, since head/tail/edit/viewBottom
// must always reference a live line.
func (b *Buffer) dropHead() {
	if b.length <= 1 {
		panic(InvariantError{Msg: "scrollback: cannot drop the only remaining line"})
	}
	old := b.head
	b.head = old.next
	b.head.prev = nil
	b.length--

	if b.edit == old {
		b.edit = b.head
	}
	if b.viewBottom == old {
		b.viewBottom = b.head
	}
	old.next = nil
}

// dropLine evicts an arbitrary non-anchor-critical line (used when
// scrollback is disabled and the line to discard is the current top of
// the visible window, which need not be the head).
func (b *Buffer) dropLine(l *Line) {
	if b.length <= 1 {
		panic(InvariantError{Msg: "scrollback: cannot drop the only remaining line"})
	}
	if l == b.head {
		b.dropHead()
		return
	}
	if l.prev != nil {
		l.prev.next = l.next
	}
	if l.next != nil {
		l.next.prev = l.prev
	}
	if l == b.tail {
		b.tail = l.prev
	}
	if l == b.edit {
		b.edit = l.next
	}
	if l == b.viewBottom {
		b.viewBottom = l.next
	}
	b.length--
	l.prev, l.next = nil, nil
}

// enforceCap drops lines per spec §4.1's append-time policy: while
// scrollback is enabled, drop head while length > maxLines (maxLines<=0
// means uncapped); while disabled, drop the line at the top of the
// visible region while the buffer holds more than the visible region.
func (b *Buffer) enforceCap() {
	if b.scrollbackOn {
		if b.maxLines <= 0 {
			return
		}
		for b.length > b.maxLines {
			b.dropHead()
		}
		return
	}

	limit := b.visibleHeight - b.statusHeight - 1
	if limit < 1 {
		limit = 1
	}
	for b.length > limit {
		top := b.visibleTop(0)
		b.dropLine(top)
	}
}

// visibleTop walks back visibleHeight-statusHeight-1-skipLines lines from
// viewBottom to find the top of the current visible window, per spec
// §4.1's render-window algorithm, clamping at head.
func (b *Buffer) visibleTop(skipLines int) *Line {
	rows := b.visibleHeight - b.statusHeight - 1 - skipLines
	if rows < 0 {
		rows = 0
	}
	l := b.viewBottom
	for i := 0; i < rows && l.prev != nil; i++ {
		l = l.prev
	}
	return l
}
