package qterm

import "io"

// Transport is the byte-level surface the engine reads from and writes
// to. Framing, if any, is the caller's concern.
type Transport interface {
	ReadByte() (byte, error)
	Write(p []byte) (int, error)
}

// Renderer is the thin write-only surface the engine walks visible lines
// through during a render pass. Implementations own the actual screen
// (a TUI library, a test recorder, ...); qterm only calls these methods.
type Renderer interface {
	// PutCell writes one display cell at (row, col).
	PutCell(row, col int, ch rune, attr Attr)
	// MoveCursor places the hardware cursor at (row, col).
	MoveCursor(row, col int)
	// ClearRemainder clears columns [fromCol, width) of row.
	ClearRemainder(row, fromCol, width int)
	// SetRowDoubleWidth hints that row should render at half horizontal
	// density. Ignored by renderers that report HasTrueDoubleWidth()==false,
	// in which case the engine pre-expands double-width characters into
	// adjacent cells instead.
	SetRowDoubleWidth(row int, on bool)
	// Flush signals the end of a render pass.
	Flush()
	// HasTrueDoubleWidth reports whether SetRowDoubleWidth is honored.
	HasTrueDoubleWidth() bool
}

// NoopRenderer discards all output. Useful in tests that only assert on
// buffer/cursor state.
type NoopRenderer struct{}

func (NoopRenderer) PutCell(row, col int, ch rune, attr Attr)  {}
func (NoopRenderer) MoveCursor(row, col int)                   {}
func (NoopRenderer) ClearRemainder(row, fromCol, width int)    {}
func (NoopRenderer) SetRowDoubleWidth(row int, on bool)        {}
func (NoopRenderer) Flush()                                    {}
func (NoopRenderer) HasTrueDoubleWidth() bool                  { return false }

var _ Renderer = NoopRenderer{}

// NotificationSink receives transient, user-visible notices: save
// failures and the search results "no matches" and "no more matches".
// They are not fatal but the caller should surface them. Bell events go
// to BellSink instead.
type NotificationSink interface {
	Notify(message string)
}

// NoopNotification discards all notifications.
type NoopNotification struct{}

func (NoopNotification) Notify(string) {}

var _ NotificationSink = NoopNotification{}

// BellSink receives bell (BEL) events separately from text notifications,
// since most UIs want to ring a literal bell rather than print a message.
type BellSink interface {
	Ring()
}

// NoopBell ignores bell events.
type NoopBell struct{}

func (NoopBell) Ring() {}

var _ BellSink = NoopBell{}

// FileWriter is the minimal surface scrollback Save needs; satisfied by
// *os.File and by io.Writer wrappers in tests.
type FileWriter = io.Writer

// Clock supplies the timestamp used in save-to-file banners. Tests inject
// a fixed clock; production code uses RealClock.
type Clock interface {
	Now() string
}

// RealClock formats the current wall-clock time via the caller-supplied
// formatter function, avoiding a direct time.Now() call in library code
// paths that must stay deterministic for replay/testing. See NewRealClock.
type RealClock struct {
	nowFunc func() string
}

// NewRealClock returns a Clock backed by nowFunc, typically
// func() string { return time.Now().Format(time.RFC1123) }.
func NewRealClock(nowFunc func() string) RealClock {
	return RealClock{nowFunc: nowFunc}
}

func (c RealClock) Now() string {
	if c.nowFunc == nil {
		return ""
	}
	return c.nowFunc()
}

// FixedClock always returns the same timestamp; used in tests that need
// byte-identical save output.
type FixedClock string

func (c FixedClock) Now() string { return string(c) }

var _ Clock = FixedClock("")
