package qterm

import "sync"

const (
	// DefaultWidth/DefaultHeight mirror the spec's example scenarios
	// (WIDTH=80, HEIGHT=25).
	DefaultWidth  = 80
	DefaultHeight = 25
	// DefaultStatusHeight is the one-row status line subtracted from the
	// visible region in spec §3/§4.1's capacity formulas.
	DefaultStatusHeight = 1
)

// Engine owns the scrollback buffer, the cursor/screen state, the active
// emulation, and the configured providers -- the single engine value spec
// §9 calls for in place of the reference implementation's global mutable
// state.
type Engine struct {
	mu sync.RWMutex

	width, height, statusHeight int

	buf *Buffer
	scr *Screen
	emu Emulation
	tabs *TabStops

	opts Options

	renderer Renderer
	notify   NotificationSink
	bell     BellSink
	response Transport

	search           SearchState
	inScrollbackView bool

	// savedCursorX/Y/Attr back DECSC/DECRC (ESC 7 / ESC 8), per spec
	// §4.3.c.
	savedCursorX, savedCursorY int
	savedAttr                  Attr

	music musicPlaybackState
}

// Option configures an Engine during construction.
type Option func(*Engine)

// WithSize sets the terminal dimensions. Values <= 0 fall back to
// DefaultWidth/DefaultHeight.
func WithSize(width, height int) Option {
	return func(e *Engine) {
		if width > 0 {
			e.width = width
		}
		if height > 0 {
			e.height = height
		}
	}
}

// WithStatusHeight overrides the status-line row count (default 1).
func WithStatusHeight(n int) Option {
	return func(e *Engine) {
		if n >= 0 {
			e.statusHeight = n
		}
	}
}

// WithVariant selects the initial active emulation. The first option
// pass in New runs before the screen exists, so this is a no-op until
// the second pass (after NewScreen) applies it for real.
func WithVariant(v Variant) Option {
	return func(e *Engine) {
		if e.scr != nil {
			e.scr.Emulation = v
		}
	}
}

// WithRenderer sets the render-window target. Defaults to NoopRenderer.
func WithRenderer(r Renderer) Option {
	return func(e *Engine) { e.renderer = r }
}

// WithNotificationSink sets the sink for non-fatal notices. Defaults to
// NoopNotification.
func WithNotificationSink(n NotificationSink) Option {
	return func(e *Engine) { e.notify = n }
}

// WithBellSink sets the handler for BEL events. Defaults to NoopBell.
func WithBellSink(b BellSink) Option {
	return func(e *Engine) { e.bell = b }
}

// WithResponseWriter sets the transport writer used for escape-sequence
// responses (cursor position reports, etc.).
func WithResponseWriter(t Transport) Option {
	return func(e *Engine) { e.response = t }
}

// WithOptions installs a full Options value, overriding DefaultOptions().
func WithOptions(o Options) Option {
	return func(e *Engine) { e.opts = o }
}

// New creates an engine with the given options. Defaults to
// DefaultWidth x DefaultHeight, VT100, scrollback enabled at 20000 lines.
func New(opts ...Option) *Engine {
	e := &Engine{
		width:        DefaultWidth,
		height:       DefaultHeight,
		statusHeight: DefaultStatusHeight,
		opts:         DefaultOptions(),
		renderer:     NoopRenderer{},
		notify:       NoopNotification{},
		bell:         NoopBell{},
	}

	// Apply the full option list once up front so size/status-height
	// options land before the screen is constructed. Options that
	// reference e.scr (WithVariant) no-op on this pass -- the screen
	// doesn't exist yet -- and take effect on the second pass below.
	for _, opt := range opts {
		opt(e)
	}

	e.scr = NewScreen(e.width, e.screenRows())
	e.scr.Emulation = VariantVT100

	for _, opt := range opts {
		opt(e)
	}

	e.scr.AutoWrap = e.opts.LineWrap
	e.scr.LineFeedOnCR = e.opts.LineFeedOnCR
	e.scr.DisplayNull = e.opts.DisplayNull
	e.applyColumnAssumption()

	e.buf = NewBuffer(e.height, e.statusHeight)
	e.buf.SetNotificationSink(e.notify)
	e.buf.EnableScrollback(e.opts.ScrollbackLinesMax != 0, e.opts.ScrollbackLinesMax)

	// Pre-populate a full screen's worth of lines so row-addressed
	// operations (erase, rectangle scroll) can always reach the last
	// usable row from the initial cursor position at row 0.
	for i := 1; i < e.screenRows(); i++ {
		e.buf.Append(DefaultAttr)
	}
	e.buf.SetEdit(e.buf.Head())
	e.buf.SetViewBottom(e.buf.Tail())

	e.tabs = NewTabStops(e.width)
	e.emu = newEmulation(e, e.scr.Emulation)

	return e
}

// Width/Height/StatusHeight report the configured dimensions.
func (e *Engine) Width() int        { return e.width }
func (e *Engine) Height() int       { return e.height }
func (e *Engine) StatusHeight() int { return e.statusHeight }

// screenRows is the number of usable rows in the linked-list buffer:
// HEIGHT - status_height - 1, per spec §3/§4.1.
func (e *Engine) screenRows() int {
	r := e.height - e.statusHeight - 1
	if r < 1 {
		r = 1
	}
	return r
}

// applyColumnAssumption forces the right margin to column 79 for
// BBS-family variants (everything outside the VT family) when
// Options.Assume80Columns is set, per spec §6, regardless of the
// configured terminal width.
func (e *Engine) applyColumnAssumption() {
	if e.opts.Assume80Columns && !e.scr.Emulation.vtFamily() {
		e.scr.RightMargin = 79
	}
}

// Buffer returns the scrollback buffer.
func (e *Engine) Buffer() *Buffer { return e.buf }

// Screen returns the cursor/screen state.
func (e *Engine) Screen() *Screen { return e.scr }

// Options returns the active configuration.
func (e *Engine) Options() Options { return e.opts }

// SetOptions replaces the active configuration and re-applies the
// scrollback cap policy.
func (e *Engine) SetOptions(o Options) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.opts = o
	e.buf.EnableScrollback(o.ScrollbackLinesMax != 0, o.ScrollbackLinesMax)
	e.scr.AutoWrap = o.LineWrap
	e.scr.LineFeedOnCR = o.LineFeedOnCR
	e.scr.DisplayNull = o.DisplayNull
}

// Variant returns the active emulation identity.
func (e *Engine) Variant() Variant { return e.scr.Emulation }

// SetVariant switches the active emulation, resetting its FSM state and
// unconditionally clearing the deferred-wrap flag, per spec §9's
// resolution of the "several variants leave their flag set across
// emulation reset" open question.
func (e *Engine) SetVariant(v Variant) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.flushPendingEmulation()
	e.scr.Emulation = v
	e.emu = newEmulation(e, v)
	e.scr.ClearDeferredWrap()
	e.applyColumnAssumption()
}

// flushPendingEmulation lets an outgoing emulation flush any partial
// trailing state before being replaced, per the DEBUG hex view's
// "switching away... flushes the partial trailing line" contract.
func (e *Engine) flushPendingEmulation() {
	if f, ok := e.emu.(interface{ flushPending() }); ok {
		f.flushPending()
	}
}

// Notify routes a transient, non-fatal notice to the configured sink.
func (e *Engine) Notify(msg string) { e.notify.Notify(msg) }

// Bell triggers the configured bell sink.
func (e *Engine) Bell() { e.bell.Ring() }

// WriteResponse writes an escape-sequence response back to the
// transport, if one is configured.
func (e *Engine) WriteResponse(p []byte) {
	if e.response != nil {
		e.response.Write(p)
	}
}

// Feed processes raw input bytes, driving the active emulation FSM byte
// by byte through print_character, per spec §4.3/§5. Bytes are processed
// strictly in order; each print_character call (including any wrap/scroll
// side effect) completes before the next begins.
func (e *Engine) Feed(data []byte) {
	e.mu.Lock()
	defer e.mu.Unlock()

	utf8Variant := isUTF8Variant(e.scr.Emulation)

	for _, raw := range data {
		b := raw
		if e.opts.Strip8thBit {
			b &= 0x7F
		}

		if !(utf8Variant && b >= 0x80) {
			b = translateCodepage(e.opts.Codepage, b)
		}

		if b == 0 && !e.opts.DisplayNull {
			continue
		}

		e.dispatchByte(int(b))
	}
}

// dispatchByte drives one input byte through the active Emulation,
// draining any ManyChars run before moving to the next byte.
func (e *Engine) dispatchByte(b int) {
	res := e.emu.Step(b)
	for {
		switch res.Kind {
		case NoCharYet:
			return
		case OneChar:
			e.PrintCharacter(res.Char)
			return
		case ManyChars:
			e.PrintCharacter(res.Char)
			res = e.emu.Step(StepSentinel)
		}
	}
}

// EncodeKey maps an abstract key to the wide string the active
// emulation's keystroke encoder produces for it.
func (e *Engine) EncodeKey(k Key) string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.emu.EncodeKey(k)
}

// isUTF8Variant reports whether v's input bytes bypass the codepage
// translation table above 0x80, per spec §4.3.
func isUTF8Variant(v Variant) bool {
	return v == VariantLinuxUTF8 || v == VariantXtermUTF8
}

// EnterScrollbackView puts the engine into interactive scrollback-view
// state: new bytes still mutate the tail, but viewBottom stops tracking
// it, per spec §5.
func (e *Engine) EnterScrollbackView() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.inScrollbackView = true
	e.buf.SetTracksNewest(false)
}

// ExitScrollbackView leaves scrollback-view state, resumes tracking the
// newest line, and clears any search-match overlay per spec §3.
func (e *Engine) ExitScrollbackView() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.inScrollbackView = false
	e.buf.SetTracksNewest(true)
	e.buf.SetViewBottom(e.buf.Tail())
	e.buf.clearSearchMarks()
}

// InScrollbackView reports whether the engine is in interactive
// scrollback-view state.
func (e *Engine) InScrollbackView() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.inScrollbackView
}

// Render walks the current visible window and writes it to the
// configured renderer (or an explicitly supplied one).
func (e *Engine) Render(r Renderer, skipLines int) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if r == nil {
		r = e.renderer
	}
	e.buf.RenderWindow(r, e.width, skipLines)
}

// Search runs a fresh scrollback search and enters scrollback-view state
// on a hit, matching qodem's "jump to match" UX.
func (e *Engine) Search(pattern string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	found := e.buf.Search(pattern, &e.search)
	if found {
		e.inScrollbackView = true
		e.buf.SetTracksNewest(false)
	} else {
		e.notify.Notify("no matches")
	}
	return found
}

// FindAgain resumes the previous search. On exhaustion it notifies the
// sink and wraps back to head, per spec §4.1.
func (e *Engine) FindAgain() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	found := e.buf.FindAgain(&e.search)
	if !found {
		e.notify.Notify("no more matches")
	}
	return found
}
