package qterm

// Variant identifies an emulation identity. The VT-family variants share
// one parameterized Emulation FSM; the others each have their own (see
// emulation.go).
type Variant int

const (
	VariantTTY Variant = iota
	VariantANSI
	VariantAvatar
	VariantVT52
	VariantVT100
	VariantVT102
	VariantVT220
	VariantLinux
	VariantLinuxUTF8
	VariantXterm
	VariantXtermUTF8
	VariantPETSCII
	VariantATASCII
	VariantDebug
)

// vtFamily reports whether v participates in the shared deferred-wrap
// rule (spec §4.2's Case B) as opposed to the immediate-wrap rule used by
// BBS-style variants (Case C).
func (v Variant) vtFamily() bool {
	switch v {
	case VariantVT52, VariantVT100, VariantVT102, VariantVT220,
		VariantLinux, VariantLinuxUTF8, VariantXterm, VariantXtermUTF8:
		return true
	default:
		return false
	}
}

// decStyle reports whether v uses DEC-style default-attribute erase
// rather than background-color erase, per spec §4.2.
func (v Variant) decStyle() bool {
	return v.vtFamily()
}

// Screen is the cursor/screen state value described in spec §3: cursor
// position, scrolling region, mode flags, the active drawing attribute,
// and the deferred-wrap flag. It holds no buffer reference; Engine pairs
// one Screen with one Buffer per active display (primary/alternate, if
// an embedder wants that split) and drives every §4.2 operation.
type Screen struct {
	CursorX, CursorY int

	ScrollTop, ScrollBottom int // [top, bottom], rows, inclusive

	OriginMode    bool
	AutoWrap      bool
	InsertMode    bool
	ReverseVideo  bool
	LineFeedOnCR  bool
	VisibleCursor bool

	Emulation            Variant
	Codepage              string
	DrawingAttr           Attr
	RightMargin           int
	FullDuplex            bool
	DisplayNull           bool

	// Capture/logging flags exposed to external collaborators, per spec
	// §3. qterm itself does not act on these beyond exposing them; a
	// script host or logger collaborator reads them to decide whether to
	// mirror bytes elsewhere.
	CaptureEnabled bool
	LoggingEnabled bool

	// deferredWrap is the VT100 deferred-wrap flag, kept on the screen
	// rather than the line per spec §9: it is a property of the last
	// write action at the margin, not of the line's contents.
	deferredWrap bool
}

// NewScreen returns a Screen sized to width columns and screenRows usable
// rows (i.e. height - status_height - 1, per spec §3/§4.1), with
// defaults matching spec §8's end-to-end scenario preconditions:
// auto-wrap on, full-height scroll region, default attribute, cursor
// visible.
func NewScreen(width, screenRows int) *Screen {
	return &Screen{
		ScrollTop:     0,
		ScrollBottom:  screenRows - 1,
		AutoWrap:      true,
		VisibleCursor: true,
		DrawingAttr:   DefaultAttr,
		RightMargin:   width - 1,
	}
}

// DeferredWrap reports the current state of the deferred-wrap flag.
func (s *Screen) DeferredWrap() bool { return s.deferredWrap }

// ClearDeferredWrap clears the deferred-wrap flag. Any cursor-movement
// operation with n > 0 calls this, per spec §4.2.
func (s *Screen) ClearDeferredWrap() { s.deferredWrap = false }
