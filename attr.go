package qterm

// Style is a bitmask of per-cell rendering attributes.
type Style uint8

const (
	StyleBold Style = 1 << iota
	StyleUnderline
	StyleReverse
	StyleBlink
	StyleProtect
)

// DefaultColorIndex is the sentinel foreground/background index meaning
// "use the terminal's default color", as opposed to an explicit palette
// entry. It mirrors the teacher's NamedColorForeground/Background
// sentinels but as a plain packed index rather than an interface value.
const DefaultColorIndex uint8 = 255

// Attr is a packed cell attribute: a foreground index, a background
// index, and a style bitmask. It is small enough to pass and compare by
// value, the way the spec requires ("packed attribute value").
type Attr struct {
	Fg    uint8
	Bg    uint8
	Style Style
}

// DefaultAttr is the attribute new cells and fresh lines start with:
// default colors, no style bits.
var DefaultAttr = Attr{Fg: DefaultColorIndex, Bg: DefaultColorIndex}

// HasStyle reports whether every bit in flags is set.
func (a Attr) HasStyle(flags Style) bool {
	return a.Style&flags == flags
}

// WithStyle returns a copy of a with flags set.
func (a Attr) WithStyle(flags Style) Attr {
	a.Style |= flags
	return a
}

// WithoutStyle returns a copy of a with flags cleared.
func (a Attr) WithoutStyle(flags Style) Attr {
	a.Style &^= flags
	return a
}

// Protected reports whether the cell this attribute belongs to is exempt
// from erase operations invoked with honorProtected=true.
func (a Attr) Protected() bool {
	return a.HasStyle(StyleProtect)
}

// Reversed returns a copy of a with its foreground and background
// swapped, the cell-level counterpart of a line's or screen's reverse
// flag. Style bits (other than the visual effect of REVERSE, which is a
// separate bit entirely) are left untouched.
func (a Attr) Reversed() Attr {
	a.Fg, a.Bg = a.Bg, a.Fg
	return a
}

// vt100CheckReverseColor computes the effective rendering attribute for a
// cell given its line's DEC-style reverse flag, per spec §4.1's
// render-window policy. It is distinct from the REVERSE style bit, which
// is a per-cell SGR attribute; this is a per-line rendering override.
func vt100CheckReverseColor(a Attr, lineReverse bool) Attr {
	if lineReverse {
		return a.Reversed()
	}
	return a
}

// bceErase returns the attribute erase operations should stamp into
// cleared cells. DEC-style variants (the VT family) always reset to the
// default attribute; others honor "background-color erase": cleared
// cells adopt the background of the current drawing attribute.
func bceErase(current Attr, decStyle bool) Attr {
	if decStyle {
		return DefaultAttr
	}
	return Attr{Fg: DefaultColorIndex, Bg: current.Bg}
}
