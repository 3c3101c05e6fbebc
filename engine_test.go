package qterm

import "testing"

func TestNewEngineDefaults(t *testing.T) {
	e := New()
	if e.Width() != DefaultWidth || e.Height() != DefaultHeight {
		t.Errorf("expected default dimensions, got %dx%d", e.Width(), e.Height())
	}
	if e.Variant() != VariantVT100 {
		t.Errorf("expected default variant VT100, got %v", e.Variant())
	}
	if !e.Screen().AutoWrap {
		t.Error("expected auto-wrap on by default")
	}
}

func TestWithSizeOverridesDefaults(t *testing.T) {
	e := New(WithSize(40, 10))
	if e.Width() != 40 || e.Height() != 10 {
		t.Errorf("expected 40x10, got %dx%d", e.Width(), e.Height())
	}
}

func TestScreenRowsFormula(t *testing.T) {
	e := New(WithSize(80, 25), WithStatusHeight(1))
	if got := e.screenRows(); got != 23 {
		t.Errorf("expected height - status_height - 1 = 23, got %d", got)
	}
}

func TestSetOptionsWiresLineWrap(t *testing.T) {
	e := New()
	e.SetOptions(Options{LineWrap: false})
	if e.Screen().AutoWrap {
		t.Error("expected SetOptions to apply line_wrap to the screen's auto-wrap flag")
	}
}

func TestSetOptionsWiresScrollbackCap(t *testing.T) {
	e := New()
	e.SetOptions(Options{ScrollbackLinesMax: 3})
	if e.Buffer().Len() > 3 {
		t.Errorf("expected scrollback cap applied immediately, got length %d", e.Buffer().Len())
	}
}

func TestAssume80ColumnsAppliesOnlyToBBSVariants(t *testing.T) {
	e := New(WithSize(132, 25), WithVariant(VariantANSI), WithOptions(Options{Assume80Columns: true}))
	if e.Screen().RightMargin != 79 {
		t.Errorf("expected the 80-column assumption to force right margin to 79 for a BBS variant, got %d", e.Screen().RightMargin)
	}
}

func TestAssume80ColumnsIgnoredForVTFamily(t *testing.T) {
	e := New(WithSize(132, 25), WithVariant(VariantVT100), WithOptions(Options{Assume80Columns: true}))
	if e.Screen().RightMargin != 131 {
		t.Errorf("expected VT-family variants to keep the real terminal width, got right margin %d", e.Screen().RightMargin)
	}
}

func TestSetVariantResetsFSM(t *testing.T) {
	e := New(WithVariant(VariantVT100))
	e.Feed([]byte("\x1b[31m")) // leave drawing attr non-default
	e.SetVariant(VariantTTY)
	if e.Variant() != VariantTTY {
		t.Errorf("expected variant switched to TTY, got %v", e.Variant())
	}
	if e.Screen().DeferredWrap() {
		t.Error("expected SetVariant to clear the deferred-wrap flag")
	}
}

func TestFeedStrip8thBit(t *testing.T) {
	e := New(WithVariant(VariantTTY), WithOptions(Options{Strip8thBit: true}))
	e.Feed([]byte{0xC1}) // 'A' | 0x80
	ch, _ := e.Buffer().Edit().CellAt(0)
	if ch != 'A' {
		t.Errorf("expected the high bit stripped before interpretation, got %q", ch)
	}
}

func TestFeedDisplayNullSuppressesNulByDefault(t *testing.T) {
	e := New(WithVariant(VariantTTY))
	e.Feed([]byte{0x00, 'A'})
	if e.Screen().CursorX != 1 {
		t.Errorf("expected the NUL byte to be discarded, leaving cursor at col 1, got %d", e.Screen().CursorX)
	}
}

func TestFeedDisplayNullWhenEnabled(t *testing.T) {
	e := New(WithVariant(VariantDebug), WithOptions(Options{DisplayNull: true}))
	e.Feed([]byte{0x00})
	ch, _ := e.Buffer().Edit().CellAt(0)
	if ch != '0' {
		t.Errorf("expected display_null to let the NUL byte reach the active emulation, got %q", ch)
	}
}

func TestEncodeKeyPerVariant(t *testing.T) {
	e := New(WithVariant(VariantVT100))
	if got := e.EncodeKey(KeyUp); got != "\x1bOA" {
		t.Errorf("expected VT100 up-arrow encoding, got %q", got)
	}
	e.SetVariant(VariantVT52)
	if got := e.EncodeKey(KeyUp); got != "\x1bA" {
		t.Errorf("expected VT52 up-arrow encoding, got %q", got)
	}
}
