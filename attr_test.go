package qterm

import "testing"

func TestAttrStyleBits(t *testing.T) {
	a := DefaultAttr
	a = a.WithStyle(StyleBold | StyleUnderline)

	if !a.HasStyle(StyleBold) || !a.HasStyle(StyleUnderline) {
		t.Error("expected both style bits set")
	}

	a = a.WithoutStyle(StyleBold)
	if a.HasStyle(StyleBold) {
		t.Error("expected bold cleared")
	}
	if !a.HasStyle(StyleUnderline) {
		t.Error("expected underline to remain")
	}
}

func TestAttrProtected(t *testing.T) {
	a := DefaultAttr.WithStyle(StyleProtect)
	if !a.Protected() {
		t.Error("expected protected")
	}
	if DefaultAttr.Protected() {
		t.Error("expected default attr unprotected")
	}
}

func TestAttrReversed(t *testing.T) {
	a := Attr{Fg: 1, Bg: 2}
	r := a.Reversed()
	if r.Fg != 2 || r.Bg != 1 {
		t.Errorf("expected swapped colors, got fg=%d bg=%d", r.Fg, r.Bg)
	}
}

func TestVT100CheckReverseColor(t *testing.T) {
	a := Attr{Fg: 1, Bg: 2}
	if got := vt100CheckReverseColor(a, false); got != a {
		t.Errorf("expected unchanged attr, got %+v", got)
	}
	if got := vt100CheckReverseColor(a, true); got.Fg != 2 || got.Bg != 1 {
		t.Errorf("expected reversed attr, got %+v", got)
	}
}

func TestBceErase(t *testing.T) {
	cur := Attr{Fg: 3, Bg: 4}
	if got := bceErase(cur, true); got != DefaultAttr {
		t.Errorf("DEC-style erase should reset to default, got %+v", got)
	}
	got := bceErase(cur, false)
	if got.Bg != 4 || got.Fg != DefaultColorIndex {
		t.Errorf("bce erase should adopt current background, got %+v", got)
	}
}
