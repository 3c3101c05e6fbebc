package qterm

import "testing"

func TestTTYEmulationPrintable(t *testing.T) {
	e := New(WithVariant(VariantTTY))
	e.Feed([]byte("hi"))
	ch, _ := e.Buffer().Edit().CellAt(0)
	if ch != 'h' {
		t.Errorf("expected 'h' at col 0, got %q", ch)
	}
	ch, _ = e.Buffer().Edit().CellAt(1)
	if ch != 'i' {
		t.Errorf("expected 'i' at col 1, got %q", ch)
	}
}

func TestTTYEmulationCarriageReturnAndLinefeed(t *testing.T) {
	e := New(WithVariant(VariantTTY))
	e.Feed([]byte("ab\r\ncd"))
	if e.Screen().CursorX != 2 {
		t.Errorf("expected cursor at col 2 after printing 'cd', got %d", e.Screen().CursorX)
	}
	if e.Screen().CursorY != 1 {
		t.Errorf("expected cursor to have advanced one row on LF, got row %d", e.Screen().CursorY)
	}
}

func TestTTYEmulationIgnoresEscapeSequences(t *testing.T) {
	e := New(WithVariant(VariantTTY))
	e.Feed([]byte("\x1b[31mX"))
	// TTY has no escape-sequence vocabulary; every byte including ESC and
	// '[' etc. prints literally except the recognized control codes.
	ch, _ := e.Buffer().Edit().CellAt(0)
	if ch != 0x1b {
		t.Errorf("expected the raw ESC byte printed as a character, got %q", ch)
	}
}
