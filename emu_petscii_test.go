package qterm

import "testing"

func TestPETSCIIPrintable(t *testing.T) {
	e := New(WithVariant(VariantPETSCII))
	e.Feed([]byte("AB"))
	ch, _ := e.Buffer().Edit().CellAt(0)
	if ch != 'A' {
		t.Errorf("expected 'A', got %q", ch)
	}
}

func TestPETSCIIClearHome(t *testing.T) {
	e := New(WithVariant(VariantPETSCII))
	e.Feed([]byte("xyz"))
	e.Feed([]byte{0x93})
	if e.Screen().CursorX != 0 || e.Screen().CursorY != 0 {
		t.Errorf("expected 0x93 to clear and home the cursor, got (%d,%d)", e.Screen().CursorX, e.Screen().CursorY)
	}
}

func TestPETSCIICursorMovement(t *testing.T) {
	e := New(WithVariant(VariantPETSCII))
	e.Feed([]byte{0x1d}) // cursor right
	if e.Screen().CursorX != 1 {
		t.Errorf("expected cursor right to advance one column, got %d", e.Screen().CursorX)
	}
	e.Feed([]byte{0x9d}) // cursor left
	if e.Screen().CursorX != 0 {
		t.Errorf("expected cursor left to return to column 0, got %d", e.Screen().CursorX)
	}
}

func TestPETSCIIHighBitUsesLowTableEntry(t *testing.T) {
	e := New(WithVariant(VariantPETSCII))
	e.Feed([]byte{0xC1})
	ch, _ := e.Buffer().Edit().CellAt(0)
	if ch != petsciiTable[0x41] {
		t.Errorf("expected high-bit byte to translate through the low-128 table, got %q", ch)
	}
}
