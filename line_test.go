package qterm

import "testing"

func TestNewLine(t *testing.T) {
	l := NewLine(DefaultAttr)
	if l.Length != 0 {
		t.Errorf("expected length 0, got %d", l.Length)
	}
	ch, attr := l.CellAt(0)
	if ch != ' ' || attr != DefaultAttr {
		t.Errorf("expected blank default cell, got %q %+v", ch, attr)
	}
}

func TestLineSetCell(t *testing.T) {
	l := NewLine(DefaultAttr)
	l.SetCell(5, 'x', DefaultAttr)
	if l.Length != 6 {
		t.Errorf("expected length 6, got %d", l.Length)
	}
	ch, _ := l.CellAt(5)
	if ch != 'x' {
		t.Errorf("expected 'x' at col 5, got %q", ch)
	}
	ch, _ = l.CellAt(2)
	if ch != ' ' {
		t.Errorf("expected gap padded with space, got %q", ch)
	}
	if !l.Dirty {
		t.Error("expected line marked dirty after SetCell")
	}
}

func TestLineEraseShrinksLength(t *testing.T) {
	l := NewLine(DefaultAttr)
	l.SetCell(0, 'a', DefaultAttr)
	l.SetCell(1, 'b', DefaultAttr)
	l.SetCell(2, 'c', DefaultAttr)
	l.Erase(1, 3, DefaultAttr, false)
	if l.Length != 1 {
		t.Errorf("expected length to shrink to 1, got %d", l.Length)
	}
}

func TestLineEraseHonorsProtected(t *testing.T) {
	l := NewLine(DefaultAttr)
	protected := DefaultAttr.WithStyle(StyleProtect)
	l.SetCell(0, 'a', protected)
	l.SetCell(1, 'b', DefaultAttr)
	l.Erase(0, 2, DefaultAttr, true)
	ch, attr := l.CellAt(0)
	if ch != 'a' || attr != protected {
		t.Errorf("expected protected cell untouched, got %q %+v", ch, attr)
	}
	ch, _ = l.CellAt(1)
	if ch != ' ' {
		t.Errorf("expected unprotected cell erased, got %q", ch)
	}
}

func TestLinePadTo(t *testing.T) {
	l := NewLine(DefaultAttr)
	l.SetCell(0, 'a', DefaultAttr)
	l.PadTo(4, DefaultAttr)
	if l.Length != 4 {
		t.Errorf("expected length 4, got %d", l.Length)
	}
	l.PadTo(2, DefaultAttr)
	if l.Length != 4 {
		t.Errorf("PadTo with smaller n should be a no-op, got length %d", l.Length)
	}
}

func TestLineFillWith(t *testing.T) {
	l := NewLine(DefaultAttr)
	l.FillWith(0, 5, '*', DefaultAttr, false)
	if l.Length != 5 {
		t.Errorf("expected length 5, got %d", l.Length)
	}
	for i := 0; i < 5; i++ {
		ch, _ := l.CellAt(i)
		if ch != '*' {
			t.Errorf("expected '*' at col %d, got %q", i, ch)
		}
	}
}

func TestLineInsertBlanks(t *testing.T) {
	l := NewLine(DefaultAttr)
	l.SetCell(0, 'a', DefaultAttr)
	l.SetCell(1, 'b', DefaultAttr)
	l.SetCell(2, 'c', DefaultAttr)
	l.InsertBlanks(1, 1, DefaultAttr)
	ch, _ := l.CellAt(0)
	if ch != 'a' {
		t.Errorf("expected 'a' unchanged at col 0, got %q", ch)
	}
	ch, _ = l.CellAt(1)
	if ch != ' ' {
		t.Errorf("expected blank inserted at col 1, got %q", ch)
	}
	ch, _ = l.CellAt(2)
	if ch != 'b' {
		t.Errorf("expected 'b' shifted to col 2, got %q", ch)
	}
	ch, _ = l.CellAt(3)
	if ch != 'c' {
		t.Errorf("expected 'c' shifted to col 3, got %q", ch)
	}
}

func TestLineDeleteChars(t *testing.T) {
	l := NewLine(DefaultAttr)
	l.SetCell(0, 'a', DefaultAttr)
	l.SetCell(1, 'b', DefaultAttr)
	l.SetCell(2, 'c', DefaultAttr)
	l.DeleteChars(0, 1, DefaultAttr)
	ch, _ := l.CellAt(0)
	if ch != 'b' {
		t.Errorf("expected 'b' shifted to col 0, got %q", ch)
	}
	ch, _ = l.CellAt(1)
	if ch != 'c' {
		t.Errorf("expected 'c' shifted to col 1, got %q", ch)
	}
	if l.Length != 2 {
		t.Errorf("expected length 2 after deleting one char, got %d", l.Length)
	}
}

func TestLineDoubleWidthClearsDoubleHeight(t *testing.T) {
	l := NewLine(DefaultAttr)
	l.SetDoubleHeightMode(HeightTop)
	if !l.DoubleWidth {
		t.Error("expected double-height to imply double-width")
	}
	l.SetDoubleWidth(false)
	if l.DoubleHeight != HeightSingle {
		t.Error("expected clearing double-width to clear double-height")
	}
}
