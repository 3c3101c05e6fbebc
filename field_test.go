package qterm

import "testing"

func TestFieldInsertRune(t *testing.T) {
	f := NewField(10, false)
	f.InsertRune('a')
	f.InsertRune('b')
	f.InsertRune('c')
	if f.ValueString() != "abc" {
		t.Errorf("expected 'abc', got %q", f.ValueString())
	}
	if f.Position() != 3 {
		t.Errorf("expected position 3, got %d", f.Position())
	}
}

func TestFieldInsertInMiddle(t *testing.T) {
	f := NewField(10, false)
	f.SetValueString("ac")
	f.Left()
	f.InsertRune('b')
	if f.ValueString() != "abc" {
		t.Errorf("expected 'abc', got %q", f.ValueString())
	}
}

func TestFieldFixedModeStopsAtWidth(t *testing.T) {
	f := NewField(3, true)
	for _, r := range "abcdef" {
		f.InsertRune(r)
	}
	if f.ValueString() != "abc" {
		t.Errorf("expected fixed-mode field to stop accepting input at width, got %q", f.ValueString())
	}
}

func TestFieldOverwriteMode(t *testing.T) {
	f := NewField(10, false)
	f.SetValueString("abc")
	f.Home()
	f.ToggleInsertMode()
	f.InsertRune('X')
	if f.ValueString() != "Xbc" {
		t.Errorf("expected overwrite to replace the first char, got %q", f.ValueString())
	}
}

func TestFieldBackspace(t *testing.T) {
	f := NewField(10, false)
	f.SetValueString("abc")
	f.Backspace()
	if f.ValueString() != "ab" {
		t.Errorf("expected 'ab' after backspace, got %q", f.ValueString())
	}
	if f.Position() != 2 {
		t.Errorf("expected position 2, got %d", f.Position())
	}
}

func TestFieldDelete(t *testing.T) {
	f := NewField(10, false)
	f.SetValueString("abc")
	f.Home()
	f.Delete()
	if f.ValueString() != "bc" {
		t.Errorf("expected 'bc' after delete at position 0, got %q", f.ValueString())
	}
	if f.Position() != 0 {
		t.Errorf("expected position to stay at 0, got %d", f.Position())
	}
}

func TestFieldSlidingWindow(t *testing.T) {
	f := NewField(5, false)
	for _, r := range "abcdefgh" {
		f.InsertRune(r)
	}
	if f.WindowStart() == 0 {
		t.Error("expected window to slide once content exceeds width")
	}
	if f.Position()-f.WindowStart() >= f.Width() {
		t.Error("expected cursor to remain within the visible window")
	}
}

func TestFieldFixedModeWindowNeverSlides(t *testing.T) {
	f := NewField(5, true)
	f.SetValueString("abc")
	f.End()
	if f.WindowStart() != 0 {
		t.Errorf("expected a fixed-mode field's window to stay at 0, got %d", f.WindowStart())
	}
}

func TestFieldSetValueEmpty(t *testing.T) {
	f := NewField(10, false)
	f.SetValueString("abc")
	f.SetValueString("")
	if f.ValueString() != "" {
		t.Errorf("expected empty value, got %q", f.ValueString())
	}
	if f.Position() != 0 {
		t.Errorf("expected position reset to 0 on empty value, got %d", f.Position())
	}
}

func TestFieldValueStringTruncatesToBytes(t *testing.T) {
	f := NewField(10, false)
	f.SetValue([]rune{'a', 0x1F600, 'b'})
	s := f.ValueString()
	if len(s) != 3 {
		t.Errorf("expected byte-truncated coercion to keep one byte per code point, got %d bytes", len(s))
	}
}

func TestFieldSetNextPrevField(t *testing.T) {
	fs := NewFieldSet()
	a, b, c := NewField(5, false), NewField(5, false), NewField(5, false)
	fs.Add(a)
	fs.Add(b)
	fs.Add(c)

	if fs.Active() != a {
		t.Fatal("expected first field active initially")
	}
	fs.NextField()
	if fs.Active() != b {
		t.Error("expected focus to move to the second field")
	}
	fs.PrevField()
	fs.PrevField()
	if fs.Active() != a {
		t.Error("expected PrevField to clamp at the first field")
	}
	fs.NextField()
	fs.NextField()
	fs.NextField()
	if fs.Active() != c {
		t.Error("expected NextField to clamp at the last field")
	}
}

func TestFieldSetSnapshotRestore(t *testing.T) {
	fs := NewFieldSet()
	a, b := NewField(10, false), NewField(10, false)
	fs.Add(a)
	fs.Add(b)
	a.SetValueString("hostname")
	b.SetValueString("2323")

	data, err := fs.Snapshot()
	if err != nil {
		t.Fatalf("unexpected snapshot error: %v", err)
	}

	a.SetValueString("changed")
	b.SetValueString("0")

	if err := fs.Restore(data); err != nil {
		t.Fatalf("unexpected restore error: %v", err)
	}
	if a.ValueString() != "hostname" || b.ValueString() != "2323" {
		t.Errorf("expected restore to reproduce saved values, got %q %q", a.ValueString(), b.ValueString())
	}
}

func TestFieldSetRestoreRejectsCountMismatch(t *testing.T) {
	fs := NewFieldSet()
	fs.Add(NewField(5, false))

	other := NewFieldSet()
	other.Add(NewField(5, false))
	other.Add(NewField(5, false))
	data, err := other.Snapshot()
	if err != nil {
		t.Fatalf("unexpected snapshot error: %v", err)
	}

	if err := fs.Restore(data); err == nil {
		t.Error("expected a field-count mismatch to be rejected")
	}
}
