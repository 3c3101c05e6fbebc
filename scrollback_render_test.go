package qterm

import "testing"

type recordingRenderer struct {
	cells      map[[2]int]rune
	rowWidth   map[int]bool
	flushed    bool
	trueDouble bool
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{cells: map[[2]int]rune{}, rowWidth: map[int]bool{}}
}

func (r *recordingRenderer) PutCell(row, col int, ch rune, attr Attr) {
	r.cells[[2]int{row, col}] = ch
}
func (r *recordingRenderer) MoveCursor(row, col int) {}
func (r *recordingRenderer) ClearRemainder(row, fromCol, width int) {
	for c := fromCol; c < width; c++ {
		r.cells[[2]int{row, c}] = ' '
	}
}
func (r *recordingRenderer) SetRowDoubleWidth(row int, on bool) { r.rowWidth[row] = on }
func (r *recordingRenderer) Flush()                             { r.flushed = true }
func (r *recordingRenderer) HasTrueDoubleWidth() bool           { return r.trueDouble }

func TestRenderWindowWritesCells(t *testing.T) {
	b := NewBuffer(3, 0)
	b.Head().SetCell(0, 'a', DefaultAttr)
	b.Head().SetCell(1, 'b', DefaultAttr)

	r := newRecordingRenderer()
	b.RenderWindow(r, 10, 0)

	if r.cells[[2]int{0, 0}] != 'a' || r.cells[[2]int{0, 1}] != 'b' {
		t.Error("expected rendered cells to match line contents")
	}
	if !r.flushed {
		t.Error("expected Flush to be called")
	}
}

func TestRenderWindowClearsDirtyFlag(t *testing.T) {
	b := NewBuffer(3, 0)
	b.Head().SetCell(0, 'x', DefaultAttr)
	if !b.Head().Dirty {
		t.Fatal("expected line dirty after SetCell")
	}
	b.RenderWindow(newRecordingRenderer(), 10, 0)
	if b.Head().Dirty {
		t.Error("expected render to clear the dirty flag")
	}
}

func TestRenderWindowExpandsDoubleWidthWithoutHardwareSupport(t *testing.T) {
	b := NewBuffer(3, 0)
	b.Head().SetCell(0, 'a', DefaultAttr)
	b.Head().SetDoubleWidth(true)

	r := newRecordingRenderer()
	b.RenderWindow(r, 10, 0)

	if r.cells[[2]int{0, 0}] != 'a' {
		t.Error("expected 'a' at col 0")
	}
	if r.cells[[2]int{0, 1}] != ' ' {
		t.Error("expected a padding space at col 1 for double-width expansion")
	}
}
