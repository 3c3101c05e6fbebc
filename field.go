package qterm

import "gopkg.in/yaml.v3"

// FieldCapacity is the fixed maximum byte/rune length of a Field's data.
const FieldCapacity = 256

// Field is a single-line text widget used by dialogs (spec §4.4): fixed
// mode clamps data length at width, sliding mode lets the visible window
// track a longer string.
type Field struct {
	data  [FieldCapacity]rune
	dataN int

	position    int
	windowStart int

	width      int
	fixed      bool
	insertMode bool
	invisible  bool

	ColorActive   Attr
	ColorInactive Attr
}

// NewField returns a Field of the given display width. fixed selects
// fixed-length vs. sliding-window semantics.
func NewField(width int, fixed bool) *Field {
	return &Field{
		width:       width,
		fixed:       fixed,
		insertMode:  true,
		ColorActive: DefaultAttr,
	}
}

// Width reports the field's display width.
func (f *Field) Width() int { return f.width }

// Position reports the cursor's offset into data.
func (f *Field) Position() int { return f.position }

// WindowStart reports the first visible data index.
func (f *Field) WindowStart() int { return f.windowStart }

// InsertMode reports whether new runes are inserted (true) or overwrite
// the cell at position (false).
func (f *Field) InsertMode() bool { return f.insertMode }

// ToggleInsertMode flips insert/overwrite mode.
func (f *Field) ToggleInsertMode() { f.insertMode = !f.insertMode }

// SetInvisible controls whether Render substitutes spaces for the actual
// contents.
func (f *Field) SetInvisible(on bool) { f.invisible = on }

// InsertRune inserts (or overwrites) r at position, per spec §4.4. In
// fixed mode, once data is full, inserts are ignored and overwrites clamp
// position at width-1.
func (f *Field) InsertRune(r rune) {
	if f.insertMode {
		if f.fixed && f.dataN >= f.width {
			return
		}
		if f.dataN >= FieldCapacity {
			return
		}
		copy(f.data[f.position+1:f.dataN+1], f.data[f.position:f.dataN])
		f.data[f.position] = r
		f.dataN++
		f.position++
	} else {
		if f.fixed && f.position >= f.width {
			f.position = f.width - 1
		}
		if f.position >= FieldCapacity {
			return
		}
		f.data[f.position] = r
		if f.position >= f.dataN {
			f.dataN = f.position + 1
		}
		f.position++
	}
	f.clampWindow()
}

// Backspace deletes the cell before position and moves the cursor left.
func (f *Field) Backspace() {
	if f.position <= 0 {
		return
	}
	copy(f.data[f.position-1:f.dataN-1], f.data[f.position:f.dataN])
	f.dataN--
	f.position--
	if !f.fixed && f.position < f.windowStart {
		f.windowStart--
	}
	f.clampWindow()
}

// Delete removes the cell at position, if any, without moving the
// cursor.
func (f *Field) Delete() {
	if f.position >= f.dataN {
		return
	}
	copy(f.data[f.position:f.dataN-1], f.data[f.position+1:f.dataN])
	f.dataN--
}

// Left/Right/Home/End move the cursor, sliding the window in non-fixed
// mode so position stays within [windowStart, windowStart+width).
func (f *Field) Left() {
	if f.position > 0 {
		f.position--
	}
	f.clampWindow()
}

func (f *Field) Right() {
	if f.position < f.dataN {
		f.position++
	}
	f.clampWindow()
}

func (f *Field) Home() {
	f.position = 0
	f.windowStart = 0
}

func (f *Field) End() {
	f.position = f.dataN
	f.clampWindow()
}

// clampWindow adjusts windowStart so position remains visible, per spec
// §4.4's "adjust window_start so that position remains visible" rule.
func (f *Field) clampWindow() {
	if f.fixed {
		f.windowStart = 0
		return
	}
	if f.position < f.windowStart {
		f.windowStart = f.position
	}
	if f.position >= f.windowStart+f.width {
		f.windowStart = f.position - f.width + 1
	}
	if f.windowStart < 0 {
		f.windowStart = 0
	}
}

// SetValue replaces the field's contents from a code-point string,
// clamping to capacity and positioning the cursor at the end.
func (f *Field) SetValue(runes []rune) {
	n := len(runes)
	if n > FieldCapacity {
		n = FieldCapacity
	}
	if f.fixed && n > f.width {
		n = f.width
	}
	copy(f.data[:n], runes[:n])
	f.dataN = n
	f.position = n
	f.windowStart = 0
	f.clampWindow()
}

// SetValueString is a convenience wrapper for SetValue taking a Go
// string.
func (f *Field) SetValueString(s string) {
	f.SetValue([]rune(s))
}

// Value returns a copy of the field's code points.
func (f *Field) Value() []rune {
	out := make([]rune, f.dataN)
	copy(out, f.data[:f.dataN])
	return out
}

// ValueString coerces the field's code points to bytes by truncation,
// per spec §4.4's "byte form coerces code points to bytes by truncation"
// rule.
func (f *Field) ValueString() string {
	b := make([]byte, f.dataN)
	for i := 0; i < f.dataN; i++ {
		b[i] = byte(f.data[i])
	}
	return string(b)
}

// Render writes the field's visible span to the line at screen row row
// starting at column col, substituting spaces when invisible is set.
func (f *Field) Render(eng *Engine, row, col int, active bool) {
	attr := f.ColorInactive
	if active {
		attr = f.ColorActive
	}
	l := eng.lineAtRow(row)
	for i := 0; i < f.width; i++ {
		idx := f.windowStart + i
		ch := rune(' ')
		if !f.invisible && idx < f.dataN {
			ch = f.data[idx]
		}
		l.SetCell(col+i, ch, attr)
	}
}

// CursorCol returns the on-screen column the real cursor should occupy
// for this field's current position, honoring the fixed/sliding rules.
func (f *Field) CursorCol(col int) int {
	return col + (f.position - f.windowStart)
}

// FieldSet owns an ordered list of Fields and tracks which one has
// focus.
type FieldSet struct {
	fields []*Field
	active int
}

// NewFieldSet returns an empty FieldSet.
func NewFieldSet() *FieldSet {
	return &FieldSet{}
}

// Add appends a field to the set.
func (fs *FieldSet) Add(f *Field) {
	fs.fields = append(fs.fields, f)
}

// Active returns the currently focused field, or nil if the set is
// empty.
func (fs *FieldSet) Active() *Field {
	if len(fs.fields) == 0 {
		return nil
	}
	return fs.fields[fs.active]
}

// NextField/PrevField move focus, clamped at the ends (spec §4.4: "Focus
// moves with next_field/prev_field (clamped)").
func (fs *FieldSet) NextField() {
	if fs.active < len(fs.fields)-1 {
		fs.active++
	}
}

func (fs *FieldSet) PrevField() {
	if fs.active > 0 {
		fs.active--
	}
}

// fieldSnapshot is the YAML-serializable form of a single Field's value,
// used by FieldSet.Snapshot/Restore to save and reload a dialog's values
// (e.g. a phonebook entry editor), mirroring Options' YAML round-trip.
type fieldSnapshot struct {
	Value string `yaml:"value"`
}

// Snapshot encodes every field's current value (byte form) as YAML.
func (fs *FieldSet) Snapshot() ([]byte, error) {
	snaps := make([]fieldSnapshot, len(fs.fields))
	for i, f := range fs.fields {
		snaps[i] = fieldSnapshot{Value: f.ValueString()}
	}
	return yaml.Marshal(snaps)
}

// Restore decodes a YAML snapshot produced by Snapshot and applies it to
// the existing fields in order. A snapshot with a different field count
// than the set is an error, since there is no positional mapping without
// one.
func (fs *FieldSet) Restore(data []byte) error {
	var snaps []fieldSnapshot
	if err := yaml.Unmarshal(data, &snaps); err != nil {
		return err
	}
	if len(snaps) != len(fs.fields) {
		return SyntaxError{Component: "fieldset", Detail: "snapshot field count mismatch"}
	}
	for i, s := range snaps {
		fs.fields[i].SetValueString(s.Value)
	}
	return nil
}

// ActiveIndex reports the focused field's index.
func (fs *FieldSet) ActiveIndex() int { return fs.active }

// Fields returns the underlying field slice in order.
func (fs *FieldSet) Fields() []*Field { return fs.fields }
