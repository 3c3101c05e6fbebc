package qterm

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	if o.ScrollbackLinesMax != 20000 {
		t.Errorf("expected default scrollback cap of 20000, got %d", o.ScrollbackLinesMax)
	}
	if !o.LineWrap {
		t.Error("expected line_wrap on by default")
	}
	if o.ScrollbackSaveType != SaveTypeNormal {
		t.Errorf("expected default save type 'normal', got %q", o.ScrollbackSaveType)
	}
}

func TestLoadOptionsOverridesDefaults(t *testing.T) {
	yaml := []byte("scrollback_lines_max: 500\nline_wrap: false\n")
	o, err := LoadOptions(yaml)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.ScrollbackLinesMax != 500 {
		t.Errorf("expected overridden scrollback cap 500, got %d", o.ScrollbackLinesMax)
	}
	if o.LineWrap {
		t.Error("expected line_wrap overridden to false")
	}
	if o.ScrollbackSaveType != SaveTypeNormal {
		t.Error("expected untouched fields to keep their default value")
	}
}

func TestOptionsMarshalRoundTrip(t *testing.T) {
	o := DefaultOptions()
	o.Codepage = "cp437"
	data, err := o.Marshal()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	back, err := LoadOptions(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back.Codepage != "cp437" {
		t.Errorf("expected round-tripped codepage 'cp437', got %q", back.Codepage)
	}
}
