package qterm

import "testing"

func TestParseMusicBasicScale(t *testing.T) {
	tones, err := ParseMusic([]byte("T120 O4 L4 C D E C"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tones) != 8 {
		t.Fatalf("expected 8 tones (note+rest per letter), got %d", len(tones))
	}

	wantFreq := []float64{
		middleC,             // O4 C == middle C == C4 (261.63 Hz)
		noteFrequency[2][2], // O4 D
		noteFrequency[2][4], // O4 E
		middleC,             // O4 C
	}
	for i, want := range wantFreq {
		tone := tones[i*2]
		if diff := tone.Hertz - want; diff > 0.5 || diff < -0.5 {
			t.Errorf("note %d: expected ~%.2f Hz, got %.2f", i, want, tone.Hertz)
		}
		if tone.DurationMS != 437 {
			t.Errorf("note %d: expected 437ms audible duration at T120 L4, got %d", i, tone.DurationMS)
		}
		rest := tones[i*2+1]
		if rest.Hertz != 0 {
			t.Errorf("note %d: expected trailing silence, got %.2f Hz", i, rest.Hertz)
		}
		if rest.DurationMS != 63 {
			t.Errorf("note %d: expected 63ms of trailing silence, got %d", i, rest.DurationMS)
		}
	}
}

func TestParseMusicLegatoHasNoTrailingSilence(t *testing.T) {
	tones, err := ParseMusic([]byte("ML C"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tones) != 1 {
		t.Errorf("expected legato style to produce no trailing-silence tone, got %d tones", len(tones))
	}
}

func TestParseMusicPause(t *testing.T) {
	tones, err := ParseMusic([]byte("P4"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tones) != 1 || tones[0].Hertz != 0 {
		t.Fatalf("expected a single silent tone, got %+v", tones)
	}
}

func TestParseMusicOneShotOctaveShift(t *testing.T) {
	tones, err := ParseMusic([]byte("O4 >C O4 C"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	shifted := tones[0].Hertz
	normal := tones[2].Hertz
	if shifted <= normal {
		t.Errorf("expected one-shot '>' to raise the next note's octave, got shifted=%.2f normal=%.2f", shifted, normal)
	}
}

func TestParseMusicBadNoteLengthIsSyntaxError(t *testing.T) {
	_, err := ParseMusic([]byte("L0 C"))
	if err == nil {
		t.Fatal("expected a syntax error for an out-of-range note length")
	}
	if _, ok := err.(SyntaxError); !ok {
		t.Errorf("expected a SyntaxError, got %T", err)
	}
}

func TestParseMusicUnexpectedCharacter(t *testing.T) {
	_, err := ParseMusic([]byte("Z"))
	if err == nil {
		t.Fatal("expected a syntax error for an unrecognized token")
	}
}

func TestParseMusicDigitalForm(t *testing.T) {
	tones, err := ParseMusic([]byte("440;100;3;10;5"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tones) != 6 {
		t.Fatalf("expected 3 cycles of (tone, delay), got %d tones", len(tones))
	}
	wantFreq := []float64{440, 445, 450}
	for i, want := range wantFreq {
		tone := tones[i*2]
		if tone.Hertz != want || tone.DurationMS != 100 {
			t.Errorf("cycle %d: expected %v Hz for 100ms, got %+v", i, want, tone)
		}
		delay := tones[i*2+1]
		if delay.Hertz != 0 || delay.DurationMS != 10 {
			t.Errorf("cycle %d: expected a 10ms silent delay, got %+v", i, delay)
		}
	}
}

func TestParseMusicDigitalFormRequiresFiveFields(t *testing.T) {
	_, err := ParseMusic([]byte("440;100;3"))
	if err == nil {
		t.Fatal("expected an error for a malformed digital-form string")
	}
}

func TestEngineInterruptPlaybackBansNextPlay(t *testing.T) {
	e := New()
	var played bool
	e.SetPlaybackFacade(playFunc(func(tones []Tone, interruptible bool) { played = true }))

	const start int64 = 1_000_000_000
	e.InterruptPlayback(start)

	e.Play([]Tone{{Hertz: 440, DurationMS: 100}}, true, start+1_000_000_000) // 1s later, still banned
	if played {
		t.Error("expected playback to be suppressed during the 5-second ban window")
	}

	e.Play([]Tone{{Hertz: 440, DurationMS: 100}}, true, start+6_000_000_000) // 6s later, ban elapsed
	if !played {
		t.Error("expected playback to resume once the ban window has elapsed")
	}
}

type playFunc func(tones []Tone, interruptible bool)

func (f playFunc) Play(tones []Tone, interruptible bool) { f(tones, interruptible) }
