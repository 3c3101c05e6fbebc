package qterm

import (
	"math"
	"strconv"
	"strings"
)

// Tone is one entry in a parsed music macro's output: a frequency (0 for
// silence) held for duration_ms milliseconds.
type Tone struct {
	Hertz      float64
	DurationMS int
}

// noteFrequency anchors a 7-octave, 12-semitone table so that the first
// cell of the third octave equals middle C, each subsequent step a
// twelfth-root-of-two multiple of the previous, per spec §4.5. The
// user-facing O<n> octave (0..6, default 4) is two higher than the
// table's own octave index -- octaveIndex converts between the two.
var noteFrequency [7][12]float64

const middleC = 261.6255653005986

func init() {
	const semitone = 1.0594630943592953 // 2^(1/12)
	for octave := 0; octave < 7; octave++ {
		for step := 0; step < 12; step++ {
			exp := float64((octave-2)*12 + step)
			noteFrequency[octave][step] = middleC * math.Pow(semitone, exp)
		}
	}
}

// octaveIndex converts a user-facing O<n> octave number into the table's
// own index, clamping to the table's bounds. The default octave, 4,
// lands on table index 2, whose first cell is middle C.
func octaveIndex(userOctave int) int {
	idx := userOctave - 2
	if idx < 0 {
		idx = 0
	}
	if idx > 6 {
		idx = 6
	}
	return idx
}

// musicStyle selects how much of a note's nominal duration is audible
// versus trailing silence, per spec §4.5's M{N,L,S} tokens.
type musicStyle int

const (
	styleNormal musicStyle = iota
	styleLegato
	styleStaccato
)

func (s musicStyle) audibleFraction() float64 {
	switch s {
	case styleLegato:
		return 1.0
	case styleStaccato:
		return 0.75
	default:
		return 0.875
	}
}

var noteOffsets = map[byte]int{
	'c': 0, 'd': 2, 'e': 4, 'f': 5, 'g': 7, 'a': 9, 'b': 11,
}

// ParseMusic translates a music macro string into the ordered tone list
// described in spec §4.5. A syntax error aborts parsing immediately and
// discards the already-assembled prefix, per the spec's failure policy.
// A note or pause whose computed duration is out of range (0 ms or less,
// or over 3000 ms) does not abort parsing; it is emitted as 250 ms.
func ParseMusic(input []byte) ([]Tone, error) {
	if len(input) > 0 && input[0] >= '0' && input[0] <= '9' {
		return parseDigitalMusic(input)
	}
	return (&musicParser{input: input}).parse()
}

type musicParser struct {
	input  []byte
	pos    int
	length int // current note length denominator, default 4 (quarter)
	octave int // default 4
	style  musicStyle
	oneShot int // -1, 0, +1 octave shift for the next note only
	tempo  int // quarter notes per minute, default 120

	tones []Tone
}

func (p *musicParser) parse() ([]Tone, error) {
	p.length = 4
	p.octave = 4
	p.style = styleNormal
	p.tempo = 120

	for p.pos < len(p.input) {
		c := p.input[p.pos]
		switch {
		case c == ' ' || c == '\t':
			p.pos++
		case c == 'l' || c == 'L':
			p.pos++
			n, ok := p.readInt()
			if !ok || n < 1 || n > 64 {
				return nil, p.errf("bad note length")
			}
			p.length = n
		case c == 'o' || c == 'O':
			p.pos++
			n, ok := p.readInt()
			if !ok {
				return nil, p.errf("bad octave")
			}
			if n < 0 {
				n = 0
			}
			if n > 6 {
				n = 6
			}
			p.octave = n
		case c == 't' || c == 'T':
			p.pos++
			n, ok := p.readInt()
			if !ok || n <= 0 {
				return nil, p.errf("bad tempo")
			}
			p.tempo = n
		case c == 'n' || c == 'N':
			p.pos++
			n, ok := p.readInt()
			if !ok || n < 0 || n > 84 {
				return nil, p.errf("bad note index")
			}
			p.emitNote(noteFrequency[n/12][n%12], p.length)
		case c == 'p' || c == 'P':
			p.pos++
			n, ok := p.readInt()
			if !ok || n < 1 || n > 64 {
				return nil, p.errf("bad pause length")
			}
			p.emitPause(n)
		case c == 'm' || c == 'M':
			p.pos++
			if p.pos >= len(p.input) {
				return nil, p.errf("truncated M token")
			}
			switch p.input[p.pos] {
			case 'f', 'F', 'b', 'B':
				// no-op for timing
			case 'n', 'N':
				p.style = styleNormal
			case 'l', 'L':
				p.style = styleLegato
			case 's', 'S':
				p.style = styleStaccato
			default:
				return nil, p.errf("bad M token")
			}
			p.pos++
		case c == '<':
			p.oneShot = -1
			p.pos++
		case c == '>':
			p.oneShot = 1
			p.pos++
		case isNoteLetter(c):
			if err := p.parseNoteLetter(); err != nil {
				return nil, err
			}
		default:
			return nil, p.errf("unexpected character")
		}
	}

	return p.tones, nil
}

func isNoteLetter(c byte) bool {
	lc := c | 0x20
	return lc >= 'a' && lc <= 'g'
}

func (p *musicParser) parseNoteLetter() error {
	letter := p.input[p.pos] | 0x20
	p.pos++

	semis := noteOffsets[letter]
	if p.pos < len(p.input) {
		switch p.input[p.pos] {
		case '#', '+':
			semis++
			p.pos++
		case '-':
			semis--
			p.pos++
		}
	}

	length := p.length
	if n, ok := p.peekInt(); ok {
		if n < 1 || n > 64 {
			return p.errf("bad inline note length")
		}
		length = n
	}

	dots := 0
	for p.pos < len(p.input) && p.input[p.pos] == '.' {
		dots++
		p.pos++
	}

	octave := p.octave + p.oneShot
	p.oneShot = 0
	if octave < 0 {
		octave = 0
	}
	if octave > 6 {
		octave = 6
	}

	step := ((semis % 12) + 12) % 12
	octave += semis / 12
	if octave < 0 {
		octave = 0
	}
	if octave > 6 {
		octave = 6
	}

	dotMultiplier := 1.0
	factor := 0.5
	for i := 0; i < dots; i++ {
		dotMultiplier += factor
		factor /= 2
	}

	p.emitNoteScaled(noteFrequency[octaveIndex(octave)][step], length, dotMultiplier)
	return nil
}

// readInt consumes a run of decimal digits if p.pos points at one,
// returning (0, false) if there is no digit there at all.
func (p *musicParser) readInt() (int, bool) {
	start := p.pos
	for p.pos < len(p.input) && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return 0, false
	}
	n, err := strconv.Atoi(string(p.input[start:p.pos]))
	if err != nil {
		return 0, false
	}
	return n, true
}

func (p *musicParser) peekInt() (int, bool) {
	return p.readInt()
}

// durationMS computes note duration per spec §4.5: 1000 / ((tempo/60) *
// (length/4)).
func (p *musicParser) durationMS(length int, scale float64) (int, error) {
	beatsPerSecond := float64(p.tempo) / 60.0
	lengthFraction := float64(length) / 4.0
	ms := int(1000.0 / (beatsPerSecond * lengthFraction) * scale)
	if ms <= 0 || ms > 3000 {
		return 0, p.errf("duration out of range")
	}
	return ms, nil
}

func (p *musicParser) emitNote(hz float64, length int) {
	p.emitNoteScaled(hz, length, 1.0)
}

func (p *musicParser) emitNoteScaled(hz float64, length int, scale float64) {
	ms, err := p.durationMS(length, scale)
	if err != nil {
		ms = 250
	}
	audible := int(float64(ms) * p.style.audibleFraction())
	silent := ms - audible
	p.tones = append(p.tones, Tone{Hertz: hz, DurationMS: audible})
	if silent > 0 {
		p.tones = append(p.tones, Tone{Hertz: 0, DurationMS: silent})
	}
}

func (p *musicParser) emitPause(length int) {
	ms, err := p.durationMS(length, 1.0)
	if err != nil {
		ms = 250
	}
	p.tones = append(p.tones, Tone{Hertz: 0, DurationMS: ms})
}

func (p *musicParser) errf(detail string) error {
	return SyntaxError{Component: "music", Detail: detail}
}

// parseDigitalMusic parses the alternate "freq;duration_ms;cycles;
// cycle_delay_ms;variation_hz" form (spec §4.5), expanding cycles into
// repeated (tone, cycle_delay) pairs with variation_hz applied after each
// cycle.
func parseDigitalMusic(input []byte) ([]Tone, error) {
	fields := strings.Split(string(input), ";")
	if len(fields) != 5 {
		return nil, SyntaxError{Component: "music", Detail: "digital form requires 5 fields"}
	}

	vals := make([]float64, 5)
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, SyntaxError{Component: "music", Detail: "non-numeric digital field"}
		}
		vals[i] = v
	}

	freq, duration, cycles, cycleDelay, variation := vals[0], int(vals[1]), int(vals[2]), int(vals[3]), vals[4]
	if duration <= 0 || duration > 3000 || cycles < 1 {
		return nil, SyntaxError{Component: "music", Detail: "digital field out of range"}
	}

	var tones []Tone
	for i := 0; i < cycles; i++ {
		tones = append(tones, Tone{Hertz: freq, DurationMS: duration})
		if cycleDelay > 0 {
			tones = append(tones, Tone{Hertz: 0, DurationMS: cycleDelay})
		}
		freq += variation
	}
	return tones, nil
}

// PlaybackFacade is the out-of-scope audio backend an embedder supplies
// to actually sound a tone list, per spec §4.5/§5.
type PlaybackFacade interface {
	Play(tones []Tone, interruptible bool)
}

// NoopPlayback discards tone lists, for embedders with no audio backend.
type NoopPlayback struct{}

func (NoopPlayback) Play(tones []Tone, interruptible bool) {}

// musicPlaybackState tracks the interruptible ban window described in
// spec §5: a keystroke during an interruptible playback terminates it and
// bans new playback for five seconds.
type musicPlaybackState struct {
	facade   PlaybackFacade
	bannedAt int64 // unix-nano deadline; 0 means no ban active
}

// Play hands tones to the configured facade, unless a prior interrupted
// playback's ban window (tracked via nowUnixNano) hasn't elapsed yet.
func (e *Engine) Play(tones []Tone, interruptible bool, nowUnixNano int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.music.bannedAt != 0 && nowUnixNano < e.music.bannedAt {
		return
	}
	e.music.bannedAt = 0
	facade := e.music.facade
	if facade == nil {
		facade = NoopPlayback{}
	}
	facade.Play(tones, interruptible)
}

// SetPlaybackFacade installs the audio backend used by Play.
func (e *Engine) SetPlaybackFacade(f PlaybackFacade) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.music.facade = f
}

// InterruptPlayback applies the five-second ban window called for by
// spec §5 when a keystroke interrupts an interruptible tone list.
// nowUnixNano comes from the caller so the engine core never calls a wall
// clock directly.
func (e *Engine) InterruptPlayback(nowUnixNano int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.music.bannedAt = nowUnixNano + int64(5*1e9)
}
