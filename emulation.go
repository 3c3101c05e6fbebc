package qterm

// StepKind tags the variant of value an Emulation.Step call produced.
type StepKind int

const (
	// NoCharYet means the byte was consumed (e.g. it started or
	// continued an escape sequence) and no code point is ready to print.
	NoCharYet StepKind = iota
	// OneChar means exactly one code point is ready to print; the
	// dispatcher should move on to the next input byte afterward.
	OneChar
	// ManyChars means a code point is ready, and more may follow without
	// further input; the dispatcher must keep calling Step(StepSentinel)
	// until it gets NoCharYet or OneChar.
	ManyChars
)

// StepSentinel is the "no more input" byte an Emulation's internal
// emitter is fed while draining a ManyChars run, per spec §4.3.
const StepSentinel = -1

// StepResult is the return value of Emulation.Step.
type StepResult struct {
	Kind StepKind
	Char rune
}

var stepNoChar = StepResult{Kind: NoCharYet}

// Emulation is the per-variant byte-to-event state machine contract from
// spec §4.3. A single call to Step consumes one input byte (or the
// StepSentinel, while draining a ManyChars run) and returns at most one
// code point to print. Implementations hold a reference to the owning
// Engine and call its §4.2 cursor/screen operations directly to realize
// control actions (erase, cursor movement, tab stops, ...); only
// printable output flows back through StepResult, so every variant's
// printable bytes go through the single shared Engine.PrintCharacter
// wrap-rule implementation.
type Emulation interface {
	// Step processes one input byte (or StepSentinel) and returns the
	// next displayable code point, if any.
	Step(b int) StepResult
	// Reset clears internal FSM state. Tab stops, margins and other
	// Engine-owned state are not touched.
	Reset()
	// EncodeKey maps an abstract key to the wide string the transport
	// should transmit for it.
	EncodeKey(k Key) string
	// Variant identifies which emulation this is.
	Variant() Variant
}

// newEmulation constructs the Emulation implementation for v, bound to
// eng.
func newEmulation(eng *Engine, v Variant) Emulation {
	switch v {
	case VariantATASCII:
		return newATASCIIEmulation(eng)
	case VariantPETSCII:
		return newPETSCIIEmulation(eng)
	case VariantDebug:
		return newDebugEmulation(eng)
	case VariantTTY:
		return newTTYEmulation(eng)
	default:
		return newVTEmulation(eng, v)
	}
}
