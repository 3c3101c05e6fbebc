// Package qterm implements the core of a multi-emulation terminal engine:
// byte-stream parsers for several classic terminal emulations, a wrapping
// scrollback buffer with a movable view, and the cursor/attribute model
// that mediates every visible update.
//
// The package does not open a socket, spawn a shell, or draw pixels. It
// consumes bytes handed to it by a transport and produces mutations to an
// in-memory screen plus commands for a caller-supplied renderer. This
// keeps the hard, well-studied parts of a terminal emulator (line wrap,
// scrolling regions, double-width/height lines, tab stops, multi-codepage
// input) testable without a PTY or a display.
//
// # Basic usage
//
//	eng := qterm.New(
//		qterm.WithSize(80, 25),
//		qterm.WithVariant(qterm.VariantVT100),
//		qterm.WithRenderer(myRenderer),
//	)
//	eng.Feed([]byte("\x1b[31mhello\x1b[0m\r\n"))
//
// # Collaborators
//
// Transport I/O, the renderer backend, audio playback, and persistence
// are all modeled as small provider interfaces with Noop defaults, the
// same pattern used throughout this package's sibling files
// (NotificationSink, Renderer, BellSink). Callers inject
// the concrete implementations; qterm never imports a UI toolkit.
//
// # Emulations
//
// Engine.dispatchByte in engine.go routes each input byte to the active
// Emulation's Step method. ATASCII (emu_atascii.go) and the DEBUG hex
// view (emu_debug.go) are implemented as fully self-contained FSMs; the
// VT-family emulations (VT100, VT102, VT220, VT52, ANSI, AVATAR, LINUX,
// XTERM) share one parameterized FSM in emu_vt.go.
package qterm
