package qterm

// Key identifies an abstract, non-printable keystroke an embedder wants
// encoded for the wire, per spec §4.3's keystroke-encoder tables. Ordinary
// printable keys are sent to Feed/written directly; they never need a Key
// constant.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
	KeyBackspace
	KeyEnter
	KeyEscape
	KeyTab
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyPadEnter
	KeyPad0
	KeyPad1
	KeyPad2
	KeyPad3
	KeyPad4
	KeyPad5
	KeyPad6
	KeyPad7
	KeyPad8
	KeyPad9
)

// vtKeyTable maps Key to the byte string a VT100/VT102/VT220/xterm-family
// terminal sends for it in cursor-key mode, per the widely implemented
// ANSI/DEC convention (ESC O / ESC [ prefixes).
var vtKeyTable = map[Key]string{
	KeyUp:        "\x1bOA",
	KeyDown:      "\x1bOB",
	KeyRight:     "\x1bOC",
	KeyLeft:      "\x1bOD",
	KeyHome:      "\x1b[H",
	KeyEnd:       "\x1b[F",
	KeyPageUp:    "\x1b[5~",
	KeyPageDown:  "\x1b[6~",
	KeyInsert:    "\x1b[2~",
	KeyDelete:    "\x1b[3~",
	KeyBackspace: "\x7f",
	KeyEnter:     "\r",
	KeyEscape:    "\x1b",
	KeyTab:       "\t",
	KeyF1:        "\x1bOP",
	KeyF2:        "\x1bOQ",
	KeyF3:        "\x1bOR",
	KeyF4:        "\x1bOS",
	KeyF5:        "\x1b[15~",
	KeyF6:        "\x1b[17~",
	KeyF7:        "\x1b[18~",
	KeyF8:        "\x1b[19~",
	KeyF9:        "\x1b[20~",
	KeyF10:       "\x1b[21~",
	KeyF11:       "\x1b[23~",
	KeyF12:       "\x1b[24~",
	KeyPadEnter:  "\x1bOM",
	KeyPad0:      "\x1bOp",
	KeyPad1:      "\x1bOq",
	KeyPad2:      "\x1bOr",
	KeyPad3:      "\x1bOs",
	KeyPad4:      "\x1bOt",
	KeyPad5:      "\x1bOu",
	KeyPad6:      "\x1bOv",
	KeyPad7:      "\x1bOw",
	KeyPad8:      "\x1bOx",
	KeyPad9:      "\x1bOy",
}

// vt52KeyTable is the pre-ANSI VT52 cursor-key encoding (ESC letter, no
// bracket), used when the active variant is VariantVT52.
var vt52KeyTable = map[Key]string{
	KeyUp:        "\x1bA",
	KeyDown:      "\x1bB",
	KeyRight:     "\x1bC",
	KeyLeft:      "\x1bD",
	KeyHome:      "\x1bH",
	KeyBackspace: "\x08",
	KeyEnter:     "\r",
	KeyEscape:    "\x1b",
	KeyTab:       "\t",
}

// ttyKeyTable covers the plain control-code conventions used by the
// line-oriented TTY and ATASCII/PETSCII variants, which have no escape
// sequence vocabulary for cursor keys.
var ttyKeyTable = map[Key]string{
	KeyBackspace: "\x08",
	KeyEnter:     "\r",
	KeyEscape:    "\x1b",
	KeyTab:       "\t",
}

// encodeKeyFrom looks up k in table, falling back to the empty string
// (nothing sent) for keys the variant has no representation for.
func encodeKeyFrom(table map[Key]string, k Key) string {
	return table[k]
}
