package qterm

import (
	"fmt"
	"strconv"
	"strings"
)

// SaveFormat selects a textual rendering for Buffer.Save.
type SaveFormat int

const (
	SaveNormal SaveFormat = iota
	SaveHTML
)

// ProductName/ProductVersion are stamped into save banners. Overridable
// by embedders via SetProductInfo.
var (
	ProductName    = "qterm"
	ProductVersion = "dev"
)

// SetProductInfo overrides the banner's product name/version.
func SetProductInfo(name, version string) {
	ProductName = name
	ProductVersion = version
}

// Save writes the whole buffer (head to tail) to w in the requested
// format, bracketed by timestamped BEGIN/END banners, per spec §4.1/§6.
// Disk I/O failures are wrapped in SaveError and reported to sink; the
// in-memory buffer is never modified by Save.
func (b *Buffer) Save(w FileWriter, format SaveFormat, clock Clock, sink NotificationSink) error {
	if sink == nil {
		sink = b.notify
	}

	var err error
	switch format {
	case SaveHTML:
		err = b.saveHTML(w, clock)
	default:
		err = b.saveNormal(w, clock)
	}

	if err != nil {
		saveErr := SaveError{Err: err}
		sink.Notify(saveErr.Error())
		return saveErr
	}
	return nil
}

func bannerBegin(clock Clock) string {
	return fmt.Sprintf("* - * %s %s %s BEGIN * - *\n", ProductName, ProductVersion, clock.Now())
}

func bannerEnd() string {
	return "* - * END * - *\n"
}

func (b *Buffer) saveNormal(w FileWriter, clock Clock) error {
	var buf strings.Builder
	buf.WriteString(bannerBegin(clock))
	for l := b.head; l != nil; l = l.next {
		buf.WriteString(l.Text())
		buf.WriteByte('\n')
	}
	buf.WriteString(bannerEnd())
	_, err := w.Write([]byte(buf.String()))
	return err
}

func (b *Buffer) saveHTML(w FileWriter, clock Clock) error {
	var buf strings.Builder
	buf.WriteString("<html>\n<body bgcolor=\"black\">\n<pre><code>\n")
	buf.WriteString(htmlEscape(bannerBegin(clock)))

	for l := b.head; l != nil; l = l.next {
		writeHTMLLine(&buf, l)
		buf.WriteByte('\n')
	}

	buf.WriteString(htmlEscape(bannerEnd()))
	buf.WriteString("</code></pre>\n</body>\n</html>\n")
	_, err := w.Write([]byte(buf.String()))
	return err
}

// writeHTMLLine emits one row as a sequence of <font> spans, opening a
// new span only when the cell's attribute differs from the previous
// cell's, per spec §4.1.
func writeHTMLLine(buf *strings.Builder, l *Line) {
	if l.Length == 0 {
		return
	}

	var cur Attr
	open := false

	flush := func() {
		if open {
			buf.WriteString("</font>")
		}
	}

	for i := 0; i < l.Length; i++ {
		ch := l.Chars[i]
		attr := vt100CheckReverseColor(l.Colors[i], l.ReverseColor)

		if !open || attr != cur {
			flush()
			buf.WriteString(fontTag(attr))
			cur = attr
			open = true
		}

		buf.WriteString(htmlEscapeChar(ch))
	}
	flush()
}

func fontTag(a Attr) string {
	var sb strings.Builder
	sb.WriteString(`<font color="`)
	sb.WriteString(htmlColorName(a.Fg, true))
	sb.WriteString(`" style="background-color:`)
	sb.WriteString(htmlColorName(a.Bg, false))
	if a.HasStyle(StyleBold) {
		sb.WriteString(";font-weight:bold")
	}
	if a.HasStyle(StyleUnderline) {
		sb.WriteString(";text-decoration:underline")
	}
	if a.HasStyle(StyleBlink) {
		sb.WriteString(";text-decoration:blink")
	}
	sb.WriteString(`">`)
	return sb.String()
}

// htmlColorName maps a packed attribute index to an HTML color. Default
// indices fall back to the classic white-on-black console palette;
// indices 0-15 map to the standard ANSI 16-color names.
func htmlColorName(idx uint8, foreground bool) string {
	if idx == DefaultColorIndex {
		if foreground {
			return "#AAAAAA"
		}
		return "#000000"
	}
	if int(idx) < len(ansi16HTML) {
		return ansi16HTML[idx]
	}
	return "#" + strconv.FormatUint(uint64(idx), 16)
}

var ansi16HTML = [16]string{
	"#000000", "#AA0000", "#00AA00", "#AA5500",
	"#0000AA", "#AA00AA", "#00AAAA", "#AAAAAA",
	"#555555", "#FF5555", "#55FF55", "#FFFF55",
	"#5555FF", "#FF55FF", "#55FFFF", "#FFFFFF",
}

func htmlEscape(s string) string {
	var sb strings.Builder
	for _, r := range s {
		sb.WriteString(htmlEscapeChar(r))
	}
	return sb.String()
}

// htmlEscapeChar escapes one rune per spec §6: space -> &nbsp;, </> are
// escaped, non-ASCII becomes a numeric entity.
func htmlEscapeChar(r rune) string {
	switch r {
	case ' ':
		return "&nbsp;"
	case '<':
		return "&lt;"
	case '>':
		return "&gt;"
	case '&':
		return "&amp;"
	case '\n':
		return "\n"
	}
	if r > 126 || r < 32 {
		return fmt.Sprintf("&#%d;", r)
	}
	return string(r)
}
