// Package escpos builds raw ESC/POS byte streams for 80 mm network receipt
// printers. It covers only what the receipt templates need: styled text,
// alignment, fixed-width tables and the cut command.
package escpos

import (
	"bytes"
	"strings"
)

// Align values map straight to ESC a n.
type Align byte

const (
	AlignLeft   Align = 0
	AlignCenter Align = 1
	AlignRight  Align = 2
)

// Col defines one table column: character width and cell alignment.
type Col struct {
	Width int
	Align Align
}

// Cell is one table cell. Bold cells toggle emphasis just for their text.
type Cell struct {
	Text string
	Bold bool
}

// Encoder accumulates commands; all methods return the encoder so templates
// can chain calls. Width is the printable line width in characters (42 for
// the 80 mm printers the branches use).
type Encoder struct {
	buf   bytes.Buffer
	width int
}

func New(width int) *Encoder {
	return &Encoder{width: width}
}

// Initialize resets the printer and selects code page 850 so Spanish
// accented characters print correctly.
func (e *Encoder) Initialize() *Encoder {
	e.buf.Write([]byte{0x1b, 0x40})       // ESC @
	e.buf.Write([]byte{0x1b, 0x74, 0x02}) // ESC t 2: CP850
	return e
}

// Raw appends printer-specific commands verbatim.
func (e *Encoder) Raw(b ...byte) *Encoder {
	e.buf.Write(b)
	return e
}

func (e *Encoder) Bold(on bool) *Encoder {
	n := byte(0)
	if on {
		n = 1
	}
	e.buf.Write([]byte{0x1b, 0x45, n}) // ESC E n
	return e
}

// Condensed switches the small font used for combo and packaging sub-lines.
func (e *Encoder) Condensed(on bool) *Encoder {
	n := byte(0)
	if on {
		n = 1
	}
	e.buf.Write([]byte{0x1b, 0x21, n}) // ESC ! n
	return e
}

func (e *Encoder) Align(a Align) *Encoder {
	e.buf.Write([]byte{0x1b, 0x61, byte(a)}) // ESC a n
	return e
}

// Text writes s transliterated to CP850.
func (e *Encoder) Text(s string) *Encoder {
	e.buf.Write(toCP850(s))
	return e
}

// Newline feeds n lines (one when omitted).
func (e *Encoder) Newline(n ...int) *Encoder {
	count := 1
	if len(n) > 0 {
		count = n[0]
	}
	for i := 0; i < count; i++ {
		e.buf.WriteByte('\n')
	}
	return e
}

// Rule prints a dashed line across the full width.
func (e *Encoder) Rule() *Encoder {
	e.buf.WriteString(strings.Repeat("-", e.width))
	e.buf.WriteByte('\n')
	return e
}

// Table prints rows under the given column layout. Cells longer than their
// column are truncated; shorter ones are padded on the side their alignment
// dictates.
func (e *Encoder) Table(cols []Col, rows [][]Cell) *Encoder {
	for _, row := range rows {
		for i, col := range cols {
			if i >= len(row) {
				break
			}
			cell := row[i]
			if cell.Bold {
				e.Bold(true)
			}
			e.Text(fit(cell.Text, col.Width, col.Align))
			if cell.Bold {
				e.Bold(false)
			}
		}
		e.buf.WriteByte('\n')
	}
	return e
}

// Cut feeds past the tear bar and issues a partial cut.
func (e *Encoder) Cut() *Encoder {
	e.buf.Write([]byte{0x1d, 0x56, 0x42, 0x00}) // GS V B 0
	return e
}

// Encode returns the accumulated byte stream.
func (e *Encoder) Encode() []byte {
	return e.buf.Bytes()
}

func fit(s string, width int, a Align) string {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width])
	}
	pad := strings.Repeat(" ", width-len(runes))
	if a == AlignRight {
		return pad + s
	}
	return s + pad
}

// cp850 maps the Spanish characters the receipts use; anything outside the
// table and ASCII prints as '?'.
var cp850 = map[rune]byte{
	'á': 0xa0, 'é': 0x82, 'í': 0xa1, 'ó': 0xa2, 'ú': 0xa3,
	'Á': 0xb5, 'É': 0x90, 'Í': 0xd6, 'Ó': 0xe0, 'Ú': 0xe9,
	'ñ': 0xa4, 'Ñ': 0xa5, 'ü': 0x81, 'Ü': 0x9a,
	'¿': 0xa8, '¡': 0xad, '°': 0xf8, '©': 0xb8, '±': 0xf1,
}

func toCP850(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		switch {
		case r < 0x80:
			out = append(out, byte(r))
		default:
			if b, ok := cp850[r]; ok {
				out = append(out, b)
			} else {
				out = append(out, '?')
			}
		}
	}
	return out
}
