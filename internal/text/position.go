// Package text provides position arithmetic and token extraction over raw
// document text. Everything in this package is pure: no state is shared
// between calls, so all functions are safe for concurrent use.
package text

import (
	"unicode/utf16"

	"github.com/rivo/uniseg"
)

// Position is a zero-based (line, character) pair. The unit of the character
// component depends on the ColumnUnit the mapper was built with.
type Position struct {
	Line      uint32
	Character uint32
}

// Range is a half-open span between two positions.
type Range struct {
	Start Position
	End   Position
}

// ColumnUnit selects how the character component of a Position is counted.
type ColumnUnit int

const (
	// ColumnUnitUTF16 counts UTF-16 code units, the LSP default.
	ColumnUnitUTF16 ColumnUnit = iota
	// ColumnUnitRune counts Unicode code points.
	ColumnUnitRune
	// ColumnUnitGrapheme counts grapheme clusters.
	ColumnUnitGrapheme
)

// Mapper converts between (line, character) positions and absolute byte
// offsets of a single text. Conversions round-trip exactly for any position
// that lies within the text's bounds.
type Mapper struct {
	text       string
	unit       ColumnUnit
	lineStarts []int
}

// NewMapper builds a line index over text.
func NewMapper(text string, unit ColumnUnit) *Mapper {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Mapper{text: text, unit: unit, lineStarts: starts}
}

// lineSpan returns the byte range of a line, excluding its trailing newline.
func (m *Mapper) lineSpan(line uint32) (int, int, bool) {
	if int(line) >= len(m.lineStarts) {
		return 0, 0, false
	}
	start := m.lineStarts[line]
	end := len(m.text)
	if int(line)+1 < len(m.lineStarts) {
		end = m.lineStarts[line+1] - 1
	}
	return start, end, true
}

// width returns the column width of a single segment in the mapper's unit.
func (m *Mapper) width(segment string) uint32 {
	switch m.unit {
	case ColumnUnitRune, ColumnUnitGrapheme:
		return 1
	default:
		var n int
		for _, r := range segment {
			n += len(utf16.Encode([]rune{r}))
		}
		return uint32(n)
	}
}

// next returns the byte length of the next column segment at s.
func (m *Mapper) next(s string) int {
	if m.unit == ColumnUnitGrapheme {
		cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
		return len(cluster)
	}
	for i := 1; i <= len(s); i++ {
		if i == len(s) || utf8Start(s[i]) {
			return i
		}
	}
	return len(s)
}

func utf8Start(b byte) bool {
	return b&0xC0 != 0x80
}

// Offset converts a position to an absolute byte offset. It reports false
// when the position lies outside the text's bounds.
func (m *Mapper) Offset(pos Position) (int, bool) {
	start, end, ok := m.lineSpan(pos.Line)
	if !ok {
		return 0, false
	}
	var col uint32
	for i := start; i < end; {
		if col == pos.Character {
			return i, true
		}
		step := m.next(m.text[i:end])
		col += m.width(m.text[i : i+step])
		i += step
	}
	if col == pos.Character {
		return end, true
	}
	return 0, false
}

// Position converts an absolute byte offset to a position. It reports false
// when the offset lies outside the text.
func (m *Mapper) Position(offset int) (Position, bool) {
	if offset < 0 || offset > len(m.text) {
		return Position{}, false
	}
	line := 0
	for line+1 < len(m.lineStarts) && m.lineStarts[line+1] <= offset {
		line++
	}
	start, end, _ := m.lineSpan(uint32(line))
	if offset > end {
		// Offset points at a line's trailing newline.
		offset = end
	}
	var col uint32
	for i := start; i < offset; {
		step := m.next(m.text[i:end])
		if i+step > offset {
			return Position{}, false
		}
		col += m.width(m.text[i : i+step])
		i += step
	}
	return Position{Line: uint32(line), Character: col}, true
}
