package source

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Position is a human-readable location in the source text.
type Position struct {
	Offset int // byte offset
	Line   int // 1-based line number
	Column int // 1-based column, counted in characters
}

// String returns "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// LineIndex maps byte offsets to line/column positions.
// Lines are terminated by "\n"; a preceding "\r" belongs to the terminator.
type LineIndex struct {
	text   string
	starts []int // byte offset where each line begins
}

// NewLineIndex scans text once and records the start of every line.
func NewLineIndex(text string) *LineIndex {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{text: text, starts: starts}
}

// LineCount returns the number of lines. A trailing newline opens a final
// empty line.
func (idx *LineIndex) LineCount() int {
	return len(idx.starts)
}

// Position resolves a byte offset. Offsets outside the text are clamped.
func (idx *LineIndex) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(idx.text) {
		offset = len(idx.text)
	}
	// last line whose start is <= offset
	line := sort.Search(len(idx.starts), func(i int) bool {
		return idx.starts[i] > offset
	}) - 1
	col := utf8.RuneCountInString(idx.text[idx.starts[line]:offset]) + 1
	return Position{Offset: offset, Line: line + 1, Column: col}
}

// LineStart returns the byte offset at which the 1-based line begins.
func (idx *LineIndex) LineStart(line int) int {
	if line < 1 {
		return 0
	}
	if line > len(idx.starts) {
		return len(idx.text)
	}
	return idx.starts[line-1]
}

// Line returns the content of the 1-based line without its terminator.
// Unknown lines yield an empty string.
func (idx *LineIndex) Line(line int) string {
	if line < 1 || line > len(idx.starts) {
		return ""
	}
	start := idx.starts[line-1]
	end := len(idx.text)
	if line < len(idx.starts) {
		end = idx.starts[line] - 1
	}
	return strings.TrimSuffix(idx.text[start:end], "\r")
}

// PositionOf is a convenience for one-off lookups.
func PositionOf(text string, offset int) Position {
	return NewLineIndex(text).Position(offset)
}
