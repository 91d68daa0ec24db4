// Package source defines named source text with line and column lookup.
package source

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Source holds group expression text and its name.
// Source is immutable and safe for concurrent use.
type Source struct {
	name       string
	content    string
	lineStarts []int
}

// New creates new Source. name is used in error messages and may be empty.
func New(name, content string) *Source {
	lineCnt := strings.Count(content, "\n") + 1
	s := &Source{name: name, content: content, lineStarts: make([]int, lineCnt)}
	j := 1
	for i := 0; i < len(content) && j < lineCnt; i++ {
		if content[i] == '\n' {
			s.lineStarts[j] = i + 1
			j++
		}
	}

	return s
}

// Name returns source name.
func (s *Source) Name() string {
	return s.name
}

// Content returns source text.
func (s *Source) Content() string {
	return s.content
}

// Len returns source length in bytes.
func (s *Source) Len() int {
	return len(s.content)
}

// LineCol converts byte offset to line and column numbers, both starting from 1.
// Column is counted in runes. Offsets beyond text boundaries are clamped.
func (s *Source) LineCol(pos int) (line, col int) {
	if pos < 0 {
		pos = 0
	} else if pos > len(s.content) {
		pos = len(s.content)
	}

	lineIndex := sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > pos
	}) - 1
	lineStart := s.lineStarts[lineIndex]
	return lineIndex + 1, utf8.RuneCountInString(s.content[lineStart:pos]) + 1
}

// Pos converts line and column numbers to byte offset.
// Returns 0 for non-positive line or column, clamps result to text length.
func (s *Source) Pos(line, col int) int {
	if line <= 0 || col <= 0 {
		return 0
	}

	l := len(s.content)
	if line > len(s.lineStarts) {
		return l
	}

	res := s.lineStarts[line-1]
	for col > 1 && res < l {
		if s.content[res] == '\n' {
			break
		}
		_, size := utf8.DecodeRuneInString(s.content[res:])
		res += size
		col--
	}
	return res
}

// Pos is a position in a source.
type Pos struct {
	src             *Source
	pos, line, col int
}

// NewPos creates new Pos for given byte offset.
func NewPos(src *Source, pos int) Pos {
	line, col := src.LineCol(pos)
	return Pos{src, pos, line, col}
}

// Source returns source or nil.
func (p Pos) Source() *Source {
	return p.src
}

// SourceName returns source name or empty string.
func (p Pos) SourceName() string {
	if p.src == nil {
		return ""
	}
	return p.src.name
}

// Pos returns byte offset.
func (p Pos) Pos() int {
	return p.pos
}

// Line returns line number or 0.
func (p Pos) Line() int {
	return p.line
}

// Col returns column number or 0.
func (p Pos) Col() int {
	return p.col
}
