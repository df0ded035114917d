package token

import "sort"

// Pos is a byte offset into the source of a File. The zero value, NoPos, has
// no valid position associated with it.
type Pos int32

// NoPos is the zero Pos; File.Position reports it as line 1, column 1, the
// same as the first byte of the file.
const NoPos Pos = 0

// IsValid reports whether p represents an actual source position.
func (p Pos) IsValid() bool { return p != NoPos }

// Span is a byte-offset range [Pos, Pos+Len) into a single File.
type Span struct {
	Pos Pos
	Len int32
}

// End returns the offset immediately following the span.
func (s Span) End() Pos { return s.Pos + Pos(s.Len) }

// Text returns the source text covered by s, given the full source bytes of
// the File s belongs to.
func (s Span) Text(src []byte) []byte {
	return src[s.Pos : s.Pos+Pos(s.Len)]
}

// Position is the human-readable expansion of a Pos: a 1-based line and
// column within a named file.
type Position struct {
	Filename string
	Line     int // 1-based
	Column   int // 1-based, in bytes
}

// IsValid reports whether the position is known.
func (p Position) IsValid() bool { return p.Line > 0 }

// File tracks the source bytes of a single compilation unit and the
// byte-offset at which each line starts, so that any Pos can be mapped back
// to a (line, column) pair and the contents of its line can be retrieved for
// diagnostic rendering. This is the source map described in spec.md §3
// ("SourceFile").
type File struct {
	name string
	src  []byte
	// lines holds the byte offset of the first byte of each line; lines[0] is
	// always 0. One entry is appended per '\n' encountered, pointing at the
	// byte immediately following it.
	lines []int32
}

// NewFile builds a File for src, named name, precomputing the line-start
// table in one pass.
func NewFile(name string, src []byte) *File {
	f := &File{name: name, src: src, lines: []int32{0}}
	for i, b := range src {
		if b == '\n' {
			f.lines = append(f.lines, int32(i+1))
		}
	}
	return f
}

// Name returns the file's name, as given to NewFile.
func (f *File) Name() string { return f.name }

// Src returns the file's full source bytes. Callers must not modify it.
func (f *File) Src() []byte { return f.src }

// Size returns the number of bytes in the file's source.
func (f *File) Size() int { return len(f.src) }

// lineIndex returns the 0-based index of the line containing byte offset
// off, via binary search over the line-start table.
func (f *File) lineIndex(off int32) int {
	// sort.Search finds the first line whose start is > off; the containing
	// line is the one before it.
	i := sort.Search(len(f.lines), func(i int) bool { return f.lines[i] > off })
	return i - 1
}

// LineColumn returns the 1-based (line, column) for byte offset pos. Column
// is a byte offset within the line, not a rune count.
func (f *File) LineColumn(pos Pos) (line, column int) {
	off := int32(pos)
	if off < 0 {
		off = 0
	}
	if off > int32(len(f.src)) {
		off = int32(len(f.src))
	}
	li := f.lineIndex(off)
	if li < 0 {
		li = 0
	}
	return li + 1, int(off-f.lines[li]) + 1
}

// Position expands pos into a full Position for this file.
func (f *File) Position(pos Pos) Position {
	line, col := f.LineColumn(pos)
	return Position{Filename: f.name, Line: line, Column: col}
}

// LineContent returns the raw bytes of the given 1-based line number,
// excluding its trailing newline, for use in diagnostic rendering.
func (f *File) LineContent(line int) []byte {
	idx := line - 1
	if idx < 0 || idx >= len(f.lines) {
		return nil
	}
	start := f.lines[idx]
	var end int32
	if idx+1 < len(f.lines) {
		end = f.lines[idx+1] - 1 // exclude the '\n'
	} else {
		end = int32(len(f.src))
	}
	if end < start {
		end = start
	}
	line1 := f.src[start:end]
	// trim a trailing '\r' for CRLF sources
	if n := len(line1); n > 0 && line1[n-1] == '\r' {
		line1 = line1[:n-1]
	}
	return line1
}
