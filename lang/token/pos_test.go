package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileLineColumn(t *testing.T) {
	src := []byte("abc\ndef\nghi")
	f := NewFile("test", src)

	cases := []struct {
		pos        Pos
		line, col  int
		lineSrc    string
	}{
		{0, 1, 1, "abc"},
		{2, 1, 3, "abc"},
		{3, 1, 4, "abc"}, // the '\n' itself, still reported on line 1
		{4, 2, 1, "def"},
		{7, 2, 4, "def"},
		{8, 3, 1, "ghi"},
		{10, 3, 3, "ghi"},
	}
	for _, c := range cases {
		line, col := f.LineColumn(c.pos)
		assert.Equal(t, c.line, line, "pos %d line", c.pos)
		assert.Equal(t, c.col, col, "pos %d column", c.pos)
		assert.Equal(t, c.lineSrc, string(f.LineContent(line)))
	}
}

func TestFilePosition(t *testing.T) {
	f := NewFile("main.c", []byte("int main() {\n  return 0;\n}\n"))
	pos := Pos(15) // the 'r' of "return"
	got := f.Position(pos)
	assert.Equal(t, Position{Filename: "main.c", Line: 2, Column: 3}, got)
	assert.True(t, got.IsValid())
}

func TestSpanText(t *testing.T) {
	src := []byte("foo + bar")
	sp := Span{Pos: 6, Len: 3}
	assert.Equal(t, "bar", string(sp.Text(src)))
	assert.Equal(t, Pos(9), sp.End())
}

func TestNoPos(t *testing.T) {
	assert.False(t, NoPos.IsValid())
	assert.True(t, Pos(1).IsValid())
}
