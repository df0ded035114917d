// Package diag implements the diagnostic taxonomy and rendering shared by the
// scanner, parser and resolver: byte-range spans resolved against a
// token.File, a small error-kind taxonomy, and the "Error: ... at line L,
// column C" plus caret-underline rendering described in spec.md §6.
//
// The shape mirrors go/scanner.ErrorList (a sortable list with an Err method
// that returns nil for an empty list) but carries a Kind per diagnostic,
// which go/scanner.Error has no room for.
package diag

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mna/mincc/lang/token"
)

// Kind classifies a Diagnostic, per spec.md §7.
type Kind int

const (
	// Lexical is an unexpected byte in the source (e.g. a stray '!' not
	// followed by '=').
	Lexical Kind = iota
	// WrongType is a malformed primary expression (expected a number, found
	// something else).
	WrongType
	// ExpectedToken is a missing closing delimiter or required token.
	ExpectedToken
	// UnresolvedName is a reference to an identifier with no visible binding.
	UnresolvedName
	// Redeclared is a same-scope redeclaration of a function, parameter or
	// local.
	Redeclared
	// InternalError wraps a recovered code generator panic (spec.md §7: "an
	// internal invariant violation; treat as a compiler bug"), so the driver
	// can report it like any other diagnostic instead of crashing.
	InternalError
)

func (k Kind) String() string {
	switch k {
	case Lexical:
		return "lexical error"
	case WrongType:
		return "wrong type"
	case ExpectedToken:
		return "expected token"
	case UnresolvedName:
		return "unresolved name"
	case Redeclared:
		return "redeclared"
	case InternalError:
		return "internal error"
	default:
		return "error"
	}
}

// A Diagnostic is one reported error, anchored at a span in a source file.
type Diagnostic struct {
	Kind Kind
	Span token.Span
	Msg  string
}

func (d Diagnostic) Error() string { return d.Msg }

// List accumulates diagnostics across a scan/parse/resolve pass. The zero
// value is ready to use.
type List struct {
	File  *token.File
	Diags []Diagnostic
}

// Add records a new diagnostic.
func (l *List) Add(kind Kind, span token.Span, format string, args ...interface{}) {
	l.Diags = append(l.Diags, Diagnostic{Kind: kind, Span: span, Msg: fmt.Sprintf(format, args...)})
}

// Len reports the number of recorded diagnostics.
func (l *List) Len() int { return len(l.Diags) }

// Sort orders diagnostics by position, for deterministic output.
func (l *List) Sort() {
	sort.SliceStable(l.Diags, func(i, j int) bool {
		return l.Diags[i].Span.Pos < l.Diags[j].Span.Pos
	})
}

// Err returns nil if l is empty, otherwise l itself as an error (so callers
// can write "if err := list.Err(); err != nil" uniformly, mirroring
// go/scanner.ErrorList.Err).
func (l *List) Err() error {
	if l == nil || len(l.Diags) == 0 {
		return nil
	}
	return l
}

// Error implements the error interface by rendering a one-line summary per
// diagnostic, separated by newlines. Use PrintTo for the full caret-annotated
// rendering.
func (l *List) Error() string {
	var b strings.Builder
	for i, d := range l.Diags {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(l.oneLine(d))
	}
	return b.String()
}

func (l *List) oneLine(d Diagnostic) string {
	if l.File == nil {
		return d.Msg
	}
	pos := l.File.Position(d.Span.Pos)
	return fmt.Sprintf("%s:%d:%d: %s", pos.Filename, pos.Line, pos.Column, d.Msg)
}

// PrintTo renders every diagnostic in l to w in the format prescribed by
// spec.md §6:
//
//	Error: expected <what>, found <token> at line <L>, column <C>
//	<source line>
//	<caret underline>
func (l *List) PrintTo(w io.Writer) {
	for _, d := range l.Diags {
		l.printOne(w, d)
	}
}

func (l *List) printOne(w io.Writer, d Diagnostic) {
	if l.File == nil {
		fmt.Fprintf(w, "Error: %s\n", d.Msg)
		return
	}
	pos := l.File.Position(d.Span.Pos)
	fmt.Fprintf(w, "Error: %s at line %d, column %d\n", d.Msg, pos.Line, pos.Column)
	lineSrc := l.File.LineContent(pos.Line)
	fmt.Fprintf(w, "%s\n", lineSrc)

	width := int(d.Span.Len)
	if width < 1 {
		width = 1
	}
	col := pos.Column - 1
	if col < 0 {
		col = 0
	}
	if col > len(lineSrc) {
		col = len(lineSrc)
	}
	fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", col), strings.Repeat("^", width))
}
