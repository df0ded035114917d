// Package parser implements the recursive-descent, precedence-climbing
// parser that turns a token stream into an *ast.Crate, with panic-mode
// error recovery (spec.md §4.D).
package parser

import (
	"context"
	"errors"
	"os"

	"github.com/mna/mincc/lang/ast"
	"github.com/mna/mincc/lang/diag"
	"github.com/mna/mincc/lang/scanner"
	"github.com/mna/mincc/lang/token"
)

// ParseFile is a helper that reads, scans and parses a single source file.
// The returned *diag.List is never nil; check its Err() to know whether
// parsing failed. On success (no diagnostics), crate is fully formed.
func ParseFile(ctx context.Context, path string) (*token.File, *ast.Crate, *diag.List) {
	var list diag.List

	b, err := os.ReadFile(path)
	if err != nil {
		list.Add(diag.Lexical, token.Span{}, "%s: %s", path, err)
		return nil, nil, &list
	}

	f := token.NewFile(path, b)
	crate, errs := ParseSource(f, b)
	return f, crate, errs
}

// ParseSource parses src (the bytes backing file f) into an *ast.Crate. If a
// fatal structural error is hit inside a control-flow header (spec.md §4.D),
// crate is nil: compilation stops rather than attempting recovery.
func ParseSource(f *token.File, src []byte) (crate *ast.Crate, errs *diag.List) {
	var p parser
	p.init(f, src)

	func() {
		defer func() {
			if r := recover(); r != nil {
				if r == errFatal {
					crate = nil
					return
				}
				panic(r)
			}
		}()
		crate = p.parseCrate()
	}()

	p.errs.Sort()
	return crate, p.errs
}

// parser holds the mutable state of one parse.
type parser struct {
	file *token.File
	scan scanner.Scanner
	errs *diag.List

	tok    token.Kind
	lit    string
	span   token.Span
	nextID ast.NodeId
}

func (p *parser) init(f *token.File, src []byte) {
	p.file = f
	p.errs = &diag.List{File: f}
	p.scan.Init(f, src, p.errs)
	p.advance()
}

func (p *parser) newID() ast.NodeId {
	id := p.nextID
	p.nextID++
	return id
}

func (p *parser) advance() {
	t := p.scan.Scan()
	p.tok = t.Kind
	p.lit = t.Lit
	p.span = t.Span
}

func (p *parser) pos() token.Pos { return p.span.Pos }

// eat consumes and returns the current token's position if its kind matches
// k, without recording any diagnostic. ok reports whether it matched.
func (p *parser) eat(k token.Kind) (pos token.Pos, ok bool) {
	if p.tok != k {
		return token.NoPos, false
	}
	pos = p.pos()
	p.advance()
	return pos, true
}

var errPanicMode = errors.New("parser: panic mode")

// expectClosing consumes the current token if it matches k, reporting
// whether it matched. Unlike expect, it does not panic on mismatch: used for
// a missing closing delimiter inside a primary expression, where spec.md
// §4.D has the *expression* (not the enclosing statement) become Error.
func (p *parser) expectClosing(k token.Kind) bool {
	pos := p.pos()
	if p.tok != k {
		p.errorExpected(pos, k.GoString())
		return false
	}
	p.advance()
	return true
}

// expect consumes the current token if it matches k, returning its position.
// Otherwise it records an ExpectedToken diagnostic and panics with
// errPanicMode, to be recovered at the enclosing parseStmt call.
func (p *parser) expect(k token.Kind) token.Pos {
	pos := p.pos()
	if p.tok != k {
		p.errorExpected(pos, k.GoString())
		panic(errPanicMode)
	}
	p.advance()
	return pos
}

// expectFatal is like expect but for structural tokens inside control-flow
// headers, where recovery is not attempted: spec.md §4.D says these stop
// compilation.
func (p *parser) expectFatal(k token.Kind) token.Pos {
	pos := p.pos()
	if p.tok != k {
		p.errorExpected(pos, k.GoString())
		panic(errFatal)
	}
	p.advance()
	return pos
}

var errFatal = errors.New("parser: fatal")

func (p *parser) error(kind diag.Kind, pos token.Pos, format string, args ...interface{}) {
	p.errs.Add(kind, token.Span{Pos: pos, Len: 1}, format, args...)
}

func (p *parser) errorExpected(pos token.Pos, what string) {
	found := p.curTokenText()
	p.error(diag.ExpectedToken, pos, "expected %s, found %s", what, found)
}

// curTokenText renders the current token the way diagnostics quote it: the
// literal text for identifiers/integers, the GoString spelling otherwise
// (which already quotes punctuation, e.g. "';'").
func (p *parser) curTokenText() string {
	switch p.tok {
	case token.IDENT, token.INT:
		return "'" + p.lit + "'"
	default:
		return p.tok.GoString()
	}
}
