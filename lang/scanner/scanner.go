// Package scanner implements the tokenizer: a deterministic single-pass
// scanner over a byte buffer, producing a token.Token stream with spans
// (spec.md §4.C).
package scanner

import (
	"context"
	"os"

	"github.com/mna/mincc/lang/diag"
	"github.com/mna/mincc/lang/token"
)

// ScanFiles is a helper that tokenizes each named source file independently
// and returns the tokens alongside the token.File used for position
// reporting, one pair per input file, plus the accumulated diagnostics.
func ScanFiles(ctx context.Context, files ...string) ([]*token.File, [][]token.Token, *diag.List) {
	var list diag.List
	tfiles := make([]*token.File, 0, len(files))
	toks := make([][]token.Token, 0, len(files))

	for _, name := range files {
		b, err := os.ReadFile(name)
		if err != nil {
			list.Add(diag.Lexical, token.Span{}, "%s: %s", name, err)
			continue
		}
		f := token.NewFile(name, b)
		var s Scanner
		s.Init(f, b, &list)

		var toksForFile []token.Token
		for {
			tok := s.Scan()
			toksForFile = append(toksForFile, tok)
			if tok.Kind == token.EOF {
				break
			}
		}
		tfiles = append(tfiles, f)
		toks = append(toks, toksForFile)
	}
	list.Sort()
	return tfiles, toks, &list
}

// Scanner tokenizes a single source file for the parser to consume.
type Scanner struct {
	file *token.File
	src  []byte
	errs *diag.List

	off int  // byte offset of s.cur
	cur byte // current byte; 0 at end of input (NUL is not valid source anyway)
}

// Init prepares s to scan src, which must be the same bytes used to build
// file. Lexical errors are recorded into errs (if non-nil) instead of
// aborting the scan, per spec.md §7: "a production implementation should
// emit a diagnostic and skip one byte."
func (s *Scanner) Init(file *token.File, src []byte, errs *diag.List) {
	s.file = file
	s.src = src
	s.errs = errs
	s.off = 0
	if len(src) > 0 {
		s.cur = src[0]
	} else {
		s.cur = 0
	}
}

func (s *Scanner) atEOF() bool { return s.off >= len(s.src) }

func (s *Scanner) advance() {
	s.off++
	if s.off < len(s.src) {
		s.cur = s.src[s.off]
	} else {
		s.cur = 0
	}
}

func (s *Scanner) peekAt(n int) byte {
	if s.off+n < len(s.src) {
		return s.src[s.off+n]
	}
	return 0
}

func (s *Scanner) errorf(off int, format string, args ...interface{}) {
	if s.errs != nil {
		s.errs.Add(diag.Lexical, token.Span{Pos: token.Pos(off), Len: 1}, format, args...)
	}
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\r' || b == '\n' }
func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isLetter(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
func isAlnum(b byte) bool { return isLetter(b) || isDigit(b) }

// skipWhitespaceAndComments skips ASCII whitespace and, per spec.md §6,
// "// ..." and "/* ... */" comments.
func (s *Scanner) skipWhitespaceAndComments() {
	for {
		for !s.atEOF() && isSpace(s.cur) {
			s.advance()
		}
		if !s.atEOF() && s.cur == '/' && s.peekAt(1) == '/' {
			for !s.atEOF() && s.cur != '\n' {
				s.advance()
			}
			continue
		}
		if !s.atEOF() && s.cur == '/' && s.peekAt(1) == '*' {
			start := s.off
			s.advance()
			s.advance()
			for !s.atEOF() && !(s.cur == '*' && s.peekAt(1) == '/') {
				s.advance()
			}
			if s.atEOF() {
				s.errorf(start, "unterminated block comment")
				return
			}
			s.advance() // '*'
			s.advance() // '/'
			continue
		}
		return
	}
}

// Scan returns the next token, advancing past it. At the end of input, Scan
// repeatedly returns a token.EOF token.
func (s *Scanner) Scan() token.Token {
	s.skipWhitespaceAndComments()

	pos := token.Pos(s.off)
	if s.atEOF() {
		return token.Token{Kind: token.EOF, Span: token.Span{Pos: pos}}
	}

	switch c := s.cur; {
	case isDigit(c):
		start := s.off
		for !s.atEOF() && isDigit(s.cur) {
			s.advance()
		}
		lit := string(s.src[start:s.off])
		return token.Token{Kind: token.INT, Span: token.Span{Pos: pos, Len: int32(len(lit))}, Lit: lit}

	case isLetter(c):
		start := s.off
		for !s.atEOF() && isAlnum(s.cur) {
			s.advance()
		}
		lit := string(s.src[start:s.off])
		return token.Token{Kind: token.Lookup(lit), Span: token.Span{Pos: pos, Len: int32(len(lit))}, Lit: lit}

	default:
		return s.scanPunct(pos)
	}
}

// scanPunct scans one of the single/double-char punctuation tokens
// recognized by the grammar (spec.md §4.C).
func (s *Scanner) scanPunct(pos token.Pos) token.Token {
	c := s.cur
	span1 := token.Span{Pos: pos, Len: 1}

	switch c {
	case '(':
		s.advance()
		return token.Token{Kind: token.LPAREN, Span: span1}
	case ')':
		s.advance()
		return token.Token{Kind: token.RPAREN, Span: span1}
	case '{':
		s.advance()
		return token.Token{Kind: token.LBRACE, Span: span1}
	case '}':
		s.advance()
		return token.Token{Kind: token.RBRACE, Span: span1}
	case ';':
		s.advance()
		return token.Token{Kind: token.SEMI, Span: span1}
	case ',':
		s.advance()
		return token.Token{Kind: token.COMMA, Span: span1}
	case '+':
		s.advance()
		return token.Token{Kind: token.PLUS, Span: span1}
	case '-':
		s.advance()
		return token.Token{Kind: token.MINUS, Span: span1}
	case '*':
		s.advance()
		return token.Token{Kind: token.STAR, Span: span1}
	case '/':
		s.advance()
		return token.Token{Kind: token.SLASH, Span: span1}
	case '&':
		s.advance()
		return token.Token{Kind: token.AMP, Span: span1}

	case '=':
		return s.scanMaybeEq(pos, token.ASSIGN, token.EQL)
	case '<':
		return s.scanMaybeEq(pos, token.LT, token.LE)
	case '>':
		return s.scanMaybeEq(pos, token.GT, token.GE)

	case '!':
		if s.peekAt(1) == '=' {
			s.advance()
			s.advance()
			return token.Token{Kind: token.NEQ, Span: token.Span{Pos: pos, Len: 2}}
		}
		s.errorf(s.off, "unexpected character %q", string(c))
		s.advance()
		return token.Token{Kind: token.ILLEGAL, Span: span1}

	default:
		s.errorf(s.off, "unexpected character %q", string(c))
		s.advance()
		return token.Token{Kind: token.ILLEGAL, Span: span1}
	}
}

// scanMaybeEq handles the six tokens (=, ==, <, <=, >, >=) that peek one
// byte ahead to decide between a one-char and two-char token.
func (s *Scanner) scanMaybeEq(pos token.Pos, one, two token.Kind) token.Token {
	if s.peekAt(1) == '=' {
		s.advance()
		s.advance()
		return token.Token{Kind: two, Span: token.Span{Pos: pos, Len: 2}}
	}
	s.advance()
	return token.Token{Kind: one, Span: token.Span{Pos: pos, Len: 1}}
}
