// Package ast defines the abstract syntax tree produced by the parser:
// spec.md §3's Crate/Fn/Stmt/Expr data model, each node carrying a unique
// NodeId assigned by the parser for later use as a side-table key by the
// resolver and code generator.
package ast

import (
	"fmt"

	"github.com/mna/mincc/lang/token"
)

// NodeId is a parser-assigned, monotonically increasing identity for every
// Stmt and Expr node. It is the key the resolver uses in ExprResolutions and
// that the frame layout reaches, indirectly, via ObjId.
type NodeId uint32

// Node is any node of the AST: every node can report its span and accept a
// Visitor.
type Node interface {
	Span() (start, end token.Pos)
	Walk(v Visitor)
}

// Ty is the type of a declaration. The language has a single type, a signed
// 8-byte integer; Ty exists so that "int" can be parsed and carried in the
// tree even though it imposes no checking, per spec.md §1.
type Ty int

// TyInt is the only type in the language.
const TyInt Ty = 0

// Crate is the root of the AST: the whole compilation unit, a sequence of
// function definitions.
type Crate struct {
	Fns []*Fn
}

func (n *Crate) Span() (start, end token.Pos) {
	if len(n.Fns) == 0 {
		return token.NoPos, token.NoPos
	}
	start, _ = n.Fns[0].Span()
	_, end = n.Fns[len(n.Fns)-1].Span()
	return start, end
}

func (n *Crate) Walk(v Visitor) {
	for _, fn := range n.Fns {
		Walk(v, fn)
	}
}

// Param is one function parameter: a name and its declared type (always
// TyInt, see spec.md §1's Non-goals).
type Param struct {
	Name string
	Ty   Ty
	Pos  token.Pos
}

// Fn is a function definition: name, parameters and its body block.
type Fn struct {
	Name     string
	NamePos  token.Pos
	Params   []Param
	Body     *BlockStmt
	StartPos token.Pos
	EndPos   token.Pos
}

func (n *Fn) Span() (start, end token.Pos) { return n.StartPos, n.EndPos }
func (n *Fn) Walk(v Visitor) {
	if n.Body != nil {
		Walk(v, n.Body)
	}
}

func (n *Fn) String() string {
	return fmt.Sprintf("fn %s/%d", n.Name, len(n.Params))
}
