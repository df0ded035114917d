package ast

import "github.com/mna/mincc/lang/token"

// Expr is any expression node: spec.md §3's ExprKind variants, each as its
// own concrete type implementing Expr.
type Expr interface {
	Node
	ID() NodeId
	expr()
}

// BinOp identifies a binary operator.
type BinOp int

const (
	BinAdd BinOp = iota
	BinSub
	BinMul
	BinDiv
	BinEq
	BinNeq
	BinLt
	BinLe
	BinGt
	BinGe
)

func (op BinOp) String() string {
	switch op {
	case BinAdd:
		return "+"
	case BinSub:
		return "-"
	case BinMul:
		return "*"
	case BinDiv:
		return "/"
	case BinEq:
		return "=="
	case BinNeq:
		return "!="
	case BinLt:
		return "<"
	case BinLe:
		return "<="
	case BinGt:
		return ">"
	case BinGe:
		return ">="
	default:
		return "BinOp(?)"
	}
}

// UnOp identifies a unary (prefix) operator.
type UnOp int

const (
	UnPos   UnOp = iota // unary '+', no-op
	UnNeg               // unary '-'
	UnAddr              // '&', address-of
	UnDeref             // '*', dereference
)

func (op UnOp) String() string {
	switch op {
	case UnPos:
		return "+"
	case UnNeg:
		return "-"
	case UnAddr:
		return "&"
	case UnDeref:
		return "*"
	default:
		return "UnOp(?)"
	}
}

type (
	// LiteralExpr is an integer literal. Value is the parsed constant; the
	// original source text is not retained once the parser succeeds.
	LiteralExpr struct {
		Id    NodeId
		Pos   token.Pos
		Len   int32
		Value int64
	}

	// VarExpr is a bare identifier used as an expression: a read of a variable
	// or, when it is the callee of a FnCallExpr, the function being called.
	// The resolver fills ExprResolutions[Id] with the ObjId it refers to.
	VarExpr struct {
		Id   NodeId
		Name string
		Pos  token.Pos
	}

	// FnCallExpr is "callee(args...)".
	FnCallExpr struct {
		Id     NodeId
		Callee *VarExpr
		Args   []Expr
		RParen token.Pos
	}

	// BinaryExpr is "left op right".
	BinaryExpr struct {
		Id          NodeId
		Op          BinOp
		OpPos       token.Pos
		Left, Right Expr
	}

	// UnaryExpr is "op operand" (prefix only: spec.md §3's Non-goals exclude
	// postfix increment/decrement).
	UnaryExpr struct {
		Id      NodeId
		Op      UnOp
		OpPos   token.Pos
		Operand Expr
	}

	// AssignExpr is "target = value". Target must be an assignable expression
	// (VarExpr or a dereferencing UnaryExpr); the parser and the resolver
	// accept any Expr here and the code generator rejects invalid targets, mirroring
	// spec.md §4.B's lvalue-check-after-parse shape.
	AssignExpr struct {
		Id     NodeId
		Target Expr
		EqPos  token.Pos
		Value  Expr
	}

	// ErrorExpr is a placeholder produced by panic-mode recovery in place of
	// an expression the parser could not parse, so that the rest of the tree
	// remains well-formed.
	ErrorExpr struct {
		Id         NodeId
		Start, End token.Pos
	}
)

func (n *LiteralExpr) ID() NodeId { return n.Id }
func (n *VarExpr) ID() NodeId     { return n.Id }
func (n *FnCallExpr) ID() NodeId  { return n.Id }
func (n *BinaryExpr) ID() NodeId  { return n.Id }
func (n *UnaryExpr) ID() NodeId   { return n.Id }
func (n *AssignExpr) ID() NodeId  { return n.Id }
func (n *ErrorExpr) ID() NodeId   { return n.Id }

func (*LiteralExpr) expr() {}
func (*VarExpr) expr()     {}
func (*FnCallExpr) expr()  {}
func (*BinaryExpr) expr()  {}
func (*UnaryExpr) expr()   {}
func (*AssignExpr) expr()  {}
func (*ErrorExpr) expr()   {}

func (n *LiteralExpr) Span() (start, end token.Pos) {
	return n.Pos, n.Pos + token.Pos(n.Len)
}
func (n *LiteralExpr) Walk(_ Visitor) {}

func (n *VarExpr) Span() (start, end token.Pos) {
	return n.Pos, n.Pos + token.Pos(len(n.Name))
}
func (n *VarExpr) Walk(_ Visitor) {}

func (n *FnCallExpr) Span() (start, end token.Pos) {
	start, _ = n.Callee.Span()
	return start, n.RParen + 1
}
func (n *FnCallExpr) Walk(v Visitor) {
	Walk(v, n.Callee)
	for _, a := range n.Args {
		Walk(v, a)
	}
}

func (n *BinaryExpr) Span() (start, end token.Pos) {
	start, _ = n.Left.Span()
	_, end = n.Right.Span()
	return start, end
}
func (n *BinaryExpr) Walk(v Visitor) {
	Walk(v, n.Left)
	Walk(v, n.Right)
}

func (n *UnaryExpr) Span() (start, end token.Pos) {
	_, end = n.Operand.Span()
	return n.OpPos, end
}
func (n *UnaryExpr) Walk(v Visitor) { Walk(v, n.Operand) }

func (n *AssignExpr) Span() (start, end token.Pos) {
	start, _ = n.Target.Span()
	_, end = n.Value.Span()
	return start, end
}
func (n *AssignExpr) Walk(v Visitor) {
	Walk(v, n.Target)
	Walk(v, n.Value)
}

func (n *ErrorExpr) Span() (start, end token.Pos) { return n.Start, n.End }
func (n *ErrorExpr) Walk(_ Visitor)               {}

// IsAssignable reports whether e is syntactically valid as the target of an
// AssignExpr: a bare variable, or a dereference of a pointer expression.
func IsAssignable(e Expr) bool {
	switch e := e.(type) {
	case *VarExpr:
		return true
	case *UnaryExpr:
		return e.Op == UnDeref
	default:
		return false
	}
}
