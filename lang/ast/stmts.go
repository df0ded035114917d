package ast

import "github.com/mna/mincc/lang/token"

// Stmt is any statement node: spec.md §3's StmtKind variants, each as its own
// concrete type implementing Stmt, in the idiom the teacher uses for its
// larger statement set (ast/stmts.go).
type Stmt interface {
	Node
	ID() NodeId
	stmt()
}

// DeclSpec is the declaration specifier of a Decl statement. The grammar only
// recognizes "int", so this simply records the position of that keyword.
type DeclSpec struct {
	Ty  Ty
	Pos token.Pos
}

// PointerDecl records a single leading '*' in a declarator, per spec.md §3's
// Declarator (parsed but, since the language has no pointer arithmetic beyond
// a single level of indirection through '&'/'*' expressions, carried only for
// grammar fidelity).
type PointerDecl struct {
	Star token.Pos
}

// DirectDeclarator is the identifier part of a Declarator.
type DirectDeclarator struct {
	Name string
	Pos  token.Pos
}

// Declarator is one name introduced by a Decl statement.
type Declarator struct {
	Ptr    *PointerDecl
	Direct DirectDeclarator
	Id     NodeId
}

// VarDecl is one "name (= init)?" clause of a Decl statement.
type VarDecl struct {
	Declarator Declarator
	Init       Expr // nil if no initializer
}

type (
	// BlockStmt is a brace-delimited sequence of statements.
	BlockStmt struct {
		Id        NodeId
		Start, End token.Pos
		Stmts     []Stmt
	}

	// ExprStmt is an expression evaluated for its side effects, with its value
	// discarded.
	ExprStmt struct {
		Id   NodeId
		Expr Expr
	}

	// ReturnStmt returns the value of Expr from the enclosing function.
	ReturnStmt struct {
		Id       NodeId
		Kw       token.Pos
		Expr     Expr
		Semi     token.Pos
	}

	// IfStmt is an if/else statement. Else is nil when there is no else clause.
	IfStmt struct {
		Id         NodeId
		Kw         token.Pos
		Cond       Expr
		Then       Stmt
		Else       Stmt // nil if absent
	}

	// WhileStmt is a while loop.
	WhileStmt struct {
		Id   NodeId
		Kw   token.Pos
		Cond Expr
		Body Stmt
	}

	// ForStmt is a three-clause for loop; Init, Cond and Incr are nil when the
	// corresponding clause is absent.
	ForStmt struct {
		Id   NodeId
		Kw   token.Pos
		Init Expr
		Cond Expr
		Incr Expr
		Body Stmt
	}

	// DeclStmt is an "int x = 1, y;"-style local declaration.
	DeclStmt struct {
		Id    NodeId
		Spec  DeclSpec
		Decls []VarDecl
		Semi  token.Pos
	}

	// NullStmt is a bare ';' with no effect.
	NullStmt struct {
		Id  NodeId
		Pos token.Pos
	}
)

func (n *BlockStmt) ID() NodeId { return n.Id }
func (n *ExprStmt) ID() NodeId  { return n.Id }
func (n *ReturnStmt) ID() NodeId { return n.Id }
func (n *IfStmt) ID() NodeId    { return n.Id }
func (n *WhileStmt) ID() NodeId { return n.Id }
func (n *ForStmt) ID() NodeId   { return n.Id }
func (n *DeclStmt) ID() NodeId  { return n.Id }
func (n *NullStmt) ID() NodeId  { return n.Id }

func (*BlockStmt) stmt()  {}
func (*ExprStmt) stmt()   {}
func (*ReturnStmt) stmt() {}
func (*IfStmt) stmt()     {}
func (*WhileStmt) stmt()  {}
func (*ForStmt) stmt()    {}
func (*DeclStmt) stmt()   {}
func (*NullStmt) stmt()   {}

func (n *BlockStmt) Span() (start, end token.Pos) { return n.Start, n.End }
func (n *BlockStmt) Walk(v Visitor) {
	for _, s := range n.Stmts {
		Walk(v, s)
	}
}

func (n *ExprStmt) Span() (start, end token.Pos) { return n.Expr.Span() }
func (n *ExprStmt) Walk(v Visitor)               { Walk(v, n.Expr) }

func (n *ReturnStmt) Span() (start, end token.Pos) { return n.Kw, n.Semi }
func (n *ReturnStmt) Walk(v Visitor) {
	if n.Expr != nil {
		Walk(v, n.Expr)
	}
}

func (n *IfStmt) Span() (start, end token.Pos) {
	_, thenEnd := n.Then.Span()
	if n.Else != nil {
		_, thenEnd = n.Else.Span()
	}
	return n.Kw, thenEnd
}
func (n *IfStmt) Walk(v Visitor) {
	Walk(v, n.Cond)
	Walk(v, n.Then)
	if n.Else != nil {
		Walk(v, n.Else)
	}
}

func (n *WhileStmt) Span() (start, end token.Pos) {
	_, end = n.Body.Span()
	return n.Kw, end
}
func (n *WhileStmt) Walk(v Visitor) {
	Walk(v, n.Cond)
	Walk(v, n.Body)
}

func (n *ForStmt) Span() (start, end token.Pos) {
	_, end = n.Body.Span()
	return n.Kw, end
}
func (n *ForStmt) Walk(v Visitor) {
	if n.Init != nil {
		Walk(v, n.Init)
	}
	if n.Cond != nil {
		Walk(v, n.Cond)
	}
	if n.Incr != nil {
		Walk(v, n.Incr)
	}
	Walk(v, n.Body)
}

func (n *DeclStmt) Span() (start, end token.Pos) { return n.Spec.Pos, n.Semi }
func (n *DeclStmt) Walk(v Visitor) {
	for _, d := range n.Decls {
		if d.Init != nil {
			Walk(v, d.Init)
		}
	}
}

func (n *NullStmt) Span() (start, end token.Pos) { return n.Pos, n.Pos }
func (n *NullStmt) Walk(_ Visitor)               {}
