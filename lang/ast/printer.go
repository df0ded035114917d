package ast

import (
	"fmt"
	"io"
	"strings"

	"github.com/mna/mincc/lang/token"
)

// Printer controls pretty-printing of the AST, used by the parse and
// resolve CLI subcommands to dump the tree for inspection and for golden
// file tests.
type Printer struct {
	// Output is the io.Writer to print to.
	Output io.Writer

	// File is used to render line:column positions. If nil, positions are
	// printed as raw byte offsets.
	File *token.File
}

// Print pretty-prints the AST node n, one line per node, indented by
// nesting depth.
func (p *Printer) Print(n Node) error {
	pp := &printer{w: p.Output, file: p.File}
	Walk(pp, n)
	return pp.err
}

type printer struct {
	w     io.Writer
	file  *token.File
	depth int
	err   error
}

func (p *printer) Visit(n Node, dir VisitDirection) Visitor {
	if dir == VisitExit || p.err != nil {
		p.depth--
		return nil
	}

	p.printNode(n, p.depth)
	p.depth++
	return p
}

func (p *printer) printNode(n Node, indent int) {
	if p.err != nil {
		return
	}

	start, _ := n.Span()
	pos := p.formatPos(start)
	_, p.err = fmt.Fprintf(p.w, "%s[%s] %s\n", strings.Repeat(". ", indent), pos, describe(n))
}

func (p *printer) formatPos(pos token.Pos) string {
	if p.file == nil {
		return fmt.Sprintf("%d", pos)
	}
	position := p.file.Position(pos)
	return fmt.Sprintf("%d:%d", position.Line, position.Column)
}

// describe renders a single-line, node-specific summary, independent of the
// node's children (which Walk will print on subsequent lines).
func describe(n Node) string {
	switch n := n.(type) {
	case *Crate:
		return fmt.Sprintf("Crate (%d fns)", len(n.Fns))
	case *Fn:
		names := make([]string, len(n.Params))
		for i, p := range n.Params {
			names[i] = p.Name
		}
		return fmt.Sprintf("Fn %s(%s)", n.Name, strings.Join(names, ", "))
	case *BlockStmt:
		return fmt.Sprintf("Block (%d stmts)", len(n.Stmts))
	case *ExprStmt:
		return "ExprStmt"
	case *ReturnStmt:
		return "Return"
	case *IfStmt:
		if n.Else != nil {
			return "If/Else"
		}
		return "If"
	case *WhileStmt:
		return "While"
	case *ForStmt:
		return "For"
	case *DeclStmt:
		names := make([]string, len(n.Decls))
		for i, d := range n.Decls {
			names[i] = d.Declarator.Direct.Name
		}
		return fmt.Sprintf("Decl %s", strings.Join(names, ", "))
	case *NullStmt:
		return "NullStmt"
	case *LiteralExpr:
		return fmt.Sprintf("Literal %d", n.Value)
	case *VarExpr:
		return fmt.Sprintf("Var %s", n.Name)
	case *FnCallExpr:
		return fmt.Sprintf("Call (%d args)", len(n.Args))
	case *BinaryExpr:
		return fmt.Sprintf("Binary %s", n.Op)
	case *UnaryExpr:
		return fmt.Sprintf("Unary %s", n.Op)
	case *AssignExpr:
		return "Assign"
	case *ErrorExpr:
		return "ErrorExpr"
	default:
		return fmt.Sprintf("%T", n)
	}
}
