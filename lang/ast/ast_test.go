package ast_test

import (
	"strings"
	"testing"

	"github.com/mna/mincc/lang/ast"
	"github.com/mna/mincc/lang/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFnSpanAndString(t *testing.T) {
	fn := &ast.Fn{
		Name:     "main",
		NamePos:  0,
		StartPos: 0,
		EndPos:   10,
		Params: []ast.Param{
			{Name: "x", Ty: ast.TyInt, Pos: 5},
		},
		Body: &ast.BlockStmt{Start: 8, End: 10},
	}

	start, end := fn.Span()
	assert.Equal(t, token.Pos(0), start)
	assert.Equal(t, token.Pos(10), end)
	assert.Equal(t, "fn main/1", fn.String())
}

func TestIsAssignable(t *testing.T) {
	assert.True(t, ast.IsAssignable(&ast.VarExpr{Name: "x"}))
	assert.True(t, ast.IsAssignable(&ast.UnaryExpr{Op: ast.UnDeref, Operand: &ast.VarExpr{Name: "p"}}))
	assert.False(t, ast.IsAssignable(&ast.UnaryExpr{Op: ast.UnNeg, Operand: &ast.LiteralExpr{Value: 1}}))
	assert.False(t, ast.IsAssignable(&ast.LiteralExpr{Value: 1}))
}

func TestWalkVisitsChildren(t *testing.T) {
	crate := &ast.Crate{
		Fns: []*ast.Fn{
			{
				Name: "f",
				Body: &ast.BlockStmt{
					Stmts: []ast.Stmt{
						&ast.ReturnStmt{Expr: &ast.LiteralExpr{Value: 42}},
					},
				},
			},
		},
	}

	var kinds []string
	var visit ast.VisitorFunc
	visit = func(n ast.Node, dir ast.VisitDirection) ast.Visitor {
		if dir != ast.VisitEnter {
			return nil
		}
		switch n.(type) {
		case *ast.Crate:
			kinds = append(kinds, "Crate")
		case *ast.Fn:
			kinds = append(kinds, "Fn")
		case *ast.BlockStmt:
			kinds = append(kinds, "Block")
		case *ast.ReturnStmt:
			kinds = append(kinds, "Return")
		case *ast.LiteralExpr:
			kinds = append(kinds, "Literal")
		}
		return visit
	}
	ast.Walk(visit, crate)

	assert.Equal(t, []string{"Crate", "Fn", "Block", "Return", "Literal"}, kinds)
}

func TestPrinterOutput(t *testing.T) {
	crate := &ast.Crate{
		Fns: []*ast.Fn{
			{
				Name: "main",
				Body: &ast.BlockStmt{
					Stmts: []ast.Stmt{
						&ast.ReturnStmt{Expr: &ast.LiteralExpr{Value: 0}},
					},
				},
			},
		},
	}

	var buf strings.Builder
	p := &ast.Printer{Output: &buf}
	require.NoError(t, p.Print(crate))

	out := buf.String()
	assert.True(t, strings.Contains(out, "Crate (1 fns)"))
	assert.True(t, strings.Contains(out, "Fn main()"))
	assert.True(t, strings.Contains(out, "Return"))
	assert.True(t, strings.Contains(out, "Literal 0"))
}
