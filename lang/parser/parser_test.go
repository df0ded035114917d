package parser_test

import (
	"testing"

	"github.com/mna/mincc/lang/ast"
	"github.com/mna/mincc/lang/diag"
	"github.com/mna/mincc/lang/parser"
	"github.com/mna/mincc/lang/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) (*ast.Crate, *diag.List) {
	t.Helper()
	f := token.NewFile("t.c", []byte(src))
	return parser.ParseSource(f, []byte(src))
}

func TestParseMinimalFn(t *testing.T) {
	crate, errs := parse(t, "main(){return 0;}")
	require.Zero(t, errs.Len())
	require.Len(t, crate.Fns, 1)

	fn := crate.Fns[0]
	assert.Equal(t, "main", fn.Name)
	assert.Empty(t, fn.Params)
	require.Len(t, fn.Body.Stmts, 1)

	ret, ok := fn.Body.Stmts[0].(*ast.ReturnStmt)
	require.True(t, ok)
	lit, ok := ret.Expr.(*ast.LiteralExpr)
	require.True(t, ok)
	assert.EqualValues(t, 0, lit.Value)
}

func TestParseParams(t *testing.T) {
	crate, errs := parse(t, "fma(a,b,c){return a*b+c;}")
	require.Zero(t, errs.Len())
	fn := crate.Fns[0]
	require.Len(t, fn.Params, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{fn.Params[0].Name, fn.Params[1].Name, fn.Params[2].Name})
}

func TestParsePrecedenceAndAssociativity(t *testing.T) {
	crate, errs := parse(t, "main(){return 5+6*7;}")
	require.Zero(t, errs.Len())
	ret := crate.Fns[0].Body.Stmts[0].(*ast.ReturnStmt)
	add, ok := ret.Expr.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.BinAdd, add.Op)
	_, leftIsLit := add.Left.(*ast.LiteralExpr)
	assert.True(t, leftIsLit)
	mul, ok := add.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.BinMul, mul.Op)
}

func TestParseAssignRightAssociative(t *testing.T) {
	crate, errs := parse(t, "main(){x=y=3; return x;}")
	require.Zero(t, errs.Len())
	stmt := crate.Fns[0].Body.Stmts[0].(*ast.ExprStmt)
	outer, ok := stmt.Expr.(*ast.AssignExpr)
	require.True(t, ok)
	_, targetIsVar := outer.Target.(*ast.VarExpr)
	assert.True(t, targetIsVar)
	inner, ok := outer.Value.(*ast.AssignExpr)
	require.True(t, ok)
	lit, ok := inner.Value.(*ast.LiteralExpr)
	require.True(t, ok)
	assert.EqualValues(t, 3, lit.Value)
}

func TestParseIfElse(t *testing.T) {
	crate, errs := parse(t, "main(){if(1){return 1;}else{return 2;}}")
	require.Zero(t, errs.Len())
	ifStmt := crate.Fns[0].Body.Stmts[0].(*ast.IfStmt)
	assert.NotNil(t, ifStmt.Then)
	assert.NotNil(t, ifStmt.Else)
}

func TestParseFor(t *testing.T) {
	crate, errs := parse(t, "main(){i=0; s=0; for(i=1; i<=10; i=i+1) s=s+i; return s;}")
	require.Zero(t, errs.Len())
	fn := crate.Fns[0]
	require.Len(t, fn.Body.Stmts, 4)
	forStmt, ok := fn.Body.Stmts[2].(*ast.ForStmt)
	require.True(t, ok)
	assert.NotNil(t, forStmt.Init)
	assert.NotNil(t, forStmt.Cond)
	assert.NotNil(t, forStmt.Incr)
}

func TestParseDeclWithMultipleDeclarators(t *testing.T) {
	crate, errs := parse(t, "main(){int x=1, y; return x;}")
	require.Zero(t, errs.Len())
	decl, ok := crate.Fns[0].Body.Stmts[0].(*ast.DeclStmt)
	require.True(t, ok)
	require.Len(t, decl.Decls, 2)
	assert.Equal(t, "x", decl.Decls[0].Declarator.Direct.Name)
	assert.NotNil(t, decl.Decls[0].Init)
	assert.Equal(t, "y", decl.Decls[1].Declarator.Direct.Name)
	assert.Nil(t, decl.Decls[1].Init)
}

func TestParseUnaryOperators(t *testing.T) {
	crate, errs := parse(t, "main(){x=3; y=&x; z=*y; return -z;}")
	require.Zero(t, errs.Len())
	fn := crate.Fns[0]
	require.Len(t, fn.Body.Stmts, 4)

	addr := fn.Body.Stmts[1].(*ast.ExprStmt).Expr.(*ast.AssignExpr)
	un, ok := addr.Value.(*ast.UnaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.UnAddr, un.Op)

	neg := fn.Body.Stmts[3].(*ast.ReturnStmt).Expr.(*ast.UnaryExpr)
	assert.Equal(t, ast.UnNeg, neg.Op)
}

func TestParseMalformedPrimaryRecordsWrongType(t *testing.T) {
	_, errs := parse(t, "main(){return +;}")
	require.Equal(t, 1, errs.Len())
	assert.Equal(t, diag.WrongType, errs.Diags[0].Kind)
}

func TestParseMissingSemiRecoversToNextStmt(t *testing.T) {
	crate, errs := parse(t, "main(){return 1 return 2;}")
	require.NotZero(t, errs.Len())
	assert.Equal(t, diag.ExpectedToken, errs.Diags[0].Kind)
	// the parser should still find the second statement after recovering.
	require.NotEmpty(t, crate.Fns)
	stmts := crate.Fns[0].Body.Stmts
	require.Len(t, stmts, 2)
	assert.IsType(t, &ast.ReturnStmt{}, stmts[1])
}

func TestParseFnCall(t *testing.T) {
	crate, errs := parse(t, "main(){return fma(5,6,2);}")
	require.Zero(t, errs.Len())
	ret := crate.Fns[0].Body.Stmts[0].(*ast.ReturnStmt)
	call, ok := ret.Expr.(*ast.FnCallExpr)
	require.True(t, ok)
	assert.Equal(t, "fma", call.Callee.Name)
	assert.Len(t, call.Args, 3)
}

func TestParseEachNodeHasDistinctID(t *testing.T) {
	crate, errs := parse(t, "main(){return 5+6*7;}")
	require.Zero(t, errs.Len())

	seen := map[ast.NodeId]bool{}
	type idNode interface{ ID() ast.NodeId }
	var visit ast.VisitorFunc
	visit = func(n ast.Node, dir ast.VisitDirection) ast.Visitor {
		if dir != ast.VisitEnter {
			return nil
		}
		if in, ok := n.(idNode); ok {
			id := in.ID()
			assert.False(t, seen[id], "duplicate NodeId %d", id)
			seen[id] = true
		}
		return visit
	}
	ast.Walk(visit, crate.Fns[0].Body)
}
