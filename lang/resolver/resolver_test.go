package resolver_test

import (
	"testing"

	"github.com/mna/mincc/lang/ast"
	"github.com/mna/mincc/lang/diag"
	"github.com/mna/mincc/lang/parser"
	"github.com/mna/mincc/lang/resolver"
	"github.com/mna/mincc/lang/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolve(t *testing.T, src string) (*ast.Crate, *resolver.ResolvedCrate, *diag.List) {
	t.Helper()
	f := token.NewFile("t.c", []byte(src))
	crate, perrs := parser.ParseSource(f, []byte(src))
	require.Zero(t, perrs.Len())
	rc, rerrs := resolver.Resolve(f, crate)
	return crate, rc, rerrs
}

func TestResolveParamsAndLocals(t *testing.T) {
	_, rc, errs := resolve(t, "fma(a,b,c){int s=a*b+c; return s;}")
	require.Zero(t, errs.Len())

	info := rc.FnInfos["fma"]
	require.NotNil(t, info)
	require.Len(t, info.Params, 3)
	require.Len(t, info.Locals, 1)

	assert.Equal(t, resolver.Param, rc.Obj(info.Params[0]).Kind)
	assert.Equal(t, "a", rc.Obj(info.Params[0]).Name)
	assert.Equal(t, resolver.Local, rc.Obj(info.Locals[0]).Kind)
	assert.Equal(t, "s", rc.Obj(info.Locals[0]).Name)
}

func TestResolveForwardCall(t *testing.T) {
	_, rc, errs := resolve(t, "main(){return fma(5,6,2);} fma(a,b,c){return a*b+c;}")
	require.Zero(t, errs.Len())
	assert.Contains(t, rc.FnInfos, "main")
	assert.Contains(t, rc.FnInfos, "fma")
}

func TestResolveImplicitLocalDeclaration(t *testing.T) {
	_, rc, errs := resolve(t, "main(){x=3; return x;}")
	require.Zero(t, errs.Len())
	info := rc.FnInfos["main"]
	require.Len(t, info.Locals, 1)
	assert.Equal(t, "x", rc.Obj(info.Locals[0]).Name)
}

func TestResolveUnresolvedNameIsError(t *testing.T) {
	_, _, errs := resolve(t, "main(){return y;}")
	require.Equal(t, 1, errs.Len())
	assert.Equal(t, diag.UnresolvedName, errs.Diags[0].Kind)
}

func TestResolveUndefinedFunctionCallIsError(t *testing.T) {
	_, _, errs := resolve(t, "main(){return nope();}")
	require.Equal(t, 1, errs.Len())
	assert.Equal(t, diag.UnresolvedName, errs.Diags[0].Kind)
}

func TestResolveSameScopeRedeclarationIsError(t *testing.T) {
	_, _, errs := resolve(t, "main(){int x=1; int x=2; return x;}")
	require.Equal(t, 1, errs.Len())
	assert.Equal(t, diag.Redeclared, errs.Diags[0].Kind)
}

func TestResolveShadowingInNestedBlockIsAllowed(t *testing.T) {
	_, _, errs := resolve(t, "main(){int x=1; { int x=2; } return x;}")
	require.Zero(t, errs.Len())
}

func TestResolveVarExprRecordsResolution(t *testing.T) {
	crate, rc, errs := resolve(t, "main(){x=3; return x;}")
	require.Zero(t, errs.Len())

	ret := crate.Fns[0].Body.Stmts[1].(*ast.ReturnStmt)
	v := ret.Expr.(*ast.VarExpr)
	_, ok := rc.ExprResolutions.Get(v.Id)
	assert.True(t, ok)
}
