// Package resolver walks a parsed AST and binds every identifier use to a
// stable ObjId, building the per-function parameter/local lists the frame
// layout and code generator need (spec.md §4.E).
package resolver

import (
	"github.com/mna/mincc/lang/ast"
	"github.com/mna/mincc/lang/diag"
	"github.com/mna/mincc/lang/token"
)

// Resolve walks crate and returns a ResolvedCrate plus any diagnostics.
// Per spec.md §7, resolve errors are intended to be fatal for the caller:
// an *ast.Crate with parse errors should never reach Resolve, and a
// ResolvedCrate returned alongside a non-empty diagnostic list should not
// be passed on to the code generator.
func Resolve(file *token.File, crate *ast.Crate) (*ResolvedCrate, *diag.List) {
	r := &resolver{
		file: file,
		errs: &diag.List{File: file},
		rc: &ResolvedCrate{
			ExprResolutions: NewNodeObjMap(64),
			FnInfos:         make(map[string]*FnInfo, len(crate.Fns)),
		},
	}
	r.global = newScope(nil)
	r.declareFns(crate)
	for _, fn := range crate.Fns {
		r.resolveFn(fn)
	}
	r.errs.Sort()
	return r.rc, r.errs
}

type resolver struct {
	file *token.File
	errs *diag.List
	rc   *ResolvedCrate

	global *scope
	cur    *scope

	// curFn is the FnInfo of the function currently being walked, used to
	// append Locals as Decl statements are encountered.
	curFn *FnInfo
}

func (r *resolver) newObj(name string, kind ObjKind) ObjId {
	id := ObjId(len(r.rc.Objs))
	r.rc.Objs = append(r.rc.Objs, Obj{Id: id, Name: name, Kind: kind})
	return id
}

func (r *resolver) errorf(pos token.Pos, format string, args ...interface{}) {
	r.errs.Add(diag.UnresolvedName, token.Span{Pos: pos, Len: 1}, format, args...)
}

// declareFns pre-declares every function name in the global scope before
// resolving any body, so forward calls resolve regardless of source order
// (DESIGN.md's Open Question decision).
func (r *resolver) declareFns(crate *ast.Crate) {
	for _, fn := range crate.Fns {
		id := r.newObj(fn.Name, Func)
		if !r.global.declare(fn.Name, id) {
			r.errs.Add(diag.Redeclared, token.Span{Pos: fn.NamePos, Len: int32(len(fn.Name))},
				"function %q redeclared", fn.Name)
			continue
		}
		r.rc.FnInfos[fn.Name] = &FnInfo{FnId: id}
	}
}

func (r *resolver) resolveFn(fn *ast.Fn) {
	info := r.rc.FnInfos[fn.Name]
	if info == nil {
		// fn.Name collided with an earlier function and was not registered;
		// nothing to attach params/locals to.
		return
	}
	r.curFn = info

	r.cur = newScope(r.global)
	for i := range fn.Params {
		p := &fn.Params[i]
		id := r.newObj(p.Name, Param)
		if !r.cur.declare(p.Name, id) {
			r.errs.Add(diag.Redeclared, token.Span{Pos: p.Pos, Len: int32(len(p.Name))},
				"parameter %q redeclared", p.Name)
			continue
		}
		info.Params = append(info.Params, id)
	}

	r.resolveBlock(fn.Body)
	r.cur = nil
	r.curFn = nil
}

func (r *resolver) resolveBlock(b *ast.BlockStmt) {
	r.cur = newScope(r.cur)
	for _, s := range b.Stmts {
		r.resolveStmt(s)
	}
	r.cur = r.cur.parent
}

func (r *resolver) resolveStmt(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.BlockStmt:
		r.resolveBlock(s)

	case *ast.ExprStmt:
		r.resolveExpr(s.Expr)

	case *ast.ReturnStmt:
		if s.Expr != nil {
			r.resolveExpr(s.Expr)
		}

	case *ast.IfStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}

	case *ast.WhileStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Body)

	case *ast.ForStmt:
		if s.Init != nil {
			r.resolveExpr(s.Init)
		}
		if s.Cond != nil {
			r.resolveExpr(s.Cond)
		}
		if s.Incr != nil {
			r.resolveExpr(s.Incr)
		}
		r.resolveStmt(s.Body)

	case *ast.DeclStmt:
		for i := range s.Decls {
			r.resolveVarDecl(&s.Decls[i])
		}

	case *ast.NullStmt:
		// nothing to resolve

	default:
		panic("resolver: unknown Stmt type")
	}
}

func (r *resolver) resolveVarDecl(d *ast.VarDecl) {
	name := d.Declarator.Direct.Name
	id := r.newObj(name, Local)
	// Recorded regardless of the redeclaration check below so the code
	// generator can always find this declarator's slot; a redeclaration
	// error aborts compilation before codegen ever sees the tree (spec.md
	// §7's "resolve errors abort compilation").
	r.rc.ExprResolutions.Set(d.Declarator.Id, id)
	if !r.cur.declare(name, id) {
		r.errs.Add(diag.Redeclared, token.Span{Pos: d.Declarator.Direct.Pos, Len: int32(len(name))},
			"%q redeclared in this scope", name)
	} else {
		r.curFn.Locals = append(r.curFn.Locals, id)
	}
	if d.Init != nil {
		r.resolveExpr(d.Init)
	}
}

func (r *resolver) resolveExpr(e ast.Expr) {
	switch e := e.(type) {
	case *ast.LiteralExpr, *ast.ErrorExpr:
		// nothing to resolve

	case *ast.VarExpr:
		r.resolveVar(e)

	case *ast.FnCallExpr:
		r.resolveCallee(e)
		for _, a := range e.Args {
			r.resolveExpr(a)
		}

	case *ast.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.UnaryExpr:
		r.resolveExpr(e.Operand)

	case *ast.AssignExpr:
		r.resolveAssignTarget(e.Target)
		r.resolveExpr(e.Value)

	default:
		panic("resolver: unknown Expr type")
	}
}

// resolveVar resolves a Var used as a plain rvalue: it must already be
// bound (spec.md §4.E: "fail with UnresolvedName if absent").
func (r *resolver) resolveVar(e *ast.VarExpr) {
	if id, ok := r.cur.lookup(e.Name); ok {
		r.rc.ExprResolutions.Set(e.Id, id)
		return
	}
	r.errorf(e.Pos, "undefined name %q", e.Name)
}

// resolveCallee resolves a FnCall's callee name against the global scope
// (the only scope function names live in).
func (r *resolver) resolveCallee(call *ast.FnCallExpr) {
	name := call.Callee.Name
	if id, ok := r.global.lookup(name); ok {
		r.rc.ExprResolutions.Set(call.Callee.Id, id)
		return
	}
	r.errorf(call.Callee.Pos, "call to undefined function %q", name)
}

// resolveAssignTarget resolves the left-hand side of an AssignExpr. A bare
// unbound Var implicitly declares a new Local in the current scope,
// matching the lenient behavior spec.md §8's tests assume (DESIGN.md's
// Open Question decision). A Unary(Deref, _) target resolves its operand
// as an ordinary expression, since the pointer it dereferences must already
// be bound. Any other target shape is not an lvalue; spec.md §4.D/§7 assign
// that check to codegen, not the resolver, so it is resolved like any other
// expression here and left for the code generator to reject.
func (r *resolver) resolveAssignTarget(target ast.Expr) {
	switch t := target.(type) {
	case *ast.VarExpr:
		if id, ok := r.cur.lookup(t.Name); ok {
			r.rc.ExprResolutions.Set(t.Id, id)
			return
		}
		id := r.newObj(t.Name, Local)
		r.cur.declare(t.Name, id)
		r.curFn.Locals = append(r.curFn.Locals, id)
		r.rc.ExprResolutions.Set(t.Id, id)

	default:
		r.resolveExpr(t)
	}
}
