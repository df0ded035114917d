package codegen

import (
	"fmt"

	"github.com/mna/mincc/lang/ast"
	"github.com/mna/mincc/lang/frame"
	"github.com/mna/mincc/lang/resolver"
)

func (g *codeGen) genStmt(s ast.Stmt, ctx *fnContext, info *resolver.FnInfo, layout *frame.Layout) error {
	switch s := s.(type) {
	case *ast.BlockStmt:
		for _, inner := range s.Stmts {
			if err := g.genStmt(inner, ctx, info, layout); err != nil {
				return err
			}
		}
		return nil

	case *ast.ExprStmt:
		return g.genExpr(s.Expr, info, layout)

	case *ast.ReturnStmt:
		if s.Expr != nil {
			if err := g.genExpr(s.Expr, info, layout); err != nil {
				return err
			}
		}
		return g.emit("  jmp .L.%d.return\n", ctx.fnID)

	case *ast.IfStmt:
		return g.genIf(s, ctx, info, layout)

	case *ast.WhileStmt:
		return g.genWhile(s, ctx, info, layout)

	case *ast.ForStmt:
		return g.genFor(s, ctx, info, layout)

	case *ast.DeclStmt:
		return g.genDecl(s, info, layout)

	case *ast.NullStmt:
		return nil

	default:
		panic(fmt.Sprintf("codegen: unknown Stmt type %T", s))
	}
}

func (g *codeGen) genIf(s *ast.IfStmt, ctx *fnContext, info *resolver.FnInfo, layout *frame.Layout) error {
	if err := g.genExpr(s.Cond, info, layout); err != nil {
		return err
	}
	n := ctx.next()
	if err := g.emit("  cmp rax, 0\n"); err != nil {
		return err
	}
	if err := g.emit("  je .L.%d.else.%d\n", ctx.fnID, n); err != nil {
		return err
	}
	if err := g.genStmt(s.Then, ctx, info, layout); err != nil {
		return err
	}
	if err := g.emit("  jmp .L.%d.end.%d\n", ctx.fnID, n); err != nil {
		return err
	}
	if err := g.emit(".L.%d.else.%d:\n", ctx.fnID, n); err != nil {
		return err
	}
	if s.Else != nil {
		if err := g.genStmt(s.Else, ctx, info, layout); err != nil {
			return err
		}
	}
	return g.emit(".L.%d.end.%d:\n", ctx.fnID, n)
}

func (g *codeGen) genWhile(s *ast.WhileStmt, ctx *fnContext, info *resolver.FnInfo, layout *frame.Layout) error {
	n := ctx.next()
	if err := g.emit(".L.%d.begin.%d:\n", ctx.fnID, n); err != nil {
		return err
	}
	if err := g.genExpr(s.Cond, info, layout); err != nil {
		return err
	}
	if err := g.emit("  cmp rax, 0\n"); err != nil {
		return err
	}
	if err := g.emit("  je .L.%d.end.%d\n", ctx.fnID, n); err != nil {
		return err
	}
	if err := g.genStmt(s.Body, ctx, info, layout); err != nil {
		return err
	}
	if err := g.emit("  jmp .L.%d.begin.%d\n", ctx.fnID, n); err != nil {
		return err
	}
	return g.emit(".L.%d.end.%d:\n", ctx.fnID, n)
}

func (g *codeGen) genFor(s *ast.ForStmt, ctx *fnContext, info *resolver.FnInfo, layout *frame.Layout) error {
	n := ctx.next()
	if s.Init != nil {
		if err := g.genExpr(s.Init, info, layout); err != nil {
			return err
		}
	}
	if err := g.emit(".L.%d.begin.%d:\n", ctx.fnID, n); err != nil {
		return err
	}
	if s.Cond != nil {
		if err := g.genExpr(s.Cond, info, layout); err != nil {
			return err
		}
		if err := g.emit("  cmp rax, 0\n"); err != nil {
			return err
		}
		if err := g.emit("  je .L.%d.end.%d\n", ctx.fnID, n); err != nil {
			return err
		}
	}
	if err := g.genStmt(s.Body, ctx, info, layout); err != nil {
		return err
	}
	if s.Incr != nil {
		if err := g.genExpr(s.Incr, info, layout); err != nil {
			return err
		}
	}
	if err := g.emit("  jmp .L.%d.begin.%d\n", ctx.fnID, n); err != nil {
		return err
	}
	return g.emit(".L.%d.end.%d:\n", ctx.fnID, n)
}

// genDecl lowers each initialized declarator as if the source had instead
// written "name = init;" (spec.md §4.H): compute the slot's address, push
// it, evaluate the initializer, then store. Declarators with no initializer
// emit nothing - the slot's contents are simply left undefined, as for any
// other uninitialized local.
func (g *codeGen) genDecl(s *ast.DeclStmt, info *resolver.FnInfo, layout *frame.Layout) error {
	for i := range s.Decls {
		d := &s.Decls[i]
		if d.Init == nil {
			continue
		}
		offset := g.slotOf(layout, g.objOf(d.Declarator.Id))
		if err := g.emit("  lea rax, [rbp - %d]\n", offset); err != nil {
			return err
		}
		if err := g.push(rax); err != nil {
			return err
		}
		if err := g.genExpr(d.Init, info, layout); err != nil {
			return err
		}
		if err := g.pop(rdi); err != nil {
			return err
		}
		if err := g.emit("  mov [rdi], rax\n"); err != nil {
			return err
		}
	}
	return nil
}
