package codegen

import (
	"fmt"

	"github.com/mna/mincc/lang/ast"
	"github.com/mna/mincc/lang/frame"
	"github.com/mna/mincc/lang/resolver"
)

// genExpr evaluates e, leaving its value in rax.
func (g *codeGen) genExpr(e ast.Expr, info *resolver.FnInfo, layout *frame.Layout) error {
	switch e := e.(type) {
	case *ast.LiteralExpr:
		return g.emit("  mov rax, %d\n", e.Value)

	case *ast.VarExpr:
		if err := g.genVar(e, info, layout); err != nil {
			return err
		}
		return g.emit("  mov rax, [rax]\n")

	case *ast.BinaryExpr:
		return g.genBinary(e, info, layout)

	case *ast.UnaryExpr:
		return g.genUnary(e, info, layout)

	case *ast.AssignExpr:
		return g.genAssign(e, info, layout)

	case *ast.FnCallExpr:
		return g.genCall(e, info, layout)

	case *ast.ErrorExpr:
		// A well-formed resolved AST never contains one: parse errors abort
		// compilation before resolve or codegen run (spec.md §7). Emitting
		// nothing is harmless if one slips through regardless.
		return nil

	default:
		panic(fmt.Sprintf("codegen: unknown Expr type %T", e))
	}
}

// genVar computes the address of the lvalue e into rax. Per spec.md §4.H,
// the only two shapes this is ever called on are a bare Var (look up its
// frame slot) and a pointer dereference Unary(Deref, inner) (the value of
// inner already is the address); anything else reaching here is the
// "non-lvalue on the left of '=' or as operand of '&'" invariant violation
// spec.md §7 calls out.
func (g *codeGen) genVar(e ast.Expr, info *resolver.FnInfo, layout *frame.Layout) error {
	switch e := e.(type) {
	case *ast.VarExpr:
		offset := g.slotOf(layout, g.objOf(e.Id))
		return g.emit("  lea rax, [rbp - %d]\n", offset)

	case *ast.UnaryExpr:
		if e.Op == ast.UnDeref {
			return g.genExpr(e.Operand, info, layout)
		}
		panic(fmt.Sprintf("codegen: invalid lvalue: unary %s is not an lvalue", e.Op))

	default:
		panic(fmt.Sprintf("codegen: invalid lvalue: %T is not an lvalue", e))
	}
}

func (g *codeGen) genBinary(e *ast.BinaryExpr, info *resolver.FnInfo, layout *frame.Layout) error {
	if err := g.genExpr(e.Right, info, layout); err != nil {
		return err
	}
	if err := g.push(rax); err != nil {
		return err
	}
	if err := g.genExpr(e.Left, info, layout); err != nil {
		return err
	}
	if err := g.pop(rdi); err != nil {
		return err
	}

	switch e.Op {
	case ast.BinAdd:
		return g.emit("  add rax, rdi\n")
	case ast.BinSub:
		return g.emit("  sub rax, rdi\n")
	case ast.BinMul:
		return g.emit("  imul rax, rdi\n")
	case ast.BinDiv:
		if err := g.emit("  cqo\n"); err != nil {
			return err
		}
		return g.emit("  idiv rdi\n")
	case ast.BinEq, ast.BinNeq, ast.BinLt, ast.BinLe, ast.BinGt, ast.BinGe:
		if err := g.emit("  cmp rax, rdi\n"); err != nil {
			return err
		}
		if err := g.emit("  set%s al\n", setCC(e.Op)); err != nil {
			return err
		}
		return g.emit("  movzx rax, al\n")
	default:
		panic(fmt.Sprintf("codegen: unknown BinOp %s", e.Op))
	}
}

// setCC returns the condition-code suffix for SETcc, for a comparison
// BinOp.
func setCC(op ast.BinOp) string {
	switch op {
	case ast.BinEq:
		return "e"
	case ast.BinNeq:
		return "ne"
	case ast.BinLt:
		return "l"
	case ast.BinLe:
		return "le"
	case ast.BinGt:
		return "g"
	case ast.BinGe:
		return "ge"
	default:
		panic(fmt.Sprintf("codegen: %s is not a comparison", op))
	}
}

func (g *codeGen) genUnary(e *ast.UnaryExpr, info *resolver.FnInfo, layout *frame.Layout) error {
	switch e.Op {
	case ast.UnPos:
		// No-op: the operand's value is already the result.
		return g.genExpr(e.Operand, info, layout)

	case ast.UnNeg:
		if err := g.genExpr(e.Operand, info, layout); err != nil {
			return err
		}
		return g.emit("  neg rax\n")

	case ast.UnAddr:
		return g.genVar(e.Operand, info, layout)

	case ast.UnDeref:
		if err := g.genExpr(e.Operand, info, layout); err != nil {
			return err
		}
		return g.emit("  mov rax, [rax]\n")

	default:
		panic(fmt.Sprintf("codegen: unknown UnOp %s", e.Op))
	}
}

func (g *codeGen) genAssign(e *ast.AssignExpr, info *resolver.FnInfo, layout *frame.Layout) error {
	if err := g.genVar(e.Target, info, layout); err != nil {
		return err
	}
	if err := g.push(rax); err != nil {
		return err
	}
	if err := g.genExpr(e.Value, info, layout); err != nil {
		return err
	}
	if err := g.pop(rdi); err != nil {
		return err
	}
	return g.emit("  mov [rdi], rax\n")
}

// genCall evaluates arguments right-to-left (so arg 0 ends up on top of the
// CPU stack), pops the first min(nargs, |arg_regs|) into the ABI's argument
// registers, reserves shadow space if the ABI requires it, emits the call,
// then restores rsp by whatever it grew by (spec.md §4.H).
func (g *codeGen) genCall(e *ast.FnCallExpr, info *resolver.FnInfo, layout *frame.Layout) error {
	for i := len(e.Args) - 1; i >= 0; i-- {
		if err := g.genExpr(e.Args[i], info, layout); err != nil {
			return err
		}
		if err := g.push(rax); err != nil {
			return err
		}
	}

	regs := g.abi.IntArgRegs()
	nreg := len(e.Args)
	if len(regs) < nreg {
		nreg = len(regs)
	}
	for i := 0; i < nreg; i++ {
		if err := g.pop(regs[i]); err != nil {
			return err
		}
	}

	shadow := g.abi.ShadowSpaceSize()
	if shadow > 0 {
		if err := g.emit("  sub rsp, %d\n", shadow); err != nil {
			return err
		}
	}
	if err := g.emit("  call %s\n", e.Callee.Name); err != nil {
		return err
	}
	collect := shadow + uint32(len(e.Args)-nreg)*8
	if collect > 0 {
		if err := g.emit("  add rsp, %d\n", collect); err != nil {
			return err
		}
	}
	return nil
}
