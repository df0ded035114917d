// Package codegen lowers a resolved, frame-laid-out AST to textual x86-64
// assembly (GAS, Intel syntax), parameterized over an ABI. It is the final
// stage of the pipeline (spec.md §4.H), grounded on
// original_source/src/codegen/mod.rs's gen_expr/gen_var/gen_stmt/gen_fn.
//
// Codegen uses a stack discipline for expression evaluation: every
// expression leaves its value in rax; a binary operator's right operand is
// saved with "push rax" while the left is evaluated, then recovered with
// "pop rdi". There is no register allocator.
//
// Any shape codegen encounters that a well-formed resolved AST could never
// produce - a non-lvalue on the left of "=" or as the operand of "&", an
// unresolved Var, a missing frame slot - is an internal invariant
// violation (spec.md §7) and is reported by panicking; the caller is
// expected to recover it into a diag.InternalError diagnostic rather than
// let it crash the process.
package codegen

import (
	"fmt"
	"io"

	"github.com/mna/mincc/lang/abi"
	"github.com/mna/mincc/lang/ast"
	"github.com/mna/mincc/lang/frame"
	"github.com/mna/mincc/lang/resolver"
)

// Gen emits the full assembly listing for crate to w: the header, followed
// by every function in source order.
func Gen(w io.Writer, a abi.Abi, crate *ast.Crate, resolved *resolver.ResolvedCrate, layouts *frame.Layouts) error {
	g := &codeGen{w: w, abi: a, resolved: resolved, layouts: layouts}

	if err := g.emit(".intel_syntax noprefix\n"); err != nil {
		return err
	}
	if err := g.emit(".globl main\n"); err != nil {
		return err
	}
	for _, fn := range crate.Fns {
		if err := g.genFn(fn); err != nil {
			return err
		}
	}
	return nil
}

// Shorthand for the two scratch registers the stack-discipline lowering
// moves values through. rdi is also System V's first argument register, but
// genCall loads the argument registers only after every argument has been
// evaluated, so both are safe to clobber between gen_expr calls.
const (
	rax = abi.Rax
	rdi = abi.Rdi
)

type codeGen struct {
	w        io.Writer
	abi      abi.Abi
	resolved *resolver.ResolvedCrate
	layouts  *frame.Layouts
}

func (g *codeGen) emit(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(g.w, format, args...)
	return err
}

func (g *codeGen) push(r abi.Reg) error { return g.emit("  push %s\n", r.Asm()) }
func (g *codeGen) pop(r abi.Reg) error  { return g.emit("  pop %s\n", r.Asm()) }

// objOf returns the ObjId a resolved Var or FnCall-callee node refers to; it
// panics if the node has no resolution, which would mean codegen is running
// over an AST that never went through, or failed, resolution.
func (g *codeGen) objOf(id ast.NodeId) resolver.ObjId {
	objID, ok := g.resolved.ExprResolutions.Get(id)
	if !ok {
		panic(fmt.Sprintf("codegen: node %d has no resolution", id))
	}
	return objID
}

func (g *codeGen) slotOf(layout *frame.Layout, objID resolver.ObjId) uint32 {
	offset, ok := layout.Slot(objID)
	if !ok {
		panic(fmt.Sprintf("codegen: obj %d has no frame slot", objID))
	}
	return offset
}

// genFn emits one function's label, prologue, body and epilogue.
func (g *codeGen) genFn(fn *ast.Fn) error {
	info, ok := g.resolved.FnInfos[fn.Name]
	if !ok {
		panic(fmt.Sprintf("codegen: no FnInfo for function %q", fn.Name))
	}
	layout := g.layouts.Of(info.FnId)
	if layout == nil {
		panic(fmt.Sprintf("codegen: no frame layout for function %q", fn.Name))
	}
	ctx := &fnContext{fnID: info.FnId}

	if err := g.emit("%s:\n", fn.Name); err != nil {
		return err
	}
	if err := g.emit("  push rbp\n"); err != nil {
		return err
	}
	if err := g.emit("  mov rbp, rsp\n"); err != nil {
		return err
	}
	if err := g.emit("  sub rsp, %d\n", layout.FrameSize); err != nil {
		return err
	}

	if err := g.genParamSpills(info, layout); err != nil {
		return err
	}

	if err := g.genStmt(fn.Body, ctx, info, layout); err != nil {
		return err
	}

	if err := g.emit(".L.%d.return:\n", ctx.fnID); err != nil {
		return err
	}
	if err := g.emit("  mov rsp, rbp\n"); err != nil {
		return err
	}
	if err := g.emit("  pop rbp\n"); err != nil {
		return err
	}
	return g.emit("  ret\n")
}

// genParamSpills copies every incoming parameter into its frame slot: the
// first min(|params|, |arg_regs|) come from ABI registers, the rest from the
// caller's stack, relative to stack_param_base (spec.md §4.G/§4.H).
func (g *codeGen) genParamSpills(info *resolver.FnInfo, layout *frame.Layout) error {
	regs := g.abi.IntArgRegs()
	k := len(info.Params)
	if len(regs) < k {
		k = len(regs)
	}
	for i := 0; i < k; i++ {
		offset := g.slotOf(layout, info.Params[i])
		if err := g.emit("  mov [rbp - %d], %s\n", offset, regs[i].Asm()); err != nil {
			return err
		}
	}

	base := g.abi.StackParamBase()
	for i := k; i < len(info.Params); i++ {
		offset := g.slotOf(layout, info.Params[i])
		srcOffset := base + uint32(i-k)*8
		if err := g.emit("  mov rax, [rbp + %d]\n", srcOffset); err != nil {
			return err
		}
		if err := g.emit("  mov [rbp - %d], rax\n", offset); err != nil {
			return err
		}
	}
	return nil
}
