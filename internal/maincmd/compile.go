package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"
	"github.com/mna/mincc/lang/abi"
	"github.com/mna/mincc/lang/ast"
	"github.com/mna/mincc/lang/codegen"
	"github.com/mna/mincc/lang/diag"
	"github.com/mna/mincc/lang/frame"
	"github.com/mna/mincc/lang/parser"
	"github.com/mna/mincc/lang/resolver"
	"github.com/mna/mincc/lang/token"
)

func (c *Cmd) Compile(ctx context.Context, stdio mainer.Stdio, args []string) error {
	a, err := abi.ByName(c.ABI)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s\n", err)
		return err
	}
	return CompileFiles(ctx, stdio, a, c.EmitFrame, args...)
}

// CompileFiles runs the full pipeline (tokenize, parse, resolve, lay out
// frames, generate code) over each named file and writes the resulting
// assembly text to stdout. A resolver diagnostic aborts before code
// generation ever runs, per spec.md §7. A panic raised by codegen.Gen is an
// internal invariant violation (a well-formed resolved AST should never
// trigger one) and is reported as an InternalError diagnostic instead of
// crashing the process.
func CompileFiles(ctx context.Context, stdio mainer.Stdio, a abi.Abi, emitFrame bool, files ...string) error {
	var failed error
	for _, name := range files {
		if err := compileFile(ctx, stdio, a, emitFrame, name); err != nil {
			failed = err
		}
	}
	return failed
}

func compileFile(ctx context.Context, stdio mainer.Stdio, a abi.Abi, emitFrame bool, name string) (err error) {
	f, crate, perrs := parser.ParseFile(ctx, name)
	if perrs.Len() > 0 {
		perrs.PrintTo(stdio.Stderr)
		return perrs
	}

	rc, rerrs := resolver.Resolve(f, crate)
	if rerrs.Len() > 0 {
		rerrs.PrintTo(stdio.Stderr)
		return rerrs
	}

	layouts := frame.Build(rc)

	if emitFrame {
		printFrameInfo(stdio, crate, rc, layouts)
	}

	defer func() {
		if r := recover(); r != nil {
			diags := diag.List{File: f}
			diags.Add(diag.InternalError, token.Span{}, "%s: %v", name, r)
			diags.PrintTo(stdio.Stderr)
			err = &diags
		}
	}()

	if genErr := codegen.Gen(stdio.Stdout, a, crate, rc, layouts); genErr != nil {
		fmt.Fprintf(stdio.Stderr, "%s: %s\n", name, genErr)
		return genErr
	}
	return nil
}

// printFrameInfo prints each function's slot offsets and total frame size,
// for the --emit-frame debug flag.
func printFrameInfo(stdio mainer.Stdio, crate *ast.Crate, rc *resolver.ResolvedCrate, layouts *frame.Layouts) {
	for _, fn := range crate.Fns {
		info := rc.FnInfos[fn.Name]
		if info == nil {
			continue
		}
		layout := layouts.Of(info.FnId)
		fmt.Fprintf(stdio.Stdout, "; frame %s: size=%d\n", fn.Name, layout.FrameSize)
		for _, id := range info.Params {
			if off, ok := layout.Slot(id); ok {
				fmt.Fprintf(stdio.Stdout, ";   param %s: [rbp-%d]\n", rc.Obj(id).Name, off)
			}
		}
		for _, id := range info.Locals {
			if off, ok := layout.Slot(id); ok {
				fmt.Fprintf(stdio.Stdout, ";   local %s: [rbp-%d]\n", rc.Obj(id).Name, off)
			}
		}
	}
}
