package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"
	"github.com/mna/mincc/lang/ast"
	"github.com/mna/mincc/lang/parser"
	"github.com/mna/mincc/lang/resolver"
)

func (c *Cmd) Resolve(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return ResolveFiles(ctx, stdio, args...)
}

// ResolveFiles runs the tokenizer, parser and name resolver over each named
// file, prints the AST, then a one-line-per-function summary of its
// resolved parameters and locals.
func ResolveFiles(ctx context.Context, stdio mainer.Stdio, files ...string) error {
	var failed error
	for _, name := range files {
		f, crate, perrs := parser.ParseFile(ctx, name)
		if perrs.Len() > 0 {
			perrs.PrintTo(stdio.Stderr)
			failed = perrs
			continue
		}

		rc, rerrs := resolver.Resolve(f, crate)

		p := ast.Printer{Output: stdio.Stdout, File: f}
		if err := p.Print(crate); err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			return err
		}

		if rerrs.Len() > 0 {
			rerrs.PrintTo(stdio.Stderr)
			failed = rerrs
			continue
		}

		for _, fn := range crate.Fns {
			info := rc.FnInfos[fn.Name]
			if info == nil {
				continue
			}
			fmt.Fprintf(stdio.Stdout, "fn %s: %d param(s), %d local(s)\n",
				fn.Name, len(info.Params), len(info.Locals))
		}
	}
	return failed
}
