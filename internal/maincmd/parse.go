package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"
	"github.com/mna/mincc/lang/ast"
	"github.com/mna/mincc/lang/parser"
)

func (c *Cmd) Parse(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return ParseFiles(ctx, stdio, args...)
}

// ParseFiles runs the tokenizer and parser over each named file and prints
// the resulting AST.
func ParseFiles(ctx context.Context, stdio mainer.Stdio, files ...string) error {
	var failed error
	for _, name := range files {
		f, crate, errs := parser.ParseFile(ctx, name)
		if errs.Len() > 0 {
			errs.PrintTo(stdio.Stderr)
			failed = errs
			continue
		}
		p := ast.Printer{Output: stdio.Stdout, File: f}
		if err := p.Print(crate); err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			return err
		}
	}
	return failed
}
