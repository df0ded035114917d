package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"
	"github.com/mna/mincc/lang/scanner"
)

func (c *Cmd) Tokenize(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return TokenizeFiles(ctx, stdio, args...)
}

// TokenizeFiles runs the scanner over each named file and prints its token
// stream, one token per line.
func TokenizeFiles(ctx context.Context, stdio mainer.Stdio, files ...string) error {
	tfiles, toksByFile, errs := scanner.ScanFiles(ctx, files...)
	for i, toks := range toksByFile {
		f := tfiles[i]
		for _, tok := range toks {
			pos := f.Position(tok.Span.Pos)
			fmt.Fprintf(stdio.Stdout, "%s:%d:%d: %s", pos.Filename, pos.Line, pos.Column, tok.Kind)
			if tok.Lit != "" {
				fmt.Fprintf(stdio.Stdout, " %s", tok.Lit)
			}
			fmt.Fprintln(stdio.Stdout)
		}
	}
	if errs.Len() > 0 {
		errs.PrintTo(stdio.Stderr)
		return errs
	}
	return nil
}
