//go:build e2eexec

// This file assembles, links and runs the assembly codegen emits through an
// external C toolchain, so it is gated behind the e2eexec build tag instead
// of running by default (spec.md §8's end-to-end scenarios need a real
// assembler/linker/OS on the machine running the test). Grounded on
// original_source/src/assembler.rs's compile_and_run, which shells out to
// clang and inspects the process exit code the same way.
package codegen_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mna/mincc/lang/abi"
	"github.com/mna/mincc/lang/codegen"
	"github.com/mna/mincc/lang/frame"
	"github.com/mna/mincc/lang/parser"
	"github.com/mna/mincc/lang/resolver"
	"github.com/mna/mincc/lang/token"
	"github.com/stretchr/testify/require"
)

// compileAndRun assembles src, links it into an executable with cc, runs
// it, and returns its exit code.
func compileAndRun(t *testing.T, src string) int {
	t.Helper()

	f := token.NewFile("e2e.c", []byte(src))
	crate, perrs := parser.ParseSource(f, []byte(src))
	require.Zero(t, perrs.Len())

	rc, rerrs := resolver.Resolve(f, crate)
	require.Zero(t, rerrs.Len())

	layouts := frame.Build(rc)

	dir := t.TempDir()
	asmPath := filepath.Join(dir, "out.s")
	asmFile, err := os.Create(asmPath)
	require.NoError(t, err)
	require.NoError(t, codegen.Gen(asmFile, abi.SysV{}, crate, rc, layouts))
	require.NoError(t, asmFile.Close())

	binPath := filepath.Join(dir, "out")
	cc := ccCommand(t)
	cmd := exec.Command(cc, "-o", binPath, asmPath)
	out, err := cmd.CombinedOutput()
	require.NoErrorf(t, err, "assemble/link failed: %s", out)

	runCmd := exec.Command(binPath)
	err = runCmd.Run()
	if err == nil {
		return 0
	}
	exitErr, ok := err.(*exec.ExitError)
	require.True(t, ok, "unexpected run error: %v", err)
	return exitErr.ExitCode()
}

// ccCommand picks the first available C compiler on PATH.
func ccCommand(t *testing.T) string {
	t.Helper()
	for _, name := range []string{"cc", "clang", "gcc"} {
		if _, err := exec.LookPath(name); err == nil {
			return name
		}
	}
	t.Skip("no C compiler (cc/clang/gcc) found on PATH")
	return ""
}

func TestEndToEndScenarios(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want int
	}{
		{"return literal", "main(){return 0;}", 0},
		{"precedence", "main(){return 5+6*7;}", 47},
		{"store through pointer", "main(){x=3; y=&x; *y=5; return x;}", 5},
		{"backward call", "fma(a,b,c){return a*b+c;} main(){return fma(5,6,2);}", 32},
		{"five argument call", "foo(a,b,c,d,e){return e;} main(){return foo(1,2,3,4,5);}", 5},
		{"for loop summation", "main(){i=0; s=0; for(i=1; i<=10; i=i+1) s=s+i; return s;}", 55},
	}

	for _, c := range cases {
		c := c
		t.Run(strings.ReplaceAll(c.name, " ", "_"), func(t *testing.T) {
			got := compileAndRun(t, c.src)
			require.Equal(t, c.want, got)
		})
	}
}

func TestEndToEndRoundTripAddressDeref(t *testing.T) {
	require.Equal(t, 3, compileAndRun(t, "main(){x=3; return *&x;}"))
	require.Equal(t, 3, compileAndRun(t, "main(){x=3; y=&x; z=&y; return **z;}"))
}

func TestEndToEndControlFlow(t *testing.T) {
	require.Equal(t, 1, compileAndRun(t, "main(){if (1) return 1; else return 0;}"))
	require.Equal(t, 0, compileAndRun(t, "main(){if (0) return 1; else return 0;}"))
	require.Equal(t, 10, compileAndRun(t, "main(){i=0; while (i<10) i=i+1; return i;}"))
}
