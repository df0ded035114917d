package frame_test

import (
	"testing"

	"github.com/mna/mincc/lang/frame"
	"github.com/mna/mincc/lang/parser"
	"github.com/mna/mincc/lang/resolver"
	"github.com/mna/mincc/lang/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, src string) (*resolver.ResolvedCrate, *frame.Layouts) {
	t.Helper()
	f := token.NewFile("t.c", []byte(src))
	crate, perrs := parser.ParseSource(f, []byte(src))
	require.Zero(t, perrs.Len())
	rc, rerrs := resolver.Resolve(f, crate)
	require.Zero(t, rerrs.Len())
	return rc, frame.Build(rc)
}

func TestBuildAssignsIncreasingSlots(t *testing.T) {
	rc, layouts := build(t, "fma(a,b,c){int s=a*b+c; return s;}")
	info := rc.FnInfos["fma"]
	l := layouts.Of(info.FnId)
	require.NotNil(t, l)

	off, ok := l.Slot(info.Params[0])
	require.True(t, ok)
	assert.EqualValues(t, 8, off)

	off, ok = l.Slot(info.Params[1])
	require.True(t, ok)
	assert.EqualValues(t, 16, off)

	off, ok = l.Slot(info.Params[2])
	require.True(t, ok)
	assert.EqualValues(t, 24, off)

	off, ok = l.Slot(info.Locals[0])
	require.True(t, ok)
	assert.EqualValues(t, 32, off)
}

func TestBuildPadsFrameSizeTo16(t *testing.T) {
	rc, layouts := build(t, "main(){int x=1; return x;}")
	info := rc.FnInfos["main"]
	l := layouts.Of(info.FnId)
	// one slot -> offset 8, padded up to 16
	assert.EqualValues(t, 16, l.FrameSize)
}

func TestBuildFrameAdjacency(t *testing.T) {
	// Pins the layout contract spec.md §8 relies on: locals allocated in
	// declaration order, 8 bytes apart.
	rc, layouts := build(t, "main(){x=3; y=5; return x;}")
	info := rc.FnInfos["main"]
	l := layouts.Of(info.FnId)

	xOff, _ := l.Slot(info.Locals[0])
	yOff, _ := l.Slot(info.Locals[1])
	assert.EqualValues(t, 8, xOff)
	assert.EqualValues(t, 16, yOff)
	assert.EqualValues(t, 8, yOff-xOff)
}
