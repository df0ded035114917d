package codegen

import "github.com/mna/mincc/lang/resolver"

// fnContext tracks the per-function state the code generator needs while
// walking one function's body: its identity for label naming and a counter
// for the labels If/While/For introduce, grounded on
// original_source/src/codegen/context.rs's ProgContext.
type fnContext struct {
	fnID       resolver.ObjId
	labelCount uint32
}

// next returns the next label suffix for this function and advances the
// counter, so that nested and sibling control-flow statements each get a
// distinct ".L.<fn_id>.<kind>.<n>" label.
func (c *fnContext) next() uint32 {
	n := c.labelCount
	c.labelCount++
	return n
}
