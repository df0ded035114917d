package resolver

import (
	"github.com/dolthub/swiss"

	"github.com/mna/mincc/lang/ast"
)

// NodeObjMap is the expr_resolutions side table of spec.md §3: a map from a
// node's NodeId to the ObjId it resolves to, one entry per resolved Var node
// (for a FnCall, its callee Var) and per Declarator. It is the busiest map built during a resolve pass (one write
// per name reference in the source), so it is backed by swiss.Map rather
// than a builtin map, the same dependency the teacher used for its runtime
// dict value (DESIGN.md's dependency ledger).
type NodeObjMap struct {
	m *swiss.Map[ast.NodeId, ObjId]
}

// NewNodeObjMap returns a NodeObjMap with initial capacity for at least size
// entries.
func NewNodeObjMap(size int) *NodeObjMap {
	return &NodeObjMap{m: swiss.NewMap[ast.NodeId, ObjId](uint32(size))}
}

// Set records that node resolves to obj.
func (m *NodeObjMap) Set(node ast.NodeId, obj ObjId) { m.m.Put(node, obj) }

// Get returns the ObjId node resolves to, if any.
func (m *NodeObjMap) Get(node ast.NodeId) (ObjId, bool) { return m.m.Get(node) }

// Len reports the number of recorded resolutions.
func (m *NodeObjMap) Len() int { return m.m.Count() }
