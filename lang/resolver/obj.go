package resolver

import "fmt"

// ObjId is the index of an Obj in a ResolvedCrate's Objs slice.
type ObjId int

// ObjKind classifies a resolved object, per spec.md §3.
type ObjKind uint8

const (
	// Local is a function-local variable introduced by a Decl or by implicit
	// assignment (see the Open Question on lenient declaration, DESIGN.md).
	Local ObjKind = iota
	// Param is a function parameter.
	Param
	// Global is reserved for a module-level binding; the grammar has no
	// syntax that produces one (there are no top-level variable
	// declarations), so this kind is never assigned, kept only so ObjKind
	// matches spec.md §3's enumeration exactly.
	Global
	// Func is a function name, declared in the pre-pass over the crate so
	// forward calls resolve (DESIGN.md's Open Question decision).
	Func
	// EnumConst is reserved for an enumerated constant; the language has no
	// enum declarations, so this kind is never assigned, kept only so
	// ObjKind matches spec.md §3's enumeration exactly.
	EnumConst
)

func (k ObjKind) String() string {
	switch k {
	case Local:
		return "local"
	case Param:
		return "param"
	case Global:
		return "global"
	case Func:
		return "func"
	case EnumConst:
		return "enum const"
	default:
		return fmt.Sprintf("ObjKind(%d)", k)
	}
}

// Obj is one resolved binding: a function, a parameter, or a local.
type Obj struct {
	Id   ObjId
	Name string
	Kind ObjKind
}

// FnInfo collects the parameters and locals a function declares, keyed by
// the function's name.
type FnInfo struct {
	FnId   ObjId
	Params []ObjId // in source order
	Locals []ObjId // in declaration order
}

// ResolvedCrate is the output of Resolve: the object table, the per-node
// resolution side table, and per-function parameter/local lists.
type ResolvedCrate struct {
	Objs []Obj

	// ExprResolutions holds one entry per resolved Var node (for a FnCall,
	// its callee Var) and per Declarator, keyed by that node's NodeId.
	ExprResolutions *NodeObjMap

	// FnInfos holds one entry per declared function, keyed by name.
	FnInfos map[string]*FnInfo
}

// Obj returns the Obj for id.
func (rc *ResolvedCrate) Obj(id ObjId) Obj { return rc.Objs[id] }
