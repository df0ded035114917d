package resolver

import "github.com/dolthub/swiss"

// scope is one frame of the lexical scope stack: the global frame at the
// bottom, one frame per function for its parameters, and one frame per
// Block, including the function body, whose frame holds its top-level
// locals. Backed by swiss.Map, the hottest allocation in a
// resolve pass after NodeObjMap (one frame per function/block, one entry
// per name bound in it) — see DESIGN.md's dependency ledger.
type scope struct {
	parent   *scope
	bindings *swiss.Map[string, ObjId]
}

func newScope(parent *scope) *scope {
	return &scope{parent: parent, bindings: swiss.NewMap[string, ObjId](8)}
}

// declare binds name to id in this scope only. ok is false if name is
// already bound in this exact scope (a same-frame redeclaration).
func (s *scope) declare(name string, id ObjId) (ok bool) {
	if _, exists := s.bindings.Get(name); exists {
		return false
	}
	s.bindings.Put(name, id)
	return true
}

// lookup searches this scope and its ancestors, innermost first.
func (s *scope) lookup(name string) (ObjId, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if id, ok := sc.bindings.Get(name); ok {
			return id, true
		}
	}
	return 0, false
}
