package check

import "github.com/nacpt/gasm"

// labelIndex tracks every label a class's methods have defined, keyed by
// pointer identity, so VisitTryCatchBlock / VisitLocalVariable / jump
// targets can be validated against labels that have actually been visited
// via VisitLabel. A try-catch block's start/end/handler and a jump target
// may be named before the label itself is visited (both are resolved at
// VisitMaxs); local-variable and line-number labels must already be
// defined.
//
// One labelIndex is shared by a ClassChecker and every MethodChecker it
// spawns; a single *gasm.Label pointer never crosses method boundaries in
// a well-formed producer, so sharing the map introduces no cross-method
// confusion.
type labelIndex struct {
	defined map[*gasm.Label]bool
}

func newLabelIndex() *labelIndex {
	return &labelIndex{defined: make(map[*gasm.Label]bool)}
}

func (li *labelIndex) define(l *gasm.Label) {
	if l != nil {
		li.defined[l] = true
	}
}

func (li *labelIndex) isDefined(l *gasm.Label) bool {
	return l != nil && li.defined[l]
}
