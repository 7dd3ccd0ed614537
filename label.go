package gasm

// Label is an opaque identity token for a location in a method's bytecode.
// Two Label values denote the same location iff they are the same pointer:
// a producer creates one Label per location and passes that pointer to
// every visitor call that refers to it. The checker never dereferences
// Info; it exists purely for a producer (a reader or a hand-built tree) to
// stash its own bookkeeping, the same way asm/label.go stashed a
// bytecodeOffset for its writer to resolve later.
//
// Adapted from asm/label.go: the writer-only fields (forward-reference
// value arrays, the basic-block/edge chain, the frame pointer) are dropped
// here because laying out bytecode offsets is a class-file writer's job,
// out of scope here. LineNumber is kept for producers and disassemblers
// that track source lines; the checker does not read it.
type Label struct {
	Info       interface{}
	LineNumber int
}

// NewLabel creates a fresh, as-yet-undefined label.
func NewLabel() *Label {
	return &Label{}
}
