// Package dataflow defines the narrow interface between the method checker
// and an optional abstract-interpretation pass: a basic dataflow verifier
// that re-derives per-instruction stack/local types without a full class
// hierarchy. The checker never reaches into an analyzer's internal frame
// representation; it only calls Verify and reports the error that comes
// back, without inspecting the returned frames.
package dataflow

import "github.com/nacpt/gasm"

// TypeResolver is the capability a Verifier needs to reason about
// reference types without loading classes: subtype and common-supertype
// queries over internal names, answerable from a classpath index, a
// pre-built hierarchy snapshot, or (in the degenerate case) identity-only
// comparison.
type TypeResolver interface {
	IsSubtype(a, b string) bool
	CommonSupertype(a, b string) string
	IsInterface(t string) bool
}

// Element is one stack or local-variable slot's abstract type.
type Element struct {
	// Kind is a gasm frame-element ordinal (Top, Integer, Float, ...,
	// UninitializedThis) or Reference when Internal names a reference type.
	Kind     int
	Internal string
	// NewSite is set when Kind denotes an uninitialized value produced by
	// a NEW instruction not yet followed by its constructor call.
	NewSite *gasm.Label
}

// Frame is a snapshot of local-variable and operand-stack types valid
// immediately before one instruction executes.
type Frame struct {
	Locals []Element
	Stack  []Element
}

// Method is the in-memory representation the method checker hands to a
// Verifier once VisitMaxs closes the instruction stream out: the full
// instruction list it buffered, the try-catch handlers it registered, and
// the declared stack/locals maximums.
type Method struct {
	Owner      string
	Name       string
	Descriptor string
	IsStatic   bool
	MaxStack   int
	MaxLocals  int
	Insns      []Insn
	Handlers   []Handler
}

// Insn is one buffered instruction event, tagged by opcode with whichever
// operand fields apply; Label-valued fields are nil when not applicable.
type Insn struct {
	Opcode        int
	Operand       int
	Owner         string
	Name          string
	Descriptor    string
	IsInterface   bool
	Label         *gasm.Label
	Labels        []*gasm.Label
	Value         interface{}
	NumDimensions int
}

// Handler is one try-catch range: start/end bound the protected region,
// HandlerLabel is the catch target, Type is the caught exception's internal
// name ("" for a finally handler).
type Handler struct {
	Start, End, HandlerLabel *gasm.Label
	Type                     string
}

// VerifyError reports a dataflow failure at one instruction index, with
// enough of the surrounding frame state to render readable diagnostics.
type VerifyError struct {
	InsnIndex int
	Message   string
	Frame     *Frame
}

func (e *VerifyError) Error() string {
	return e.Message
}

// Verifier consumes an in-memory method and a type resolver and produces,
// for each instruction, the pre-frame abstract interpretation computed at
// that point, or an error at the first instruction where no legal frame
// exists.
type Verifier interface {
	Verify(method *Method, resolver TypeResolver) ([]*Frame, error)
}
