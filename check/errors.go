// Package check implements the verifier/checker subsystem: a family of
// gasm.ClassVisitor/MethodVisitor/... adapters that confirm, purely from the
// sequence and arguments of the events they receive, that the producer
// driving them is well-formed with respect to the JVM class-file format.
// This is the hard core the rest of the repository exists to support; asm
// never ported ASM's CheckClassAdapter family, so it is built fresh here,
// in the shape of asm's own visitor interfaces.
package check

import "fmt"

// ErrorKind distinguishes the five ways a checker can reject an event.
type ErrorKind int

const (
	// ErrArgument: a single argument is out of its declared domain.
	ErrArgument ErrorKind = iota
	// ErrState: a method was called in a forbidden state.
	ErrState
	// ErrReference: a label or nest-member was referenced but never
	// defined, or try-catch labels were visited in an unacceptable order.
	ErrReference
	// ErrConfiguration: the dataflow option was requested with
	// unsatisfiable preconditions or its verifier rejected the method, or
	// an LDC constant kind needs a newer class version than the one being
	// checked.
	ErrConfiguration
	// ErrUnsupported: a visitor method that this checker configuration
	// refuses outright, such as an experimental call below the API-version
	// floor.
	ErrUnsupported
)

func (k ErrorKind) String() string {
	switch k {
	case ErrArgument:
		return "argument"
	case ErrState:
		return "state"
	case ErrReference:
		return "reference"
	case ErrConfiguration:
		return "configuration"
	case ErrUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// CheckError is the error type every rejection in package check uses. It
// models termfx-morfx/internal/model/errors.go's ErrorCode-plus-sentinel
// shape: a small machine-readable Kind alongside a human message, with
// Unwrap support for errors.Is/errors.As.
type CheckError struct {
	Kind    ErrorKind
	Context string // e.g. "ClassChecker.Visit", "MethodChecker.VisitVarInsn"
	Message string
	Cause   error
}

func (e *CheckError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Context, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *CheckError) Unwrap() error { return e.Cause }

func newErr(kind ErrorKind, context, format string, args ...interface{}) *CheckError {
	return &CheckError{Kind: kind, Context: context, Message: fmt.Sprintf(format, args...)}
}

func argErr(context, format string, args ...interface{}) *CheckError {
	return newErr(ErrArgument, context, format, args...)
}

func stateErr(context, format string, args ...interface{}) *CheckError {
	return newErr(ErrState, context, format, args...)
}

func refErr(context, format string, args ...interface{}) *CheckError {
	return newErr(ErrReference, context, format, args...)
}

func configErr(context, format string, args ...interface{}) *CheckError {
	return newErr(ErrConfiguration, context, format, args...)
}

func unsupportedErr(context, format string, args ...interface{}) *CheckError {
	return newErr(ErrUnsupported, context, format, args...)
}

// wrapGrammarErr re-tags a descgrammar.GrammarError (always an argument
// mistake) as a CheckError so callers only ever see one error family.
func wrapGrammarErr(context string, err error) *CheckError {
	if err == nil {
		return nil
	}
	return &CheckError{Kind: ErrArgument, Context: context, Message: err.Error(), Cause: err}
}
