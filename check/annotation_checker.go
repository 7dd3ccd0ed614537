package check

import (
	"github.com/nacpt/gasm"
	"github.com/nacpt/gasm/descgrammar"
)

// AnnotationChecker enforces named/unnamed value discipline (a top-level
// annotation's values are named, an array element's are not) and refuses
// any value call after VisitEnd. One is spawned per opened annotation or
// array subtree; state is never threaded across siblings.
type AnnotationChecker struct {
	delegate    gasm.AnnotationVisitor
	namedValues bool
	endCalled   bool
}

func NewAnnotationChecker(delegate gasm.AnnotationVisitor, namedValues bool) *AnnotationChecker {
	return &AnnotationChecker{delegate: delegate, namedValues: namedValues}
}

const acCtx = "AnnotationChecker"

func (a *AnnotationChecker) requireOpen(method string) {
	if a.endCalled {
		panic(stateErr(acCtx+"."+method, "called after VisitEnd"))
	}
}

func (a *AnnotationChecker) checkName(method, name string) {
	if a.namedValues && name == "" {
		panic(argErr(acCtx+"."+method, "name required in this context"))
	}
	if !a.namedValues && name != "" {
		panic(argErr(acCtx+"."+method, "name forbidden in an array element"))
	}
}

func (a *AnnotationChecker) Visit(name string, value interface{}) {
	a.requireOpen("Visit")
	a.checkName("Visit", name)
	if !isPermittedAnnotationValue(value) {
		panic(argErr(acCtx+".Visit", "value of type %T is not a permitted annotation value", value))
	}
	if a.delegate != nil {
		a.delegate.Visit(name, value)
	}
}

func isPermittedAnnotationValue(value interface{}) bool {
	switch v := value.(type) {
	case byte, bool, int16, int32, int64, int, float32, float64, string,
		gasm.Type:
		return true
	case []byte, []bool, []int16, []int32, []int64, []int, []float32, []float64, []string:
		return true
	default:
		_ = v
		return false
	}
}

func (a *AnnotationChecker) VisitEnum(name, descriptor, value string) {
	a.requireOpen("VisitEnum")
	a.checkName("VisitEnum", name)
	if err := wrapGrammarErr(acCtx+".VisitEnum", descgrammar.ValidateFieldDescriptor(descriptor)); err != nil {
		panic(err)
	}
	if value == "" {
		panic(argErr(acCtx+".VisitEnum", "enum constant name must be non-empty"))
	}
	if a.delegate != nil {
		a.delegate.VisitEnum(name, descriptor, value)
	}
}

func (a *AnnotationChecker) VisitAnnotation(name, descriptor string) gasm.AnnotationVisitor {
	a.requireOpen("VisitAnnotation")
	a.checkName("VisitAnnotation", name)
	if err := wrapGrammarErr(acCtx+".VisitAnnotation", descgrammar.ValidateFieldDescriptor(descriptor)); err != nil {
		panic(err)
	}
	var delegateAV gasm.AnnotationVisitor
	if a.delegate != nil {
		delegateAV = a.delegate.VisitAnnotation(name, descriptor)
	}
	return NewAnnotationChecker(delegateAV, true)
}

func (a *AnnotationChecker) VisitArray(name string) gasm.AnnotationVisitor {
	a.requireOpen("VisitArray")
	a.checkName("VisitArray", name)
	var delegateAV gasm.AnnotationVisitor
	if a.delegate != nil {
		delegateAV = a.delegate.VisitArray(name)
	}
	return NewAnnotationChecker(delegateAV, false)
}

func (a *AnnotationChecker) VisitEnd() {
	a.requireOpen("VisitEnd")
	a.endCalled = true
	if a.delegate != nil {
		a.delegate.VisitEnd()
	}
}
