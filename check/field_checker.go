package check

import (
	"github.com/nacpt/gasm"
	"github.com/nacpt/gasm/descgrammar"
)

// FieldChecker enforces a field subtree's simple discipline: annotations
// and attributes may arrive in any order, then exactly one VisitEnd.
type FieldChecker struct {
	delegate  gasm.FieldVisitor
	endCalled bool
}

func NewFieldChecker(delegate gasm.FieldVisitor) *FieldChecker {
	return &FieldChecker{delegate: delegate}
}

const fcCtx = "FieldChecker"

func (f *FieldChecker) requireOpen(method string) {
	if f.endCalled {
		panic(stateErr(fcCtx+"."+method, "called after VisitEnd"))
	}
}

func (f *FieldChecker) VisitAnnotation(descriptor string, visible bool) gasm.AnnotationVisitor {
	f.requireOpen("VisitAnnotation")
	if err := wrapGrammarErr(fcCtx+".VisitAnnotation", descgrammar.ValidateFieldDescriptor(descriptor)); err != nil {
		panic(err)
	}
	var delegateAV gasm.AnnotationVisitor
	if f.delegate != nil {
		delegateAV = f.delegate.VisitAnnotation(descriptor, visible)
	}
	return NewAnnotationChecker(delegateAV, true)
}

func (f *FieldChecker) VisitTypeAnnotation(typeRef int, typePath *gasm.TypePath, descriptor string, visible bool) gasm.AnnotationVisitor {
	f.requireOpen("VisitTypeAnnotation")
	if err := wrapGrammarErr(fcCtx+".VisitTypeAnnotation", descgrammar.ValidateFieldDescriptor(descriptor)); err != nil {
		panic(err)
	}
	var delegateAV gasm.AnnotationVisitor
	if f.delegate != nil {
		delegateAV = f.delegate.VisitTypeAnnotation(typeRef, typePath, descriptor, visible)
	}
	return NewAnnotationChecker(delegateAV, true)
}

func (f *FieldChecker) VisitAttribute(attribute *gasm.Attribute) {
	f.requireOpen("VisitAttribute")
	if f.delegate != nil {
		f.delegate.VisitAttribute(attribute)
	}
}

func (f *FieldChecker) VisitEnd() {
	f.requireOpen("VisitEnd")
	f.endCalled = true
	if f.delegate != nil {
		f.delegate.VisitEnd()
	}
}

// RecordComponentChecker mirrors FieldChecker: a record component's
// annotation/attribute discipline is identical.
type RecordComponentChecker struct {
	delegate  gasm.RecordComponentVisitor
	endCalled bool
}

func NewRecordComponentChecker(delegate gasm.RecordComponentVisitor) *RecordComponentChecker {
	return &RecordComponentChecker{delegate: delegate}
}

const rcCtx = "RecordComponentChecker"

func (r *RecordComponentChecker) requireOpen(method string) {
	if r.endCalled {
		panic(stateErr(rcCtx+"."+method, "called after VisitEnd"))
	}
}

func (r *RecordComponentChecker) VisitAnnotation(descriptor string, visible bool) gasm.AnnotationVisitor {
	r.requireOpen("VisitAnnotation")
	if err := wrapGrammarErr(rcCtx+".VisitAnnotation", descgrammar.ValidateFieldDescriptor(descriptor)); err != nil {
		panic(err)
	}
	var delegateAV gasm.AnnotationVisitor
	if r.delegate != nil {
		delegateAV = r.delegate.VisitAnnotation(descriptor, visible)
	}
	return NewAnnotationChecker(delegateAV, true)
}

func (r *RecordComponentChecker) VisitTypeAnnotation(typeRef int, typePath *gasm.TypePath, descriptor string, visible bool) gasm.AnnotationVisitor {
	r.requireOpen("VisitTypeAnnotation")
	if err := wrapGrammarErr(rcCtx+".VisitTypeAnnotation", descgrammar.ValidateFieldDescriptor(descriptor)); err != nil {
		panic(err)
	}
	var delegateAV gasm.AnnotationVisitor
	if r.delegate != nil {
		delegateAV = r.delegate.VisitTypeAnnotation(typeRef, typePath, descriptor, visible)
	}
	return NewAnnotationChecker(delegateAV, true)
}

func (r *RecordComponentChecker) VisitAttribute(attribute *gasm.Attribute) {
	r.requireOpen("VisitAttribute")
	if r.delegate != nil {
		r.delegate.VisitAttribute(attribute)
	}
}

func (r *RecordComponentChecker) VisitEnd() {
	r.requireOpen("VisitEnd")
	r.endCalled = true
	if r.delegate != nil {
		r.delegate.VisitEnd()
	}
}
