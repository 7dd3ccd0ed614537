package gasm

// AnnotationVisitor visits a Java annotation. Calls must follow: (Visit |
// VisitEnum | VisitAnnotation | VisitArray)* VisitEnd. Unchanged in shape
// from asm/annotation-visitor.go.
type AnnotationVisitor interface {
	Visit(name string, value interface{})
	VisitEnum(name, descriptor, value string)
	VisitAnnotation(name, descriptor string) AnnotationVisitor
	VisitArray(name string) AnnotationVisitor
	VisitEnd()
}
