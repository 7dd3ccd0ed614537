package gasm

// FieldVisitor visits a Java field. Calls must follow: (VisitAnnotation |
// VisitTypeAnnotation | VisitAttribute)* VisitEnd. Unchanged in shape from
// asm/fieldvisitor.go.
type FieldVisitor interface {
	VisitAnnotation(descriptor string, visible bool) AnnotationVisitor
	VisitTypeAnnotation(typeRef int, typePath *TypePath, descriptor string, visible bool) AnnotationVisitor
	VisitAttribute(attribute *Attribute)
	VisitEnd()
}

// RecordComponentVisitor visits a record component. asm/fieldvisitor.go
// never modeled record components at all; the shape mirrors FieldVisitor
// since a record component's annotation/attribute discipline is identical.
type RecordComponentVisitor interface {
	VisitAnnotation(descriptor string, visible bool) AnnotationVisitor
	VisitTypeAnnotation(typeRef int, typePath *TypePath, descriptor string, visible bool) AnnotationVisitor
	VisitAttribute(attribute *Attribute)
	VisitEnd()
}
