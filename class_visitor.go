package gasm

// ClassVisitor visits a Java class. Calls must follow: Visit, [VisitSource],
// [VisitModule], [VisitOuterClass], (VisitAnnotation | VisitTypeAnnotation |
// VisitAttribute)*, (VisitNestHost | VisitNestMember)*, VisitPermittedSubclass*,
// (VisitInnerClass | VisitRecordComponent | VisitField | VisitMethod)*,
// VisitEnd.
//
// Adapted from asm/class-visitor.go: VisitModule now returns a
// ModuleVisitor (asm stubbed this as a no-op returning nothing), VisitField
// returns a FieldVisitor, and VisitNestHost/VisitNestMember/
// VisitRecordComponent/VisitPermittedSubclass are added to cover nest- and
// record-related membership and the newer experimental events.
type ClassVisitor interface {
	// Visit is always the first call: version, access flags, internal
	// name, an optional generic signature, the super class's internal
	// name (absent for java/lang/Object and module-info) and the
	// implemented interfaces.
	Visit(version, access int, name, signature, superName string, interfaces []string)

	VisitSource(source, debug string)
	VisitModule(name string, access int, version string) ModuleVisitor
	VisitNestHost(nestHost string)
	VisitOuterClass(owner, name, descriptor string)
	VisitAnnotation(descriptor string, visible bool) AnnotationVisitor
	VisitTypeAnnotation(typeRef int, typePath *TypePath, descriptor string, visible bool) AnnotationVisitor
	VisitAttribute(attribute *Attribute)
	VisitNestMember(nestMember string)
	VisitPermittedSubclass(permittedSubclass string)
	VisitInnerClass(name, outerName, innerName string, access int)
	VisitRecordComponent(name, descriptor, signature string) RecordComponentVisitor
	VisitField(access int, name, descriptor, signature string, value interface{}) FieldVisitor
	VisitMethod(access int, name, descriptor, signature string, exceptions []string) MethodVisitor
	VisitEnd()
}
