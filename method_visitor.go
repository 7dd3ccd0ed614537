package gasm

// MethodVisitor visits a Java method. Calls must follow: (VisitParameter)*
// [VisitAnnotationDefault] (VisitAnnotation | VisitAnnotableParameterCount |
// VisitParameterAnnotation | VisitTypeAnnotation | VisitAttribute)*
// [VisitCode (VisitFrame | Visit*Insn | VisitLabel | VisitInsnAnnotation |
// VisitTryCatchBlock | VisitTryCatchAnnotation | VisitLocalVariable |
// VisitLocalVariableAnnotation | VisitLineNumber)* VisitMaxs] VisitEnd. The
// Visit*Insn and VisitLabel calls must occur in the sequential order of the
// visited bytecode; VisitTryCatchBlock must be called before the labels it
// names have been visited; VisitLocalVariable, VisitLocalVariableAnnotation
// and VisitLineNumber must be called after the labels they name have been
// visited.
//
// Adapted from asm/methodvisitor.go. The legacy VisitMethodInsn/VisitMethodInsnB
// overload pair collapses into a single VisitMethodInsn call with an
// explicit isInterface flag.
type MethodVisitor interface {
	VisitParameter(name string, access int)
	VisitAnnotationDefault() AnnotationVisitor
	VisitAnnotation(descriptor string, visible bool) AnnotationVisitor
	VisitTypeAnnotation(typeRef int, typePath *TypePath, descriptor string, visible bool) AnnotationVisitor
	VisitAnnotableParameterCount(parameterCount int, visible bool)
	VisitParameterAnnotation(parameter int, descriptor string, visible bool) AnnotationVisitor
	VisitAttribute(attribute *Attribute)

	VisitCode()
	VisitFrame(frameType, numLocal int, local []interface{}, numStack int, stack []interface{})

	VisitInsn(opcode int)
	VisitIntInsn(opcode, operand int)
	VisitVarInsn(opcode, varIndex int)
	VisitTypeInsn(opcode int, typ string)
	VisitFieldInsn(opcode int, owner, name, descriptor string)
	VisitMethodInsn(opcode int, owner, name, descriptor string, isInterface bool)
	VisitInvokeDynamicInsn(name, descriptor string, bootstrapMethodHandle Handle, bootstrapMethodArguments ...interface{})
	VisitJumpInsn(opcode int, label *Label)
	VisitLabel(label *Label)
	VisitLdcInsn(value interface{})
	VisitIincInsn(varIndex, increment int)
	VisitTableSwitchInsn(min, max int, dflt *Label, labels ...*Label)
	VisitLookupSwitchInsn(dflt *Label, keys []int, labels []*Label)
	VisitMultiANewArrayInsn(descriptor string, numDimensions int)

	VisitInsnAnnotation(typeRef int, typePath *TypePath, descriptor string, visible bool) AnnotationVisitor
	VisitTryCatchBlock(start, end, handler *Label, typ string)
	VisitTryCatchAnnotation(typeRef int, typePath *TypePath, descriptor string, visible bool) AnnotationVisitor
	VisitLocalVariable(name, descriptor, signature string, start, end *Label, index int)
	VisitLocalVariableAnnotation(typeRef int, typePath *TypePath, start, end []*Label, index []int, descriptor string, visible bool) AnnotationVisitor
	VisitLineNumber(line int, start *Label)
	VisitMaxs(maxStack, maxLocals int)
	VisitEnd()
}
