package gasm

// Wildcard tags for SignatureVisitor.VisitTypeArgumentWildcard.
const (
	WildcardExtends = '+'
	WildcardSuper   = '-'
	WildcardInstanceof = '='
)

// SignatureVisitor visits the productions of a class, method or field
// signature. asm never ported signature support, so this interface and the
// push-down automaton in package check that drives it are new, grounded
// directly in the JVMS generic-signature grammar.
type SignatureVisitor interface {
	VisitFormalTypeParameter(name string)
	VisitClassBound() SignatureVisitor
	VisitInterfaceBound() SignatureVisitor
	VisitSuperclass() SignatureVisitor
	VisitInterface() SignatureVisitor
	VisitParameterType() SignatureVisitor
	VisitReturnType() SignatureVisitor
	VisitExceptionType() SignatureVisitor
	VisitBaseType(descriptor byte)
	VisitTypeVariable(name string)
	VisitArrayType() SignatureVisitor
	VisitClassType(name string)
	VisitInnerClassType(name string)
	VisitTypeArgument()
	VisitTypeArgumentWildcard(wildcard byte) SignatureVisitor
	VisitEnd()
}
