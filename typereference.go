package gasm

// TypeReference sorts (the "target_type" of a type_annotation structure,
// JVMS 4.7.20.1), adapted unchanged from asm/type-reference.go.
const (
	ClassTypeParameter               = 0x00
	MethodTypeParameter              = 0x01
	ClassExtends                     = 0x10
	ClassTypeParameterBound          = 0x11
	MethodTypeParameterBound         = 0x12
	FieldRef                         = 0x13
	MethodReturn                     = 0x14
	MethodReceiver                   = 0x15
	MethodFormalParameter            = 0x16
	Throws                           = 0x17
	LocalVariable                    = 0x40
	ResourceVariable                 = 0x41
	ExceptionParameter               = 0x42
	Instanceof                       = 0x43
	NewRef                           = 0x44
	ConstructorReference             = 0x45
	MethodReference                  = 0x46
	Cast                             = 0x47
	ConstructorInvocationTypeArgument = 0x48
	MethodInvocationTypeArgument      = 0x49
	ConstructorReferenceTypeArgument  = 0x4A
	MethodReferenceTypeArgument       = 0x4B
)

// IsValidTypeReferenceSort reports whether sort is one of the defined
// target_type values above.
func IsValidTypeReferenceSort(sort int) bool {
	switch sort {
	case ClassTypeParameter, MethodTypeParameter, ClassExtends, ClassTypeParameterBound,
		MethodTypeParameterBound, FieldRef, MethodReturn, MethodReceiver, MethodFormalParameter,
		Throws, LocalVariable, ResourceVariable, ExceptionParameter, Instanceof, NewRef,
		ConstructorReference, MethodReference, Cast, ConstructorInvocationTypeArgument,
		MethodInvocationTypeArgument, ConstructorReferenceTypeArgument, MethodReferenceTypeArgument:
		return true
	default:
		return false
	}
}
