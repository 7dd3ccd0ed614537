package gasm

// Type sorts, adapted from asm/typed.
const (
	SortVoid     = 0
	SortBoolean  = 1
	SortChar     = 2
	SortByte     = 3
	SortShort    = 4
	SortInt      = 5
	SortFloat    = 6
	SortLong     = 7
	SortDouble   = 8
	SortArray    = 9
	SortObject   = 10
	SortMethod   = 11
	SortInternal = 12
)

// Type is a parsed field, method or internal-name descriptor. It exists in
// the core purely as a convenience value the checker and a disassembler
// can share; validation of the raw descriptor string lives in package
// descgrammar, not here.
type Type struct {
	Sort       int
	Descriptor string
}

// ObjectType returns the Type for an internal or array class name, mirroring
// asm.getObjectType.
func ObjectType(internalName string) Type {
	sort := SortInternal
	if len(internalName) > 0 && internalName[0] == '[' {
		sort = SortArray
	}
	return Type{Sort: sort, Descriptor: internalName}
}

// MethodType returns the Type for a raw method descriptor.
func MethodType(methodDescriptor string) Type {
	return Type{Sort: SortMethod, Descriptor: methodDescriptor}
}

// PrimitiveDescriptors lists the one-letter primitive descriptor codes.
var PrimitiveDescriptors = []byte{'V', 'Z', 'C', 'B', 'S', 'I', 'F', 'J', 'D'}
