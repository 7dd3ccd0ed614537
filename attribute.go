package gasm

// Attribute is a non-standard class-file attribute, opaque to the checker
// beyond its type name. Adapted from asm/attribute.go: the
// write/computeAttributesSize/putAttribute machinery there exists only to
// serialize attributes back out, a class-file writer's job and out of
// scope here, so it is dropped in favor of the read-side shape the
// checker and a producer actually share.
type Attribute struct {
	Type          string
	Content       []byte
	nextAttribute *Attribute
}

// NewAttribute creates an unknown attribute of the given type.
func NewAttribute(typ string) *Attribute {
	return &Attribute{Type: typ}
}

// IsUnknown reports whether this attribute type has no specialized
// handling; the base Attribute is always unknown.
func (a *Attribute) IsUnknown() bool { return true }

// IsCodeAttribute reports whether this attribute can only appear on a Code
// attribute (requires bytecode offsets/labels to interpret its content).
func (a *Attribute) IsCodeAttribute() bool { return false }

// Labels returns the labels referenced by this attribute's content, if any.
func (a *Attribute) Labels() []*Label { return nil }

// Count returns the length of the nextAttribute chain starting at a.
func (a *Attribute) Count() int {
	count := 0
	for attr := a; attr != nil; attr = attr.nextAttribute {
		count++
	}
	return count
}
