package gasm

import "github.com/nacpt/gasm/opcodes"

// Handle is a reified reference to a field or method with a method-handle
// kind tag: the tuple (tag, owner, name, descriptor, isInterface).
// asm/classreader.go only ever built this implicitly, inline inside
// ClassReader.readConst; it is promoted to a first-class value type here
// because the checker needs to validate it both as an LDC constant and
// recursively inside bootstrap arguments.
type Handle struct {
	Tag         int
	Owner       string
	Name        string
	Descriptor  string
	IsInterface bool
}

// TagName renders the handle's reference kind, e.g. "INVOKESTATIC".
func (h Handle) TagName() string {
	return opcodes.HandleTagName(h.Tag)
}

// ConstantDynamic is a constant-pool entry whose value is produced by
// invoking a bootstrap method at link time: a tuple (name, descriptor,
// bootstrapHandle, bootstrapArgs), where bootstrapArgs may recursively
// contain further ConstantDynamic values.
type ConstantDynamic struct {
	Name            string
	Descriptor      string
	BootstrapMethod Handle
	BootstrapArgs   []interface{}
}

// GetSize returns 2 for a double or long descriptor, 1 otherwise, mirroring
// the JVM stack-slot width of the value this ConstantDynamic evaluates to.
func (c ConstantDynamic) GetSize() int {
	if c.Descriptor == "D" || c.Descriptor == "J" {
		return 2
	}
	return 1
}
