package check

import "github.com/nacpt/gasm/opcodes"

// Admissible access-flag masks per site. These are process-wide read-only
// tables, built once at package init via Go's ordinary const/var
// initialization.
const (
	classMask = opcodes.ACC_PUBLIC | opcodes.ACC_FINAL | opcodes.ACC_SUPER |
		opcodes.ACC_INTERFACE | opcodes.ACC_ABSTRACT | opcodes.ACC_SYNTHETIC |
		opcodes.ACC_ANNOTATION | opcodes.ACC_ENUM | opcodes.ACC_MODULE |
		opcodes.ACC_DEPRECATED

	fieldMask = opcodes.ACC_PUBLIC | opcodes.ACC_PRIVATE | opcodes.ACC_PROTECTED |
		opcodes.ACC_STATIC | opcodes.ACC_FINAL | opcodes.ACC_VOLATILE |
		opcodes.ACC_VARARGS /* transient, same bit as varargs */ | opcodes.ACC_SYNTHETIC |
		opcodes.ACC_ENUM | opcodes.ACC_DEPRECATED

	methodMask = opcodes.ACC_PUBLIC | opcodes.ACC_PRIVATE | opcodes.ACC_PROTECTED |
		opcodes.ACC_STATIC | opcodes.ACC_FINAL | opcodes.ACC_SUPER /* synchronized, same bit */ |
		opcodes.ACC_VOLATILE /* bridge, same bit */ | opcodes.ACC_VARARGS |
		opcodes.ACC_NATIVE | opcodes.ACC_ABSTRACT | opcodes.ACC_STRICT |
		opcodes.ACC_SYNTHETIC | opcodes.ACC_DEPRECATED | opcodes.AccConstructor

	innerClassMask = opcodes.ACC_PUBLIC | opcodes.ACC_PRIVATE | opcodes.ACC_PROTECTED |
		opcodes.ACC_STATIC | opcodes.ACC_FINAL | opcodes.ACC_INTERFACE |
		opcodes.ACC_ABSTRACT | opcodes.ACC_SYNTHETIC | opcodes.ACC_ANNOTATION |
		opcodes.ACC_ENUM | opcodes.ACC_MANDATED

	parameterMask = opcodes.ACC_FINAL | opcodes.ACC_SYNTHETIC | opcodes.ACC_MANDATED

	moduleMask = opcodes.ACC_OPEN | opcodes.ACC_SYNTHETIC | opcodes.ACC_MANDATED

	requiresMask = opcodes.ACC_TRANSITIVE | opcodes.ACC_STATIC_PHASE |
		opcodes.ACC_SYNTHETIC | opcodes.ACC_MANDATED

	exportsOpensMask = opcodes.ACC_SYNTHETIC | opcodes.ACC_MANDATED
)

// checkAccess validates access against mask and the public/private/protected
// and final/abstract mutual-exclusion rules, returning an *argument*
// CheckError describing the first violation found.
func checkAccess(context string, access, mask int) error {
	if access&^mask != 0 {
		return argErr(context, "invalid access flags %#x: bits %#x are not admissible here", access, access&^mask)
	}
	visibility := access & (opcodes.ACC_PUBLIC | opcodes.ACC_PRIVATE | opcodes.ACC_PROTECTED)
	if popcount(visibility) > 1 {
		return argErr(context, "at most one of public/private/protected may be set, got %#x", visibility)
	}
	if access&opcodes.ACC_FINAL != 0 && access&opcodes.ACC_ABSTRACT != 0 {
		return argErr(context, "final and abstract are mutually exclusive")
	}
	return nil
}

func popcount(x int) int {
	n := 0
	for x != 0 {
		n += x & 1
		x >>= 1
	}
	return n
}
