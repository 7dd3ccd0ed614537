package opcodes

// Site distinguishes where an access-flag bit is being interpreted, since a
// handful of bits are overloaded with unrelated meanings depending on site:
// 0x20 is `super` on a class but `synchronized` on a method, 0x40 is
// `volatile` on a field but `bridge` on a method, and so on.
type Site int

const (
	SiteClass Site = iota
	SiteField
	SiteMethod
	SiteInner
	SiteModule
	SiteModuleRequires
	SiteParameter
	SiteRecordComponent
)

// AccessFlagName renders the name of a single access-flag bit at a given
// site. The checker itself never needs to render these, but anything
// downstream that does (diagnostics, a disassembler) must resolve the same
// bit differently per site.
func AccessFlagName(bit int, site Site) string {
	switch bit {
	case ACC_PUBLIC:
		return "public"
	case ACC_PRIVATE:
		return "private"
	case ACC_PROTECTED:
		return "protected"
	case ACC_STATIC:
		return "static"
	case ACC_FINAL:
		return "final"
	case ACC_SUPER:
		switch site {
		case SiteClass:
			return "super"
		case SiteMethod:
			return "synchronized"
		case SiteModule:
			return "open"
		case SiteModuleRequires:
			return "transitive"
		}
	case ACC_VOLATILE:
		switch site {
		case SiteField:
			return "volatile"
		case SiteMethod:
			return "bridge"
		case SiteModuleRequires:
			return "static_phase"
		}
	case ACC_VARARGS:
		switch site {
		case SiteMethod:
			return "varargs"
		case SiteField:
			return "transient"
		}
	case ACC_NATIVE:
		return "native"
	case ACC_INTERFACE:
		return "interface"
	case ACC_ABSTRACT:
		return "abstract"
	case ACC_STRICT:
		return "strictfp"
	case ACC_SYNTHETIC:
		return "synthetic"
	case ACC_ANNOTATION:
		return "annotation"
	case ACC_ENUM:
		return "enum"
	case ACC_MANDATED:
		switch site {
		case SiteClass:
			return "module"
		default:
			return "mandated"
		}
	case ACC_RECORD:
		return "record"
	case ACC_DEPRECATED:
		return "deprecated"
	}
	return "unknown"
}

var handleTagNames = map[int]string{
	H_GETFIELD:         "GETFIELD",
	H_GETSTATIC:        "GETSTATIC",
	H_PUTFIELD:         "PUTFIELD",
	H_PUTSTATIC:        "PUTSTATIC",
	H_INVOKEVIRTUAL:    "INVOKEVIRTUAL",
	H_INVOKESTATIC:     "INVOKESTATIC",
	H_INVOKESPECIAL:    "INVOKESPECIAL",
	H_NEWINVOKESPECIAL: "NEWINVOKESPECIAL",
	H_INVOKEINTERFACE:  "INVOKEINTERFACE",
}

// HandleTagName renders a method-handle tag, or "" if tag is not one of the
// nine defined kinds.
func HandleTagName(tag int) string {
	return handleTagNames[tag]
}
