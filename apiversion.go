package gasm

// ApiVersion tags the visitor capability set a producer or adapter was
// built against: every visitor carries an API-version tag, and methods
// marked experimental require the highest version to be called at all.
// Modeled on ASM's ASM4/ASM5/ASM6 api constants and extended with the versions the
// record-component and permitted-subtype events need.
type ApiVersion int

const (
	Api4 ApiVersion = 4 << 16
	Api5 ApiVersion = 5 << 16
	Api6 ApiVersion = 6 << 16
	Api7 ApiVersion = 7 << 16
	Api8 ApiVersion = 8 << 16
	Api9 ApiVersion = 9 << 16

	// ApiExperimental is the floor required for experimental calls: record
	// components and permitted subclasses.
	ApiExperimental = Api9
)
