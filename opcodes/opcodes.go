// Package opcodes collects the static, process-wide taxonomy the checker is
// built on: JVM opcode ordinals, access-flag bits, method-handle tags,
// array-type codes and stack-map-frame element kinds. Adapted from
// asm/opcodes, asm/constants and asm/symbol, extended with an
// opcode -> visitor-method category table that none of those had.
package opcodes

// Java class-file major.minor versions, minor in the high 16 bits.
const (
	V1_1 = 3<<16 | 45
	V1_2 = 0<<16 | 46
	V1_3 = 0<<16 | 47
	V1_4 = 0<<16 | 48
	V1_5 = 0<<16 | 49
	V1_6 = 0<<16 | 50
	V1_7 = 0<<16 | 51
	V1_8 = 0<<16 | 52
	V9   = 0<<16 | 53
	V10  = 0<<16 | 54
	V11  = 0<<16 | 55
	V17  = 0<<16 | 61
)

// Access flag bits. A single bit is reused for different meanings at
// different sites; admissible masks are validated per-site in package
// check, not here.
const (
	ACC_PUBLIC       = 0x0001
	ACC_PRIVATE      = 0x0002
	ACC_PROTECTED    = 0x0004
	ACC_STATIC       = 0x0008
	ACC_FINAL        = 0x0010
	ACC_SUPER        = 0x0020
	ACC_SYNCHRONIZED = 0x0020
	ACC_OPEN         = 0x0020
	ACC_TRANSITIVE   = 0x0020
	ACC_VOLATILE     = 0x0040
	ACC_BRIDGE       = 0x0040
	ACC_STATIC_PHASE = 0x0040
	ACC_VARARGS      = 0x0080
	ACC_TRANSIENT    = 0x0080
	ACC_NATIVE       = 0x0100
	ACC_INTERFACE    = 0x0200
	ACC_ABSTRACT     = 0x0400
	ACC_STRICT       = 0x0800
	ACC_SYNTHETIC    = 0x1000
	ACC_ANNOTATION   = 0x2000
	ACC_ENUM         = 0x4000
	ACC_MANDATED     = 0x8000
	ACC_MODULE       = 0x8000
	ACC_RECORD       = 0x10000
	ACC_DEPRECATED   = 0x20000

	// AccConstructor is an ASM/checker-internal pseudo access flag (never
	// present in a class file) used to mark a method as an instance
	// initializer without re-deriving it from the name every time.
	AccConstructor = 0x40000
)

// Array-type codes for NEWARRAY.
const (
	T_BOOLEAN = 4
	T_CHAR    = 5
	T_FLOAT   = 6
	T_DOUBLE  = 7
	T_BYTE    = 8
	T_SHORT   = 9
	T_INT     = 10
	T_LONG    = 11
)

// IsArrayTypeCode reports whether operand is a valid NEWARRAY type code.
func IsArrayTypeCode(operand int) bool {
	return operand >= T_BOOLEAN && operand <= T_LONG
}

// Constant-pool entry tags, adapted from asm/symbol.
const (
	CONSTANT_UTF8_TAG                = 1
	CONSTANT_INTEGER_TAG             = 3
	CONSTANT_FLOAT_TAG               = 4
	CONSTANT_LONG_TAG                = 5
	CONSTANT_DOUBLE_TAG              = 6
	CONSTANT_CLASS_TAG               = 7
	CONSTANT_STRING_TAG              = 8
	CONSTANT_FIELDREF_TAG            = 9
	CONSTANT_METHODREF_TAG           = 10
	CONSTANT_INTERFACE_METHODREF_TAG = 11
	CONSTANT_NAME_AND_TYPE_TAG       = 12
	CONSTANT_METHOD_HANDLE_TAG       = 15
	CONSTANT_METHOD_TYPE_TAG         = 16
	CONSTANT_DYNAMIC_TAG             = 17
	CONSTANT_INVOKE_DYNAMIC_TAG      = 18
	CONSTANT_MODULE_TAG              = 19
	CONSTANT_PACKAGE_TAG             = 20
)

// Method-handle reference kinds (tag field of CONSTANT_MethodHandle_info).
const (
	H_GETFIELD         = 1
	H_GETSTATIC        = 2
	H_PUTFIELD         = 3
	H_PUTSTATIC        = 4
	H_INVOKEVIRTUAL    = 5
	H_INVOKESTATIC     = 6
	H_INVOKESPECIAL    = 7
	H_NEWINVOKESPECIAL = 8
	H_INVOKEINTERFACE  = 9
)

// IsValidHandleTag reports whether tag is one of the nine defined kinds.
func IsValidHandleTag(tag int) bool {
	return tag >= H_GETFIELD && tag <= H_INVOKEINTERFACE
}

// IsValidBootstrapHandleTag reports whether tag may appear as the bootstrap
// handle of an invokedynamic or a constant-dynamic: only the two kinds that
// invoke a static context are legal there.
func IsValidBootstrapHandleTag(tag int) bool {
	return tag == H_INVOKESTATIC || tag == H_NEWINVOKESPECIAL
}

// Stack-map frame types, as passed to MethodVisitor.VisitFrame.
const (
	F_NEW    = -1
	F_FULL   = 0
	F_APPEND = 1
	F_CHOP   = 2
	F_SAME   = 3
	F_SAME1  = 4
)

// Frame element ordinals (the primitive-kind members of the frame-element
// sum type; TOP..UNINITIALIZED_THIS below).
const (
	TOP                = 0
	INTEGER            = 1
	FLOAT              = 2
	DOUBLE             = 3
	LONG               = 4
	NULL               = 5
	UNINITIALIZED_THIS = 6
)

// Opcode ordinals 0..201, as used by *Insn visitor methods.
const (
	NOP             = 0
	ACONST_NULL     = 1
	ICONST_M1       = 2
	ICONST_0        = 3
	ICONST_1        = 4
	ICONST_2        = 5
	ICONST_3        = 6
	ICONST_4        = 7
	ICONST_5        = 8
	LCONST_0        = 9
	LCONST_1        = 10
	FCONST_0        = 11
	FCONST_1        = 12
	FCONST_2        = 13
	DCONST_0        = 14
	DCONST_1        = 15
	BIPUSH          = 16
	SIPUSH          = 17
	LDC             = 18
	LDC_W           = 19
	LDC2_W          = 20
	ILOAD           = 21
	LLOAD           = 22
	FLOAD           = 23
	DLOAD           = 24
	ALOAD           = 25
	ILOAD_0         = 26
	ILOAD_1         = 27
	ILOAD_2         = 28
	ILOAD_3         = 29
	LLOAD_0         = 30
	LLOAD_1         = 31
	LLOAD_2         = 32
	LLOAD_3         = 33
	FLOAD_0         = 34
	FLOAD_1         = 35
	FLOAD_2         = 36
	FLOAD_3         = 37
	DLOAD_0         = 38
	DLOAD_1         = 39
	DLOAD_2         = 40
	DLOAD_3         = 41
	ALOAD_0         = 42
	ALOAD_1         = 43
	ALOAD_2         = 44
	ALOAD_3         = 45
	IALOAD          = 46
	LALOAD          = 47
	FALOAD          = 48
	DALOAD          = 49
	AALOAD          = 50
	BALOAD          = 51
	CALOAD          = 52
	SALOAD          = 53
	ISTORE          = 54
	LSTORE          = 55
	FSTORE          = 56
	DSTORE          = 57
	ASTORE          = 58
	ISTORE_0        = 59
	ISTORE_1        = 60
	ISTORE_2        = 61
	ISTORE_3        = 62
	LSTORE_0        = 63
	LSTORE_1        = 64
	LSTORE_2        = 65
	LSTORE_3        = 66
	FSTORE_0        = 67
	FSTORE_1        = 68
	FSTORE_2        = 69
	FSTORE_3        = 70
	DSTORE_0        = 71
	DSTORE_1        = 72
	DSTORE_2        = 73
	DSTORE_3        = 74
	ASTORE_0        = 75
	ASTORE_1        = 76
	ASTORE_2        = 77
	ASTORE_3        = 78
	IASTORE         = 79
	LASTORE         = 80
	FASTORE         = 81
	DASTORE         = 82
	AASTORE         = 83
	BASTORE         = 84
	CASTORE         = 85
	SASTORE         = 86
	POP             = 87
	POP2            = 88
	DUP             = 89
	DUP_X1          = 90
	DUP_X2          = 91
	DUP2            = 92
	DUP2_X1         = 93
	DUP2_X2         = 94
	SWAP            = 95
	IADD            = 96
	LADD            = 97
	FADD            = 98
	DADD            = 99
	ISUB            = 100
	LSUB            = 101
	FSUB            = 102
	DSUB            = 103
	IMUL            = 104
	LMUL            = 105
	FMUL            = 106
	DMUL            = 107
	IDIV            = 108
	LDIV            = 109
	FDIV            = 110
	DDIV            = 111
	IREM            = 112
	LREM            = 113
	FREM            = 114
	DREM            = 115
	INEG            = 116
	LNEG            = 117
	FNEG            = 118
	DNEG            = 119
	ISHL            = 120
	LSHL            = 121
	ISHR            = 122
	LSHR            = 123
	IUSHR           = 124
	LUSHR           = 125
	IAND            = 126
	LAND            = 127
	IOR             = 128
	LOR             = 129
	IXOR            = 130
	LXOR            = 131
	IINC            = 132
	I2L             = 133
	I2F             = 134
	I2D             = 135
	L2I             = 136
	L2F             = 137
	L2D             = 138
	F2I             = 139
	F2L             = 140
	F2D             = 141
	D2I             = 142
	D2L             = 143
	D2F             = 144
	I2B             = 145
	I2C             = 146
	I2S             = 147
	LCMP            = 148
	FCMPL           = 149
	FCMPG           = 150
	DCMPL           = 151
	DCMPG           = 152
	IFEQ            = 153
	IFNE            = 154
	IFLT            = 155
	IFGE            = 156
	IFGT            = 157
	IFLE            = 158
	IF_ICMPEQ       = 159
	IF_ICMPNE       = 160
	IF_ICMPLT       = 161
	IF_ICMPGE       = 162
	IF_ICMPGT       = 163
	IF_ICMPLE       = 164
	IF_ACMPEQ       = 165
	IF_ACMPNE       = 166
	GOTO            = 167
	JSR             = 168
	RET             = 169
	TABLESWITCH     = 170
	LOOKUPSWITCH    = 171
	IRETURN         = 172
	LRETURN         = 173
	FRETURN         = 174
	DRETURN         = 175
	ARETURN         = 176
	RETURN          = 177
	GETSTATIC       = 178
	PUTSTATIC       = 179
	GETFIELD        = 180
	PUTFIELD        = 181
	INVOKEVIRTUAL   = 182
	INVOKESPECIAL   = 183
	INVOKESTATIC    = 184
	INVOKEINTERFACE = 185
	INVOKEDYNAMIC   = 186
	NEW             = 187
	NEWARRAY        = 188
	ANEWARRAY       = 189
	ARRAYLENGTH     = 190
	ATHROW          = 191
	CHECKCAST       = 192
	INSTANCEOF      = 193
	MONITORENTER    = 194
	MONITOREXIT     = 195
	WIDE            = 196
	MULTIANEWARRAY  = 197
	IFNULL          = 198
	IFNONNULL       = 199
	GOTO_W          = 200
	JSR_W           = 201
)

// NumOpcodes is the number of defined opcode ordinals (0..201 inclusive).
const NumOpcodes = 202

// Category names the generic visitor method an opcode must be passed to.
type Category int

const (
	// CategoryNone marks ordinals that are not valid arguments to any
	// visitor method: bytecode-internal quick forms the writer alone
	// chooses when encoding (ILOAD_0, GOTO_W, WIDE, ...), never exposed
	// to visitors.
	CategoryNone Category = iota
	CategoryInsn
	CategoryIntInsn
	CategoryVarInsn
	CategoryTypeInsn
	CategoryFieldInsn
	CategoryMethodInsn
	CategoryInvokeDynamicInsn
	CategoryJumpInsn
	CategoryLdcInsn
	CategoryIincInsn
	CategoryTableSwitchInsn
	CategoryLookupSwitchInsn
	CategoryMultiANewArrayInsn
)

func (c Category) String() string {
	switch c {
	case CategoryInsn:
		return "InsnVisitor"
	case CategoryIntInsn:
		return "IntInsnVisitor"
	case CategoryVarInsn:
		return "VarInsnVisitor"
	case CategoryTypeInsn:
		return "TypeInsnVisitor"
	case CategoryFieldInsn:
		return "FieldInsnVisitor"
	case CategoryMethodInsn:
		return "MethodInsnVisitor"
	case CategoryInvokeDynamicInsn:
		return "InvokeDynamicInsnVisitor"
	case CategoryJumpInsn:
		return "JumpInsnVisitor"
	case CategoryLdcInsn:
		return "LdcInsnVisitor"
	case CategoryIincInsn:
		return "IincInsnVisitor"
	case CategoryTableSwitchInsn:
		return "TableSwitchInsnVisitor"
	case CategoryLookupSwitchInsn:
		return "LookupSwitchInsnVisitor"
	case CategoryMultiANewArrayInsn:
		return "MultiANewArrayInsnVisitor"
	default:
		return "none"
	}
}

// opcodeCategory maps each of the ~200 opcodes to the one generic visit
// method it may be passed to (VisitInsn, VisitIntInsn, VisitVarInsn,
// VisitTypeInsn, VisitFieldInsn, VisitMethodInsn, VisitJumpInsn, plus
// ldc/iinc/switch/invokedynamic/multianewarray).
var opcodeCategory = [NumOpcodes]Category{
	NOP: CategoryInsn, ACONST_NULL: CategoryInsn,
	ICONST_M1: CategoryInsn, ICONST_0: CategoryInsn, ICONST_1: CategoryInsn,
	ICONST_2: CategoryInsn, ICONST_3: CategoryInsn, ICONST_4: CategoryInsn, ICONST_5: CategoryInsn,
	LCONST_0: CategoryInsn, LCONST_1: CategoryInsn,
	FCONST_0: CategoryInsn, FCONST_1: CategoryInsn, FCONST_2: CategoryInsn,
	DCONST_0: CategoryInsn, DCONST_1: CategoryInsn,
	BIPUSH: CategoryIntInsn, SIPUSH: CategoryIntInsn,
	LDC:   CategoryLdcInsn,
	LDC_W: CategoryNone, LDC2_W: CategoryNone,
	ILOAD: CategoryVarInsn, LLOAD: CategoryVarInsn, FLOAD: CategoryVarInsn, DLOAD: CategoryVarInsn, ALOAD: CategoryVarInsn,
	ILOAD_0: CategoryNone, ILOAD_1: CategoryNone, ILOAD_2: CategoryNone, ILOAD_3: CategoryNone,
	LLOAD_0: CategoryNone, LLOAD_1: CategoryNone, LLOAD_2: CategoryNone, LLOAD_3: CategoryNone,
	FLOAD_0: CategoryNone, FLOAD_1: CategoryNone, FLOAD_2: CategoryNone, FLOAD_3: CategoryNone,
	DLOAD_0: CategoryNone, DLOAD_1: CategoryNone, DLOAD_2: CategoryNone, DLOAD_3: CategoryNone,
	ALOAD_0: CategoryNone, ALOAD_1: CategoryNone, ALOAD_2: CategoryNone, ALOAD_3: CategoryNone,
	IALOAD: CategoryInsn, LALOAD: CategoryInsn, FALOAD: CategoryInsn, DALOAD: CategoryInsn,
	AALOAD: CategoryInsn, BALOAD: CategoryInsn, CALOAD: CategoryInsn, SALOAD: CategoryInsn,
	ISTORE: CategoryVarInsn, LSTORE: CategoryVarInsn, FSTORE: CategoryVarInsn, DSTORE: CategoryVarInsn, ASTORE: CategoryVarInsn,
	ISTORE_0: CategoryNone, ISTORE_1: CategoryNone, ISTORE_2: CategoryNone, ISTORE_3: CategoryNone,
	LSTORE_0: CategoryNone, LSTORE_1: CategoryNone, LSTORE_2: CategoryNone, LSTORE_3: CategoryNone,
	FSTORE_0: CategoryNone, FSTORE_1: CategoryNone, FSTORE_2: CategoryNone, FSTORE_3: CategoryNone,
	DSTORE_0: CategoryNone, DSTORE_1: CategoryNone, DSTORE_2: CategoryNone, DSTORE_3: CategoryNone,
	ASTORE_0: CategoryNone, ASTORE_1: CategoryNone, ASTORE_2: CategoryNone, ASTORE_3: CategoryNone,
	IASTORE: CategoryInsn, LASTORE: CategoryInsn, FASTORE: CategoryInsn, DASTORE: CategoryInsn,
	AASTORE: CategoryInsn, BASTORE: CategoryInsn, CASTORE: CategoryInsn, SASTORE: CategoryInsn,
	POP: CategoryInsn, POP2: CategoryInsn,
	DUP: CategoryInsn, DUP_X1: CategoryInsn, DUP_X2: CategoryInsn,
	DUP2: CategoryInsn, DUP2_X1: CategoryInsn, DUP2_X2: CategoryInsn, SWAP: CategoryInsn,
	IADD: CategoryInsn, LADD: CategoryInsn, FADD: CategoryInsn, DADD: CategoryInsn,
	ISUB: CategoryInsn, LSUB: CategoryInsn, FSUB: CategoryInsn, DSUB: CategoryInsn,
	IMUL: CategoryInsn, LMUL: CategoryInsn, FMUL: CategoryInsn, DMUL: CategoryInsn,
	IDIV: CategoryInsn, LDIV: CategoryInsn, FDIV: CategoryInsn, DDIV: CategoryInsn,
	IREM: CategoryInsn, LREM: CategoryInsn, FREM: CategoryInsn, DREM: CategoryInsn,
	INEG: CategoryInsn, LNEG: CategoryInsn, FNEG: CategoryInsn, DNEG: CategoryInsn,
	ISHL: CategoryInsn, LSHL: CategoryInsn, ISHR: CategoryInsn, LSHR: CategoryInsn,
	IUSHR: CategoryInsn, LUSHR: CategoryInsn,
	IAND: CategoryInsn, LAND: CategoryInsn, IOR: CategoryInsn, LOR: CategoryInsn, IXOR: CategoryInsn, LXOR: CategoryInsn,
	IINC: CategoryIincInsn,
	I2L:  CategoryInsn, I2F: CategoryInsn, I2D: CategoryInsn,
	L2I: CategoryInsn, L2F: CategoryInsn, L2D: CategoryInsn,
	F2I: CategoryInsn, F2L: CategoryInsn, F2D: CategoryInsn,
	D2I: CategoryInsn, D2L: CategoryInsn, D2F: CategoryInsn,
	I2B: CategoryInsn, I2C: CategoryInsn, I2S: CategoryInsn,
	LCMP: CategoryInsn, FCMPL: CategoryInsn, FCMPG: CategoryInsn, DCMPL: CategoryInsn, DCMPG: CategoryInsn,
	IFEQ: CategoryJumpInsn, IFNE: CategoryJumpInsn, IFLT: CategoryJumpInsn, IFGE: CategoryJumpInsn,
	IFGT: CategoryJumpInsn, IFLE: CategoryJumpInsn,
	IF_ICMPEQ: CategoryJumpInsn, IF_ICMPNE: CategoryJumpInsn, IF_ICMPLT: CategoryJumpInsn,
	IF_ICMPGE: CategoryJumpInsn, IF_ICMPGT: CategoryJumpInsn, IF_ICMPLE: CategoryJumpInsn,
	IF_ACMPEQ: CategoryJumpInsn, IF_ACMPNE: CategoryJumpInsn,
	GOTO: CategoryJumpInsn, JSR: CategoryJumpInsn,
	RET:          CategoryVarInsn,
	TABLESWITCH:  CategoryTableSwitchInsn,
	LOOKUPSWITCH: CategoryLookupSwitchInsn,
	IRETURN:      CategoryInsn, LRETURN: CategoryInsn, FRETURN: CategoryInsn, DRETURN: CategoryInsn,
	ARETURN: CategoryInsn, RETURN: CategoryInsn,
	GETSTATIC: CategoryFieldInsn, PUTSTATIC: CategoryFieldInsn,
	GETFIELD: CategoryFieldInsn, PUTFIELD: CategoryFieldInsn,
	INVOKEVIRTUAL: CategoryMethodInsn, INVOKESPECIAL: CategoryMethodInsn,
	INVOKESTATIC: CategoryMethodInsn, INVOKEINTERFACE: CategoryMethodInsn,
	INVOKEDYNAMIC: CategoryInvokeDynamicInsn,
	NEW:           CategoryTypeInsn,
	NEWARRAY:      CategoryIntInsn,
	ANEWARRAY:     CategoryTypeInsn,
	ARRAYLENGTH:   CategoryInsn,
	ATHROW:        CategoryInsn,
	CHECKCAST:     CategoryTypeInsn,
	INSTANCEOF:    CategoryTypeInsn,
	MONITORENTER:  CategoryInsn, MONITOREXIT: CategoryInsn,
	WIDE:           CategoryNone,
	MULTIANEWARRAY: CategoryMultiANewArrayInsn,
	IFNULL:         CategoryJumpInsn, IFNONNULL: CategoryJumpInsn,
	GOTO_W: CategoryNone, JSR_W: CategoryNone,
}

// CategoryOf returns the generic visitor-method category for opcode, or
// CategoryNone if opcode is out of range or internal-only.
func CategoryOf(opcode int) Category {
	if opcode < 0 || opcode >= NumOpcodes {
		return CategoryNone
	}
	return opcodeCategory[opcode]
}

var opcodeNames = [NumOpcodes]string{
	NOP: "NOP", ACONST_NULL: "ACONST_NULL", ICONST_M1: "ICONST_M1", ICONST_0: "ICONST_0",
	ICONST_1: "ICONST_1", ICONST_2: "ICONST_2", ICONST_3: "ICONST_3", ICONST_4: "ICONST_4",
	ICONST_5: "ICONST_5", LCONST_0: "LCONST_0", LCONST_1: "LCONST_1", FCONST_0: "FCONST_0",
	FCONST_1: "FCONST_1", FCONST_2: "FCONST_2", DCONST_0: "DCONST_0", DCONST_1: "DCONST_1",
	BIPUSH: "BIPUSH", SIPUSH: "SIPUSH", LDC: "LDC", ILOAD: "ILOAD", LLOAD: "LLOAD", FLOAD: "FLOAD",
	DLOAD: "DLOAD", ALOAD: "ALOAD", IALOAD: "IALOAD", LALOAD: "LALOAD", FALOAD: "FALOAD",
	DALOAD: "DALOAD", AALOAD: "AALOAD", BALOAD: "BALOAD", CALOAD: "CALOAD", SALOAD: "SALOAD",
	ISTORE: "ISTORE", LSTORE: "LSTORE", FSTORE: "FSTORE", DSTORE: "DSTORE", ASTORE: "ASTORE",
	IASTORE: "IASTORE", LASTORE: "LASTORE", FASTORE: "FASTORE", DASTORE: "DASTORE",
	AASTORE: "AASTORE", BASTORE: "BASTORE", CASTORE: "CASTORE", SASTORE: "SASTORE",
	POP: "POP", POP2: "POP2", DUP: "DUP", DUP_X1: "DUP_X1", DUP_X2: "DUP_X2", DUP2: "DUP2",
	DUP2_X1: "DUP2_X1", DUP2_X2: "DUP2_X2", SWAP: "SWAP",
	IADD: "IADD", LADD: "LADD", FADD: "FADD", DADD: "DADD",
	ISUB: "ISUB", LSUB: "LSUB", FSUB: "FSUB", DSUB: "DSUB",
	IMUL: "IMUL", LMUL: "LMUL", FMUL: "FMUL", DMUL: "DMUL",
	IDIV: "IDIV", LDIV: "LDIV", FDIV: "FDIV", DDIV: "DDIV",
	IREM: "IREM", LREM: "LREM", FREM: "FREM", DREM: "DREM",
	INEG: "INEG", LNEG: "LNEG", FNEG: "FNEG", DNEG: "DNEG",
	ISHL: "ISHL", LSHL: "LSHL", ISHR: "ISHR", LSHR: "LSHR", IUSHR: "IUSHR", LUSHR: "LUSHR",
	IAND: "IAND", LAND: "LAND", IOR: "IOR", LOR: "LOR", IXOR: "IXOR", LXOR: "LXOR",
	IINC: "IINC", I2L: "I2L", I2F: "I2F", I2D: "I2D", L2I: "L2I", L2F: "L2F", L2D: "L2D",
	F2I: "F2I", F2L: "F2L", F2D: "F2D", D2I: "D2I", D2L: "D2L", D2F: "D2F",
	I2B: "I2B", I2C: "I2C", I2S: "I2S",
	LCMP: "LCMP", FCMPL: "FCMPL", FCMPG: "FCMPG", DCMPL: "DCMPL", DCMPG: "DCMPG",
	IFEQ: "IFEQ", IFNE: "IFNE", IFLT: "IFLT", IFGE: "IFGE", IFGT: "IFGT", IFLE: "IFLE",
	IF_ICMPEQ: "IF_ICMPEQ", IF_ICMPNE: "IF_ICMPNE", IF_ICMPLT: "IF_ICMPLT", IF_ICMPGE: "IF_ICMPGE",
	IF_ICMPGT: "IF_ICMPGT", IF_ICMPLE: "IF_ICMPLE", IF_ACMPEQ: "IF_ACMPEQ", IF_ACMPNE: "IF_ACMPNE",
	GOTO: "GOTO", JSR: "JSR", RET: "RET", TABLESWITCH: "TABLESWITCH", LOOKUPSWITCH: "LOOKUPSWITCH",
	IRETURN: "IRETURN", LRETURN: "LRETURN", FRETURN: "FRETURN", DRETURN: "DRETURN",
	ARETURN: "ARETURN", RETURN: "RETURN",
	GETSTATIC: "GETSTATIC", PUTSTATIC: "PUTSTATIC", GETFIELD: "GETFIELD", PUTFIELD: "PUTFIELD",
	INVOKEVIRTUAL: "INVOKEVIRTUAL", INVOKESPECIAL: "INVOKESPECIAL", INVOKESTATIC: "INVOKESTATIC",
	INVOKEINTERFACE: "INVOKEINTERFACE", INVOKEDYNAMIC: "INVOKEDYNAMIC",
	NEW: "NEW", NEWARRAY: "NEWARRAY", ANEWARRAY: "ANEWARRAY", ARRAYLENGTH: "ARRAYLENGTH",
	ATHROW: "ATHROW", CHECKCAST: "CHECKCAST", INSTANCEOF: "INSTANCEOF",
	MONITORENTER: "MONITORENTER", MONITOREXIT: "MONITOREXIT",
	MULTIANEWARRAY: "MULTIANEWARRAY", IFNULL: "IFNULL", IFNONNULL: "IFNONNULL",
}

// NameOf returns the mnemonic for opcode, or "" if unknown/internal-only.
func NameOf(opcode int) string {
	if opcode < 0 || opcode >= NumOpcodes {
		return ""
	}
	return opcodeNames[opcode]
}
