package check

import (
	"github.com/nacpt/gasm"
	"github.com/nacpt/gasm/dataflow"
	"github.com/nacpt/gasm/descgrammar"
	"github.com/nacpt/gasm/opcodes"
)

// TypeResolver is re-exported from package dataflow so callers configuring
// a MethodChecker don't need to import dataflow directly for this one type.
type TypeResolver = dataflow.TypeResolver

// MethodCheckerOptions configures a MethodChecker.
type MethodCheckerOptions struct {
	ClassVersion int
	IsInterface  bool
	Dataflow     bool
	TypeResolver TypeResolver

	// Owner, Name, Descriptor and IsStatic identify the method being
	// checked; they feed dataflow.Method when Dataflow is enabled so the
	// interpreter can derive the initial local-variable frame.
	Owner      string
	Name       string
	Descriptor string
	IsStatic   bool
}

type tryCatchHandler struct {
	start, end, handler *gasm.Label
	typ                 string
}

// MethodChecker validates one method's event stream: per-instruction
// argument checks by opcode category, label bookkeeping (definition,
// reference, try-catch ordering), stack-map frame shape, and — if enabled
// — hands the buffered method to a dataflow.Verifier on VisitMaxs.
type MethodChecker struct {
	delegate gasm.MethodVisitor
	opts     MethodCheckerOptions
	labels   *labelIndex

	codeCalled bool
	maxsCalled bool
	endCalled  bool

	insnCount           int
	lastFrameInsnIndex  int
	numExpandedFrames   int
	numCompressedFrames int

	visibleAnnotableParamCount   int
	hasVisibleAnnotableCount     bool
	invisibleAnnotableParamCount int
	hasInvisibleAnnotableCount   bool

	referencedLabels map[*gasm.Label]bool
	labelInsnIndices map[*gasm.Label]int
	handlers         []tryCatchHandler

	buffer *dataflow.Method
}

func NewMethodChecker(delegate gasm.MethodVisitor, opts MethodCheckerOptions, labels *labelIndex) *MethodChecker {
	return &MethodChecker{
		delegate:           delegate,
		opts:               opts,
		labels:             labels,
		lastFrameInsnIndex: -1,
		referencedLabels:   make(map[*gasm.Label]bool),
		labelInsnIndices:   make(map[*gasm.Label]int),
	}
}

const mtCtx = "MethodChecker"

func (m *MethodChecker) requireInCode(method string) {
	if !m.codeCalled {
		panic(stateErr(mtCtx+"."+method, "called before VisitCode"))
	}
	if m.maxsCalled {
		panic(stateErr(mtCtx+"."+method, "called after VisitMaxs"))
	}
}

func (m *MethodChecker) requireNotEnded(method string) {
	if m.endCalled {
		panic(stateErr(mtCtx+"."+method, "called after VisitEnd"))
	}
}

func (m *MethodChecker) VisitParameter(name string, access int) {
	m.requireNotEnded("VisitParameter")
	if m.codeCalled {
		panic(stateErr(mtCtx+".VisitParameter", "must be called before VisitCode"))
	}
	if err := checkAccess(mtCtx+".VisitParameter", access, parameterMask); err != nil {
		panic(err)
	}
	if m.delegate != nil {
		m.delegate.VisitParameter(name, access)
	}
}

func (m *MethodChecker) VisitAnnotationDefault() gasm.AnnotationVisitor {
	m.requireNotEnded("VisitAnnotationDefault")
	var d gasm.AnnotationVisitor
	if m.delegate != nil {
		d = m.delegate.VisitAnnotationDefault()
	}
	return NewAnnotationChecker(d, false)
}

func (m *MethodChecker) VisitAnnotation(descriptor string, visible bool) gasm.AnnotationVisitor {
	m.requireNotEnded("VisitAnnotation")
	if err := wrapGrammarErr(mtCtx+".VisitAnnotation", descgrammar.ValidateFieldDescriptor(descriptor)); err != nil {
		panic(err)
	}
	var d gasm.AnnotationVisitor
	if m.delegate != nil {
		d = m.delegate.VisitAnnotation(descriptor, visible)
	}
	return NewAnnotationChecker(d, true)
}

func (m *MethodChecker) VisitTypeAnnotation(typeRef int, typePath *gasm.TypePath, descriptor string, visible bool) gasm.AnnotationVisitor {
	m.requireNotEnded("VisitTypeAnnotation")
	if err := wrapGrammarErr(mtCtx+".VisitTypeAnnotation", descgrammar.ValidateFieldDescriptor(descriptor)); err != nil {
		panic(err)
	}
	var d gasm.AnnotationVisitor
	if m.delegate != nil {
		d = m.delegate.VisitTypeAnnotation(typeRef, typePath, descriptor, visible)
	}
	return NewAnnotationChecker(d, true)
}

func (m *MethodChecker) VisitAnnotableParameterCount(parameterCount int, visible bool) {
	m.requireNotEnded("VisitAnnotableParameterCount")
	if parameterCount < 0 {
		panic(argErr(mtCtx+".VisitAnnotableParameterCount", "parameter count must be >= 0, got %d", parameterCount))
	}
	if visible {
		m.visibleAnnotableParamCount = parameterCount
		m.hasVisibleAnnotableCount = true
	} else {
		m.invisibleAnnotableParamCount = parameterCount
		m.hasInvisibleAnnotableCount = true
	}
	if m.delegate != nil {
		m.delegate.VisitAnnotableParameterCount(parameterCount, visible)
	}
}

func (m *MethodChecker) VisitParameterAnnotation(parameter int, descriptor string, visible bool) gasm.AnnotationVisitor {
	m.requireNotEnded("VisitParameterAnnotation")
	count := -1
	has := false
	if visible {
		count, has = m.visibleAnnotableParamCount, m.hasVisibleAnnotableCount
	} else {
		count, has = m.invisibleAnnotableParamCount, m.hasInvisibleAnnotableCount
	}
	if has && parameter >= count {
		panic(argErr(mtCtx+".VisitParameterAnnotation", "parameter index %d must be < annotable parameter count %d", parameter, count))
	}
	if err := wrapGrammarErr(mtCtx+".VisitParameterAnnotation", descgrammar.ValidateFieldDescriptor(descriptor)); err != nil {
		panic(err)
	}
	var d gasm.AnnotationVisitor
	if m.delegate != nil {
		d = m.delegate.VisitParameterAnnotation(parameter, descriptor, visible)
	}
	return NewAnnotationChecker(d, true)
}

func (m *MethodChecker) VisitAttribute(attribute *gasm.Attribute) {
	m.requireNotEnded("VisitAttribute")
	if m.delegate != nil {
		m.delegate.VisitAttribute(attribute)
	}
}

func (m *MethodChecker) VisitCode() {
	m.requireNotEnded("VisitCode")
	if m.codeCalled {
		panic(stateErr(mtCtx+".VisitCode", "code already visited"))
	}
	m.codeCalled = true
	if m.opts.Dataflow {
		m.buffer = &dataflow.Method{
			Owner:      m.opts.Owner,
			Name:       m.opts.Name,
			Descriptor: m.opts.Descriptor,
			IsStatic:   m.opts.IsStatic,
		}
	}
	if m.delegate != nil {
		m.delegate.VisitCode()
	}
}

func (m *MethodChecker) VisitFrame(frameType, numLocal int, local []interface{}, numStack int, stack []interface{}) {
	m.requireInCode("VisitFrame")
	if m.lastFrameInsnIndex == m.insnCount {
		panic(stateErr(mtCtx+".VisitFrame", "at most one frame per instruction index"))
	}
	switch frameType {
	case opcodes.F_SAME:
		if numLocal != 0 || numStack != 0 {
			panic(argErr(mtCtx+".VisitFrame", "F_SAME takes no locals or stack"))
		}
	case opcodes.F_SAME1:
		if numLocal != 0 || numStack > 1 {
			panic(argErr(mtCtx+".VisitFrame", "F_SAME1 takes 0 locals and at most 1 stack value"))
		}
	case opcodes.F_APPEND:
		if numLocal > 3 || numStack != 0 {
			panic(argErr(mtCtx+".VisitFrame", "F_APPEND takes at most 3 locals and no stack"))
		}
	case opcodes.F_CHOP:
		if numLocal > 3 || numStack != 0 {
			panic(argErr(mtCtx+".VisitFrame", "F_CHOP takes at most 3 locals and no stack"))
		}
	case opcodes.F_FULL, opcodes.F_NEW:
	default:
		panic(argErr(mtCtx+".VisitFrame", "unknown frame type %d", frameType))
	}
	isExpanded := frameType == opcodes.F_NEW
	if isExpanded {
		if m.numCompressedFrames > 0 {
			panic(stateErr(mtCtx+".VisitFrame", "expanded and compressed frame types must not be mixed within a method"))
		}
		m.numExpandedFrames++
	} else {
		if m.numExpandedFrames > 0 {
			panic(stateErr(mtCtx+".VisitFrame", "expanded and compressed frame types must not be mixed within a method"))
		}
		m.numCompressedFrames++
	}
	for _, e := range local {
		validateFrameElement(e)
	}
	for _, e := range stack {
		validateFrameElement(e)
	}
	m.lastFrameInsnIndex = m.insnCount
	if m.delegate != nil {
		m.delegate.VisitFrame(frameType, numLocal, local, numStack, stack)
	}
}

func validateFrameElement(e interface{}) {
	switch v := e.(type) {
	case int:
		if v < opcodes.TOP || v > opcodes.UNINITIALIZED_THIS {
			panic(argErr(mtCtx+".VisitFrame", "frame element ordinal %d out of range", v))
		}
	case string, *gasm.Label:
		_ = v
	default:
		panic(argErr(mtCtx+".VisitFrame", "frame element of type %T is not a valid frame-element sum-type member", v))
	}
}

func (m *MethodChecker) VisitInsn(opcode int) {
	m.requireInCode("VisitInsn")
	if opcodes.CategoryOf(opcode) != opcodes.CategoryInsn {
		panic(argErr(mtCtx+".VisitInsn", "opcode %s is not a VisitInsn opcode", opcodes.NameOf(opcode)))
	}
	if m.opts.Dataflow {
		m.buffer.Insns = append(m.buffer.Insns, dataflow.Insn{Opcode: opcode})
	}
	m.insnCount++
	if m.delegate != nil {
		m.delegate.VisitInsn(opcode)
	}
}

func (m *MethodChecker) VisitIntInsn(opcode, operand int) {
	m.requireInCode("VisitIntInsn")
	if opcodes.CategoryOf(opcode) != opcodes.CategoryIntInsn {
		panic(argErr(mtCtx+".VisitIntInsn", "opcode %s is not a VisitIntInsn opcode", opcodes.NameOf(opcode)))
	}
	switch opcode {
	case opcodes.BIPUSH:
		if operand < -128 || operand > 127 {
			panic(argErr(mtCtx+".VisitIntInsn", "bipush operand %d out of signed 8-bit range", operand))
		}
	case opcodes.SIPUSH:
		if operand < -32768 || operand > 32767 {
			panic(argErr(mtCtx+".VisitIntInsn", "sipush operand %d out of signed 16-bit range", operand))
		}
	case opcodes.NEWARRAY:
		if !opcodes.IsArrayTypeCode(operand) {
			panic(argErr(mtCtx+".VisitIntInsn", "newarray operand %d is not a valid array type code", operand))
		}
	}
	if m.opts.Dataflow {
		m.buffer.Insns = append(m.buffer.Insns, dataflow.Insn{Opcode: opcode, Operand: operand})
	}
	m.insnCount++
	if m.delegate != nil {
		m.delegate.VisitIntInsn(opcode, operand)
	}
}

func (m *MethodChecker) VisitVarInsn(opcode, varIndex int) {
	m.requireInCode("VisitVarInsn")
	if opcodes.CategoryOf(opcode) != opcodes.CategoryVarInsn {
		panic(argErr(mtCtx+".VisitVarInsn", "opcode %s is not a VisitVarInsn opcode", opcodes.NameOf(opcode)))
	}
	if varIndex < 0 || varIndex > 0xFFFF {
		panic(argErr(mtCtx+".VisitVarInsn", "var index %d is not an unsigned 16-bit value", varIndex))
	}
	if m.opts.Dataflow {
		m.buffer.Insns = append(m.buffer.Insns, dataflow.Insn{Opcode: opcode, Operand: varIndex})
	}
	m.insnCount++
	if m.delegate != nil {
		m.delegate.VisitVarInsn(opcode, varIndex)
	}
}

func (m *MethodChecker) VisitTypeInsn(opcode int, typ string) {
	m.requireInCode("VisitTypeInsn")
	if opcodes.CategoryOf(opcode) != opcodes.CategoryTypeInsn {
		panic(argErr(mtCtx+".VisitTypeInsn", "opcode %s is not a VisitTypeInsn opcode", opcodes.NameOf(opcode)))
	}
	if opcode == opcodes.NEW && len(typ) > 0 && typ[0] == '[' {
		panic(argErr(mtCtx+".VisitTypeInsn", "new's operand must not be an array type"))
	}
	if err := wrapGrammarErr(mtCtx+".VisitTypeInsn", validateTypeInsnOperand(typ)); err != nil {
		panic(err)
	}
	if m.opts.Dataflow {
		m.buffer.Insns = append(m.buffer.Insns, dataflow.Insn{Opcode: opcode, Name: typ})
	}
	m.insnCount++
	if m.delegate != nil {
		m.delegate.VisitTypeInsn(opcode, typ)
	}
}

func validateTypeInsnOperand(typ string) error {
	if len(typ) > 0 && typ[0] == '[' {
		return descgrammar.ValidateFieldDescriptor(typ)
	}
	return descgrammar.ValidateInternalName(typ)
}

func (m *MethodChecker) VisitFieldInsn(opcode int, owner, name, descriptor string) {
	m.requireInCode("VisitFieldInsn")
	if opcodes.CategoryOf(opcode) != opcodes.CategoryFieldInsn {
		panic(argErr(mtCtx+".VisitFieldInsn", "opcode %s is not a VisitFieldInsn opcode", opcodes.NameOf(opcode)))
	}
	if err := wrapGrammarErr(mtCtx+".VisitFieldInsn", descgrammar.ValidateInternalName(owner)); err != nil {
		panic(err)
	}
	if err := wrapGrammarErr(mtCtx+".VisitFieldInsn", descgrammar.ValidateUnqualifiedName(name, false)); err != nil {
		panic(err)
	}
	if err := wrapGrammarErr(mtCtx+".VisitFieldInsn", descgrammar.ValidateFieldDescriptor(descriptor)); err != nil {
		panic(err)
	}
	if m.opts.Dataflow {
		m.buffer.Insns = append(m.buffer.Insns, dataflow.Insn{Opcode: opcode, Owner: owner, Name: name, Descriptor: descriptor})
	}
	m.insnCount++
	if m.delegate != nil {
		m.delegate.VisitFieldInsn(opcode, owner, name, descriptor)
	}
}

func (m *MethodChecker) VisitMethodInsn(opcode int, owner, name, descriptor string, isInterface bool) {
	m.requireInCode("VisitMethodInsn")
	if opcodes.CategoryOf(opcode) != opcodes.CategoryMethodInsn {
		panic(argErr(mtCtx+".VisitMethodInsn", "opcode %s is not a VisitMethodInsn opcode", opcodes.NameOf(opcode)))
	}
	if err := wrapGrammarErr(mtCtx+".VisitMethodInsn", descgrammar.ValidateInternalName(owner)); err != nil {
		panic(err)
	}
	if err := wrapGrammarErr(mtCtx+".VisitMethodInsn", descgrammar.ValidateMethodName(name)); err != nil {
		panic(err)
	}
	if err := wrapGrammarErr(mtCtx+".VisitMethodInsn", descgrammar.ValidateMethodDescriptor(descriptor)); err != nil {
		panic(err)
	}
	switch opcode {
	case opcodes.INVOKEVIRTUAL:
		if isInterface {
			panic(argErr(mtCtx+".VisitMethodInsn", "INVOKEVIRTUAL can't be used with interfaces"))
		}
	case opcodes.INVOKEINTERFACE:
		if !isInterface {
			panic(argErr(mtCtx+".VisitMethodInsn", "INVOKEINTERFACE requires an interface owner"))
		}
	case opcodes.INVOKESPECIAL:
		if isInterface && m.opts.ClassVersion < opcodes.V1_8 {
			panic(argErr(mtCtx+".VisitMethodInsn", "INVOKESPECIAL on an interface requires class version >= 1.8"))
		}
	}
	if name == "<init>" && opcode != opcodes.INVOKESPECIAL {
		panic(argErr(mtCtx+".VisitMethodInsn", "<init> may only be invoked with INVOKESPECIAL"))
	}
	if m.opts.Dataflow {
		m.buffer.Insns = append(m.buffer.Insns, dataflow.Insn{
			Opcode: opcode, Owner: owner, Name: name, Descriptor: descriptor, IsInterface: isInterface,
		})
	}
	m.insnCount++
	if m.delegate != nil {
		m.delegate.VisitMethodInsn(opcode, owner, name, descriptor, isInterface)
	}
}

func (m *MethodChecker) VisitInvokeDynamicInsn(name, descriptor string, bootstrapMethodHandle gasm.Handle, bootstrapMethodArguments ...interface{}) {
	m.requireInCode("VisitInvokeDynamicInsn")
	if err := wrapGrammarErr(mtCtx+".VisitInvokeDynamicInsn", descgrammar.ValidateMethodName(name)); err != nil {
		panic(err)
	}
	if err := wrapGrammarErr(mtCtx+".VisitInvokeDynamicInsn", descgrammar.ValidateMethodDescriptor(descriptor)); err != nil {
		panic(err)
	}
	if !opcodes.IsValidBootstrapHandleTag(bootstrapMethodHandle.Tag) {
		panic(argErr(mtCtx+".VisitInvokeDynamicInsn", "bootstrap handle tag must be INVOKESTATIC or NEWINVOKESPECIAL"))
	}
	for _, arg := range bootstrapMethodArguments {
		validateBootstrapArgument(arg)
	}
	if m.opts.Dataflow {
		m.buffer.Insns = append(m.buffer.Insns, dataflow.Insn{Opcode: opcodes.INVOKEDYNAMIC, Name: name, Descriptor: descriptor})
	}
	m.insnCount++
	if m.delegate != nil {
		m.delegate.VisitInvokeDynamicInsn(name, descriptor, bootstrapMethodHandle, bootstrapMethodArguments...)
	}
}

func validateBootstrapArgument(arg interface{}) {
	switch v := arg.(type) {
	case int32, int64, float32, float64, string, gasm.Type, gasm.Handle:
		_ = v
	case gasm.ConstantDynamic:
		for _, nested := range v.BootstrapArgs {
			validateBootstrapArgument(nested)
		}
	default:
		panic(argErr(mtCtx+".VisitInvokeDynamicInsn", "bootstrap argument of type %T is not a permitted constant kind", arg))
	}
}

func (m *MethodChecker) VisitJumpInsn(opcode int, label *gasm.Label) {
	m.requireInCode("VisitJumpInsn")
	if opcodes.CategoryOf(opcode) != opcodes.CategoryJumpInsn {
		panic(argErr(mtCtx+".VisitJumpInsn", "opcode %s is not a VisitJumpInsn opcode", opcodes.NameOf(opcode)))
	}
	if label == nil {
		panic(argErr(mtCtx+".VisitJumpInsn", "jump target label must not be nil"))
	}
	m.referencedLabels[label] = true
	if m.opts.Dataflow {
		m.buffer.Insns = append(m.buffer.Insns, dataflow.Insn{Opcode: opcode, Label: label})
	}
	m.insnCount++
	if m.delegate != nil {
		m.delegate.VisitJumpInsn(opcode, label)
	}
}

func (m *MethodChecker) VisitLabel(label *gasm.Label) {
	m.requireInCode("VisitLabel")
	if label == nil {
		panic(argErr(mtCtx+".VisitLabel", "label must not be nil"))
	}
	if m.labels.isDefined(label) {
		panic(stateErr(mtCtx+".VisitLabel", "label already defined"))
	}
	m.labels.define(label)
	m.labelInsnIndices[label] = m.insnCount
	if m.delegate != nil {
		m.delegate.VisitLabel(label)
	}
}

func (m *MethodChecker) VisitLdcInsn(value interface{}) {
	m.requireInCode("VisitLdcInsn")
	switch v := value.(type) {
	case int32, float32, int64, float64, string:
		_ = v
	case gasm.Type:
		if v.Sort == gasm.SortMethod && m.opts.ClassVersion < opcodes.V1_7 {
			panic(configErr(mtCtx+".VisitLdcInsn", "MethodType constants require class version >= 1.7"))
		}
		if v.Sort != gasm.SortMethod && m.opts.ClassVersion < opcodes.V1_5 {
			panic(configErr(mtCtx+".VisitLdcInsn", "Class constants require class version >= 1.5"))
		}
	case gasm.Handle:
		if m.opts.ClassVersion < opcodes.V1_7 {
			panic(configErr(mtCtx+".VisitLdcInsn", "MethodHandle constants require class version >= 1.7"))
		}
		if !opcodes.IsValidHandleTag(v.Tag) {
			panic(argErr(mtCtx+".VisitLdcInsn", "handle tag %d is not one of the nine defined kinds", v.Tag))
		}
	case gasm.ConstantDynamic:
		if m.opts.ClassVersion < opcodes.V11 {
			panic(configErr(mtCtx+".VisitLdcInsn", "constant-dynamic requires class version >= 11"))
		}
		for _, arg := range v.BootstrapArgs {
			validateBootstrapArgument(arg)
		}
	default:
		panic(argErr(mtCtx+".VisitLdcInsn", "value of type %T is not a permitted LDC constant", value))
	}
	if m.opts.Dataflow {
		m.buffer.Insns = append(m.buffer.Insns, dataflow.Insn{Opcode: opcodes.LDC, Value: value})
	}
	m.insnCount++
	if m.delegate != nil {
		m.delegate.VisitLdcInsn(value)
	}
}

func (m *MethodChecker) VisitIincInsn(varIndex, increment int) {
	m.requireInCode("VisitIincInsn")
	if varIndex < 0 || varIndex > 0xFFFF {
		panic(argErr(mtCtx+".VisitIincInsn", "var index %d is not an unsigned 16-bit value", varIndex))
	}
	if m.opts.Dataflow {
		m.buffer.Insns = append(m.buffer.Insns, dataflow.Insn{Opcode: opcodes.IINC, Operand: varIndex, Value: increment})
	}
	m.insnCount++
	if m.delegate != nil {
		m.delegate.VisitIincInsn(varIndex, increment)
	}
}

func (m *MethodChecker) VisitTableSwitchInsn(min, max int, dflt *gasm.Label, labels ...*gasm.Label) {
	m.requireInCode("VisitTableSwitchInsn")
	if max < min {
		panic(argErr(mtCtx+".VisitTableSwitchInsn", "max %d must be >= min %d", max, min))
	}
	if dflt == nil {
		panic(argErr(mtCtx+".VisitTableSwitchInsn", "default label must not be nil"))
	}
	if len(labels) != max-min+1 {
		panic(argErr(mtCtx+".VisitTableSwitchInsn", "expected %d labels, got %d", max-min+1, len(labels)))
	}
	m.referencedLabels[dflt] = true
	for _, l := range labels {
		if l == nil {
			panic(argErr(mtCtx+".VisitTableSwitchInsn", "case label must not be nil"))
		}
		m.referencedLabels[l] = true
	}
	if m.opts.Dataflow {
		m.buffer.Insns = append(m.buffer.Insns, dataflow.Insn{Opcode: opcodes.TABLESWITCH, Label: dflt, Labels: labels})
	}
	m.insnCount++
	if m.delegate != nil {
		m.delegate.VisitTableSwitchInsn(min, max, dflt, labels...)
	}
}

func (m *MethodChecker) VisitLookupSwitchInsn(dflt *gasm.Label, keys []int, labels []*gasm.Label) {
	m.requireInCode("VisitLookupSwitchInsn")
	if dflt == nil {
		panic(argErr(mtCtx+".VisitLookupSwitchInsn", "default label must not be nil"))
	}
	if len(keys) != len(labels) {
		panic(argErr(mtCtx+".VisitLookupSwitchInsn", "keys and labels must have the same length, got %d and %d", len(keys), len(labels)))
	}
	m.referencedLabels[dflt] = true
	for _, l := range labels {
		if l == nil {
			panic(argErr(mtCtx+".VisitLookupSwitchInsn", "case label must not be nil"))
		}
		m.referencedLabels[l] = true
	}
	if m.opts.Dataflow {
		m.buffer.Insns = append(m.buffer.Insns, dataflow.Insn{Opcode: opcodes.LOOKUPSWITCH, Label: dflt, Labels: labels})
	}
	m.insnCount++
	if m.delegate != nil {
		m.delegate.VisitLookupSwitchInsn(dflt, keys, labels)
	}
}

func (m *MethodChecker) VisitMultiANewArrayInsn(descriptor string, numDimensions int) {
	m.requireInCode("VisitMultiANewArrayInsn")
	if err := wrapGrammarErr(mtCtx+".VisitMultiANewArrayInsn", descgrammar.ValidateFieldDescriptor(descriptor)); err != nil {
		panic(err)
	}
	if len(descriptor) == 0 || descriptor[0] != '[' {
		panic(argErr(mtCtx+".VisitMultiANewArrayInsn", "descriptor %q must be an array descriptor", descriptor))
	}
	dims := descgrammar.ArrayDimensions(descriptor)
	if numDimensions < 1 || numDimensions > dims {
		panic(argErr(mtCtx+".VisitMultiANewArrayInsn", "numDimensions %d must be in [1, %d]", numDimensions, dims))
	}
	if m.opts.Dataflow {
		m.buffer.Insns = append(m.buffer.Insns, dataflow.Insn{Opcode: opcodes.MULTIANEWARRAY, Descriptor: descriptor, NumDimensions: numDimensions})
	}
	m.insnCount++
	if m.delegate != nil {
		m.delegate.VisitMultiANewArrayInsn(descriptor, numDimensions)
	}
}

func (m *MethodChecker) VisitInsnAnnotation(typeRef int, typePath *gasm.TypePath, descriptor string, visible bool) gasm.AnnotationVisitor {
	m.requireInCode("VisitInsnAnnotation")
	if err := wrapGrammarErr(mtCtx+".VisitInsnAnnotation", descgrammar.ValidateFieldDescriptor(descriptor)); err != nil {
		panic(err)
	}
	var d gasm.AnnotationVisitor
	if m.delegate != nil {
		d = m.delegate.VisitInsnAnnotation(typeRef, typePath, descriptor, visible)
	}
	return NewAnnotationChecker(d, true)
}

func (m *MethodChecker) VisitTryCatchBlock(start, end, handler *gasm.Label, typ string) {
	m.requireInCode("VisitTryCatchBlock")
	if start == nil || end == nil || handler == nil {
		panic(argErr(mtCtx+".VisitTryCatchBlock", "start, end and handler labels must not be nil"))
	}
	if m.labels.isDefined(start) || m.labels.isDefined(end) || m.labels.isDefined(handler) {
		panic(refErr(mtCtx+".VisitTryCatchBlock", "try-catch labels must be registered before they are visited as labels"))
	}
	if typ != "" {
		if err := wrapGrammarErr(mtCtx+".VisitTryCatchBlock", descgrammar.ValidateInternalName(typ)); err != nil {
			panic(err)
		}
	}
	m.handlers = append(m.handlers, tryCatchHandler{start: start, end: end, handler: handler, typ: typ})
	if m.opts.Dataflow {
		m.buffer.Handlers = append(m.buffer.Handlers, dataflow.Handler{Start: start, End: end, HandlerLabel: handler, Type: typ})
	}
	if m.delegate != nil {
		m.delegate.VisitTryCatchBlock(start, end, handler, typ)
	}
}

func (m *MethodChecker) VisitTryCatchAnnotation(typeRef int, typePath *gasm.TypePath, descriptor string, visible bool) gasm.AnnotationVisitor {
	m.requireInCode("VisitTryCatchAnnotation")
	if err := wrapGrammarErr(mtCtx+".VisitTryCatchAnnotation", descgrammar.ValidateFieldDescriptor(descriptor)); err != nil {
		panic(err)
	}
	var d gasm.AnnotationVisitor
	if m.delegate != nil {
		d = m.delegate.VisitTryCatchAnnotation(typeRef, typePath, descriptor, visible)
	}
	return NewAnnotationChecker(d, true)
}

func (m *MethodChecker) VisitLocalVariable(name, descriptor, signature string, start, end *gasm.Label, index int) {
	m.requireInCode("VisitLocalVariable")
	if !m.labels.isDefined(start) || !m.labels.isDefined(end) {
		panic(refErr(mtCtx+".VisitLocalVariable", "local-variable range labels must already be defined"))
	}
	if m.labelInsnIndices[end] <= m.labelInsnIndices[start] {
		panic(argErr(mtCtx+".VisitLocalVariable", "end index must be > start index"))
	}
	if index < 0 || index > 0xFFFF {
		panic(argErr(mtCtx+".VisitLocalVariable", "index %d is not an unsigned 16-bit value", index))
	}
	if err := wrapGrammarErr(mtCtx+".VisitLocalVariable", descgrammar.ValidateUnqualifiedName(name, false)); err != nil {
		panic(err)
	}
	if err := wrapGrammarErr(mtCtx+".VisitLocalVariable", descgrammar.ValidateFieldDescriptor(descriptor)); err != nil {
		panic(err)
	}
	if signature != "" {
		checker := NewSignatureChecker(nil)
		if err := descgrammar.ParseFieldSignature(signature, checker); err != nil {
			panic(wrapGrammarErr(mtCtx+".VisitLocalVariable", err))
		}
	}
	if m.delegate != nil {
		m.delegate.VisitLocalVariable(name, descriptor, signature, start, end, index)
	}
}

func (m *MethodChecker) VisitLocalVariableAnnotation(typeRef int, typePath *gasm.TypePath, start, end []*gasm.Label, index []int, descriptor string, visible bool) gasm.AnnotationVisitor {
	m.requireInCode("VisitLocalVariableAnnotation")
	if len(start) != len(end) || len(start) != len(index) {
		panic(argErr(mtCtx+".VisitLocalVariableAnnotation", "start, end and index arrays must have the same length"))
	}
	for i := range start {
		if !m.labels.isDefined(start[i]) || !m.labels.isDefined(end[i]) {
			panic(refErr(mtCtx+".VisitLocalVariableAnnotation", "range labels must already be defined"))
		}
	}
	if err := wrapGrammarErr(mtCtx+".VisitLocalVariableAnnotation", descgrammar.ValidateFieldDescriptor(descriptor)); err != nil {
		panic(err)
	}
	var d gasm.AnnotationVisitor
	if m.delegate != nil {
		d = m.delegate.VisitLocalVariableAnnotation(typeRef, typePath, start, end, index, descriptor, visible)
	}
	return NewAnnotationChecker(d, true)
}

func (m *MethodChecker) VisitLineNumber(line int, start *gasm.Label) {
	m.requireInCode("VisitLineNumber")
	if !m.labels.isDefined(start) {
		panic(refErr(mtCtx+".VisitLineNumber", "line-number label must already be defined"))
	}
	if m.delegate != nil {
		m.delegate.VisitLineNumber(line, start)
	}
}

func (m *MethodChecker) VisitMaxs(maxStack, maxLocals int) {
	m.requireInCode("VisitMaxs")
	for label := range m.referencedLabels {
		if !m.labels.isDefined(label) {
			panic(refErr(mtCtx+".VisitMaxs", "undefined label used"))
		}
	}
	for _, h := range m.handlers {
		if !m.labels.isDefined(h.start) || !m.labels.isDefined(h.end) || !m.labels.isDefined(h.handler) {
			panic(refErr(mtCtx+".VisitMaxs", "try-catch handler labels must be defined"))
		}
		if m.labelInsnIndices[h.end] <= m.labelInsnIndices[h.start] {
			panic(argErr(mtCtx+".VisitMaxs", "try-catch end index must be > start index"))
		}
	}
	if maxStack < 0 || maxStack > 0xFFFF {
		panic(argErr(mtCtx+".VisitMaxs", "max stack %d is not an unsigned 16-bit value", maxStack))
	}
	if maxLocals < 0 || maxLocals > 0xFFFF {
		panic(argErr(mtCtx+".VisitMaxs", "max locals %d is not an unsigned 16-bit value", maxLocals))
	}
	if m.opts.Dataflow && (maxStack == 0 || maxLocals == 0) {
		panic(configErr(mtCtx+".VisitMaxs", "dataflow verification requires non-zero max-stack and max-locals"))
	}
	m.maxsCalled = true

	if m.opts.Dataflow && m.buffer != nil {
		m.buffer.MaxStack = maxStack
		m.buffer.MaxLocals = maxLocals
		var verifier dataflow.BasicInterpreter
		if _, err := verifier.Verify(m.buffer, m.opts.TypeResolver); err != nil {
			panic(configErr(mtCtx+".VisitMaxs", "%v", err))
		}
	}

	if m.delegate != nil {
		m.delegate.VisitMaxs(maxStack, maxLocals)
	}
}

func (m *MethodChecker) VisitEnd() {
	if !m.maxsCalled && m.codeCalled {
		panic(stateErr(mtCtx+".VisitEnd", "called before VisitMaxs"))
	}
	if m.endCalled {
		panic(stateErr(mtCtx+".VisitEnd", "already ended"))
	}
	m.endCalled = true
	if m.delegate != nil {
		m.delegate.VisitEnd()
	}
}
