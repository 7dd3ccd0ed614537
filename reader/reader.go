// Package reader is a minimal class-file producer: it decodes a .class
// file's bytes and drives a gasm.ClassVisitor with the corresponding
// sequence of visit calls, enough to exercise the checker chain end to
// end. It is adapted from asm/classreader.go's low-level byte and
// constant-pool decoding, which survives close to its original form here
// since nothing about that decoding is specific to the old producer/writer
// split. Bytecode instruction decoding is intentionally out of scope: a
// verifier's contract does not depend on any particular producer visiting
// a method's instructions, only on the checker rejecting a malformed
// sequence if one arrives. Code attributes are parsed only far enough to
// recover max_stack/max_locals and fire VisitCode/VisitMaxs.
package reader

import (
	"fmt"
	"math"

	"github.com/nacpt/gasm"
	"github.com/nacpt/gasm/opcodes"
)

// Parsing options, mirroring asm/classreader.go's flag set.
const (
	SkipCode   = 1
	SkipDebug  = 2
	SkipFrames = 4
)

// ClassReader decodes one in-memory .class file.
type ClassReader struct {
	b                  []byte
	cpInfoOffsets      []int
	constantUtf8Values []string
	maxStringLength    int
	header             int
}

// NewClassReader parses the constant pool of classFile and locates the
// class header that follows it.
func NewClassReader(classFile []byte) (*ClassReader, error) {
	if len(classFile) < 10 {
		return nil, fmt.Errorf("reader: class file is too short to contain a header")
	}
	r := &ClassReader{b: classFile}

	constantPoolCount := r.readUnsignedShort(8)
	r.cpInfoOffsets = make([]int, constantPoolCount)
	r.constantUtf8Values = make([]string, constantPoolCount)
	currentCpInfoOffset := 10
	maxStringLength := 0

	for i := 1; i < constantPoolCount; i++ {
		r.cpInfoOffsets[i] = currentCpInfoOffset + 1
		var cpInfoSize int
		switch r.b[currentCpInfoOffset] {
		case opcodes.CONSTANT_FIELDREF_TAG, opcodes.CONSTANT_METHODREF_TAG, opcodes.CONSTANT_INTERFACE_METHODREF_TAG,
			opcodes.CONSTANT_INTEGER_TAG, opcodes.CONSTANT_FLOAT_TAG, opcodes.CONSTANT_NAME_AND_TYPE_TAG,
			opcodes.CONSTANT_INVOKE_DYNAMIC_TAG, opcodes.CONSTANT_DYNAMIC_TAG:
			cpInfoSize = 5
		case opcodes.CONSTANT_LONG_TAG, opcodes.CONSTANT_DOUBLE_TAG:
			cpInfoSize = 9
			i++
		case opcodes.CONSTANT_UTF8_TAG:
			cpInfoSize = 3 + r.readUnsignedShort(currentCpInfoOffset+1)
			if cpInfoSize > maxStringLength {
				maxStringLength = cpInfoSize
			}
		case opcodes.CONSTANT_METHOD_HANDLE_TAG:
			cpInfoSize = 4
		case opcodes.CONSTANT_CLASS_TAG, opcodes.CONSTANT_STRING_TAG, opcodes.CONSTANT_METHOD_TYPE_TAG,
			opcodes.CONSTANT_PACKAGE_TAG, opcodes.CONSTANT_MODULE_TAG:
			cpInfoSize = 3
		default:
			return nil, fmt.Errorf("reader: unknown constant-pool tag %d at offset %d", r.b[currentCpInfoOffset], currentCpInfoOffset)
		}
		currentCpInfoOffset += cpInfoSize
	}

	r.maxStringLength = maxStringLength
	r.header = currentCpInfoOffset
	return r, nil
}

// Accept makes classVisitor visit the ClassFile structure this reader
// decoded.
func (c *ClassReader) Accept(classVisitor gasm.ClassVisitor, parsingOptions int) {
	charBuffer := make([]rune, c.maxStringLength+1)
	currentOffset := c.header

	access := c.readUnsignedShort(currentOffset)
	thisClass := c.readClass(currentOffset + 2)
	superClass := c.readClass(currentOffset + 4)
	interfaceCount := c.readUnsignedShort(currentOffset + 6)
	currentOffset += 8
	interfaces := make([]string, interfaceCount)
	for i := 0; i < interfaceCount; i++ {
		interfaces[i] = c.readClass(currentOffset)
		currentOffset += 2
	}

	classVersion := c.readInt(4)

	var (
		signature                string
		sourceFile, sourceDebug   string
		moduleOffset              int
		modulePackagesOffset      int
		moduleMainClass           string
		nestHost                  string
		nestMembers               []string
		permittedSubclasses       []string
		innerClassesOffset        int
		enclosingMethodOffset     int
		pendingAttrs              [][2]int // [offset, length] of unrecognized attributes, with name
		pendingAttrNames          []string
		recordOffset              int
	)

	attrCount := c.readUnsignedShort(currentOffset)
	currentOffset += 2
	for i := 0; i < attrCount; i++ {
		name := c.readUTF8(currentOffset, charBuffer)
		length := c.readInt(currentOffset + 2)
		bodyOffset := currentOffset + 6
		switch name {
		case "SourceFile":
			sourceFile = c.readUTF8(bodyOffset, charBuffer)
		case "SourceDebugExtension":
			sourceDebug = c.readUTFBytes(bodyOffset, length, make([]rune, length))
		case "Signature":
			signature = c.readUTF8(bodyOffset, charBuffer)
		case "InnerClasses":
			innerClassesOffset = bodyOffset
		case "EnclosingMethod":
			enclosingMethodOffset = bodyOffset
		case "Module":
			moduleOffset = bodyOffset
		case "ModuleMainClass":
			moduleMainClass = c.readClass(bodyOffset)
		case "ModulePackages":
			modulePackagesOffset = bodyOffset
		case "NestHost":
			nestHost = c.readClass(bodyOffset)
		case "NestMembers":
			n := c.readUnsignedShort(bodyOffset)
			for j := 0; j < n; j++ {
				nestMembers = append(nestMembers, c.readClass(bodyOffset+2+2*j))
			}
		case "PermittedSubclasses":
			n := c.readUnsignedShort(bodyOffset)
			for j := 0; j < n; j++ {
				permittedSubclasses = append(permittedSubclasses, c.readClass(bodyOffset+2+2*j))
			}
		case "Record":
			recordOffset = bodyOffset
		case "Deprecated":
			access |= opcodes.ACC_DEPRECATED
		case "Synthetic":
			access |= opcodes.ACC_SYNTHETIC
		case "RuntimeVisibleAnnotations", "RuntimeInvisibleAnnotations":
			pendingAttrs = append(pendingAttrs, [2]int{bodyOffset, length})
			pendingAttrNames = append(pendingAttrNames, name)
		default:
			pendingAttrs = append(pendingAttrs, [2]int{bodyOffset, length})
			pendingAttrNames = append(pendingAttrNames, name)
		}
		currentOffset = bodyOffset + length
	}

	classVisitor.Visit(classVersion, access, thisClass, signature, superClass, interfaces)

	if parsingOptions&SkipDebug == 0 && (sourceFile != "" || sourceDebug != "") {
		classVisitor.VisitSource(sourceFile, sourceDebug)
	}

	if moduleOffset != 0 {
		c.readModule(classVisitor, moduleOffset, modulePackagesOffset, moduleMainClass, charBuffer)
	}

	if enclosingMethodOffset != 0 {
		className := c.readClass(enclosingMethodOffset)
		methodIndex := c.readUnsignedShort(enclosingMethodOffset + 2)
		var name, descriptor string
		if methodIndex != 0 {
			natOffset := c.cpInfoOffsets[methodIndex]
			name = c.readUTF8(natOffset, charBuffer)
			descriptor = c.readUTF8(natOffset+2, charBuffer)
		}
		classVisitor.VisitOuterClass(className, name, descriptor)
	}

	for i, nv := range pendingAttrNames {
		off, length := pendingAttrs[i][0], pendingAttrs[i][1]
		switch nv {
		case "RuntimeVisibleAnnotations":
			c.readAnnotations(off, classVisitor, charBuffer, true)
		case "RuntimeInvisibleAnnotations":
			c.readAnnotations(off, classVisitor, charBuffer, false)
		default:
			classVisitor.VisitAttribute(gasm.NewAttribute(nv))
			_ = length
		}
	}

	if nestHost != "" {
		classVisitor.VisitNestHost(nestHost)
	}
	for _, m := range nestMembers {
		classVisitor.VisitNestMember(m)
	}
	for _, p := range permittedSubclasses {
		classVisitor.VisitPermittedSubclass(p)
	}

	if innerClassesOffset != 0 {
		n := c.readUnsignedShort(innerClassesOffset)
		off := innerClassesOffset + 2
		for i := 0; i < n; i++ {
			name := c.readClass(off)
			outer := c.readClass(off + 2)
			inner := c.readUTF8(off+4, charBuffer)
			innerAccess := c.readUnsignedShort(off + 6)
			classVisitor.VisitInnerClass(name, outer, inner, innerAccess)
			off += 8
		}
	}

	if recordOffset != 0 {
		c.readRecord(recordOffset, classVisitor, charBuffer)
	}

	fieldsCount := c.readUnsignedShort(currentOffset)
	currentOffset += 2
	for i := 0; i < fieldsCount; i++ {
		currentOffset = c.readField(classVisitor, currentOffset, charBuffer)
	}

	methodsCount := c.readUnsignedShort(currentOffset)
	currentOffset += 2
	for i := 0; i < methodsCount; i++ {
		currentOffset = c.readMethod(classVisitor, currentOffset, charBuffer, parsingOptions)
	}

	classVisitor.VisitEnd()
}

func (c *ClassReader) readModule(cv gasm.ClassVisitor, moduleOffset, modulePackagesOffset int, mainClass string, charBuffer []rune) {
	name := c.readModuleName(moduleOffset)
	flags := c.readUnsignedShort(moduleOffset + 2)
	version := c.readUTF8(moduleOffset+4, charBuffer)
	off := moduleOffset + 6

	mv := cv.VisitModule(name, flags, version)
	if mv == nil {
		return
	}
	if mainClass != "" {
		mv.VisitMainClass(mainClass)
	}
	if modulePackagesOffset != 0 {
		n := c.readUnsignedShort(modulePackagesOffset)
		poff := modulePackagesOffset + 2
		for i := 0; i < n; i++ {
			mv.VisitPackage(c.readModuleName(poff))
			poff += 2
		}
	}

	requiresCount := c.readUnsignedShort(off)
	off += 2
	for i := 0; i < requiresCount; i++ {
		req := c.readModuleName(off)
		reqFlags := c.readUnsignedShort(off + 2)
		reqVersion := c.readUTF8(off+4, charBuffer)
		off += 6
		mv.VisitRequire(req, reqFlags, reqVersion)
	}

	exportsCount := c.readUnsignedShort(off)
	off += 2
	for i := 0; i < exportsCount; i++ {
		pkg := c.readModuleName(off)
		flags := c.readUnsignedShort(off + 2)
		toCount := c.readUnsignedShort(off + 4)
		off += 6
		to := make([]string, toCount)
		for j := 0; j < toCount; j++ {
			to[j] = c.readModuleName(off)
			off += 2
		}
		mv.VisitExport(pkg, flags, to...)
	}

	opensCount := c.readUnsignedShort(off)
	off += 2
	for i := 0; i < opensCount; i++ {
		pkg := c.readModuleName(off)
		flags := c.readUnsignedShort(off + 2)
		toCount := c.readUnsignedShort(off + 4)
		off += 6
		to := make([]string, toCount)
		for j := 0; j < toCount; j++ {
			to[j] = c.readModuleName(off)
			off += 2
		}
		mv.VisitOpen(pkg, flags, to...)
	}

	usesCount := c.readUnsignedShort(off)
	off += 2
	for i := 0; i < usesCount; i++ {
		mv.VisitUse(c.readClass(off))
		off += 2
	}

	providesCount := c.readUnsignedShort(off)
	off += 2
	for i := 0; i < providesCount; i++ {
		service := c.readClass(off)
		withCount := c.readUnsignedShort(off + 2)
		off += 4
		with := make([]string, withCount)
		for j := 0; j < withCount; j++ {
			with[j] = c.readClass(off)
			off += 2
		}
		mv.VisitProvide(service, with...)
	}

	mv.VisitEnd()
}

func (c *ClassReader) readRecord(recordOffset int, cv gasm.ClassVisitor, charBuffer []rune) {
	n := c.readUnsignedShort(recordOffset)
	off := recordOffset + 2
	for i := 0; i < n; i++ {
		name := c.readUTF8(off, charBuffer)
		descriptor := c.readUTF8(off+2, charBuffer)
		off += 4
		signature := ""
		attrCount := c.readUnsignedShort(off)
		off += 2
		for j := 0; j < attrCount; j++ {
			attrName := c.readUTF8(off, charBuffer)
			length := c.readInt(off + 2)
			body := off + 6
			if attrName == "Signature" {
				signature = c.readUTF8(body, charBuffer)
			}
			off = body + length
		}
		rv := cv.VisitRecordComponent(name, descriptor, signature)
		if rv != nil {
			rv.VisitEnd()
		}
	}
}

func (c *ClassReader) readField(cv gasm.ClassVisitor, offset int, charBuffer []rune) int {
	access := c.readUnsignedShort(offset)
	name := c.readUTF8(offset+2, charBuffer)
	descriptor := c.readUTF8(offset+4, charBuffer)
	off := offset + 6

	var signature string
	var value interface{}
	var annotationAttrs [][3]int // offset, length, visible(1/0)

	attrCount := c.readUnsignedShort(off)
	off += 2
	for i := 0; i < attrCount; i++ {
		attrName := c.readUTF8(off, charBuffer)
		length := c.readInt(off + 2)
		body := off + 6
		switch attrName {
		case "ConstantValue":
			idx := c.readUnsignedShort(body)
			value, _ = c.readConst(idx, charBuffer)
		case "Signature":
			signature = c.readUTF8(body, charBuffer)
		case "Deprecated":
			access |= opcodes.ACC_DEPRECATED
		case "Synthetic":
			access |= opcodes.ACC_SYNTHETIC
		case "RuntimeVisibleAnnotations":
			annotationAttrs = append(annotationAttrs, [3]int{body, length, 1})
		case "RuntimeInvisibleAnnotations":
			annotationAttrs = append(annotationAttrs, [3]int{body, length, 0})
		}
		off = body + length
	}

	fv := cv.VisitField(access, name, descriptor, signature, value)
	if fv != nil {
		for _, a := range annotationAttrs {
			c.readAnnotations(a[0], fieldVisitorAdapter{fv}, charBuffer, a[2] == 1)
		}
		fv.VisitEnd()
	}
	return off
}

func (c *ClassReader) readMethod(cv gasm.ClassVisitor, offset int, charBuffer []rune, parsingOptions int) int {
	access := c.readUnsignedShort(offset)
	name := c.readUTF8(offset+2, charBuffer)
	descriptor := c.readUTF8(offset+4, charBuffer)
	off := offset + 6

	var signature string
	var exceptions []string
	var codeOffset int
	var annotationAttrs [][3]int

	attrCount := c.readUnsignedShort(off)
	off += 2
	for i := 0; i < attrCount; i++ {
		attrName := c.readUTF8(off, charBuffer)
		length := c.readInt(off + 2)
		body := off + 6
		switch attrName {
		case "Signature":
			signature = c.readUTF8(body, charBuffer)
		case "Exceptions":
			n := c.readUnsignedShort(body)
			for j := 0; j < n; j++ {
				exceptions = append(exceptions, c.readClass(body+2+2*j))
			}
		case "Deprecated":
			access |= opcodes.ACC_DEPRECATED
		case "Synthetic":
			access |= opcodes.ACC_SYNTHETIC
		case "Code":
			codeOffset = body
		case "RuntimeVisibleAnnotations":
			annotationAttrs = append(annotationAttrs, [3]int{body, length, 1})
		case "RuntimeInvisibleAnnotations":
			annotationAttrs = append(annotationAttrs, [3]int{body, length, 0})
		}
		off = body + length
	}

	mv := cv.VisitMethod(access, name, descriptor, signature, exceptions)
	if mv != nil {
		for _, a := range annotationAttrs {
			c.readAnnotations(a[0], methodVisitorAdapter{mv}, charBuffer, a[2] == 1)
		}
		if codeOffset != 0 && parsingOptions&SkipCode == 0 {
			maxStack := c.readUnsignedShort(codeOffset)
			maxLocals := c.readUnsignedShort(codeOffset + 2)
			mv.VisitCode()
			// Instruction-by-instruction decoding is not attempted: the
			// checker's contract is validated against whatever events a
			// producer sends, not against this reader's completeness.
			mv.VisitMaxs(maxStack, maxLocals)
		}
		mv.VisitEnd()
	}
	return off
}

// readAnnotations drives a RuntimeVisible/InvisibleAnnotations attribute's
// body against a class/field/method carrier; field and method visitors are
// wrapped in the two small adapter types below since gasm has no shared
// "VisitAnnotation(descriptor, visible)" interface across visitor kinds.
type annotationHost interface {
	VisitAnnotation(descriptor string, visible bool) gasm.AnnotationVisitor
}

type fieldVisitorAdapter struct{ gasm.FieldVisitor }
type methodVisitorAdapter struct{ gasm.MethodVisitor }

func (c *ClassReader) readAnnotations(offset int, host annotationHost, charBuffer []rune, visible bool) {
	n := c.readUnsignedShort(offset)
	off := offset + 2
	for i := 0; i < n; i++ {
		descriptor := c.readUTF8(off, charBuffer)
		off += 2
		av := host.VisitAnnotation(descriptor, visible)
		off = c.readElementValues(av, off, true, charBuffer)
	}
}

func (c *ClassReader) readElementValues(av gasm.AnnotationVisitor, offset int, named bool, charBuffer []rune) int {
	n := c.readUnsignedShort(offset)
	off := offset + 2
	for i := 0; i < n; i++ {
		var name string
		if named {
			name = c.readUTF8(off, charBuffer)
			off += 2
		}
		off = c.readElementValue(av, off, name, charBuffer)
	}
	if av != nil {
		av.VisitEnd()
	}
	return off
}

func (c *ClassReader) readElementValue(av gasm.AnnotationVisitor, offset int, name string, charBuffer []rune) int {
	tag := c.b[offset]
	off := offset + 1
	switch tag {
	case 'B':
		v, _ := c.readConst(c.readUnsignedShort(off), charBuffer)
		if av != nil {
			av.Visit(name, int8(toInt(v)))
		}
		return off + 2
	case 'C':
		v, _ := c.readConst(c.readUnsignedShort(off), charBuffer)
		if av != nil {
			av.Visit(name, rune(toInt(v)))
		}
		return off + 2
	case 'D', 'F', 'I', 'J':
		v, _ := c.readConst(c.readUnsignedShort(off), charBuffer)
		if av != nil {
			av.Visit(name, v)
		}
		return off + 2
	case 'S':
		v, _ := c.readConst(c.readUnsignedShort(off), charBuffer)
		if av != nil {
			av.Visit(name, int16(toInt(v)))
		}
		return off + 2
	case 'Z':
		v, _ := c.readConst(c.readUnsignedShort(off), charBuffer)
		if av != nil {
			av.Visit(name, toInt(v) != 0)
		}
		return off + 2
	case 's':
		s := c.readUTF8(off, charBuffer)
		if av != nil {
			av.Visit(name, s)
		}
		return off + 2
	case 'e':
		descriptor := c.readUTF8(off, charBuffer)
		value := c.readUTF8(off+2, charBuffer)
		if av != nil {
			av.VisitEnum(name, descriptor, value)
		}
		return off + 4
	case 'c':
		cls := c.readUTF8(off, charBuffer)
		if av != nil {
			av.Visit(name, gasm.Type{Sort: gasm.SortObject, Descriptor: "L" + cls + ";"})
		}
		return off + 2
	case '@':
		descriptor := c.readUTF8(off, charBuffer)
		off += 2
		var nested gasm.AnnotationVisitor
		if av != nil {
			nested = av.VisitAnnotation(name, descriptor)
		}
		return c.readElementValues(nested, off, true, charBuffer)
	case '[':
		count := c.readUnsignedShort(off)
		off += 2
		var arr gasm.AnnotationVisitor
		if av != nil {
			arr = av.VisitArray(name)
		}
		for i := 0; i < count; i++ {
			off = c.readElementValue(arr, off, "", charBuffer)
		}
		if arr != nil {
			arr.VisitEnd()
		}
		return off
	default:
		return off
	}
}

func toInt(v interface{}) int {
	switch n := v.(type) {
	case int32:
		return int(n)
	case int:
		return n
	default:
		return 0
	}
}

// ----------------------------------------------------------------------
// Low-level byte and constant-pool decoding, adapted from
// asm/classreader.go: the same fixed-width big-endian reads, applied to
// the same constant-pool layout, just renamed and returning gasm's own
// value types for Handle/ConstantDynamic/Type constants instead of the
// old producer/writer's Symbol table entries.
// ----------------------------------------------------------------------

func (c *ClassReader) readByte(offset int) int {
	return int(c.b[offset]) & 0xFF
}

func (c *ClassReader) readUnsignedShort(offset int) int {
	b := c.b
	return (int(b[offset])&0xFF)<<8 | (int(b[offset+1]) & 0xFF)
}

func (c *ClassReader) readInt(offset int) int {
	b := c.b
	return (int(b[offset])&0xFF)<<24 | (int(b[offset+1])&0xFF)<<16 | (int(b[offset+2])&0xFF)<<8 | (int(b[offset+3]) & 0xFF)
}

func (c *ClassReader) readLong(offset int) int64 {
	hi := int64(uint32(c.readInt(offset)))
	lo := int64(uint32(c.readInt(offset + 4)))
	return hi<<32 | lo
}

func (c *ClassReader) readUTF8(offset int, charBuffer []rune) string {
	idx := c.readUnsignedShort(offset)
	if offset == 0 || idx == 0 {
		return ""
	}
	return c.readUTF(idx, charBuffer)
}

func (c *ClassReader) readUTF(constantPoolIndex int, charBuffer []rune) string {
	if v := c.constantUtf8Values[constantPoolIndex]; v != "" {
		return v
	}
	cpInfoOffset := c.cpInfoOffsets[constantPoolIndex]
	length := c.readUnsignedShort(cpInfoOffset)
	v := c.readUTFBytes(cpInfoOffset+2, length, charBuffer)
	c.constantUtf8Values[constantPoolIndex] = v
	return v
}

func (c *ClassReader) readUTFBytes(utfOffset, utfLength int, charBuffer []rune) string {
	b := c.b
	current := utfOffset
	end := current + utfLength
	length := 0
	for current < end {
		cur := b[current]
		current++
		switch {
		case cur&0x80 == 0:
			charBuffer[length] = rune(cur & 0x7F)
			length++
		case cur&0xE0 == 0xC0:
			charBuffer[length] = rune((int(cur)&0x1F)<<6 + (int(b[current]) & 0x3F))
			length++
			current++
		default:
			d := (int(cur)&0xF)<<12 + (int(b[current])&0x3F)<<6
			current++
			charBuffer[length] = rune(d + (int(b[current]) & 0x3F))
			length++
			current++
		}
	}
	return string(charBuffer[:length])
}

func (c *ClassReader) readStringish(offset int, charBuffer []rune) string {
	return c.readUTF8(c.cpInfoOffsets[c.readUnsignedShort(offset)], charBuffer)
}

func (c *ClassReader) readClass(offset int) string {
	buf := make([]rune, c.maxStringLength+1)
	return c.readStringish(offset, buf)
}

func (c *ClassReader) readModuleName(offset int) string {
	buf := make([]rune, c.maxStringLength+1)
	return c.readStringish(offset, buf)
}

func (c *ClassReader) readConst(constantPoolIndex int, charBuffer []rune) (interface{}, error) {
	cpInfoOffset := c.cpInfoOffsets[constantPoolIndex]
	switch c.b[cpInfoOffset-1] {
	case opcodes.CONSTANT_INTEGER_TAG:
		return int32(c.readInt(cpInfoOffset)), nil
	case opcodes.CONSTANT_FLOAT_TAG:
		return math.Float32frombits(uint32(c.readInt(cpInfoOffset))), nil
	case opcodes.CONSTANT_LONG_TAG:
		return c.readLong(cpInfoOffset), nil
	case opcodes.CONSTANT_DOUBLE_TAG:
		return math.Float64frombits(uint64(c.readLong(cpInfoOffset))), nil
	case opcodes.CONSTANT_CLASS_TAG:
		name := c.readUTF8(cpInfoOffset, charBuffer)
		return gasm.Type{Sort: gasm.SortObject, Descriptor: "L" + name + ";"}, nil
	case opcodes.CONSTANT_STRING_TAG:
		return c.readUTF8(cpInfoOffset, charBuffer), nil
	case opcodes.CONSTANT_METHOD_TYPE_TAG:
		descriptor := c.readUTF8(cpInfoOffset, charBuffer)
		return gasm.Type{Sort: gasm.SortMethod, Descriptor: descriptor}, nil
	case opcodes.CONSTANT_METHOD_HANDLE_TAG:
		referenceKind := c.readByte(cpInfoOffset)
		referenceCpInfoOffset := c.cpInfoOffsets[c.readUnsignedShort(cpInfoOffset+1)]
		nameAndTypeOffset := c.cpInfoOffsets[c.readUnsignedShort(referenceCpInfoOffset+2)]
		owner := c.readClass(referenceCpInfoOffset)
		name := c.readUTF8(nameAndTypeOffset, charBuffer)
		descriptor := c.readUTF8(nameAndTypeOffset+2, charBuffer)
		isInterface := c.b[referenceCpInfoOffset-1] == opcodes.CONSTANT_INTERFACE_METHODREF_TAG
		return gasm.Handle{Tag: referenceKind, Owner: owner, Name: name, Descriptor: descriptor, IsInterface: isInterface}, nil
	default:
		return nil, fmt.Errorf("reader: unreadable constant tag %d", c.b[cpInfoOffset-1])
	}
}

