package dataflow

import (
	"fmt"

	"github.com/nacpt/gasm/descgrammar"
	"github.com/nacpt/gasm/opcodes"
)

// Frame-element kinds, reusing gasm's StackMapTable vocabulary where it
// applies (Top, Integer, Float, Double, Long, Null, UninitializedThis) and
// adding Reference as an internal marker meaning "see Element.Internal".
const (
	Top = iota
	Integer
	Float
	Double
	Long
	Null
	UninitializedThis
	Reference
)

// BasicInterpreter is a single-pass abstract interpreter over a method's
// buffered instruction list: it replays the stack/locals effect of each
// instruction in textual order and reports the first point the stack
// shape becomes inconsistent (underflow, an arithmetic opcode fed the
// wrong category of value, a return statement whose value doesn't match
// the method's return descriptor). Reference values are compared by kind
// only: their internal names are never checked against each other, and
// the TypeResolver is not consulted.
//
// It does not attempt a fixed-point merge across every predecessor of a
// branch target (a full control-flow dataflow pass); it is the narrow,
// tractable analyzer the checker's dataflow option is described as
// requiring, not a complete JVM verifier.
type BasicInterpreter struct{}

func (BasicInterpreter) Verify(method *Method, resolver TypeResolver) ([]*Frame, error) {
	frame := initialFrame(method)
	frames := make([]*Frame, len(method.Insns))
	for i, insn := range method.Insns {
		snapshot := cloneFrame(frame)
		frames[i] = &snapshot
		next, err := apply(insn, frame, method, resolver)
		if err != nil {
			return frames, &VerifyError{InsnIndex: i, Message: err.Error(), Frame: &snapshot}
		}
		frame = next
	}
	return frames, nil
}

func initialFrame(method *Method) *Frame {
	var locals []Element
	if !method.IsStatic {
		locals = append(locals, Element{Kind: Reference, Internal: method.Owner})
	}
	for _, p := range descgrammar.ParameterDescriptors(method.Descriptor) {
		locals = append(locals, descriptorElement(p))
		if p == "J" || p == "D" {
			locals = append(locals, Element{Kind: Top})
		}
	}
	for len(locals) < method.MaxLocals {
		locals = append(locals, Element{Kind: Top})
	}
	return &Frame{Locals: locals}
}

func cloneFrame(f *Frame) Frame {
	return Frame{Locals: append([]Element(nil), f.Locals...), Stack: append([]Element(nil), f.Stack...)}
}

func descriptorElement(descriptor string) Element {
	switch descriptor[0] {
	case 'I', 'S', 'B', 'C', 'Z':
		return Element{Kind: Integer}
	case 'F':
		return Element{Kind: Float}
	case 'J':
		return Element{Kind: Long}
	case 'D':
		return Element{Kind: Double}
	default:
		return Element{Kind: Reference, Internal: descriptor}
	}
}

func push(f *Frame, e Element) { f.Stack = append(f.Stack, e) }

func pop(f *Frame) (Element, error) {
	if len(f.Stack) == 0 {
		return Element{}, fmt.Errorf("stack underflow")
	}
	top := f.Stack[len(f.Stack)-1]
	f.Stack = f.Stack[:len(f.Stack)-1]
	return top, nil
}

func popCategory(f *Frame, want int) error {
	v, err := pop(f)
	if err != nil {
		return err
	}
	if v.Kind != want && !(want == Reference && v.Kind == Null) {
		return fmt.Errorf("expected stack category %d, found %d", want, v.Kind)
	}
	return nil
}

// apply mutates and returns a copy of in after insn's stack/locals effect.
// It covers the common opcode families explicitly and otherwise falls
// back to a conservative no-op for opcodes whose effect this analyzer
// does not model (e.g. the DUP_X*/DUP2*/SWAP forms, RET and conversions
// such as L2F or I2B), trusting the
// bytecode-level checker to have already rejected malformed operands.
func apply(insn Insn, in *Frame, method *Method, resolver TypeResolver) (*Frame, error) {
	f := cloneFrame(in)
	switch opcodes.CategoryOf(insn.Opcode) {
	case opcodes.CategoryInsn:
		if err := applyInsn(insn.Opcode, &f, method); err != nil {
			return nil, err
		}
	case opcodes.CategoryIntInsn:
		switch insn.Opcode {
		case opcodes.NEWARRAY:
			if err := popCategory(&f, Integer); err != nil {
				return nil, err
			}
			push(&f, Element{Kind: Reference, Internal: "[array"})
		default:
			push(&f, Element{Kind: Integer})
		}
	case opcodes.CategoryVarInsn:
		if err := applyVarInsn(insn, &f); err != nil {
			return nil, err
		}
	case opcodes.CategoryTypeInsn:
		switch insn.Opcode {
		case opcodes.NEW:
			push(&f, Element{Kind: Reference, Internal: insn.Name})
		case opcodes.ANEWARRAY:
			if err := popCategory(&f, Integer); err != nil {
				return nil, err
			}
			push(&f, Element{Kind: Reference, Internal: "[" + insn.Name})
		case opcodes.CHECKCAST:
			if err := popCategory(&f, Reference); err != nil {
				return nil, err
			}
			push(&f, Element{Kind: Reference, Internal: insn.Name})
		case opcodes.INSTANCEOF:
			if err := popCategory(&f, Reference); err != nil {
				return nil, err
			}
			push(&f, Element{Kind: Integer})
		}
	case opcodes.CategoryFieldInsn:
		if err := applyFieldInsn(insn, &f); err != nil {
			return nil, err
		}
	case opcodes.CategoryMethodInsn:
		if err := applyMethodInsn(insn, &f); err != nil {
			return nil, err
		}
	case opcodes.CategoryLdcInsn:
		push(&f, ldcElement(insn.Value))
	case opcodes.CategoryIincInsn:
		// no stack effect; local type unchanged (must already be Integer)
	case opcodes.CategoryJumpInsn:
		if insn.Opcode != opcodes.GOTO {
			if err := popCategory(&f, Integer); err != nil {
				return nil, err
			}
		}
	case opcodes.CategoryMultiANewArrayInsn:
		for i := 0; i < insn.NumDimensions; i++ {
			if err := popCategory(&f, Integer); err != nil {
				return nil, err
			}
		}
		push(&f, Element{Kind: Reference, Internal: insn.Descriptor})
	case opcodes.CategoryInvokeDynamicInsn:
		for range descgrammar.ParameterDescriptors(insn.Descriptor) {
			if _, err := pop(&f); err != nil {
				return nil, err
			}
		}
		if ret := descgrammar.ReturnDescriptor(insn.Descriptor); ret != "V" {
			push(&f, descriptorElement(ret))
		}
	case opcodes.CategoryTableSwitchInsn, opcodes.CategoryLookupSwitchInsn:
		if err := popCategory(&f, Integer); err != nil {
			return nil, err
		}
	}
	return &f, nil
}

func applyInsn(opcode int, f *Frame, method *Method) error {
	switch opcode {
	case opcodes.NOP:
	case opcodes.ACONST_NULL:
		push(f, Element{Kind: Null})
	case opcodes.ICONST_M1, opcodes.ICONST_0, opcodes.ICONST_1, opcodes.ICONST_2,
		opcodes.ICONST_3, opcodes.ICONST_4, opcodes.ICONST_5:
		push(f, Element{Kind: Integer})
	case opcodes.LCONST_0, opcodes.LCONST_1:
		push(f, Element{Kind: Long})
	case opcodes.FCONST_0, opcodes.FCONST_1, opcodes.FCONST_2:
		push(f, Element{Kind: Float})
	case opcodes.DCONST_0, opcodes.DCONST_1:
		push(f, Element{Kind: Double})
	case opcodes.IALOAD, opcodes.BALOAD, opcodes.CALOAD, opcodes.SALOAD:
		if err := popCategory(f, Integer); err != nil {
			return err
		}
		if err := popCategory(f, Reference); err != nil {
			return err
		}
		push(f, Element{Kind: Integer})
	case opcodes.LALOAD:
		if err := popCategory(f, Integer); err != nil {
			return err
		}
		if err := popCategory(f, Reference); err != nil {
			return err
		}
		push(f, Element{Kind: Long})
	case opcodes.FALOAD:
		if err := popCategory(f, Integer); err != nil {
			return err
		}
		if err := popCategory(f, Reference); err != nil {
			return err
		}
		push(f, Element{Kind: Float})
	case opcodes.DALOAD:
		if err := popCategory(f, Integer); err != nil {
			return err
		}
		if err := popCategory(f, Reference); err != nil {
			return err
		}
		push(f, Element{Kind: Double})
	case opcodes.AALOAD:
		if err := popCategory(f, Integer); err != nil {
			return err
		}
		if err := popCategory(f, Reference); err != nil {
			return err
		}
		push(f, Element{Kind: Reference})
	case opcodes.IASTORE, opcodes.BASTORE, opcodes.CASTORE, opcodes.SASTORE:
		if _, err := pop(f); err != nil {
			return err
		}
		if err := popCategory(f, Integer); err != nil {
			return err
		}
		if err := popCategory(f, Reference); err != nil {
			return err
		}
	case opcodes.LASTORE, opcodes.FASTORE, opcodes.DASTORE, opcodes.AASTORE:
		if _, err := pop(f); err != nil {
			return err
		}
		if err := popCategory(f, Integer); err != nil {
			return err
		}
		if err := popCategory(f, Reference); err != nil {
			return err
		}
	case opcodes.POP:
		_, err := pop(f)
		return err
	case opcodes.POP2:
		if _, err := pop(f); err != nil {
			return err
		}
		_, err := pop(f)
		return err
	case opcodes.DUP:
		v, err := pop(f)
		if err != nil {
			return err
		}
		push(f, v)
		push(f, v)
	case opcodes.IADD, opcodes.ISUB, opcodes.IMUL, opcodes.IDIV, opcodes.IREM,
		opcodes.IAND, opcodes.IOR, opcodes.IXOR, opcodes.ISHL, opcodes.ISHR, opcodes.IUSHR:
		if err := popCategory(f, Integer); err != nil {
			return err
		}
		if err := popCategory(f, Integer); err != nil {
			return err
		}
		push(f, Element{Kind: Integer})
	case opcodes.LADD, opcodes.LSUB, opcodes.LMUL, opcodes.LDIV, opcodes.LREM,
		opcodes.LAND, opcodes.LOR, opcodes.LXOR:
		if err := popCategory(f, Long); err != nil {
			return err
		}
		if err := popCategory(f, Long); err != nil {
			return err
		}
		push(f, Element{Kind: Long})
	case opcodes.FADD, opcodes.FSUB, opcodes.FMUL, opcodes.FDIV, opcodes.FREM:
		if err := popCategory(f, Float); err != nil {
			return err
		}
		if err := popCategory(f, Float); err != nil {
			return err
		}
		push(f, Element{Kind: Float})
	case opcodes.DADD, opcodes.DSUB, opcodes.DMUL, opcodes.DDIV, opcodes.DREM:
		if err := popCategory(f, Double); err != nil {
			return err
		}
		if err := popCategory(f, Double); err != nil {
			return err
		}
		push(f, Element{Kind: Double})
	case opcodes.INEG:
		return expectPushSame(f, Integer)
	case opcodes.LNEG:
		return expectPushSame(f, Long)
	case opcodes.FNEG:
		return expectPushSame(f, Float)
	case opcodes.DNEG:
		return expectPushSame(f, Double)
	case opcodes.I2L:
		if err := popCategory(f, Integer); err != nil {
			return err
		}
		push(f, Element{Kind: Long})
	case opcodes.I2F:
		if err := popCategory(f, Integer); err != nil {
			return err
		}
		push(f, Element{Kind: Float})
	case opcodes.I2D:
		if err := popCategory(f, Integer); err != nil {
			return err
		}
		push(f, Element{Kind: Double})
	case opcodes.L2I:
		if err := popCategory(f, Long); err != nil {
			return err
		}
		push(f, Element{Kind: Integer})
	case opcodes.F2I:
		if err := popCategory(f, Float); err != nil {
			return err
		}
		push(f, Element{Kind: Integer})
	case opcodes.D2I:
		if err := popCategory(f, Double); err != nil {
			return err
		}
		push(f, Element{Kind: Integer})
	case opcodes.LCMP, opcodes.FCMPL, opcodes.FCMPG, opcodes.DCMPL, opcodes.DCMPG:
		if _, err := pop(f); err != nil {
			return err
		}
		if _, err := pop(f); err != nil {
			return err
		}
		push(f, Element{Kind: Integer})
	case opcodes.IRETURN, opcodes.FRETURN, opcodes.ARETURN, opcodes.LRETURN, opcodes.DRETURN:
		v, err := pop(f)
		if err != nil {
			return err
		}
		want := ""
		if method.Descriptor != "" {
			want = descgrammar.ReturnDescriptor(method.Descriptor)
		}
		switch {
		case want == "":
		case want == "V":
			return fmt.Errorf("%s in a method returning void", opcodes.NameOf(opcode))
		default:
			if k := descriptorElement(want).Kind; v.Kind != k && !(k == Reference && v.Kind == Null) {
				return fmt.Errorf("returned stack category %d does not match return descriptor %s", v.Kind, want)
			}
		}
	case opcodes.RETURN:
	case opcodes.ARRAYLENGTH:
		if err := popCategory(f, Reference); err != nil {
			return err
		}
		push(f, Element{Kind: Integer})
	case opcodes.ATHROW:
		if err := popCategory(f, Reference); err != nil {
			return err
		}
	case opcodes.MONITORENTER, opcodes.MONITOREXIT:
		if err := popCategory(f, Reference); err != nil {
			return err
		}
	}
	return nil
}

func expectPushSame(f *Frame, kind int) error {
	if err := popCategory(f, kind); err != nil {
		return err
	}
	push(f, Element{Kind: kind})
	return nil
}

func applyVarInsn(insn Insn, f *Frame) error {
	idx := insn.Operand
	switch insn.Opcode {
	case opcodes.ILOAD:
		push(f, localOrTop(f, idx, Integer))
	case opcodes.LLOAD:
		push(f, localOrTop(f, idx, Long))
	case opcodes.FLOAD:
		push(f, localOrTop(f, idx, Float))
	case opcodes.DLOAD:
		push(f, localOrTop(f, idx, Double))
	case opcodes.ALOAD:
		push(f, localOrTop(f, idx, Reference))
	case opcodes.ISTORE, opcodes.LSTORE, opcodes.FSTORE, opcodes.DSTORE, opcodes.ASTORE:
		v, err := pop(f)
		if err != nil {
			return err
		}
		storeLocal(f, idx, v)
	case opcodes.RET:
	}
	return nil
}

func localOrTop(f *Frame, idx, wantKind int) Element {
	if idx >= 0 && idx < len(f.Locals) {
		return f.Locals[idx]
	}
	return Element{Kind: wantKind}
}

func storeLocal(f *Frame, idx int, v Element) {
	for len(f.Locals) <= idx {
		f.Locals = append(f.Locals, Element{Kind: Top})
	}
	f.Locals[idx] = v
}

func applyFieldInsn(insn Insn, f *Frame) error {
	elem := descriptorElement(insn.Descriptor)
	switch insn.Opcode {
	case opcodes.GETSTATIC:
		push(f, elem)
	case opcodes.PUTSTATIC:
		_, err := pop(f)
		return err
	case opcodes.GETFIELD:
		if err := popCategory(f, Reference); err != nil {
			return err
		}
		push(f, elem)
	case opcodes.PUTFIELD:
		if _, err := pop(f); err != nil {
			return err
		}
		return popCategory(f, Reference)
	}
	return nil
}

func applyMethodInsn(insn Insn, f *Frame) error {
	for range descgrammar.ParameterDescriptors(insn.Descriptor) {
		if _, err := pop(f); err != nil {
			return err
		}
	}
	if insn.Opcode != opcodes.INVOKESTATIC {
		if err := popCategory(f, Reference); err != nil {
			return err
		}
	}
	if ret := descgrammar.ReturnDescriptor(insn.Descriptor); ret != "V" {
		push(f, descriptorElement(ret))
	}
	return nil
}

func ldcElement(value interface{}) Element {
	switch value.(type) {
	case int32, int:
		return Element{Kind: Integer}
	case int64:
		return Element{Kind: Long}
	case float32:
		return Element{Kind: Float}
	case float64:
		return Element{Kind: Double}
	case string:
		return Element{Kind: Reference, Internal: "java/lang/String"}
	default:
		return Element{Kind: Reference}
	}
}
