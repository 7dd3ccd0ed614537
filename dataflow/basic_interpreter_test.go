package dataflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nacpt/gasm/opcodes"
)

type identityResolver struct{}

func (identityResolver) IsSubtype(a, b string) bool { return a == b }
func (identityResolver) CommonSupertype(a, b string) string {
	if a == b {
		return a
	}
	return "java/lang/Object"
}
func (identityResolver) IsInterface(t string) bool { return false }

func TestBasicInterpreter_AcceptsBalancedArithmetic(t *testing.T) {
	method := &Method{
		Owner:      "com/example/Math",
		Name:       "sum",
		Descriptor: "()I",
		IsStatic:   true,
		MaxStack:   2,
		MaxLocals:  0,
		Insns: []Insn{
			{Opcode: opcodes.ICONST_1},
			{Opcode: opcodes.ICONST_2},
			{Opcode: opcodes.IADD},
			{Opcode: opcodes.IRETURN},
		},
	}
	var interp BasicInterpreter
	frames, err := interp.Verify(method, identityResolver{})
	require.NoError(t, err)
	assert.Len(t, frames, 4)
}

func TestBasicInterpreter_RejectsStackUnderflow(t *testing.T) {
	method := &Method{
		Owner:      "com/example/Math",
		Name:       "bad",
		Descriptor: "()I",
		IsStatic:   true,
		MaxStack:   2,
		MaxLocals:  0,
		Insns: []Insn{
			{Opcode: opcodes.IADD},
		},
	}
	var interp BasicInterpreter
	_, err := interp.Verify(method, identityResolver{})
	require.Error(t, err)
	var verr *VerifyError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 0, verr.InsnIndex)
}

func TestBasicInterpreter_RejectsCategoryMismatch(t *testing.T) {
	method := &Method{
		Owner:      "com/example/Math",
		Name:       "bad",
		Descriptor: "()F",
		IsStatic:   true,
		MaxStack:   2,
		MaxLocals:  0,
		Insns: []Insn{
			{Opcode: opcodes.FCONST_0},
			{Opcode: opcodes.ICONST_1},
			{Opcode: opcodes.FADD},
		},
	}
	var interp BasicInterpreter
	_, err := interp.Verify(method, identityResolver{})
	require.Error(t, err)
}
