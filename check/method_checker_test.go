package check

import (
	"testing"

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

func newDataflowMethodChecker(name, descriptor string) *MethodChecker {
	return NewMethodChecker(nil, MethodCheckerOptions{
		ClassVersion: opcodes.V1_8,
		Dataflow:     true,
		TypeResolver: identityResolver{},
		Owner:        "com/example/Foo",
		Name:         name,
		Descriptor:   descriptor,
		IsStatic:     true,
	}, newLabelIndex())
}

func TestMethodChecker_DataflowAcceptsBalancedArithmetic(t *testing.T) {
	err := Run(func() {
		mc := newDataflowMethodChecker("sum", "()I")
		mc.VisitCode()
		mc.VisitInsn(opcodes.ICONST_1)
		mc.VisitInsn(opcodes.ICONST_2)
		mc.VisitInsn(opcodes.IADD)
		mc.VisitInsn(opcodes.IRETURN)
		mc.VisitMaxs(2, 1)
		mc.VisitEnd()
	})
	require.NoError(t, err)
}

func TestMethodChecker_DataflowRejectsStackUnderflow(t *testing.T) {
	err := Run(func() {
		mc := newDataflowMethodChecker("bad", "()I")
		mc.VisitCode()
		mc.VisitInsn(opcodes.IADD)
		mc.VisitInsn(opcodes.IRETURN)
		mc.VisitMaxs(2, 1)
		mc.VisitEnd()
	})
	require.Error(t, err)
}

func TestMethodChecker_DataflowRejectsCategoryMismatch(t *testing.T) {
	err := Run(func() {
		mc := newDataflowMethodChecker("bad", "()I")
		mc.VisitCode()
		mc.VisitInsn(opcodes.ICONST_1)
		mc.VisitInsn(opcodes.LCONST_0)
		mc.VisitInsn(opcodes.IADD)
		mc.VisitInsn(opcodes.IRETURN)
		mc.VisitMaxs(2, 1)
		mc.VisitEnd()
	})
	require.Error(t, err)
}

func TestMethodChecker_DataflowNotEnabledSkipsVerification(t *testing.T) {
	err := Run(func() {
		mc := NewMethodChecker(nil, MethodCheckerOptions{ClassVersion: opcodes.V1_8}, newLabelIndex())
		mc.VisitCode()
		mc.VisitInsn(opcodes.IADD)
		mc.VisitMaxs(2, 0)
		mc.VisitEnd()
	})
	require.NoError(t, err)
}
