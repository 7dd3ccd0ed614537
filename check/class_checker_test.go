package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nacpt/gasm"
	"github.com/nacpt/gasm/opcodes"
)

func acceptSimpleMethod(t *testing.T, mv gasm.MethodVisitor) {
	t.Helper()
	mv.VisitCode()
	mv.VisitInsn(opcodes.RETURN)
	mv.VisitMaxs(0, 1)
	mv.VisitEnd()
}

func TestClassChecker_AcceptsWellFormedClass(t *testing.T) {
	err := Run(func() {
		cc := NewClassChecker(nil, ClassCheckerOptions{ApiVersion: gasm.Api8})
		cc.Visit(opcodes.V1_8, opcodes.ACC_PUBLIC|opcodes.ACC_SUPER, "com/example/Greeter", "", "java/lang/Object", nil)
		mv := cc.VisitMethod(opcodes.ACC_PUBLIC, "<init>", "()V", "", nil)
		mv.VisitCode()
		mv.VisitVarInsn(opcodes.ALOAD, 0)
		mv.VisitMethodInsn(opcodes.INVOKESPECIAL, "java/lang/Object", "<init>", "()V", false)
		mv.VisitInsn(opcodes.RETURN)
		mv.VisitMaxs(1, 1)
		mv.VisitEnd()
		cc.VisitEnd()
	})
	require.NoError(t, err)
}

func TestClassChecker_RejectsInvokevirtualOnInterface(t *testing.T) {
	err := Run(func() {
		cc := NewClassChecker(nil, ClassCheckerOptions{ApiVersion: gasm.Api8})
		cc.Visit(opcodes.V1_8, opcodes.ACC_PUBLIC|opcodes.ACC_INTERFACE|opcodes.ACC_ABSTRACT, "com/example/Greeter", "", "java/lang/Object", nil)
		mv := cc.VisitMethod(opcodes.ACC_PUBLIC, "greet", "()V", "", nil)
		mv.VisitCode()
		mv.VisitVarInsn(opcodes.ALOAD, 0)
		mv.VisitMethodInsn(opcodes.INVOKEVIRTUAL, "com/example/Greeter", "greet", "()V", true)
		mv.VisitInsn(opcodes.RETURN)
		mv.VisitMaxs(1, 1)
		mv.VisitEnd()
	})
	require.Error(t, err)
	var ce *CheckError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, ErrArgument, ce.Kind)
}

func TestClassChecker_RejectsUndefinedLabelAtMaxs(t *testing.T) {
	err := Run(func() {
		cc := NewClassChecker(nil, ClassCheckerOptions{ApiVersion: gasm.Api8})
		cc.Visit(opcodes.V1_8, opcodes.ACC_PUBLIC|opcodes.ACC_SUPER, "com/example/Greeter", "", "java/lang/Object", nil)
		mv := cc.VisitMethod(opcodes.ACC_PUBLIC, "loop", "()V", "", nil)
		mv.VisitCode()
		undefined := &gasm.Label{}
		mv.VisitJumpInsn(opcodes.GOTO, undefined)
		mv.VisitInsn(opcodes.RETURN)
		mv.VisitMaxs(0, 1)
		mv.VisitEnd()
	})
	require.Error(t, err)
}

func TestClassChecker_RejectsNestHostAndNestMemberTogether(t *testing.T) {
	err := Run(func() {
		cc := NewClassChecker(nil, ClassCheckerOptions{ApiVersion: gasm.Api8})
		cc.Visit(opcodes.V1_8, opcodes.ACC_PUBLIC|opcodes.ACC_SUPER, "com/example/Outer$Inner", "", "java/lang/Object", nil)
		cc.VisitNestHost("com/example/Outer")
		cc.VisitNestMember("com/example/Outer$Other")
	})
	require.Error(t, err)
	var ce *CheckError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, ErrState, ce.Kind)
}

func TestClassChecker_RejectsAnnotationAfterEnd(t *testing.T) {
	err := Run(func() {
		cc := NewClassChecker(nil, ClassCheckerOptions{ApiVersion: gasm.Api8})
		cc.Visit(opcodes.V1_8, opcodes.ACC_PUBLIC|opcodes.ACC_SUPER, "com/example/Greeter", "", "java/lang/Object", nil)
		cc.VisitEnd()
		cc.VisitAnnotation("Ljava/lang/Deprecated;", true)
	})
	require.Error(t, err)
}

func TestClassChecker_AcceptsGenericClassSignature(t *testing.T) {
	err := Run(func() {
		cc := NewClassChecker(nil, ClassCheckerOptions{ApiVersion: gasm.Api8})
		cc.Visit(opcodes.V1_8, opcodes.ACC_PUBLIC|opcodes.ACC_SUPER,
			"com/example/Box", "<T:Ljava/lang/Object;>Ljava/lang/Object;", "java/lang/Object", nil)
		cc.VisitEnd()
	})
	require.NoError(t, err)
}

func TestClassChecker_RejectsMalformedSignature(t *testing.T) {
	err := Run(func() {
		cc := NewClassChecker(nil, ClassCheckerOptions{ApiVersion: gasm.Api8})
		cc.Visit(opcodes.V1_8, opcodes.ACC_PUBLIC|opcodes.ACC_SUPER,
			"com/example/Box", "<T:>Ljava/lang/Object;", "java/lang/Object", nil)
	})
	require.Error(t, err)
}

func TestClassChecker_RejectsMethodCallAfterVisitEnd(t *testing.T) {
	err := Run(func() {
		cc := NewClassChecker(nil, ClassCheckerOptions{ApiVersion: gasm.Api8})
		cc.Visit(opcodes.V1_8, opcodes.ACC_PUBLIC|opcodes.ACC_SUPER, "com/example/Greeter", "", "java/lang/Object", nil)
		mv := cc.VisitMethod(opcodes.ACC_PUBLIC, "greet", "()V", "", nil)
		acceptSimpleMethod(t, mv)
		mv.VisitInsn(opcodes.RETURN)
	})
	require.Error(t, err)
}
