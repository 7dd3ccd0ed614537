package check

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nacpt/gasm/descgrammar"
)

func TestSignatureChecker_AcceptsGenericClassSignature(t *testing.T) {
	err := Run(func() {
		checker := NewSignatureChecker(nil)
		perr := descgrammar.ParseClassSignature("<T:Ljava/lang/Object;>Ljava/lang/Object;Ljava/util/List<TT;>;", checker)
		require.NoError(t, perr)
	})
	require.NoError(t, err)
}

func TestSignatureChecker_AcceptsMethodSignatureWithException(t *testing.T) {
	err := Run(func() {
		checker := NewSignatureChecker(nil)
		perr := descgrammar.ParseMethodSignature("(I)V^Ljava/io/IOException;", checker)
		require.NoError(t, perr)
	})
	require.NoError(t, err)
}

func TestSignatureChecker_RejectsInterfaceBeforeSuperclass(t *testing.T) {
	err := Run(func() {
		checker := NewSignatureChecker(nil)
		checker.VisitInterface()
	})
	require.Error(t, err)
}

func TestSignatureChecker_RejectsClassBoundBeforeFormalTypeParameter(t *testing.T) {
	err := Run(func() {
		checker := NewSignatureChecker(nil)
		checker.VisitClassBound()
	})
	require.Error(t, err)
}

func TestSignatureChecker_RejectsMalformedClassTypeName(t *testing.T) {
	err := Run(func() {
		checker := NewSignatureChecker(nil)
		super := checker.VisitSuperclass()
		super.VisitClassType("java/lang.Object;")
	})
	require.Error(t, err)
}

func TestSignatureChecker_RejectsEndBeforeClassType(t *testing.T) {
	err := Run(func() {
		checker := NewSignatureChecker(nil)
		super := checker.VisitSuperclass()
		super.VisitEnd()
	})
	require.Error(t, err)
}

func TestSignatureChecker_RejectsTypeArgumentBeforeClassType(t *testing.T) {
	err := Run(func() {
		checker := NewSignatureChecker(nil)
		super := checker.VisitSuperclass()
		super.VisitTypeArgument()
	})
	require.Error(t, err)
}
