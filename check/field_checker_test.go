package check

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldChecker_AcceptsAnnotationThenEnd(t *testing.T) {
	err := Run(func() {
		fc := NewFieldChecker(nil)
		av := fc.VisitAnnotation("Ljava/lang/Deprecated;", true)
		av.VisitEnd()
		fc.VisitEnd()
	})
	require.NoError(t, err)
}

func TestFieldChecker_RejectsMalformedAnnotationDescriptor(t *testing.T) {
	err := Run(func() {
		fc := NewFieldChecker(nil)
		fc.VisitAnnotation("not-a-descriptor", true)
	})
	require.Error(t, err)
}

func TestFieldChecker_RejectsCallAfterEnd(t *testing.T) {
	err := Run(func() {
		fc := NewFieldChecker(nil)
		fc.VisitEnd()
		fc.VisitAttribute(nil)
	})
	require.Error(t, err)
}
