package check

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nacpt/gasm/opcodes"
)

func TestModuleChecker_AcceptsDistinctRequires(t *testing.T) {
	err := Run(func() {
		mc := NewModuleChecker(nil, opcodes.V1_8, false)
		mc.VisitRequire("java.base", 0, "")
		mc.VisitRequire("com.example.lib", opcodes.ACC_TRANSITIVE, "1.0")
		mc.VisitEnd()
	})
	require.NoError(t, err)
}

func TestModuleChecker_RejectsDuplicateRequire(t *testing.T) {
	err := Run(func() {
		mc := NewModuleChecker(nil, opcodes.V1_8, false)
		mc.VisitRequire("com.example.lib", 0, "")
		mc.VisitRequire("com.example.lib", 0, "")
	})
	require.Error(t, err)
}

func TestModuleChecker_RejectsTransitiveJavaBaseAtV10(t *testing.T) {
	err := Run(func() {
		mc := NewModuleChecker(nil, opcodes.V10, false)
		mc.VisitRequire("java.base", opcodes.ACC_TRANSITIVE, "")
	})
	require.Error(t, err)
}

func TestModuleChecker_RejectsCallAfterEnd(t *testing.T) {
	err := Run(func() {
		mc := NewModuleChecker(nil, opcodes.V1_8, false)
		mc.VisitEnd()
		mc.VisitUse("com/example/Service")
	})
	require.Error(t, err)
}
