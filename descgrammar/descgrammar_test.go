package descgrammar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nacpt/gasm"
)

// noopSignatureVisitor accepts every production it's driven through; it
// exists only so these tests can exercise the parser's grammar-acceptance
// logic without depending on package check (which imports descgrammar, so
// importing check back here would cycle).
type noopSignatureVisitor struct{}

func (noopSignatureVisitor) VisitFormalTypeParameter(name string)         {}
func (noopSignatureVisitor) VisitClassBound() gasm.SignatureVisitor       { return noopSignatureVisitor{} }
func (noopSignatureVisitor) VisitInterfaceBound() gasm.SignatureVisitor   { return noopSignatureVisitor{} }
func (noopSignatureVisitor) VisitSuperclass() gasm.SignatureVisitor       { return noopSignatureVisitor{} }
func (noopSignatureVisitor) VisitInterface() gasm.SignatureVisitor       { return noopSignatureVisitor{} }
func (noopSignatureVisitor) VisitParameterType() gasm.SignatureVisitor   { return noopSignatureVisitor{} }
func (noopSignatureVisitor) VisitReturnType() gasm.SignatureVisitor      { return noopSignatureVisitor{} }
func (noopSignatureVisitor) VisitExceptionType() gasm.SignatureVisitor   { return noopSignatureVisitor{} }
func (noopSignatureVisitor) VisitBaseType(descriptor byte)                {}
func (noopSignatureVisitor) VisitTypeVariable(name string)                {}
func (noopSignatureVisitor) VisitArrayType() gasm.SignatureVisitor        { return noopSignatureVisitor{} }
func (noopSignatureVisitor) VisitClassType(name string)                   {}
func (noopSignatureVisitor) VisitInnerClassType(name string)               {}
func (noopSignatureVisitor) VisitTypeArgument()                            {}
func (noopSignatureVisitor) VisitTypeArgumentWildcard(wildcard byte) gasm.SignatureVisitor {
	return noopSignatureVisitor{}
}
func (noopSignatureVisitor) VisitEnd() {}

func NewNoopSignatureVisitor() gasm.SignatureVisitor { return noopSignatureVisitor{} }

func TestValidateInternalName(t *testing.T) {
	valid := []string{"java/lang/Object", "com/example/Foo$Bar", "module-info", "package-info"}
	for _, name := range valid {
		assert.NoError(t, ValidateInternalName(name), name)
	}

	invalid := []string{"", "java.lang.Object", "java/lang/Object;", "java//Object", "java/<lang>/Object"}
	for _, name := range invalid {
		assert.Error(t, ValidateInternalName(name), name)
	}
}

func TestValidateFieldDescriptor(t *testing.T) {
	valid := []string{"I", "J", "Z", "Ljava/lang/String;", "[I", "[[Ljava/lang/Object;"}
	for _, d := range valid {
		assert.NoError(t, ValidateFieldDescriptor(d), d)
	}

	invalid := []string{"", "L", "Ljava/lang/String", "Q", "I;"}
	for _, d := range invalid {
		assert.Error(t, ValidateFieldDescriptor(d), d)
	}
}

func TestValidateMethodDescriptor(t *testing.T) {
	valid := []string{"()V", "(I)V", "(Ljava/lang/String;I)Z", "([I[J)V"}
	for _, d := range valid {
		assert.NoError(t, ValidateMethodDescriptor(d), d)
	}

	invalid := []string{"", "(I", "I)V", "()", "()VV"}
	for _, d := range invalid {
		assert.Error(t, ValidateMethodDescriptor(d), d)
	}
}

func TestParameterDescriptorsAndReturnDescriptor(t *testing.T) {
	params := ParameterDescriptors("(ILjava/lang/String;[J)Z")
	assert.Equal(t, []string{"I", "Ljava/lang/String;", "[J"}, params)
	assert.Equal(t, "Z", ReturnDescriptor("(ILjava/lang/String;[J)Z"))
	assert.Equal(t, "V", ReturnDescriptor("()V"))
}

func TestArrayDimensions(t *testing.T) {
	assert.Equal(t, 0, ArrayDimensions("I"))
	assert.Equal(t, 2, ArrayDimensions("[[I"))
}

func TestParseClassSignature(t *testing.T) {
	checker := NewNoopSignatureVisitor()
	assert.NoError(t, ParseClassSignature("<T:Ljava/lang/Object;>Ljava/lang/Object;", checker))
	assert.Error(t, ParseClassSignature("<T:>Ljava/lang/Object;", checker))
}

func TestParseMethodSignature(t *testing.T) {
	checker := NewNoopSignatureVisitor()
	assert.NoError(t, ParseMethodSignature("<T:Ljava/lang/Object;>(TT;)V", checker))
	assert.Error(t, ParseMethodSignature("(TT;", checker))
}

func TestParseFieldSignature(t *testing.T) {
	checker := NewNoopSignatureVisitor()
	assert.NoError(t, ParseFieldSignature("Ljava/util/List<Ljava/lang/String;>;", checker))
	assert.Error(t, ParseFieldSignature("Ljava/util/List<;", checker))
}
