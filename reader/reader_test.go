package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nacpt/gasm"
)

// recordingClassVisitor records just enough of the call sequence to assert
// a ClassReader drove the expected header and a matching VisitEnd, without
// needing every method to do something.
type recordingClassVisitor struct {
	visited    bool
	version    int
	access     int
	name       string
	signature  string
	superName  string
	interfaces []string
	ended      bool
}

func (r *recordingClassVisitor) Visit(version, access int, name, signature, superName string, interfaces []string) {
	r.visited = true
	r.version = version
	r.access = access
	r.name = name
	r.signature = signature
	r.superName = superName
	r.interfaces = interfaces
}
func (r *recordingClassVisitor) VisitSource(source, debug string)              {}
func (r *recordingClassVisitor) VisitModule(name string, access int, version string) gasm.ModuleVisitor {
	return nil
}
func (r *recordingClassVisitor) VisitNestHost(nestHost string)   {}
func (r *recordingClassVisitor) VisitOuterClass(owner, name, descriptor string) {}
func (r *recordingClassVisitor) VisitAnnotation(descriptor string, visible bool) gasm.AnnotationVisitor {
	return nil
}
func (r *recordingClassVisitor) VisitTypeAnnotation(typeRef int, typePath *gasm.TypePath, descriptor string, visible bool) gasm.AnnotationVisitor {
	return nil
}
func (r *recordingClassVisitor) VisitAttribute(attribute *gasm.Attribute) {}
func (r *recordingClassVisitor) VisitNestMember(nestMember string)        {}
func (r *recordingClassVisitor) VisitPermittedSubclass(permittedSubclass string) {}
func (r *recordingClassVisitor) VisitInnerClass(name, outerName, innerName string, access int) {}
func (r *recordingClassVisitor) VisitRecordComponent(name, descriptor, signature string) gasm.RecordComponentVisitor {
	return nil
}
func (r *recordingClassVisitor) VisitField(access int, name, descriptor, signature string, value interface{}) gasm.FieldVisitor {
	return nil
}
func (r *recordingClassVisitor) VisitMethod(access int, name, descriptor, signature string, exceptions []string) gasm.MethodVisitor {
	return nil
}
func (r *recordingClassVisitor) VisitEnd() { r.ended = true }

// minimalClassBytes builds a well-formed, attribute-free, member-free class
// file: `public class A extends java/lang/Object`, class file version 52.0.
func minimalClassBytes() []byte {
	return []byte{
		0xCA, 0xFE, 0xBA, 0xBE, // magic
		0x00, 0x00, // minor version
		0x00, 0x34, // major version 52
		0x00, 0x05, // constant_pool_count = 5
		0x07, 0x00, 0x02, // #1 = Class #2
		0x01, 0x00, 0x01, 'A', // #2 = Utf8 "A"
		0x07, 0x00, 0x04, // #3 = Class #4
		0x01, 0x00, 0x10, // #4 = Utf8 "java/lang/Object"
		'j', 'a', 'v', 'a', '/', 'l', 'a', 'n', 'g', '/', 'O', 'b', 'j', 'e', 'c', 't',
		0x00, 0x21, // access_flags: ACC_PUBLIC | ACC_SUPER
		0x00, 0x01, // this_class = #1
		0x00, 0x03, // super_class = #3
		0x00, 0x00, // interfaces_count = 0
		0x00, 0x00, // attributes_count = 0
		0x00, 0x00, // fields_count = 0
		0x00, 0x00, // methods_count = 0
	}
}

func TestClassReader_DecodesMinimalClass(t *testing.T) {
	cr, err := NewClassReader(minimalClassBytes())
	require.NoError(t, err)

	rec := &recordingClassVisitor{}
	cr.Accept(rec, 0)

	assert.True(t, rec.visited)
	assert.Equal(t, "A", rec.name)
	assert.Equal(t, "java/lang/Object", rec.superName)
	assert.Empty(t, rec.interfaces)
	assert.Equal(t, 0x21, rec.access)
	assert.True(t, rec.ended)
}

func TestNewClassReader_RejectsTruncatedInput(t *testing.T) {
	_, err := NewClassReader([]byte{0xCA, 0xFE})
	require.Error(t, err)
}

func TestNewClassReader_RejectsUnknownConstantTag(t *testing.T) {
	b := []byte{
		0xCA, 0xFE, 0xBA, 0xBE,
		0x00, 0x00,
		0x00, 0x34,
		0x00, 0x02, // constant_pool_count = 2
		0xFF, 0x00, 0x00, // unknown tag
	}
	_, err := NewClassReader(b)
	require.Error(t, err)
}
