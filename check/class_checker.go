package check

import (
	"github.com/nacpt/gasm"
	"github.com/nacpt/gasm/descgrammar"
	"github.com/nacpt/gasm/opcodes"
)

// ClassCheckerOptions configures a ClassChecker.
type ClassCheckerOptions struct {
	// ApiVersion is the visitor capability this checker is built against;
	// experimental calls (record components, permitted subclasses) below
	// gasm.ApiExperimental are rejected as unsupported.
	ApiVersion gasm.ApiVersion
	// Dataflow enables the per-method abstract-interpretation pass; see
	// MethodCheckerOptions.
	Dataflow   bool
	TypeResolver TypeResolver
}

// ClassChecker is the top-level state machine governing which class-level
// events may occur and in what order, and the owner of the label-index map
// shared with every MethodChecker it spawns. It implements gasm.ClassVisitor
// and optionally forwards to a delegate once each call is validated.
type ClassChecker struct {
	delegate gasm.ClassVisitor
	opts     ClassCheckerOptions

	headerSeen     bool
	endSeen        bool
	sourceSeen     bool
	moduleSeen     bool
	nestHostSeen   bool
	nestMemberSeen bool
	outerClassSeen bool

	nestMemberPackage string
	hasNestMemberPkg  bool

	classVersion int
	classAccess  int
	className    string
	isInterface  bool
	isModuleInfo bool

	labels *labelIndex
}

// NewClassChecker creates a checker for one class event stream, optionally
// forwarding validated events to delegate (nil is allowed: validate-only).
func NewClassChecker(delegate gasm.ClassVisitor, opts ClassCheckerOptions) *ClassChecker {
	return &ClassChecker{delegate: delegate, opts: opts, labels: newLabelIndex()}
}

const ccCtx = "ClassChecker"

func (c *ClassChecker) requireOpen(method string) error {
	if !c.headerSeen {
		return stateErr(ccCtx+"."+method, "called before Visit")
	}
	if c.endSeen {
		return stateErr(ccCtx+"."+method, "called after VisitEnd")
	}
	return nil
}

func (c *ClassChecker) Visit(version, access int, name, signature, superName string, interfaces []string) {
	if c.headerSeen {
		panic(stateErr(ccCtx+".Visit", "header already visited"))
	}
	if err := checkAccess(ccCtx+".Visit", access, classMask); err != nil {
		panic(err)
	}
	isInterface := access&opcodes.ACC_INTERFACE != 0
	isModuleInfo := name == "module-info"
	if err := wrapGrammarErr(ccCtx+".Visit", descgrammar.ValidateInternalName(name)); err != nil {
		panic(err)
	}
	if isModuleInfo {
		if superName != "" {
			panic(argErr(ccCtx+".Visit", "module-info must not declare a super class"))
		}
	} else if name != "java/lang/Object" {
		if superName == "" {
			panic(argErr(ccCtx+".Visit", "non-Object class must declare a super class"))
		}
		if err := wrapGrammarErr(ccCtx+".Visit", descgrammar.ValidateInternalName(superName)); err != nil {
			panic(err)
		}
		if isInterface && superName != "java/lang/Object" {
			panic(argErr(ccCtx+".Visit", "interface's super class must be java/lang/Object, got %q", superName))
		}
	} else if superName != "" {
		panic(argErr(ccCtx+".Visit", "java/lang/Object must not declare a super class"))
	}
	for _, iface := range interfaces {
		if err := wrapGrammarErr(ccCtx+".Visit", descgrammar.ValidateInternalName(iface)); err != nil {
			panic(err)
		}
	}
	if signature != "" {
		checker := NewSignatureChecker(nil)
		if err := descgrammar.ParseClassSignature(signature, checker); err != nil {
			panic(wrapGrammarErr(ccCtx+".Visit", err))
		}
	}

	c.headerSeen = true
	c.classVersion = version
	c.classAccess = access
	c.className = name
	c.isInterface = isInterface
	c.isModuleInfo = isModuleInfo

	if c.delegate != nil {
		c.delegate.Visit(version, access, name, signature, superName, interfaces)
	}
}

func (c *ClassChecker) VisitSource(source, debug string) {
	if err := c.requireOpen("VisitSource"); err != nil {
		panic(err)
	}
	if c.sourceSeen {
		panic(stateErr(ccCtx+".VisitSource", "source already visited"))
	}
	c.sourceSeen = true
	if c.delegate != nil {
		c.delegate.VisitSource(source, debug)
	}
}

func (c *ClassChecker) VisitModule(name string, access int, version string) gasm.ModuleVisitor {
	if err := c.requireOpen("VisitModule"); err != nil {
		panic(err)
	}
	if c.moduleSeen {
		panic(stateErr(ccCtx+".VisitModule", "module already visited"))
	}
	if err := checkAccess(ccCtx+".VisitModule", access, moduleMask); err != nil {
		panic(err)
	}
	c.moduleSeen = true
	var delegateMV gasm.ModuleVisitor
	if c.delegate != nil {
		delegateMV = c.delegate.VisitModule(name, access, version)
	}
	return NewModuleChecker(delegateMV, c.classVersion, access&opcodes.ACC_OPEN != 0)
}

func (c *ClassChecker) VisitNestHost(nestHost string) {
	if err := c.requireOpen("VisitNestHost"); err != nil {
		panic(err)
	}
	if c.nestHostSeen {
		panic(stateErr(ccCtx+".VisitNestHost", "nest host already visited"))
	}
	if c.nestMemberSeen {
		panic(stateErr(ccCtx+".VisitNestHost", "visitNestHost and visitMemberOfNest are mutually exclusive"))
	}
	if err := wrapGrammarErr(ccCtx+".VisitNestHost", descgrammar.ValidateInternalName(nestHost)); err != nil {
		panic(err)
	}
	c.nestHostSeen = true
	if c.delegate != nil {
		c.delegate.VisitNestHost(nestHost)
	}
}

func (c *ClassChecker) VisitNestMember(nestMember string) {
	if err := c.requireOpen("VisitNestMember"); err != nil {
		panic(err)
	}
	if c.nestHostSeen {
		panic(stateErr(ccCtx+".VisitNestMember", "visitMemberOfNest and visitNestHost are mutually exclusive"))
	}
	if err := wrapGrammarErr(ccCtx+".VisitNestMember", descgrammar.ValidateInternalName(nestMember)); err != nil {
		panic(err)
	}
	pkg := packageOf(nestMember)
	if !c.hasNestMemberPkg {
		c.nestMemberPackage = pkg
		c.hasNestMemberPkg = true
	} else if pkg != c.nestMemberPackage {
		panic(argErr(ccCtx+".VisitNestMember", "nest member %q is not in package %q", nestMember, c.nestMemberPackage))
	}
	c.nestMemberSeen = true
	if c.delegate != nil {
		c.delegate.VisitNestMember(nestMember)
	}
}

func packageOf(internalName string) string {
	for i := len(internalName) - 1; i >= 0; i-- {
		if internalName[i] == '/' {
			return internalName[:i]
		}
	}
	return ""
}

func (c *ClassChecker) VisitPermittedSubclass(permittedSubclass string) {
	if err := c.requireOpen("VisitPermittedSubclass"); err != nil {
		panic(err)
	}
	if c.opts.ApiVersion < gasm.ApiExperimental {
		panic(unsupportedErr(ccCtx+".VisitPermittedSubclass", "permitted subclasses require API version >= %#x", gasm.ApiExperimental))
	}
	if err := wrapGrammarErr(ccCtx+".VisitPermittedSubclass", descgrammar.ValidateInternalName(permittedSubclass)); err != nil {
		panic(err)
	}
	if c.delegate != nil {
		c.delegate.VisitPermittedSubclass(permittedSubclass)
	}
}

func (c *ClassChecker) VisitOuterClass(owner, name, descriptor string) {
	if err := c.requireOpen("VisitOuterClass"); err != nil {
		panic(err)
	}
	if c.outerClassSeen {
		panic(stateErr(ccCtx+".VisitOuterClass", "outer class already visited"))
	}
	if err := wrapGrammarErr(ccCtx+".VisitOuterClass", descgrammar.ValidateInternalName(owner)); err != nil {
		panic(err)
	}
	if name != "" {
		if err := wrapGrammarErr(ccCtx+".VisitOuterClass", descgrammar.ValidateMethodDescriptor(descriptor)); err != nil {
			panic(err)
		}
	}
	c.outerClassSeen = true
	if c.delegate != nil {
		c.delegate.VisitOuterClass(owner, name, descriptor)
	}
}

func (c *ClassChecker) VisitAnnotation(descriptor string, visible bool) gasm.AnnotationVisitor {
	if err := c.requireOpen("VisitAnnotation"); err != nil {
		panic(err)
	}
	if err := wrapGrammarErr(ccCtx+".VisitAnnotation", descgrammar.ValidateFieldDescriptor(descriptor)); err != nil {
		panic(err)
	}
	var delegateAV gasm.AnnotationVisitor
	if c.delegate != nil {
		delegateAV = c.delegate.VisitAnnotation(descriptor, visible)
	}
	return NewAnnotationChecker(delegateAV, true)
}

func (c *ClassChecker) VisitTypeAnnotation(typeRef int, typePath *gasm.TypePath, descriptor string, visible bool) gasm.AnnotationVisitor {
	if err := c.requireOpen("VisitTypeAnnotation"); err != nil {
		panic(err)
	}
	if err := wrapGrammarErr(ccCtx+".VisitTypeAnnotation", descgrammar.ValidateFieldDescriptor(descriptor)); err != nil {
		panic(err)
	}
	var delegateAV gasm.AnnotationVisitor
	if c.delegate != nil {
		delegateAV = c.delegate.VisitTypeAnnotation(typeRef, typePath, descriptor, visible)
	}
	return NewAnnotationChecker(delegateAV, true)
}

func (c *ClassChecker) VisitAttribute(attribute *gasm.Attribute) {
	if err := c.requireOpen("VisitAttribute"); err != nil {
		panic(err)
	}
	if c.delegate != nil {
		c.delegate.VisitAttribute(attribute)
	}
}

func (c *ClassChecker) VisitInnerClass(name, outerName, innerName string, access int) {
	if err := c.requireOpen("VisitInnerClass"); err != nil {
		panic(err)
	}
	if err := wrapGrammarErr(ccCtx+".VisitInnerClass", descgrammar.ValidateInternalName(name)); err != nil {
		panic(err)
	}
	if innerName != "" {
		if err := validateInnerSimpleName(innerName); err != nil {
			panic(argErr(ccCtx+".VisitInnerClass", "%v", err))
		}
	}
	if err := checkAccess(ccCtx+".VisitInnerClass", access, innerClassMask); err != nil {
		panic(err)
	}
	if c.delegate != nil {
		c.delegate.VisitInnerClass(name, outerName, innerName, access)
	}
}

// validateInnerSimpleName allows a leading run of digits (anonymous-class
// numbering) followed by an ordinary identifier, or an identifier alone.
func validateInnerSimpleName(name string) error {
	i := 0
	for i < len(name) && name[i] >= '0' && name[i] <= '9' {
		i++
	}
	rest := name[i:]
	if rest == "" {
		return nil
	}
	return descgrammar.ValidateUnqualifiedName(rest, false)
}

func (c *ClassChecker) VisitRecordComponent(name, descriptor, signature string) gasm.RecordComponentVisitor {
	if err := c.requireOpen("VisitRecordComponent"); err != nil {
		panic(err)
	}
	if c.opts.ApiVersion < gasm.ApiExperimental {
		panic(unsupportedErr(ccCtx+".VisitRecordComponent", "record components require API version >= %#x", gasm.ApiExperimental))
	}
	if err := wrapGrammarErr(ccCtx+".VisitRecordComponent", descgrammar.ValidateUnqualifiedName(name, false)); err != nil {
		panic(err)
	}
	if err := wrapGrammarErr(ccCtx+".VisitRecordComponent", descgrammar.ValidateFieldDescriptor(descriptor)); err != nil {
		panic(err)
	}
	if signature != "" {
		checker := NewSignatureChecker(nil)
		if err := descgrammar.ParseFieldSignature(signature, checker); err != nil {
			panic(wrapGrammarErr(ccCtx+".VisitRecordComponent", err))
		}
	}
	var delegateRV gasm.RecordComponentVisitor
	if c.delegate != nil {
		delegateRV = c.delegate.VisitRecordComponent(name, descriptor, signature)
	}
	return NewRecordComponentChecker(delegateRV)
}

func (c *ClassChecker) VisitField(access int, name, descriptor, signature string, value interface{}) gasm.FieldVisitor {
	if err := c.requireOpen("VisitField"); err != nil {
		panic(err)
	}
	if err := checkAccess(ccCtx+".VisitField", access, fieldMask); err != nil {
		panic(err)
	}
	if err := wrapGrammarErr(ccCtx+".VisitField", descgrammar.ValidateUnqualifiedName(name, false)); err != nil {
		panic(err)
	}
	if err := wrapGrammarErr(ccCtx+".VisitField", descgrammar.ValidateFieldDescriptor(descriptor)); err != nil {
		panic(err)
	}
	if signature != "" {
		checker := NewSignatureChecker(nil)
		if err := descgrammar.ParseFieldSignature(signature, checker); err != nil {
			panic(wrapGrammarErr(ccCtx+".VisitField", err))
		}
	}
	var delegateFV gasm.FieldVisitor
	if c.delegate != nil {
		delegateFV = c.delegate.VisitField(access, name, descriptor, signature, value)
	}
	return NewFieldChecker(delegateFV)
}

func (c *ClassChecker) VisitMethod(access int, name, descriptor, signature string, exceptions []string) gasm.MethodVisitor {
	if err := c.requireOpen("VisitMethod"); err != nil {
		panic(err)
	}
	if err := checkAccess(ccCtx+".VisitMethod", access, methodMask); err != nil {
		panic(err)
	}
	if err := wrapGrammarErr(ccCtx+".VisitMethod", descgrammar.ValidateMethodName(name)); err != nil {
		panic(err)
	}
	if err := wrapGrammarErr(ccCtx+".VisitMethod", descgrammar.ValidateMethodDescriptor(descriptor)); err != nil {
		panic(err)
	}
	for _, exc := range exceptions {
		if err := wrapGrammarErr(ccCtx+".VisitMethod", descgrammar.ValidateInternalName(exc)); err != nil {
			panic(err)
		}
	}
	if signature != "" {
		checker := NewSignatureChecker(nil)
		if err := descgrammar.ParseMethodSignature(signature, checker); err != nil {
			panic(wrapGrammarErr(ccCtx+".VisitMethod", err))
		}
	}
	var delegateMV gasm.MethodVisitor
	if c.delegate != nil {
		delegateMV = c.delegate.VisitMethod(access, name, descriptor, signature, exceptions)
	}
	isInterfaceMethod := c.isInterface
	return NewMethodChecker(delegateMV, MethodCheckerOptions{
		ClassVersion: c.classVersion,
		IsInterface:  isInterfaceMethod,
		Dataflow:     c.opts.Dataflow,
		TypeResolver: c.opts.TypeResolver,
		Owner:        c.className,
		Name:         name,
		Descriptor:   descriptor,
		IsStatic:     access&opcodes.ACC_STATIC != 0,
	}, c.labels)
}

func (c *ClassChecker) VisitEnd() {
	if err := c.requireOpen("VisitEnd"); err != nil {
		panic(err)
	}
	c.endSeen = true
	if c.delegate != nil {
		c.delegate.VisitEnd()
	}
}
