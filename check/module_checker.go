package check

import (
	"github.com/nacpt/gasm"
	"github.com/nacpt/gasm/descgrammar"
	"github.com/nacpt/gasm/opcodes"
)

// ModuleChecker enforces module-directive uniqueness: each required module,
// exported package, opened package, used service and provided service is
// unique within a module declaration, tracked by five per-kind sets.
type ModuleChecker struct {
	delegate     gasm.ModuleVisitor
	classVersion int

	mainClassSeen bool
	isOpenModule  bool

	required map[string]bool
	exported map[string]bool
	opened   map[string]bool
	used     map[string]bool
	provided map[string]bool

	endCalled bool
}

func NewModuleChecker(delegate gasm.ModuleVisitor, classVersion int, isOpenModule bool) *ModuleChecker {
	return &ModuleChecker{
		delegate:     delegate,
		classVersion: classVersion,
		isOpenModule: isOpenModule,
		required:     make(map[string]bool),
		exported:     make(map[string]bool),
		opened:       make(map[string]bool),
		used:         make(map[string]bool),
		provided:     make(map[string]bool),
	}
}

const mcCtx = "ModuleChecker"

func (m *ModuleChecker) requireOpen(method string) {
	if m.endCalled {
		panic(stateErr(mcCtx+"."+method, "called after VisitEnd"))
	}
}

func (m *ModuleChecker) VisitMainClass(mainClass string) {
	m.requireOpen("VisitMainClass")
	if m.mainClassSeen {
		panic(stateErr(mcCtx+".VisitMainClass", "main class already visited"))
	}
	if err := wrapGrammarErr(mcCtx+".VisitMainClass", descgrammar.ValidateInternalName(mainClass)); err != nil {
		panic(err)
	}
	m.mainClassSeen = true
	if m.delegate != nil {
		m.delegate.VisitMainClass(mainClass)
	}
}

func (m *ModuleChecker) VisitPackage(packaze string) {
	m.requireOpen("VisitPackage")
	if err := wrapGrammarErr(mcCtx+".VisitPackage", descgrammar.ValidateInternalName(packaze)); err != nil {
		panic(err)
	}
	if m.delegate != nil {
		m.delegate.VisitPackage(packaze)
	}
}

func (m *ModuleChecker) VisitRequire(module string, access int, version string) {
	m.requireOpen("VisitRequire")
	if m.required[module] {
		panic(stateErr(mcCtx+".VisitRequire", "module %q already required", module))
	}
	if err := checkAccess(mcCtx+".VisitRequire", access, requiresMask); err != nil {
		panic(err)
	}
	if module == "java.base" && m.classVersion >= opcodes.V10 {
		if access&(opcodes.ACC_TRANSITIVE|opcodes.ACC_STATIC_PHASE) != 0 {
			panic(argErr(mcCtx+".VisitRequire", "java.base must not be declared transitive or static at class version >= 10"))
		}
	}
	m.required[module] = true
	if m.delegate != nil {
		m.delegate.VisitRequire(module, access, version)
	}
}

func (m *ModuleChecker) VisitExport(packaze string, access int, modules ...string) {
	m.requireOpen("VisitExport")
	if m.exported[packaze] {
		panic(stateErr(mcCtx+".VisitExport", "package %q already exported", packaze))
	}
	if err := checkAccess(mcCtx+".VisitExport", access, exportsOpensMask); err != nil {
		panic(err)
	}
	if err := wrapGrammarErr(mcCtx+".VisitExport", descgrammar.ValidateInternalName(packaze)); err != nil {
		panic(err)
	}
	m.exported[packaze] = true
	if m.delegate != nil {
		m.delegate.VisitExport(packaze, access, modules...)
	}
}

func (m *ModuleChecker) VisitOpen(packaze string, access int, modules ...string) {
	m.requireOpen("VisitOpen")
	if m.isOpenModule {
		panic(stateErr(mcCtx+".VisitOpen", "an open module must not declare any opens directive"))
	}
	if m.opened[packaze] {
		panic(stateErr(mcCtx+".VisitOpen", "package %q already opened", packaze))
	}
	if err := checkAccess(mcCtx+".VisitOpen", access, exportsOpensMask); err != nil {
		panic(err)
	}
	if err := wrapGrammarErr(mcCtx+".VisitOpen", descgrammar.ValidateInternalName(packaze)); err != nil {
		panic(err)
	}
	m.opened[packaze] = true
	if m.delegate != nil {
		m.delegate.VisitOpen(packaze, access, modules...)
	}
}

func (m *ModuleChecker) VisitUse(service string) {
	m.requireOpen("VisitUse")
	if m.used[service] {
		panic(stateErr(mcCtx+".VisitUse", "service %q already used", service))
	}
	if err := wrapGrammarErr(mcCtx+".VisitUse", descgrammar.ValidateInternalName(service)); err != nil {
		panic(err)
	}
	m.used[service] = true
	if m.delegate != nil {
		m.delegate.VisitUse(service)
	}
}

func (m *ModuleChecker) VisitProvide(service string, providers ...string) {
	m.requireOpen("VisitProvide")
	if m.provided[service] {
		panic(stateErr(mcCtx+".VisitProvide", "service %q already provided", service))
	}
	if len(providers) == 0 {
		panic(argErr(mcCtx+".VisitProvide", "provide requires at least one provider"))
	}
	if err := wrapGrammarErr(mcCtx+".VisitProvide", descgrammar.ValidateInternalName(service)); err != nil {
		panic(err)
	}
	for _, p := range providers {
		if err := wrapGrammarErr(mcCtx+".VisitProvide", descgrammar.ValidateInternalName(p)); err != nil {
			panic(err)
		}
	}
	m.provided[service] = true
	if m.delegate != nil {
		m.delegate.VisitProvide(service, providers...)
	}
}

func (m *ModuleChecker) VisitEnd() {
	m.requireOpen("VisitEnd")
	m.endCalled = true
	if m.delegate != nil {
		m.delegate.VisitEnd()
	}
}
