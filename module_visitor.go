package gasm

// ModuleVisitor visits a Java module declaration. Calls must follow:
// [VisitMainClass] VisitPackage* (VisitRequire | VisitExport | VisitOpen |
// VisitUse | VisitProvide)* VisitEnd. Adapted from asm/modulevisitor.go,
// unchanged in shape.
type ModuleVisitor interface {
	VisitMainClass(mainClass string)
	VisitPackage(packaze string)
	VisitRequire(module string, access int, version string)
	VisitExport(packaze string, access int, modules ...string)
	VisitOpen(packaze string, access int, modules ...string)
	VisitUse(service string)
	VisitProvide(service string, providers ...string)
	VisitEnd()
}
