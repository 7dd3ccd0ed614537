package check

import (
	"github.com/nacpt/gasm"
	"github.com/nacpt/gasm/descgrammar"
)

// Signature-checker states: a 9-state push-down automaton over the
// signature-visitor production calls.
type sigState int

const (
	sigEmpty sigState = iota
	sigFormal
	sigBound
	sigSuper
	sigParam
	sigReturn
	sigSimpleType
	sigClassType
	sigEnd
)

func (s sigState) String() string {
	switch s {
	case sigEmpty:
		return "empty"
	case sigFormal:
		return "formal"
	case sigBound:
		return "bound"
	case sigSuper:
		return "super"
	case sigParam:
		return "param"
	case sigReturn:
		return "return"
	case sigSimpleType:
		return "simple_type"
	case sigClassType:
		return "class_type"
	case sigEnd:
		return "end"
	default:
		return "unknown"
	}
}

// SignatureChecker implements gasm.SignatureVisitor as a push-down
// automaton: each method is allowed only from a declared predecessor set,
// and methods that open a nested type signature hand out a fresh child
// checker starting in sigSimpleType, mirroring the way VisitClassBound,
// VisitSuperclass and friends each introduce one ReferenceTypeSignature.
type SignatureChecker struct {
	delegate gasm.SignatureVisitor
	state    sigState
}

func NewSignatureChecker(delegate gasm.SignatureVisitor) *SignatureChecker {
	return &SignatureChecker{delegate: delegate, state: sigEmpty}
}

const scCtx = "SignatureChecker"

func (s *SignatureChecker) transition(method string, from ...sigState) {
	for _, f := range from {
		if s.state == f {
			return
		}
	}
	panic(stateErr(scCtx+"."+method, "not reachable from state %s", s.state))
}

func (s *SignatureChecker) childOf(delegate gasm.SignatureVisitor) *SignatureChecker {
	return &SignatureChecker{delegate: delegate, state: sigSimpleType}
}

func (s *SignatureChecker) VisitFormalTypeParameter(name string) {
	s.transition("VisitFormalTypeParameter", sigEmpty, sigFormal, sigBound)
	s.state = sigFormal
	if s.delegate != nil {
		s.delegate.VisitFormalTypeParameter(name)
	}
}

func (s *SignatureChecker) VisitClassBound() gasm.SignatureVisitor {
	s.transition("VisitClassBound", sigFormal)
	s.state = sigBound
	var d gasm.SignatureVisitor
	if s.delegate != nil {
		d = s.delegate.VisitClassBound()
	}
	return s.childOf(d)
}

func (s *SignatureChecker) VisitInterfaceBound() gasm.SignatureVisitor {
	s.transition("VisitInterfaceBound", sigFormal, sigBound)
	s.state = sigBound
	var d gasm.SignatureVisitor
	if s.delegate != nil {
		d = s.delegate.VisitInterfaceBound()
	}
	return s.childOf(d)
}

func (s *SignatureChecker) VisitSuperclass() gasm.SignatureVisitor {
	s.transition("VisitSuperclass", sigEmpty, sigFormal, sigBound)
	s.state = sigSuper
	var d gasm.SignatureVisitor
	if s.delegate != nil {
		d = s.delegate.VisitSuperclass()
	}
	return s.childOf(d)
}

func (s *SignatureChecker) VisitInterface() gasm.SignatureVisitor {
	s.transition("VisitInterface", sigSuper)
	var d gasm.SignatureVisitor
	if s.delegate != nil {
		d = s.delegate.VisitInterface()
	}
	return s.childOf(d)
}

func (s *SignatureChecker) VisitParameterType() gasm.SignatureVisitor {
	s.transition("VisitParameterType", sigEmpty, sigFormal, sigBound, sigParam)
	s.state = sigParam
	var d gasm.SignatureVisitor
	if s.delegate != nil {
		d = s.delegate.VisitParameterType()
	}
	return s.childOf(d)
}

func (s *SignatureChecker) VisitReturnType() gasm.SignatureVisitor {
	s.transition("VisitReturnType", sigEmpty, sigFormal, sigBound, sigParam)
	s.state = sigReturn
	var d gasm.SignatureVisitor
	if s.delegate != nil {
		d = s.delegate.VisitReturnType()
	}
	return s.childOf(d)
}

func (s *SignatureChecker) VisitExceptionType() gasm.SignatureVisitor {
	s.transition("VisitExceptionType", sigReturn)
	var d gasm.SignatureVisitor
	if s.delegate != nil {
		d = s.delegate.VisitExceptionType()
	}
	return s.childOf(d)
}

func (s *SignatureChecker) VisitBaseType(descriptor byte) {
	s.transition("VisitBaseType", sigSimpleType)
	s.state = sigEnd
	if s.delegate != nil {
		s.delegate.VisitBaseType(descriptor)
	}
}

func (s *SignatureChecker) VisitTypeVariable(name string) {
	s.transition("VisitTypeVariable", sigSimpleType)
	s.state = sigEnd
	if err := wrapGrammarErr(scCtx+".VisitTypeVariable", descgrammar.ValidateUnqualifiedName(name, false)); err != nil {
		panic(err)
	}
	if s.delegate != nil {
		s.delegate.VisitTypeVariable(name)
	}
}

func (s *SignatureChecker) VisitArrayType() gasm.SignatureVisitor {
	s.transition("VisitArrayType", sigSimpleType)
	var d gasm.SignatureVisitor
	if s.delegate != nil {
		d = s.delegate.VisitArrayType()
	}
	return s.childOf(d)
}

func (s *SignatureChecker) VisitClassType(name string) {
	s.transition("VisitClassType", sigSimpleType)
	s.state = sigClassType
	if err := wrapGrammarErr(scCtx+".VisitClassType", descgrammar.ValidateInternalName(name)); err != nil {
		panic(err)
	}
	if s.delegate != nil {
		s.delegate.VisitClassType(name)
	}
}

func (s *SignatureChecker) VisitInnerClassType(name string) {
	s.transition("VisitInnerClassType", sigClassType)
	if err := wrapGrammarErr(scCtx+".VisitInnerClassType", descgrammar.ValidateUnqualifiedName(name, false)); err != nil {
		panic(err)
	}
	if s.delegate != nil {
		s.delegate.VisitInnerClassType(name)
	}
}

func (s *SignatureChecker) VisitTypeArgument() {
	s.transition("VisitTypeArgument", sigClassType)
	if s.delegate != nil {
		s.delegate.VisitTypeArgument()
	}
}

func (s *SignatureChecker) VisitTypeArgumentWildcard(wildcard byte) gasm.SignatureVisitor {
	s.transition("VisitTypeArgumentWildcard", sigClassType)
	switch wildcard {
	case gasm.WildcardExtends, gasm.WildcardSuper, gasm.WildcardInstanceof:
	default:
		panic(argErr(scCtx+".VisitTypeArgumentWildcard", "wildcard tag %q is not one of +,-,=", wildcard))
	}
	var d gasm.SignatureVisitor
	if s.delegate != nil {
		d = s.delegate.VisitTypeArgumentWildcard(wildcard)
	}
	return s.childOf(d)
}

func (s *SignatureChecker) VisitEnd() {
	s.transition("VisitEnd", sigClassType)
	s.state = sigEnd
	if s.delegate != nil {
		s.delegate.VisitEnd()
	}
}
