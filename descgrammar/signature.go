package descgrammar

import (
	"fmt"

	"github.com/nacpt/gasm"
)

// This file is a recursive-descent parser/driver for the generic signature
// grammar:
//
//	ClassSignature  := [TypeParams] SuperclassSig InterfaceSig*
//	MethodSignature := [TypeParams] '(' JavaTypeSig* ')' (V | JavaTypeSig) ThrowsSig*
//	FieldSignature  := ReferenceTypeSig
//	ThrowsSig       := '^' (ClassTypeSig | TypeVariableSig)
//
// It both validates the grammar and drives a gasm.SignatureVisitor with the
// same production calls a real signature-bearing attribute reader would
// make, so that package check's SignatureChecker push-down automaton (which
// implements SignatureVisitor) can be exercised end to end: parse a
// signature string once to validate its grammar, and optionally a second
// time against a SignatureChecker to validate its call-sequence invariants.

// ParseClassSignature parses a class signature and drives v.
func ParseClassSignature(signature string, v gasm.SignatureVisitor) error {
	p := &sigParser{s: signature}
	if err := p.parseFormalTypeParameters(v); err != nil {
		return err
	}
	if err := p.parseClassTypeSignature(v.VisitSuperclass()); err != nil {
		return err
	}
	for p.pos < len(p.s) {
		if err := p.parseClassTypeSignature(v.VisitInterface()); err != nil {
			return err
		}
	}
	return nil
}

// ParseMethodSignature parses a method signature and drives v.
func ParseMethodSignature(signature string, v gasm.SignatureVisitor) error {
	p := &sigParser{s: signature}
	if err := p.parseFormalTypeParameters(v); err != nil {
		return err
	}
	if p.peek() != '(' {
		return p.errf("expected '('")
	}
	p.pos++
	for p.peek() != ')' {
		if err := p.parseTypeSignature(v.VisitParameterType()); err != nil {
			return err
		}
	}
	p.pos++
	if p.peek() == 'V' {
		p.pos++
		v.VisitReturnType().VisitBaseType('V')
	} else {
		if err := p.parseTypeSignature(v.VisitReturnType()); err != nil {
			return err
		}
	}
	for p.pos < len(p.s) && p.peek() == '^' {
		p.pos++
		if p.peek() == 'T' {
			if err := p.parseTypeVariableSignature(v.VisitExceptionType()); err != nil {
				return err
			}
		} else {
			if err := p.parseClassTypeSignature(v.VisitExceptionType()); err != nil {
				return err
			}
		}
	}
	return nil
}

// ParseFieldSignature parses a field signature (a single reference type
// signature) and drives v.
func ParseFieldSignature(signature string, v gasm.SignatureVisitor) error {
	p := &sigParser{s: signature}
	return p.parseTypeSignature(v)
}

type sigParser struct {
	s   string
	pos int
}

func (p *sigParser) peek() byte {
	if p.pos >= len(p.s) {
		return 0
	}
	return p.s[p.pos]
}

func (p *sigParser) errf(format string, args ...interface{}) error {
	return errAt("signature", p.s, p.pos, fmt.Sprintf(format, args...))
}

func (p *sigParser) parseFormalTypeParameters(v gasm.SignatureVisitor) error {
	if p.peek() != '<' {
		return nil
	}
	p.pos++
	for p.peek() != '>' {
		start := p.pos
		for p.pos < len(p.s) && p.s[p.pos] != ':' {
			p.pos++
		}
		name := p.s[start:p.pos]
		if err := ValidateUnqualifiedName(name, false); err != nil {
			return err
		}
		v.VisitFormalTypeParameter(name)
		if p.peek() != ':' {
			return p.errf("expected ':'")
		}
		p.pos++
		if p.peek() != ':' && p.peek() != 0 {
			if err := p.parseClassTypeSignature(v.VisitClassBound()); err != nil {
				return err
			}
		}
		for p.peek() == ':' {
			p.pos++
			if err := p.parseClassTypeSignature(v.VisitInterfaceBound()); err != nil {
				return err
			}
		}
	}
	p.pos++ // consume '>'
	return nil
}

func (p *sigParser) parseTypeSignature(v gasm.SignatureVisitor) error {
	switch p.peek() {
	case 'B', 'C', 'D', 'F', 'I', 'J', 'S', 'Z':
		c := p.peek()
		p.pos++
		v.VisitBaseType(c)
		return nil
	case '[':
		p.pos++
		return p.parseTypeSignature(v.VisitArrayType())
	case 'T':
		return p.parseTypeVariableSignature(v)
	case 'L':
		return p.parseClassTypeSignature(v)
	default:
		return p.errf("unexpected character %q in type signature", p.peek())
	}
}

func (p *sigParser) parseTypeVariableSignature(v gasm.SignatureVisitor) error {
	if p.peek() != 'T' {
		return p.errf("expected 'T'")
	}
	p.pos++
	start := p.pos
	for p.pos < len(p.s) && p.s[p.pos] != ';' {
		p.pos++
	}
	if p.pos >= len(p.s) {
		return p.errf("unterminated type variable")
	}
	name := p.s[start:p.pos]
	p.pos++ // consume ';'
	v.VisitTypeVariable(name)
	return nil
}

func (p *sigParser) parseClassTypeSignature(v gasm.SignatureVisitor) error {
	if p.peek() != 'L' {
		return p.errf("expected 'L'")
	}
	p.pos++
	start := p.pos
	for p.pos < len(p.s) && p.s[p.pos] != '<' && p.s[p.pos] != ';' && p.s[p.pos] != '.' {
		p.pos++
	}
	name := p.s[start:p.pos]
	if err := ValidateInternalName(name); err != nil {
		return err
	}
	v.VisitClassType(name)
	if err := p.parseTypeArguments(v); err != nil {
		return err
	}
	for p.peek() == '.' {
		p.pos++
		start = p.pos
		for p.pos < len(p.s) && p.s[p.pos] != '<' && p.s[p.pos] != ';' && p.s[p.pos] != '.' {
			p.pos++
		}
		inner := p.s[start:p.pos]
		if err := ValidateUnqualifiedName(inner, false); err != nil {
			return err
		}
		v.VisitInnerClassType(inner)
		if err := p.parseTypeArguments(v); err != nil {
			return err
		}
	}
	if p.peek() != ';' {
		return p.errf("expected ';' to close class type signature")
	}
	p.pos++
	v.VisitEnd()
	return nil
}

func (p *sigParser) parseTypeArguments(v gasm.SignatureVisitor) error {
	if p.peek() != '<' {
		return nil
	}
	p.pos++
	for p.peek() != '>' {
		switch p.peek() {
		case '*':
			p.pos++
			v.VisitTypeArgument()
		case '+', '-':
			wildcard := p.peek()
			p.pos++
			if err := p.parseTypeSignature(v.VisitTypeArgumentWildcard(wildcard)); err != nil {
				return err
			}
		default:
			if err := p.parseTypeSignature(v.VisitTypeArgumentWildcard('=')); err != nil {
				return err
			}
		}
	}
	p.pos++ // consume '>'
	return nil
}
