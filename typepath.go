package gasm

import (
	"strconv"
	"strings"
)

// Type-path step kinds.
const (
	TypePathArrayElement = 0
	TypePathInnerType    = 1
	TypePathWildcardBound = 2
	TypePathTypeArgument = 3
)

// TypePath locates a type within another type for type annotations. The
// checker passes it through opaquely without inspecting its steps;
// ParseTypePath rejects an external form with an unknown step character.
type TypePath struct {
	steps []typePathStep
}

type typePathStep struct {
	kind     int
	argument int
}

// ParseTypePath parses the dotted/bracketed external form ASM uses, e.g.
// "[.[*0;" -- '[' = array element, '.' = inner type, '*' = wildcard bound,
// digits followed by ';' = a type argument index. Adapted from the
// commented-out Java in asm/typepath.go's NewTypePathFromString, completed.
func ParseTypePath(typePath string) (*TypePath, error) {
	if typePath == "" {
		return nil, nil
	}
	var steps []typePathStep
	i := 0
	for i < len(typePath) {
		c := typePath[i]
		switch {
		case c == '[':
			steps = append(steps, typePathStep{kind: TypePathArrayElement})
			i++
		case c == '.':
			steps = append(steps, typePathStep{kind: TypePathInnerType})
			i++
		case c == '*':
			steps = append(steps, typePathStep{kind: TypePathWildcardBound})
			i++
		case c >= '0' && c <= '9':
			j := i
			for j < len(typePath) && typePath[j] >= '0' && typePath[j] <= '9' {
				j++
			}
			arg, err := strconv.Atoi(typePath[i:j])
			if err != nil {
				return nil, err
			}
			i = j
			if i < len(typePath) && typePath[i] == ';' {
				i++
			}
			steps = append(steps, typePathStep{kind: TypePathTypeArgument, argument: arg})
		default:
			return nil, errInvalidTypePath(typePath)
		}
	}
	return &TypePath{steps: steps}, nil
}

func errInvalidTypePath(s string) error {
	return &typePathError{s}
}

type typePathError struct{ s string }

func (e *typePathError) Error() string { return "invalid type path: " + e.s }

// Length returns the number of steps in this path.
func (t *TypePath) Length() int {
	if t == nil {
		return 0
	}
	return len(t.steps)
}

// Step returns the step kind at index.
func (t *TypePath) Step(index int) int {
	return t.steps[index].kind
}

// StepArgument returns the type-argument index at index (only meaningful
// when Step(index) == TypePathTypeArgument).
func (t *TypePath) StepArgument(index int) int {
	return t.steps[index].argument
}

func (t *TypePath) String() string {
	if t == nil {
		return ""
	}
	var b strings.Builder
	for _, s := range t.steps {
		switch s.kind {
		case TypePathArrayElement:
			b.WriteByte('[')
		case TypePathInnerType:
			b.WriteByte('.')
		case TypePathWildcardBound:
			b.WriteByte('*')
		case TypePathTypeArgument:
			b.WriteString(strconv.Itoa(s.argument))
			b.WriteByte(';')
		}
	}
	return b.String()
}
