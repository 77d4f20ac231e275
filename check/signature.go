package check

import "github.com/dhamidi/style61b/java"

// MethodSignature describes a method, constructor or compact constructor
// as far as its documentation is concerned.
type MethodSignature struct {
	Name   string
	Line   int
	Column int

	// Parameters lists value parameters in declaration order followed by
	// type parameters, which are named "<T>".
	Parameters []ParameterDecl
	Exceptions []ExceptionDecl

	ReturnsValue      bool
	InheritDocAllowed bool
	Visibility        java.Visibility
	Annotations       []string

	// BodyLines counts the lines strictly between the braces of the body,
	// or is -1 when there is no body.
	BodyLines int

	// Scope resolves the exception names of this declaration. May be nil.
	Scope *java.TypeScope
}

type ParameterDecl struct {
	Name            string
	IsTypeParameter bool
	Line            int
	Column          int
}

type ExceptionDecl struct {
	Name   string // as written in the throws clause
	Line   int
	Column int
}

// HasAnnotation reports whether the declaration carries the annotation,
// comparing simple names so "Override" matches "java.lang.Override".
func (s *MethodSignature) HasAnnotation(name string) bool {
	want := java.SimpleName(name)
	for _, a := range s.Annotations {
		if java.SimpleName(a) == want {
			return true
		}
	}
	return false
}
