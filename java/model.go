package java

import "fmt"

type Visibility string

const (
	VisibilityPublic    Visibility = "public"
	VisibilityProtected Visibility = "protected"
	VisibilityPackage   Visibility = "package"
	VisibilityPrivate   Visibility = "private"
)

// ParseVisibility accepts the checkstyle scope names as well as the
// modifier keywords.
func ParseVisibility(s string) (Visibility, error) {
	switch s {
	case "public":
		return VisibilityPublic, nil
	case "protected":
		return VisibilityProtected, nil
	case "package", "default":
		return VisibilityPackage, nil
	case "private", "anoninner":
		return VisibilityPrivate, nil
	}
	return "", fmt.Errorf("unknown visibility %q", s)
}

func (v Visibility) rank() int {
	switch v {
	case VisibilityPublic:
		return 3
	case VisibilityProtected:
		return 2
	case VisibilityPackage:
		return 1
	}
	return 0
}

// IsIn reports whether v is at least as visible as scope, the way
// checkstyle scopes nest: public is in every scope, private only in
// the private scope.
func (v Visibility) IsIn(scope Visibility) bool {
	return v.rank() >= scope.rank()
}

type ClassKind string

const (
	ClassKindClass      ClassKind = "class"
	ClassKindInterface  ClassKind = "interface"
	ClassKindEnum       ClassKind = "enum"
	ClassKindAnnotation ClassKind = "annotation"
	ClassKindRecord     ClassKind = "record"
)

// ClassInfo is the part of a type declaration needed to answer
// subtype questions about exceptions.
type ClassInfo struct {
	Name       string // fully qualified, nested classes joined with '.'
	SimpleName string
	Package    string
	SuperClass string // fully qualified, empty for java.lang.Object
	Kind       ClassKind
}

type Import struct {
	QualifiedName string
	IsStatic      bool
	IsWildcard    bool
}
