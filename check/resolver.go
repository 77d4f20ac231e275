package check

import (
	"strings"

	"github.com/dhamidi/style61b/java"
)

// ExceptionResolver decides how documented exception names relate to the
// exceptions a declaration throws. Implementations never fail: names
// they cannot resolve degrade to plain name comparison.
type ExceptionResolver interface {
	// Related reports whether a @throws tag naming documented may
	// describe the declared exception.
	Related(documented, declared string, scope *java.TypeScope) bool

	// IsUnchecked reports whether the exception is a RuntimeException or
	// an Error. Unknown exceptions are checked.
	IsUnchecked(name string, scope *java.TypeScope) bool
}

// HierarchyResolver resolves names through a java.Hierarchy.
type HierarchyResolver struct {
	Hierarchy *java.Hierarchy
}

func NewHierarchyResolver(h *java.Hierarchy) HierarchyResolver {
	if h == nil {
		h = java.NewHierarchy()
	}
	return HierarchyResolver{Hierarchy: h}
}

func (r HierarchyResolver) Related(documented, declared string, scope *java.TypeScope) bool {
	doc := scope.Resolve(documented, r.Hierarchy)
	decl := scope.Resolve(declared, r.Hierarchy)
	if doc == decl {
		return true
	}
	if !r.Hierarchy.Knows(doc) || !r.Hierarchy.Knows(decl) {
		return NameResolver{}.Related(documented, declared, scope)
	}
	if ok, _ := r.Hierarchy.IsSubclass(decl, doc); ok {
		return true
	}
	ok, _ := r.Hierarchy.IsSubclass(doc, decl)
	return ok
}

func (r HierarchyResolver) IsUnchecked(name string, scope *java.TypeScope) bool {
	resolved := scope.Resolve(name, r.Hierarchy)
	if ok, _ := r.Hierarchy.IsSubclass(resolved, java.RuntimeExceptionClass); ok {
		return true
	}
	ok, _ := r.Hierarchy.IsSubclass(resolved, java.ErrorClass)
	return ok
}

// NameResolver compares names only. Two qualified names must be equal;
// otherwise the simple names are compared.
type NameResolver struct{}

func (NameResolver) Related(documented, declared string, _ *java.TypeScope) bool {
	documented = strings.TrimSpace(documented)
	declared = strings.TrimSpace(declared)
	if documented == declared {
		return true
	}
	if strings.Contains(documented, ".") && strings.Contains(declared, ".") {
		return false
	}
	return java.SimpleName(documented) == java.SimpleName(declared)
}

func (NameResolver) IsUnchecked(string, *java.TypeScope) bool {
	return false
}
