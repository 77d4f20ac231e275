package java

import "strings"

// TypeScope is the naming context of a declaration: the compilation
// unit's package and imports plus the types declared in the same file.
// It resolves simple type names the way javac would, as far as the
// available Hierarchy allows.
type TypeScope struct {
	Package        string
	Imports        []Import
	EnclosingClass string            // fully qualified
	Declared       map[string]string // simple name -> fully qualified, for types in this file
}

// Resolve returns the fully qualified name for a type name as written
// in source. Names that cannot be found in h are qualified with the
// current package, so callers can tell them apart with h.Knows.
func (s *TypeScope) Resolve(name string, h *Hierarchy) string {
	name = strings.TrimSpace(name)
	if i := strings.IndexByte(name, '<'); i >= 0 {
		name = name[:i]
	}
	if name == "" {
		return ""
	}
	if s == nil {
		s = &TypeScope{}
	}

	if strings.Contains(name, ".") {
		if h.Knows(name) {
			return name
		}
		// Outer.Inner relative to an imported or declared Outer.
		first, rest, _ := strings.Cut(name, ".")
		if outer := s.resolveSimple(first, h); outer != first && h.Knows(outer+"."+rest) {
			return outer + "." + rest
		}
		return name
	}

	return s.resolveSimple(name, h)
}

func (s *TypeScope) resolveSimple(name string, h *Hierarchy) string {
	if full, ok := s.Declared[name]; ok {
		return full
	}

	for _, imp := range s.Imports {
		if imp.IsWildcard || imp.IsStatic {
			continue
		}
		if SimpleName(imp.QualifiedName) == name {
			return imp.QualifiedName
		}
	}

	if s.EnclosingClass != "" {
		// Members inherited or nested in the enclosing class.
		if candidate := s.EnclosingClass + "." + name; h.Knows(candidate) {
			return candidate
		}
	}

	if s.Package != "" {
		if candidate := s.Package + "." + name; h.Knows(candidate) {
			return candidate
		}
	}

	if candidate := "java.lang." + name; h.Knows(candidate) {
		return candidate
	}

	for _, imp := range s.Imports {
		if !imp.IsWildcard || imp.IsStatic {
			continue
		}
		// imp.QualifiedName is e.g. "java.io" for "import java.io.*"
		if candidate := imp.QualifiedName + "." + name; h.Knows(candidate) {
			return candidate
		}
	}

	if s.Package != "" {
		return s.Package + "." + name
	}
	return name
}
