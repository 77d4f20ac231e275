package java

import "strings"

const (
	ObjectClass           = "java.lang.Object"
	ThrowableClass        = "java.lang.Throwable"
	ErrorClass            = "java.lang.Error"
	RuntimeExceptionClass = "java.lang.RuntimeException"
)

// Hierarchy answers subclass questions over a set of classes. It is
// seeded with the common JDK exception types and extended with the
// classes declared in the sources being checked.
//
// A Hierarchy is built once and then only read, so it can be shared
// between goroutines. Rebuild it with NewHierarchy when sources change.
type Hierarchy struct {
	classes map[string]ClassInfo
}

func NewHierarchy(declared ...[]ClassInfo) *Hierarchy {
	h := &Hierarchy{classes: make(map[string]ClassInfo, len(jdkSuperclasses))}
	for name, super := range jdkSuperclasses {
		h.add(ClassInfo{
			Name:       name,
			SimpleName: SimpleName(name),
			Package:    PackageName(name),
			SuperClass: super,
			Kind:       ClassKindClass,
		})
	}
	for _, classes := range declared {
		for _, c := range classes {
			h.add(c)
		}
	}
	return h
}

func (h *Hierarchy) add(c ClassInfo) {
	if c.Name == "" {
		return
	}
	if c.SuperClass == "" && c.Name != ObjectClass && c.Kind != ClassKindInterface {
		c.SuperClass = ObjectClass
	}
	h.classes[c.Name] = c
}

func (h *Hierarchy) Lookup(name string) (ClassInfo, bool) {
	if h == nil {
		return ClassInfo{}, false
	}
	c, ok := h.classes[name]
	return c, ok
}

func (h *Hierarchy) Knows(name string) bool {
	_, ok := h.Lookup(name)
	return ok
}

// IsSubclass reports whether sub equals super or extends it, directly
// or transitively. known is false when the superclass chain of sub
// leaves the hierarchy before the question could be settled.
func (h *Hierarchy) IsSubclass(sub, super string) (result bool, known bool) {
	seen := make(map[string]bool)
	for name := sub; ; {
		if name == super {
			return true, true
		}
		if seen[name] {
			return false, true
		}
		seen[name] = true
		c, ok := h.Lookup(name)
		if !ok {
			return false, false
		}
		if c.SuperClass == "" {
			return false, true
		}
		name = c.SuperClass
	}
}

// SimpleName returns the last segment of a dotted name.
func SimpleName(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}

// PackageName guesses the package of a fully qualified name: the
// leading lowercase segments.
func PackageName(name string) string {
	parts := strings.Split(name, ".")
	for i, part := range parts {
		if len(part) > 0 && part[0] >= 'A' && part[0] <= 'Z' {
			return strings.Join(parts[:i], ".")
		}
	}
	if len(parts) > 1 {
		return strings.Join(parts[:len(parts)-1], ".")
	}
	return ""
}
