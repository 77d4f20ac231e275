package check

import "fmt"

// Name is the check name reported with every diagnostic, as checkstyle
// would name the module.
const Name = "JavadocMethod61b"

// Kind identifies the class of a documentation problem.
type Kind string

const (
	MissingJavadoc          Kind = "MissingJavadoc"
	InvalidInheritDoc       Kind = "InvalidInheritDoc"
	ExpectedParamTag        Kind = "ExpectedParamTag"
	ExpectedReturnTag       Kind = "ExpectedReturnTag"
	ExpectedThrowsTag       Kind = "ExpectedThrowsTag"
	DuplicateTag            Kind = "DuplicateTag"
	UnusedTag               Kind = "UnusedTag"
	MixedDocumentationStyle Kind = "MixedDocumentationStyle"
)

// Kinds lists every diagnostic kind in reporting order.
var Kinds = []Kind{
	MissingJavadoc,
	InvalidInheritDoc,
	ExpectedParamTag,
	MixedDocumentationStyle,
	UnusedTag,
	ExpectedReturnTag,
	DuplicateTag,
	ExpectedThrowsTag,
}

// Diagnostic is one problem found in a declaration's documentation.
// Line and Column are 1-based.
type Diagnostic struct {
	Kind   Kind
	Line   int
	Column int
	Args   []string
}

// Message renders the diagnostic with checkstyle's wording.
func (d Diagnostic) Message() string {
	switch d.Kind {
	case MissingJavadoc:
		return "Missing a Javadoc comment."
	case InvalidInheritDoc:
		return "Invalid use of the '{@inheritDoc}' tag."
	case ExpectedParamTag:
		return fmt.Sprintf("Expected @param tag for '%s'.", d.arg(0))
	case ExpectedReturnTag:
		return "Expected an @return tag."
	case ExpectedThrowsTag:
		return fmt.Sprintf("Expected @throws tag for '%s'.", d.arg(0))
	case DuplicateTag:
		return fmt.Sprintf("Duplicate %s tag.", d.arg(0))
	case UnusedTag:
		if len(d.Args) >= 2 {
			return fmt.Sprintf("Unused %s tag for '%s'.", d.Args[0], d.Args[1])
		}
		return "Unused Javadoc tag."
	case MixedDocumentationStyle:
		return "Parameters are documented with both @param tags and narrative text; use one style."
	}
	return string(d.Kind)
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d: %s", d.Line, d.Column, d.Message())
}

func (d Diagnostic) arg(i int) string {
	if i < len(d.Args) {
		return d.Args[i]
	}
	return ""
}
