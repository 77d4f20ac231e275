// Package javadoc extracts the block tags of Javadoc comments and scans
// their free text for narrative mentions of parameters and return values.
package javadoc

import "strings"

// Kind classifies a Javadoc tag by the role it plays when a comment is
// reconciled with a method signature.
type Kind int

const (
	KindParam Kind = iota
	KindReturn
	KindThrows
	KindInheritDoc
	KindSeeOrOther
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindParam:
		return "param"
	case KindReturn:
		return "return"
	case KindThrows:
		return "throws"
	case KindInheritDoc:
		return "inheritDoc"
	case KindSeeOrOther:
		return "other"
	}
	return "unknown"
}

// Tag is one tag found in a comment. Line and Column are 1-based and
// point at the '@' of the tag (the '{' for inline tags).
type Tag struct {
	Kind     Kind
	Name     string // tag name without '@', e.g. "exception"
	Line     int
	Column   int
	FirstArg string // parameter or exception name for Param and Throws
	Rest     string
}

// CommentBlock is the raw text of a /** */ comment split into lines.
// StartLine and StartColumn locate the opening "/**".
type CommentBlock struct {
	Lines       []string
	StartLine   int
	StartColumn int
}

// NewCommentBlock splits text into lines. Both \n and \r\n line endings
// are accepted.
func NewCommentBlock(text string, line, column int) *CommentBlock {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return &CommentBlock{
		Lines:       strings.Split(text, "\n"),
		StartLine:   line,
		StartColumn: column,
	}
}

// Text joins the lines back together.
func (b *CommentBlock) Text() string {
	if b == nil {
		return ""
	}
	return strings.Join(b.Lines, "\n")
}

func kindOf(name string) Kind {
	switch name {
	case "param":
		return KindParam
	case "return":
		return KindReturn
	case "throws", "exception":
		return KindThrows
	}
	return KindSeeOrOther
}

// takesArgument reports whether a tag kind needs a first argument to be
// meaningful.
func takesArgument(k Kind) bool {
	return k == KindParam || k == KindThrows
}
