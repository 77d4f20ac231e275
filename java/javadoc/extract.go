package javadoc

import (
	"strings"
	"unicode"
)

// Extract returns the tags of a comment in the order they appear.
//
// Block tags are only recognised at the start of a line, after the
// leading "/**" or '*' decoration. Inline {@inheritDoc} tags are
// recognised anywhere.
func Extract(block *CommentBlock) []Tag {
	if block == nil {
		return nil
	}

	var tags []Tag
	for i, line := range block.Lines {
		s := &lineScanner{input: []rune(line)}
		s.len = len(s.input)

		lineNo := block.StartLine + i
		colBase := 1
		if i == 0 {
			colBase = block.StartColumn
			s.skipHorizontalWhitespace()
			if s.match("/**") {
				s.advance(3)
			}
		}
		s.skipLinePrefix()

		if tag, ok := s.readBlockTag(); ok {
			tag.Line = lineNo
			tag.Column += colBase
			tags = append(tags, tag)
		}

		for _, col := range s.inheritDocPositions() {
			tags = append(tags, Tag{
				Kind:   KindInheritDoc,
				Name:   "inheritDoc",
				Line:   lineNo,
				Column: col + colBase,
			})
		}
	}
	return tags
}

// lineScanner walks a single comment line.
type lineScanner struct {
	input []rune
	pos   int
	len   int
}

func (s *lineScanner) peek() rune {
	return s.peekAt(0)
}

func (s *lineScanner) peekAt(offset int) rune {
	if s.pos+offset >= s.len {
		return 0
	}
	return s.input[s.pos+offset]
}

func (s *lineScanner) advance(n int) {
	s.pos += n
	if s.pos > s.len {
		s.pos = s.len
	}
}

func (s *lineScanner) match(str string) bool {
	for i, r := range []rune(str) {
		if s.peekAt(i) != r {
			return false
		}
	}
	return true
}

func (s *lineScanner) atCommentEnd() bool {
	return s.peek() == '*' && s.peekAt(1) == '/'
}

func (s *lineScanner) skipHorizontalWhitespace() {
	for s.pos < s.len && (s.peek() == ' ' || s.peek() == '\t' || s.peek() == '\f') {
		s.advance(1)
	}
}

// skipLinePrefix skips leading whitespace and the run of asterisks that
// decorates continuation lines, but not a closing "*/".
func (s *lineScanner) skipLinePrefix() {
	s.skipHorizontalWhitespace()
	for s.peek() == '*' && !s.atCommentEnd() {
		s.advance(1)
	}
	s.skipHorizontalWhitespace()
}

// readBlockTag reads "@name [arg] [rest]" at the current position. The
// returned Column is the 0-based offset of the '@'.
func (s *lineScanner) readBlockTag() (Tag, bool) {
	if s.peek() != '@' || !isJavaIdentifierStart(s.peekAt(1)) {
		return Tag{}, false
	}
	start := s.pos
	s.advance(1)
	name := s.readTagName()

	tag := Tag{Kind: kindOf(name), Name: name, Column: start}
	if takesArgument(tag.Kind) {
		s.skipHorizontalWhitespace()
		tag.FirstArg = s.readArgument()
		if tag.FirstArg == "" {
			tag.Kind = KindUnknown
		}
	}
	tag.Rest = s.rest()
	return tag, true
}

func (s *lineScanner) readTagName() string {
	start := s.pos
	for s.pos < s.len && isTagNamePart(s.peek()) {
		s.advance(1)
	}
	return string(s.input[start:s.pos])
}

// readArgument reads a whitespace-delimited token, stopping before "*/".
func (s *lineScanner) readArgument() string {
	start := s.pos
	for s.pos < s.len && !unicode.IsSpace(s.peek()) && !s.atCommentEnd() {
		s.advance(1)
	}
	return string(s.input[start:s.pos])
}

// rest returns the remaining text of the line without a closing "*/".
func (s *lineScanner) rest() string {
	text := string(s.input[s.pos:])
	if i := strings.Index(text, "*/"); i >= 0 {
		text = text[:i]
	}
	return strings.TrimSpace(text)
}

// inheritDocPositions returns the 0-based offsets of every {@inheritDoc}
// on the line. Whitespace is allowed inside the braces.
func (s *lineScanner) inheritDocPositions() []int {
	var positions []int
	for i := 0; i < s.len; i++ {
		if s.input[i] != '{' {
			continue
		}
		j := skipSpaces(s.input, i+1)
		if !hasPrefix(s.input[j:], "@inheritDoc") {
			continue
		}
		j = skipSpaces(s.input, j+len("@inheritDoc"))
		if j < s.len && s.input[j] == '}' {
			positions = append(positions, i)
			i = j
		}
	}
	return positions
}

func skipSpaces(input []rune, i int) int {
	for i < len(input) && unicode.IsSpace(input[i]) {
		i++
	}
	return i
}

func hasPrefix(input []rune, prefix string) bool {
	p := []rune(prefix)
	if len(input) < len(p) {
		return false
	}
	for i, r := range p {
		if input[i] != r {
			return false
		}
	}
	return true
}

func isJavaIdentifierStart(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_' || ch == '$'
}

func isTagNamePart(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_' || ch == '$' || ch == '-' || ch == '.'
}
