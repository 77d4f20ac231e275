package javadoc

import (
	"regexp"
	"strings"
)

var (
	narrativeParamRE  = regexp.MustCompile(`\b[A-Z_][A-Z0-9_]*\b`)
	narrativeReturnRE = regexp.MustCompile(`(?i)\b(return|yield)(s|ing)?\b`)
)

// Narrative finds parameters and return values described in running
// text instead of tags, e.g. "Returns the sum of A and B."
type Narrative struct{}

// ReturnMentioned reports whether any line of the comment talks about
// returning or yielding a value.
func (Narrative) ReturnMentioned(block *CommentBlock) bool {
	if block == nil {
		return false
	}
	for _, line := range block.Lines {
		if narrativeReturnRE.MatchString(line) {
			return true
		}
	}
	return false
}

// ParamsMentioned returns the subset of params written in upper case
// somewhere in the comment. Names are compared case-insensitively. Type
// parameters are given decorated, as "<T>", and matched on their bare
// name; the returned set uses the names as given.
func (Narrative) ParamsMentioned(block *CommentBlock, params []string) map[string]bool {
	found := make(map[string]bool)
	if block == nil || len(params) == 0 {
		return found
	}
	for _, line := range block.Lines {
		for _, word := range narrativeParamRE.FindAllString(line, -1) {
			for _, p := range params {
				if strings.EqualFold(word, bareName(p)) {
					found[p] = true
				}
			}
		}
	}
	return found
}

func bareName(param string) string {
	if strings.HasPrefix(param, "<") && strings.HasSuffix(param, ">") {
		return param[1 : len(param)-1]
	}
	return param
}
