package check

import (
	"regexp"

	"github.com/dhamidi/style61b/java"
)

// Config holds the options of the engine. Patterns are matched with
// MatchString, so they must be anchored to match whole names; the
// config package does that when it compiles them.
type Config struct {
	AllowNarrativeParamTags  bool
	AllowNarrativeReturnTags bool
	UnusedParamFormat        *regexp.Regexp
	IgnoreMethodNamesRegex   *regexp.Regexp

	AllowMissingParamTags  bool
	AllowMissingReturnTag  bool
	AllowMissingThrowsTags bool
	AllowUndeclaredRTE     bool

	// MinLineCount exempts declarations whose body is shorter from
	// needing a comment at all.
	MinLineCount       int
	AllowedAnnotations []string

	// Only declarations visible in Scope are checked, except those with
	// exactly the ExcludeScope visibility.
	Scope        java.Visibility
	ExcludeScope java.Visibility // empty for none
}

func DefaultConfig() Config {
	return Config{
		MinLineCount:       -1,
		AllowedAnnotations: []string{"Override"},
		Scope:              java.VisibilityPrivate,
	}
}

func (c Config) inScope(v java.Visibility) bool {
	if v == "" {
		v = java.VisibilityPublic
	}
	scope := c.Scope
	if scope == "" {
		scope = java.VisibilityPrivate
	}
	return v.IsIn(scope) && v != c.ExcludeScope
}

func (c Config) unusedParam(name string) bool {
	return c.UnusedParamFormat != nil && c.UnusedParamFormat.MatchString(name)
}
