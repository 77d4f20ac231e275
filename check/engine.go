// Package check verifies that the Javadoc comment of a method or
// constructor documents its signature: every parameter and type
// parameter, the return value and the declared exceptions.
package check

import (
	"github.com/dhamidi/style61b/java/javadoc"
)

// NarrativeScanner finds parameters and return values described in
// running text. javadoc.Narrative is the default.
type NarrativeScanner interface {
	ReturnMentioned(block *javadoc.CommentBlock) bool
	ParamsMentioned(block *javadoc.CommentBlock, params []string) map[string]bool
}

// Engine verifies declarations against a fixed configuration. It holds
// no mutable state and is safe for concurrent use.
type Engine struct {
	cfg       Config
	resolver  ExceptionResolver
	narrative NarrativeScanner
}

type Option func(*Engine)

// WithResolver sets how documented exceptions are matched against
// declared ones. The default knows the JDK exception hierarchy.
func WithResolver(r ExceptionResolver) Option {
	return func(e *Engine) {
		if r != nil {
			e.resolver = r
		}
	}
}

func WithNarrative(n NarrativeScanner) Option {
	return func(e *Engine) {
		if n != nil {
			e.narrative = n
		}
	}
}

func New(cfg Config, opts ...Option) *Engine {
	e := &Engine{
		cfg:       cfg,
		resolver:  NewHierarchyResolver(nil),
		narrative: javadoc.Narrative{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Config() Config {
	return e.cfg
}

// WithResolver returns a copy of the engine using r. The codebase uses
// it to swap in a hierarchy that knows the loaded sources.
func (e *Engine) WithResolver(r ExceptionResolver) *Engine {
	clone := *e
	WithResolver(r)(&clone)
	return &clone
}

// Verify returns the documentation problems of one declaration, in
// reporting order. comment is nil when the declaration has no Javadoc.
func (e *Engine) Verify(sig *MethodSignature, comment *javadoc.CommentBlock) []Diagnostic {
	if sig == nil || !e.cfg.inScope(sig.Visibility) {
		return nil
	}

	if comment == nil {
		if e.missingAllowed(sig) {
			return nil
		}
		return []Diagnostic{{Kind: MissingJavadoc, Line: sig.Line, Column: sig.Column}}
	}

	tags := javadoc.Extract(comment)
	if len(tags) == 1 && tags[0].Kind == javadoc.KindInheritDoc {
		if !sig.InheritDocAllowed {
			return []Diagnostic{{Kind: InvalidInheritDoc, Line: sig.Line, Column: sig.Column}}
		}
		return nil
	}

	p := newPass(e, sig, comment, tags)
	p.checkParams()
	p.checkReturn()
	p.checkThrows()
	p.sweep()
	return p.diags
}

func (e *Engine) missingAllowed(sig *MethodSignature) bool {
	if sig.BodyLines < e.cfg.MinLineCount {
		return true
	}
	if e.cfg.IgnoreMethodNamesRegex != nil && e.cfg.IgnoreMethodNamesRegex.MatchString(sig.Name) {
		return true
	}
	for _, a := range e.cfg.AllowedAnnotations {
		if sig.HasAnnotation(a) {
			return true
		}
	}
	return false
}

// pass is the state of one verification. Tags are bucketed by kind up
// front; consuming a tag marks it used instead of removing it.
type pass struct {
	e       *Engine
	sig     *MethodSignature
	comment *javadoc.CommentBlock
	tags    []javadoc.Tag
	used    []bool
	buckets map[javadoc.Kind][]int

	// reportExpected is false when the comment inherits its documentation
	// or the declaration overrides another; nothing is "expected" then.
	reportExpected bool

	diags []Diagnostic
}

// overrideAnnotation always suppresses "expected" diagnostics, as in
// checkstyle. It is independent of Config.AllowedAnnotations.
const overrideAnnotation = "Override"

func newPass(e *Engine, sig *MethodSignature, comment *javadoc.CommentBlock, tags []javadoc.Tag) *pass {
	p := &pass{
		e:              e,
		sig:            sig,
		comment:        comment,
		tags:           tags,
		used:           make([]bool, len(tags)),
		buckets:        make(map[javadoc.Kind][]int),
		reportExpected: !sig.HasAnnotation(overrideAnnotation),
	}
	for i, tag := range tags {
		if tag.Kind == javadoc.KindInheritDoc {
			p.reportExpected = false
		}
		if tag.Kind == javadoc.KindParam && e.cfg.unusedParam(tag.FirstArg) {
			p.used[i] = true
			continue
		}
		p.buckets[tag.Kind] = append(p.buckets[tag.Kind], i)
	}
	return p
}

func (p *pass) report(d Diagnostic) {
	p.diags = append(p.diags, d)
}

// take consumes the first unused tag of kind k accepted by match and
// returns its index, or -1.
func (p *pass) take(k javadoc.Kind, match func(javadoc.Tag) bool) int {
	for _, i := range p.buckets[k] {
		if !p.used[i] && match(p.tags[i]) {
			p.used[i] = true
			return i
		}
	}
	return -1
}

func (p *pass) checkParams() {
	cfg := p.e.cfg

	var params []ParameterDecl
	for _, param := range p.sig.Parameters {
		if !cfg.unusedParam(param.Name) {
			params = append(params, param)
		}
	}

	var narrative map[string]bool
	if cfg.AllowNarrativeParamTags && len(params) > 0 {
		names := make([]string, len(params))
		for i, param := range params {
			names[i] = param.Name
		}
		narrative = p.e.narrative.ParamsMentioned(p.comment, names)
	}

	var byTag, byNarrative bool
	for _, param := range params {
		name := param.Name
		if p.take(javadoc.KindParam, func(t javadoc.Tag) bool { return t.FirstArg == name }) >= 0 {
			byTag = true
			continue
		}
		if narrative[name] {
			byNarrative = true
			continue
		}
		if p.reportExpected && !cfg.AllowMissingParamTags {
			p.report(Diagnostic{
				Kind:   ExpectedParamTag,
				Line:   param.Line,
				Column: param.Column,
				Args:   []string{name},
			})
		}
	}

	if byTag && byNarrative {
		p.report(Diagnostic{
			Kind:   MixedDocumentationStyle,
			Line:   p.comment.StartLine,
			Column: p.comment.StartColumn,
		})
	}

	for _, i := range p.buckets[javadoc.KindParam] {
		if p.used[i] {
			continue
		}
		p.used[i] = true
		tag := p.tags[i]
		p.report(Diagnostic{
			Kind:   UnusedTag,
			Line:   tag.Line,
			Column: tag.Column,
			Args:   []string{"@param", tag.FirstArg},
		})
	}
}

func (p *pass) checkReturn() {
	if !p.sig.ReturnsValue {
		// @return on a void method is left for the sweep.
		return
	}
	cfg := p.e.cfg

	found := false
	for _, i := range p.buckets[javadoc.KindReturn] {
		p.used[i] = true
		if !found {
			found = true
			continue
		}
		tag := p.tags[i]
		p.report(Diagnostic{
			Kind:   DuplicateTag,
			Line:   tag.Line,
			Column: tag.Column,
			Args:   []string{"@return"},
		})
	}

	if found || !p.reportExpected || cfg.AllowMissingReturnTag {
		return
	}
	if cfg.AllowNarrativeReturnTags && p.e.narrative.ReturnMentioned(p.comment) {
		return
	}
	p.report(Diagnostic{Kind: ExpectedReturnTag, Line: p.sig.Line, Column: p.sig.Column})
}

func (p *pass) checkThrows() {
	cfg := p.e.cfg
	scope := p.sig.Scope
	declared := p.sig.Exceptions
	found := make([]bool, len(declared))
	foundNames := make(map[string]bool)

	for _, i := range p.buckets[javadoc.KindThrows] {
		p.used[i] = true
		tag := p.tags[i]
		documented := tag.FirstArg
		if foundNames[documented] {
			continue
		}

		matched := false
		for j, ex := range declared {
			if !found[j] && ex.Name == documented {
				found[j] = true
				matched = true
				break
			}
		}
		if !matched {
			matched = p.matchRelated(documented, found)
		}
		if matched {
			foundNames[documented] = true
			continue
		}

		if cfg.AllowUndeclaredRTE && p.e.resolver.IsUnchecked(documented, scope) {
			continue
		}
		p.report(Diagnostic{
			Kind:   UnusedTag,
			Line:   tag.Line,
			Column: tag.Column,
			Args:   []string{"@throws", documented},
		})
	}

	if !p.reportExpected || cfg.AllowMissingThrowsTags {
		return
	}
	for j, ex := range declared {
		if found[j] {
			continue
		}
		p.report(Diagnostic{
			Kind:   ExpectedThrowsTag,
			Line:   ex.Line,
			Column: ex.Column,
			Args:   []string{ex.Name},
		})
	}
}

// matchRelated marks the first unmatched declared exception related to
// documented. A tag related only to exceptions that are already matched
// still counts as matched.
func (p *pass) matchRelated(documented string, found []bool) bool {
	related := -1
	for j, ex := range p.sig.Exceptions {
		if !p.e.resolver.Related(documented, ex.Name, p.sig.Scope) {
			continue
		}
		if !found[j] {
			found[j] = true
			return true
		}
		if related < 0 {
			related = j
		}
	}
	return related >= 0
}

// sweep reports every tag nothing else accounted for.
func (p *pass) sweep() {
	for i, tag := range p.tags {
		if p.used[i] || tag.Kind == javadoc.KindSeeOrOther || tag.Kind == javadoc.KindInheritDoc {
			continue
		}
		p.used[i] = true
		p.report(Diagnostic{Kind: UnusedTag, Line: tag.Line, Column: tag.Column})
	}
}
