package source

import (
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/dhamidi/style61b/check"
	model "github.com/dhamidi/style61b/java"
	"github.com/dhamidi/style61b/java/javadoc"
)

type walker struct {
	src      []byte
	lines    []int
	file     *File
	declared map[string]string // simple name -> qualified, shared by every TypeScope of the file
	supers   []rawSuper
	anon     int
}

// rawSuper is a superclass name as written, resolved once every class
// of the file is known.
type rawSuper struct {
	name  string
	scope *model.TypeScope
}

// classContext describes the class whose body is being walked.
type classContext struct {
	name       string
	kind       model.ClassKind
	visibility model.Visibility // effective, including enclosing classes
	scope      *model.TypeScope
}

var typeDeclarations = map[string]model.ClassKind{
	"class_declaration":     model.ClassKindClass,
	"interface_declaration": model.ClassKindInterface,
	"enum_declaration":      model.ClassKindEnum,
	"record_declaration":    model.ClassKindRecord,
}

// walk visits the named children of n. inCode is set inside method and
// initializer bodies, where declared classes are local.
func (w *walker) walk(n *sitter.Node, cls *classContext) {
	w.walkIn(n, cls, false)
}

func (w *walker) walkIn(n *sitter.Node, cls *classContext, inCode bool) {
	if n == nil {
		return
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if kind, ok := typeDeclarations[child.Type()]; ok {
			w.walkType(child, kind, cls, inCode)
			continue
		}

		switch child.Type() {
		case "annotation_type_declaration":
			// Annotation elements are not methods that take documentation.
		case "method_declaration", "constructor_declaration", "compact_constructor_declaration":
			if cls != nil {
				w.addDeclaration(child, cls)
			}
			w.walkIn(child, cls, true)
		case "class_body":
			// Only anonymous class bodies reach here: new T() { ... } and
			// enum constants with a body.
			w.walkIn(child, w.anonymousClass(cls), false)
		case "static_initializer", "block":
			w.walkIn(child, cls, true)
		default:
			w.walkIn(child, cls, inCode)
		}
	}
}

func (w *walker) anonymousClass(outer *classContext) *classContext {
	w.anon++
	ctx := &classContext{
		kind:       model.ClassKindClass,
		visibility: model.VisibilityPrivate,
	}
	if outer != nil {
		ctx.name = outer.name + "$" + strconv.Itoa(w.anon)
		ctx.scope = outer.scope
	}
	return ctx
}

func (w *walker) walkType(n *sitter.Node, kind model.ClassKind, outer *classContext, inCode bool) {
	simple := w.text(n.ChildByFieldName("name"))
	if simple == "" {
		return
	}

	name := simple
	switch {
	case outer != nil && !inCode:
		name = outer.name + "." + simple
	case w.file.Package != "":
		name = w.file.Package + "." + simple
	}
	if _, ok := w.declared[simple]; !ok {
		w.declared[simple] = name
	}

	mods := w.modifiersOf(n)
	visibility := mods.visibility
	if visibility == "" {
		visibility = model.VisibilityPackage
		if outer != nil && (outer.kind == model.ClassKindInterface || outer.kind == model.ClassKindAnnotation) {
			visibility = model.VisibilityPublic
		}
	}
	if inCode {
		visibility = model.VisibilityPrivate
	}
	if outer != nil && !outer.visibility.IsIn(visibility) {
		visibility = outer.visibility
	}

	scope := &model.TypeScope{
		Package:        w.file.Package,
		Imports:        w.file.Imports,
		EnclosingClass: name,
		Declared:       w.declared,
	}

	w.file.Classes = append(w.file.Classes, model.ClassInfo{
		Name:       name,
		SimpleName: simple,
		Package:    w.file.Package,
		Kind:       kind,
	})
	w.supers = append(w.supers, rawSuper{name: w.superclassOf(n, kind), scope: scope})

	ctx := &classContext{name: name, kind: kind, visibility: visibility, scope: scope}
	body := n.ChildByFieldName("body")
	if body == nil {
		return
	}
	w.walk(body, ctx)
}

func (w *walker) superclassOf(n *sitter.Node, kind model.ClassKind) string {
	switch kind {
	case model.ClassKindEnum:
		return "java.lang.Enum"
	case model.ClassKindRecord:
		return "java.lang.Record"
	case model.ClassKindClass:
		super := n.ChildByFieldName("superclass")
		if super == nil {
			return ""
		}
		return typeName(strings.TrimPrefix(strings.TrimSpace(w.text(super)), "extends"))
	}
	return ""
}

func (w *walker) resolveSuperclasses() {
	h := model.NewHierarchy(w.file.Classes)
	for i, s := range w.supers {
		if s.name == "" {
			continue
		}
		w.file.Classes[i].SuperClass = s.scope.Resolve(s.name, h)
	}
}

type modifiers struct {
	visibility  model.Visibility // empty when not written
	static      bool
	annotations []string
}

func (w *walker) modifiersOf(n *sitter.Node) modifiers {
	var m modifiers
	mods := childOfType(n, "modifiers")
	if mods == nil {
		return m
	}
	for i := 0; i < int(mods.ChildCount()); i++ {
		c := mods.Child(i)
		switch c.Type() {
		case "public":
			m.visibility = model.VisibilityPublic
		case "protected":
			m.visibility = model.VisibilityProtected
		case "private":
			m.visibility = model.VisibilityPrivate
		case "static":
			m.static = true
		case "marker_annotation", "annotation":
			m.annotations = append(m.annotations, typeName(w.text(c.ChildByFieldName("name"))))
		}
	}
	return m
}

func (w *walker) addDeclaration(n *sitter.Node, cls *classContext) {
	mods := w.modifiersOf(n)
	line, column := w.position(n.StartPoint())

	visibility := mods.visibility
	if visibility == "" {
		visibility = model.VisibilityPackage
		if cls.kind == model.ClassKindInterface {
			visibility = model.VisibilityPublic
		}
	}
	effective := visibility
	if !cls.visibility.IsIn(effective) {
		effective = cls.visibility
	}

	sig := &check.MethodSignature{
		Name:        w.text(n.ChildByFieldName("name")),
		Line:        line,
		Column:      column,
		Visibility:  effective,
		Annotations: mods.annotations,
		BodyLines:   w.bodyLines(n.ChildByFieldName("body")),
		Scope:       cls.scope,
	}

	if n.Type() == "method_declaration" {
		t := n.ChildByFieldName("type")
		sig.ReturnsValue = t != nil && t.Type() != "void_type"
		sig.InheritDocAllowed = !mods.static && visibility != model.VisibilityPrivate
	}
	if n.Type() != "compact_constructor_declaration" {
		sig.Parameters = w.parameters(n)
	}
	sig.Exceptions = w.exceptions(n)

	w.file.Declarations = append(w.file.Declarations, Declaration{
		Class:     cls.name,
		Signature: sig,
		Comment:   w.commentFor(n),
	})
}

// parameters returns the value parameters followed by the type
// parameters, named "<T>".
func (w *walker) parameters(n *sitter.Node) []check.ParameterDecl {
	var params []check.ParameterDecl

	if formal := fieldOrChild(n, "parameters", "formal_parameters"); formal != nil {
		for i := 0; i < int(formal.NamedChildCount()); i++ {
			p := formal.NamedChild(i)
			var name *sitter.Node
			switch p.Type() {
			case "formal_parameter":
				name = p.ChildByFieldName("name")
			case "spread_parameter":
				if decl := childOfType(p, "variable_declarator"); decl != nil {
					name = decl.ChildByFieldName("name")
				} else {
					name = lastChildOfType(p, "identifier")
				}
			}
			if name == nil {
				continue
			}
			line, column := w.position(name.StartPoint())
			params = append(params, check.ParameterDecl{Name: w.text(name), Line: line, Column: column})
		}
	}

	if types := fieldOrChild(n, "type_parameters", "type_parameters"); types != nil {
		for i := 0; i < int(types.NamedChildCount()); i++ {
			tp := types.NamedChild(i)
			if tp.Type() != "type_parameter" {
				continue
			}
			ident := childOfType(tp, "type_identifier")
			if ident == nil {
				ident = childOfType(tp, "identifier")
			}
			if ident == nil {
				continue
			}
			line, column := w.position(tp.StartPoint())
			params = append(params, check.ParameterDecl{
				Name:            "<" + w.text(ident) + ">",
				IsTypeParameter: true,
				Line:            line,
				Column:          column,
			})
		}
	}
	return params
}

func (w *walker) exceptions(n *sitter.Node) []check.ExceptionDecl {
	throws := childOfType(n, "throws")
	if throws == nil {
		return nil
	}
	var out []check.ExceptionDecl
	for i := 0; i < int(throws.NamedChildCount()); i++ {
		t := throws.NamedChild(i)
		if isComment(t) {
			continue
		}
		line, column := w.position(t.StartPoint())
		out = append(out, check.ExceptionDecl{Name: typeName(w.text(t)), Line: line, Column: column})
	}
	return out
}

// bodyLines counts the lines between the braces of a body. An empty
// body counts as one line, -1 means there is no body.
func (w *walker) bodyLines(body *sitter.Node) int {
	if body == nil {
		return -1
	}
	statements := 0
	for i := 0; i < int(body.NamedChildCount()); i++ {
		if !isComment(body.NamedChild(i)) {
			statements++
		}
	}
	if statements == 0 {
		return 1
	}
	return int(body.EndPoint().Row) - int(body.StartPoint().Row) - 1
}

// commentFor finds the Javadoc of a declaration: the nearest /** */
// comment before it with only line comments in between, or one placed
// after its annotations.
func (w *walker) commentFor(n *sitter.Node) *javadoc.CommentBlock {
	for prev := n.PrevSibling(); prev != nil; prev = prev.PrevSibling() {
		if !isComment(prev) {
			break
		}
		text := w.text(prev)
		if strings.HasPrefix(text, "//") {
			continue
		}
		if isJavadoc(text) {
			return w.commentBlock(prev)
		}
		break
	}

	for _, container := range []*sitter.Node{n, childOfType(n, "modifiers")} {
		if container == nil {
			continue
		}
		for i := 0; i < int(container.ChildCount()); i++ {
			c := container.Child(i)
			if isComment(c) && isJavadoc(w.text(c)) {
				return w.commentBlock(c)
			}
		}
	}
	return nil
}

func (w *walker) commentBlock(n *sitter.Node) *javadoc.CommentBlock {
	line, column := w.position(n.StartPoint())
	return javadoc.NewCommentBlock(w.text(n), line, column)
}

func isJavadoc(text string) bool {
	return strings.HasPrefix(text, "/**") && text != "/**/"
}

func isComment(n *sitter.Node) bool {
	switch n.Type() {
	case "line_comment", "block_comment", "comment":
		return true
	}
	return false
}

// typeName strips generic arguments, annotations and whitespace from a
// type as written.
func typeName(text string) string {
	if i := strings.IndexByte(text, '<'); i >= 0 {
		text = text[:i]
	}
	fields := strings.Fields(text)
	var kept []string
	for _, f := range fields {
		if !strings.HasPrefix(f, "@") {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, "")
}

func childOfType(n *sitter.Node, typ string) *sitter.Node {
	for i := 0; i < int(n.ChildCount()); i++ {
		if c := n.Child(i); c.Type() == typ {
			return c
		}
	}
	return nil
}

func lastChildOfType(n *sitter.Node, typ string) *sitter.Node {
	for i := int(n.ChildCount()) - 1; i >= 0; i-- {
		if c := n.Child(i); c.Type() == typ {
			return c
		}
	}
	return nil
}

func fieldOrChild(n *sitter.Node, field, typ string) *sitter.Node {
	if c := n.ChildByFieldName(field); c != nil {
		return c
	}
	return childOfType(n, typ)
}
