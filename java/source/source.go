// Package source reads Java compilation units with tree-sitter and turns
// every method and constructor into a signature and its Javadoc comment.
package source

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"

	"github.com/dhamidi/style61b/check"
	model "github.com/dhamidi/style61b/java"
	"github.com/dhamidi/style61b/java/javadoc"
)

// File is what the checker needs to know about one compilation unit.
type File struct {
	Path         string
	Package      string
	Imports      []model.Import
	Classes      []model.ClassInfo
	Declarations []Declaration

	// HasErrors is set when tree-sitter had to recover from syntax
	// errors. Declarations are still extracted where possible.
	HasErrors bool
}

// Declaration is a method-like declaration with the Javadoc comment in
// front of it, if any.
type Declaration struct {
	Class     string // fully qualified name of the enclosing class
	Signature *check.MethodSignature
	Comment   *javadoc.CommentBlock
}

// Parse reads a compilation unit. A tree-sitter parser is created per
// call since parsers cannot be shared between goroutines.
func Parse(ctx context.Context, path string, content []byte) (*File, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	w := &walker{
		src:      content,
		lines:    lineStarts(content),
		file:     &File{Path: path, HasErrors: root.HasError()},
		declared: make(map[string]string),
	}
	w.readHeader(root)
	w.walk(root, nil)
	w.resolveSuperclasses()
	return w.file, nil
}

func (w *walker) readHeader(root *sitter.Node) {
	for i := 0; i < int(root.NamedChildCount()); i++ {
		n := root.NamedChild(i)
		switch n.Type() {
		case "package_declaration":
			w.file.Package = declarationName(w.text(n), "package")
		case "import_declaration":
			w.file.Imports = append(w.file.Imports, parseImport(w.text(n)))
		}
	}
}

// declarationName strips the keyword, annotations and the semicolon
// from a package declaration.
func declarationName(text, keyword string) string {
	if i := strings.Index(text, keyword); i >= 0 {
		text = text[i+len(keyword):]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), ";")
	return strings.Join(strings.Fields(text), "")
}

func parseImport(text string) model.Import {
	text = strings.TrimSuffix(strings.TrimSpace(text), ";")
	text = strings.TrimSpace(strings.TrimPrefix(text, "import"))
	imp := model.Import{}
	if fields := strings.Fields(text); len(fields) > 1 && fields[0] == "static" {
		imp.IsStatic = true
		text = strings.TrimPrefix(text, "static")
	}
	name := strings.Join(strings.Fields(text), "")
	if rest, ok := strings.CutSuffix(name, ".*"); ok {
		imp.IsWildcard = true
		name = rest
	}
	imp.QualifiedName = name
	return imp
}

// lineStarts returns the byte offset of the start of every line.
func lineStarts(src []byte) []int {
	starts := []int{0}
	for i, b := range src {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// position converts a tree-sitter point to 1-based line and column, the
// column counted in characters.
func (w *walker) position(p sitter.Point) (line, column int) {
	row := int(p.Row)
	if row >= len(w.lines) {
		return row + 1, int(p.Column) + 1
	}
	start := w.lines[row]
	end := start + int(p.Column)
	if end > len(w.src) {
		end = len(w.src)
	}
	return row + 1, len([]rune(string(w.src[start:end]))) + 1
}

func (w *walker) text(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return n.Content(w.src)
}
