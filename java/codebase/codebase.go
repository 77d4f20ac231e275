package codebase

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"

	"github.com/dhamidi/style61b/check"
	"github.com/dhamidi/style61b/config"
	"github.com/dhamidi/style61b/java"
	"github.com/dhamidi/style61b/java/source"
)

var log = commonlog.GetLogger("style61b.codebase")

// Codebase holds the parsed Java files being checked. Classes declared
// in any loaded file take part in exception hierarchy lookups for every
// other file.
type Codebase struct {
	mu        sync.RWMutex
	engine    *check.Engine
	checker   *check.Engine // engine bound to the current hierarchy
	suppress  *config.Suppressor
	workers   int
	files     map[string]*FileInfo
	hierarchy *java.Hierarchy
}

type FileInfo struct {
	Path     string
	Content  []byte
	Source   *source.File
	ParseErr error
}

// Result holds the diagnostics of one file, or the error that kept it
// from being checked.
type Result struct {
	Path        string
	Diagnostics []check.Diagnostic
	Err         error
}

type Option func(*Codebase)

func WithSuppressor(s *config.Suppressor) Option {
	return func(c *Codebase) {
		c.suppress = s
	}
}

// WithWorkers bounds the number of files parsed or checked at once.
// Zero or less means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *Codebase) {
		c.workers = n
	}
}

func New(engine *check.Engine, opts ...Option) *Codebase {
	c := &Codebase{
		engine: engine,
		files:  make(map[string]*FileInfo),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.workers <= 0 {
		c.workers = runtime.GOMAXPROCS(0)
	}
	c.rebuildLocked()
	return c
}

// EngineFromConfig compiles cfg into an engine and the codebase options
// its suppressions and worker count call for.
func EngineFromConfig(cfg *config.Config) (*check.Engine, []Option, error) {
	engineConfig, err := cfg.Engine()
	if err != nil {
		return nil, nil, err
	}
	suppressor, err := cfg.Suppressor()
	if err != nil {
		return nil, nil, err
	}
	opts := []Option{WithSuppressor(suppressor)}
	if cfg.Workers > 0 {
		opts = append(opts, WithWorkers(cfg.Workers))
	}
	return check.New(engineConfig), opts, nil
}

// FromConfig creates an empty codebase checked as cfg describes.
func FromConfig(cfg *config.Config) (*Codebase, error) {
	engine, opts, err := EngineFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return New(engine, opts...), nil
}

// Load reads and parses the Java files named by paths. Directories are
// walked recursively, skipping hidden ones. Files that cannot be read or
// parsed are kept with their error; only a missing path fails Load.
func (c *Codebase) Load(ctx context.Context, paths []string) error {
	files, err := collectFiles(paths)
	if err != nil {
		return err
	}

	infos := make([]*FileInfo, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			infos[i] = parseFile(ctx, path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, info := range infos {
		c.files[info.Path] = info
	}
	c.rebuildLocked()
	log.Infof("loaded %d files", len(infos))
	return nil
}

func collectFiles(paths []string) ([]string, error) {
	var files []string
	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", root, err)
		}
		if !info.IsDir() {
			files = append(files, root)
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() {
				if path != root && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if IsJavaFile(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}
	return files, nil
}

func IsJavaFile(path string) bool {
	return filepath.Ext(path) == ".java"
}

func parseFile(ctx context.Context, path string) *FileInfo {
	content, err := os.ReadFile(path)
	if err != nil {
		return &FileInfo{Path: path, ParseErr: fmt.Errorf("read %s: %w", path, err)}
	}
	return parseContent(ctx, path, content)
}

func parseContent(ctx context.Context, path string, content []byte) *FileInfo {
	f, err := source.Parse(ctx, path, content)
	if err != nil {
		return &FileInfo{Path: path, Content: content, ParseErr: err}
	}
	if f.HasErrors {
		log.Warningf("%s: syntax errors, checking what could be recovered", path)
	}
	return &FileInfo{Path: path, Content: content, Source: f}
}

func (c *Codebase) ScanFile(ctx context.Context, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return c.UpdateFile(ctx, path, content)
}

// UpdateFile replaces the content of a file, e.g. an unsaved editor
// buffer.
func (c *Codebase) UpdateFile(ctx context.Context, path string, content []byte) error {
	info := parseContent(ctx, path, content)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.files[path] = info
	c.rebuildLocked()
	return info.ParseErr
}

func (c *Codebase) RemoveFile(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.files, path)
	c.rebuildLocked()
}

func (c *Codebase) GetFile(path string) *FileInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.files[path]
}

// Paths returns the loaded file paths in sorted order.
func (c *Codebase) Paths() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	paths := make([]string, 0, len(c.files))
	for p := range c.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func (c *Codebase) Hierarchy() *java.Hierarchy {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hierarchy
}

func (c *Codebase) rebuildLocked() {
	var classes [][]java.ClassInfo
	for _, f := range c.files {
		if f.Source != nil {
			classes = append(classes, f.Source.Classes)
		}
	}
	c.hierarchy = java.NewHierarchy(classes...)
	c.checker = c.engine.WithResolver(check.NewHierarchyResolver(c.hierarchy))
}

// Check verifies every declaration of a loaded file.
func (c *Codebase) Check(path string) Result {
	c.mu.RLock()
	info := c.files[path]
	checker := c.checker
	c.mu.RUnlock()

	if info == nil {
		return Result{Path: path, Err: fmt.Errorf("%s: file not loaded", path)}
	}
	return c.checkFile(checker, info)
}

// CheckAll verifies every loaded file concurrently. Results are sorted
// by path.
func (c *Codebase) CheckAll(ctx context.Context) ([]Result, error) {
	c.mu.RLock()
	infos := make([]*FileInfo, 0, len(c.files))
	for _, info := range c.files {
		infos = append(infos, info)
	}
	checker := c.checker
	c.mu.RUnlock()

	sort.Slice(infos, func(i, j int) bool { return infos[i].Path < infos[j].Path })

	results := make([]Result, len(infos))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i, info := range infos {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = c.checkFile(checker, info)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *Codebase) checkFile(checker *check.Engine, info *FileInfo) Result {
	result := Result{Path: info.Path}
	if info.ParseErr != nil {
		result.Err = info.ParseErr
		return result
	}

	for _, decl := range info.Source.Declarations {
		for _, d := range checker.Verify(decl.Signature, decl.Comment) {
			if c.suppress.Suppressed(info.Path, check.Name, d.Message()) {
				continue
			}
			result.Diagnostics = append(result.Diagnostics, d)
		}
	}
	log.Debugf("%s: %d diagnostics", info.Path, len(result.Diagnostics))
	return result
}

// Count returns the number of diagnostics and failed files in results.
func Count(results []Result) (diagnostics, failed int) {
	for _, r := range results {
		diagnostics += len(r.Diagnostics)
		if r.Err != nil {
			failed++
		}
	}
	return diagnostics, failed
}
