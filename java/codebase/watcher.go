package codebase

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher keeps a Codebase in sync with the file system and reports
// the results of re-checking changed files. Bursts of events for the
// same file are handled once after the debounce interval.
type FileWatcher struct {
	codebase *Codebase
	watcher  *fsnotify.Watcher
	debounce time.Duration
	onChange func([]Result)
	pending  map[string]struct{}
}

func NewFileWatcher(c *Codebase, onChange func([]Result)) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &FileWatcher{
		codebase: c,
		watcher:  watcher,
		debounce: 200 * time.Millisecond,
		onChange: onChange,
		pending:  make(map[string]struct{}),
	}, nil
}

// Add watches the given directories and their subdirectories, or the
// directory of a file.
func (w *FileWatcher) Add(paths ...string) error {
	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return err
		}
		if !info.IsDir() {
			if err := w.watcher.Add(filepath.Dir(root)); err != nil {
				return err
			}
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil || !d.IsDir() {
				return nil
			}
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return w.watcher.Add(path)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// Run processes events until ctx is cancelled. It closes the underlying
// watcher before returning.
func (w *FileWatcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if w.handleEvent(event) {
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.Errorf("watch: %s", err)

		case <-timer.C:
			w.flush(ctx)
		}
	}
}

// handleEvent records a change and reports whether it is relevant.
func (w *FileWatcher) handleEvent(event fsnotify.Event) bool {
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.Add(event.Name); err != nil {
				log.Warningf("watch %s: %s", event.Name, err)
			}
			return false
		}
	}
	if !IsJavaFile(event.Name) {
		return false
	}
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	log.Debugf("watch: %s %s", event.Op, event.Name)
	w.pending[event.Name] = struct{}{}
	return true
}

func (w *FileWatcher) flush(ctx context.Context) {
	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		paths = append(paths, p)
	}
	clear(w.pending)
	sort.Strings(paths)

	var results []Result
	for _, path := range paths {
		err := w.codebase.ScanFile(ctx, path)
		if errors.Is(err, fs.ErrNotExist) {
			w.codebase.RemoveFile(path)
			continue
		}
		results = append(results, w.codebase.Check(path))
	}
	if len(results) > 0 && w.onChange != nil {
		w.onChange(results)
	}
}
