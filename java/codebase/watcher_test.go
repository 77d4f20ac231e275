package codebase

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/goleak"

	"github.com/dhamidi/style61b/check"
)

func TestFileWatcherRechecksChangedFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	root := t.TempDir()
	c := New(check.New(check.DefaultConfig()))

	changes := make(chan []Result, 4)
	w, err := NewFileWatcher(c, func(results []Result) { changes <- results })
	if err != nil {
		t.Fatalf("NewFileWatcher: %v", err)
	}
	w.debounce = 50 * time.Millisecond
	if err := w.Add(root); err != nil {
		t.Fatalf("Add: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	path := filepath.Join(root, "Board.java")
	if err := os.WriteFile(path, []byte(board), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case results := <-changes:
		if len(results) != 1 || results[0].Path != path {
			t.Fatalf("expected results for %s, got %+v", path, results)
		}
		if len(results[0].Diagnostics) == 0 {
			t.Error("expected diagnostics for the new file")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the watcher")
	}

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	deadline := time.Now().Add(5 * time.Second)
	for c.GetFile(path) != nil {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for the file to be removed")
		}
		time.Sleep(10 * time.Millisecond)
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Run: %v", err)
	}
}

func TestFileWatcherIgnoresOtherFiles(t *testing.T) {
	w := &FileWatcher{pending: make(map[string]struct{})}

	if w.handleEvent(fsnotify.Event{Name: "notes.txt", Op: fsnotify.Write}) {
		t.Error("non-Java files should be ignored")
	}
	if !w.handleEvent(fsnotify.Event{Name: "Board.java", Op: fsnotify.Write}) {
		t.Error("Java files should be picked up")
	}
	if _, ok := w.pending["Board.java"]; !ok {
		t.Error("expected Board.java to be pending")
	}
}
