// Package filesystem finds OCR transcripts in a directory tree and watches
// it for new ones.
package filesystem

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/registro-ocr/internal/logger"
)

// TranscriptExt is the extension of transcript files.
const TranscriptExt = ".txt"

// DefaultDebounce is how long a file must stay quiet after its last write
// before it is reported.
const DefaultDebounce = 300 * time.Millisecond

// ErrClosed is returned by Watch after Close.
var ErrClosed = errors.New("filesystem connector closed")

// Connector scans and watches one directory tree.
type Connector struct {
	rootPath string
	debounce time.Duration

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	closed  bool
}

// New creates a connector rooted at rootPath.
func New(rootPath string) *Connector {
	return &Connector{
		rootPath: rootPath,
		debounce: DefaultDebounce,
	}
}

// WithDebounce sets the quiet period before a written file is reported.
func (c *Connector) WithDebounce(d time.Duration) *Connector {
	c.debounce = d
	return c
}

// Root returns the watched directory.
func (c *Connector) Root() string {
	return c.rootPath
}

// IsTranscript reports whether path has the transcript extension.
func IsTranscript(path string) bool {
	return strings.EqualFold(filepath.Ext(path), TranscriptExt)
}

// Scan returns every transcript under the root, sorted. Hidden files and
// directories are skipped.
func (c *Connector) Scan(ctx context.Context) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(c.rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if c.hidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() && IsTranscript(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

// Watch reports transcripts created or written under the root. Each path
// is sent once its writes have been quiet for the debounce period. The
// channel is closed when ctx ends or the connector is closed.
func (c *Connector) Watch(ctx context.Context) (<-chan string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, ErrClosed
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := c.addTree(watcher, c.rootPath); err != nil {
		watcher.Close()
		return nil, err
	}
	c.watcher = watcher

	out := make(chan string)
	go c.loop(ctx, watcher, out)
	return out, nil
}

// Close stops watching.
func (c *Connector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.watcher == nil {
		return nil
	}
	err := c.watcher.Close()
	c.watcher = nil
	return err
}

func (c *Connector) loop(ctx context.Context, watcher *fsnotify.Watcher, out chan<- string) {
	defer close(out)

	tick := c.debounce / 2
	if tick <= 0 {
		tick = time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	pending := make(map[string]time.Time)
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if path, ok := c.handleFsEvent(watcher, event); ok {
				pending[path] = time.Now()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("watch %s: %v", c.rootPath, err)

		case now := <-ticker.C:
			for _, path := range due(pending, now, c.debounce) {
				delete(pending, path)
				select {
				case out <- path:
				case <-ctx.Done():
					return
				}
			}
		}
	}
}

// due returns the pending paths quiet for at least d, sorted.
func due(pending map[string]time.Time, now time.Time, d time.Duration) []string {
	var paths []string
	for path, last := range pending {
		if now.Sub(last) >= d {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)
	return paths
}

// handleFsEvent returns the transcript path an event concerns. New
// directories are added to the watch and report nothing.
func (c *Connector) handleFsEvent(watcher *fsnotify.Watcher, event fsnotify.Event) (string, bool) {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
		return "", false
	}
	if c.hidden(event.Name) {
		return "", false
	}

	info, err := os.Stat(event.Name)
	if err != nil {
		return "", false
	}
	if info.IsDir() {
		if event.Op.Has(fsnotify.Create) && watcher != nil {
			if err := c.addTree(watcher, event.Name); err != nil {
				logger.Warn("watch %s: %v", event.Name, err)
			}
		}
		return "", false
	}
	if !info.Mode().IsRegular() || !IsTranscript(event.Name) {
		return "", false
	}
	return event.Name, true
}

// addTree watches dir and every non-hidden directory below it.
func (c *Connector) addTree(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if c.hidden(path) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

// hidden reports whether path is hidden below the root.
func (c *Connector) hidden(path string) bool {
	rel, err := filepath.Rel(c.rootPath, path)
	if err != nil {
		return isHidden(path)
	}
	return isHidden(rel)
}

// isHidden reports whether any element of path starts with a dot.
// "." and ".." are not hidden.
func isHidden(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part != "." && part != ".." && strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}
