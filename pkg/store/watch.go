package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"tableflip.dev/hairjourney/pkg/catalog"
	"tableflip.dev/hairjourney/pkg/logger"
)

// EventType describes the nature of a persistence change notification.
type EventType int

const (
	// EventKindChanged indicates records of the given kind were added,
	// edited, or removed.
	EventKindChanged EventType = iota

	// EventInvalidated signals a change that could not be attributed to a
	// kind; callers should reload everything.
	EventInvalidated
)

// Event is emitted by Persistence.Watch when underlying storage changes.
type Event struct {
	Type EventType
	Kind catalog.Category
}

const watchThrottle = 100 * time.Millisecond

// Watch streams change events until ctx is cancelled. Events are dropped
// when the receiver falls behind. The channel closes once ctx is done or
// the underlying watcher stops.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	w, err := newDirWatcher(p)
	if err != nil {
		return nil, err
	}
	if err := w.addTree(p.basePath); err != nil {
		w.close()
		return nil, err
	}

	go w.run(ctx)
	return w.out, nil
}

// dirWatcher follows every directory of a diskv tree. fsnotify is not
// recursive, so bucket and date directories are added as they appear.
type dirWatcher struct {
	p       *persistence
	fs      *fsnotify.Watcher
	watched map[string]bool
	out     chan Event
	batch   *coalescer

	closeOnce sync.Once
}

func newDirWatcher(p *persistence) (*dirWatcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	w := &dirWatcher{
		p:       p,
		fs:      fw,
		watched: map[string]bool{},
		out:     make(chan Event, 64),
	}
	w.batch = newCoalescer(watchThrottle, w.emit)
	return w, nil
}

func (w *dirWatcher) run(ctx context.Context) {
	defer close(w.out)
	defer w.close()

	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			logger.Debug("watcher error", "err", err)
			w.batch.Add(Event{Type: EventInvalidated})
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.handle(ev)
		}
	}
}

func (w *dirWatcher) handle(ev fsnotify.Event) {
	if ev.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			// diskv makes the whole bucket/yyyy/mm/dd chain in one go, so
			// children may already exist.
			if err := w.addTree(filepath.Clean(ev.Name)); err != nil {
				logger.Warn("watch add", "dir", ev.Name, "err", err)
			}
		}
	}

	if kind, ok := w.p.kindForPath(ev.Name); ok {
		w.batch.Add(Event{Type: EventKindChanged, Kind: kind})
		return
	}
	w.batch.Add(Event{Type: EventInvalidated})
}

// addTree watches root and each directory below it that is not yet watched.
func (w *dirWatcher) addTree(root string) error {
	var adds []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil
		case err != nil:
			return err
		case d.IsDir():
			adds = append(adds, filepath.Clean(path))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("store: enumerate %s: %w", root, err)
	}
	for _, dir := range adds {
		if w.watched[dir] {
			continue
		}
		if err := w.fs.Add(dir); err != nil {
			return fmt.Errorf("store: watch %s: %w", dir, err)
		}
		w.watched[dir] = true
	}
	return nil
}

func (w *dirWatcher) emit(ev Event) {
	select {
	case w.out <- ev:
	default:
	}
}

func (w *dirWatcher) close() {
	w.closeOnce.Do(func() {
		w.batch.Stop()
		if err := w.fs.Close(); err != nil {
			logger.Warn("watcher close", "err", err)
		}
	})
}

// kindForPath derives the record kind from a diskv path under basePath.
func (p *persistence) kindForPath(path string) (catalog.Category, bool) {
	rel, err := filepath.Rel(p.basePath, path)
	if err != nil || rel == "." {
		return "", false
	}
	bucket, _, _ := strings.Cut(rel, string(os.PathSeparator))
	if bucket == "" || bucket == ".." || strings.HasPrefix(bucket, ".") {
		return "", false
	}
	return fromBucket(bucket), true
}

// coalescer collects events for one window and then delivers each distinct
// event once.
type coalescer struct {
	window  time.Duration
	deliver func(Event)

	mu      sync.Mutex
	pending []Event
	timer   *time.Timer
	stopped bool
}

func newCoalescer(window time.Duration, deliver func(Event)) *coalescer {
	return &coalescer{window: window, deliver: deliver}
}

// Add queues ev, starting a window if none is open.
func (c *coalescer) Add(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return
	}
	for _, p := range c.pending {
		if p == ev {
			return
		}
	}
	c.pending = append(c.pending, ev)
	if c.timer == nil {
		c.timer = time.AfterFunc(c.window, c.flush)
	}
}

// flush delivers under the lock so Stop cannot return mid-delivery; deliver
// must not block.
func (c *coalescer) flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	batch := c.pending
	c.pending = nil
	c.timer = nil
	if c.stopped {
		return
	}
	for _, ev := range batch {
		c.deliver(ev)
	}
}

// Stop discards anything pending. Add is a no-op afterwards.
func (c *coalescer) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopped = true
	c.pending = nil
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
