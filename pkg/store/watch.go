package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// Event is emitted by Watch when the value under a key changes on disk.
type Event struct {
	Key string
	// Removed is set when the last change seen in a burst removed the key.
	Removed bool
}

// Watch streams change events for key until ctx is cancelled. Bursts of
// filesystem activity are coalesced into one event. The channel is closed once
// ctx is done or the watcher stops.
func (p *Disk) Watch(ctx context.Context, key string) (<-chan Event, error) {
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				log.WithError(err).Warn("store: watcher close")
			}
		})
	}

	if err := watcher.Add(p.basePath); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}

	events := make(chan Event, 8)

	go func() {
		defer close(events)
		defer closeWatcher()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// The consumer re-reads the whole value anyway.
			}
		}

		throttle := newEventThrottle(100*time.Millisecond, key)
		defer throttle.Stop()

		target := filepath.Join(filepath.Clean(p.basePath), key)
		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.WithError(err).Debug("store: watcher error")
				throttle.Enqueue(false, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != target {
					continue
				}
				removed := evt.Op&fsnotify.Remove == fsnotify.Remove
				throttle.Enqueue(removed, send)
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces rapid change notifications so readers reload once
// per burst instead of on every write.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	key     string
	removed bool
	stopped bool
	delay   time.Duration
}

func newEventThrottle(delay time.Duration, key string) *eventThrottle {
	return &eventThrottle{delay: delay, key: key}
}

func (t *eventThrottle) Enqueue(removed bool, send func(Event)) {
	t.mu.Lock()
	t.removed = removed
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

// flush holds the lock while sending; send never blocks.
func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	ev := Event{Key: t.key, Removed: t.removed}
	t.removed = false
	t.timer = nil
	send(ev)
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
