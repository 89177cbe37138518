package store

import (
	"context"
	"errors"
	"os"
	"time"

	log "github.com/go-pkgz/lgr"
)

// Watcher reports modifications of a data file made by another writer, like a hotkey-bound `--add` call
type Watcher struct {
	file     string
	interval time.Duration
}

// NewWatcher makes a watcher for the file, checked every interval
func NewWatcher(file string, interval time.Duration) *Watcher {
	log.Printf("[DEBUG] watch %s every %v", file, interval)
	return &Watcher{file: file, interval: interval}
}

// Changes gets updates channel. A value is sent each time the modification time of the file changes.
// Missing file is not an error, its appearance is reported as a change. Own writes are reported as well,
// the consumer is expected to reload. The channel is closed on ctx done.
func (w *Watcher) Changes(ctx context.Context) <-chan time.Time {
	ch := make(chan time.Time)

	mtime := func() time.Time {
		st, err := os.Stat(w.file)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				log.Printf("[WARN] can't get info about %s, %v", w.file, err)
			}
			return time.Time{}
		}
		return st.ModTime()
	}

	lastMtime := mtime()
	ticker := time.NewTicker(w.interval)
	go func() {
		defer ticker.Stop()
		defer close(ch)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m := mtime()
				if m.Equal(lastMtime) {
					continue
				}
				lastMtime = m
				select {
				case ch <- m:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch
}

func (w *Watcher) String() string {
	return w.file
}
