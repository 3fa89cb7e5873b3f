package assets

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/vovakirdan/maze-heist/internal/games/heist/sim"
)

const debounce = 100 * time.Millisecond

// BankUpdate is a freshly reloaded question bank, or the error that
// prevented reloading it.
type BankUpdate struct {
	Path string
	Bank []sim.Question
	Err  error
}

// BankWatcher reloads a question bank file whenever it changes on disk.
// Editors often replace files on save, so the parent directory is watched
// and events are filtered by name.
type BankWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	Updates chan BankUpdate
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// WatchBank starts watching path. Updates is closed after Close returns.
func WatchBank(path string) (*BankWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	bw := &BankWatcher{
		path:    abs,
		watcher: w,
		Updates: make(chan BankUpdate, 4),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go bw.run()
	return bw, nil
}

// Close stops the watcher. It is safe to call more than once.
func (bw *BankWatcher) Close() error {
	var err error
	bw.once.Do(func() {
		close(bw.closeCh)
		err = bw.watcher.Close()
		<-bw.done
	})
	return err
}

func (bw *BankWatcher) run() {
	defer close(bw.done)
	defer close(bw.Updates)

	// Saves often arrive as several events; reload once they go quiet.
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-bw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != bw.path {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			bank, err := LoadBank(bw.path)
			bw.send(BankUpdate{Path: bw.path, Bank: bank, Err: err})
		case err, ok := <-bw.watcher.Errors:
			if !ok {
				return
			}
			bw.send(BankUpdate{Path: bw.path, Err: err})
		case <-bw.closeCh:
			return
		}
	}
}

func (bw *BankWatcher) send(u BankUpdate) {
	select {
	case bw.Updates <- u:
	case <-bw.closeCh:
	}
}
