package tui

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// ConfigChangedMsg reports that the watched config file was written.
type ConfigChangedMsg struct {
	Path string
}

// ConfigWatcher notifies about changes to one config file. It watches the
// parent directory so editors that replace the file on save are seen too.
// Bursts of events collapse into a single pending notification.
type ConfigWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	changes chan struct{}
	done    chan struct{}
}

// WatchConfig starts watching path.
func WatchConfig(path string) (*ConfigWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("tui: cannot create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("tui: cannot watch %s: %w", filepath.Dir(abs), err)
	}

	cw := &ConfigWatcher{
		watcher: w,
		path:    abs,
		changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go cw.run()
	return cw, nil
}

func (cw *ConfigWatcher) run() {
	defer close(cw.done)
	defer close(cw.changes)

	for {
		select {
		case ev, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != cw.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			select {
			case cw.changes <- struct{}{}:
			default:
			}
		case _, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// Path returns the absolute path being watched.
func (cw *ConfigWatcher) Path() string {
	return cw.path
}

// Wait returns a command that blocks until the next change. It yields nil
// once the watcher is closed. A nil watcher never fires.
func (cw *ConfigWatcher) Wait() tea.Cmd {
	if cw == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-cw.changes; !ok {
			return nil
		}
		return ConfigChangedMsg{Path: cw.path}
	}
}

// Close stops the watcher and waits for its goroutine to exit.
func (cw *ConfigWatcher) Close() error {
	err := cw.watcher.Close()
	<-cw.done
	return err
}
