package main

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// watcher reports changes to a fixed set of files. Directories are watched
// instead of the files so editors that replace a file on save are noticed.
type watcher struct {
	fs    *fsnotify.Watcher
	files map[string]bool
	log   *log.Logger
}

func newWatcher(paths []string, logger *log.Logger) (*watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create watcher")
	}

	w := &watcher{
		fs:    fw,
		files: make(map[string]bool),
		log:   logger,
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "watch %q", p)
		}
		w.files[abs] = true

		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "watch %q", dir)
		}
		dirs[dir] = true
	}

	return w, nil
}

// relevant reports whether ev modified one of the watched files.
func (w *watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(ev.Name)
	if err != nil {
		return false
	}
	return w.files[abs]
}

// Changed drains pending events without blocking and reports whether any
// watched file changed since the last call.
func (w *watcher) Changed() bool {
	changed := false
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return changed
			}
			if w.relevant(ev) {
				w.log.Printf("%v changed", ev.Name)
				changed = true
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return changed
			}
			w.log.Println("watch:", err)
		default:
			return changed
		}
	}
}

func (w *watcher) Close() error {
	return w.fs.Close()
}
