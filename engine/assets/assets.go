package assets

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/rtdemo/engine/core"
)

type AssetType uint8

const (
	AssetTypeNone AssetType = iota
	AssetTypeShader
	AssetTypeModel
	AssetTypeMaterial
)

// Change is a created or modified asset file.
type Change struct {
	Path string
	Type AssetType
}

// Watcher reports changes below a set of directories. New sub-directories
// are picked up as they appear. Changes are delivered on a buffered channel
// and dropped when the consumer falls behind.
type Watcher struct {
	fsnotify *fsnotify.Watcher
	changes  chan Change
	done     chan struct{}
	wg       sync.WaitGroup

	mutex    sync.Mutex
	isClosed bool
}

func NewWatcher() (*Watcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fsnotify: fsWatch,
		changes:  make(chan Change, 64),
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.start()
	return w, nil
}

// Changes is closed by Close.
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

// AddRecursive starts watching the named directory and all sub-directories.
func (w *Watcher) AddRecursive(name string) error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.isClosed {
		return errors.New("watcher already closed")
	}
	return w.watchRecursive(name)
}

func (w *Watcher) Close() error {
	w.mutex.Lock()
	if w.isClosed {
		w.mutex.Unlock()
		return nil
	}
	w.isClosed = true
	w.mutex.Unlock()

	close(w.done)
	w.wg.Wait()
	return nil
}

func (w *Watcher) start() {
	defer w.wg.Done()
	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			s, err := os.Stat(e.Name)
			if err == nil && s != nil && s.IsDir() {
				if e.Op&fsnotify.Create != 0 {
					w.mutex.Lock()
					if err := w.watchRecursive(e.Name); err != nil {
						core.LogWarn("failed to watch %s: %s", e.Name, err)
					}
					w.mutex.Unlock()
				}
				continue
			}
			// Handle create or modify events
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				w.handleFileEvent(e.Name)
			}

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("asset watcher: %s", err)

		case <-w.done:
			w.fsnotify.Close()
			close(w.changes)
			return
		}
	}
}

// watchRecursive adds all directories under the given one to the watch list.
func (w *Watcher) watchRecursive(path string) error {
	return filepath.Walk(path, func(walkPath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			return w.fsnotify.Add(walkPath)
		}
		return nil
	})
}

func (w *Watcher) handleFileEvent(path string) {
	assetType := TypeOf(path)
	if assetType == AssetTypeNone {
		return
	}
	select {
	case w.changes <- Change{Path: filepath.ToSlash(path), Type: assetType}:
	default:
		core.LogWarn("asset change queue full, dropping %s", path)
	}
}

// TypeOf classifies a file by its extension.
func TypeOf(path string) AssetType {
	switch filepath.Ext(path) {
	case ".vert", ".frag", ".comp", ".glsl":
		return AssetTypeShader
	case ".obj":
		return AssetTypeModel
	case ".mtl":
		return AssetTypeMaterial
	default:
		return AssetTypeNone
	}
}
