package assets

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pierrec/lz4/v4"

	"github.com/spaghettifunk/rtdemo/engine/core"
)

const cacheExt = ".scene.lz4"

// CachedImporter keeps lz4 compressed copies of imported scene graphs in
// Dir and reuses them while they are newer than the source file.
type CachedImporter struct {
	Importer Importer
	Dir      string
	// Stat resolves the source file. It defaults to os.Stat.
	Stat func(path string) (fs.FileInfo, error)
}

func NewCachedImporter(importer Importer, dir string) *CachedImporter {
	return &CachedImporter{Importer: importer, Dir: dir, Stat: os.Stat}
}

func (c *CachedImporter) cachePath(path string, flags ImportFlags) string {
	name := strings.NewReplacer("/", "_", "\\", "_", ":", "_").Replace(filepath.Clean(path))
	return filepath.Join(c.Dir, fmt.Sprintf("%s.%d%s", name, flags, cacheExt))
}

func (c *CachedImporter) Import(path string, flags ImportFlags) (*SceneGraph, error) {
	if c.Dir == "" {
		return c.Importer.Import(path, flags)
	}
	cached := c.cachePath(path, flags)
	if c.fresh(path, cached) {
		graph, err := readCache(cached)
		if err == nil {
			core.LogDebug("scene cache hit %s", cached)
			return graph, nil
		}
		core.LogWarn("ignoring unreadable scene cache %s: %s", cached, err)
	}

	graph, err := c.Importer.Import(path, flags)
	if err != nil {
		return nil, err
	}
	if err := writeCache(cached, graph); err != nil {
		core.LogWarn("failed to write scene cache %s: %s", cached, err)
	}
	return graph, nil
}

func (c *CachedImporter) fresh(source, cached string) bool {
	ci, err := os.Stat(cached)
	if err != nil {
		return false
	}
	stat := c.Stat
	if stat == nil {
		stat = os.Stat
	}
	si, err := stat(source)
	if err != nil {
		// without a source the cache is all there is
		return errors.Is(err, fs.ErrNotExist)
	}
	return !ci.ModTime().Before(si.ModTime())
}

func writeCache(path string, graph *SceneGraph) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	zw := lz4.NewWriter(f)
	if err = gob.NewEncoder(zw).Encode(graph); err != nil {
		return err
	}
	if err = zw.Close(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func readCache(path string) (*SceneGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	graph := &SceneGraph{}
	if err := gob.NewDecoder(lz4.NewReader(f)).Decode(graph); err != nil {
		return nil, err
	}
	return graph, nil
}
