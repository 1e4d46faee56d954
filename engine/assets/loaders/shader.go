package loaders

import (
	"fmt"
	"io/fs"
	"path"
	"sync"
)

// ShaderLoader reads shader sources relative to a search root.
type ShaderLoader struct {
	fsys fs.FS
	root string
	once sync.Once
}

func NewShaderLoader(fsys fs.FS) *ShaderLoader {
	return &ShaderLoader{fsys: fsys}
}

// SetRoot sets the directory all later lookups are relative to. Only the
// first call has an effect.
func (sl *ShaderLoader) SetRoot(root string) {
	sl.once.Do(func() {
		sl.root = path.Clean(root)
	})
}

func (sl *ShaderLoader) Root() string {
	return sl.root
}

// ReadText returns the whole file.
func (sl *ShaderLoader) ReadText(name string) ([]byte, error) {
	full := name
	if sl.root != "" {
		full = path.Join(sl.root, name)
	}
	data, err := fs.ReadFile(sl.fsys, full)
	if err != nil {
		return nil, fmt.Errorf("failed to read shader %s: %w", full, err)
	}
	return data, nil
}
