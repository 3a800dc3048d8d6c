package iomanager

import (
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"
)

// Glob returns the paths under the key directory matching a doublestar
// pattern such as "**/*.csv", relative to that directory and sorted.
func (m *Manager) Glob(key, pattern string) ([]string, error) {
	root, err := m.root(key)
	if err != nil {
		return nil, err
	}

	matches, err := doublestar.FilepathGlob(filepath.Join(root, pattern))
	if err != nil {
		return nil, err
	}

	rel := make([]string, 0, len(matches))
	for _, match := range matches {
		if r, err := filepath.Rel(root, match); err == nil {
			rel = append(rel, r)
		}
	}
	slices.Sort(rel)
	return rel, nil
}

// Files walks the key directory and returns every file whose suffix has a
// registered loader, relative to that directory and sorted.
func (m *Manager) Files(key string) ([]string, error) {
	root, err := m.root(key)
	if err != nil {
		return nil, err
	}

	var (
		mu    sync.Mutex
		files []string
	)
	conf := fastwalk.Config{Follow: false}
	err = fastwalk.Walk(&conf, root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || len(m.reg.LoaderTypes(filepath.Ext(p))) == 0 {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		mu.Lock()
		files = append(files, rel)
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(files)
	return files, nil
}

func (m *Manager) root(key string) (string, error) {
	dir, err := m.Dir(key)
	if err != nil {
		return "", err
	}
	if dir == "" {
		return ".", nil
	}
	return dir, nil
}
