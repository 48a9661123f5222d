package storage

import (
	"os"
	"path/filepath"
)

// LocalProvider serves videos from a flat directory on disk.
type LocalProvider struct {
	RootPath string
}

func NewLocalProvider(root string) *LocalProvider {
	_ = os.MkdirAll(root, 0755)
	return &LocalProvider{RootPath: root}
}

func (l *LocalProvider) Get(key string) (*VideoObject, error) {
	// Base strips any path traversal out of the key before it touches disk.
	path := filepath.Join(l.RootPath, filepath.Base(key))
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	return &VideoObject{
		Body:          f,
		ContentLength: stat.Size(),
		ContentType:   "video/mp4",
		LastModified:  stat.ModTime(),
	}, nil
}

func (l *LocalProvider) Exists(key string) (bool, error) {
	_, err := os.Stat(filepath.Join(l.RootPath, filepath.Base(key)))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (l *LocalProvider) List() ([]string, error) {
	entries, err := os.ReadDir(l.RootPath)
	if err != nil {
		return nil, err
	}

	var keys []string
	for _, e := range entries {
		if !e.IsDir() {
			keys = append(keys, e.Name())
		}
	}
	return keys, nil
}
