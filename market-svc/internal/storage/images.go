package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalImageStore writes uploads under Dir and serves them from URLPrefix.
type LocalImageStore struct {
	Dir       string
	URLPrefix string
}

func NewLocalImageStore(dir, urlPrefix string) *LocalImageStore {
	return &LocalImageStore{Dir: dir, URLPrefix: strings.TrimSuffix(urlPrefix, "/")}
}

func (s *LocalImageStore) Save(name string, content io.Reader) (string, error) {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return "", err
	}

	filename := filepath.Base(name)
	dst, err := os.Create(filepath.Join(s.Dir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, content); err != nil {
		return "", err
	}
	return s.URLPrefix + "/" + filename, nil
}
