package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// DiskStorage хранит файлы в одном каталоге на диске
type DiskStorage struct {
	dir string
}

func NewDiskStorage(dir string) *DiskStorage {
	return &DiskStorage{dir: dir}
}

func (s *DiskStorage) Store(data []byte, originalFilename, baseName string) (string, error) {
	filename := baseName + filepath.Ext(originalFilename)

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	// запись затирает прежний файл под тем же именем
	if err := os.WriteFile(filepath.Join(s.dir, filename), data, 0o644); err != nil {
		return "", err
	}

	logrus.Infof("File %s stored in %s", filename, s.dir)
	return filename, nil
}

func (s *DiskStorage) Load(filename string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, filename))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *DiskStorage) Remove(filename string) error {
	err := os.Remove(filepath.Join(s.dir, filename))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
