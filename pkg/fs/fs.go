package fs

import (
	"fmt"
	"io"
	"os"
)

type LocalFileSystem struct{}

func NewLocalFileSystem() *LocalFileSystem {
	return &LocalFileSystem{}
}

// Opens a regular file for reading. Directories are rejected.
func (lfs *LocalFileSystem) Open(filePath string) (io.ReadCloser, error) {
	stat, err := os.Stat(filePath)
	if err != nil {
		return nil, err
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %s is a directory", filePath)
	}

	return os.Open(filePath)
}
