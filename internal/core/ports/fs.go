package ports

import "io"

// FileSystem opens the local files the CLI feeds into a verifier.
type FileSystem interface {
	Open(filePath string) (io.ReadCloser, error)
}
