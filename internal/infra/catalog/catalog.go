// Package catalog opens medicine catalogue files from object storage or disk.
package catalog

import (
	"context"
	"io"
	"os"
)

// Source yields one catalogue CSV. Callers close the reader.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	String() string
}

type FileSource struct {
	Path string
}

func (f FileSource) Open(context.Context) (io.ReadCloser, error) {
	return os.Open(f.Path)
}

func (f FileSource) String() string {
	return f.Path
}
