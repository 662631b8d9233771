package source

import (
	"context"
	"fmt"
	"os"

	domain "FinTab/internal/domain/repository"
	"FinTab/pkg/util"
)

// FileSource reads table input from a local file.
type FileSource struct {
	path string
}

// NewFileSource creates a file backed line source.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Fetch reads the whole file and splits it into lines and fields.
func (s *FileSource) Fetch(ctx context.Context) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	return util.Tokenize(data), nil
}

// Origin returns the file path for logging.
func (s *FileSource) Origin() string {
	return s.path
}

var _ domain.LineSource = (*FileSource)(nil)
