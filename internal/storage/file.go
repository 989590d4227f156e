package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FileStorage keeps uploaded resumes and company logos on local disk under
// a configured base directory, one subfolder per upload category.
type FileStorage struct {
	baseDir string
	logger  *zap.Logger
}

func NewFileStorage(baseDir string, logger *zap.Logger) (*FileStorage, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("upload base directory is not configured")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &FileStorage{baseDir: baseDir, logger: logger}, nil
}

// EnsureDir creates the folder under the base directory if needed.
func (s *FileStorage) EnsureDir(folder string) error {
	path := filepath.Join(s.baseDir, folder)
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// Store writes the uploaded content into the folder and returns the stored
// file name. A random prefix keeps concurrent uploads of equally named
// files from clobbering each other.
func (s *FileStorage) Store(src io.Reader, fileName, folder string) (string, error) {
	if err := s.EnsureDir(folder); err != nil {
		return "", err
	}

	storedName := uuid.NewString() + "-" + filepath.Base(fileName)
	path := filepath.Join(s.baseDir, folder, storedName)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	s.logger.Info("Stored uploaded file", zap.String("folder", folder), zap.String("file", storedName))
	return storedName, nil
}

// FileLength returns the size of a stored file, or 0 when the name does not
// resolve to a regular file.
func (s *FileStorage) FileLength(fileName, folder string) int64 {
	info, err := os.Stat(filepath.Join(s.baseDir, folder, fileName))
	if err != nil || info.IsDir() {
		return 0
	}
	return info.Size()
}

// Open returns a reader over a stored file; the caller closes it.
func (s *FileStorage) Open(fileName, folder string) (*os.File, error) {
	file, err := os.Open(filepath.Join(s.baseDir, folder, fileName))
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s/%s: %w", folder, fileName, err)
	}
	return file, nil
}
