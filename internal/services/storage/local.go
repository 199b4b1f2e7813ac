package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// extensionByContentType maps the accepted audio content types to file
// extensions. Anything else is stored with a .bin extension; the reference
// stays opaque to callers either way.
var extensionByContentType = map[string]string{
	"audio/mpeg":   ".mp3",
	"audio/wav":    ".wav",
	"audio/x-wav":  ".wav",
	"audio/flac":   ".flac",
	"audio/x-flac": ".flac",
}

// LocalBlobStore stores blobs as files under a base directory.
// References are the generated file names, never full paths.
type LocalBlobStore struct {
	baseDir string
}

var _ BlobStore = (*LocalBlobStore)(nil)

// NewLocalBlobStore creates the base directory if needed
func NewLocalBlobStore(baseDir string) (*LocalBlobStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("creating storage directory: %w", err)
	}
	return &LocalBlobStore{baseDir: baseDir}, nil
}

func (s *LocalBlobStore) Store(ctx context.Context, data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyBlob
	}

	ext, ok := extensionByContentType[contentType]
	if !ok {
		ext = ".bin"
	}

	ref := uuid.New().String() + ext
	path := filepath.Join(s.baseDir, ref)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing blob: %w", err)
	}
	return ref, nil
}

func (s *LocalBlobStore) Open(ctx context.Context, ref string) (io.ReadSeekCloser, error) {
	if ref == "" || strings.Contains(ref, "/") || strings.Contains(ref, "..") {
		return nil, ErrBlobNotFound
	}

	file, err := os.Open(filepath.Join(s.baseDir, ref))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrBlobNotFound
		}
		return nil, fmt.Errorf("opening blob: %w", err)
	}
	return file, nil
}

func (s *LocalBlobStore) Delete(ctx context.Context, ref string) error {
	// References are bare file names; reject anything that escapes the base dir
	if ref == "" || strings.Contains(ref, "/") || strings.Contains(ref, "..") {
		return ErrBlobNotFound
	}

	path := filepath.Join(s.baseDir, ref)
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return ErrBlobNotFound
		}
		return fmt.Errorf("deleting blob: %w", err)
	}
	return nil
}

// Path returns the location of a stored blob on disk
func (s *LocalBlobStore) Path(ref string) string {
	return filepath.Join(s.baseDir, ref)
}
