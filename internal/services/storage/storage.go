// Package storage holds the blob storage collaborator the submission
// lifecycle depends on. The core treats audio payloads as opaque blobs
// identified by reference; type and size validation happens at the HTTP
// boundary before this package is invoked.
package storage

import (
	"context"
	"errors"
	"io"
)

// Common errors
var (
	ErrBlobNotFound = errors.New("blob not found")
	ErrEmptyBlob    = errors.New("blob is empty")
)

// BlobStore stores and releases opaque audio blobs
type BlobStore interface {
	// Store persists the payload and returns an opaque reference
	Store(ctx context.Context, data []byte, contentType string) (string, error)
	// Open returns a reader over the blob for streaming. The caller
	// closes it. An unknown reference returns ErrBlobNotFound.
	Open(ctx context.Context, ref string) (io.ReadSeekCloser, error)
	// Delete releases the blob behind a reference. Deleting an unknown
	// reference returns ErrBlobNotFound.
	Delete(ctx context.Context, ref string) error
}
