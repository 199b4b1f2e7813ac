package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalBlobStoreStoreAndDelete(t *testing.T) {
	store, err := NewLocalBlobStore(t.TempDir())
	require.NoError(t, err)

	ref, err := store.Store(context.Background(), []byte("fake mp3 bytes"), "audio/mpeg")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(ref, ".mp3"))
	assert.FileExists(t, store.Path(ref))

	require.NoError(t, store.Delete(context.Background(), ref))
	assert.NoFileExists(t, store.Path(ref))
}

func TestLocalBlobStoreEmptyPayload(t *testing.T) {
	store, err := NewLocalBlobStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Store(context.Background(), nil, "audio/wav")
	assert.ErrorIs(t, err, ErrEmptyBlob)
}

func TestLocalBlobStoreOpen(t *testing.T) {
	store, err := NewLocalBlobStore(t.TempDir())
	require.NoError(t, err)

	ref, err := store.Store(context.Background(), []byte("fake mp3 bytes"), "audio/mpeg")
	require.NoError(t, err)

	reader, err := store.Open(context.Background(), ref)
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "fake mp3 bytes", string(data))

	_, err = store.Open(context.Background(), "missing.mp3")
	assert.ErrorIs(t, err, ErrBlobNotFound)

	// References that escape the base directory are refused outright
	_, err = store.Open(context.Background(), "../secrets.txt")
	assert.ErrorIs(t, err, ErrBlobNotFound)
}

func TestLocalBlobStoreUnknownContentType(t *testing.T) {
	store, err := NewLocalBlobStore(t.TempDir())
	require.NoError(t, err)

	ref, err := store.Store(context.Background(), []byte("payload"), "application/octet-stream")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(ref, ".bin"))
}

func TestLocalBlobStoreDeleteMissing(t *testing.T) {
	store, err := NewLocalBlobStore(t.TempDir())
	require.NoError(t, err)

	assert.ErrorIs(t, store.Delete(context.Background(), "nope.mp3"), ErrBlobNotFound)
}

func TestLocalBlobStoreDeleteRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalBlobStore(filepath.Join(dir, "blobs"))
	require.NoError(t, err)

	outside := filepath.Join(dir, "victim.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep me"), 0644))

	assert.ErrorIs(t, store.Delete(context.Background(), "../victim.txt"), ErrBlobNotFound)
	assert.FileExists(t, outside)
}
