package services

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTransientRemovesFile(t *testing.T) {
	dir := t.TempDir()
	storage := NewStorageService(dir)
	require.NoError(t, storage.EnsureReportDir())

	data, err := storage.WriteTransient("ats_report", ".txt", func(w io.Writer) error {
		_, err := io.WriteString(w, "report body")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, "report body", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriteTransientPropagatesWriteError(t *testing.T) {
	dir := t.TempDir()
	storage := NewStorageService(dir)

	_, err := storage.WriteTransient("ats_report", ".txt", func(w io.Writer) error {
		return io.ErrShortWrite
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrShortWrite)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriteTransientMissingDirectory(t *testing.T) {
	storage := NewStorageService(t.TempDir() + "/missing")

	_, err := storage.WriteTransient("ats_report", ".txt", func(w io.Writer) error { return nil })
	assert.Error(t, err)
}
