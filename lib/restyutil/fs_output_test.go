package restyutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilesystemOutputKeepsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	unrelated := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(unrelated, []byte("keep me"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1"), []byte("stale dump"), 0600))

	output, err := NewFilesystemOutput(dir)
	require.NoError(t, err)
	output.Write("1", "fresh dump")

	contents, err := os.ReadFile(unrelated)
	require.NoError(t, err)
	require.Equal(t, "keep me", string(contents))

	contents, err = os.ReadFile(filepath.Join(dir, "1"))
	require.NoError(t, err)
	require.Equal(t, "fresh dump", string(contents))
}

func TestFilesystemOutputCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	output, err := NewFilesystemOutput(dir)
	require.NoError(t, err)
	output.Write("7", "dump")

	contents, err := os.ReadFile(filepath.Join(dir, "7"))
	require.NoError(t, err)
	require.Equal(t, "dump", string(contents))
}
