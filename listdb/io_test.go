package listdb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDB() DB {
	db := Create(2, 20)
	db.Lists[0] = list(1, 2, 3)
	db.Lists[1] = List{}
	return db
}

func TestSaveLoadTextRoundTrip(t *testing.T) {
	db := sampleDB()
	path := filepath.Join(t.TempDir(), "db.txt")

	require.NoError(t, SaveToFile(path, db))
	loaded, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, db.Dim, loaded.Dim)
	assert.Equal(t, db.Lists, loaded.Lists)
}

func TestLoadFromFileMissingHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))
	_, err := LoadFromFile(path)
	assert.Error(t, err)
}

func TestLoadFromFileMalformedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 10\n2 1:1\n"), 0o644))
	_, err := LoadFromFile(path)
	assert.Error(t, err)
}

func TestLoadFromFileNegativeSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "negative.txt")
	require.NoError(t, os.WriteFile(path, []byte("-1 10\n"), 0o644))
	_, err := LoadFromFile(path)
	assert.Error(t, err)
}
