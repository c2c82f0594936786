package listdb

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeBinaryRoundTrip(t *testing.T) {
	db := sampleDB()

	var buf bytes.Buffer
	require.NoError(t, EncodeBinary(&buf, db))

	decoded, err := DecodeBinary(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, db.Dim, decoded.Dim)
	assert.Equal(t, db.Lists, decoded.Lists)
}

func TestDecodeBinaryTruncated(t *testing.T) {
	_, err := DecodeBinary([]byte{1, 2, 3})
	assert.Error(t, err)
}

func TestSaveLoadBinaryFile(t *testing.T) {
	db := sampleDB()
	path := t.TempDir() + "/db.bin"
	require.NoError(t, SaveBinaryToFile(path, db))
	loaded, err := LoadBinaryFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, db.Lists, loaded.Lists)
}
