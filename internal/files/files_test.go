package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestReadSketch(t *testing.T) {
	t.Run("plain utf-8", func(t *testing.T) {
		path := writeTemp(t, "blink.ino", []byte("void setup() {}\nvoid loop() {}\n"))
		src, err := ReadSketch(path)
		require.NoError(t, err)
		assert.Equal(t, "void setup() {}\nvoid loop() {}\n", src)
	})

	t.Run("utf-8 bom stripped", func(t *testing.T) {
		path := writeTemp(t, "bom.ino", append([]byte{0xEF, 0xBB, 0xBF}, []byte("int x = 1;\n")...))
		src, err := ReadSketch(path)
		require.NoError(t, err)
		assert.Equal(t, "int x = 1;\n", src)
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeTemp(t, "empty.ino", nil)
		src, err := ReadSketch(path)
		require.NoError(t, err)
		assert.Empty(t, src)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadSketch(filepath.Join(t.TempDir(), "nope.ino"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInputNotFound)
	})

	t.Run("binary rejected", func(t *testing.T) {
		png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n', 0, 0, 0, 0}
		path := writeTemp(t, "image.png", png)
		_, err := ReadSketch(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a text file")
	})
}

func TestWriteDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ubi")
	require.NoError(t, WriteDocument(path, "<a>й</a>"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// UTF-16LE BOM, then each ASCII byte followed by a zero byte.
	require.Greater(t, len(data), 4)
	assert.Equal(t, []byte{0xFF, 0xFE}, data[:2])
	assert.Equal(t, byte('<'), data[2])
	assert.Equal(t, byte(0), data[3])
}

func TestWriteDocumentBadPath(t *testing.T) {
	err := WriteDocument(filepath.Join(t.TempDir(), "no", "such", "dir", "out.ubi"), "x")
	assert.Error(t, err)
}

func TestDecodePassthrough(t *testing.T) {
	// Already valid UTF-8 with multibyte runes survives untouched.
	s := "int температура = 0; //in\n"
	assert.Equal(t, s, decode([]byte(s)))
}
