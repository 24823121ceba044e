// Package files handles reading sketch files and writing block documents.
// All file and encoding concerns live here; the analyzer and serializer only
// ever see in-memory UTF-8 text.
package files

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrInputNotFound is returned when the sketch file is missing or unreadable.
var ErrInputNotFound = errors.New("input file not found")

// ReadSketch reads a sketch fully into memory, rejects binary content, and
// decodes legacy encodings to UTF-8.
func ReadSketch(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return "", fmt.Errorf("%s: %w", path, ErrInputNotFound)
		}
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(data) == 0 {
		return "", nil
	}
	if mt := mimetype.Detect(data); !isText(mt) {
		return "", fmt.Errorf("%s: not a text file (%s)", path, mt.String())
	}
	return decode(data), nil
}

func isText(mt *mimetype.MIME) bool {
	for m := mt; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}

// decode sniffs the input charset and converts to UTF-8. On any detection or
// conversion trouble the raw bytes are passed through unchanged; the
// analyzer is lenient enough to cope.
func decode(data []byte) string {
	name := "utf-8"
	if result, err := chardet.NewTextDetector().DetectBest(data); err == nil && result != nil {
		name = strings.ToLower(result.Charset)
	}
	if name != "utf-8" {
		if r, err := charset.NewReaderLabel(name, bytes.NewReader(data)); err == nil {
			if decoded, err := io.ReadAll(r); err == nil {
				data = decoded
			}
		}
	}
	return strings.TrimPrefix(string(data), "\uFEFF")
}

// WriteDocument writes the block document encoded UTF-16LE with a BOM, the
// encoding the document's XML declaration announces.
func WriteDocument(path, doc string) error {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	out, _, err := transform.Bytes(enc, []byte(doc))
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
