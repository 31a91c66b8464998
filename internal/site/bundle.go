package site

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/andybalholm/brotli"
	"github.com/zeebo/blake3"
)

// Output file names written by Bundle.WriteDir.
const (
	IndexHTML       = "index.html"
	IndexHTMLBrotli = "index.html.br"
	IndexMarkdown   = "index.md"
)

// Bundle holds the rendered page. Brotli is nil when compression is disabled.
type Bundle struct {
	HTML         []byte
	Brotli       []byte
	Markdown     []byte
	ETag         string
	MarkdownETag string
}

// ETag returns a strong entity tag for b: the first 16 bytes of its BLAKE3 sum.
func ETag(b []byte) string {
	sum := blake3.Sum256(b)
	return `"` + hex.EncodeToString(sum[:16]) + `"`
}

// Compress brotli-encodes b at the best compression level.
func Compress(b []byte) ([]byte, error) {
	var buf bytes.Buffer
	bw := brotli.NewWriterLevel(&buf, brotli.BestCompression)
	if _, err := bw.Write(b); err != nil {
		return nil, fmt.Errorf("writing brotli data: %w", err)
	}
	if err := bw.Close(); err != nil {
		return nil, fmt.Errorf("closing brotli writer: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteDir writes the bundle files into dir, creating it if needed.
func (b *Bundle) WriteDir(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	files := []struct {
		name string
		data []byte
	}{
		{IndexHTML, b.HTML},
		{IndexHTMLBrotli, b.Brotli},
		{IndexMarkdown, b.Markdown},
	}

	var written []string
	for _, f := range files {
		if f.data == nil {
			continue
		}
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, f.data, 0o644); err != nil {
			return written, fmt.Errorf("writing %s: %w", f.name, err)
		}
		written = append(written, path)
	}
	return written, nil
}
