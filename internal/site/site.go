// Package site turns the landing page component tree into the files that are
// served or written to disk: the HTML document, its brotli encoding and a
// Markdown rendition of the body.
package site

import (
	"bytes"
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/yosssi/gohtml"
	"go.uber.org/zap"

	"github.com/vcrobe/nojs-landing/internal/components"
	"github.com/vcrobe/nojs-landing/internal/content"
	"github.com/vcrobe/nojs-landing/runtime"
	"github.com/vcrobe/nojs-landing/vdom"
)

// Options control how the document is produced.
type Options struct {
	Pretty      bool
	Compress    bool
	TailwindCDN string
	Wasm        bool
}

// Prerender renders the page component tree once and returns its VDOM.
func Prerender() *vdom.VNode {
	return runtime.NewStaticRenderer(&components.Page{}).RenderRoot()
}

// RenderHTML produces the full HTML document for the page body.
func RenderHTML(opts Options, body *vdom.VNode) ([]byte, error) {
	markup, err := vdom.HTMLString(body)
	if err != nil {
		return nil, fmt.Errorf("serializing page body: %w", err)
	}

	var buf bytes.Buffer
	if err := WriteDocument(&buf, opts, content.Meta, markup); err != nil {
		return nil, err
	}

	if !opts.Pretty {
		return buf.Bytes(), nil
	}
	out := gohtml.FormatBytes(buf.Bytes())
	if len(out) == 0 {
		return buf.Bytes(), nil
	}
	return out, nil
}

// RenderMarkdown converts the page body to Markdown.
func RenderMarkdown(body *vdom.VNode) ([]byte, error) {
	node := vdom.ToHTML(body)
	if node == nil {
		return nil, nil
	}
	md, err := htmltomarkdown.ConvertNode(node)
	if err != nil {
		return nil, fmt.Errorf("converting page to markdown: %w", err)
	}
	return md, nil
}

// Build renders the page and produces every representation of it.
func Build(opts Options) (*Bundle, error) {
	body := Prerender()

	doc, err := RenderHTML(opts, body)
	if err != nil {
		return nil, err
	}
	md, err := RenderMarkdown(body)
	if err != nil {
		return nil, err
	}

	b := &Bundle{
		HTML:         doc,
		Markdown:     md,
		ETag:         ETag(doc),
		MarkdownETag: ETag(md),
	}
	if opts.Compress {
		if b.Brotli, err = Compress(doc); err != nil {
			return nil, err
		}
	}

	zap.S().Debugw("site built",
		"html_bytes", len(b.HTML),
		"brotli_bytes", len(b.Brotli),
		"markdown_bytes", len(b.Markdown),
		"etag", b.ETag,
	)
	return b, nil
}
