//go:build !wasm

package site

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/vcrobe/nojs-landing/internal/content"
)

func findElement(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, match); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func byTag(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.Data == tag }
}

func byID(id string) func(*html.Node) bool {
	return func(n *html.Node) bool { return attr(n, "id") == id }
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func parse(t *testing.T, b []byte) *html.Node {
	t.Helper()
	doc, err := html.Parse(bytes.NewReader(b))
	require.NoError(t, err)
	return doc
}

func TestBuild_DocumentCarriesMetadataAndSections(t *testing.T) {
	b, err := Build(Options{TailwindCDN: "https://cdn.example/tw.js"})
	require.NoError(t, err)

	doc := parse(t, b.HTML)

	title := findElement(doc, byTag("title"))
	require.NotNil(t, title)
	assert.Equal(t, content.Meta.Title, textOf(title))

	htmlEl := findElement(doc, byTag("html"))
	require.NotNil(t, htmlEl)
	assert.Equal(t, content.Meta.Language, attr(htmlEl, "lang"))

	desc := findElement(doc, func(n *html.Node) bool {
		return n.Data == "meta" && attr(n, "name") == "description"
	})
	require.NotNil(t, desc)
	assert.Equal(t, content.Meta.Description, attr(desc, "content"))

	tw := findElement(doc, byTag("script"))
	require.NotNil(t, tw)
	assert.Equal(t, "https://cdn.example/tw.js", attr(tw, "src"))

	app := findElement(doc, byID(MountID))
	require.NotNil(t, app)
	for _, id := range []string{content.AnchorFeatures, content.AnchorTestimonials, content.AnchorPricing} {
		assert.NotNil(t, findElement(app, byID(id)), "section #%s", id)
	}
	assert.Nil(t, findElement(app, byID("mobile-menu")), "menu starts closed")
}

func TestBuild_OptionalScripts(t *testing.T) {
	plain, err := Build(Options{})
	require.NoError(t, err)
	assert.Nil(t, findElement(parse(t, plain.HTML), byTag("script")))

	withWasm, err := Build(Options{Wasm: true})
	require.NoError(t, err)
	out := string(withWasm.HTML)
	assert.Contains(t, out, WasmExecPath)
	assert.Contains(t, out, WasmPath)
}

func TestBuild_PrettyKeepsText(t *testing.T) {
	compact, err := Build(Options{})
	require.NoError(t, err)
	pretty, err := Build(Options{Pretty: true})
	require.NoError(t, err)

	assert.NotEqual(t, compact.HTML, pretty.HTML)

	norm := func(b []byte) string {
		app := findElement(parse(t, b), byID(MountID))
		require.NotNil(t, app)
		// Indentation only adds whitespace between elements.
		return strings.Join(strings.Fields(textOf(app)), "")
	}
	assert.Equal(t, norm(compact.HTML), norm(pretty.HTML))
}

func TestBuild_MarkdownListsContent(t *testing.T) {
	b, err := Build(Options{})
	require.NoError(t, err)

	md := string(b.Markdown)
	for _, rec := range content.Features {
		title, ok := rec.Title.Get()
		require.True(t, ok, "feature %s has a title", rec.ID)
		assert.Contains(t, md, title)
	}
	for _, p := range content.Plans {
		assert.Contains(t, md, p.Name)
	}
	assert.NotContains(t, md, "<div")
}

func TestBuild_CompressionAndETag(t *testing.T) {
	b, err := Build(Options{Compress: true})
	require.NoError(t, err)
	require.NotNil(t, b.Brotli)

	plain, err := io.ReadAll(brotli.NewReader(bytes.NewReader(b.Brotli)))
	require.NoError(t, err)
	assert.Equal(t, b.HTML, plain)

	again, err := Build(Options{Compress: true})
	require.NoError(t, err)
	assert.Equal(t, b.ETag, again.ETag, "rendering is deterministic")
	assert.NotEqual(t, b.ETag, b.MarkdownETag)
	assert.True(t, strings.HasPrefix(b.ETag, `"`) && strings.HasSuffix(b.ETag, `"`))

	uncompressed, err := Build(Options{})
	require.NoError(t, err)
	assert.Nil(t, uncompressed.Brotli)
}

func TestBundle_WriteDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dist")

	b, err := Build(Options{Compress: true})
	require.NoError(t, err)
	written, err := b.WriteDir(dir)
	require.NoError(t, err)
	assert.Len(t, written, 3)

	got, err := os.ReadFile(filepath.Join(dir, IndexHTML))
	require.NoError(t, err)
	assert.Equal(t, b.HTML, got)

	b.Brotli = nil
	other := filepath.Join(t.TempDir(), "plain")
	written, err = b.WriteDir(other)
	require.NoError(t, err)
	assert.Len(t, written, 2)
	_, err = os.Stat(filepath.Join(other, IndexHTMLBrotli))
	assert.True(t, os.IsNotExist(err))
}
