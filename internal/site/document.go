package site

import (
	"fmt"
	"io"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"github.com/vcrobe/nojs-landing/internal/components"
	"github.com/vcrobe/nojs-landing/internal/content"
)

// MountID is the id of the element wrapping the page body.
const MountID = components.MountID

// Paths of the wasm client files under the assets route.
const (
	WasmExecPath = "/assets/wasm_exec.js"
	WasmPath     = "/assets/app.wasm"
)

const wasmLoader = `const go = new Go();
WebAssembly.instantiateStreaming(fetch("` + WasmPath + `"), go.importObject).then((r) => go.run(r.instance));`

// Document wraps prerendered body markup in an HTML5 document carrying meta.
func Document(opts Options, meta content.Metadata, body string) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:       meta.Title,
		Description: meta.Description,
		Language:    meta.Language,
		Head: []g.Node{
			g.If(opts.TailwindCDN != "", h.Script(h.Src(opts.TailwindCDN))),
			g.If(opts.Wasm, h.Script(h.Src(WasmExecPath))),
			g.If(opts.Wasm, h.Script(g.Raw(wasmLoader))),
		},
		Body: []g.Node{
			h.Div(h.ID(MountID), g.Raw(body)),
		},
	})
}

// WriteDocument renders the document to w.
func WriteDocument(w io.Writer, opts Options, meta content.Metadata, body string) error {
	if err := Document(opts, meta, body).Render(w); err != nil {
		return fmt.Errorf("rendering document: %w", err)
	}
	return nil
}
