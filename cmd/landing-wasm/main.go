//go:build js || wasm
// +build js wasm

package main

import (
	"github.com/vcrobe/nojs-landing/internal/components"
	"github.com/vcrobe/nojs-landing/runtime"
)

func main() {
	// Mount on the element the server prerendered into; the first render
	// replaces the static markup with live nodes.
	renderer := runtime.NewRenderer("#" + components.MountID)
	renderer.SetCurrentComponent(&components.Page{})
	renderer.RenderRoot()

	// Keep the Go program running
	select {}
}
